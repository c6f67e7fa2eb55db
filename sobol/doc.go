// Package sobol implements a 1-dimension Sobol low-discrepancy sequence with
// lane-local skipping, and the Box-Muller transform used to turn consecutive
// uniforms into standard normal variates for the accelerator simulation regime.
//
// A single Generator holds the (fixed, dimension-1) direction numbers. Each lane
// obtains an independent Cursor via Skip, which advances entirely within the
// direction-numbers domain (a Gray-code XOR), never by drawing and discarding
// values — this both keeps the low-discrepancy property across the ensemble and
// makes every lane's sub-stream reproducible on its own, independent of whether
// any other lane has been drawn from.
package sobol
