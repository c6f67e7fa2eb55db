// Package payoff computes option payoffs over simulated paths. Payoff is a
// function of a full path rather than of a single terminal value so that both
// plain European payoffs (which only look at the last point) and path-
// dependent ones (Asian averages) share one signature.
package payoff
