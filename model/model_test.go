package model_test

import (
	"math"
	"testing"

	"github.com/quantedge/pathsim/model"
	"github.com/quantedge/pathsim/sde"
	"github.com/stretchr/testify/require"
)

func TestGBM_Coefficients(t *testing.T) {
	s := model.GBM(0.05, 0.2, 100)
	require.Equal(t, 100.0, s.InitialCondition())
	require.InDelta(t, 5.0, s.Drift(0, 100), 1e-12)
	require.InDelta(t, 20.0, s.Diffusion(0, 100), 1e-12)
}

func TestABM_CoefficientsAreLevelIndependent(t *testing.T) {
	s := model.ABM(0.03, 0.5, 10)
	require.Equal(t, 0.03, s.Drift(0, 1))
	require.Equal(t, 0.03, s.Drift(0, 1000))
	require.Equal(t, 0.5, s.Diffusion(0, 1))
	require.Equal(t, 0.5, s.Diffusion(0, 1000))
}

func TestCEV_BetaOneRecoversGBM(t *testing.T) {
	gbm := model.GBM(0.04, 0.3, 50)
	cev := model.CEV(0.04, 0.3, 1.0, 50)
	require.InDelta(t, gbm.Diffusion(0, 42), cev.Diffusion(0, 42), 1e-12)
}

func TestCEV_SubunitBetaDampensVolAtHighLevels(t *testing.T) {
	s := model.CEV(0.04, 0.3, 0.5, 100)
	require.Less(t, s.Diffusion(0, 200), 0.3*200)
}

func TestHeston_Coefficients(t *testing.T) {
	h, err := model.Heston(0.04, 0.12, 0.015, 0.012, -0.6, 100, 0.025)
	require.NoError(t, err)

	x10, x20 := h.InitialConditions()
	require.Equal(t, 100.0, x10)
	require.Equal(t, 0.025, x20)
	require.Equal(t, -0.6, h.Correlation())
	require.InDelta(t, 4.0, h.Drift1(0, 100, 0.025), 1e-9)
	require.InDelta(t, math.Sqrt(0.025)*100, h.Diffusion1(0, 100, 0.025), 1e-9)
	require.InDelta(t, 0.12*(0.015-0.025), h.Drift2(0, 100, 0.025), 1e-9)
}

func TestHeston_VarianceDiffusionFlooredAtZero(t *testing.T) {
	h, err := model.Heston(0.04, 0.12, 0.015, 0.012, -0.6, 100, 0.025)
	require.NoError(t, err)
	// A negative variance state must not propagate NaN through sqrt.
	require.False(t, math.IsNaN(h.Diffusion1(0, 100, -0.01)))
	require.False(t, math.IsNaN(h.Diffusion2(0, 100, -0.01)))
}

func TestHeston_RejectsInvalidCorrelation(t *testing.T) {
	_, err := model.Heston(0.04, 0.12, 0.015, 0.012, 1.5, 100, 0.025)
	require.ErrorIs(t, err, sde.ErrInvalidCorrelation)
}
