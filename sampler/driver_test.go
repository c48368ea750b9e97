package sampler_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scmsampler/scm/complex"
	"github.com/scmsampler/scm/ensemble"
	"github.com/scmsampler/scm/random"
	"github.com/scmsampler/scm/sampler"
)

func ring(t *testing.T) *complex.Complex {
	t.Helper()
	// a 5-cycle of 2-facets: simplicial, every vertex has degree 2.
	facets := [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}
	k := complex.NewFromFacets(facets, 5)
	require.True(t, ensemble.IsSimplicialComplex(k))
	return k
}

func TestRunMCMCPreservesSequencesAndEmitsExpectedCount(t *testing.T) {
	k := ring(t)
	wantM, wantN, wantF := k.M(), k.N(), k.F()

	emitted := 0
	emit := sampler.EmitterFunc(func(got *complex.Complex) error {
		emitted++
		assert.Equal(t, wantM, got.M())
		assert.Equal(t, wantN, got.N())
		assert.Equal(t, wantF, got.F())
		assert.True(t, ensemble.IsSimplicialComplex(got))
		return nil
	})

	opts := sampler.Options{
		Seed:              42,
		BurnIn:            5,
		SamplingSteps:     4,
		SamplingFrequency: 3,
		LMin:              2,
		LMax:              4,
		Kind:              random.Uniform,
	}
	report, err := sampler.RunMCMC(k, opts, emit)
	require.NoError(t, err)

	assert.Equal(t, 4, emitted)
	assert.Equal(t, opts.SamplingSteps*opts.SamplingFrequency, report.Attempts)
	assert.GreaterOrEqual(t, report.Accepted, 0)
	assert.LessOrEqual(t, report.Accepted, report.Attempts)
}

func TestRunMCMCPropagatesEmitError(t *testing.T) {
	k := ring(t)
	boom := errors.New("boom")
	emit := sampler.EmitterFunc(func(*complex.Complex) error { return boom })

	opts := sampler.Options{Seed: 1, SamplingSteps: 1, SamplingFrequency: 1, LMin: 2, LMax: 3}
	_, err := sampler.RunMCMC(k, opts, emit)
	assert.ErrorIs(t, err, boom)
}

func TestRunRejectionEmitsOncePerSample(t *testing.T) {
	k := ring(t)
	rng := rand.New(rand.NewSource(7))

	emitted := 0
	emit := sampler.EmitterFunc(func(got *complex.Complex) error {
		emitted++
		assert.True(t, ensemble.IsSimplicialComplex(got))
		return nil
	})

	report, err := sampler.RunRejection(k, 3, rng, emit)
	require.NoError(t, err)
	assert.Equal(t, 3, emitted)
	assert.Equal(t, 3, report.Accepted)
	assert.GreaterOrEqual(t, report.Attempts, report.Accepted)
}

func TestResolveLMaxWarnsBelowRecommendedFloor(t *testing.T) {
	var warned string
	got := sampler.ResolveLMax(2, 20, 3, func(msg string) { warned = msg })
	assert.Equal(t, 2, got)
	assert.NotEmpty(t, warned)
}

func TestResolveLMaxFallsBackToDefault(t *testing.T) {
	got := sampler.ResolveLMax(0, 100, 2, nil)
	assert.GreaterOrEqual(t, got, 2)
}

func TestDefaultScheduleGrowsWithM(t *testing.T) {
	small := sampler.DefaultSchedule(10)
	large := sampler.DefaultSchedule(1000)
	assert.Greater(t, large, small)
}
