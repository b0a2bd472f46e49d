// stats/stats_test.go
package stats

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownSamples(t *testing.T) {
	tests := []struct {
		name     string
		sample   Sample
		mean     float64
		variance float64
		stddev   float64
	}{
		{name: "textbook", sample: Sample{2, 4, 4, 4, 5, 5, 7, 9}, mean: 5, variance: 4, stddev: 2},
		{name: "one two three", sample: Sample{1, 2, 3}, mean: 2, variance: 2.0 / 3.0, stddev: math.Sqrt(2.0 / 3.0)},
		{name: "single", sample: Sample{42}, mean: 42, variance: 0, stddev: 0},
		{name: "negatives", sample: Sample{-1, 1}, mean: 0, variance: 1, stddev: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mean, err := Mean(tc.sample)
			require.NoError(t, err)
			assert.InDelta(t, tc.mean, mean, 1e-12)

			variance, err := Variance(tc.sample)
			require.NoError(t, err)
			assert.InDelta(t, tc.variance, variance, 1e-12)

			stddev, err := StandardDeviation(tc.sample)
			require.NoError(t, err)
			assert.InDelta(t, tc.stddev, stddev, 1e-12)
		})
	}
}

func TestOneTwoThreeRounded(t *testing.T) {
	variance, err := Variance(Sample{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.6667, variance, 1e-4)

	stddev, err := StandardDeviation(Sample{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.8165, stddev, 1e-4)
}

func TestEmptySample(t *testing.T) {
	for _, s := range []Sample{nil, {}} {
		_, err := Mean(s)
		assert.True(t, errors.Is(err, ErrEmptyInput), "mean: %v", err)

		// Composed operations surface the same value, not a wrapper.
		_, err = Variance(s)
		assert.Equal(t, ErrEmptyInput, err)

		_, err = StandardDeviation(s)
		assert.Equal(t, ErrEmptyInput, err)
	}
}

func TestPopulationNotSampleVariance(t *testing.T) {
	// n-1 would give 2.
	v, err := Variance(Sample{1, 3})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestConstantSample(t *testing.T) {
	for _, c := range []float64{0, 1, -7, 0.5, 42, 1e6} {
		s := make(Sample, 17)
		for i := range s {
			s[i] = c
		}
		v, err := Variance(s)
		require.NoError(t, err)
		assert.Zero(t, v, "variance of constant %v", c)

		sd, err := StandardDeviation(s)
		require.NoError(t, err)
		assert.Zero(t, sd, "stddev of constant %v", c)
	}
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(100)
		s := make(Sample, n)
		lo, hi := math.Inf(1), math.Inf(-1)
		for j := range s {
			s[j] = rng.NormFloat64()*1000 + 50
			lo = math.Min(lo, s[j])
			hi = math.Max(hi, s[j])
		}

		mean, err := Mean(s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, mean, lo-1e-9)
		assert.LessOrEqual(t, mean, hi+1e-9)

		variance, err := Variance(s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, variance, 0.0)

		stddev, err := StandardDeviation(s)
		require.NoError(t, err)
		assert.Equal(t, math.Sqrt(variance), stddev)
	}
}

func TestInputNotMutated(t *testing.T) {
	s := Sample{9, 1, 5}
	_, _ = StandardDeviation(s)
	assert.Equal(t, Sample{9, 1, 5}, s)
}

func TestNaNPropagates(t *testing.T) {
	s := Sample{1, math.NaN(), 3}
	mean, err := Mean(s)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mean))

	sd, err := StandardDeviation(s)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(sd))
}

func TestInfinityPropagates(t *testing.T) {
	mean, err := Mean(Sample{1, math.Inf(1)})
	require.NoError(t, err)
	assert.True(t, math.IsInf(mean, 1))
}
