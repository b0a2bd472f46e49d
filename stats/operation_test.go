// stats/operation_test.go
package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	for _, op := range Operations() {
		got, err := ParseOperation(string(op))
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	for _, bad := range []string{"", "median", "Mean", "standard-deviation", " mean"} {
		_, err := ParseOperation(bad)
		assert.True(t, errors.Is(err, ErrUnknownOperation), "%q: %v", bad, err)
	}
}

func TestOperationsOrder(t *testing.T) {
	assert.Equal(t, []Operation{OpMean, OpVariance, OpStandardDeviation}, Operations())
}

func TestCompute(t *testing.T) {
	s := Sample{2, 4, 4, 4, 5, 5, 7, 9}
	want := map[Operation]float64{OpMean: 5, OpVariance: 4, OpStandardDeviation: 2}
	for op, v := range want {
		got, err := Compute(op, s)
		require.NoError(t, err)
		assert.Equal(t, v, got, string(op))
	}

	_, err := Compute(Operation("mode"), s)
	assert.True(t, errors.Is(err, ErrUnknownOperation))

	for _, op := range Operations() {
		_, err := Compute(op, nil)
		assert.Equal(t, ErrEmptyInput, err, string(op))
	}
}
