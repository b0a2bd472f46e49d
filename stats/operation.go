// stats/operation.go
package stats

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is wrapped by ParseOperation and Compute when the
// operation name is not one of the supported operations.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names a statistic the engine can compute.
type Operation string

const (
	OpMean              Operation = "mean"
	OpVariance          Operation = "variance"
	OpStandardDeviation Operation = "standard_deviation"
)

// Operations returns the supported operations in display order.
func Operations() []Operation {
	return []Operation{OpMean, OpVariance, OpStandardDeviation}
}

// ParseOperation maps a name as typed on the command line to an Operation.
// Matching is exact.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations() {
		if string(op) == name {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Compute runs op over s.
func Compute(op Operation, s Sample) (float64, error) {
	switch op {
	case OpMean:
		return Mean(s)
	case OpVariance:
		return Variance(s)
	case OpStandardDeviation:
		return StandardDeviation(s)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
}
