package problem

import "errors"

// Sentinel errors returned by Validate. Callers match them with errors.Is;
// wrapping sites add field context with fmt.Errorf("...: %w", err).
var (
	// ErrDimensionMismatch indicates that the lengths of related arrays
	// disagree (offsets vs constraint count, indices vs values, bound
	// vectors vs their dimension).
	ErrDimensionMismatch = errors.New("problem: dimension mismatch")

	// ErrIndexOutOfRange indicates a column index outside [0, NumVariables)
	// or a row-offset sequence that is not a valid CSR prefix.
	ErrIndexOutOfRange = errors.New("problem: index out of range")

	// ErrBoundOrder indicates a resolved bound pair with lower > upper.
	ErrBoundOrder = errors.New("problem: lower bound exceeds upper bound")
)
