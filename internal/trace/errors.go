package trace

import "errors"

var (
	// ErrInvalidTrace indicates a trace that breaks a structural invariant.
	ErrInvalidTrace = errors.New("trace: invalid trace")

	// ErrInvalidArray indicates an input with NaN or infinite values.
	ErrInvalidArray = errors.New("trace: array contains non-finite values")
)
