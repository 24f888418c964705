package qsim

import (
	"errors"
	"fmt"
)

// Domain errors for gate and channel construction.
var (
	// ErrInvalidProbability indicates a probability parameter outside [0, 1].
	ErrInvalidProbability = errors.New("qsim: probability must be between 0 and 1")

	// ErrInvalidRelaxation indicates a relaxation time parameter that cannot
	// describe a physical channel.
	ErrInvalidRelaxation = errors.New("qsim: invalid relaxation time parameter")

	// ErrInvalidGateTime indicates a negative gate duration.
	ErrInvalidGateTime = errors.New("qsim: gate time must be non-negative")

	// ErrInvalidWires indicates a wire sequence with the wrong count,
	// duplicates, or negative indices.
	ErrInvalidWires = errors.New("qsim: invalid wire sequence")

	// ErrWireOutOfRange indicates an operation referencing a wire the
	// circuit does not have.
	ErrWireOutOfRange = errors.New("qsim: wire index out of range for circuit")

	// ErrInvalidState indicates a state whose trace drifted away from 1.
	ErrInvalidState = errors.New("qsim: state trace diverged")

	// ErrEmptyState indicates a state with no amplitudes.
	ErrEmptyState = errors.New("qsim: state has no amplitudes")
)

/*
ValidationError reports a parameter that failed physical validation during
gate or channel construction. It names the offending parameter and the
constraint it violated so callers can tell which of several parameters was
out of range.
*/
type ValidationError struct {
	Op         string  // constructor that rejected the parameter
	Param      string  // parameter name, e.g. "t2"
	Value      float64 // the rejected value
	Constraint string  // human-readable constraint, e.g. "t2 <= 2*t1"
	Wrapped    error   // sentinel categorizing the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s = %v violates %s: %v",
		e.Op, e.Param, e.Value, e.Constraint, e.Wrapped)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// validationErr builds a ValidationError in one line for constructors.
func validationErr(op, param string, value float64, constraint string, sentinel error) error {
	return &ValidationError{
		Op:         op,
		Param:      param,
		Value:      value,
		Constraint: constraint,
		Wrapped:    sentinel,
	}
}
