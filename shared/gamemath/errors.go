package gamemath

import (
	"errors"
	"fmt"
)

// Reason classifies a TypeError.
type Reason string

const (
	ReasonInvalidOperand  Reason = "invalid-operand"
	ReasonInvalidArgument Reason = "invalid-argument"
)

// TypeError reports a geometric operation that received a value of the wrong
// shape: a nil actor, a non-finite vector or a negative size. These are
// caller bugs and are returned unmodified up the stack.
type TypeError struct {
	Op     string
	Reason Reason
	Value  any
}

func (e *TypeError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Op, e.Reason, e.Value)
}

// IsTypeError reports whether err is or wraps a *TypeError.
func IsTypeError(err error) bool {
	var te *TypeError
	return errors.As(err, &te)
}

// ReasonOf returns the reason of the TypeError in err's chain, or "".
func ReasonOf(err error) Reason {
	var te *TypeError
	if errors.As(err, &te) {
		return te.Reason
	}
	return ""
}
