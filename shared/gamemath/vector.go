package gamemath

import "math"

// Vector is an immutable 2D coordinate or displacement in tile units.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the componentwise sum of v and other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// CheckedPlus is Plus for operands that come from outside the simulation.
// It fails with an invalid-operand TypeError when either side is not a
// finite vector.
func (v Vector) CheckedPlus(other Vector) (Vector, error) {
	if err := v.Validate("plus", ReasonInvalidOperand); err != nil {
		return Vector{}, err
	}
	if err := other.Validate("plus", ReasonInvalidOperand); err != nil {
		return Vector{}, err
	}
	return v.Plus(other), nil
}

// Times returns v scaled by k. Times(1) is the identity.
func (v Vector) Times(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Finite reports whether both components are real numbers.
func (v Vector) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Validate returns a TypeError for op when v is not a usable coordinate.
func (v Vector) Validate(op string, reason Reason) error {
	if v.Finite() {
		return nil
	}
	return &TypeError{Op: op, Reason: reason, Value: v}
}
