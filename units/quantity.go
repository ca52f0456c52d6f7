package units

import (
	"strconv"

	"github.com/katalvlaran/tauvec/gaterm"
)

// Quantity is an immutable numeric value tagged with a Dimension. Same-
// dimension quantities add, subtract and compare; any two quantities
// multiply and divide, with the exponent vectors summing or
// differencing.
type Quantity[T gaterm.Float] struct {
	value T
	dim   Dimension
}

// NewQuantity tags value with dim.
func NewQuantity[T gaterm.Float](value T, dim Dimension) Quantity[T] {
	return Quantity[T]{value: value, dim: dim}
}

// Value returns the numeric payload in SI base units.
func (q Quantity[T]) Value() T {
	return q.value
}

// Dim returns the dimension tag.
func (q Quantity[T]) Dim() Dimension {
	return q.dim
}

// MassDim returns the mass exponent.
func (q Quantity[T]) MassDim() int {
	return int(q.dim.Mass)
}

// LengthDim returns the length exponent.
func (q Quantity[T]) LengthDim() int {
	return int(q.dim.Length)
}

// TimeDim returns the time exponent.
func (q Quantity[T]) TimeDim() int {
	return int(q.dim.Time)
}

// Add returns q + o. Differing dimensions fail with
// *DimensionMismatchError.
func (q Quantity[T]) Add(o Quantity[T]) (Quantity[T], error) {
	if q.dim != o.dim {
		return Quantity[T]{}, &DimensionMismatchError{Left: q.dim, Right: o.dim}
	}

	return Quantity[T]{value: q.value + o.value, dim: q.dim}, nil
}

// Sub returns q − o under the same gate as Add.
func (q Quantity[T]) Sub(o Quantity[T]) (Quantity[T], error) {
	if q.dim != o.dim {
		return Quantity[T]{}, &DimensionMismatchError{Left: q.dim, Right: o.dim}
	}

	return Quantity[T]{value: q.value - o.value, dim: q.dim}, nil
}

// Mul returns q·o; the exponent vectors sum. Always legal.
func (q Quantity[T]) Mul(o Quantity[T]) Quantity[T] {
	return Quantity[T]{value: q.value * o.value, dim: q.dim.Add(o.dim)}
}

// Div returns q/o; the exponent vectors difference. Division by a zero
// value follows IEEE 754 (Inf or NaN), not a panic.
func (q Quantity[T]) Div(o Quantity[T]) Quantity[T] {
	return Quantity[T]{value: q.value / o.value, dim: q.dim.Sub(o.dim)}
}

// Scale multiplies the value by a bare scalar, keeping the dimension.
func (q Quantity[T]) Scale(s T) Quantity[T] {
	return Quantity[T]{value: s * q.value, dim: q.dim}
}

// DivScalar divides the value by a bare scalar, keeping the dimension.
func (q Quantity[T]) DivScalar(s T) Quantity[T] {
	return Quantity[T]{value: q.value / s, dim: q.dim}
}

// Neg returns the quantity with the value negated.
func (q Quantity[T]) Neg() Quantity[T] {
	return Quantity[T]{value: -q.value, dim: q.dim}
}

// Less reports q < o. Ordering across dimensions is meaningless, so
// differing dimensions fail with *DimensionMismatchError.
func (q Quantity[T]) Less(o Quantity[T]) (bool, error) {
	if q.dim != o.dim {
		return false, &DimensionMismatchError{Left: q.dim, Right: o.dim}
	}

	return q.value < o.value, nil
}

// Greater reports q > o under the same gate as Less.
func (q Quantity[T]) Greater(o Quantity[T]) (bool, error) {
	if q.dim != o.dim {
		return false, &DimensionMismatchError{Left: q.dim, Right: o.dim}
	}

	return q.value > o.value, nil
}

// String renders the value followed by the base-unit dimension, e.g.
// "5 m·s^-1". Dimensionless quantities render the bare number.
func (q Quantity[T]) String() string {
	v := strconv.FormatFloat(float64(q.value), 'g', -1, 64)
	if q.dim.IsDimensionless() {
		return v
	}

	return v + " " + q.dim.String()
}
