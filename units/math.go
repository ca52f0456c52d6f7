package units

import (
	"math"

	"github.com/katalvlaran/tauvec/gaterm"
)

// Sin evaluates sin of a dimensionless quantity (an angle in radians).
// Quantities with nonzero exponents fail with ErrNotDimensionless.
func Sin[T gaterm.Float](q Quantity[T]) (T, error) {
	if !q.Dim().IsDimensionless() {
		return 0, ErrNotDimensionless
	}

	return T(math.Sin(float64(q.Value()))), nil
}

// Cos evaluates cos of a dimensionless quantity.
func Cos[T gaterm.Float](q Quantity[T]) (T, error) {
	if !q.Dim().IsDimensionless() {
		return 0, ErrNotDimensionless
	}

	return T(math.Cos(float64(q.Value()))), nil
}

// Tan evaluates tan of a dimensionless quantity.
func Tan[T gaterm.Float](q Quantity[T]) (T, error) {
	if !q.Dim().IsDimensionless() {
		return 0, ErrNotDimensionless
	}

	return T(math.Tan(float64(q.Value()))), nil
}

// Sqrt halves every dimension exponent. An odd exponent has no
// dimension-valued root and fails with ErrOddExponent. A negative value
// yields NaN, as math.Sqrt does.
func Sqrt[T gaterm.Float](q Quantity[T]) (Quantity[T], error) {
	d := q.Dim()
	for _, e := range []int8{d.Mass, d.Length, d.Time, d.Current, d.Temperature, d.Amount, d.Luminosity} {
		if e%2 != 0 {
			return Quantity[T]{}, ErrOddExponent
		}
	}

	half := Dimension{
		Mass:        d.Mass / 2,
		Length:      d.Length / 2,
		Time:        d.Time / 2,
		Current:     d.Current / 2,
		Temperature: d.Temperature / 2,
		Amount:      d.Amount / 2,
		Luminosity:  d.Luminosity / 2,
	}

	return NewQuantity(T(math.Sqrt(float64(q.Value()))), half), nil
}

// Abs returns the quantity with a non-negative value.
func Abs[T gaterm.Float](q Quantity[T]) Quantity[T] {
	return NewQuantity(T(math.Abs(float64(q.Value()))), q.Dim())
}
