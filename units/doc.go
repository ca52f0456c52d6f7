// Package units implements dimension-tagged physical quantities over
// the seven SI base dimensions.
//
// # What units does
//
//   - Dimension: a vector of int8 exponents over mass, length, time,
//     current, temperature, amount and luminosity. Dimensions add under
//     multiplication and subtract under division; they compare with ==.
//   - Quantity[T]: an immutable float value tagged with a Dimension.
//     Same-dimension quantities Add, Sub and order; any two quantities
//     Mul and Div. Values are always stored in SI base units.
//   - Unit constructors (Meters, Knots, Horsepower, Degrees, ...):
//     scale their argument into base units at construction, so the rest
//     of the package never sees a non-SI number.
//   - Read-backs (InKnots, InDegrees, ...): convert a base-unit value
//     back into a named unit, after checking the dimension.
//   - Math: Sin/Cos/Tan on dimensionless quantities, Sqrt with halved
//     exponents, Abs.
//
// # Legality
//
// Add, Sub, Less and Greater require identical dimensions and fail with
// *DimensionMismatchError (matching the ErrDimensionMismatch sentinel)
// before touching the values. Mul and Div are total. No operation
// panics on caller input; division by zero follows IEEE 754.
//
// # Angles
//
// Plane angle is dimensionless. The angle constructors use the tau
// convention: Turns(1) stores τ radians and Degrees(90) stores τ/4.
// The angle package builds a richer type on top of these conversions.
//
// # Numeric policy
//
// NaN and Inf flow through every operation untouched; validation gates
// dimensions, never values.
package units
