package units

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch fires when an operation requires both
	// operands to carry the same dimension and they do not.
	ErrDimensionMismatch = errors.New("units: dimension mismatch")

	// ErrNotDimensionless fires when a trigonometric function receives
	// a quantity with nonzero exponents.
	ErrNotDimensionless = errors.New("units: quantity is not dimensionless")

	// ErrOddExponent fires when Sqrt receives a dimension with an odd
	// exponent, which has no dimension-valued square root.
	ErrOddExponent = errors.New("units: dimension exponent is odd")
)

// DimensionMismatchError reports the two dimensions that failed to
// match. It matches ErrDimensionMismatch under errors.Is.
type DimensionMismatchError struct {
	Left  Dimension
	Right Dimension
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("units: dimension mismatch: %s vs %s", e.Left, e.Right)
}

// Is lets errors.Is treat any mismatch as the package sentinel.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
