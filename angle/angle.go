// Package angle implements plane angles under the tau convention: one
// full turn is τ = 2π radians, a quarter turn is τ/4, and fractions of
// a turn read directly off the constant.
//
// Angle is an immutable float64 wrapper; all constructors and
// accessors convert between radians, degrees and turns exactly once.
package angle

import "math"

const (
	// Tau is the full turn in radians.
	Tau = 6.283185307179586

	// Pi is the half turn, kept for interop with math.* call sites.
	Pi = math.Pi
)

// Angle is a plane angle stored in radians.
type Angle struct {
	rad float64
}

// Named angles.
var (
	Zero        = Angle{}
	QuarterTurn = Angle{rad: Tau / 4}
	HalfTurn    = Angle{rad: Tau / 2}
	FullTurn    = Angle{rad: Tau}
)

// FromRadians wraps a radian measure.
func FromRadians(rad float64) Angle {
	return Angle{rad: rad}
}

// FromDegrees converts degrees: 360° is one turn.
func FromDegrees(deg float64) Angle {
	return Angle{rad: deg * (Tau / 360)}
}

// FromTurns converts whole and fractional turns.
func FromTurns(turns float64) Angle {
	return Angle{rad: turns * Tau}
}

// Radians returns the measure in radians.
func (a Angle) Radians() float64 {
	return a.rad
}

// Degrees returns the measure in degrees.
func (a Angle) Degrees() float64 {
	return a.rad / (Tau / 360)
}

// Turns returns the measure in turns.
func (a Angle) Turns() float64 {
	return a.rad / Tau
}

// Normalized wraps the angle into [0, τ). NaN and Inf pass through
// unchanged.
func (a Angle) Normalized() Angle {
	r := math.Mod(a.rad, Tau)
	if r < 0 {
		r += Tau
	}

	return Angle{rad: r}
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(a.rad)
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(a.rad)
}

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 {
	return math.Tan(a.rad)
}

// Add returns a + o.
func (a Angle) Add(o Angle) Angle {
	return Angle{rad: a.rad + o.rad}
}

// Sub returns a − o.
func (a Angle) Sub(o Angle) Angle {
	return Angle{rad: a.rad - o.rad}
}

// Neg returns the angle of opposite orientation.
func (a Angle) Neg() Angle {
	return Angle{rad: -a.rad}
}

// Scale multiplies the measure by s.
func (a Angle) Scale(s float64) Angle {
	return Angle{rad: s * a.rad}
}

// Div divides the measure by s; s = 0 follows IEEE 754.
func (a Angle) Div(s float64) Angle {
	return Angle{rad: a.rad / s}
}
