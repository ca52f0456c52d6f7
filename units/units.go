package units

import "github.com/katalvlaran/tauvec/gaterm"

// tau is the full turn in radians. Angle constructors use the tau
// convention throughout: one turn is τ, not 2π.
const tau = 6.283185307179586

// Conversion factors into SI base units. Single source of truth for the
// constructors and the In* read-backs below.
const (
	centimeterInMeters = 0.01
	millimeterInMeters = 0.001
	kilometerInMeters  = 1000

	millisecondInSeconds = 0.001
	minuteInSeconds      = 60
	hourInSeconds        = 3600

	gramInKilograms  = 0.001
	tonneInKilograms = 1000

	kmhInMetersPerSecond  = 1.0 / 3.6
	knotInMetersPerSecond = 0.514444

	kilonewtonInNewtons = 1000

	kilojouleInJoules    = 1000
	wattHourInJoules     = 3600
	kilowattHourInJoules = 3.6e6

	kilowattInWatts   = 1000
	horsepowerInWatts = 745.7

	degreeInRadians = tau / 360
	turnInRadians   = tau
	rpmInRadiansPS  = tau / 60
)

// Length.

func Meters[T gaterm.Float](v T) Quantity[T]      { return NewQuantity(v, DimLength) }
func Centimeters[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v*centimeterInMeters, DimLength) }
func Millimeters[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v*millimeterInMeters, DimLength) }
func Kilometers[T gaterm.Float](v T) Quantity[T]  { return NewQuantity(v*kilometerInMeters, DimLength) }

// Time.

func Seconds[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v, DimTime) }
func Milliseconds[T gaterm.Float](v T) Quantity[T] {
	return NewQuantity(v*millisecondInSeconds, DimTime)
}
func Minutes[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v*minuteInSeconds, DimTime) }
func Hours[T gaterm.Float](v T) Quantity[T]   { return NewQuantity(v*hourInSeconds, DimTime) }

// Mass.

func Kilograms[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v, DimMass) }
func Grams[T gaterm.Float](v T) Quantity[T]     { return NewQuantity(v*gramInKilograms, DimMass) }
func Tonnes[T gaterm.Float](v T) Quantity[T]    { return NewQuantity(v*tonneInKilograms, DimMass) }

// Speed.

func MetersPerSecond[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v, DimVelocity) }
func KilometersPerHour[T gaterm.Float](v T) Quantity[T] {
	return NewQuantity(v*kmhInMetersPerSecond, DimVelocity)
}
func Knots[T gaterm.Float](v T) Quantity[T] {
	return NewQuantity(v*knotInMetersPerSecond, DimVelocity)
}

// Force, energy, power, pressure.

func Newtons[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v, DimForce) }
func Kilonewtons[T gaterm.Float](v T) Quantity[T] {
	return NewQuantity(v*kilonewtonInNewtons, DimForce)
}

func Joules[T gaterm.Float](v T) Quantity[T]    { return NewQuantity(v, DimEnergy) }
func Kilojoules[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v*kilojouleInJoules, DimEnergy) }
func WattHours[T gaterm.Float](v T) Quantity[T]  { return NewQuantity(v*wattHourInJoules, DimEnergy) }
func KilowattHours[T gaterm.Float](v T) Quantity[T] {
	return NewQuantity(v*kilowattHourInJoules, DimEnergy)
}

func Watts[T gaterm.Float](v T) Quantity[T]     { return NewQuantity(v, DimPower) }
func Kilowatts[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v*kilowattInWatts, DimPower) }
func Horsepower[T gaterm.Float](v T) Quantity[T] {
	return NewQuantity(v*horsepowerInWatts, DimPower)
}

func Pascals[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v, DimPressure) }

// Angles. Plane angle is dimensionless in SI; these constructors store
// radians under the tau convention.

func Radians[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v, Dimensionless) }
func Degrees[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v*degreeInRadians, Dimensionless) }
func Turns[T gaterm.Float](v T) Quantity[T]   { return NewQuantity(v*turnInRadians, Dimensionless) }

func RadiansPerSecond[T gaterm.Float](v T) Quantity[T] {
	return NewQuantity(v, DimAngularVelocity)
}
func RPM[T gaterm.Float](v T) Quantity[T] { return NewQuantity(v*rpmInRadiansPS, DimAngularVelocity) }
