package units

import "github.com/katalvlaran/tauvec/gaterm"

// In reads q back in the unit defined by scale (that unit's size in SI
// base units) after checking the dimension. The named helpers below
// cover the units this package constructs.
func In[T gaterm.Float](q Quantity[T], scale T, dim Dimension) (T, error) {
	if q.Dim() != dim {
		return 0, &DimensionMismatchError{Left: q.Dim(), Right: dim}
	}

	return q.Value() / scale, nil
}

// Length read-backs.

func InMeters[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, 1, DimLength) }
func InCentimeters[T gaterm.Float](q Quantity[T]) (T, error) {
	return In(q, centimeterInMeters, DimLength)
}
func InMillimeters[T gaterm.Float](q Quantity[T]) (T, error) {
	return In(q, millimeterInMeters, DimLength)
}
func InKilometers[T gaterm.Float](q Quantity[T]) (T, error) {
	return In(q, kilometerInMeters, DimLength)
}

// Time read-backs.

func InSeconds[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, 1, DimTime) }
func InMinutes[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, minuteInSeconds, DimTime) }
func InHours[T gaterm.Float](q Quantity[T]) (T, error)   { return In(q, hourInSeconds, DimTime) }

// Mass read-backs.

func InKilograms[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, 1, DimMass) }
func InGrams[T gaterm.Float](q Quantity[T]) (T, error)     { return In(q, gramInKilograms, DimMass) }
func InTonnes[T gaterm.Float](q Quantity[T]) (T, error)    { return In(q, tonneInKilograms, DimMass) }

// Speed read-backs.

func InMetersPerSecond[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, 1, DimVelocity) }
func InKilometersPerHour[T gaterm.Float](q Quantity[T]) (T, error) {
	return In(q, kmhInMetersPerSecond, DimVelocity)
}
func InKnots[T gaterm.Float](q Quantity[T]) (T, error) {
	return In(q, knotInMetersPerSecond, DimVelocity)
}

// Force, energy, power, pressure read-backs.

func InNewtons[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, 1, DimForce) }
func InKilonewtons[T gaterm.Float](q Quantity[T]) (T, error) {
	return In(q, kilonewtonInNewtons, DimForce)
}
func InJoules[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, 1, DimEnergy) }
func InKilowattHours[T gaterm.Float](q Quantity[T]) (T, error) {
	return In(q, kilowattHourInJoules, DimEnergy)
}
func InWatts[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, 1, DimPower) }
func InHorsepower[T gaterm.Float](q Quantity[T]) (T, error) {
	return In(q, horsepowerInWatts, DimPower)
}
func InPascals[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, 1, DimPressure) }

// Angle read-backs. Radians are stored directly, so InRadians only
// checks that the quantity is dimensionless.

func InRadians[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, 1, Dimensionless) }
func InDegrees[T gaterm.Float](q Quantity[T]) (T, error) {
	return In(q, degreeInRadians, Dimensionless)
}
func InTurns[T gaterm.Float](q Quantity[T]) (T, error) { return In(q, turnInRadians, Dimensionless) }
func InRPM[T gaterm.Float](q Quantity[T]) (T, error) {
	return In(q, rpmInRadiansPS, DimAngularVelocity)
}

// DegreesToRadians converts a bare number of degrees to radians.
func DegreesToRadians[T gaterm.Float](deg T) T {
	return deg * degreeInRadians
}

// RadiansToDegrees converts a bare number of radians to degrees.
func RadiansToDegrees[T gaterm.Float](rad T) T {
	return rad / degreeInRadians
}
