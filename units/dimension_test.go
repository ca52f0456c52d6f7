package units_test

import (
	"testing"

	"github.com/katalvlaran/tauvec/units"
	"github.com/stretchr/testify/assert"
)

func TestDimension_Arithmetic(t *testing.T) {
	// velocity = length − time.
	assert.Equal(t, units.DimVelocity, units.DimLength.Sub(units.DimTime))

	// force = mass + acceleration.
	assert.Equal(t, units.DimForce, units.DimMass.Add(units.DimAcceleration))

	// pressure = force − area.
	assert.Equal(t, units.DimPressure, units.DimForce.Sub(units.DimArea))

	// energy = force + length; power = energy − time.
	assert.Equal(t, units.DimEnergy, units.DimForce.Add(units.DimLength))
	assert.Equal(t, units.DimPower, units.DimEnergy.Sub(units.DimTime))

	// density = mass − volume.
	assert.Equal(t, units.DimDensity, units.DimMass.Sub(units.DimVolume))

	// d + (−d) = dimensionless for every named dimension.
	for _, d := range []units.Dimension{
		units.DimMass, units.DimVelocity, units.DimForce,
		units.DimPressure, units.DimEnergy, units.DimDensity,
	} {
		assert.True(t, d.Add(d.Neg()).IsDimensionless(), "%s", d)
	}
}

func TestDimension_IsDimensionless(t *testing.T) {
	assert.True(t, units.Dimensionless.IsDimensionless())
	assert.True(t, units.Dimension{}.IsDimensionless())
	assert.False(t, units.DimLength.IsDimensionless())
	assert.False(t, units.Dimension{Luminosity: -1}.IsDimensionless())
}

func TestDimension_String(t *testing.T) {
	assert.Equal(t, "1", units.Dimensionless.String())
	assert.Equal(t, "m", units.DimLength.String())
	assert.Equal(t, "m·s^-1", units.DimVelocity.String())
	assert.Equal(t, "kg·m·s^-2", units.DimForce.String())
	assert.Equal(t, "kg·m^-1·s^-2", units.DimPressure.String())
	assert.Equal(t, "kg·m^-3", units.DimDensity.String())
}
