// Package marine derives buoyancy and hydrostatic pressure from
// dimension-checked quantities.
//
// All formulas are built purely from units arithmetic, so a wrongly
// dimensioned input fails before any physics runs. Values use the
// standard seawater constants below; float64 only.
package marine

import (
	"errors"

	"github.com/katalvlaran/tauvec/units"
)

// Physical constants for standard seawater.
const (
	waterDensityKgM3      = 1025.0
	gravityMS2            = 9.81
	atmosphericPressurePa = 101325.0
)

var (
	// ErrNotVolume fires when BuoyancyForce receives anything but an
	// L³ quantity.
	ErrNotVolume = errors.New("marine: quantity is not a volume")

	// ErrNotDepth fires when PressureAtDepth receives anything but an
	// L¹ quantity.
	ErrNotDepth = errors.New("marine: quantity is not a length")
)

// WaterDensity returns the density of seawater, 1025 kg/m³.
func WaterDensity() units.Quantity[float64] {
	return units.NewQuantity(waterDensityKgM3, units.DimDensity)
}

// Gravity returns standard gravitational acceleration, 9.81 m/s².
func Gravity() units.Quantity[float64] {
	return units.NewQuantity(gravityMS2, units.DimAcceleration)
}

// AtmosphericPressure returns standard pressure at sea level, 101325 Pa.
func AtmosphericPressure() units.Quantity[float64] {
	return units.Pascals(atmosphericPressurePa)
}

// BuoyancyForce returns the upward force ρ·g·V on a displaced volume.
// The input must carry dimension L³; the result carries force.
func BuoyancyForce(volume units.Quantity[float64]) (units.Quantity[float64], error) {
	if volume.Dim() != units.DimVolume {
		return units.Quantity[float64]{}, ErrNotVolume
	}

	return WaterDensity().Mul(Gravity()).Mul(volume), nil
}

// PressureAtDepth returns absolute pressure at a depth below the
// surface: atmospheric + ρ·g·h. The input must carry dimension L¹; the
// result carries pressure. Negative depths extrapolate above the
// surface; no clamping is applied.
func PressureAtDepth(depth units.Quantity[float64]) (units.Quantity[float64], error) {
	if depth.Dim() != units.DimLength {
		return units.Quantity[float64]{}, ErrNotDepth
	}

	hydrostatic := WaterDensity().Mul(Gravity()).Mul(depth)

	return AtmosphericPressure().Add(hydrostatic)
}
