package units

import (
	"strconv"
	"strings"
)

// Dimension is a vector of the seven SI base-dimension exponents. The
// zero value is dimensionless. Dimensions compare with ==.
type Dimension struct {
	Mass        int8
	Length      int8
	Time        int8
	Current     int8
	Temperature int8
	Amount      int8
	Luminosity  int8
}

// Named dimensions used throughout the package.
var (
	Dimensionless = Dimension{}

	DimMass        = Dimension{Mass: 1}
	DimLength      = Dimension{Length: 1}
	DimTime        = Dimension{Time: 1}
	DimCurrent     = Dimension{Current: 1}
	DimTemperature = Dimension{Temperature: 1}
	DimAmount      = Dimension{Amount: 1}
	DimLuminosity  = Dimension{Luminosity: 1}

	DimArea            = Dimension{Length: 2}
	DimVolume          = Dimension{Length: 3}
	DimVelocity        = Dimension{Length: 1, Time: -1}
	DimAcceleration    = Dimension{Length: 1, Time: -2}
	DimForce           = Dimension{Mass: 1, Length: 1, Time: -2}
	DimEnergy          = Dimension{Mass: 1, Length: 2, Time: -2}
	DimPower           = Dimension{Mass: 1, Length: 2, Time: -3}
	DimPressure        = Dimension{Mass: 1, Length: -1, Time: -2}
	DimDensity         = Dimension{Mass: 1, Length: -3}
	DimAngularVelocity = Dimension{Time: -1}
)

// Add sums the exponent vectors (the dimension of a product).
func (d Dimension) Add(o Dimension) Dimension {
	return Dimension{
		Mass:        d.Mass + o.Mass,
		Length:      d.Length + o.Length,
		Time:        d.Time + o.Time,
		Current:     d.Current + o.Current,
		Temperature: d.Temperature + o.Temperature,
		Amount:      d.Amount + o.Amount,
		Luminosity:  d.Luminosity + o.Luminosity,
	}
}

// Sub subtracts the exponent vectors (the dimension of a quotient).
func (d Dimension) Sub(o Dimension) Dimension {
	return d.Add(o.Neg())
}

// Neg negates every exponent (the dimension of a reciprocal).
func (d Dimension) Neg() Dimension {
	return Dimension{
		Mass:        -d.Mass,
		Length:      -d.Length,
		Time:        -d.Time,
		Current:     -d.Current,
		Temperature: -d.Temperature,
		Amount:      -d.Amount,
		Luminosity:  -d.Luminosity,
	}
}

// IsDimensionless reports whether every exponent is zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// exponents pairs each base-unit symbol with its exponent, in
// conventional SI order.
func (d Dimension) exponents() [7]struct {
	symbol string
	exp    int8
} {
	return [7]struct {
		symbol string
		exp    int8
	}{
		{"kg", d.Mass},
		{"m", d.Length},
		{"s", d.Time},
		{"A", d.Current},
		{"K", d.Temperature},
		{"mol", d.Amount},
		{"cd", d.Luminosity},
	}
}

// String renders the dimension in base units, e.g. "kg·m·s^-2".
// The dimensionless dimension renders as "1".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "1"
	}

	parts := make([]string, 0, 7)
	for _, e := range d.exponents() {
		switch {
		case e.exp == 0:
		case e.exp == 1:
			parts = append(parts, e.symbol)
		default:
			parts = append(parts, e.symbol+"^"+strconv.Itoa(int(e.exp)))
		}
	}

	return strings.Join(parts, "·")
}
