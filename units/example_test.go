package units_test

import (
	"fmt"

	"github.com/katalvlaran/tauvec/units"
)

// ExampleQuantity_Div derives a velocity from a distance and a time.
func ExampleQuantity_Div() {
	v := units.Meters(10.0).Div(units.Seconds(2.0))

	fmt.Println(v)
	fmt.Println(v.LengthDim(), v.TimeDim())
	// Output:
	// 5 m·s^-1
	// 1 -1
}

// ExampleInKnots reads a base-unit speed back in knots.
func ExampleInKnots() {
	cruise := units.KilometersPerHour(18.52)

	kn, err := units.InKnots(cruise)
	if err != nil {
		fmt.Println("conversion failed:", err)

		return
	}
	fmt.Printf("%.2f kn\n", kn)
	// Output: 10.00 kn
}
