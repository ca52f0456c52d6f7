// Package tauvec is a type-tagged arithmetic toolkit for physics and
// robotics code: geometric-algebra terms tagged by grade, physical
// quantities tagged by SI dimension, and tau-convention angles.
//
// 🚀 What is tauvec?
//
//	A small, immutable, pure-Go library that catches two classes of
//	silent correctness bugs before they reach your numbers:
//		• Summing geometric-algebra elements of incompatible grade
//		• Adding or comparing physical quantities of incompatible units
//	while still allowing every mathematically valid product, conversion
//	and scalar scaling.
//
// ✨ Why choose tauvec?
//
//   - Every value is immutable — operations return new values, operands
//     never mutate, concurrent use needs no synchronization
//   - Mismatches surface as typed errors at the operation boundary,
//     never as a silent wrong answer and never as a panic
//   - Tau convention (τ = 2π) throughout the angle helpers, for rotation
//     arithmetic you can read
//
// Under the hood, everything is organized under focused subpackages:
//
//	gaterm/   — grades, blades, the five-variant GA term, merge-by-key
//	            addition, products and product-grade tables
//	graded/   — a grade-tagged value wrapper gating arithmetic on tags
//	units/    — 7-exponent dimension vectors, Quantity arithmetic and
//	            unit constructors (meters, knots, kilowatt-hours, …)
//	marine/   — derived marine formulas (buoyancy, pressure at depth)
//	angle/    — tau-convention angles with normalization and trig
//	render/   — presentation formatting with an explicit Config
//	testspec/ — JSON test-specification loader and runner that drives
//	            the real operation API by name
//
// Quick taste:
//
//	v := gaterm.Vector([]gaterm.VectorComponent[float64]{{Index: 1, Coeff: 3}, {Index: 2, Coeff: 4}})
//	n := gaterm.Norm(v)                          // 5
//	s := units.Meters(10.0).Div(units.Seconds(2.0)) // 5 m/s, dimension L·T⁻¹
//
// Dive into examples/ for full navigation and dive-physics scenarios.
//
//	go get github.com/katalvlaran/tauvec
package tauvec
