package gaterm_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tauvec/gaterm"
)

// benchVector builds a dense 3-component vector with seeded coefficients.
func benchVector(rng *rand.Rand) gaterm.Term[float64] {
	return gaterm.Vector([]gaterm.VectorComponent[float64]{
		{Index: 1, Coeff: rng.NormFloat64()},
		{Index: 2, Coeff: rng.NormFloat64()},
		{Index: 3, Coeff: rng.NormFloat64()},
	})
}

func BenchmarkAdd_Vectors(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	lhs, rhs := benchVector(rng), benchVector(rng)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gaterm.Add(lhs, rhs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdd_Multivectors(b *testing.B) {
	lhs := gaterm.Multivector([]gaterm.Blade[float64]{
		{Indices: nil, Coeff: 1},
		{Indices: []int{1}, Coeff: 2},
		{Indices: []int{1, 2}, Coeff: 3},
		{Indices: []int{1, 2, 3}, Coeff: 4},
	})
	rhs := gaterm.Multivector([]gaterm.Blade[float64]{
		{Indices: []int{1, 2}, Coeff: -3},
		{Indices: []int{2, 3}, Coeff: 5},
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gaterm.Add(lhs, rhs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNorm_Vector(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	v := benchVector(rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gaterm.Norm(v)
	}
}

func BenchmarkGeometricProduct_Vectors(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	lhs, rhs := benchVector(rng), benchVector(rng)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gaterm.GeometricProduct(lhs, rhs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCanonicalize_Multivector(b *testing.B) {
	m := gaterm.Multivector([]gaterm.Blade[float64]{
		{Indices: []int{2, 1}, Coeff: 1},
		{Indices: []int{3, 1, 2}, Coeff: 2},
		{Indices: []int{1, 3}, Coeff: -1},
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gaterm.Canonicalize(m); err != nil {
			b.Fatal(err)
		}
	}
}
