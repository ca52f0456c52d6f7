package gaterm_test

import (
	"fmt"

	"github.com/katalvlaran/tauvec/gaterm"
)

// ExampleAdd demonstrates merge-by-key addition of two vector terms.
func ExampleAdd() {
	v1 := gaterm.Vector([]gaterm.VectorComponent[float64]{
		{Index: 1, Coeff: 2},
		{Index: 2, Coeff: 3},
	})
	v2 := gaterm.Vector([]gaterm.VectorComponent[float64]{
		{Index: 1, Coeff: 1},
		{Index: 3, Coeff: 4},
	})

	sum, err := gaterm.Add(v1, v2)
	if err != nil {
		fmt.Println("add failed:", err)

		return
	}
	fmt.Println(sum)
	// Output: Vector(e1:3, e2:3, e3:4)
}

// ExampleAdd_gradeMismatch shows the legality gate: terms of different
// grades never add.
func ExampleAdd_gradeMismatch() {
	s := gaterm.Scalar(1.0)
	v := gaterm.Vector([]gaterm.VectorComponent[float64]{{Index: 1, Coeff: 2}})

	_, err := gaterm.Add(s, v)
	fmt.Println(err)
	// Output: gaterm: cannot add Scalar to Vector: grades differ
}

// ExampleNorm computes the Euclidean norm of a 3-4-5 vector.
func ExampleNorm() {
	v := gaterm.Vector([]gaterm.VectorComponent[float64]{
		{Index: 1, Coeff: 3},
		{Index: 2, Coeff: 4},
	})

	fmt.Println(gaterm.Norm(v))
	// Output: 5
}

// ExampleGeometricProduct multiplies two orthogonal basis vectors into
// the bivector of their plane.
func ExampleGeometricProduct() {
	e1 := gaterm.Vector([]gaterm.VectorComponent[float64]{{Index: 1, Coeff: 1}})
	e2 := gaterm.Vector([]gaterm.VectorComponent[float64]{{Index: 2, Coeff: 1}})

	p, err := gaterm.GeometricProduct(e1, e2)
	if err != nil {
		fmt.Println("product failed:", err)

		return
	}
	fmt.Println(p)
	// Output: Bivector(e1e2:1)
}

// ExampleGeometricProductGrades looks up the grade set a product of two
// vectors may contain.
func ExampleGeometricProductGrades() {
	set := gaterm.GeometricProductGrades(gaterm.GradeVector, gaterm.GradeVector)
	fmt.Println(set)
	// Output: {Scalar, Bivector}
}
