package gaterm_test

import (
	"testing"

	"github.com/katalvlaran/tauvec/gaterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrade_Names verifies the enumerated grade labels and Fixed.
func TestGrade_Names(t *testing.T) {
	assert.Equal(t, "Scalar", gaterm.GradeScalar.String())
	assert.Equal(t, "Vector", gaterm.GradeVector.String())
	assert.Equal(t, "Bivector", gaterm.GradeBivector.String())
	assert.Equal(t, "Trivector", gaterm.GradeTrivector.String())
	assert.Equal(t, "Multivector", gaterm.GradeGeneral.String())

	assert.True(t, gaterm.GradeScalar.Fixed())
	assert.True(t, gaterm.GradeTrivector.Fixed())
	assert.False(t, gaterm.GradeGeneral.Fixed())
}

// TestTerm_Grades verifies that each constructor yields its variant grade
// by structural inspection.
func TestTerm_Grades(t *testing.T) {
	assert.Equal(t, gaterm.GradeScalar, gaterm.Scalar(1.0).Grade())

	v := gaterm.Vector([]gaterm.VectorComponent[float64]{{Index: 1, Coeff: 2}, {Index: 2, Coeff: 3}})
	assert.Equal(t, gaterm.GradeVector, v.Grade())
	assert.True(t, gaterm.HasGrade(v, gaterm.GradeVector))
	assert.False(t, gaterm.HasGrade(v, gaterm.GradeScalar))

	b := gaterm.Bivector([]gaterm.BivectorComponent[float64]{{I: 1, J: 2, Coeff: 4}})
	assert.Equal(t, gaterm.GradeBivector, b.Grade())

	tv := gaterm.Trivector([]gaterm.TrivectorComponent[float64]{{I: 1, J: 2, K: 3, Coeff: 5}})
	assert.Equal(t, gaterm.GradeTrivector, tv.Grade())

	m := gaterm.Multivector([]gaterm.Blade[float64]{{Indices: []int{1, 2}, Coeff: 3}})
	assert.Equal(t, gaterm.GradeGeneral, m.Grade())
}

// TestBlade_Grade verifies grade derivation from the index-tuple length.
func TestBlade_Grade(t *testing.T) {
	assert.Equal(t, gaterm.GradeScalar, gaterm.Blade[float64]{Coeff: 1}.Grade())
	assert.Equal(t, gaterm.GradeVector, gaterm.Blade[float64]{Indices: []int{2}, Coeff: 1}.Grade())
	assert.Equal(t, gaterm.GradeBivector, gaterm.Blade[float64]{Indices: []int{1, 2}, Coeff: 1}.Grade())
	assert.Equal(t, gaterm.GradeTrivector, gaterm.Blade[float64]{Indices: []int{1, 2, 3}, Coeff: 1}.Grade())
	assert.Equal(t, gaterm.GradeGeneral, gaterm.Blade[float64]{Indices: []int{1, 2, 3, 1}, Coeff: 1}.Grade())
}

// TestConstructors_MergeDuplicateKeys verifies the uniqueness invariant:
// duplicate keys inside a constructor payload merge by addition.
func TestConstructors_MergeDuplicateKeys(t *testing.T) {
	v, ok := gaterm.Vector([]gaterm.VectorComponent[float64]{
		{Index: 1, Coeff: 2},
		{Index: 1, Coeff: 3},
		{Index: 2, Coeff: 1},
	}).(gaterm.VectorTerm[float64])
	require.True(t, ok)
	require.Len(t, v.Components, 2)
	assert.Equal(t, 5.0, v.Components[0].Coeff)

	// Literal key matching: (1,2) and (2,1) stay distinct entries.
	b, ok := gaterm.Bivector([]gaterm.BivectorComponent[float64]{
		{I: 1, J: 2, Coeff: 1},
		{I: 2, J: 1, Coeff: 1},
		{I: 1, J: 2, Coeff: 2},
	}).(gaterm.BivectorTerm[float64])
	require.True(t, ok)
	require.Len(t, b.Components, 2)
	assert.Equal(t, 3.0, b.Components[0].Coeff)

	m, ok := gaterm.Multivector([]gaterm.Blade[float64]{
		{Indices: []int{1, 2}, Coeff: 1},
		{Indices: []int{1, 2}, Coeff: 4},
		{Indices: []int{3}, Coeff: 2},
	}).(gaterm.MultivectorTerm[float64])
	require.True(t, ok)
	require.Len(t, m.Blades, 2)
	assert.Equal(t, 5.0, m.Blades[0].Coeff)
}

// TestGradeSet_Membership exercises construction, Has, ordering and String.
func TestGradeSet_Membership(t *testing.T) {
	s := gaterm.NewGradeSet(gaterm.GradeBivector, gaterm.GradeScalar)
	assert.True(t, s.Has(gaterm.GradeScalar))
	assert.True(t, s.Has(gaterm.GradeBivector))
	assert.False(t, s.Has(gaterm.GradeVector))
	assert.False(t, s.Has(gaterm.GradeGeneral))

	assert.Equal(t, []gaterm.Grade{gaterm.GradeScalar, gaterm.GradeBivector}, s.Grades())
	assert.Equal(t, "{Scalar, Bivector}", s.String())

	g := gaterm.NewGradeSet(gaterm.GradeGeneral)
	assert.True(t, g.Has(gaterm.GradeGeneral))
	assert.Equal(t, "{Multivector}", g.String())
}
