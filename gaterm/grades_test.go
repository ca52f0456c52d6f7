package gaterm_test

import (
	"testing"

	"github.com/katalvlaran/tauvec/gaterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedGrades = []gaterm.Grade{
	gaterm.GradeScalar,
	gaterm.GradeVector,
	gaterm.GradeBivector,
	gaterm.GradeTrivector,
}

// TestOuterProductGrade_Total checks g1+g2 with the general cap over the
// whole fixed-grade domain.
func TestOuterProductGrade_Total(t *testing.T) {
	for _, g1 := range fixedGrades {
		for _, g2 := range fixedGrades {
			got := gaterm.OuterProductGrade(g1, g2)
			if sum := int(g1) + int(g2); sum <= 3 {
				assert.Equal(t, gaterm.Grade(sum), got, "(%s, %s)", g1, g2)
			} else {
				assert.Equal(t, gaterm.GradeGeneral, got, "(%s, %s)", g1, g2)
			}
		}
	}

	// outer(1,2) = 3.
	assert.Equal(t, gaterm.GradeTrivector, gaterm.OuterProductGrade(gaterm.GradeVector, gaterm.GradeBivector))

	// General operands stay general.
	assert.Equal(t, gaterm.GradeGeneral, gaterm.OuterProductGrade(gaterm.GradeGeneral, gaterm.GradeScalar))
}

// TestInnerProductGrade_Total checks |g1-g2| over the whole domain.
func TestInnerProductGrade_Total(t *testing.T) {
	for _, g1 := range fixedGrades {
		for _, g2 := range fixedGrades {
			want := int(g1) - int(g2)
			if want < 0 {
				want = -want
			}
			assert.Equal(t, gaterm.Grade(want), gaterm.InnerProductGrade(g1, g2), "(%s, %s)", g1, g2)
		}
	}

	// inner(2,1) = 1.
	assert.Equal(t, gaterm.GradeVector, gaterm.InnerProductGrade(gaterm.GradeBivector, gaterm.GradeVector))

	assert.Equal(t, gaterm.GradeGeneral, gaterm.InnerProductGrade(gaterm.GradeVector, gaterm.GradeGeneral))
}

// TestGeometricProductGrades_Table checks every entry of the contract
// table, including the scalar absorption rule (0,g) → {g}.
func TestGeometricProductGrades_Table(t *testing.T) {
	type entry struct {
		g1, g2 gaterm.Grade
		want   []gaterm.Grade
	}
	table := []entry{
		{gaterm.GradeVector, gaterm.GradeVector, []gaterm.Grade{gaterm.GradeScalar, gaterm.GradeBivector}},
		{gaterm.GradeVector, gaterm.GradeBivector, []gaterm.Grade{gaterm.GradeVector, gaterm.GradeTrivector}},
		{gaterm.GradeVector, gaterm.GradeTrivector, []gaterm.Grade{gaterm.GradeBivector}},
		{gaterm.GradeBivector, gaterm.GradeVector, []gaterm.Grade{gaterm.GradeVector, gaterm.GradeTrivector}},
		{gaterm.GradeBivector, gaterm.GradeBivector, []gaterm.Grade{gaterm.GradeScalar, gaterm.GradeBivector}},
		{gaterm.GradeBivector, gaterm.GradeTrivector, []gaterm.Grade{gaterm.GradeVector}},
		{gaterm.GradeTrivector, gaterm.GradeVector, []gaterm.Grade{gaterm.GradeBivector}},
		{gaterm.GradeTrivector, gaterm.GradeBivector, []gaterm.Grade{gaterm.GradeVector}},
		{gaterm.GradeTrivector, gaterm.GradeTrivector, []gaterm.Grade{gaterm.GradeScalar, gaterm.GradeBivector}},
	}

	for _, e := range table {
		got := gaterm.GeometricProductGrades(e.g1, e.g2)
		assert.Equal(t, e.want, got.Grades(), "(%s, %s)", e.g1, e.g2)
	}

	// Scalar absorption on both sides.
	for _, g := range fixedGrades {
		assert.Equal(t, []gaterm.Grade{g}, gaterm.GeometricProductGrades(gaterm.GradeScalar, g).Grades())
		assert.Equal(t, []gaterm.Grade{g}, gaterm.GeometricProductGrades(g, gaterm.GradeScalar).Grades())
	}

	// geometric(1,1) = {0,2}.
	s := gaterm.GeometricProductGrades(gaterm.GradeVector, gaterm.GradeVector)
	require.True(t, s.Has(gaterm.GradeScalar))
	require.True(t, s.Has(gaterm.GradeBivector))
	assert.False(t, s.Has(gaterm.GradeVector))

	// Any general operand collapses to the general set.
	g := gaterm.GeometricProductGrades(gaterm.GradeGeneral, gaterm.GradeVector)
	assert.Equal(t, []gaterm.Grade{gaterm.GradeGeneral}, g.Grades())
}
