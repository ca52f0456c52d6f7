package graded_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tauvec/gaterm"
	"github.com/katalvlaran/tauvec/graded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TagIsFixed(t *testing.T) {
	v := graded.New(gaterm.GradeBivector, []float64{1, 2, 3})

	assert.Equal(t, gaterm.GradeBivector, v.Grade())
	assert.Equal(t, []float64{1, 2, 3}, v.Payload())
}

func TestFromTerm_UsesStructuralGrade(t *testing.T) {
	term := gaterm.Vector([]gaterm.VectorComponent[float64]{{Index: 1, Coeff: 2}})

	v := graded.FromTerm(term)

	assert.Equal(t, gaterm.GradeVector, v.Grade())
	assert.Equal(t, term, v.Payload())
}

func TestAdd_SameTagCombines(t *testing.T) {
	a := graded.New(gaterm.GradeVector, 2.0)
	b := graded.New(gaterm.GradeVector, 3.0)

	sum, err := graded.Add(a, b, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	assert.Equal(t, 5.0, sum.Payload())
	assert.Equal(t, gaterm.GradeVector, sum.Grade())
}

func TestAdd_TagMismatchFails(t *testing.T) {
	a := graded.New(gaterm.GradeScalar, 1.0)
	b := graded.New(gaterm.GradeTrivector, 2.0)

	called := false
	_, err := graded.Add(a, b, func(x, y float64) float64 {
		called = true

		return x + y
	})

	require.Error(t, err)
	assert.False(t, called, "combine must not run on mismatched tags")
	assert.ErrorIs(t, err, gaterm.ErrGradeMismatch)

	var gm *gaterm.GradeMismatchError
	require.True(t, errors.As(err, &gm))
	assert.Equal(t, gaterm.GradeScalar, gm.Left)
	assert.Equal(t, gaterm.GradeTrivector, gm.Right)
}

func TestScale_KeepsTag(t *testing.T) {
	v := graded.New(gaterm.GradeGeneral, 4.0)

	scaled := graded.Scale(v, func(x float64) float64 { return 3 * x })

	assert.Equal(t, 12.0, scaled.Payload())
	assert.Equal(t, gaterm.GradeGeneral, scaled.Grade())
}

func TestMap_ChangesPayloadTypeOnly(t *testing.T) {
	v := graded.New(gaterm.GradeBivector, 2.5)

	s := graded.Map(v, func(x float64) string {
		return gaterm.Scalar(x).String()
	})

	assert.Equal(t, "Scalar(2.5)", s.Payload())
	assert.Equal(t, gaterm.GradeBivector, s.Grade())
}

func TestProductAnnotations_FollowTables(t *testing.T) {
	grades := []gaterm.Grade{
		gaterm.GradeScalar, gaterm.GradeVector,
		gaterm.GradeBivector, gaterm.GradeTrivector, gaterm.GradeGeneral,
	}

	for _, g1 := range grades {
		for _, g2 := range grades {
			a := graded.New(g1, struct{}{})
			b := graded.New(g2, 0)

			assert.Equal(t, gaterm.OuterProductGrade(g1, g2), graded.OuterGrade(a, b))
			assert.Equal(t, gaterm.InnerProductGrade(g1, g2), graded.InnerGrade(a, b))
			assert.Equal(t, gaterm.GeometricProductGrades(g1, g2), graded.GeometricGrades(a, b))
		}
	}
}
