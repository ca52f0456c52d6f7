// Package graded pairs an arbitrary payload with a fixed gaterm.Grade
// tag. The tag is set at construction and never changes; addition is
// legal only between values carrying the same tag, scaling is always
// legal, and the grade of a prospective product can be read off without
// computing it.
//
// Use graded when the payload is not a gaterm.Term — a matrix block, an
// opaque handle, a deferred computation — but still lives at a known
// grade and must obey the same legality rules.
package graded

import "github.com/katalvlaran/tauvec/gaterm"

// Value is an immutable payload tagged with a grade.
type Value[P any] struct {
	payload P
	grade   gaterm.Grade
}

// New tags payload with grade g.
func New[P any](g gaterm.Grade, payload P) Value[P] {
	return Value[P]{payload: payload, grade: g}
}

// FromTerm tags a term with its own structural grade.
func FromTerm[T gaterm.Float](term gaterm.Term[T]) Value[gaterm.Term[T]] {
	return Value[gaterm.Term[T]]{payload: term, grade: term.Grade()}
}

// Payload returns the wrapped value.
func (v Value[P]) Payload() P {
	return v.payload
}

// Grade returns the tag assigned at construction.
func (v Value[P]) Grade() gaterm.Grade {
	return v.grade
}

// Add combines two same-grade values through combine. Differing tags
// fail with *gaterm.GradeMismatchError before combine runs.
func Add[P any](lhs, rhs Value[P], combine func(P, P) P) (Value[P], error) {
	if lhs.grade != rhs.grade {
		return Value[P]{}, &gaterm.GradeMismatchError{Left: lhs.grade, Right: rhs.grade}
	}

	return Value[P]{payload: combine(lhs.payload, rhs.payload), grade: lhs.grade}, nil
}

// Scale maps the payload in place of scalar multiplication. Scaling
// never changes the grade tag, so it is always legal.
func Scale[P any](v Value[P], f func(P) P) Value[P] {
	return Value[P]{payload: f(v.payload), grade: v.grade}
}

// Map rewraps the payload under a new type, keeping the tag.
func Map[P, Q any](v Value[P], f func(P) Q) Value[Q] {
	return Value[Q]{payload: f(v.payload), grade: v.grade}
}

// OuterGrade annotates the grade an outer product of the two values
// would have, per the lookup table in gaterm.
func OuterGrade[A, B any](lhs Value[A], rhs Value[B]) gaterm.Grade {
	return gaterm.OuterProductGrade(lhs.grade, rhs.grade)
}

// InnerGrade annotates the grade an inner product would have.
func InnerGrade[A, B any](lhs Value[A], rhs Value[B]) gaterm.Grade {
	return gaterm.InnerProductGrade(lhs.grade, rhs.grade)
}

// GeometricGrades annotates the set of grades a geometric product may
// contain.
func GeometricGrades[A, B any](lhs Value[A], rhs Value[B]) gaterm.GradeSet {
	return gaterm.GeometricProductGrades(lhs.grade, rhs.grade)
}
