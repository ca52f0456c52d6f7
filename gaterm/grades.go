package gaterm

// Product-grade rules
//
// Three pure, total lookup functions decide what grade(s) a product of two
// graded elements can carry. They are the contract for the real products
// in product.go and are covered exhaustively by tests over {0..3}².
//
//   - OuterProductGrade(g1, g2) = g1 + g2, capped at GradeGeneral past 3.
//   - InnerProductGrade(g1, g2) = |g1 − g2|, capped the same way.
//   - GeometricProductGrades(g1, g2) = the set {|g1−g2|, |g1−g2|+2, …, g1+g2}
//     intersected with the fixed grades, per the explicit table below.
//
// Any argument that is not a fixed grade yields the general case.

// OuterProductGrade returns the grade of the outer (wedge) product of a
// grade-g1 and a grade-g2 element.
func OuterProductGrade(g1, g2 Grade) Grade {
	if !g1.Fixed() || !g2.Fixed() {
		return GradeGeneral
	}
	if sum := g1 + g2; sum <= GradeTrivector {
		return sum
	}

	return GradeGeneral
}

// InnerProductGrade returns the grade of the inner (contraction) product
// of a grade-g1 and a grade-g2 element.
func InnerProductGrade(g1, g2 Grade) Grade {
	if !g1.Fixed() || !g2.Fixed() {
		return GradeGeneral
	}
	diff := g1 - g2
	if diff < 0 {
		diff = -diff
	}

	return diff
}

// GeometricProductGrades returns the set of grades that can appear in the
// geometric product of a grade-g1 and a grade-g2 element. A scalar factor
// leaves the other grade unchanged: (0, g) and (g, 0) yield {g}.
func GeometricProductGrades(g1, g2 Grade) GradeSet {
	if !g1.Fixed() || !g2.Fixed() {
		return NewGradeSet(GradeGeneral)
	}
	if g1 == GradeScalar {
		return NewGradeSet(g2)
	}
	if g2 == GradeScalar {
		return NewGradeSet(g1)
	}

	switch [2]Grade{g1, g2} {
	case [2]Grade{GradeVector, GradeVector}:
		return NewGradeSet(GradeScalar, GradeBivector)
	case [2]Grade{GradeVector, GradeBivector}:
		return NewGradeSet(GradeVector, GradeTrivector)
	case [2]Grade{GradeVector, GradeTrivector}:
		return NewGradeSet(GradeBivector)
	case [2]Grade{GradeBivector, GradeVector}:
		return NewGradeSet(GradeVector, GradeTrivector)
	case [2]Grade{GradeBivector, GradeBivector}:
		return NewGradeSet(GradeScalar, GradeBivector)
	case [2]Grade{GradeBivector, GradeTrivector}:
		return NewGradeSet(GradeVector)
	case [2]Grade{GradeTrivector, GradeVector}:
		return NewGradeSet(GradeBivector)
	case [2]Grade{GradeTrivector, GradeBivector}:
		return NewGradeSet(GradeVector)
	case [2]Grade{GradeTrivector, GradeTrivector}:
		return NewGradeSet(GradeScalar, GradeBivector)
	default:
		return NewGradeSet(GradeGeneral)
	}
}
