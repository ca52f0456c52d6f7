// Package gaterm provides grade-tagged geometric-algebra terms over a
// 3-dimensional Euclidean base space, with merge-by-key addition, scalar
// scaling, norms, functional combinators, and the product-grade rules
// that decide which operations are legal.
//
// Overview:
//
//   - A Term is a closed sum type over five shapes: Scalar, Vector,
//     Bivector, Trivector and the general Multivector. The grade of a
//     term is derived structurally from its variant — it is never stored
//     redundantly.
//   - Within any coefficient list, basis-index keys are unique: duplicate
//     keys are merged by addition at construction and during Add, never
//     retained as separate entries.
//   - All values are immutable. Every operation returns a new Term and
//     never mutates an operand, so independently owned terms may be used
//     from any number of goroutines without synchronization.
//
// Legality rules:
//
//   - Add requires identical grades and reports *GradeMismatchError
//     (errors.Is-compatible with ErrGradeMismatch) before touching any
//     coefficient — a mismatch can never produce a partial merge.
//   - Scale is legal for every grade.
//   - Products are always legal; their result grades follow the pure
//     lookup functions OuterProductGrade, InnerProductGrade and
//     GeometricProductGrades, which are total over the fixed grades and
//     return the explicit GradeGeneral variant past grade 3.
//
// Canonical form:
//
//	Keys are matched literally by Add: (2,1) and (1,2) are distinct keys
//	until the term is passed through Canonicalize, which sorts each key
//	ascending, flips the coefficient sign per transposition parity
//	(e2e1 = -e1e2), and merges keys that collide. CanonicalBlade rejects
//	repeated indices (ErrDuplicateIndex) and indices outside
//	1..MaxBasisIndex (ErrIndexOutOfRange). The products canonicalize
//	their operands on entry.
//
// Numeric policy:
//
//	Coefficients are never sanitized: NaN and Inf flow through Add,
//	Scale, Norm and the combinators unchanged, matching IEEE semantics.
//
// Example usage:
//
//	v1 := gaterm.Vector([]gaterm.VectorComponent[float64]{{Index: 1, Coeff: 2}, {Index: 2, Coeff: 3}})
//	v2 := gaterm.Vector([]gaterm.VectorComponent[float64]{{Index: 1, Coeff: 1}, {Index: 3, Coeff: 4}})
//	sum, err := gaterm.Add(v1, v2) // Vector(e1:3, e2:3, e3:4)
//	if err != nil {
//	    // *GradeMismatchError — only possible for differing grades
//	}
//	_ = gaterm.Norm(sum)
package gaterm
