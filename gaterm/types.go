// Package gaterm defines the Grade enumeration, blade components, and the
// closed five-variant Term sum type used by every operation in this package.
//
// This file declares Grade, GradeSet, the per-variant component types,
// the Term interface with its five implementations, and the factory
// constructors. Operations live in ops.go, combinators.go, grades.go,
// canonical.go and product.go.
package gaterm

import (
	"strconv"
	"strings"
)

// Float is the coefficient constraint for every term in this package.
type Float interface {
	~float32 | ~float64
}

// MaxBasisIndex is the highest valid basis-vector index. The algebra is
// fixed to a 3-dimensional base space, so valid indices are 1..3.
const MaxBasisIndex = 3

// Grade labels the rank of a geometric-algebra element.
//
// GradeGeneral is an explicit variant for "general multivector", never an
// out-of-range integer sentinel: lookup tables return it whenever a result
// cannot be pinned to a single fixed grade.
type Grade int

const (
	// GradeScalar is grade 0: a single coefficient.
	GradeScalar Grade = iota

	// GradeVector is grade 1: a combination of basis vectors e1..e3.
	GradeVector

	// GradeBivector is grade 2: a combination of basis planes eiej.
	GradeBivector

	// GradeTrivector is grade 3: a multiple of the pseudoscalar e1e2e3.
	GradeTrivector

	// GradeGeneral marks a general multivector of mixed or unbounded grade.
	GradeGeneral
)

// Fixed reports whether g is one of the four fixed blade grades 0..3.
func (g Grade) Fixed() bool {
	return g >= GradeScalar && g <= GradeTrivector
}

// String returns the conventional name of the grade.
func (g Grade) String() string {
	switch g {
	case GradeScalar:
		return "Scalar"
	case GradeVector:
		return "Vector"
	case GradeBivector:
		return "Bivector"
	case GradeTrivector:
		return "Trivector"
	case GradeGeneral:
		return "Multivector"
	default:
		return "Grade(" + strconv.Itoa(int(g)) + ")"
	}
}

// gradeFromArity maps a blade's index-tuple length to its Grade.
func gradeFromArity(n int) Grade {
	switch n {
	case 0:
		return GradeScalar
	case 1:
		return GradeVector
	case 2:
		return GradeBivector
	case 3:
		return GradeTrivector
	default:
		return GradeGeneral
	}
}

// GradeSet is a set of grades, used to describe the possible grades of a
// geometric product. The general case is a distinct member, not a number.
type GradeSet uint8

const (
	gradeSetScalar GradeSet = 1 << iota
	gradeSetVector
	gradeSetBivector
	gradeSetTrivector
	gradeSetGeneral
)

// NewGradeSet builds a set from the given grades.
func NewGradeSet(grades ...Grade) GradeSet {
	var s GradeSet
	for _, g := range grades {
		s = s.with(g)
	}

	return s
}

// with returns s extended by g.
func (s GradeSet) with(g Grade) GradeSet {
	switch g {
	case GradeScalar:
		return s | gradeSetScalar
	case GradeVector:
		return s | gradeSetVector
	case GradeBivector:
		return s | gradeSetBivector
	case GradeTrivector:
		return s | gradeSetTrivector
	default:
		return s | gradeSetGeneral
	}
}

// Has reports whether g is a member of s.
func (s GradeSet) Has(g Grade) bool {
	return s&NewGradeSet(g) != 0
}

// Grades returns the members of s in ascending grade order,
// with GradeGeneral last.
func (s GradeSet) Grades() []Grade {
	var out []Grade
	for _, g := range []Grade{GradeScalar, GradeVector, GradeBivector, GradeTrivector, GradeGeneral} {
		if s.Has(g) {
			out = append(out, g)
		}
	}

	return out
}

// String renders the set as "{Scalar, Bivector}".
func (s GradeSet) String() string {
	names := make([]string, 0, 5)
	for _, g := range s.Grades() {
		names = append(names, g.String())
	}

	return "{" + strings.Join(names, ", ") + "}"
}

// VectorComponent is one (basis index, coefficient) entry of a vector term.
type VectorComponent[T Float] struct {
	Index int
	Coeff T
}

// BivectorComponent is one (i, j, coefficient) entry of a bivector term.
// The index pair is the literal key: (1,2) and (2,1) are distinct keys
// unless the term has been passed through Canonicalize.
type BivectorComponent[T Float] struct {
	I, J  int
	Coeff T
}

// TrivectorComponent is one (i, j, k, coefficient) entry of a trivector term.
type TrivectorComponent[T Float] struct {
	I, J, K int
	Coeff   T
}

// Blade is an ordered basis-index tuple with a coefficient. Its grade is
// the length of the index tuple.
type Blade[T Float] struct {
	Indices []int
	Coeff   T
}

// Grade returns the grade implied by the blade's index-tuple length.
func (b Blade[T]) Grade() Grade {
	return gradeFromArity(len(b.Indices))
}

// sameIndices reports whether two index tuples are equal element-wise.
// Order-sensitive: keys are matched literally, as produced.
func sameIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Term is the closed sum type over the five grade shapes. Exactly five
// types implement it: ScalarTerm, VectorTerm, BivectorTerm, TrivectorTerm
// and MultivectorTerm. All implementations are immutable values; every
// operation in this package returns a new Term.
type Term[T Float] interface {
	// Grade returns the grade by structural inspection of the variant.
	Grade() Grade

	// String renders the term, e.g. "Vector(e1:2, e2:3)".
	String() string

	// isTerm closes the set of implementations. Its parameter ties the
	// interface to T so the coefficient type is inferable at call sites
	// taking a Term value.
	isTerm(T)
}

// ScalarTerm is the grade-0 variant: a single coefficient.
type ScalarTerm[T Float] struct {
	Value T
}

// VectorTerm is the grade-1 variant: unique-key (index, coeff) entries.
type VectorTerm[T Float] struct {
	Components []VectorComponent[T]
}

// BivectorTerm is the grade-2 variant: unique-key (i, j, coeff) entries.
type BivectorTerm[T Float] struct {
	Components []BivectorComponent[T]
}

// TrivectorTerm is the grade-3 variant: unique-key (i, j, k, coeff) entries.
type TrivectorTerm[T Float] struct {
	Components []TrivectorComponent[T]
}

// MultivectorTerm is the general variant: a list of blades whose grades
// need not agree. Keys are full index sequences, matched literally.
type MultivectorTerm[T Float] struct {
	Blades []Blade[T]
}

func (ScalarTerm[T]) Grade() Grade      { return GradeScalar }
func (VectorTerm[T]) Grade() Grade      { return GradeVector }
func (BivectorTerm[T]) Grade() Grade    { return GradeBivector }
func (TrivectorTerm[T]) Grade() Grade   { return GradeTrivector }
func (MultivectorTerm[T]) Grade() Grade { return GradeGeneral }

func (ScalarTerm[T]) isTerm(T)      {}
func (VectorTerm[T]) isTerm(T)      {}
func (BivectorTerm[T]) isTerm(T)    {}
func (TrivectorTerm[T]) isTerm(T)   {}
func (MultivectorTerm[T]) isTerm(T) {}

// HasGrade reports whether term's grade equals g.
func HasGrade[T Float](term Term[T], g Grade) bool {
	return term.Grade() == g
}

// Scalar constructs a grade-0 term.
func Scalar[T Float](value T) Term[T] {
	return ScalarTerm[T]{Value: value}
}

// Vector constructs a grade-1 term. Entries sharing a basis index are
// merged by coefficient addition, so keys are unique in the result.
func Vector[T Float](components []VectorComponent[T]) Term[T] {
	return VectorTerm[T]{Components: mergeVector(nil, components)}
}

// Bivector constructs a grade-2 term, merging duplicate (i, j) keys.
func Bivector[T Float](components []BivectorComponent[T]) Term[T] {
	return BivectorTerm[T]{Components: mergeBivector(nil, components)}
}

// Trivector constructs a grade-3 term, merging duplicate (i, j, k) keys.
func Trivector[T Float](components []TrivectorComponent[T]) Term[T] {
	return TrivectorTerm[T]{Components: mergeTrivector(nil, components)}
}

// Multivector constructs the general variant, merging blades whose full
// index sequences are equal.
func Multivector[T Float](blades []Blade[T]) Term[T] {
	return MultivectorTerm[T]{Blades: mergeBlades(nil, blades)}
}

// mergeVector appends src entries into dst, summing coefficients on key
// match. dst is assumed to already have unique keys.
func mergeVector[T Float](dst, src []VectorComponent[T]) []VectorComponent[T] {
	for _, c := range src {
		merged := false
		for i := range dst {
			if dst[i].Index == c.Index {
				dst[i].Coeff += c.Coeff
				merged = true

				break
			}
		}
		if !merged {
			dst = append(dst, c)
		}
	}

	return dst
}

func mergeBivector[T Float](dst, src []BivectorComponent[T]) []BivectorComponent[T] {
	for _, c := range src {
		merged := false
		for i := range dst {
			if dst[i].I == c.I && dst[i].J == c.J {
				dst[i].Coeff += c.Coeff
				merged = true

				break
			}
		}
		if !merged {
			dst = append(dst, c)
		}
	}

	return dst
}

func mergeTrivector[T Float](dst, src []TrivectorComponent[T]) []TrivectorComponent[T] {
	for _, c := range src {
		merged := false
		for i := range dst {
			if dst[i].I == c.I && dst[i].J == c.J && dst[i].K == c.K {
				dst[i].Coeff += c.Coeff
				merged = true

				break
			}
		}
		if !merged {
			dst = append(dst, c)
		}
	}

	return dst
}

// mergeBlades is the multivector merge: keys are whole index sequences,
// compared literally and order-sensitively. Blade index slices from src
// are copied so the result never aliases caller memory.
func mergeBlades[T Float](dst, src []Blade[T]) []Blade[T] {
	for _, b := range src {
		merged := false
		for i := range dst {
			if sameIndices(dst[i].Indices, b.Indices) {
				dst[i].Coeff += b.Coeff
				merged = true

				break
			}
		}
		if !merged {
			idx := make([]int, len(b.Indices))
			copy(idx, b.Indices)
			dst = append(dst, Blade[T]{Indices: idx, Coeff: b.Coeff})
		}
	}

	return dst
}
