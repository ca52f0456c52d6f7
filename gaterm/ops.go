package gaterm

import "math"

// Add — merge-by-key addition of same-grade terms
//
// Description:
//
//	Add validates that both operands carry the same grade, then merges
//	rhs into a copy of lhs: for every (key, coeff) entry of rhs, an
//	existing key in the running result absorbs the coefficient by
//	addition, a fresh key is appended. Scalars merge by plain sum.
//	Multivector keys are full index sequences, matched literally
//	(canonicalize first if you need (2,1) to fold into (1,2); see
//	Canonicalize).
//
// Guarantees:
//   - The grade check happens before any merging: a mismatch never
//     yields a partial result.
//   - Operands are never mutated; the result is a fresh term.
//   - Result key-list length ≤ len(lhs) + len(rhs).
//
// Errors:
//   - *GradeMismatchError (errors.Is-compatible with ErrGradeMismatch)
//     when the grades differ.
func Add[T Float](lhs, rhs Term[T]) (Term[T], error) {
	if lhs.Grade() != rhs.Grade() {
		return nil, &GradeMismatchError{Left: lhs.Grade(), Right: rhs.Grade()}
	}

	switch l := lhs.(type) {
	case ScalarTerm[T]:
		r := rhs.(ScalarTerm[T])

		return ScalarTerm[T]{Value: l.Value + r.Value}, nil

	case VectorTerm[T]:
		r := rhs.(VectorTerm[T])
		out := make([]VectorComponent[T], len(l.Components))
		copy(out, l.Components)

		return VectorTerm[T]{Components: mergeVector(out, r.Components)}, nil

	case BivectorTerm[T]:
		r := rhs.(BivectorTerm[T])
		out := make([]BivectorComponent[T], len(l.Components))
		copy(out, l.Components)

		return BivectorTerm[T]{Components: mergeBivector(out, r.Components)}, nil

	case TrivectorTerm[T]:
		r := rhs.(TrivectorTerm[T])
		out := make([]TrivectorComponent[T], len(l.Components))
		copy(out, l.Components)

		return TrivectorTerm[T]{Components: mergeTrivector(out, r.Components)}, nil

	default:
		l2 := lhs.(MultivectorTerm[T])
		r := rhs.(MultivectorTerm[T])

		return MultivectorTerm[T]{Blades: mergeBlades(mergeBlades(nil, l2.Blades), r.Blades)}, nil
	}
}

// Scale multiplies every coefficient of term by s. The key structure is
// unchanged and no grade precondition applies: scaling is always legal.
// Scale distributes over Add.
func Scale[T Float](s T, term Term[T]) Term[T] {
	switch t := term.(type) {
	case ScalarTerm[T]:
		return ScalarTerm[T]{Value: t.Value * s}

	case VectorTerm[T]:
		out := make([]VectorComponent[T], len(t.Components))
		for i, c := range t.Components {
			out[i] = VectorComponent[T]{Index: c.Index, Coeff: c.Coeff * s}
		}

		return VectorTerm[T]{Components: out}

	case BivectorTerm[T]:
		out := make([]BivectorComponent[T], len(t.Components))
		for i, c := range t.Components {
			out[i] = BivectorComponent[T]{I: c.I, J: c.J, Coeff: c.Coeff * s}
		}

		return BivectorTerm[T]{Components: out}

	case TrivectorTerm[T]:
		out := make([]TrivectorComponent[T], len(t.Components))
		for i, c := range t.Components {
			out[i] = TrivectorComponent[T]{I: c.I, J: c.J, K: c.K, Coeff: c.Coeff * s}
		}

		return TrivectorTerm[T]{Components: out}

	default:
		m := term.(MultivectorTerm[T])
		out := make([]Blade[T], len(m.Blades))
		for i, b := range m.Blades {
			idx := make([]int, len(b.Indices))
			copy(idx, b.Indices)
			out[i] = Blade[T]{Indices: idx, Coeff: b.Coeff * s}
		}

		return MultivectorTerm[T]{Blades: out}
	}
}

// Norm returns the Euclidean norm of term: the square root of the sum of
// squared coefficients across whichever variant is present. For a scalar
// this degenerates to the absolute value. Norm(term) ≥ 0 for every term
// with finite coefficients; NaN and Inf payloads flow through untouched.
func Norm[T Float](term Term[T]) T {
	if s, ok := term.(ScalarTerm[T]); ok {
		return T(math.Abs(float64(s.Value)))
	}

	sum := Fold(term, 0.0, func(acc float64, c T) float64 {
		return acc + float64(c)*float64(c)
	})

	return T(math.Sqrt(sum))
}
