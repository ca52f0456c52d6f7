package gaterm

// Products over the Euclidean R3 basis
//
// The geometric product of two basis blades is computed by concatenating
// their index tuples, sorting the result into canonical order (sign flip
// per transposition), and annihilating adjacent equal indices under the
// Euclidean metric e_i·e_i = +1. Every blade pair therefore multiplies to
// exactly one blade; term products are the merged sums over all pairs.
//
// The outer product keeps the grade-(s+t) part of each pair product — a
// pair sharing a basis index contributes nothing. The inner product keeps
// the grade-|s−t| part. Resulting grades always fall inside the sets
// promised by the lookup tables in grades.go; tests assert this pairwise
// over the whole fixed-grade domain.
//
// Operands are canonicalized on entry, so malformed keys surface as
// *IndexError before any arithmetic happens.

// bladeProduct multiplies two canonical blades under the Euclidean metric
// and returns the single resulting blade.
func bladeProduct[T Float](a, b Blade[T]) Blade[T] {
	idx := make([]int, 0, len(a.Indices)+len(b.Indices))
	idx = append(idx, a.Indices...)
	idx = append(idx, b.Indices...)

	sign := 1
	// Insertion sort; equal indices never swap, so duplicates end adjacent.
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && idx[j] < idx[j-1]; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
			sign = -sign
		}
	}

	// Contract adjacent equal pairs: e_i e_i = +1.
	out := idx[:0]
	for i := 0; i < len(idx); {
		if i+1 < len(idx) && idx[i] == idx[i+1] {
			i += 2

			continue
		}
		out = append(out, idx[i])
		i++
	}

	coeff := a.Coeff * b.Coeff
	if sign < 0 {
		coeff = -coeff
	}

	return Blade[T]{Indices: out, Coeff: coeff}
}

// toBlades flattens any variant into a blade list without canonicalizing.
func toBlades[T Float](term Term[T]) []Blade[T] {
	switch t := term.(type) {
	case ScalarTerm[T]:
		return []Blade[T]{{Coeff: t.Value}}
	case VectorTerm[T]:
		out := make([]Blade[T], len(t.Components))
		for i, c := range t.Components {
			out[i] = Blade[T]{Indices: []int{c.Index}, Coeff: c.Coeff}
		}

		return out
	case BivectorTerm[T]:
		out := make([]Blade[T], len(t.Components))
		for i, c := range t.Components {
			out[i] = Blade[T]{Indices: []int{c.I, c.J}, Coeff: c.Coeff}
		}

		return out
	case TrivectorTerm[T]:
		out := make([]Blade[T], len(t.Components))
		for i, c := range t.Components {
			out[i] = Blade[T]{Indices: []int{c.I, c.J, c.K}, Coeff: c.Coeff}
		}

		return out
	default:
		return term.(MultivectorTerm[T]).Blades
	}
}

// shape folds a canonical blade list into the tightest variant: a single
// common fixed grade collapses to that variant, anything mixed stays a
// multivector, and an empty list becomes the zero term of fallback.
func shape[T Float](blades []Blade[T], fallback Grade) Term[T] {
	if len(blades) == 0 {
		return zeroTerm[T](fallback)
	}

	common := blades[0].Grade()
	for _, b := range blades[1:] {
		if b.Grade() != common {
			return MultivectorTerm[T]{Blades: blades}
		}
	}

	switch common {
	case GradeScalar:
		var sum T
		for _, b := range blades {
			sum += b.Coeff
		}

		return ScalarTerm[T]{Value: sum}

	case GradeVector:
		out := make([]VectorComponent[T], len(blades))
		for i, b := range blades {
			out[i] = VectorComponent[T]{Index: b.Indices[0], Coeff: b.Coeff}
		}

		return VectorTerm[T]{Components: out}

	case GradeBivector:
		out := make([]BivectorComponent[T], len(blades))
		for i, b := range blades {
			out[i] = BivectorComponent[T]{I: b.Indices[0], J: b.Indices[1], Coeff: b.Coeff}
		}

		return BivectorTerm[T]{Components: out}

	case GradeTrivector:
		out := make([]TrivectorComponent[T], len(blades))
		for i, b := range blades {
			out[i] = TrivectorComponent[T]{I: b.Indices[0], J: b.Indices[1], K: b.Indices[2], Coeff: b.Coeff}
		}

		return TrivectorTerm[T]{Components: out}

	default:
		return MultivectorTerm[T]{Blades: blades}
	}
}

// zeroTerm returns the empty term of grade g (Scalar(0) for grade 0).
func zeroTerm[T Float](g Grade) Term[T] {
	switch g {
	case GradeScalar:
		return ScalarTerm[T]{}
	case GradeVector:
		return VectorTerm[T]{}
	case GradeBivector:
		return BivectorTerm[T]{}
	case GradeTrivector:
		return TrivectorTerm[T]{}
	default:
		return MultivectorTerm[T]{}
	}
}

// productBlades canonicalizes both operands and returns their blade lists.
func productBlades[T Float](lhs, rhs Term[T]) ([]Blade[T], []Blade[T], error) {
	cl, err := Canonicalize(lhs)
	if err != nil {
		return nil, nil, err
	}
	cr, err := Canonicalize(rhs)
	if err != nil {
		return nil, nil, err
	}

	return toBlades(cl), toBlades(cr), nil
}

// GeometricProduct returns the full geometric product lhs rhs.
//
// The result is shaped to the tightest variant that holds it; its grades
// are always a subset of GeometricProductGrades of the operand grades.
func GeometricProduct[T Float](lhs, rhs Term[T]) (Term[T], error) {
	la, lb, err := productBlades(lhs, rhs)
	if err != nil {
		return nil, err
	}

	var acc []Blade[T]
	for _, a := range la {
		for _, b := range lb {
			acc = mergeBlades(acc, []Blade[T]{bladeProduct(a, b)})
		}
	}

	return shape(acc, GradeScalar), nil
}

// OuterProduct returns the outer (wedge) product lhs ∧ rhs: the
// grade-(s+t) part of each blade-pair product. Pairs sharing a basis
// index vanish. An all-zero result collapses to the empty term of
// OuterProductGrade of the operand grades.
func OuterProduct[T Float](lhs, rhs Term[T]) (Term[T], error) {
	la, lb, err := productBlades(lhs, rhs)
	if err != nil {
		return nil, err
	}

	var acc []Blade[T]
	for _, a := range la {
		for _, b := range lb {
			p := bladeProduct(a, b)
			if len(p.Indices) == len(a.Indices)+len(b.Indices) {
				acc = mergeBlades(acc, []Blade[T]{p})
			}
		}
	}

	return shape(acc, OuterProductGrade(lhs.Grade(), rhs.Grade())), nil
}

// InnerProduct returns the inner (contraction) product lhs · rhs: the
// grade-|s−t| part of each blade-pair product.
func InnerProduct[T Float](lhs, rhs Term[T]) (Term[T], error) {
	la, lb, err := productBlades(lhs, rhs)
	if err != nil {
		return nil, err
	}

	var acc []Blade[T]
	for _, a := range la {
		for _, b := range lb {
			want := len(a.Indices) - len(b.Indices)
			if want < 0 {
				want = -want
			}
			p := bladeProduct(a, b)
			if len(p.Indices) == want {
				acc = mergeBlades(acc, []Blade[T]{p})
			}
		}
	}

	return shape(acc, InnerProductGrade(lhs.Grade(), rhs.Grade())), nil
}
