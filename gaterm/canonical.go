package gaterm

// Canonicalization
//
// A blade key is canonical when its basis indices are strictly increasing
// over 1..MaxBasisIndex. Reordering two adjacent indices flips the sign of
// the coefficient (antisymmetry of the basis: e2e1 = -e1e2), so sorting a
// key negates the coefficient once per transposition of odd parity.
//
// Plain constructors and Add deliberately do NOT canonicalize: keys are
// matched literally, as in the merge rules. Canonicalization is an
// explicit step for callers that want (2,1) to fold into (1,2), and an
// internal requirement of the products in product.go.

// CanonicalBlade sorts indices into ascending order, flipping the sign of
// coeff on odd transposition parity, and validates the key.
//
// Errors:
//   - *IndexError wrapping ErrIndexOutOfRange for an index outside
//     1..MaxBasisIndex.
//   - *IndexError wrapping ErrDuplicateIndex for a repeated index.
func CanonicalBlade[T Float](indices []int, coeff T) (Blade[T], error) {
	idx := make([]int, len(indices))
	copy(idx, indices)

	for _, i := range idx {
		if i < 1 || i > MaxBasisIndex {
			return Blade[T]{}, &IndexError{Index: i, Indices: indices, cause: ErrIndexOutOfRange}
		}
	}

	// Insertion sort, counting transpositions for the sign.
	swaps := 0
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && idx[j] < idx[j-1]; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
			swaps++
		}
	}
	for i := 1; i < len(idx); i++ {
		if idx[i] == idx[i-1] {
			return Blade[T]{}, &IndexError{Index: idx[i], Indices: indices, cause: ErrDuplicateIndex}
		}
	}

	if swaps%2 == 1 {
		coeff = -coeff
	}

	return Blade[T]{Indices: idx, Coeff: coeff}, nil
}

// Canonicalize returns term with every key in canonical order, merging
// keys that become equal after reordering. The input is never mutated.
//
// Errors: as CanonicalBlade, detected before any part of the result is
// assembled from the offending key.
func Canonicalize[T Float](term Term[T]) (Term[T], error) {
	switch t := term.(type) {
	case ScalarTerm[T]:
		return t, nil

	case VectorTerm[T]:
		out := make([]VectorComponent[T], 0, len(t.Components))
		for _, c := range t.Components {
			if c.Index < 1 || c.Index > MaxBasisIndex {
				return nil, &IndexError{Index: c.Index, Indices: []int{c.Index}, cause: ErrIndexOutOfRange}
			}
			out = mergeVector(out, []VectorComponent[T]{c})
		}

		return VectorTerm[T]{Components: out}, nil

	case BivectorTerm[T]:
		out := make([]BivectorComponent[T], 0, len(t.Components))
		for _, c := range t.Components {
			b, err := CanonicalBlade([]int{c.I, c.J}, c.Coeff)
			if err != nil {
				return nil, err
			}
			out = mergeBivector(out, []BivectorComponent[T]{{I: b.Indices[0], J: b.Indices[1], Coeff: b.Coeff}})
		}

		return BivectorTerm[T]{Components: out}, nil

	case TrivectorTerm[T]:
		out := make([]TrivectorComponent[T], 0, len(t.Components))
		for _, c := range t.Components {
			b, err := CanonicalBlade([]int{c.I, c.J, c.K}, c.Coeff)
			if err != nil {
				return nil, err
			}
			out = mergeTrivector(out, []TrivectorComponent[T]{{I: b.Indices[0], J: b.Indices[1], K: b.Indices[2], Coeff: b.Coeff}})
		}

		return TrivectorTerm[T]{Components: out}, nil

	default:
		m := term.(MultivectorTerm[T])
		out := make([]Blade[T], 0, len(m.Blades))
		for _, b := range m.Blades {
			cb, err := CanonicalBlade(b.Indices, b.Coeff)
			if err != nil {
				return nil, err
			}
			out = mergeBlades(out, []Blade[T]{cb})
		}

		return MultivectorTerm[T]{Blades: out}, nil
	}
}
