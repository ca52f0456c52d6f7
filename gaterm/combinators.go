package gaterm

// Functional combinators over term coefficients. Structure (the keys) is
// preserved by Map, thinned by Filter, and erased by Fold. All three are
// single-pass and never mutate their input.

// Map applies f to every coefficient, producing a term of the same variant
// and key structure with a possibly different coefficient type.
func Map[T, U Float](term Term[T], f func(T) U) Term[U] {
	switch t := term.(type) {
	case ScalarTerm[T]:
		return ScalarTerm[U]{Value: f(t.Value)}

	case VectorTerm[T]:
		out := make([]VectorComponent[U], len(t.Components))
		for i, c := range t.Components {
			out[i] = VectorComponent[U]{Index: c.Index, Coeff: f(c.Coeff)}
		}

		return VectorTerm[U]{Components: out}

	case BivectorTerm[T]:
		out := make([]BivectorComponent[U], len(t.Components))
		for i, c := range t.Components {
			out[i] = BivectorComponent[U]{I: c.I, J: c.J, Coeff: f(c.Coeff)}
		}

		return BivectorTerm[U]{Components: out}

	case TrivectorTerm[T]:
		out := make([]TrivectorComponent[U], len(t.Components))
		for i, c := range t.Components {
			out[i] = TrivectorComponent[U]{I: c.I, J: c.J, K: c.K, Coeff: f(c.Coeff)}
		}

		return TrivectorTerm[U]{Components: out}

	default:
		m := term.(MultivectorTerm[T])
		out := make([]Blade[U], len(m.Blades))
		for i, b := range m.Blades {
			idx := make([]int, len(b.Indices))
			copy(idx, b.Indices)
			out[i] = Blade[U]{Indices: idx, Coeff: f(b.Coeff)}
		}

		return MultivectorTerm[U]{Blades: out}
	}
}

// Filter keeps only the components whose coefficient satisfies keep.
// A scalar term is returned unchanged regardless of the predicate: the
// scalar variant has exactly one coefficient and no list to thin.
func Filter[T Float](term Term[T], keep func(T) bool) Term[T] {
	switch t := term.(type) {
	case ScalarTerm[T]:
		return t

	case VectorTerm[T]:
		var out []VectorComponent[T]
		for _, c := range t.Components {
			if keep(c.Coeff) {
				out = append(out, c)
			}
		}

		return VectorTerm[T]{Components: out}

	case BivectorTerm[T]:
		var out []BivectorComponent[T]
		for _, c := range t.Components {
			if keep(c.Coeff) {
				out = append(out, c)
			}
		}

		return BivectorTerm[T]{Components: out}

	case TrivectorTerm[T]:
		var out []TrivectorComponent[T]
		for _, c := range t.Components {
			if keep(c.Coeff) {
				out = append(out, c)
			}
		}

		return TrivectorTerm[T]{Components: out}

	default:
		m := term.(MultivectorTerm[T])
		var out []Blade[T]
		for _, b := range m.Blades {
			if keep(b.Coeff) {
				idx := make([]int, len(b.Indices))
				copy(idx, b.Indices)
				out = append(out, Blade[T]{Indices: idx, Coeff: b.Coeff})
			}
		}

		return MultivectorTerm[T]{Blades: out}
	}
}

// Fold reduces the coefficients of term into an accumulator, visiting
// components in stored order.
func Fold[T Float, A any](term Term[T], initial A, f func(A, T) A) A {
	acc := initial
	switch t := term.(type) {
	case ScalarTerm[T]:
		acc = f(acc, t.Value)
	case VectorTerm[T]:
		for _, c := range t.Components {
			acc = f(acc, c.Coeff)
		}
	case BivectorTerm[T]:
		for _, c := range t.Components {
			acc = f(acc, c.Coeff)
		}
	case TrivectorTerm[T]:
		for _, c := range t.Components {
			acc = f(acc, c.Coeff)
		}
	case MultivectorTerm[T]:
		for _, b := range t.Blades {
			acc = f(acc, b.Coeff)
		}
	}

	return acc
}
