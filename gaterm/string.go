package gaterm

import (
	"strconv"
	"strings"
)

// String renderings follow a fixed shape per variant:
//
//	Scalar(3.14)
//	Vector(e1:2, e2:3)
//	Bivector(e1e2:4)
//	Trivector(e1e2e3:5)
//	Multivector(e1e2:3, e3:1)
//
// Coefficients use the shortest decimal representation that round-trips.

func formatCoeff[T Float](v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (s ScalarTerm[T]) String() string {
	return "Scalar(" + formatCoeff(s.Value) + ")"
}

func (v VectorTerm[T]) String() string {
	parts := make([]string, len(v.Components))
	for i, c := range v.Components {
		parts[i] = "e" + strconv.Itoa(c.Index) + ":" + formatCoeff(c.Coeff)
	}

	return "Vector(" + strings.Join(parts, ", ") + ")"
}

func (b BivectorTerm[T]) String() string {
	parts := make([]string, len(b.Components))
	for i, c := range b.Components {
		parts[i] = "e" + strconv.Itoa(c.I) + "e" + strconv.Itoa(c.J) + ":" + formatCoeff(c.Coeff)
	}

	return "Bivector(" + strings.Join(parts, ", ") + ")"
}

func (t TrivectorTerm[T]) String() string {
	parts := make([]string, len(t.Components))
	for i, c := range t.Components {
		parts[i] = "e" + strconv.Itoa(c.I) + "e" + strconv.Itoa(c.J) + "e" + strconv.Itoa(c.K) + ":" + formatCoeff(c.Coeff)
	}

	return "Trivector(" + strings.Join(parts, ", ") + ")"
}

func (m MultivectorTerm[T]) String() string {
	parts := make([]string, len(m.Blades))
	for i, b := range m.Blades {
		var sb strings.Builder
		for _, idx := range b.Indices {
			sb.WriteString("e")
			sb.WriteString(strconv.Itoa(idx))
		}
		parts[i] = sb.String() + ":" + formatCoeff(b.Coeff)
	}

	return "Multivector(" + strings.Join(parts, ", ") + ")"
}
