package testspec

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tauvec/angle"
	"github.com/katalvlaran/tauvec/gaterm"
	"github.com/katalvlaran/tauvec/marine"
	"github.com/katalvlaran/tauvec/units"
)

// OpFunc executes one registered operation over flat numeric inputs.
type OpFunc func(inputs []float64) ([]float64, error)

// Registry maps operation names to implementations. The zero Registry
// is not usable; construct with NewRegistry or DefaultRegistry.
type Registry struct {
	ops map[string]OpFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]OpFunc)}
}

// Register binds name to fn. An empty name or nil function fails with
// ErrInvalidRegistration; re-registering a name fails with
// ErrDuplicateOperation.
func (r *Registry) Register(name string, fn OpFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: name %q, func nil=%t", ErrInvalidRegistration, name, fn == nil)
	}
	if _, exists := r.ops[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOperation, name)
	}
	r.ops[name] = fn

	return nil
}

// Lookup returns the operation bound to name.
func (r *Registry) Lookup(name string) (OpFunc, bool) {
	fn, ok := r.ops[name]

	return fn, ok
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.ops))
	for name := range r.ops {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// generalGradeWire encodes gaterm.GradeGeneral in the flat numeric
// wire format, where the fixed grades ride as 0..3.
const generalGradeWire = -1

func gradeFromWire(v float64) (gaterm.Grade, error) {
	switch v {
	case generalGradeWire:
		return gaterm.GradeGeneral, nil
	case 0, 1, 2, 3:
		return gaterm.Grade(int(v)), nil
	default:
		return 0, fmt.Errorf("%w: %g", ErrBadGrade, v)
	}
}

func gradeToWire(g gaterm.Grade) float64 {
	if !g.Fixed() {
		return generalGradeWire
	}

	return float64(g)
}

func arity(inputs []float64, n int) error {
	if len(inputs) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrArity, len(inputs), n)
	}

	return nil
}

func wireVector(xyz []float64) gaterm.Term[float64] {
	comps := make([]gaterm.VectorComponent[float64], 0, 3)
	for i, c := range xyz {
		if c != 0 {
			comps = append(comps, gaterm.VectorComponent[float64]{Index: i + 1, Coeff: c})
		}
	}

	return gaterm.Vector(comps)
}

func vectorWire(term gaterm.Term[float64]) []float64 {
	out := make([]float64, 3)
	if v, ok := term.(gaterm.VectorTerm[float64]); ok {
		for _, c := range v.Components {
			out[c.Index-1] = c.Coeff
		}
	}

	return out
}

// DefaultRegistry binds the library surface the JSON suites exercise.
// Every operation takes and returns flat float64 slices; grades ride
// as 0..3 with -1 for the general grade.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	mustRegister := func(name string, fn OpFunc) {
		if err := r.Register(name, fn); err != nil {
			panic(err)
		}
	}

	mustRegister("scalar.add", func(in []float64) ([]float64, error) {
		if err := arity(in, 2); err != nil {
			return nil, err
		}
		sum, err := gaterm.Add(gaterm.Scalar(in[0]), gaterm.Scalar(in[1]))
		if err != nil {
			return nil, err
		}

		return []float64{sum.(gaterm.ScalarTerm[float64]).Value}, nil
	})

	mustRegister("vector.add", func(in []float64) ([]float64, error) {
		if err := arity(in, 6); err != nil {
			return nil, err
		}
		sum, err := gaterm.Add(wireVector(in[:3]), wireVector(in[3:]))
		if err != nil {
			return nil, err
		}

		return vectorWire(sum), nil
	})

	mustRegister("vector.scale", func(in []float64) ([]float64, error) {
		if err := arity(in, 4); err != nil {
			return nil, err
		}

		return vectorWire(gaterm.Scale(in[0], wireVector(in[1:]))), nil
	})

	mustRegister("vector.norm", func(in []float64) ([]float64, error) {
		if err := arity(in, 3); err != nil {
			return nil, err
		}

		return []float64{gaterm.Norm(wireVector(in))}, nil
	})

	mustRegister("grade.outer", func(in []float64) ([]float64, error) {
		g1, g2, err := wireGradePair(in)
		if err != nil {
			return nil, err
		}

		return []float64{gradeToWire(gaterm.OuterProductGrade(g1, g2))}, nil
	})

	mustRegister("grade.inner", func(in []float64) ([]float64, error) {
		g1, g2, err := wireGradePair(in)
		if err != nil {
			return nil, err
		}

		return []float64{gradeToWire(gaterm.InnerProductGrade(g1, g2))}, nil
	})

	mustRegister("grade.geometric", func(in []float64) ([]float64, error) {
		g1, g2, err := wireGradePair(in)
		if err != nil {
			return nil, err
		}

		set := gaterm.GeometricProductGrades(g1, g2)
		out := make([]float64, 0, 5)
		for _, g := range set.Grades() {
			out = append(out, gradeToWire(g))
		}

		return out, nil
	})

	mustRegister("units.velocity", func(in []float64) ([]float64, error) {
		if err := arity(in, 2); err != nil {
			return nil, err
		}
		v := units.Meters(in[0]).Div(units.Seconds(in[1]))

		return []float64{
			v.Value(),
			float64(v.MassDim()),
			float64(v.LengthDim()),
			float64(v.TimeDim()),
		}, nil
	})

	mustRegister("convert.knots_to_mps", func(in []float64) ([]float64, error) {
		if err := arity(in, 1); err != nil {
			return nil, err
		}
		mps, err := units.InMetersPerSecond(units.Knots(in[0]))
		if err != nil {
			return nil, err
		}

		return []float64{mps}, nil
	})

	mustRegister("convert.kmh_to_mps", func(in []float64) ([]float64, error) {
		if err := arity(in, 1); err != nil {
			return nil, err
		}
		mps, err := units.InMetersPerSecond(units.KilometersPerHour(in[0]))
		if err != nil {
			return nil, err
		}

		return []float64{mps}, nil
	})

	mustRegister("angle.degrees_to_radians", func(in []float64) ([]float64, error) {
		if err := arity(in, 1); err != nil {
			return nil, err
		}

		return []float64{angle.FromDegrees(in[0]).Radians()}, nil
	})

	mustRegister("angle.radians_to_degrees", func(in []float64) ([]float64, error) {
		if err := arity(in, 1); err != nil {
			return nil, err
		}

		return []float64{angle.FromRadians(in[0]).Degrees()}, nil
	})

	mustRegister("angle.normalize", func(in []float64) ([]float64, error) {
		if err := arity(in, 1); err != nil {
			return nil, err
		}

		return []float64{angle.FromRadians(in[0]).Normalized().Radians()}, nil
	})

	mustRegister("angle.sin", func(in []float64) ([]float64, error) {
		if err := arity(in, 1); err != nil {
			return nil, err
		}

		return []float64{angle.FromRadians(in[0]).Sin()}, nil
	})

	mustRegister("marine.buoyancy", func(in []float64) ([]float64, error) {
		if err := arity(in, 1); err != nil {
			return nil, err
		}
		f, err := marine.BuoyancyForce(units.NewQuantity(in[0], units.DimVolume))
		if err != nil {
			return nil, err
		}

		return []float64{f.Value()}, nil
	})

	mustRegister("marine.pressure_at_depth", func(in []float64) ([]float64, error) {
		if err := arity(in, 1); err != nil {
			return nil, err
		}
		p, err := marine.PressureAtDepth(units.Meters(in[0]))
		if err != nil {
			return nil, err
		}

		return []float64{p.Value()}, nil
	})

	return r
}

func wireGradePair(in []float64) (gaterm.Grade, gaterm.Grade, error) {
	if err := arity(in, 2); err != nil {
		return 0, 0, err
	}
	g1, err := gradeFromWire(in[0])
	if err != nil {
		return 0, 0, err
	}
	g2, err := gradeFromWire(in[1])
	if err != nil {
		return 0, 0, err
	}

	return g1, g2, nil
}
