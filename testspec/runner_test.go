package testspec_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/tauvec/testspec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietRunner(opts ...testspec.Option) *testspec.Runner {
	base := []testspec.Option{
		testspec.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}

	return testspec.NewRunner(append(base, opts...)...)
}

func TestRunner_AllPass(t *testing.T) {
	s, err := testspec.Load([]byte(sampleSuite))
	require.NoError(t, err)

	report, err := quietRunner().Run(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, report.Ok())
	assert.Equal(t, 3, report.Passed)
	assert.Zero(t, report.Failed)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "core", report.Suite)
	assert.Empty(t, report.Failures())

	for _, res := range report.Results {
		assert.True(t, res.Passed, res.Case.Name)
		assert.NoError(t, res.Err)
	}
}

func TestRunner_RunIDsAreUnique(t *testing.T) {
	s, err := testspec.Load([]byte(sampleSuite))
	require.NoError(t, err)

	r := quietRunner()
	first, err := r.Run(context.Background(), s)
	require.NoError(t, err)
	second, err := r.Run(context.Background(), s)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRunner_RecordsFailures(t *testing.T) {
	cases := []testspec.Case{
		{Name: "wrong_sum", Op: "scalar.add", Inputs: []float64{2, 3}, Expected: []float64{6}},
		{Name: "no_such_op", Op: "scalar.mystery", Inputs: []float64{1}, Expected: []float64{1}},
		{Name: "bad_arity", Op: "scalar.add", Inputs: []float64{1}, Expected: []float64{1}},
		{Name: "passing", Op: "scalar.add", Inputs: []float64{2, 3}, Expected: []float64{5}},
	}

	report, err := quietRunner().RunCases(context.Background(), "failing", cases)
	require.NoError(t, err)

	assert.False(t, report.Ok())
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 3, report.Failed)

	byName := make(map[string]testspec.Result, len(report.Results))
	for _, res := range report.Results {
		byName[res.Case.Name] = res
	}

	assert.False(t, byName["wrong_sum"].Passed)
	assert.Equal(t, []float64{5}, byName["wrong_sum"].Got)
	assert.ErrorIs(t, byName["no_such_op"].Err, testspec.ErrUnknownOperation)
	assert.ErrorIs(t, byName["bad_arity"].Err, testspec.ErrArity)
	assert.True(t, byName["passing"].Passed)
}

func TestRunner_ToleranceGates(t *testing.T) {
	tight := testspec.Case{
		Name: "tight", Op: "vector.norm",
		Inputs: []float64{3, 4, 0}, Expected: []float64{5.001}, Tolerance: 1e-6,
	}
	loose := tight
	loose.Name = "loose"
	loose.Tolerance = 0.01

	report, err := quietRunner().RunCases(context.Background(), "tol", []testspec.Case{tight, loose})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)
}

// TestRunner_NaNExpectationsMatch: a case may pin NaN flow-through.
func TestRunner_NaNExpectationsMatch(t *testing.T) {
	nan := testspec.Case{
		Name: "nan_flows", Op: "scalar.add",
		Inputs:   []float64{nanValue(), 1},
		Expected: []float64{nanValue()},
	}

	report, err := quietRunner().RunCases(context.Background(), "nan", []testspec.Case{nan})
	require.NoError(t, err)
	assert.True(t, report.Ok())
}

func nanValue() float64 {
	zero := 0.0

	return zero / zero
}

func TestRunner_Parallel(t *testing.T) {
	cases := make([]testspec.Case, 0, 40)
	for i := 0; i < 40; i++ {
		cases = append(cases, testspec.Case{
			Name: "norm", Op: "vector.norm",
			Inputs: []float64{3, 4, 0}, Expected: []float64{5},
		})
	}

	report, err := quietRunner(testspec.WithParallelism(8)).
		RunCases(context.Background(), "parallel", cases)
	require.NoError(t, err)

	assert.True(t, report.Ok())
	assert.Equal(t, 40, report.Passed)
	require.Len(t, report.Results, 40)
}

func TestRunner_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := testspec.Load([]byte(sampleSuite))
	require.NoError(t, err)

	_, err = quietRunner().Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_CustomRegistry(t *testing.T) {
	r := testspec.NewRegistry()
	require.NoError(t, r.Register("always.one", func([]float64) ([]float64, error) {
		return []float64{1}, nil
	}))

	c := testspec.Case{Name: "one", Op: "always.one", Expected: []float64{1}}
	report, err := quietRunner(testspec.WithRegistry(r)).
		RunCases(context.Background(), "custom", []testspec.Case{c})
	require.NoError(t, err)

	assert.True(t, report.Ok())
}
