package testspec

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultTolerance applies to cases that leave tolerance unset.
const DefaultTolerance = 1e-9

// Result is the outcome of one case.
type Result struct {
	Case     Case
	Got      []float64
	Err      error
	Passed   bool
	Duration time.Duration
}

// failure explains why a failed case failed.
func (r Result) failure() string {
	if r.Err != nil {
		return r.Err.Error()
	}

	return fmt.Sprintf("got %v, want %v", r.Got, r.Case.Expected)
}

// Report is the outcome of a whole run. RunID is a fresh UUID so
// reports from repeated runs stay distinguishable in logs.
type Report struct {
	RunID    string
	Suite    string
	Results  []Result
	Passed   int
	Failed   int
	Duration time.Duration
}

// Ok reports whether every case passed.
func (r *Report) Ok() bool {
	return r.Failed == 0
}

// Failures returns only the failed results.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}

	return out
}

// Runner executes suite cases against a registry.
type Runner struct {
	registry    *Registry
	logger      *slog.Logger
	parallelism int
}

// Option configures a Runner.
type Option func(*Runner)

// WithRegistry swaps the operation registry; the default is
// DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(run *Runner) { run.registry = r }
}

// WithLogger attaches a structured logger; the default discards
// nothing and logs nothing beyond slog's default handler at Info.
func WithLogger(l *slog.Logger) Option {
	return func(run *Runner) { run.logger = l }
}

// WithParallelism bounds concurrent case execution. Values below 2
// keep the run sequential.
func WithParallelism(n int) Option {
	return func(run *Runner) { run.parallelism = n }
}

// NewRunner builds a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	run := &Runner{
		registry:    DefaultRegistry(),
		logger:      slog.Default(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(run)
	}

	return run
}

// Run executes every case of the suite and returns a Report. Case
// failures are recorded, not returned as errors; the error return
// covers cancellation only.
func (run *Runner) Run(ctx context.Context, suite *Suite) (*Report, error) {
	return run.RunCases(ctx, suite.Name, suite.AllCases())
}

// RunCases executes an explicit case list (the filtered subsets the
// CLI builds) under the suite's name.
func (run *Runner) RunCases(ctx context.Context, suiteName string, cases []Case) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Suite:   suiteName,
		Results: make([]Result, len(cases)),
	}

	run.logger.Debug("run started",
		slog.String("run_id", report.RunID),
		slog.String("suite", suiteName),
		slog.Int("cases", len(cases)),
	)

	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	if run.parallelism > 1 {
		g.SetLimit(run.parallelism)
	} else {
		g.SetLimit(1)
	}

	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Results[i] = run.runCase(c)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("testspec: run %s: %w", report.RunID, err)
	}

	report.Duration = time.Since(start)
	for _, res := range report.Results {
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
			run.logger.Warn("case failed",
				slog.String("run_id", report.RunID),
				slog.String("case", res.Case.Name),
				slog.String("reason", res.failure()),
			)
		}
	}

	run.logger.Info("run finished",
		slog.String("run_id", report.RunID),
		slog.Int("passed", report.Passed),
		slog.Int("failed", report.Failed),
		slog.Duration("took", report.Duration),
	)

	return report, nil
}

func (run *Runner) runCase(c Case) Result {
	res := Result{Case: c}
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	if err := c.Valid(); err != nil {
		res.Err = err

		return res
	}

	fn, ok := run.registry.Lookup(c.Op)
	if !ok {
		res.Err = fmt.Errorf("%w: %s", ErrUnknownOperation, c.Op)

		return res
	}

	got, err := fn(c.Inputs)
	if err != nil {
		res.Err = err

		return res
	}

	res.Got = got
	res.Passed = outputsMatch(got, c.Expected, c.tolerance())

	return res
}

func (c Case) tolerance() float64 {
	if c.Tolerance > 0 {
		return c.Tolerance
	}

	return DefaultTolerance
}

// outputsMatch compares element-wise within tol. Two NaNs compare
// equal, so NaN flow-through is testable.
func outputsMatch(got, want []float64, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] == want[i] {
			continue
		}
		if math.IsNaN(got[i]) && math.IsNaN(want[i]) {
			continue
		}
		if !(math.Abs(got[i]-want[i]) <= tol) {
			return false
		}
	}

	return true
}
