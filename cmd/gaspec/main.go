// Command gaspec runs JSON test suites against the tauvec library.
//
// Usage:
//
//	gaspec [flags] suite.json
//
// Flags:
//
//	-tag string       run only cases carrying this tag
//	-category string  run only cases of this category key
//	-run string       run only cases whose name matches this regexp
//	-parallel int     bound concurrent case execution (default 1)
//	-format string    report format: text or json (default "text")
//	-stats            print suite statistics instead of running
//	-v                verbose structured logging
//
// Exit status is 1 on any failed case, load error or bad flag.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/tauvec/testspec"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
)

type options struct {
	tag      string
	category string
	run      string
	format   string
	parallel int
	stats    bool
	verbose  bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts options
	fs := flag.NewFlagSet("gaspec", flag.ContinueOnError)
	fs.StringVar(&opts.tag, "tag", "", "run only cases carrying this tag")
	fs.StringVar(&opts.category, "category", "", "run only cases of this category")
	fs.StringVar(&opts.run, "run", "", "run only cases whose name matches this regexp")
	fs.StringVar(&opts.format, "format", "text", "report format: text or json")
	fs.IntVar(&opts.parallel, "parallel", 1, "bound concurrent case execution")
	fs.BoolVar(&opts.stats, "stats", false, "print suite statistics instead of running")
	fs.BoolVar(&opts.verbose, "v", false, "verbose structured logging")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gaspec [flags] suite.json")

		return 1
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	suite, err := testspec.LoadFile(fs.Arg(0))
	if err != nil {
		logger.Error("load failed", slog.String("path", fs.Arg(0)), slog.Any("err", err))

		return 1
	}

	if opts.stats {
		printStats(suite)

		return 0
	}

	cases, err := selectCases(suite, opts)
	if err != nil {
		logger.Error("bad filter", slog.Any("err", err))

		return 1
	}
	if len(cases) == 0 {
		fmt.Fprintln(os.Stderr, "gaspec: no cases match the given filters")

		return 1
	}

	runner := testspec.NewRunner(
		testspec.WithLogger(logger),
		testspec.WithParallelism(opts.parallel),
	)
	report, err := runner.RunCases(context.Background(), suite.Name, cases)
	if err != nil {
		logger.Error("run failed", slog.Any("err", err))

		return 1
	}

	switch opts.format {
	case "json":
		if err := printJSON(report); err != nil {
			logger.Error("encode report", slog.Any("err", err))

			return 1
		}
	case "text":
		printText(report)
	default:
		fmt.Fprintf(os.Stderr, "gaspec: unknown format %q\n", opts.format)

		return 1
	}

	if !report.Ok() {
		return 1
	}

	return 0
}

// selectCases applies the tag, category and name filters in sequence.
func selectCases(suite *testspec.Suite, opts options) ([]testspec.Case, error) {
	cases := suite.AllCases()
	if opts.category != "" {
		cases = suite.CasesByCategory(opts.category)
	}
	if opts.tag != "" {
		kept := cases[:0:0]
		for _, c := range cases {
			if c.HasTag(opts.tag) {
				kept = append(kept, c)
			}
		}
		cases = kept
	}
	if opts.run != "" {
		matched, err := suite.CasesByName(opts.run)
		if err != nil {
			return nil, err
		}
		names := make(map[string]bool, len(matched))
		for _, c := range matched {
			names[c.Name] = true
		}
		kept := cases[:0:0]
		for _, c := range cases {
			if names[c.Name] {
				kept = append(kept, c)
			}
		}
		cases = kept
	}

	return cases, nil
}

func printStats(suite *testspec.Suite) {
	st := suite.Statistics()
	fmt.Printf("suite:      %s (version %s)\n", suite.Name, suite.Version)
	fmt.Printf("categories: %d\n", st.Categories)
	fmt.Printf("cases:      %d\n", st.Cases)
	fmt.Println("operations:")
	for _, name := range sortedKeys(st.Operations) {
		fmt.Printf("  %-28s %d\n", name, st.Operations[name])
	}
	if len(st.Tags) > 0 {
		fmt.Println("tags:")
		for _, tag := range sortedKeys(st.Tags) {
			fmt.Printf("  %-28s %d\n", tag, st.Tags[tag])
		}
	}
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

func printText(report *testspec.Report) {
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	for _, res := range report.Results {
		status := "PASS"
		paint := colorGreen
		if !res.Passed {
			status = "FAIL"
			paint = colorRed
		}
		if color {
			status = paint + status + colorReset
		}
		fmt.Printf("%s %s/%s (%s)\n", status, res.Case.Category, res.Case.Name, res.Duration)
		if !res.Passed {
			if res.Err != nil {
				fmt.Printf("     %v\n", res.Err)
			} else {
				fmt.Printf("     got %v, want %v\n", res.Got, res.Case.Expected)
			}
		}
	}

	fmt.Printf("\nrun %s: %s passed, %s failed in %s\n",
		report.RunID,
		humanize.Comma(int64(report.Passed)),
		humanize.Comma(int64(report.Failed)),
		report.Duration)
}

func printJSON(report *testspec.Report) error {
	type caseOut struct {
		Name     string    `json:"name"`
		Category string    `json:"category"`
		Op       string    `json:"operation"`
		Passed   bool      `json:"passed"`
		Got      []float64 `json:"got,omitempty"`
		Error    string    `json:"error,omitempty"`
		Duration string    `json:"duration"`
	}
	out := struct {
		RunID    string    `json:"run_id"`
		Suite    string    `json:"suite"`
		Passed   int       `json:"passed"`
		Failed   int       `json:"failed"`
		Duration string    `json:"duration"`
		Results  []caseOut `json:"results"`
	}{
		RunID:    report.RunID,
		Suite:    report.Suite,
		Passed:   report.Passed,
		Failed:   report.Failed,
		Duration: report.Duration.String(),
	}
	for _, res := range report.Results {
		c := caseOut{
			Name:     res.Case.Name,
			Category: res.Case.Category,
			Op:       res.Case.Op,
			Passed:   res.Passed,
			Got:      res.Got,
			Duration: res.Duration.String(),
		}
		if res.Err != nil {
			c.Error = res.Err.Error()
		}
		out.Results = append(out.Results, c)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
