package testspec

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
)

// Case is one executable check: an operation name from the registry,
// flat numeric inputs, and the outputs it must produce.
type Case struct {
	Name        string    `json:"test_name"`
	Description string    `json:"description,omitempty"`
	Op          string    `json:"operation"`
	Inputs      []float64 `json:"inputs"`
	Expected    []float64 `json:"expected_outputs"`
	Tolerance   float64   `json:"tolerance,omitempty"`
	Tags        []string  `json:"tags,omitempty"`

	// Category is the key of the owning category, filled in at load
	// time; it does not appear in the JSON case object.
	Category string `json:"-"`
}

// Valid reports whether the case can run at all.
func (c Case) Valid() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: missing test_name", ErrInvalidCase)
	case c.Op == "":
		return fmt.Errorf("%w: %q has no operation", ErrInvalidCase, c.Name)
	case len(c.Expected) == 0:
		return fmt.Errorf("%w: %q has no expected_outputs", ErrInvalidCase, c.Name)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: %q has negative tolerance", ErrInvalidCase, c.Name)
	default:
		return nil
	}
}

// HasTag reports whether the case carries tag.
func (c Case) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// Category groups cases under a shared description.
type Category struct {
	Description string `json:"description,omitempty"`
	Tests       []Case `json:"tests"`
}

// Suite is a whole JSON test document.
type Suite struct {
	Name        string              `json:"test_suite_name"`
	Version     string              `json:"version,omitempty"`
	Description string              `json:"description,omitempty"`
	Categories  map[string]Category `json:"categories"`
}

// Load parses a suite from JSON, stamps each case with its category
// key, and validates the result.
func Load(data []byte) (*Suite, error) {
	var s Suite
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testspec: parse suite: %w", err)
	}

	for key, cat := range s.Categories {
		for i := range cat.Tests {
			cat.Tests[i].Category = key
		}
		s.Categories[key] = cat
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile reads and parses a suite from path.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testspec: read suite: %w", err)
	}

	return Load(data)
}

// Validate checks the suite shape and every case.
func (s *Suite) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing test_suite_name", ErrEmptySuite)
	}
	if len(s.AllCases()) == 0 {
		return fmt.Errorf("%w: %q has no cases", ErrEmptySuite, s.Name)
	}

	for _, c := range s.AllCases() {
		if err := c.Valid(); err != nil {
			return err
		}
	}

	return nil
}

// AllCases returns every case, in category-key order then document
// order. Map iteration is randomized, so the sort keeps runs stable.
func (s *Suite) AllCases() []Case {
	keys := make([]string, 0, len(s.Categories))
	for key := range s.Categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []Case
	for _, key := range keys {
		out = append(out, s.Categories[key].Tests...)
	}

	return out
}

// CasesByTag returns the cases carrying tag.
func (s *Suite) CasesByTag(tag string) []Case {
	var out []Case
	for _, c := range s.AllCases() {
		if c.HasTag(tag) {
			out = append(out, c)
		}
	}

	return out
}

// CasesByCategory returns the cases of one category key.
func (s *Suite) CasesByCategory(key string) []Case {
	cat, ok := s.Categories[key]
	if !ok {
		return nil
	}

	out := make([]Case, len(cat.Tests))
	copy(out, cat.Tests)

	return out
}

// CasesByName returns the cases whose name matches pattern.
func (s *Suite) CasesByName(pattern string) ([]Case, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("testspec: bad name pattern: %w", err)
	}

	var out []Case
	for _, c := range s.AllCases() {
		if re.MatchString(c.Name) {
			out = append(out, c)
		}
	}

	return out, nil
}

// Stats summarizes a suite.
type Stats struct {
	Categories int
	Cases      int
	Operations map[string]int
	Tags       map[string]int
}

// Statistics counts cases per operation and per tag.
func (s *Suite) Statistics() Stats {
	st := Stats{
		Categories: len(s.Categories),
		Operations: make(map[string]int),
		Tags:       make(map[string]int),
	}

	for _, c := range s.AllCases() {
		st.Cases++
		st.Operations[c.Op]++
		for _, tag := range c.Tags {
			st.Tags[tag]++
		}
	}

	return st
}
