// Package render formats positions, distances, angles, times and
// speeds for human-facing output.
//
// All state lives in an explicit Config carried by a Formatter value;
// there is no package-level mutable configuration. DefaultConfig seeds
// its fields from TAUVEC_* environment variables once, at the call
// site, and callers that want different behavior construct their own
// Config.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/tauvec/angle"
)

// Default precisions and thresholds. Single source of truth for
// DefaultConfig.
const (
	DefaultPositionPrecision = 2
	DefaultAnglePrecision    = 2
	DefaultDistancePrecision = 2
	DefaultTimePrecision     = 2
	DefaultSpeedPrecision    = 2

	// DefaultScientificThreshold is the magnitude past which Distance
	// switches to scientific notation.
	DefaultScientificThreshold = 1e6
)

// Config holds every formatting knob. The zero value is usable but
// terse (zero decimal places); most callers start from DefaultConfig.
type Config struct {
	PositionPrecision int
	AnglePrecision    int
	DistancePrecision int
	TimePrecision     int
	SpeedPrecision    int

	// ScientificThreshold switches Distance to scientific notation
	// when |v| reaches it. Zero disables the switch.
	ScientificThreshold float64

	// TauConvention renders angles as fractions of τ alongside
	// degrees. Off, AngleTau falls back to radians.
	TauConvention bool
}

// DefaultConfig returns the package defaults, overridden by any
// TAUVEC_* environment variables that parse:
//
//	TAUVEC_POSITION_PRECISION, TAUVEC_ANGLE_PRECISION,
//	TAUVEC_DISTANCE_PRECISION, TAUVEC_TIME_PRECISION,
//	TAUVEC_SPEED_PRECISION, TAUVEC_SCIENTIFIC_THRESHOLD,
//	TAUVEC_TAU_CONVENTION
//
// Unset or malformed variables keep the defaults.
func DefaultConfig() Config {
	cfg := Config{
		PositionPrecision:   DefaultPositionPrecision,
		AnglePrecision:      DefaultAnglePrecision,
		DistancePrecision:   DefaultDistancePrecision,
		TimePrecision:       DefaultTimePrecision,
		SpeedPrecision:      DefaultSpeedPrecision,
		ScientificThreshold: DefaultScientificThreshold,
		TauConvention:       true,
	}

	envInt("TAUVEC_POSITION_PRECISION", &cfg.PositionPrecision)
	envInt("TAUVEC_ANGLE_PRECISION", &cfg.AnglePrecision)
	envInt("TAUVEC_DISTANCE_PRECISION", &cfg.DistancePrecision)
	envInt("TAUVEC_TIME_PRECISION", &cfg.TimePrecision)
	envInt("TAUVEC_SPEED_PRECISION", &cfg.SpeedPrecision)
	envFloat("TAUVEC_SCIENTIFIC_THRESHOLD", &cfg.ScientificThreshold)
	envBool("TAUVEC_TAU_CONVENTION", &cfg.TauConvention)

	return cfg
}

func envInt(key string, dst *int) {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v >= 0 {
		*dst = v
	}
}

func envFloat(key string, dst *float64) {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && v >= 0 {
		*dst = v
	}
}

func envBool(key string, dst *bool) {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		*dst = v
	}
}

// Formatter renders values under a fixed Config. The zero Formatter
// uses the zero Config; use New or Default for the usual setups.
type Formatter struct {
	cfg Config
}

// New wraps a Config.
func New(cfg Config) Formatter {
	return Formatter{cfg: cfg}
}

// Default is shorthand for New(DefaultConfig()).
func Default() Formatter {
	return New(DefaultConfig())
}

// Config returns the wrapped configuration.
func (f Formatter) Config() Config {
	return f.cfg
}

// Position renders a 3D point: "(1.00, 2.00, 3.00)".
func (f Formatter) Position(x, y, z float64) string {
	p := f.cfg.PositionPrecision

	return fmt.Sprintf("(%.*f, %.*f, %.*f)", p, x, p, y, p, z)
}

// Distance renders meters: "12.50 m", switching to scientific notation
// past the configured threshold.
func (f Formatter) Distance(meters float64) string {
	if f.cfg.ScientificThreshold > 0 && math.Abs(meters) >= f.cfg.ScientificThreshold {
		return f.Scientific(meters) + " m"
	}

	return fmt.Sprintf("%.*f m", f.cfg.DistancePrecision, meters)
}

// DistanceSI renders meters with an SI prefix: "1.5 km", "250 mm".
func (f Formatter) DistanceSI(meters float64) string {
	return humanize.SIWithDigits(meters, f.cfg.DistancePrecision, "m")
}

// AngleDegrees renders "90.00°".
func (f Formatter) AngleDegrees(a angle.Angle) string {
	return fmt.Sprintf("%.*f°", f.cfg.AnglePrecision, a.Degrees())
}

// AngleTau renders the angle as a fraction of a turn: "0.25τ". With
// the tau convention disabled it renders radians instead: "1.57 rad".
func (f Formatter) AngleTau(a angle.Angle) string {
	if !f.cfg.TauConvention {
		return fmt.Sprintf("%.*f rad", f.cfg.AnglePrecision, a.Radians())
	}

	return fmt.Sprintf("%.*fτ", f.cfg.AnglePrecision, a.Turns())
}

// AngleCombined renders degrees with the turn fraction in parentheses:
// "90.00° (0.25τ)". With the tau convention disabled only degrees
// appear.
func (f Formatter) AngleCombined(a angle.Angle) string {
	if !f.cfg.TauConvention {
		return f.AngleDegrees(a)
	}

	return f.AngleDegrees(a) + " (" + f.AngleTau(a) + ")"
}

// Time renders seconds: "12.34 s".
func (f Formatter) Time(seconds float64) string {
	return fmt.Sprintf("%.*f s", f.cfg.TimePrecision, seconds)
}

// Speed renders meters per second: "5.00 m/s".
func (f Formatter) Speed(mps float64) string {
	return fmt.Sprintf("%.*f m/s", f.cfg.SpeedPrecision, mps)
}

// Scientific renders any value in scientific notation at the distance
// precision: "1.23e+08".
func (f Formatter) Scientific(v float64) string {
	return strconv.FormatFloat(v, 'e', f.cfg.DistancePrecision, 64)
}

// SectionHeader renders "=== title ===".
func (f Formatter) SectionHeader(title string) string {
	return "=== " + title + " ==="
}

// ListItem renders "  - item".
func (f Formatter) ListItem(item string) string {
	return "  - " + item
}

// DegreesToTau converts degrees to a fraction of a turn.
func DegreesToTau(deg float64) float64 {
	return deg / 360
}

// TauToDegrees converts a fraction of a turn to degrees.
func TauToDegrees(frac float64) float64 {
	return frac * 360
}

// FprintSection writes a section header followed by items, one list
// entry per line.
func (f Formatter) FprintSection(w io.Writer, title string, items ...string) error {
	if _, err := fmt.Fprintln(w, f.SectionHeader(title)); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, f.ListItem(item)); err != nil {
			return err
		}
	}

	return nil
}

// FprintKeyValue writes "  - key: value" to w.
func (f Formatter) FprintKeyValue(w io.Writer, key, value string) error {
	_, err := fmt.Fprintln(w, f.ListItem(key+": "+value))

	return err
}
