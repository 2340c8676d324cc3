package ziptie

import (
	"io"
	"log/slog"
	"math"
	"os"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the energy both learners must exceed before a
	// bundle is nucleated or grown.
	DefaultThreshold = 1e4

	// DefaultActivityThreshold is the floor at or below which a cable counts
	// as inactive. Ignoring small values keeps the energy gather sparse.
	DefaultActivityThreshold = 0.1

	// DefaultName labels the instance in logs and reports.
	DefaultName = "ziptie"

	// initialMapSize is the starting capacity of the bundle map arena.
	initialMapSize = 8
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBundlesInvalid   = "ziptie: WithBundles: capacity must be > 0"
	panicThresholdInvalid = "ziptie: threshold must be finite, non-negative"
	panicCombinatorNil    = "ziptie: WithCombinator: combinator must not be nil"
	panicLoggerNil        = "ziptie: WithLogger: logger must not be nil"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is immutable once New returns.
type Options struct {
	nBundles               int     // 0 ⇒ same as the cable count
	nucleationThreshold    float64 // DefaultThreshold
	agglomerationThreshold float64 // DefaultThreshold
	activityThreshold      float64 // DefaultActivityThreshold
	name                   string  // DefaultName
	debug                  bool
	logger                 *slog.Logger
	combinator             Combinator // nil ⇒ GatedProduct(activityThreshold), sparse path
}

func mustThreshold(t float64) {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicThresholdInvalid)
	}
}

// WithBundles sets the bundle capacity. Defaults to the number of cables.
func WithBundles(n int) Option {
	if n <= 0 {
		panic(panicBundlesInvalid)
	}
	return func(o *Options) { o.nBundles = n }
}

// WithThreshold sets both the nucleation and agglomeration thresholds.
func WithThreshold(t float64) Option {
	mustThreshold(t)
	return func(o *Options) {
		o.nucleationThreshold = t
		o.agglomerationThreshold = t
	}
}

// WithNucleationThreshold sets only the nucleation threshold.
func WithNucleationThreshold(t float64) Option {
	mustThreshold(t)
	return func(o *Options) { o.nucleationThreshold = t }
}

// WithAgglomerationThreshold sets only the agglomeration threshold.
func WithAgglomerationThreshold(t float64) Option {
	mustThreshold(t)
	return func(o *Options) { o.agglomerationThreshold = t }
}

// WithActivityThreshold sets the floor below which activity is ignored.
func WithActivityThreshold(t float64) Option {
	mustThreshold(t)
	return func(o *Options) { o.activityThreshold = t }
}

// WithName labels the instance in logs and reports.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithDebug turns on diagnostic output. Without WithLogger, debug output goes
// to stderr as text. Learning is unaffected.
func WithDebug(debug bool) Option {
	return func(o *Options) { o.debug = debug }
}

// WithLogger routes nucleation and agglomeration events to l at Debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.logger = l }
}

// WithCombinator replaces the gated product used to turn two activities into
// energy. The combinator owns any activity gating.
func WithCombinator(c Combinator) Option {
	if c == nil {
		panic(panicCombinatorNil)
	}
	return func(o *Options) { o.combinator = c }
}

// gatherOptions resolves defaults, applies setters in order (last writer
// wins), then derives the logger.
func gatherOptions(user ...Option) Options {
	o := Options{
		nucleationThreshold:    DefaultThreshold,
		agglomerationThreshold: DefaultThreshold,
		activityThreshold:      DefaultActivityThreshold,
		name:                   DefaultName,
	}
	for _, set := range user {
		set(&o)
	}

	if o.logger == nil {
		var w io.Writer = io.Discard
		level := slog.LevelInfo
		if o.debug {
			w, level = os.Stderr, slog.LevelDebug
		}
		o.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}

	return o
}
