// Package check implements the two assertion primitives, exact equality and
// numeric tolerance, and keeps the bookkeeping a run reports on: how many
// assertions executed and which of them failed.
//
// Assertions never stop the example that makes them. A failed assertion is
// recorded as a Failure and the example continues.
package check

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/roach88/expect/internal/equal"
	"github.com/roach88/expect/internal/naming"
	"github.com/roach88/expect/internal/repr"
	"github.com/roach88/expect/internal/shape"
)

// Kind classifies a failed assertion.
type Kind int

const (
	Mismatch     Kind = iota // comparable values that differ
	Incomparable             // no equality path between the operand types
	Tolerance                // numeric difference outside the allowed delta
)

func (k Kind) String() string {
	switch k {
	case Mismatch:
		return "mismatch"
	case Incomparable:
		return "incomparable"
	case Tolerance:
		return "tolerance"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Failure is one failed assertion. Text is the complete diagnostic record,
// location line included, ready to print.
type Failure struct {
	Kind     Kind
	Location Location
	Text     string
}

// Options tune how values are compared and reported.
type Options struct {
	// MaxFields caps the number of fields of a struct that is decomposed
	// field by field. 0 means no cap.
	MaxFields int

	// EnumProbeLimit is the highest raw value probed when naming an
	// enumeration member.
	EnumProbeLimit int

	// PathStyle selects how failure locations render their file.
	PathStyle PathStyle
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MaxFields:      shape.DefaultMaxFields,
		EnumProbeLimit: naming.DefaultProbeLimit,
		PathStyle:      PathBase,
	}
}

type engines struct {
	opts     Options
	printer  *repr.Printer
	comparer *equal.Comparer
}

func newEngines(opts Options) engines {
	return engines{
		opts:     opts,
		printer:  repr.New(naming.NewResolver(opts.EnumProbeLimit), opts.MaxFields),
		comparer: equal.New(opts.MaxFields),
	}
}

// Recorder evaluates assertions and accumulates their outcome.
//
// Thread-safety: All methods are safe for concurrent use. Values are
// compared without holding the lock, so an Equal method under test may
// itself make assertions.
type Recorder struct {
	counter *Counter

	mu       sync.Mutex
	engines  engines
	failures []Failure
}

// NewRecorder creates a recorder with the given options.
func NewRecorder(opts Options) *Recorder {
	return &Recorder{
		counter: NewCounter(),
		engines: newEngines(opts),
	}
}

var (
	defaultRecorder     *Recorder
	defaultRecorderOnce sync.Once
)

// Default returns the process-wide recorder, creating it with
// DefaultOptions on first use.
func Default() *Recorder {
	defaultRecorderOnce.Do(func() {
		defaultRecorder = NewRecorder(DefaultOptions())
	})
	return defaultRecorder
}

// Configure replaces the recorder's options. Recorded state is kept.
func (r *Recorder) Configure(opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines = newEngines(opts)
}

// Options returns the recorder's current options.
func (r *Recorder) Options() Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.engines.opts
}

// Equal asserts that actual equals expected. It reports whether the
// assertion passed.
//
// When no equality path exists between the operand types the assertion
// fails as incomparable without comparing.
func (r *Recorder) Equal(actual, expected any, loc Location) bool {
	r.counter.Next()
	e := r.current()

	if err := e.comparer.Comparable(reflect.TypeOf(actual), reflect.TypeOf(expected)); err != nil {
		r.record(Incomparable, loc, e.opts, err.Error()+".")
		return false
	}
	if e.comparer.Equal(actual, expected) {
		return true
	}

	r.record(Mismatch, loc, e.opts,
		"left: "+e.printer.Sprint(actual),
		"right: "+e.printer.Sprint(expected),
	)
	return false
}

// Within asserts that |actual-expected| <= |delta|. It reports whether the
// assertion passed. A NaN operand always fails.
func (r *Recorder) Within(actual, expected, delta float64, loc Location) bool {
	r.counter.Next()
	e := r.current()

	delta = math.Abs(delta)
	if math.Abs(actual-expected) <= delta {
		return true
	}

	r.record(Tolerance, loc, e.opts,
		"the absolute difference is not within "+e.printer.Sprint(delta),
		"left: "+e.printer.Sprint(actual),
		"right: "+e.printer.Sprint(expected),
	)
	return false
}

// Checks returns the number of assertions evaluated so far.
func (r *Recorder) Checks() int {
	return r.counter.Current()
}

// Failures returns the failures recorded so far, in recording order.
func (r *Recorder) Failures() []Failure {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.failures)
}

// Snapshot returns the assertion count and the failures together.
func (r *Recorder) Snapshot() (int, []Failure) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counter.Current(), slices.Clone(r.failures)
}

// Reset clears the count and the recorded failures. Options are kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter.Reset()
	r.failures = nil
}

func (r *Recorder) current() engines {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.engines
}

func (r *Recorder) record(kind Kind, loc Location, opts Options, lines ...string) {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s:", loc.Format(opts.PathStyle))
	for _, line := range lines {
		b.WriteString("\n    ")
		b.WriteString(line)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, Failure{Kind: kind, Location: loc, Text: b.String()})
}
