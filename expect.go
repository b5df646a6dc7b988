// Package expect lets a program declare examples inline and check values
// inside them without writing comparison or printing code per type.
//
// Examples are registered from package-level variables and run by Main:
//
//	var _ = expect.Examples(func() {
//	    expect.Equal(bucket([]string{"Ash", "Maria"}), []string{"Ash", "Maria"})
//	    expect.Within(1.0, 1.05, 0.1)
//	})
//
//	func main() { expect.Main() }
//
// Equal compares any two values structurally. Plain data structs (exported
// fields only, no methods) are compared field by field and printed as
// "pkg.T {f0, f1}"; slices, arrays, maps and sets element by element. Types
// with an Equal(T) bool method use it. Other types fall back to ==. When no
// comparison exists between the operand types the check fails as
// incomparable instead of panicking.
//
// Results are only visible in the summary Main prints:
//
//	Ran 6 checks.
//	All checks passed!
package expect

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/roach88/expect/internal/check"
	"github.com/roach88/expect/internal/cli"
	"github.com/roach88/expect/internal/harness"
	"github.com/roach88/expect/internal/naming"
	"github.com/roach88/expect/internal/value"
)

// Char is a single character. It prints as a quoted literal ('a') where a
// bare rune prints as its code point.
type Char = value.Char

// Set is an ordered set of distinct values.
type Set[T cmp.Ordered] = value.Set[T]

// Result is the outcome of Run.
type Result = harness.Result

// Integer is the set of integer types usable as enumerations.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is the set of types Within accepts.
type Number interface {
	Integer | ~float32 | ~float64
}

// NewSet returns a set holding the distinct values of items.
func NewSet[T cmp.Ordered](items ...T) Set[T] {
	return value.NewSet(items...)
}

// Examples registers fn to run when Main (or Run) is called and returns its
// ID. It is meant to be assigned to a blank package-level variable.
func Examples(fn func()) int {
	return harness.Default().Register(fn)
}

// Equal checks that actual equals expected.
func Equal(actual, expected any) {
	check.Default().Equal(actual, expected, check.Caller(1))
}

// Within checks that actual is within delta of expected.
func Within[T Number](actual, expected, delta T) {
	check.Default().Within(float64(actual), float64(expected), float64(delta), check.Caller(1))
}

// Enum registers the member names of enumeration type T, so its values
// print as "pkg.T::Member". Values are looked up by probing raw values from
// 0 to the configured limit (10 by default).
func Enum[T Integer](members map[T]string) bool {
	table := make(map[int64]string, len(members))
	for v, name := range members {
		table[int64(v)] = name
	}
	mustRegister(naming.RegisterEnum(reflect.TypeFor[T](), table))
	return true
}

// StringerEnum registers T as an enumeration named by its String method.
func StringerEnum[T interface {
	Integer
	fmt.Stringer
}]() bool {
	mustRegister(naming.RegisterStringer(reflect.TypeFor[T]()))
	return true
}

// Name overrides the name printed for type T.
func Name[T any](name string) bool {
	naming.RegisterName(reflect.TypeFor[T](), name)
	return true
}

// Run executes the registered examples with the current options and writes
// the summary to w. Counts accumulate across calls. The result is returned
// even when the summary cannot be written.
func Run(w io.Writer) (*Result, error) {
	result := harness.NewRunner(harness.Default(), check.Default(), nil).Run(context.Background())
	if err := harness.WriteSummary(w, result); err != nil {
		return result, fmt.Errorf("failed to write summary: %w", err)
	}
	return result, nil
}

// Main parses the command line, runs the registered examples, prints the
// summary to standard output and exits: 0 when every check passed, 1 when
// some failed and 2 on a command error.
func Main() {
	os.Exit(cli.Execute(cli.NewRootCommand(cli.DefaultEnv())))
}

func mustRegister(err error) {
	if err != nil {
		panic(fmt.Sprintf("expect: %v", err))
	}
}
