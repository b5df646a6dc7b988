// Package harness registers examples and runs them.
//
// An example is a zero-argument function that makes assertions through the
// check package. Examples are registered at package initialisation, usually
// from a package-level variable:
//
//	var _ = harness.Default().Register(func() {
//	    ...
//	})
//
// The process-wide registry is created on first use, so registrations from
// any file or package work regardless of initialisation order.
//
// # Running
//
// A Runner executes every registered example in registration order on the
// calling goroutine, then reports a Result holding the number of checks,
// how many passed, and every failure in recording order. There is no
// isolation between examples: a panicking example aborts the run and an
// example that never returns blocks it.
//
// # Summary Format
//
// WriteSummary renders a Result as plain text:
//
//	Ran 6 checks.
//	4 of the 6 checks passed.
//	Failures:
//	  main.go at line 12:
//	    left: 3
//	    right: 4
//
// When every check passed the tally line reads "All checks passed!" and no
// failures follow.
package harness
