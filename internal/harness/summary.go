package harness

import (
	"bufio"
	"fmt"
	"io"
)

// WriteSummary writes the plain-text report for result to w.
func WriteSummary(w io.Writer, result *Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Ran %d %s.\n", result.Checks, plural(result.Checks))
	if len(result.Failures) == 0 {
		fmt.Fprintln(bw, "All checks passed!")
		return bw.Flush()
	}

	fmt.Fprintf(bw, "%d of the %d %s passed.\n", result.Passed, result.Checks, plural(result.Checks))
	fmt.Fprintln(bw, "Failures:")
	for _, f := range result.Failures {
		fmt.Fprintf(bw, "%s\n\n", f.Text)
	}
	return bw.Flush()
}

func plural(n int) string {
	if n == 1 {
		return "check"
	}
	return "checks"
}
