package report

import (
	"fmt"
	"io"
	"strings"
)

// TAPReporter writes outcomes in Test Anything Protocol format
type TAPReporter struct {
	out    io.Writer
	count  int
	failed int
}

// NewTAPReporter returns a new instance of TAPReporter writing to out
func NewTAPReporter(out io.Writer) *TAPReporter {
	return &TAPReporter{out: out}
}

// Plan writes the TAP plan line for n tests
func (r *TAPReporter) Plan(n int) {
	fmt.Fprintf(r.out, "1..%d\n", n)
}

// Report writes a single "ok" or "not ok" line followed by any diagnostic
func (r *TAPReporter) Report(outcome Outcome) {
	r.count++

	status := "ok"

	if !outcome.Passed {
		status = "not ok"
		r.failed++
	}

	line := fmt.Sprintf("%s %d", status, r.count)

	if outcome.Description != "" {
		line += " - " + outcome.Description
	}

	fmt.Fprintln(r.out, line)

	if outcome.Passed || outcome.Diagnostic == "" {
		return
	}

	for _, diag := range strings.Split(strings.TrimRight(outcome.Diagnostic, "\n"), "\n") {
		fmt.Fprintf(r.out, "#   %s\n", diag)
	}
}

// Count returns the number of outcomes reported
func (r *TAPReporter) Count() int {
	return r.count
}

// Failed returns the number of failed outcomes reported
func (r *TAPReporter) Failed() int {
	return r.failed
}
