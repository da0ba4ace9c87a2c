package report

import "testing"

// TestingReporter reports outcomes through a go test handle so assertions
// can be embedded in regular go tests
type TestingReporter struct {
	tb testing.TB
}

// NewTestingReporter returns a new instance of TestingReporter
func NewTestingReporter(tb testing.TB) *TestingReporter {
	return &TestingReporter{tb: tb}
}

// Report marks the test failed for failed outcomes and logs passed ones
func (r *TestingReporter) Report(outcome Outcome) {
	r.tb.Helper()

	if outcome.Passed {
		r.tb.Logf("ok - %s", outcome.Description)
		return
	}

	if outcome.Diagnostic == "" {
		r.tb.Errorf("not ok - %s", outcome.Description)
		return
	}

	r.tb.Errorf("not ok - %s: %s", outcome.Description, outcome.Diagnostic)
}
