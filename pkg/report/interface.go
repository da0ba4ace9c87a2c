package report

//go:generate mockgen -destination=../../internal/mock/report/mock_report.go -package=mock_report . Reporter

// Outcome represents the pass/fail record of a single assertion
type Outcome struct {
	Passed      bool
	Description string
	// Diagnostic only meaningful when Passed is false
	Diagnostic string
}

// Reporter interface for consuming assertion outcomes
type Reporter interface {
	Report(outcome Outcome)
}
