package report

import "github.com/robgonnella/netassert/internal/logger"

// LogReporter reports outcomes as structured log lines
type LogReporter struct {
	log logger.Logger
}

// NewLogReporter returns a new instance of LogReporter
func NewLogReporter() *LogReporter {
	return &LogReporter{log: logger.New()}
}

// Report logs passed outcomes at info and failed ones at error
func (r *LogReporter) Report(outcome Outcome) {
	if outcome.Passed {
		r.log.Info().Str("description", outcome.Description).Msg("ok")
		return
	}

	r.log.Error().
		Str("description", outcome.Description).
		Str("diagnostic", outcome.Diagnostic).
		Msg("not ok")
}
