package report

// Collector records every outcome in the order reported
type Collector struct {
	Outcomes []Outcome
}

// NewCollector returns a new empty Collector
func NewCollector() *Collector {
	return &Collector{Outcomes: []Outcome{}}
}

func (c *Collector) Report(outcome Outcome) {
	c.Outcomes = append(c.Outcomes, outcome)
}

// Last returns the most recent outcome and false if none were reported
func (c *Collector) Last() (Outcome, bool) {
	if len(c.Outcomes) == 0 {
		return Outcome{}, false
	}

	return c.Outcomes[len(c.Outcomes)-1], true
}

// Multi fans each outcome out to all of its reporters
type Multi []Reporter

func (m Multi) Report(outcome Outcome) {
	for _, r := range m {
		r.Report(outcome)
	}
}
