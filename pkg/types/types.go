package types

import (
	"github.com/fatih/color"
)

type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var (
	SeverityNames = []string{
		"UNKNOWN",
		"LOW",
		"MEDIUM",
		"HIGH",
		"CRITICAL",
	}
	SeverityColor = []func(a ...interface{}) string{
		color.New(color.FgCyan).SprintFunc(),
		color.New(color.FgBlue).SprintFunc(),
		color.New(color.FgYellow).SprintFunc(),
		color.New(color.FgHiRed).SprintFunc(),
		color.New(color.FgRed).SprintFunc(),
	}
)

// Colorize renders label with the color of s. The label is kept as is so that
// upstream names such as MODERATE survive.
func (s Severity) Colorize(label string) string {
	if int(s) < 0 || int(s) >= len(SeverityColor) {
		return SeverityColor[SeverityUnknown](label)
	}
	return SeverityColor[s](label)
}

func (s Severity) String() string {
	return SeverityNames[s]
}

// Advisory is one published security advisory.
type Advisory struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	Severity string `json:"severity"`

	// CVSSVector is nil when the upstream source has no vector for the advisory.
	CVSSVector *string `json:"cvssVector"`
}

// AdvisoryBatch keeps the upstream response order.
type AdvisoryBatch []Advisory
