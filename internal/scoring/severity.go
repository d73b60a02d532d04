// Package scoring holds the types shared by every scorer: the severity
// scale for weaknesses and fixes, and the category-score shape used by
// multi-category scorers.
package scoring

import "encoding/json"

// Severity ranks how badly an issue hurts a resume. Higher values sort
// first in weakness and fix lists.
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityLow:      "low",
	SeverityMedium:   "medium",
	SeverityHigh:     "high",
	SeverityCritical: "critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "low"
}

// Weight returns the numeric rank used when sorting by severity.
func (s Severity) Weight() int { return int(s) }

// ParseSeverity maps a severity name back to its value. Unknown names
// parse as low.
func ParseSeverity(name string) Severity {
	switch name {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// MarshalJSON encodes the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a lowercase severity name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s = ParseSeverity(name)
	return nil
}
