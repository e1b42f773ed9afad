package sim

// Severity grades both weather safety risk and active risk factors.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityModerate
	SeverityHigh
	SeverityExtreme
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityModerate:
		return "Moderate"
	case SeverityHigh:
		return "High"
	case SeverityExtreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}
