package sim

// Zone is the environmental regime at an altitude. Transitions between zones
// are surfaced as tick events; rendering any message is a presentation job.
type Zone int

const (
	ZoneRainforest Zone = iota
	ZoneMoorland
	ZoneAlpineDesert
	ZoneSummit
)

func (z Zone) String() string {
	switch z {
	case ZoneRainforest:
		return "Rainforest"
	case ZoneMoorland:
		return "Moorland"
	case ZoneAlpineDesert:
		return "Alpine Desert"
	case ZoneSummit:
		return "Summit"
	default:
		return "Unknown"
	}
}

func ZoneForAltitude(altitude float64) Zone {
	switch {
	case altitude < 2000:
		return ZoneRainforest
	case altitude < 3000:
		return ZoneMoorland
	case altitude < 5000:
		return ZoneAlpineDesert
	default:
		return ZoneSummit
	}
}

// ZoneTransition records a zone boundary crossed during a tick.
type ZoneTransition struct {
	From     Zone    `json:"from"`
	To       Zone    `json:"to"`
	Altitude float64 `json:"altitude"`
}

func (t ZoneTransition) Severity() Severity {
	switch {
	case t.To == ZoneSummit:
		return SeverityExtreme
	case t.To == ZoneAlpineDesert:
		return SeverityHigh
	case t.To == ZoneMoorland && t.From == ZoneRainforest:
		return SeverityModerate
	default:
		return SeverityLow
	}
}
