package sim

import (
	"time"
)

// Engine owns the per-expedition simulation bundle: expedition progress,
// physiology, acclimatization, equipment and the last resolved weather.
// It is a single-writer state machine; callers serialize access.
type Engine struct {
	seed      int64
	now       func() time.Time
	weatherFn func(altitude float64, daySeed int64) WeatherCondition

	mountain   Mountain
	expedition *ExpeditionProgress

	health    HealthStatus
	acclim    AcclimatizationStatus
	equipment []EquipmentItem
	weather   WeatherCondition

	risks        []RiskFactor
	tips         []ClimbingTip
	lastProgress RealisticProgress

	restsSinceTick    int
	hydratesSinceTick int
	descentsSinceTick int
}

type Option func(*Engine)

// WithSeed fixes the weather seed so runs replay deterministically.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithClock overrides the engine clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithWeatherFunc overrides the weather generator.
func WithWeatherFunc(fn func(altitude float64, daySeed int64) WeatherCondition) Option {
	return func(e *Engine) { e.weatherFn = fn }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		seed:      time.Now().UnixNano(),
		now:       time.Now,
		weatherFn: CurrentWeather,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins an expedition on the given mountain. It fails when the
// mountain is misconfigured or an expedition is already in progress.
func (e *Engine) Start(mountain Mountain) error {
	if err := mountain.Validate(); err != nil {
		return err
	}
	if e.expedition != nil && !e.expedition.IsCompleted {
		return ErrAlreadyActive
	}

	now := e.now()
	exp := newExpeditionProgress(mountain, now)
	base := mountain.BaseCamp()

	e.mountain = mountain
	e.expedition = &exp
	e.health = NewHealthStatus()
	e.acclim = newAcclimatizationStatus(base.Altitude)
	e.equipment = DefaultEquipment()
	e.weather = e.weatherFn(base.Altitude, e.daySeed(now))
	e.resetMitigationWindow()
	e.evaluateState(base.Altitude)
	return nil
}

// Abandon drops the active expedition. Safe to call repeatedly.
func (e *Engine) Abandon() {
	e.expedition = nil
	e.risks = nil
	e.tips = nil
	e.lastProgress = RealisticProgress{}
}

// Reset zeroes the totals and returns the climber to base camp. Debug and
// test flows only, not a gameplay transition.
func (e *Engine) Reset() error {
	if e.expedition == nil {
		return ErrNoActiveExpedition
	}
	base := e.mountain.BaseCamp()
	e.expedition.TotalSteps = 0
	e.expedition.TotalElevation = 0
	e.expedition.CurrentCampID = base.ID
	e.expedition.IsCompleted = false
	e.expedition.CompletionDate = nil
	e.evaluateState(base.Altitude)
	return nil
}

// Expedition returns a copy of the active expedition state.
func (e *Engine) Expedition() (ExpeditionProgress, bool) {
	if e.expedition == nil {
		return ExpeditionProgress{}, false
	}
	out := *e.expedition
	out.DailyProgress = append([]DailyProgress(nil), e.expedition.DailyProgress...)
	return out, true
}

func (e *Engine) Mountain() Mountain { return e.mountain }

func (e *Engine) Health() HealthStatus { return e.health }

func (e *Engine) Acclimatization() AcclimatizationStatus { return e.acclim }

func (e *Engine) Equipment() []EquipmentItem {
	return append([]EquipmentItem(nil), e.equipment...)
}

func (e *Engine) Weather() WeatherCondition { return e.weather }

func (e *Engine) Risks() []RiskFactor {
	return append([]RiskFactor(nil), e.risks...)
}

func (e *Engine) Tips() []ClimbingTip {
	return append([]ClimbingTip(nil), e.tips...)
}

func (e *Engine) LastProgress() RealisticProgress { return e.lastProgress }

// CurrentCamp resolves the camp the climber currently occupies.
func (e *Engine) CurrentCamp() (Camp, bool) {
	if e.expedition == nil {
		return Camp{}, false
	}
	return e.mountain.CampByID(e.expedition.CurrentCampID)
}

// CurrentAltitude is the altitude of the occupied camp, or zero with no
// active expedition.
func (e *Engine) CurrentAltitude() float64 {
	camp, ok := e.CurrentCamp()
	if !ok {
		return 0
	}
	return camp.Altitude
}

// CurrentZone is the environmental zone at the occupied camp's altitude.
func (e *Engine) CurrentZone() Zone {
	return ZoneForAltitude(e.CurrentAltitude())
}

// SummitProgress reports completion toward the summit step threshold, 0-1.
func (e *Engine) SummitProgress() float64 {
	if e.expedition == nil {
		return 0
	}
	summit := e.mountain.SummitCamp()
	if summit.StepsRequired == 0 {
		return 1
	}
	return clampFloat(float64(e.expedition.TotalSteps)/float64(summit.StepsRequired), 0, 1)
}

// daySeed folds the engine seed and a calendar date into the weather seed.
func (e *Engine) daySeed(t time.Time) int64 {
	return int64(deterministicRoll(e.seed, t.Format("2006-01-02")))
}

func (e *Engine) resetMitigationWindow() {
	e.restsSinceTick = 0
	e.hydratesSinceTick = 0
	e.descentsSinceTick = 0
}

// evaluateState refreshes the ephemeral risk and tip lists for the current
// bundle at the given altitude.
func (e *Engine) evaluateState(altitude float64) {
	in := riskInput{
		Health:    e.health,
		Weather:   e.weather,
		Equipment: e.equipment,
		Acclim:    e.acclim,
		Altitude:  altitude,
	}
	e.risks = evaluateRisks(in)
	e.tips = climbingTips(in)
}

// Snapshot is the full serializable bundle handed to the persistence
// collaborator. Restore round-trips it.
type Snapshot struct {
	Seed            int64                 `json:"seed"`
	Mountain        Mountain              `json:"mountain"`
	Expedition      *ExpeditionProgress   `json:"expedition,omitempty"`
	Health          HealthStatus          `json:"health"`
	Acclimatization AcclimatizationStatus `json:"acclimatization"`
	Equipment       []EquipmentItem       `json:"equipment,omitempty"`
	Weather         WeatherCondition      `json:"weather"`
	Risks           []RiskFactor          `json:"risks,omitempty"`
	Tips            []ClimbingTip         `json:"tips,omitempty"`
	LastProgress    RealisticProgress     `json:"last_progress"`
}

func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Seed:            e.seed,
		Mountain:        e.mountain,
		Health:          e.health,
		Acclimatization: e.acclim,
		Equipment:       append([]EquipmentItem(nil), e.equipment...),
		Weather:         e.weather,
		Risks:           append([]RiskFactor(nil), e.risks...),
		Tips:            append([]ClimbingTip(nil), e.tips...),
		LastProgress:    e.lastProgress,
	}
	if exp, ok := e.Expedition(); ok {
		snap.Expedition = &exp
	}
	return snap
}

// Restore rebuilds an engine from a persisted snapshot.
func Restore(snap Snapshot, opts ...Option) (*Engine, error) {
	e := NewEngine(opts...)
	e.seed = snap.Seed

	if snap.Expedition != nil {
		if err := snap.Mountain.Validate(); err != nil {
			return nil, err
		}
		exp := *snap.Expedition
		e.expedition = &exp
	}
	e.mountain = snap.Mountain
	e.health = snap.Health
	e.acclim = snap.Acclimatization
	e.equipment = append([]EquipmentItem(nil), snap.Equipment...)
	e.weather = snap.Weather
	e.risks = append([]RiskFactor(nil), snap.Risks...)
	e.tips = append([]ClimbingTip(nil), snap.Tips...)
	e.lastProgress = snap.LastProgress
	return e, nil
}
