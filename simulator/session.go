package simulator

import (
	"sync"

	"github.com/Harkirat-Singh4/vyomlab/aero"
	"github.com/Harkirat-Singh4/vyomlab/rocket"
)

// CurrentSession is the design session the REST surface operates on.
var CurrentSession *Session

// SetCurrentSession installs the active session.
func SetCurrentSession(s *Session) {
	CurrentSession = s
}

// Session owns the mutable design state: the component list, the
// selected motor, the launch conditions, and the output of the most
// recent run. The physics core stays pure; Session is the only place
// with locking, and it hands the core immutable snapshots.
type Session struct {
	mu         sync.RWMutex
	components []rocket.Component
	motor      *rocket.Motor
	conditions LaunchConditions
	lastRun    []FlightStateSample
	maxTime    float64
	timeStep   float64
}

// NewSession creates an empty design session with the given driver
// parameters (zeros fall back to the package defaults).
func NewSession(maxTime, timeStep float64) *Session {
	if maxTime <= 0 {
		maxTime = DefaultMaxTime
	}
	if timeStep <= 0 {
		timeStep = DefaultTimeStep
	}
	return &Session{
		conditions: DefaultLaunchConditions(),
		maxTime:    maxTime,
		timeStep:   timeStep,
	}
}

// Reset clears the design back to an empty pad.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = nil
	s.motor = nil
	s.conditions = DefaultLaunchConditions()
	s.lastRun = nil
}

// Components returns a copy of the component list.
func (s *Session) Components() []rocket.Component {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rocket.CloneComponents(s.components)
}

// SetComponents replaces the whole component list.
func (s *Session) SetComponents(components []rocket.Component) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = rocket.CloneComponents(components)
}

// AddComponent appends one component to the design.
func (s *Session) AddComponent(c rocket.Component) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = append(s.components, c)
}

// RemoveComponent deletes a component by id and reports whether it
// existed.
func (s *Session) RemoveComponent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.components {
		if c.ID == id {
			s.components = append(s.components[:i], s.components[i+1:]...)
			return true
		}
	}
	return false
}

// SelectMotor attaches a copy of the catalog record to the design.
func (s *Session) SelectMotor(m rocket.Motor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	motor := m
	s.motor = &motor
}

// ClearMotor detaches the motor.
func (s *Session) ClearMotor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.motor = nil
}

// Motor returns a copy of the selected motor, or nil.
func (s *Session) Motor() *rocket.Motor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.motor == nil {
		return nil
	}
	motor := *s.motor
	return &motor
}

// SetConditions replaces the launch conditions.
func (s *Session) SetConditions(lc LaunchConditions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conditions = lc
}

// Conditions returns the launch conditions.
func (s *Session) Conditions() LaunchConditions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conditions
}

// Physics returns the derived snapshot for the current design.
func (s *Session) Physics() rocket.RocketPhysics {
	components, motor, _ := s.snapshot()
	return aero.DerivePhysics(components, motor)
}

// Stability evaluates the current design's static stability.
func (s *Session) Stability() aero.StabilityMetrics {
	components, motor, _ := s.snapshot()
	return aero.CalculateStabilityMetrics(components, motor)
}

// Run executes a full simulation over a snapshot of the current design
// and stores the sample series as the session's last run. The core runs
// without holding the lock, so design reads stay responsive during long
// runs.
func (s *Session) Run() []FlightStateSample {
	components, motor, lc := s.snapshot()
	s.mu.RLock()
	maxTime, timeStep := s.maxTime, s.timeStep
	s.mu.RUnlock()

	phys := aero.DerivePhysics(components, motor)
	samples := RunFullSimulation(phys, motor, lc, maxTime, timeStep)

	s.mu.Lock()
	s.lastRun = samples
	s.mu.Unlock()
	return samples
}

// LastRun returns the most recent run's sample series. Starting a new
// run discards the previous one; run history is a consumer concern.
func (s *Session) LastRun() []FlightStateSample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// snapshot copies everything a run needs under one read lock, honouring
// the rule that inputs are immutable for the duration of a run.
func (s *Session) snapshot() ([]rocket.Component, *rocket.Motor, LaunchConditions) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var motor *rocket.Motor
	if s.motor != nil {
		m := *s.motor
		motor = &m
	}
	return rocket.CloneComponents(s.components), motor, s.conditions
}

// SessionData is the JSON snapshot of the design state served to the
// design surface.
type SessionData struct {
	Components []rocket.Component   `json:"components"`
	Motor      *rocket.Motor        `json:"motor,omitempty"`
	Conditions LaunchConditions     `json:"conditions"`
	Physics    rocket.RocketPhysics `json:"physics"`
}

// Snapshot assembles the full design-state record.
func (s *Session) Snapshot() SessionData {
	components, motor, lc := s.snapshot()
	return SessionData{
		Components: components,
		Motor:      motor,
		Conditions: lc,
		Physics:    aero.DerivePhysics(components, motor),
	}
}
