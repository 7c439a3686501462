// Package simulator integrates a rocket design's 1-D vertical flight:
// thrust from the motor's curve, quadratic drag against a lapse-rate
// atmosphere, inverse-square gravity, and linear propellant depletion.
// Everything here is pure computation over immutable input snapshots:
// no goroutines, no I/O, no randomness.
package simulator

import (
	"math"

	"github.com/Harkirat-Singh4/vyomlab/rocket"
)

// Default driver parameters and the touchdown velocity threshold.
const (
	DefaultMaxTime  = 60.0 // s
	DefaultTimeStep = 0.01 // s

	touchdownSpeed = 1.0 // m/s
	liftoffEpsilon = 1e-9
)

// RunFullSimulation advances the rocket from the pad until touchdown or
// the time horizon, whichever comes first, and returns the full ordered
// sample series. The series always starts at t=0, altitude 0, velocity 0
// and, on ground contact, ends with a forced altitude=0, velocity=0
// sample. The result is deterministic for fixed inputs and bounded by
// maxTime/timeStep iterations.
//
// A nil motor is valid: thrust stays zero for the whole run (ballistic
// drop test), which terminates immediately for a rocket starting at
// rest on the pad.
func RunFullSimulation(phys rocket.RocketPhysics, motor *rocket.Motor, lc LaunchConditions, maxTime, timeStep float64) []FlightStateSample {
	if maxTime <= 0 {
		maxTime = DefaultMaxTime
	}
	if timeStep <= 0 {
		timeStep = DefaultTimeStep
	}

	burnTime := 0.0
	if motor != nil {
		burnTime = motor.BurnTime
	}

	initial := FlightStateSample{
		Mass:            phys.TotalMass,
		StabilityMargin: phys.StabilityMargin,
		AirDensity:      AirDensity(0, lc.GroundTemperature, lc.GroundPressure),
		Phase:           PhaseOf(0, burnTime, 0, 0),
	}
	samples := []FlightStateSample{initial}

	// A massless design has no meaningful dynamics; report the pad state.
	if phys.TotalMass <= 0 {
		return samples
	}

	st := flightState{mass: phys.TotalMass}
	for st.time < maxTime {
		s := step(&st, phys, motor, lc, timeStep)
		samples = append(samples, s)

		if st.leftPad && st.altitude <= 0 && math.Abs(st.velocity) < touchdownSpeed {
			final := s
			final.Altitude = 0
			final.Velocity = 0
			final.Acceleration = 0
			final.Thrust = 0
			final.Drag = 0
			final.MachNumber = 0
			final.Phase = PhaseLanded
			samples = append(samples, final)
			break
		}
		// Still on the pad with no thrust left to come: the rocket
		// cannot fly, so there is no point stepping out the horizon.
		if !st.leftPad && st.velocity <= liftoffEpsilon && (motor == nil || st.time >= motor.BurnTime) {
			break
		}
	}
	return samples
}

// Summary condenses one run for the display surfaces.
type Summary struct {
	Apogee          float64 `json:"apogee"`     // m
	ApogeeTime      float64 `json:"apogeeTime"` // s
	MaxVelocity     float64 `json:"maxVelocity"`
	MaxAcceleration float64 `json:"maxAcceleration"`
	MaxMach         float64 `json:"maxMach"`
	FlightTime      float64 `json:"flightTime"` // s, to last sample
	Samples         int     `json:"samples"`
}

// Summarize scans a sample series for its headline numbers.
func Summarize(samples []FlightStateSample) Summary {
	var sum Summary
	sum.Samples = len(samples)
	for _, s := range samples {
		if s.Altitude > sum.Apogee {
			sum.Apogee = s.Altitude
			sum.ApogeeTime = s.Time
		}
		if s.Velocity > sum.MaxVelocity {
			sum.MaxVelocity = s.Velocity
		}
		if s.Acceleration > sum.MaxAcceleration {
			sum.MaxAcceleration = s.Acceleration
		}
		if s.MachNumber > sum.MaxMach {
			sum.MaxMach = s.MachNumber
		}
		sum.FlightTime = s.Time
	}
	return sum
}
