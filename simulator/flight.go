package simulator

import (
	"math"

	"github.com/Harkirat-Singh4/vyomlab/rocket"
	"github.com/Harkirat-Singh4/vyomlab/utils"
)

// LaunchConditions describes the pad environment for one run. Only the
// pad altitude, ground temperature and ground pressure feed the 1-D
// physics; wind, angles and rail length ride along for the launch-setup
// surface. The record is immutable for the duration of a run.
type LaunchConditions struct {
	PadAltitude       float64 `json:"padAltitude"`       // m above sea level
	GroundTemperature float64 `json:"groundTemperature"` // °C
	GroundPressure    float64 `json:"groundPressure"`    // Pa
	Humidity          float64 `json:"humidity"`          // %
	WindSpeed         float64 `json:"windSpeed"`         // m/s
	WindDirection     float64 `json:"windDirection"`     // deg
	LaunchAngle       float64 `json:"launchAngle"`       // deg from horizontal
	LaunchAzimuth     float64 `json:"launchAzimuth"`     // deg
	GuideRailLength   float64 `json:"guideRailLength"`   // m
}

// DefaultLaunchConditions returns a calm sea-level pad.
func DefaultLaunchConditions() LaunchConditions {
	return LaunchConditions{
		GroundTemperature: 20,
		GroundPressure:    seaLevelPressure,
		LaunchAngle:       90,
		GuideRailLength:   1.0,
	}
}

// FlightPhase tags a point of the trajectory. It is always derived from
// observable state, never stored, so replayed samples cannot drift from
// the trajectory that produced them.
type FlightPhase string

const (
	PhasePoweredAscent FlightPhase = "powered_ascent"
	PhaseCoast         FlightPhase = "coast"
	PhaseDescent       FlightPhase = "descent"
	PhaseLanded        FlightPhase = "landed"
)

// PhaseOf derives the flight phase from time, burn time, velocity and
// altitude. burnTime 0 means no motor.
func PhaseOf(time, burnTime, velocity, altitude float64) FlightPhase {
	switch {
	case time > 0 && altitude <= 0 && math.Abs(velocity) < touchdownSpeed:
		return PhaseLanded
	case burnTime > 0 && time < burnTime:
		return PhasePoweredAscent
	case velocity > 0:
		return PhaseCoast
	default:
		return PhaseDescent
	}
}

// FlightStateSample is one point of the trajectory. A completed run's
// sample series is a value: ordered, append-only while being produced,
// and immutable once returned.
type FlightStateSample struct {
	Time            float64     `json:"time"`         // s
	Altitude        float64     `json:"altitude"`     // m above ground
	Velocity        float64     `json:"velocity"`     // m/s, positive up
	Acceleration    float64     `json:"acceleration"` // m/s²
	Mass            float64     `json:"mass"`         // kg
	Thrust          float64     `json:"thrust"`       // N
	Drag            float64     `json:"drag"`         // N, magnitude
	MachNumber      float64     `json:"machNumber"`
	StabilityMargin float64     `json:"stabilityMargin"` // calibers
	Position        float64     `json:"position"`        // m, cumulative path length
	AirDensity      float64     `json:"airDensity"`      // kg/m³
	Phase           FlightPhase `json:"phase"`
}

// flightState is the mutable integration state, private to one run.
type flightState struct {
	time     float64
	altitude float64
	velocity float64
	mass     float64
	position float64
	leftPad  bool
}

// step advances the state by dt using semi-implicit Euler and returns
// the sample describing the new state. Drag always opposes the velocity;
// it can never push the rocket along. Mass depletes linearly over the
// burn and is floored at the dry mass. Altitude is clamped at the
// ground: before liftoff the pad holds the rocket, after liftoff ground
// contact absorbs the impact.
func step(st *flightState, phys rocket.RocketPhysics, motor *rocket.Motor, lc LaunchConditions, dt float64) FlightStateSample {
	thrust := 0.0
	burnTime := 0.0
	if motor != nil {
		thrust = motor.ThrustAt(st.time)
		burnTime = motor.BurnTime
	}

	density := AirDensity(st.altitude, lc.GroundTemperature, lc.GroundPressure)
	speedOfSound := SpeedOfSound(st.altitude, lc.GroundTemperature)
	mach := 0.0
	if speedOfSound > 0 {
		mach = math.Abs(st.velocity) / speedOfSound
	}

	dragCoefficient := phys.DragCoefficient
	if dragCoefficient <= 0 {
		dragCoefficient = utils.CdByMach(mach)
	}
	drag := 0.5 * density * st.velocity * st.velocity * dragCoefficient * phys.ReferenceArea

	gravity := GravityAt(lc.PadAltitude + st.altitude)
	acceleration := -gravity
	if st.mass > 0 {
		acceleration = thrust/st.mass - gravity
		if st.velocity > 0 {
			acceleration -= drag / st.mass
		} else if st.velocity < 0 {
			acceleration += drag / st.mass
		}
	}

	st.velocity += acceleration * dt
	st.altitude += st.velocity * dt
	st.position += math.Abs(st.velocity) * dt

	if st.altitude <= 0 {
		st.altitude = 0
		if st.velocity < 0 {
			// Pad or ground contact: vertical motion stops here.
			st.velocity = 0
		}
	}
	if st.altitude > 0 {
		st.leftPad = true
	}

	if motor != nil && burnTime > 0 && st.time <= burnTime {
		st.mass -= motor.PropellantMass / burnTime * dt
		if st.mass < phys.DryMass {
			st.mass = phys.DryMass
		}
	}

	st.time += dt

	return FlightStateSample{
		Time:            st.time,
		Altitude:        st.altitude,
		Velocity:        st.velocity,
		Acceleration:    acceleration,
		Mass:            st.mass,
		Thrust:          thrust,
		Drag:            math.Abs(drag),
		MachNumber:      mach,
		StabilityMargin: stabilityMarginAt(phys, motor, st.time),
		Position:        st.position,
		AirDensity:      density,
		Phase:           PhaseOf(st.time, burnTime, st.velocity, st.altitude),
	}
}

// stabilityMarginAt recomputes the static margin for a partially burned
// motor: burned propellant leaves from the motor position, shifting the
// CG forward and growing the margin as the flight proceeds. O(1) from
// the derived snapshot, no component walk needed.
func stabilityMarginAt(phys rocket.RocketPhysics, motor *rocket.Motor, t float64) float64 {
	if phys.Diameter <= 0 {
		return 0
	}
	if motor == nil || motor.BurnTime <= 0 {
		return phys.StabilityMargin
	}
	burned := motor.BurnedPropellant(t / motor.BurnTime)
	if burned <= 0 {
		return phys.StabilityMargin
	}
	remaining := phys.TotalMass - burned
	if remaining <= 0 {
		return phys.StabilityMargin
	}
	cg := (phys.TotalMass*phys.CenterOfGravity - burned*phys.MotorPosition) / remaining
	return (phys.CenterOfPressure - cg) / phys.Diameter
}
