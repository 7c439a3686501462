package rocket

// ThrustSample is one point of a motor's thrust curve.
type ThrustSample struct {
	Time   float64 `json:"time" yaml:"time"`     // s since ignition
	Thrust float64 `json:"thrust" yaml:"thrust"` // N
}

// Motor is an immutable catalog record. Sample times are strictly
// increasing, the first sample sits at t=0 and the last at t=BurnTime
// with zero thrust. Nothing mutates a Motor at runtime; sessions copy it
// on selection.
type Motor struct {
	Designation    string         `json:"designation" yaml:"designation"`
	TotalImpulse   float64        `json:"totalImpulse" yaml:"total_impulse"` // N·s
	BurnTime       float64        `json:"burnTime" yaml:"burn_time"`         // s
	AverageThrust  float64        `json:"averageThrust" yaml:"average_thrust"`
	MaxThrust      float64        `json:"maxThrust" yaml:"max_thrust"`
	PropellantMass float64        `json:"propellantMass" yaml:"propellant_mass"` // kg
	TotalMass      float64        `json:"totalMass" yaml:"total_mass"`           // kg
	ThrustCurve    []ThrustSample `json:"thrustCurve" yaml:"thrust_curve"`
	EjectionDelay  float64        `json:"ejectionDelay" yaml:"ejection_delay"` // s
}

// ThrustAt returns the thrust at time t by linear interpolation between
// the bracketing curve samples. Past burnout (t >= BurnTime) thrust is
// exactly zero. A motor without curve samples falls back to its average
// thrust over the burn, which preserves total impulse.
func (m Motor) ThrustAt(t float64) float64 {
	if t < 0 || m.BurnTime <= 0 || t >= m.BurnTime {
		return 0
	}
	if len(m.ThrustCurve) == 0 {
		return m.AverageThrust
	}
	if t <= m.ThrustCurve[0].Time {
		return m.ThrustCurve[0].Thrust
	}
	for i := 1; i < len(m.ThrustCurve); i++ {
		s := m.ThrustCurve[i]
		if t <= s.Time {
			prev := m.ThrustCurve[i-1]
			span := s.Time - prev.Time
			if span <= 0 {
				return s.Thrust
			}
			f := (t - prev.Time) / span
			return prev.Thrust + f*(s.Thrust-prev.Thrust)
		}
	}
	return 0
}

// BurnedPropellant returns the propellant mass consumed at the given
// burn fraction, scaling linearly from zero at ignition to the full
// load at burnout. The fraction is clamped to [0, 1].
func (m Motor) BurnedPropellant(burnFraction float64) float64 {
	if burnFraction < 0 {
		burnFraction = 0
	}
	if burnFraction > 1 {
		burnFraction = 1
	}
	return m.PropellantMass * burnFraction
}

// CurrentMass returns the motor's mass at the given burn fraction.
func (m Motor) CurrentMass(burnFraction float64) float64 {
	return m.TotalMass - m.BurnedPropellant(burnFraction)
}

// Catalog is an immutable designation-to-motor lookup table. It is built
// once at startup and passed explicitly to whoever needs it, so tests can
// substitute fixtures.
type Catalog map[string]Motor

// Lookup returns the motor for a designation.
func (c Catalog) Lookup(designation string) (Motor, bool) {
	m, ok := c[designation]
	return m, ok
}
