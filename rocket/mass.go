package rocket

// Mass and geometry aggregation. Every function here degrades gracefully:
// an empty component list yields zeros, a zero total mass yields a zero
// CG, and negative dimensions simply contribute nothing. None of these
// are errors; the stability evaluator surfaces them as advisories.

// TotalMass sums the component masses plus the motor's remaining mass at
// the given burn fraction. An empty, massless rocket weighs zero; callers
// must treat that as a degenerate design, not a crash.
func TotalMass(components []Component, motor *Motor, burnFraction float64) float64 {
	total := 0.0
	for _, c := range components {
		if c.Mass > 0 {
			total += c.Mass
		}
	}
	if motor != nil {
		total += motor.CurrentMass(burnFraction)
	}
	return total
}

// DryMass is the total mass with all propellant burned.
func DryMass(components []Component, motor *Motor) float64 {
	return TotalMass(components, motor, 1)
}

// MotorPosition returns the axial position (mm) where the motor's mass
// acts: the midpoint of the first engine component when one exists,
// otherwise the aft end of the rocket. Model rockets mount the motor in
// the tail; an engine placeholder component overrides that.
func MotorPosition(components []Component) float64 {
	for _, c := range components {
		if c.Type == Engine {
			return c.Midpoint()
		}
	}
	return OverallLength(components)
}

// CenterOfGravity is the mass-weighted average of each component's axial
// midpoint, with the motor's current mass acting at MotorPosition.
// Returns 0 when the total mass is zero.
func CenterOfGravity(components []Component, motor *Motor, burnFraction float64) float64 {
	var moment, total float64
	for _, c := range components {
		if c.Mass > 0 {
			moment += c.Mass * c.Midpoint()
			total += c.Mass
		}
	}
	if motor != nil {
		m := motor.CurrentMass(burnFraction)
		if m > 0 {
			moment += m * MotorPosition(components)
			total += m
		}
	}
	if total <= 0 {
		return 0
	}
	return moment / total
}

// OverallLength is the maximum axial extent (position + length) in mm.
func OverallLength(components []Component) float64 {
	max := 0.0
	for _, c := range components {
		if end := c.Position + c.Length; end > max {
			max = end
		}
	}
	return max
}

// OverallDiameter is the maximum width across all components in mm.
// Fin spans count: a finned rocket is as wide as its fins.
func OverallDiameter(components []Component) float64 {
	max := 0.0
	for _, c := range components {
		if c.Width > max {
			max = c.Width
		}
	}
	return max
}

// AggregateDragCoefficient sums the per-component drag coefficients.
// A zero sum means no component carries drag data; the flight integrator
// substitutes a Mach-keyed default in that case.
func AggregateDragCoefficient(components []Component) float64 {
	total := 0.0
	for _, c := range components {
		if c.DragCoefficient > 0 {
			total += c.DragCoefficient
		}
	}
	return total
}
