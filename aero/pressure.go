// Package aero estimates the rocket's aerodynamic centre and evaluates
// passive stability from component geometry.
package aero

import (
	"math"

	"github.com/Harkirat-Singh4/vyomlab/rocket"
)

// Normal-force weighting constants for the reduced Barrowman estimate.
// Body tubes contribute almost nothing at small angles of attack, so
// their planform area enters at a small fixed fraction.
const (
	bodyTubePlanformFraction   = 0.05
	transitionPlanformFraction = 0.5
)

// CenterOfPressure estimates the axial position (mm) where the net
// aerodynamic force acts. Each component contributes a characteristic
// position and a weight proportional to its normal-force derivative;
// the CP is the weighted average. This is a reduced form of the
// Barrowman method, without interference or body-lift terms, and is
// deliberately approximate.
//
// When no component produces a usable weight the rocket's geometric
// midpoint is returned, so degenerate designs still get a finite CP.
func CenterOfPressure(components []rocket.Component) float64 {
	var moment, total float64
	for _, c := range components {
		pos, w := normalForceContribution(c)
		if w <= 0 {
			continue
		}
		moment += pos * w
		total += w
	}
	if total <= 0 {
		return rocket.OverallLength(components) / 2
	}
	return moment / total
}

func normalForceContribution(c rocket.Component) (pos, weight float64) {
	if c.Width <= 0 || c.Length <= 0 {
		return 0, 0
	}
	switch c.Type {
	case rocket.NoseCone:
		// Conical nose: pressure centre at 2/3 of its length.
		r := c.Width / 2
		return c.Position + c.Length*2/3, 2 * math.Pi * r * r
	case rocket.BodyTube:
		return c.Midpoint(), bodyTubePlanformFraction * c.Width * c.Length
	case rocket.Fins:
		if c.FinCount <= 0 {
			return 0, 0
		}
		// Triangular planform: root chord = Length, span = Width.
		finArea := c.Length * c.Width / 2
		aspectRatio := c.Length * c.Length / finArea
		weight = (1 + 1/aspectRatio) * finArea * float64(c.FinCount)
		// Aft-biased: fin loading concentrates near the root leading third.
		return c.Position + c.Length/3, weight
	case rocket.Transition:
		return c.Midpoint(), transitionPlanformFraction * c.Width * c.Length
	default:
		// Engines and parachutes are internal; no aerodynamic surface.
		return 0, 0
	}
}

// DerivePhysics computes the full derived snapshot for a design. It is a
// pure function over the component list and the optionally selected
// motor; both the stability evaluator and the flight integrator consume
// its result without ever calling each other.
func DerivePhysics(components []rocket.Component, motor *rocket.Motor) rocket.RocketPhysics {
	total := rocket.TotalMass(components, motor, 0)
	dry := rocket.DryMass(components, motor)
	propellant := 0.0
	if motor != nil {
		propellant = motor.PropellantMass
	}

	cg := rocket.CenterOfGravity(components, motor, 0)
	cp := CenterOfPressure(components)
	length := rocket.OverallLength(components)
	diameter := rocket.OverallDiameter(components)

	margin := 0.0
	refArea := 0.0
	if diameter > 0 {
		margin = (cp - cg) / diameter
		r := diameter / 2000 // mm diameter to m radius
		refArea = math.Pi * r * r
	}

	return rocket.RocketPhysics{
		TotalMass:        total,
		DryMass:          dry,
		PropellantMass:   propellant,
		CenterOfGravity:  cg,
		CenterOfPressure: cp,
		StabilityMargin:  margin,
		DragCoefficient:  rocket.AggregateDragCoefficient(components),
		ReferenceArea:    refArea,
		Length:           length,
		Diameter:         diameter,
		MotorPosition:    rocket.MotorPosition(components),
	}
}
