package aero

import (
	"fmt"

	"github.com/Harkirat-Singh4/vyomlab/rocket"
	"github.com/Harkirat-Singh4/vyomlab/utils"
)

// Stability band thresholds in calibers and the minimum thrust-to-weight
// ratio for a safe rail exit. Fixed design constants, not tunable inputs.
const (
	minStableMargin = 1.0
	maxStableMargin = 3.0
	minLiftoffTWR   = 5.0

	surfaceGravity = 9.81
)

// Classification is the qualitative stability verdict.
type Classification string

const (
	Unstable   Classification = "unstable"
	Stable     Classification = "stable"
	Overstable Classification = "overstable"
	Undefined  Classification = "undefined" // empty design
)

// Advisory is one structured warning or recommendation for the design
// surface. Codes are stable identifiers; messages are display text.
type Advisory struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StabilityMetrics is the full static-stability report for a design.
// Generation is deterministic: identical components and motor always
// yield an identical report, advisories included, in the same order.
type StabilityMetrics struct {
	StaticMargin     float64        `json:"staticMargin"` // calibers
	CenterOfGravity  float64        `json:"centerOfGravity"`
	CenterOfPressure float64        `json:"centerOfPressure"`
	FinEffectiveness float64        `json:"finEffectiveness"` // 0..100
	OverallRating    float64        `json:"overallRating"`    // 0..100
	Classification   Classification `json:"classification"`
	Warnings         []Advisory     `json:"warnings"`
	Recommendations  []Advisory     `json:"recommendations"`
}

// CalculateStabilityMetrics evaluates a design's passive stability.
// It must stay cheap (a single pass over the components) because the
// design surface recomputes it on every edit.
func CalculateStabilityMetrics(components []rocket.Component, motor *rocket.Motor) StabilityMetrics {
	if len(components) == 0 {
		return StabilityMetrics{
			Classification: Undefined,
			Warnings: []Advisory{{
				Code:    "no-components",
				Message: "The rocket has no components yet. Add a nose cone, body tube and fins to get started.",
			}},
		}
	}

	phys := DerivePhysics(components, motor)
	m := StabilityMetrics{
		StaticMargin:     phys.StabilityMargin,
		CenterOfGravity:  phys.CenterOfGravity,
		CenterOfPressure: phys.CenterOfPressure,
		FinEffectiveness: finEffectiveness(components),
	}

	switch {
	case m.StaticMargin < minStableMargin:
		m.Classification = Unstable
	case m.StaticMargin > maxStableMargin:
		m.Classification = Overstable
	default:
		m.Classification = Stable
	}

	m.Warnings, m.Recommendations = advisories(components, motor, phys, m)
	m.OverallRating = overallRating(components, m)

	if len(m.Warnings) == 0 {
		m.Recommendations = append(m.Recommendations, Advisory{
			Code:    "all-clear",
			Message: "All stability checks pass. This design is ready to fly.",
		})
	}
	return m
}

// finEffectiveness scores the fin configuration in [0, 100]: more fins
// and more span relative to rocket length help, saturating at 100.
func finEffectiveness(components []rocket.Component) float64 {
	length := rocket.OverallLength(components)
	finCount := 0
	span := 0.0
	for _, c := range components {
		if c.Type != rocket.Fins || c.FinCount <= 0 || c.Width <= 0 {
			continue
		}
		finCount += c.FinCount
		if c.Width > span {
			span = c.Width
		}
	}
	if finCount == 0 || span <= 0 || length <= 0 {
		return 0
	}
	if finCount > 6 {
		finCount = 6
	}
	score := 12.5*float64(finCount) + 300*span/length
	if score > 100 {
		score = 100
	}
	return score
}

// overallRating composes a 0..100 score: margin inside the stable band
// earns a bonus, distance outside it costs proportionally, fins and a
// recovery device add the rest.
func overallRating(components []rocket.Component, m StabilityMetrics) float64 {
	rating := 40.0
	switch {
	case m.StaticMargin < minStableMargin:
		rating -= 12.5 * (minStableMargin - m.StaticMargin)
	case m.StaticMargin > maxStableMargin:
		rating -= 12.5 * (m.StaticMargin - maxStableMargin)
	default:
		rating += 30
	}
	rating += 0.2 * m.FinEffectiveness
	if rocket.HasType(components, rocket.Parachute) {
		rating += 10
	}
	if rating < 0 {
		rating = 0
	}
	if rating > 100 {
		rating = 100
	}
	return rating
}

// advisories emits the warning and recommendation lists in a fixed order
// so repeated evaluations of the same design compare equal.
func advisories(components []rocket.Component, motor *rocket.Motor, phys rocket.RocketPhysics, m StabilityMetrics) (warnings, recs []Advisory) {
	if m.Classification == Unstable {
		warnings = append(warnings, Advisory{
			Code:    "unstable-margin",
			Message: fmt.Sprintf("Static margin is %.2f calibers; below %.0f the rocket will tumble.", m.StaticMargin, minStableMargin),
		})
		recs = append(recs, Advisory{
			Code:    "move-fins-aft",
			Message: "Move the fins aft or add nose weight to push the CP behind the CG.",
		})
	}
	if m.Classification == Overstable {
		warnings = append(warnings, Advisory{
			Code:    "overstable-margin",
			Message: fmt.Sprintf("Static margin is %.2f calibers; above %.0f the rocket risks weathercocking into the wind.", m.StaticMargin, maxStableMargin),
		})
		recs = append(recs, Advisory{
			Code:    "reduce-fin-area",
			Message: "Reduce fin span or move mass aft to bring the margin under 3 calibers.",
		})
	}

	invalid := 0
	for _, c := range components {
		switch c.Type {
		case rocket.NoseCone, rocket.BodyTube, rocket.Fins, rocket.Transition:
			if c.Width <= 0 || c.Length <= 0 || c.Mass <= 0 {
				invalid++
			}
		default:
			if c.Mass <= 0 {
				invalid++
			}
		}
	}
	if invalid > 0 {
		warnings = append(warnings, Advisory{
			Code:    "invalid-component",
			Message: fmt.Sprintf("%d component(s) have non-positive dimensions or mass and are ignored by the physics.", invalid),
		})
		recs = append(recs, Advisory{
			Code:    "fix-dimensions",
			Message: "Give every component a positive width, length and mass.",
		})
	}

	if !rocket.HasType(components, rocket.NoseCone) {
		warnings = append(warnings, Advisory{
			Code:    "no-nosecone",
			Message: "No nose cone: the airframe is open at the front.",
		})
		recs = append(recs, Advisory{
			Code:    "add-nosecone",
			Message: "Add a nose cone matched to the body tube diameter.",
		})
	}

	finCount := 0
	for _, c := range components {
		if c.Type == rocket.Fins {
			finCount += c.FinCount
		}
	}
	switch {
	case finCount == 0:
		warnings = append(warnings, Advisory{
			Code:    "no-fins",
			Message: "No fins: the rocket has no passive stabilisation.",
		})
		recs = append(recs, Advisory{
			Code:    "add-fins",
			Message: "Add 3 or 4 fins near the aft end of the body tube.",
		})
	case finCount < 3:
		warnings = append(warnings, Advisory{
			Code:    "few-fins",
			Message: fmt.Sprintf("Only %d fin(s): at least 3 are needed for symmetric stabilisation.", finCount),
		})
		recs = append(recs, Advisory{
			Code:    "add-fins",
			Message: "Increase the fin count to 3 or 4.",
		})
	}

	if !rocket.HasType(components, rocket.Parachute) {
		warnings = append(warnings, Advisory{
			Code:    "no-recovery",
			Message: "No recovery device: the rocket will return ballistically.",
		})
		recs = append(recs, Advisory{
			Code:    "add-recovery",
			Message: "Add a parachute or streamer sized for the rocket's mass.",
		})
	}

	if motor == nil && !rocket.HasType(components, rocket.Engine) {
		warnings = append(warnings, Advisory{
			Code:    "no-propulsion",
			Message: "No motor selected and no engine mount fitted.",
		})
		recs = append(recs, Advisory{
			Code:    "select-motor",
			Message: "Select a motor from the catalog to enable flight simulation.",
		})
	}

	if motor != nil && phys.TotalMass > 0 {
		twr := utils.CalculateTWR(motor.AverageThrust, phys.TotalMass, surfaceGravity)
		if twr > 0 && twr < minLiftoffTWR {
			warnings = append(warnings, Advisory{
				Code:    "low-thrust",
				Message: fmt.Sprintf("Thrust-to-weight ratio is %.1f; below %.0f the rocket may leave the guide rail too slowly.", twr, minLiftoffTWR),
			})
			recs = append(recs, Advisory{
				Code:    "bigger-motor",
				Message: "Choose a higher-thrust motor or reduce the rocket's mass.",
			})
		}
	}

	return warnings, recs
}
