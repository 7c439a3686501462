package aero

import (
	"reflect"
	"testing"

	"github.com/Harkirat-Singh4/vyomlab/rocket"
)

func hasAdvisory(list []Advisory, code string) bool {
	for _, a := range list {
		if a.Code == code {
			return true
		}
	}
	return false
}

func TestStability_ReferenceScenarioIsStable(t *testing.T) {
	m := CalculateStabilityMetrics(referenceComponents(), referenceMotor())

	if m.Classification != Stable {
		t.Errorf("classification = %s, want stable (margin %v)", m.Classification, m.StaticMargin)
	}
	if m.StaticMargin < 1 || m.StaticMargin > 3 {
		t.Errorf("static margin = %v calibers, want within [1, 3]", m.StaticMargin)
	}
	if hasAdvisory(m.Warnings, "unstable-margin") || hasAdvisory(m.Warnings, "overstable-margin") {
		t.Errorf("stable design got a margin warning: %+v", m.Warnings)
	}
	if m.FinEffectiveness <= 0 {
		t.Errorf("fin effectiveness = %v, want > 0 for four large fins", m.FinEffectiveness)
	}
	if m.OverallRating <= 50 {
		t.Errorf("overall rating = %v, want > 50 for a sound design", m.OverallRating)
	}
}

func TestStability_Idempotent(t *testing.T) {
	a := CalculateStabilityMetrics(referenceComponents(), referenceMotor())
	b := CalculateStabilityMetrics(referenceComponents(), referenceMotor())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two evaluations of the same design differ:\n%+v\n%+v", a, b)
	}
}

func TestStability_MarginMonotonicInFinPosition(t *testing.T) {
	// Moving the fins aft must never decrease the static margin.
	prev := -1000.0
	for _, pos := range []float64{200, 240, 280, 320, 360} {
		components := referenceComponents()
		components[2].Position = pos
		m := CalculateStabilityMetrics(components, referenceMotor())
		if m.StaticMargin < prev {
			t.Fatalf("margin decreased from %v to %v when fins moved aft to %v", prev, m.StaticMargin, pos)
		}
		prev = m.StaticMargin
	}
}

func TestStability_EmptyRocketSingleStatus(t *testing.T) {
	m := CalculateStabilityMetrics(nil, nil)
	if m.Classification != Undefined {
		t.Errorf("classification = %s, want undefined", m.Classification)
	}
	if len(m.Warnings) != 1 || m.Warnings[0].Code != "no-components" {
		t.Errorf("empty rocket warnings = %+v, want the single no-components status", m.Warnings)
	}
	if m.OverallRating != 0 {
		t.Errorf("empty rocket rating = %v, want 0", m.OverallRating)
	}
}

func TestStability_EngineOnlyBoundary(t *testing.T) {
	components := []rocket.Component{
		{ID: "mount", Type: rocket.Engine, Position: 0, Length: 70, Width: 18, Mass: 0.02},
	}
	m := CalculateStabilityMetrics(components, nil)

	if m.FinEffectiveness != 0 {
		t.Errorf("fin effectiveness = %v, want 0 without fins", m.FinEffectiveness)
	}
	for _, code := range []string{"no-fins", "no-recovery", "no-nosecone"} {
		if !hasAdvisory(m.Warnings, code) {
			t.Errorf("missing %q warning; got %+v", code, m.Warnings)
		}
	}
	if len(m.Warnings) < 3 {
		t.Errorf("got %d warnings, want at least 3", len(m.Warnings))
	}
}

func TestStability_NoPropulsionWarning(t *testing.T) {
	components := []rocket.Component{
		{ID: "nose", Type: rocket.NoseCone, Position: 0, Length: 60, Width: 40, Mass: 0.05},
		{ID: "body", Type: rocket.BodyTube, Position: 60, Length: 300, Width: 40, Mass: 0.15},
	}
	m := CalculateStabilityMetrics(components, nil)
	if !hasAdvisory(m.Warnings, "no-propulsion") {
		t.Errorf("expected no-propulsion warning, got %+v", m.Warnings)
	}

	// An engine mount counts as propulsion even without a selected motor.
	withMount := append(components, rocket.Component{ID: "mount", Type: rocket.Engine, Position: 330, Length: 70, Width: 18, Mass: 0.005})
	m = CalculateStabilityMetrics(withMount, nil)
	if hasAdvisory(m.Warnings, "no-propulsion") {
		t.Errorf("engine mount present but no-propulsion still warned: %+v", m.Warnings)
	}
}

func TestStability_FewFinsWarning(t *testing.T) {
	components := referenceComponents()
	components[2].FinCount = 2
	m := CalculateStabilityMetrics(components, referenceMotor())
	if !hasAdvisory(m.Warnings, "few-fins") {
		t.Errorf("expected few-fins warning for 2 fins, got %+v", m.Warnings)
	}
}

func TestStability_UnstableWhenFinsForward(t *testing.T) {
	components := referenceComponents()
	components[2].Position = 80 // fins right behind the nose
	m := CalculateStabilityMetrics(components, referenceMotor())
	if m.Classification != Unstable {
		t.Errorf("classification = %s (margin %v), want unstable with forward fins", m.Classification, m.StaticMargin)
	}
	if !hasAdvisory(m.Warnings, "unstable-margin") || !hasAdvisory(m.Recommendations, "move-fins-aft") {
		t.Errorf("missing unstable advisories: %+v / %+v", m.Warnings, m.Recommendations)
	}
}

func TestStability_LowThrustWarning(t *testing.T) {
	// The reference motor lifts the 0.34 kg rocket at TWR ≈ 1.9.
	m := CalculateStabilityMetrics(referenceComponents(), referenceMotor())
	if !hasAdvisory(m.Warnings, "low-thrust") {
		t.Errorf("expected low-thrust warning at TWR < 5, got %+v", m.Warnings)
	}
}

func TestStability_AllClearAcknowledgment(t *testing.T) {
	// A light rocket with a punchy motor passes every check.
	components := []rocket.Component{
		{ID: "nose", Type: rocket.NoseCone, Position: 0, Length: 60, Width: 25, Mass: 0.04},
		{ID: "body", Type: rocket.BodyTube, Position: 60, Length: 250, Width: 25, Mass: 0.02},
		{ID: "fins", Type: rocket.Fins, Position: 270, Length: 40, Width: 40, Mass: 0.005, FinCount: 4},
		{ID: "chute", Type: rocket.Parachute, Position: 20, Length: 25, Mass: 0.005},
	}
	motor := &rocket.Motor{
		Designation: "D12-5", BurnTime: 1.65, AverageThrust: 12.1,
		PropellantMass: 0.0211, TotalMass: 0.0426, TotalImpulse: 20,
	}
	m := CalculateStabilityMetrics(components, motor)
	if len(m.Warnings) != 0 {
		t.Fatalf("expected a clean design, got warnings %+v (margin %v)", m.Warnings, m.StaticMargin)
	}
	if !hasAdvisory(m.Recommendations, "all-clear") {
		t.Errorf("clean design missing the all-clear acknowledgment: %+v", m.Recommendations)
	}
}

func TestStability_InvalidComponentWarning(t *testing.T) {
	components := append(referenceComponents(),
		rocket.Component{ID: "bad", Type: rocket.BodyTube, Position: 400, Length: -20, Width: 40, Mass: 0.01},
	)
	m := CalculateStabilityMetrics(components, referenceMotor())
	if !hasAdvisory(m.Warnings, "invalid-component") {
		t.Errorf("expected invalid-component warning, got %+v", m.Warnings)
	}

	if m := CalculateStabilityMetrics(referenceComponents(), referenceMotor()); hasAdvisory(m.Warnings, "invalid-component") {
		t.Errorf("valid design flagged invalid: %+v", m.Warnings)
	}
}

func TestFinEffectiveness_SaturatesAt100(t *testing.T) {
	components := []rocket.Component{
		{ID: "body", Type: rocket.BodyTube, Position: 0, Length: 100, Width: 30, Mass: 0.05},
		{ID: "fins", Type: rocket.Fins, Position: 60, Length: 40, Width: 200, Mass: 0.05, FinCount: 6},
	}
	m := CalculateStabilityMetrics(components, nil)
	if m.FinEffectiveness != 100 {
		t.Errorf("fin effectiveness = %v, want saturation at 100", m.FinEffectiveness)
	}
}
