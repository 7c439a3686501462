package rocket

import "testing"

func rampMotor() Motor {
	return Motor{
		Designation:    "TEST-RAMP",
		BurnTime:       2,
		AverageThrust:  5,
		PropellantMass: 0.01,
		TotalMass:      0.03,
		ThrustCurve: []ThrustSample{
			{Time: 0, Thrust: 0},
			{Time: 1, Thrust: 10},
			{Time: 2, Thrust: 0},
		},
	}
}

func TestThrustAt_LinearInterpolation(t *testing.T) {
	m := rampMotor()
	cases := []struct {
		time, want float64
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{1.5, 5},
		{1.99, 0.1},
	}
	for _, c := range cases {
		if got := m.ThrustAt(c.time); !almostEqual(got, c.want, 1e-9) {
			t.Errorf("ThrustAt(%v) = %v, want %v", c.time, got, c.want)
		}
	}
}

func TestThrustAt_ZeroAtAndPastBurnout(t *testing.T) {
	m := rampMotor()
	if got := m.ThrustAt(m.BurnTime); got != 0 {
		t.Errorf("ThrustAt(burnTime) = %v, want exactly 0", got)
	}
	if got := m.ThrustAt(m.BurnTime + 5); got != 0 {
		t.Errorf("ThrustAt past burnout = %v, want 0", got)
	}
	if got := m.ThrustAt(-0.1); got != 0 {
		t.Errorf("ThrustAt negative time = %v, want 0", got)
	}
}

func TestThrustAt_NoCurveFallsBackToAverage(t *testing.T) {
	m := Motor{BurnTime: 2, AverageThrust: 7}
	if got := m.ThrustAt(1); got != 7 {
		t.Errorf("ThrustAt without curve = %v, want average 7", got)
	}
	if got := m.ThrustAt(2); got != 0 {
		t.Errorf("ThrustAt(burnTime) without curve = %v, want 0", got)
	}
}

func TestBurnedPropellant_ClampsFraction(t *testing.T) {
	m := rampMotor()
	if got := m.BurnedPropellant(-1); got != 0 {
		t.Errorf("BurnedPropellant(-1) = %v, want 0", got)
	}
	if got := m.BurnedPropellant(2); !almostEqual(got, m.PropellantMass, 1e-12) {
		t.Errorf("BurnedPropellant(2) = %v, want full load %v", got, m.PropellantMass)
	}
	if got := m.BurnedPropellant(0.5); !almostEqual(got, m.PropellantMass/2, 1e-12) {
		t.Errorf("BurnedPropellant(0.5) = %v, want half load", got)
	}
}

func TestCurrentMass_NeverBelowDry(t *testing.T) {
	m := rampMotor()
	if got := m.CurrentMass(1); !almostEqual(got, m.TotalMass-m.PropellantMass, 1e-12) {
		t.Errorf("CurrentMass at burnout = %v, want case mass %v", got, m.TotalMass-m.PropellantMass)
	}
}

func TestCatalogLookup(t *testing.T) {
	cat := Catalog{"X1": rampMotor()}
	if _, ok := cat.Lookup("X1"); !ok {
		t.Error("Lookup missed a present designation")
	}
	if _, ok := cat.Lookup("nope"); ok {
		t.Error("Lookup found a missing designation")
	}
}
