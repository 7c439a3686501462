package rocket

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog_CurveInvariants(t *testing.T) {
	cat := DefaultCatalog()
	if len(cat) == 0 {
		t.Fatal("default catalog is empty")
	}
	for designation, m := range cat {
		if m.BurnTime <= 0 {
			t.Errorf("%s: burn time %v, want > 0", designation, m.BurnTime)
		}
		if m.PropellantMass > m.TotalMass {
			t.Errorf("%s: propellant mass %v exceeds total mass %v", designation, m.PropellantMass, m.TotalMass)
		}
		if len(m.ThrustCurve) == 0 {
			t.Errorf("%s: no thrust curve", designation)
			continue
		}
		if m.ThrustCurve[0].Time != 0 {
			t.Errorf("%s: first sample at t=%v, want 0", designation, m.ThrustCurve[0].Time)
		}
		last := m.ThrustCurve[len(m.ThrustCurve)-1]
		if last.Time != m.BurnTime || last.Thrust != 0 {
			t.Errorf("%s: last sample (%v, %v), want (%v, 0)", designation, last.Time, last.Thrust, m.BurnTime)
		}
		for i := 1; i < len(m.ThrustCurve); i++ {
			if m.ThrustCurve[i].Time <= m.ThrustCurve[i-1].Time {
				t.Errorf("%s: sample times not strictly increasing at index %d", designation, i)
			}
		}
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motors.yaml")
	data := `motors:
  - designation: "T10"
    total_impulse: 10
    burn_time: 1.6
    average_thrust: 6.25
    propellant_mass: 0.0065
    total_mass: 0.0186
    ejection_delay: 5
    thrust_curve:
      - { time: 0.0, thrust: 0.0 }
      - { time: 0.2, thrust: 12.0 }
      - { time: 1.6, thrust: 0.0 }
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile: %v", err)
	}
	m, ok := cat.Lookup("T10")
	if !ok {
		t.Fatal("loaded catalog is missing T10")
	}
	if m.BurnTime != 1.6 || len(m.ThrustCurve) != 3 {
		t.Errorf("loaded motor = %+v, want burn 1.6 with 3 curve samples", m)
	}
}

func TestLoadCatalogFile_MissingFile(t *testing.T) {
	if _, err := LoadCatalogFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for a missing catalog file")
	}
}

func TestLoadCatalogFile_RejectsAnonymousMotor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motors.yaml")
	if err := os.WriteFile(path, []byte("motors:\n  - burn_time: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalogFile(path); err == nil {
		t.Error("expected error for a motor without designation")
	}
}
