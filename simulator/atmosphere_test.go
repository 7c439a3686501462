package simulator

import (
	"math"
	"testing"
)

func TestAirDensity_SeaLevel(t *testing.T) {
	// ρ = p / (R·T) at 20 °C and standard pressure.
	got := AirDensity(0, 20, 101325)
	want := 101325.0 / (287.0 * 293.15)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("AirDensity(0, 20°C) = %v, want %v", got, want)
	}
}

func TestAirDensity_DecreasesWithAltitude(t *testing.T) {
	prev := AirDensity(0, 20, 101325)
	for _, alt := range []float64{100, 500, 1000, 3000, 8000} {
		got := AirDensity(alt, 20, 101325)
		if got >= prev {
			t.Fatalf("density at %v m = %v, want < %v", alt, got, prev)
		}
		prev = got
	}
}

func TestAirDensity_ZeroPressureFallsBack(t *testing.T) {
	withDefault := AirDensity(0, 20, 0)
	explicit := AirDensity(0, 20, 101325)
	if math.Abs(withDefault-explicit) > 1e-12 {
		t.Errorf("zero ground pressure density = %v, want standard %v", withDefault, explicit)
	}
}

func TestSpeedOfSound_SeaLevel(t *testing.T) {
	got := SpeedOfSound(0, 20)
	want := math.Sqrt(1.4 * 287.0 * 293.15)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("SpeedOfSound(0, 20°C) = %v, want %v", got, want)
	}
}

func TestSpeedOfSound_DropsWithAltitude(t *testing.T) {
	if SpeedOfSound(5000, 20) >= SpeedOfSound(0, 20) {
		t.Error("speed of sound did not drop with altitude")
	}
}

func TestGravityAt_InverseSquare(t *testing.T) {
	if g := GravityAt(0); g != 9.81 {
		t.Errorf("surface gravity = %v, want 9.81", g)
	}
	g1000 := GravityAt(1000)
	if g1000 >= 9.81 {
		t.Errorf("gravity at 1 km = %v, want < 9.81", g1000)
	}
	// The correction is tiny at model altitudes: well under 0.1%.
	if 9.81-g1000 > 0.01 {
		t.Errorf("gravity correction at 1 km = %v, implausibly large", 9.81-g1000)
	}
}
