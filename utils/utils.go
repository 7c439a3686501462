package utils

import "math"

// CelsiusToKelvin converts a temperature in °C to Kelvin.
func CelsiusToKelvin(celsius float64) float64 {
	return celsius + 273.15
}

// SpeedOfSound returns the speed of sound (m/s) at the given air
// temperature (Kelvin) for dry air.
func SpeedOfSound(tempK float64) float64 {
	const gamma = 1.4
	const R = 287.0
	return math.Sqrt(gamma * R * tempK)
}

// CdByMach returns an approximate drag coefficient for a slender rocket
// by Mach number: roughly constant subsonic, a transonic rise through
// Mach 1, then a slow supersonic decay. Used as the fallback when the
// design's components carry no drag data of their own.
func CdByMach(m float64) float64 {
	switch {
	case m < 0.8:
		return 0.2
	case m < 1.0:
		t := (m - 0.8) / (1.0 - 0.8)
		return 0.2 + t*(0.5-0.2)
	case m <= 1.2:
		t := (m - 1.0) / (1.2 - 1.0)
		return 0.5 - t*(0.5-0.45)
	case m <= 3.0:
		t := (m - 1.2) / (3.0 - 1.2)
		return 0.45 - t*(0.45-0.35)
	case m <= 5.0:
		t := (m - 3.0) / (5.0 - 3.0)
		return 0.35 - t*(0.35-0.31)
	default:
		return 0.31
	}
}

// CalculateTWR returns the thrust-to-weight ratio, or 0 for a massless
// rocket or zero gravity (guarded division).
func CalculateTWR(thrust, mass, gravity float64) float64 {
	if mass == 0 || gravity == 0 {
		return 0
	}
	return thrust / (mass * gravity)
}
