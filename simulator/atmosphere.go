package simulator

import (
	"math"

	"github.com/Harkirat-Singh4/vyomlab/utils"
)

// Atmosphere model: standard lapse rate plus the barometric power law,
// valid for the troposphere only (altitude well below 11 km). Inputs
// outside that range are computed as-is, not guarded.
const (
	seaLevelPressure     = 101325.0 // Pa
	temperatureLapseRate = 0.0065   // K per m
	gasConstantAir       = 287.0    // J/(kg·K)
	barometricExponent   = 5.2561

	earthRadius    = 6371000.0 // m
	surfaceGravity = 9.81      // m/s²
)

// AirDensity returns the air density (kg/m³) at an altitude above the
// launch site, given the ground temperature (°C) and ground pressure
// (Pa). A non-positive ground pressure falls back to the standard
// sea-level value.
func AirDensity(altitude, groundTempC, groundPressure float64) float64 {
	if groundPressure <= 0 {
		groundPressure = seaLevelPressure
	}
	t0 := utils.CelsiusToKelvin(groundTempC)
	t := t0 - temperatureLapseRate*altitude
	pressure := groundPressure * math.Pow(t/t0, barometricExponent)
	return pressure / (gasConstantAir * t)
}

// SpeedOfSound returns the local speed of sound (m/s) at an altitude
// above the launch site, applying the same lapse rate to the ground
// temperature.
func SpeedOfSound(altitude, groundTempC float64) float64 {
	t := utils.CelsiusToKelvin(groundTempC) - temperatureLapseRate*altitude
	return utils.SpeedOfSound(t)
}

// GravityAt returns gravitational acceleration at an absolute altitude
// above sea level, using inverse-square falloff from the surface value.
func GravityAt(altitude float64) float64 {
	r := earthRadius / (earthRadius + altitude)
	return surfaceGravity * r * r
}
