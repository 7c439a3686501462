package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Harkirat-Singh4/vyomlab/aero"
	"github.com/Harkirat-Singh4/vyomlab/rocket"
	"github.com/Harkirat-Singh4/vyomlab/simulator"
)

var (
	altitudeGauge     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_altitude_meters"})
	velocityGauge     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_velocity_mps"})
	accelerationGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_acceleration_mps2"})
	massGauge         = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_mass_kg"})
	thrustGauge       = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_thrust_newton"})
	dragGauge         = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_drag_newton"})
	machGauge         = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_mach_number"})
	airDensityGauge   = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_air_density_kg_per_m3"})
	flightTimeGauge   = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_flight_time_seconds"})

	staticMarginGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_static_margin_calibers"})
	cgGauge           = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_center_of_gravity_mm"})
	cpGauge           = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_center_of_pressure_mm"})
	finScoreGauge     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_fin_effectiveness_score"})
	ratingGauge       = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_stability_rating_score"})
	warningCountGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_stability_warning_count"})

	componentMassGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rocket_component_mass_kg",
			Help: "Combined mass of the design's components by type (in kilograms)",
		},
		[]string{"component_type"},
	)
)

func init() {
	prometheus.MustRegister(
		altitudeGauge, velocityGauge, accelerationGauge, massGauge,
		thrustGauge, dragGauge, machGauge, airDensityGauge, flightTimeGauge,
		staticMarginGauge, cgGauge, cpGauge, finScoreGauge, ratingGauge,
		warningCountGauge, componentMassGauge,
	)
}

// SendFlightSample publishes one trajectory sample to the flight gauges
// and echoes a telemetry line to stdout.
func SendFlightSample(s simulator.FlightStateSample) {
	fmt.Printf("t=%.2f s | Altitude: %.2f m | Velocity: %.2f m/s | Acceleration: %.2f m/s² | Mass: %.4f kg | Thrust: %.2f N | Drag: %.2f N | Mach: %.3f | Phase: %s\n",
		s.Time, s.Altitude, s.Velocity, s.Acceleration, s.Mass, s.Thrust, s.Drag, s.MachNumber, s.Phase)
	altitudeGauge.Set(s.Altitude)
	velocityGauge.Set(s.Velocity)
	accelerationGauge.Set(s.Acceleration)
	massGauge.Set(s.Mass)
	thrustGauge.Set(s.Thrust)
	dragGauge.Set(s.Drag)
	machGauge.Set(s.MachNumber)
	airDensityGauge.Set(s.AirDensity)
	flightTimeGauge.Set(s.Time)
}

// SendStability publishes the static-stability report.
func SendStability(m aero.StabilityMetrics) {
	staticMarginGauge.Set(m.StaticMargin)
	cgGauge.Set(m.CenterOfGravity)
	cpGauge.Set(m.CenterOfPressure)
	finScoreGauge.Set(m.FinEffectiveness)
	ratingGauge.Set(m.OverallRating)
	warningCountGauge.Set(float64(len(m.Warnings)))
}

// SendComponentMasses publishes the per-type mass breakdown.
func SendComponentMasses(components []rocket.Component) {
	componentMassGauge.Reset()
	totals := make(map[rocket.ComponentType]float64)
	for _, c := range components {
		totals[c.Type] += c.Mass
	}
	for t, mass := range totals {
		componentMassGauge.WithLabelValues(string(t)).Set(mass)
	}
}
