// Package views renders simulation output for external consumers.
package views

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Harkirat-Singh4/vyomlab/simulator"
)

// FlightColumns is the canonical column order for the flight CSV export;
// single source of truth for the header and the row encoder.
var FlightColumns = []string{
	"time", "altitude", "velocity", "acceleration",
	"thrust", "drag", "mach", "mass",
}

// WriteFlightCSV writes a run's sample series as a fixed-precision CSV
// table. The series is read-only here; exporting never mutates a run.
func WriteFlightCSV(w io.Writer, samples []simulator.FlightStateSample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(FlightColumns); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Time, 'f', 3, 64),
			strconv.FormatFloat(s.Altitude, 'f', 2, 64),
			strconv.FormatFloat(s.Velocity, 'f', 2, 64),
			strconv.FormatFloat(s.Acceleration, 'f', 2, 64),
			strconv.FormatFloat(s.Thrust, 'f', 2, 64),
			strconv.FormatFloat(s.Drag, 'f', 3, 64),
			strconv.FormatFloat(s.MachNumber, 'f', 4, 64),
			strconv.FormatFloat(s.Mass, 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
