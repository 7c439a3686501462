package rocket

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Motors []Motor `yaml:"motors"`
}

// LoadCatalogFile reads a YAML motor catalog and returns it as an
// immutable lookup table keyed by designation.
func LoadCatalogFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read motor catalog %s: %w", path, err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parse motor catalog %s: %w", path, err)
	}
	cat := make(Catalog, len(cf.Motors))
	for _, m := range cf.Motors {
		if m.Designation == "" {
			return nil, fmt.Errorf("motor catalog %s: entry without designation", path)
		}
		cat[m.Designation] = m
	}
	return cat, nil
}

// DefaultCatalog returns the built-in motor set used when no catalog file
// is configured. Values approximate common black-powder hobby motors.
func DefaultCatalog() Catalog {
	motors := []Motor{
		{
			Designation:    "A8-3",
			TotalImpulse:   2.5,
			BurnTime:       0.5,
			AverageThrust:  5.0,
			MaxThrust:      9.7,
			PropellantMass: 0.0033,
			TotalMass:      0.0162,
			EjectionDelay:  3,
			ThrustCurve: []ThrustSample{
				{Time: 0, Thrust: 0},
				{Time: 0.05, Thrust: 8.5},
				{Time: 0.2, Thrust: 9.7},
				{Time: 0.3, Thrust: 4.0},
				{Time: 0.45, Thrust: 3.0},
				{Time: 0.5, Thrust: 0},
			},
		},
		{
			Designation:    "B6-4",
			TotalImpulse:   5.0,
			BurnTime:       0.8,
			AverageThrust:  6.25,
			MaxThrust:      12.1,
			PropellantMass: 0.0056,
			TotalMass:      0.0182,
			EjectionDelay:  4,
			ThrustCurve: []ThrustSample{
				{Time: 0, Thrust: 0},
				{Time: 0.1, Thrust: 12.1},
				{Time: 0.2, Thrust: 8.0},
				{Time: 0.5, Thrust: 5.0},
				{Time: 0.75, Thrust: 4.5},
				{Time: 0.8, Thrust: 0},
			},
		},
		{
			Designation:    "C6-5",
			TotalImpulse:   10.0,
			BurnTime:       1.6,
			AverageThrust:  6.25,
			MaxThrust:      14.1,
			PropellantMass: 0.0108,
			TotalMass:      0.024,
			EjectionDelay:  5,
			ThrustCurve: []ThrustSample{
				{Time: 0, Thrust: 0},
				{Time: 0.1, Thrust: 12.0},
				{Time: 0.2, Thrust: 14.1},
				{Time: 0.4, Thrust: 6.5},
				{Time: 1.5, Thrust: 5.5},
				{Time: 1.6, Thrust: 0},
			},
		},
		{
			Designation:    "D12-5",
			TotalImpulse:   20.0,
			BurnTime:       1.65,
			AverageThrust:  12.1,
			MaxThrust:      32.9,
			PropellantMass: 0.0211,
			TotalMass:      0.0426,
			EjectionDelay:  5,
			ThrustCurve: []ThrustSample{
				{Time: 0, Thrust: 0},
				{Time: 0.1, Thrust: 25.0},
				{Time: 0.25, Thrust: 32.9},
				{Time: 0.5, Thrust: 12.0},
				{Time: 1.55, Thrust: 9.5},
				{Time: 1.65, Thrust: 0},
			},
		},
		{
			Designation:    "E9-6",
			TotalImpulse:   30.0,
			BurnTime:       3.0,
			AverageThrust:  10.0,
			MaxThrust:      19.5,
			PropellantMass: 0.0358,
			TotalMass:      0.0567,
			EjectionDelay:  6,
			ThrustCurve: []ThrustSample{
				{Time: 0, Thrust: 0},
				{Time: 0.15, Thrust: 19.5},
				{Time: 0.5, Thrust: 11.0},
				{Time: 2.8, Thrust: 9.0},
				{Time: 3.0, Thrust: 0},
			},
		},
	}
	cat := make(Catalog, len(motors))
	for _, m := range motors {
		cat[m.Designation] = m
	}
	return cat
}
