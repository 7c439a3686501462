package rocket

// ComponentType identifies the physical role of a part.
type ComponentType string

const (
	NoseCone   ComponentType = "nosecone"
	BodyTube   ComponentType = "bodytube"
	Fins       ComponentType = "fins"
	Engine     ComponentType = "engine"
	Transition ComponentType = "transition"
	Parachute  ComponentType = "parachute"
)

// Component is one physical part of the rocket. Axial geometry is in
// millimetres measured from the nose tip, mass is in kilograms. Components
// are plain data owned by the design session; the physics code reads them
// and never mutates them. Axial extents of different components may
// overlap; stacking is positional, not enforced.
type Component struct {
	ID                 string        `json:"id"`
	Type               ComponentType `json:"type"`
	Position           float64       `json:"position"` // mm from nose tip
	Width              float64       `json:"width"`    // diameter or fin span, mm
	Length             float64       `json:"length"`   // extent along the axis, mm
	Mass               float64       `json:"mass"`     // kg
	DragCoefficient    float64       `json:"dragCoefficient"`
	FinCount           int           `json:"finCount,omitempty"`
	DeploymentAltitude float64       `json:"deploymentAltitude,omitempty"` // m, parachutes only
}

// Midpoint returns the component's axial centre in mm.
func (c Component) Midpoint() float64 {
	return c.Position + c.Length/2
}

// CloneComponents returns an independent copy of the list so that a
// simulation run holds a snapshot the design surface cannot edit mid-run.
func CloneComponents(components []Component) []Component {
	if components == nil {
		return nil
	}
	out := make([]Component, len(components))
	copy(out, components)
	return out
}

// HasType reports whether any component of the given type is present.
func HasType(components []Component, t ComponentType) bool {
	for _, c := range components {
		if c.Type == t {
			return true
		}
	}
	return false
}
