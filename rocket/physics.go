package rocket

// RocketPhysics is the derived snapshot that both the stability evaluator
// and the flight integrator consume. It is recomputed from the component
// list and motor on every design change and never mutated independently.
// Axial values are in mm, masses in kg, the reference area in m².
type RocketPhysics struct {
	TotalMass        float64 `json:"totalMass"`
	DryMass          float64 `json:"dryMass"`
	PropellantMass   float64 `json:"propellantMass"`
	CenterOfGravity  float64 `json:"centerOfGravity"`
	CenterOfPressure float64 `json:"centerOfPressure"`
	StabilityMargin  float64 `json:"stabilityMargin"` // calibers
	DragCoefficient  float64 `json:"dragCoefficient"`
	ReferenceArea    float64 `json:"referenceArea"` // m²
	Length           float64 `json:"length"`        // mm
	Diameter         float64 `json:"diameter"`      // mm
	MotorPosition    float64 `json:"motorPosition"` // mm
}
