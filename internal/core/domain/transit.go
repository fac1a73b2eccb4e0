package domain

// TransitStep is one sample of a body's motion through the zodiac.
type TransitStep struct {
	DayCount  DayCount  `json:"day_count"`
	Date      Date      `json:"date"`
	Placement Placement `json:"placement"`

	// Ingress is set when the sign differs from the previous step.
	Ingress bool `json:"ingress,omitempty"`

	// Station is set when the retrograde flag differs from the previous step.
	Station bool `json:"station,omitempty"`
}
