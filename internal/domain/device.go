package domain

type ApplianceKind string

const (
	ApplianceKindLight      ApplianceKind = "light"
	ApplianceKindGarageDoor ApplianceKind = "garage_door"
	ApplianceKindStereo     ApplianceKind = "stereo"
)

// Valid reports whether k is one of the supported appliance kinds.
func (k ApplianceKind) Valid() bool {
	switch k {
	case ApplianceKindLight, ApplianceKindGarageDoor, ApplianceKindStereo:
		return true
	}
	return false
}

type Appliance struct {
	Name string
	Kind ApplianceKind
}

// ApplianceState is a point-in-time snapshot of a receiver.
type ApplianceState struct {
	Name   string        `json:"name"`
	Kind   ApplianceKind `json:"kind"`
	On     bool          `json:"on"`
	Source string        `json:"source,omitempty"`
	Volume int           `json:"volume,omitempty"`
}
