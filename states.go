package dungeongraph

import (
	"fmt"
)

// KeepState records whether a room survives into the final layout.
// Rooms start Unknown. Main rooms & rooms on a sightline become Keep (and
// stay Keep), everything else becomes Discard.
type KeepState uint8

const (
	StateUnknown KeepState = iota
	StateKeep
	StateDiscard
)

var keepStateNames = map[KeepState]string{
	StateUnknown: "unknown",
	StateKeep:    "keep",
	StateDiscard: "discard",
}

// String returns the name of the state
func (s KeepState) String() string {
	name, ok := keepStateNames[s]
	if !ok {
		return fmt.Sprintf("KeepState(%d)", uint8(s))
	}
	return name
}

// MarshalText encodes the state by name
func (s KeepState) MarshalText() ([]byte, error) {
	name, ok := keepStateNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown keep state %d", uint8(s))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a state by name
func (s *KeepState) UnmarshalText(in []byte) error {
	for k, v := range keepStateNames {
		if v == string(in) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown keep state %q", string(in))
}

// Axis is the horizontal axis a hallway runs along
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
)

// String returns "x" or "z"
func (a Axis) String() string {
	if a == AxisZ {
		return "z"
	}
	return "x"
}

// MarshalText encodes the axis by name
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes "x" or "z"
func (a *Axis) UnmarshalText(in []byte) error {
	switch string(in) {
	case "x":
		*a = AxisX
	case "z":
		*a = AxisZ
	default:
		return fmt.Errorf("unknown axis %q", string(in))
	}
	return nil
}

// bit numbers of the side occupancy bitmap kept per room while carving
const (
	sideNorth = 0 // +z
	sideEast  = 1 // +x
	sideSouth = 2 // -z
	sideWest  = 3 // -x
)
