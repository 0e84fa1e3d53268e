package dungeongraph

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// Stats holds generic counts about the dungeon
type Stats struct {
	Rooms     int // rooms sampled
	MainRooms int
	Kept      int `json:",omitempty"`
	Discarded int `json:",omitempty"`
	Hallways  int `json:",omitempty"`
	Ticks     int `json:",omitempty"` // separation ticks until no room moved
}

// Room is an axis aligned box resting on the ground plane (y = 0).
// Its bounds are always Position +/- Dimensions/2.
type Room struct {
	// ID is the index the room was created with, it does not change when
	// other rooms are pruned.
	ID int

	// extents (width, height, depth) & centre
	Dimensions model3d.Coord3D
	Position   model3d.Coord3D

	// MainRoom is fixed at creation; rooms notably larger than the mean
	// form the skeleton of the dungeon.
	MainRoom bool

	// State starts Unknown & is decided by casting sightlines between main rooms
	State KeepState
}

// newRoom builds a room, deciding whether it's a main room from the configured
// mean dimensions.
func newRoom(id int, dimensions, position model3d.Coord3D, cfg *Config) *Room {
	return &Room{
		ID:         id,
		Dimensions: dimensions,
		Position:   position,
		MainRoom:   isMainRoom(dimensions, cfg.MeanDimensions, cfg.MainRoomFactor),
	}
}

// isMainRoom is true if both width & depth exceed the mean by more than factor
func isMainRoom(dimensions, mean model3d.Coord3D, factor float64) bool {
	return dimensions.X > mean.X*factor && dimensions.Z > mean.Z*factor
}

// Min returns the lowest corner of the room
func (r *Room) Min() model3d.Coord3D {
	return r.Position.Sub(r.Dimensions.Scale(0.5))
}

// Max returns the highest corner of the room
func (r *Room) Max() model3d.Coord3D {
	return r.Position.Add(r.Dimensions.Scale(0.5))
}

// Bounds returns the room as a box
func (r *Room) Bounds() *model3d.Rect {
	return &model3d.Rect{MinVal: r.Min(), MaxVal: r.Max()}
}

// mark records the outcome of one sightline. Keep always wins, Discard is only
// ever set over Unknown.
func (r *Room) mark(hit bool) {
	if hit || r.MainRoom {
		r.State = StateKeep
	} else if r.State == StateUnknown {
		r.State = StateDiscard
	}
}

// Hallway is a straight connector between the facing sides of two kept rooms.
// Hallways are immutable once carved.
type Hallway struct {
	// points on the boundary faces of the two rooms
	Start model3d.Coord3D
	End   model3d.Coord3D

	Width  float64
	Height float64

	// Axis the hallway runs along
	Axis Axis

	// Rooms the hallway joins (by Room.ID)
	From int
	To   int
}

// newHallway builds a hallway between a & b, working out the axis it runs along.
func newHallway(from, to int, a, b model3d.Coord3D, width, height float64) *Hallway {
	axis := AxisX
	if a.X == b.X {
		axis = AxisZ
	}
	return &Hallway{
		Start:  a,
		End:    b,
		Width:  width,
		Height: height,
		Axis:   axis,
		From:   from,
		To:     to,
	}
}

// Center returns the mid point of the hallway
func (h *Hallway) Center() model3d.Coord3D {
	return h.Start.Mid(h.End)
}

// Length along the axis the hallway runs
func (h *Hallway) Length() float64 {
	if h.Axis == AxisZ {
		return math.Abs(h.Start.Z - h.End.Z)
	}
	return math.Abs(h.Start.X - h.End.X)
}

// Dimensions returns the extents of the hallway box
func (h *Hallway) Dimensions() model3d.Coord3D {
	if h.Axis == AxisZ {
		return model3d.XYZ(h.Width, h.Height, h.Length())
	}
	return model3d.XYZ(h.Length(), h.Height, h.Width)
}

// Bounds returns the hallway as a box
func (h *Hallway) Bounds() *model3d.Rect {
	half := h.Dimensions().Scale(0.5)
	c := h.Center()
	return &model3d.Rect{MinVal: c.Sub(half), MaxVal: c.Add(half)}
}

// Sightline is a segment cast between the centres of two main rooms, along with
// every room it passed through.
type Sightline struct {
	From  int // Room.ID
	To    int // Room.ID
	Start model3d.Coord3D
	End   model3d.Coord3D
	Hits  []int `json:",omitempty"` // Room.IDs, ascending
}
