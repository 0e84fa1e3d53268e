package dungeongraph

import (
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/unixpickle/model3d/model3d"
	"github.com/zyedidia/generic/mapset"

	"github.com/voidshard/dungeongraph/internal/spatial"
)

// connector identifies a hallway between two rooms along an axis
// regardless of which room's pass found it.
type connector struct {
	a, b int
	axis Axis
}

func newConnector(a, b int, axis Axis) connector {
	if b < a {
		a, b = b, a
	}
	return connector{a: a, b: b, axis: axis}
}

// carveHallways joins kept rooms with straight hallways.
//
// For each room we look at every other room in turn. If their x ranges
// overlap they face each other along z (and vice versa) & we attempt a
// hallway on the side facing the other room. Each side of a room is only
// tried once; the first facing room claims it whether or not a hallway
// ends up being placed.
func (d *Dungeon) carveHallways() {
	idx := spatial.New()
	for _, r := range d.Rooms {
		idx.Add(r.ID, r.Bounds())
	}

	carved := mapset.New[connector]()

	for _, a := range d.Rooms {
		occupied := bitmap.New(8) // see side* consts
		abox := a.Bounds()

		for _, b := range d.Rooms {
			if a.ID == b.ID {
				continue
			}
			bbox := b.Bounds()

			if spatial.Facing(abox, bbox, true) {
				// hallway runs along z
				side := sideSouth
				if b.Position.Z > a.Position.Z {
					side = sideNorth
				}

				x := spatial.Overlap(abox, bbox, true).Center()
				za, zb := abox.MaxVal.Z, bbox.MinVal.Z
				if b.Position.Z < a.Position.Z {
					za, zb = abox.MinVal.Z, bbox.MaxVal.Z
				}

				wide := math.Abs(b.Position.Z-a.Position.Z) >= d.cfg.HallwayWidth
				if wide && !occupied.Get(side) {
					d.tryHallway(a, b, model3d.XYZ(x, a.Position.Y, za), model3d.XYZ(x, b.Position.Y, zb), idx, carved)
				}
				occupied.Set(side, true)
			}

			if spatial.Facing(abox, bbox, false) {
				// hallway runs along x
				side := sideWest
				if b.Position.X > a.Position.X {
					side = sideEast
				}

				z := spatial.Overlap(abox, bbox, false).Center()
				xa, xb := abox.MaxVal.X, bbox.MinVal.X
				if b.Position.X < a.Position.X {
					xa, xb = abox.MinVal.X, bbox.MaxVal.X
				}

				wide := math.Abs(b.Position.X-a.Position.X) >= d.cfg.HallwayWidth
				if wide && !occupied.Get(side) {
					d.tryHallway(a, b, model3d.XYZ(xa, a.Position.Y, z), model3d.XYZ(xb, b.Position.Y, z), idx, carved)
				}
				occupied.Set(side, true)
			}
		}
	}

	d.Stats.Hallways = len(d.Hallways)
}

// tryHallway adds a hallway from (on a's face) to (on b's face) if nothing
// but a & b lies on the line between the two points.
func (d *Dungeon) tryHallway(a, b *Room, from, to model3d.Coord3D, idx *spatial.Index, carved mapset.Set[connector]) {
	h := newHallway(a.ID, b.ID, from, to, d.cfg.HallwayWidth, d.cfg.MeanDimensions.Y-d.cfg.HallwayInset)

	key := newConnector(a.ID, b.ID, h.Axis)
	if carved.Has(key) {
		return // found from the other side already
	}
	if h.Length() <= 0 {
		return
	}

	blocked := 0
	idx.Segment(from, to).Each(func(id int) {
		if id != a.ID && id != b.ID {
			blocked++
		}
	})
	if blocked > 0 {
		d.log.Debug("hallway blocked", "from", a.ID, "to", b.ID, "rooms", blocked)
		return
	}

	carved.Put(key)
	d.Hallways = append(d.Hallways, h)
}
