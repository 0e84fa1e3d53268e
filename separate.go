package dungeongraph

import (
	"github.com/unixpickle/model3d/model3d"

	"github.com/voidshard/dungeongraph/internal/spatial"
)

// Step advances the separation by one tick & returns true if any room moved.
//
// Each room that intersects others moves Config.Step units directly away from
// the (average) direction of the rooms it intersects. All pushes are worked out
// from the positions at the start of the tick, so the order of rooms doesn't
// matter. Once a tick moves nothing the dungeon is settled.
func (d *Dungeon) Step() bool {
	if d.settled {
		return false
	}

	idx := spatial.New()
	for i, r := range d.Rooms {
		idx.Add(i, r.Bounds())
	}

	pushes := make([]model3d.Coord3D, len(d.Rooms))
	moved := 0
	for i := range d.Rooms {
		push, ok := d.repulsion(i, idx)
		if !ok {
			continue
		}
		pushes[i] = push
		moved++
	}

	for i, r := range d.Rooms {
		r.Position = r.Position.Add(pushes[i])
	}

	d.Stats.Ticks++
	d.log.Debug("separation tick", "tick", d.Stats.Ticks, "moved", moved)

	if moved == 0 {
		d.settled = true
	}
	return moved > 0
}

// repulsion returns how room i should move this tick.
// The sum of offsets to intersecting rooms is averaged over *all* rooms, which
// keeps it small; it is then normalised so the length only matters if it is
// exactly zero. A zero sum (no intersections or perfectly balanced ones)
// means the room doesn't move.
func (d *Dungeon) repulsion(i int, idx *spatial.Index) (model3d.Coord3D, bool) {
	me := d.Rooms[i]

	vx, vz := 0.0, 0.0
	for _, j := range idx.Overlapping(i) {
		other := d.Rooms[j]
		vx += other.Position.X - me.Position.X
		vz += other.Position.Z - me.Position.Z
	}
	if vx == 0 && vz == 0 {
		return model3d.Coord3D{}, false
	}

	n := float64(len(d.Rooms))
	v := model3d.XYZ(vx/n, 0, vz/n).Normalize()

	return v.Scale(-d.cfg.Step), true
}
