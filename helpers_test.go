package dungeongraph

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

// testDungeon returns an empty dungeon using the default config
func testDungeon(t *testing.T) *Dungeon {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1
	return newDungeon(cfg)
}

// addRoom places a room of mean height centred at (x, z)
func addRoom(d *Dungeon, x, z, w, depth float64) *Room {
	h := d.cfg.MeanDimensions.Y
	r := newRoom(len(d.Rooms), model3d.XYZ(w, h, depth), model3d.XYZ(x, h/2, z), d.cfg)
	d.Rooms = append(d.Rooms, r)
	return r
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxCoord(a, b model3d.Coord3D) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}
