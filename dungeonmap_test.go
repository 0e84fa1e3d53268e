package dungeongraph

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

// mapped returns a map of two rooms joined by one hallway, plus a main room
// off to the side.
func mapped(t *testing.T) (*Dungeon, *imageMap) {
	t.Helper()
	d := testDungeon(t)
	addRoom(d, 0, 0, 8, 8)
	addRoom(d, 1, 20, 8, 8)
	addRoom(d, 30, 0, 12, 12)
	d.carveHallways()

	m := newMap(4)
	if err := m.Present(d.Rooms, d.Hallways); err != nil {
		t.Fatal(err)
	}
	return d, m
}

func TestMapPresent(t *testing.T) {
	d, m := mapped(t)

	if len(d.Hallways) == 0 {
		t.Fatal("expected a hallway")
	}

	for _, r := range d.Rooms {
		p := m.ToPixel(r.Position)
		if !m.IsRoom(p.X, p.Y) {
			t.Errorf("room %d centre %v not drawn", r.ID, p)
		}
		if m.IsMainRoom(p.X, p.Y) != r.MainRoom {
			t.Errorf("room %d main room pixel %v, want %v", r.ID, m.IsMainRoom(p.X, p.Y), r.MainRoom)
		}
		id, err := m.RoomID(p.X, p.Y)
		if err != nil {
			t.Fatal(err)
		}
		if id != r.ID {
			t.Errorf("RoomID at room %d centre = %d", r.ID, id)
		}
	}

	h := d.Hallways[0]
	p := m.ToPixel(h.Center())
	if !m.IsHallway(p.X, p.Y) {
		t.Errorf("hallway centre %v not drawn", p)
	}
	if m.IsRoom(p.X, p.Y) {
		t.Errorf("hallway centre %v drawn as room", p)
	}
	if id, _ := m.RoomID(p.X, p.Y); id != -1 {
		t.Errorf("RoomID between rooms = %d, want -1", id)
	}

	// top left is margin
	if m.IsRoom(0, 0) || m.IsHallway(0, 0) {
		t.Error("expected empty margin at 0,0")
	}
}

func TestMapBounds(t *testing.T) {
	_, m := mapped(t)

	// x spans [-4, 36], z spans [-6, 24], at 4px per unit plus margins
	want := image.Rect(0, 0, 40*4+mapMargin*2, 30*4+mapMargin*2)
	if m.Bounds() != want {
		t.Errorf("bounds = %v, want %v", m.Bounds(), want)
	}

	for _, pt := range []image.Point{{-1, 0}, {0, -1}, {want.Max.X, 0}, {0, want.Max.Y}} {
		if m.IsRoom(pt.X, pt.Y) || m.IsHallway(pt.X, pt.Y) || m.IsSightline(pt.X, pt.Y) || m.IsMainRoom(pt.X, pt.Y) {
			t.Errorf("%v is out of bounds & should be empty", pt)
		}
		if _, err := m.RoomID(pt.X, pt.Y); err == nil {
			t.Errorf("RoomID(%v) expected error", pt)
		}
	}
}

func TestMapSightline(t *testing.T) {
	d, m := mapped(t)

	a, b := d.Rooms[0].Position, d.Rooms[2].Position
	m.drawSightline(a, b)

	for _, pt := range []image.Point{m.ToPixel(a), m.ToPixel(b), m.ToPixel(a.Mid(b))} {
		if !m.IsSightline(pt.X, pt.Y) {
			t.Errorf("sightline missing at %v", pt)
		}
	}
	// drawing a sightline leaves the room data alone
	p := m.ToPixel(a)
	if !m.IsRoom(p.X, p.Y) {
		t.Error("room bit lost under sightline")
	}
	if id, _ := m.RoomID(p.X, p.Y); id != 0 {
		t.Errorf("RoomID under sightline = %d, want 0", id)
	}
}

func TestMapEmpty(t *testing.T) {
	m := newMap(0)
	if err := m.Present(nil, nil); err != nil {
		t.Fatal(err)
	}
	if m.scale != DefaultMapScale {
		t.Errorf("scale = %v, want default", m.scale)
	}
	if m.Bounds().Dx() != 1 || m.Bounds().Dy() != 1 {
		t.Errorf("bounds = %v", m.Bounds())
	}
}

func TestMapSave(t *testing.T) {
	_, m := mapped(t)
	dir := t.TempDir()

	raw := filepath.Join(dir, "raw.png")
	if err := m.Save(raw); err != nil {
		t.Fatal(err)
	}
	adv := filepath.Join(dir, "adv.png")
	if err := m.SaveAdv(adv, DefaultScheme()); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{raw, adv} {
		if st, err := os.Stat(f); err != nil || st.Size() == 0 {
			t.Errorf("%s not written: %v", f, err)
		}
	}

	if err := m.SaveAdv(filepath.Join(dir, "nil.png"), nil); err == nil {
		t.Error("expected error with nil scheme")
	}
}

func TestMapCustomImage(t *testing.T) {
	d, m := mapped(t)
	scheme := DefaultScheme()

	im, err := m.CustomImage(scheme)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		pt   image.Point
		want color.Color
	}{
		{"background", image.Pt(0, 0), scheme.Background},
		{"room", m.ToPixel(d.Rooms[0].Position), scheme.Rooms},
		{"main room", m.ToPixel(d.Rooms[2].Position), scheme.MainRooms},
		{"hallway", m.ToPixel(d.Hallways[0].Center()), scheme.Hallways},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := im.At(tt.pt.X, tt.pt.Y).RGBA()
			wr, wg, wb, wa := tt.want.RGBA()
			if r != wr || g != wg || b != wb || a != wa {
				t.Errorf("colour at %v = %v", tt.pt, im.At(tt.pt.X, tt.pt.Y))
			}
		})
	}
}

func TestDungeonMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 2
	d, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	m, err := d.Map()
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if again, _ := d.Map(); again != m {
		t.Error("Map should be painted once & reused")
	}
	for _, r := range d.Rooms {
		p := m.ToPixel(r.Position)
		if !m.IsRoom(p.X, p.Y) {
			t.Errorf("room %d not on map", r.ID)
		}
	}
	for _, s := range d.Sightlines {
		p := m.ToPixel(s.Start)
		if !m.IsSightline(p.X, p.Y) {
			t.Errorf("sightline %d-%d not on map", s.From, s.To)
		}
	}
}

func TestDungeonMapTooLarge(t *testing.T) {
	d := testDungeon(t)
	addRoom(d, -20000, 0, 12, 12)
	addRoom(d, 20000, 0, 12, 12)

	if err := d.Settle(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := d.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if len(d.Rooms) != 2 || len(d.Hallways) != 1 {
		t.Fatalf("got %d rooms %d hallways, want 2 & 1", len(d.Rooms), len(d.Hallways))
	}

	m, err := d.Map()
	if !errors.Is(err, ErrMapTooLarge) {
		t.Errorf("expected ErrMapTooLarge, got %v", err)
	}
	if m != nil {
		t.Error("expected no map")
	}

	err = d.RenderPlan(filepath.Join(t.TempDir(), "plan.png"), 4)
	if !errors.Is(err, ErrMapTooLarge) {
		t.Errorf("RenderPlan: expected ErrMapTooLarge, got %v", err)
	}
}

func TestNewLargeRadius(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Seed = seed
			cfg.InitialRadius = 20000

			d, err := New(cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if _, err := d.Map(); err != nil && !errors.Is(err, ErrMapTooLarge) {
				t.Errorf("Map: unexpected error %v", err)
			}
		})
	}
}

func TestMapSize(t *testing.T) {
	tests := []struct {
		name         string
		width, depth float64
		scale        float64
		wantW, wantH int
		wantErr      bool
	}{
		{"small", 10, 5, 4, 40 + mapMargin*2, 20 + mapMargin*2, false},
		{"fractional", 2.1, 1, 1, 3 + mapMargin*2, 1 + mapMargin*2, false},
		{"too wide", maxMapSide, 1, 1, 0, 0, true},
		{"too many pixels", 5000, 5000, 1, 0, 0, true},
		{"huge", 40000, 40000, 4, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := mapSize(tt.width, tt.depth, tt.scale)
			if tt.wantErr {
				if !errors.Is(err, ErrMapTooLarge) {
					t.Errorf("expected ErrMapTooLarge, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("mapSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
