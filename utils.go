package dungeongraph

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// RenderPlan rasterizes a top down view of the dungeon to a PNG at fpath;
// rooms, main rooms, hallways & sightlines each in their own colour.
// Scale is pixels per unit.
func (d *Dungeon) RenderPlan(fpath string, scale float64) error {
	if len(d.Rooms) == 0 {
		return errors.New("no rooms to render")
	}

	rooms := model2d.JoinedSolid{}
	mains := model2d.JoinedSolid{}
	min, max := d.Rooms[0].Min(), d.Rooms[0].Max()
	for _, r := range d.Rooms {
		lo, hi := r.Min(), r.Max()
		rect := model2d.NewRect(model2d.XY(lo.X, lo.Z), model2d.XY(hi.X, hi.Z))
		if r.MainRoom {
			mains = append(mains, rect)
		} else {
			rooms = append(rooms, rect)
		}
		min, max = min.Min(lo), max.Max(hi)
	}

	if scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", scale)
	}
	_, _, err := mapSize(max.X-min.X+2, max.Z-min.Z+2, scale)
	if err != nil {
		return err
	}

	halls := model2d.JoinedSolid{}
	for _, h := range d.Hallways {
		b := h.Bounds()
		halls = append(halls, model2d.NewRect(model2d.XY(b.MinVal.X, b.MinVal.Z), model2d.XY(b.MaxVal.X, b.MaxVal.Z)))
	}

	bg := model2d.NewRect(model2d.XY(min.X-1, min.Z-1), model2d.XY(max.X+1, max.Z+1))
	objs := []interface{}{bg}
	colors := []color.Color{color.Gray{Y: 0xff}}

	if len(rooms) > 0 {
		objs = append(objs, rooms)
		colors = append(colors, color.RGBA{B: 0xff, A: 0xff})
	}
	if len(mains) > 0 {
		objs = append(objs, mains)
		colors = append(colors, color.RGBA{R: 0xff, B: 0xff, A: 0xff})
	}
	if len(halls) > 0 {
		objs = append(objs, halls)
		colors = append(colors, color.Gray{Y: 0x60})
	}

	segments := []*model2d.Segment{}
	for _, s := range d.Sightlines {
		if s.Start == s.End {
			continue
		}
		segments = append(segments, &model2d.Segment{
			model2d.XY(s.Start.X, s.Start.Z),
			model2d.XY(s.End.X, s.End.Z),
		})
	}
	if len(segments) > 0 {
		objs = append(objs, model2d.NewMeshSegments(segments))
		colors = append(colors, color.RGBA{G: 0xc0, A: 0xff})
	}

	return model2d.RasterizeColor(fpath, objs, colors, scale)
}
