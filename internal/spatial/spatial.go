package spatial

import (
	"sort"

	"github.com/golang/geo/r1"
	"github.com/unixpickle/model3d/model3d"
	"github.com/zyedidia/generic/mapset"
)

// Index is a brute force lookup over a set of axis aligned boxes.
// At the scale of tens of rooms testing every box is plenty fast.
type Index struct {
	ids   []int
	boxes []*model3d.Rect
}

// New returns an empty Index
func New() *Index {
	return &Index{ids: []int{}, boxes: []*model3d.Rect{}}
}

// Add inserts a box under the given id. Ids are expected to be unique.
func (i *Index) Add(id int, box *model3d.Rect) {
	i.ids = append(i.ids, id)
	i.boxes = append(i.boxes, box)
}

// Len returns the number of boxes in the index
func (i *Index) Len() int {
	return len(i.boxes)
}

// Overlapping returns the ids of every box that intersects the box
// stored under id (excluding itself) in insertion order.
func (i *Index) Overlapping(id int) []int {
	var box *model3d.Rect
	for n, bid := range i.ids {
		if bid == id {
			box = i.boxes[n]
			break
		}
	}
	if box == nil {
		return nil
	}

	found := []int{}
	for n, other := range i.boxes {
		if i.ids[n] == id {
			continue
		}
		if Intersects(box, other) {
			found = append(found, i.ids[n])
		}
	}
	return found
}

// Segment returns the ids of every box the segment a -> b passes through.
// A zero length segment intersects nothing.
func (i *Index) Segment(a, b model3d.Coord3D) mapset.Set[int] {
	hits := mapset.New[int]()
	if a == b {
		return hits
	}

	ray := &model3d.Ray{Origin: a, Direction: b.Sub(a)}
	for n, box := range i.boxes {
		if box.Contains(a) {
			hits.Put(i.ids[n])
			continue
		}
		// Direction is the full segment so the segment ends at scale 1
		if rc, ok := box.FirstRayCollision(ray); ok && rc.Scale <= 1 {
			hits.Put(i.ids[n])
		}
	}

	return hits
}

// Sorted returns the members of s in ascending order
func Sorted(s mapset.Set[int]) []int {
	out := make([]int, 0, s.Size())
	s.Each(func(id int) {
		out = append(out, id)
	})
	sort.Ints(out)
	return out
}

// Intersects reports whether two boxes share any point; touching faces count.
func Intersects(a, b *model3d.Rect) bool {
	return axisX(a).Intersects(axisX(b)) &&
		axisY(a).Intersects(axisY(b)) &&
		axisZ(a).Intersects(axisZ(b))
}

// Facing reports whether the interiors of two boxes overlap when projected
// on to the X axis (wantX) or the Z axis.
func Facing(a, b *model3d.Rect, wantX bool) bool {
	if wantX {
		return axisX(a).InteriorIntersects(axisX(b))
	}
	return axisZ(a).InteriorIntersects(axisZ(b))
}

// Overlap returns the shared interval of two boxes on the X axis (wantX) or Z axis
func Overlap(a, b *model3d.Rect, wantX bool) r1.Interval {
	if wantX {
		return axisX(a).Intersection(axisX(b))
	}
	return axisZ(a).Intersection(axisZ(b))
}

func axisX(r *model3d.Rect) r1.Interval {
	return r1.Interval{Lo: r.MinVal.X, Hi: r.MaxVal.X}
}

func axisY(r *model3d.Rect) r1.Interval {
	return r1.Interval{Lo: r.MinVal.Y, Hi: r.MaxVal.Y}
}

func axisZ(r *model3d.Rect) r1.Interval {
	return r1.Interval{Lo: r.MinVal.Z, Hi: r.MaxVal.Z}
}
