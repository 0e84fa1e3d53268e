package spatial

import (
	"reflect"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func box(x, z, w, d float64) *model3d.Rect {
	return &model3d.Rect{
		MinVal: model3d.XYZ(x-w/2, 0, z-d/2),
		MaxVal: model3d.XYZ(x+w/2, 5, z+d/2),
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b *model3d.Rect
		want bool
	}{
		{"overlapping", box(0, 0, 4, 4), box(2, 0, 4, 4), true},
		{"touching faces", box(0, 0, 4, 4), box(4, 0, 4, 4), true},
		{"apart on x", box(0, 0, 4, 4), box(4.5, 0, 4, 4), false},
		{"apart on z", box(0, 0, 4, 4), box(0, 10, 4, 4), false},
		{"contained", box(0, 0, 10, 10), box(1, 1, 2, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFacing(t *testing.T) {
	a := box(0, 0, 4, 4)
	b := box(3, 20, 4, 4)
	if !Facing(a, b, true) {
		t.Error("expected x ranges to overlap")
	}
	if Facing(a, b, false) {
		t.Error("expected z ranges not to overlap")
	}
	// touching edges do not count as facing
	if Facing(a, box(4, 20, 4, 4), true) {
		t.Error("touching x ranges should not be facing")
	}

	ov := Overlap(a, b, true)
	if ov.Lo != 1 || ov.Hi != 2 {
		t.Errorf("Overlap() = %v, want [1, 2]", ov)
	}
}

func TestSegment(t *testing.T) {
	idx := New()
	idx.Add(0, box(0, 0, 4, 4))
	idx.Add(1, box(20, 0, 4, 4))
	idx.Add(2, box(40, 0, 4, 4))
	idx.Add(3, box(20, 30, 4, 4))

	tests := []struct {
		name string
		a, b model3d.Coord3D
		want []int
	}{
		{
			name: "centre to centre",
			a:    model3d.XYZ(0, 2.5, 0),
			b:    model3d.XYZ(40, 2.5, 0),
			want: []int{0, 1, 2},
		},
		{
			name: "stops short",
			a:    model3d.XYZ(0, 2.5, 0),
			b:    model3d.XYZ(15, 2.5, 0),
			want: []int{0},
		},
		{
			name: "between boxes",
			a:    model3d.XYZ(5, 2.5, 0),
			b:    model3d.XYZ(15, 2.5, 0),
			want: []int{},
		},
		{
			name: "degenerate",
			a:    model3d.XYZ(0, 2.5, 0),
			b:    model3d.XYZ(0, 2.5, 0),
			want: []int{},
		},
		{
			name: "along z",
			a:    model3d.XYZ(20, 2.5, 0),
			b:    model3d.XYZ(20, 2.5, 30),
			want: []int{1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sorted(idx.Segment(tt.a, tt.b))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapping(t *testing.T) {
	idx := New()
	idx.Add(5, box(0, 0, 4, 4))
	idx.Add(6, box(2, 0, 4, 4))
	idx.Add(7, box(10, 0, 4, 4))

	if got := idx.Overlapping(5); !reflect.DeepEqual(got, []int{6}) {
		t.Errorf("Overlapping(5) = %v, want [6]", got)
	}
	if got := idx.Overlapping(7); len(got) != 0 {
		t.Errorf("Overlapping(7) = %v, want none", got)
	}
	if got := idx.Overlapping(99); got != nil {
		t.Errorf("Overlapping(99) = %v, want nil", got)
	}
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}
}
