package line

import (
	"image"
)

// Walk calls fn for every pixel on the line a -> b (inclusive of both ends)
// using the integer form of Bresenham's algorithm.
func Walk(a, b image.Point, fn func(image.Point)) {
	dx := absint(b.X - a.X)
	dy := -absint(b.Y - a.Y)

	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	err := dx + dy
	p := a
	for {
		fn(p)
		if p == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

// PointsBetween returns all points on a line between a,b
func PointsBetween(a, b image.Point) []image.Point {
	pts := []image.Point{}
	Walk(a, b, func(p image.Point) {
		pts = append(pts, p)
	})
	return pts
}

func absint(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
