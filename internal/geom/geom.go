// Package geom provides plane primitives shared by the classifiers and renderers.
package geom

import "math"

// Point is a location in the plane, in display units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Norm is the Euclidean length of p.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist is the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Polar returns the point at angle theta and radius r around the origin.
func Polar(r, theta float64) Point {
	return Point{X: math.Cos(theta) * r, Y: math.Sin(theta) * r}
}

// SegmentDistance is the distance from p to the closed segment ab. The
// projection of p onto ab is clamped to the segment.
func SegmentDistance(p, a, b Point) float64 {
	d := b.Sub(a)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return Dist(p, a)
	}

	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Dist(p, a.Add(d.Scale(t)))
}

// PolygonContains reports whether p is inside poly using the even-odd rule.
func PolygonContains(poly []Point, p Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// PolygonEdgeDistance is the minimum distance from p to any edge of the
// closed polygon poly. An empty polygon is infinitely far away.
func PolygonEdgeDistance(poly []Point, p Point) float64 {
	minDist := math.Inf(1)
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		if d := SegmentDistance(p, poly[j], poly[i]); d < minDist {
			minDist = d
		}
	}
	return minDist
}

// Nearest returns the index of the point in pts closest to p and its
// distance. It returns -1 and +Inf for an empty slice.
func Nearest(pts []Point, p Point) (int, float64) {
	idx, best := -1, math.Inf(1)
	for i, q := range pts {
		if d := Dist(p, q); d < best {
			idx, best = i, d
		}
	}
	return idx, best
}
