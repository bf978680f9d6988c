// Package region classifies probe points against plane regions using signed
// distance: interior, boundary or exterior relative to an ε-ball.
package region

import (
	"fmt"
	"math"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/geom"
)

// Kind identifies which variant a Shape holds.
type Kind int

const (
	// Disk is a closed disk of Radius around the origin.
	Disk Kind = iota
	// Square is a closed axis-aligned square of half-width Half.
	Square
	// Annulus is the closed ring between Inner and Outer.
	Annulus
	// Star is a star polygon with Points tips alternating between Outer and Inner.
	Star
)

func (k Kind) String() string {
	switch k {
	case Disk:
		return "disk"
	case Square:
		return "square"
	case Annulus:
		return "annulus"
	case Star:
		return "star"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Shape is a closed tagged variant over the supported regions, centered at
// the origin. Only the fields of its Kind are meaningful.
type Shape struct {
	Kind   Kind
	Radius float64
	Half   float64
	Inner  float64
	Outer  float64
	Points int
}

// NewDisk returns a disk of radius r.
func NewDisk(r float64) (Shape, error) {
	if !(r > 0) {
		return Shape{}, fmt.Errorf("%w: disk radius %v must be positive", common.ErrInvalidShape, r)
	}
	return Shape{Kind: Disk, Radius: r}, nil
}

// NewSquare returns a square of half-width h.
func NewSquare(h float64) (Shape, error) {
	if !(h > 0) {
		return Shape{}, fmt.Errorf("%w: square half-width %v must be positive", common.ErrInvalidShape, h)
	}
	return Shape{Kind: Square, Half: h}, nil
}

// NewAnnulus returns the ring between inner and outer.
func NewAnnulus(inner, outer float64) (Shape, error) {
	if !(inner > 0) || !(outer > inner) {
		return Shape{}, fmt.Errorf("%w: annulus needs 0 < inner < outer, got %v, %v",
			common.ErrInvalidShape, inner, outer)
	}
	return Shape{Kind: Annulus, Inner: inner, Outer: outer}, nil
}

// NewStar returns a star polygon with points tips.
func NewStar(points int, outer, inner float64) (Shape, error) {
	if points < 2 {
		return Shape{}, fmt.Errorf("%w: star needs at least 2 points, got %d", common.ErrInvalidShape, points)
	}
	if !(inner > 0) || !(outer > inner) {
		return Shape{}, fmt.Errorf("%w: star needs 0 < inner < outer, got %v, %v",
			common.ErrInvalidShape, inner, outer)
	}
	return Shape{Kind: Star, Points: points, Outer: outer, Inner: inner}, nil
}

// StarVertices returns the 2n vertices of a star, alternating outer and
// inner radius, starting straight up (angle 3π/2 in screen orientation).
func StarVertices(s Shape) []geom.Point {
	n := s.Points * 2
	pts := make([]geom.Point, 0, n)
	for i := 0; i < n; i++ {
		angle := math.Pi/2*3 + float64(i)*math.Pi/float64(s.Points)
		r := s.Outer
		if i%2 == 1 {
			r = s.Inner
		}
		pts = append(pts, geom.Polar(r, angle))
	}
	return pts
}

// Contains is the direct membership predicate of the closed region.
func Contains(s Shape, p geom.Point) bool {
	switch s.Kind {
	case Disk:
		return p.X*p.X+p.Y*p.Y <= s.Radius*s.Radius
	case Square:
		return math.Abs(p.X) <= s.Half && math.Abs(p.Y) <= s.Half
	case Annulus:
		d := p.Norm()
		return d >= s.Inner && d <= s.Outer
	case Star:
		return geom.PolygonContains(StarVertices(s), p)
	default:
		return false
	}
}

// SignedDistance is negative inside s, positive outside, and its magnitude is
// the distance to the nearest boundary point.
func SignedDistance(s Shape, p geom.Point) float64 {
	switch s.Kind {
	case Disk:
		return p.Norm() - s.Radius
	case Square:
		dx := math.Abs(p.X) - s.Half
		dy := math.Abs(p.Y) - s.Half
		outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
		inside := math.Min(math.Max(dx, dy), 0)
		return outside + inside
	case Annulus:
		d := p.Norm()
		if d >= s.Inner && d <= s.Outer {
			return -math.Min(d-s.Inner, s.Outer-d)
		}
		if d > s.Outer {
			return d - s.Outer
		}
		return s.Inner - d
	case Star:
		poly := StarVertices(s)
		d := geom.PolygonEdgeDistance(poly, p)
		if geom.PolygonContains(poly, p) {
			return -d
		}
		return d
	default:
		return math.Inf(1)
	}
}
