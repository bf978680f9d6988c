// Package pointset classifies a probe against a finite point set as adherent,
// accumulation or isolated, both by definition and for a chosen ε-ball.
package pointset

import (
	"math"

	"github.com/Veraticus/analysis-viz/internal/geom"
)

// PointSet is an ordered collection of points. Duplicates are allowed and
// order carries no meaning.
type PointSet []geom.Point

// Thresholds are the display-scale tolerances of the exact classification.
// Self decides whether the probe is itself a set point; Adherent stands in
// for "arbitrarily small ε".
type Thresholds struct {
	Self     float64
	Adherent float64
}

// DefaultThresholds are tuned for a surface whose smaller side is about 420
// display units.
func DefaultThresholds() Thresholds {
	return Thresholds{Self: 5, Adherent: 8}
}

// ScaledThresholds scales base by the ratio of the surface's smaller side to
// reference. A non-positive reference leaves base unchanged.
func ScaledThresholds(base Thresholds, width, height, reference float64) Thresholds {
	if reference <= 0 || width <= 0 || height <= 0 {
		return base
	}
	k := math.Min(width, height) / reference
	return Thresholds{Self: base.Self * k, Adherent: base.Adherent * k}
}

// Exact is the ε-independent classification of a probe.
type Exact struct {
	// Nearest is the index of the closest set point, -1 for an empty set.
	Nearest int
	// NearestOther is the index of the closest point that is not the probe
	// itself, -1 if there is none.
	NearestOther         int
	SelfDistance         float64
	NearestOtherDistance float64
	InSet                bool
	IsAdherent           bool
	IsAccumulation       bool
	IsIsolated           bool
}

// ClassifyExact applies the definitions of adherent, accumulation and
// isolated points to p, judging "arbitrarily close" with th.
func ClassifyExact(set PointSet, p geom.Point, th Thresholds) Exact {
	nearest, selfDist := geom.Nearest(set, p)
	inSet := selfDist < th.Self

	other, otherDist := -1, math.Inf(1)
	for i, q := range set {
		d := geom.Dist(p, q)
		if inSet && d < th.Self {
			continue
		}
		if d < otherDist {
			other, otherDist = i, d
		}
	}

	return Exact{
		Nearest:              nearest,
		NearestOther:         other,
		SelfDistance:         selfDist,
		NearestOtherDistance: otherDist,
		InSet:                inSet,
		IsAdherent:           inSet || selfDist < th.Adherent,
		IsAccumulation:       otherDist < th.Adherent,
		IsIsolated:           inSet && otherDist >= th.Adherent,
	}
}

// Approx is what a single ε-ball around the probe shows. It never overrides
// the Exact classification.
type Approx struct {
	InBall                 []int
	InSet                  bool
	HasSetPointInBall      bool
	HasOtherSetPointInBall bool
}

// ClassifyApprox inspects the open ball of radius eps around p.
func ClassifyApprox(set PointSet, p geom.Point, eps float64, th Thresholds) Approx {
	_, selfDist := geom.Nearest(set, p)
	a := Approx{InSet: selfDist < th.Self}

	for i, q := range set {
		d := geom.Dist(p, q)
		if d >= eps {
			continue
		}
		a.InBall = append(a.InBall, i)
		a.HasSetPointInBall = true
		if !(a.InSet && d < th.Self) {
			a.HasOtherSetPointInBall = true
		}
	}
	return a
}

// Label names the strongest property of an exact classification.
type Label int

const (
	// LabelNone means the probe is not even adherent.
	LabelNone Label = iota
	// LabelAdherent means adherent but neither isolated nor accumulation.
	LabelAdherent
	// LabelAccumulation means every ball meets another set point.
	LabelAccumulation
	// LabelIsolated means a set point with a ball meeting no other point.
	LabelIsolated
)

func (l Label) String() string {
	switch l {
	case LabelAdherent:
		return "Adherent Point"
	case LabelAccumulation:
		return "Accumulation Point"
	case LabelIsolated:
		return "Isolated Point"
	default:
		return "Not Adherent"
	}
}

// Label picks the colour-driving label: isolated, then accumulation, then
// adherent.
func (e Exact) Label() Label {
	switch {
	case e.IsIsolated:
		return LabelIsolated
	case e.IsAccumulation:
		return LabelAccumulation
	case e.IsAdherent:
		return LabelAdherent
	default:
		return LabelNone
	}
}
