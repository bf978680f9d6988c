// Package routes is the index of diagrams: the ids accepted by
// `viz open` and `viz export`, with their titles.
package routes

import (
	"fmt"

	"github.com/Veraticus/analysis-viz/internal/common"
)

// Kind groups routes by the widget that shows them.
type Kind int

const (
	// Walkthrough routes step through a proof.
	Walkthrough Kind = iota
	// Region is the interior/exterior/boundary classifier.
	Region
	// PointSet is the adherent/accumulation/isolated classifier.
	PointSet
	// EpsDelta is the ε–δ limit plot.
	EpsDelta
	// PowerConv compares pointwise and uniform convergence.
	PowerConv
	// Sequence covers the sequence and order diagrams.
	Sequence
)

// Route ids.
const (
	HeineBorel                  = "heine-borel"
	OpenClosedSets              = "open-closed-sets"
	OpenCovering                = "open-covering"
	OrderViz                    = "order-viz"
	SeqLimits                   = "seq-limits"
	SeqFromBelow                = "seq-from-below"
	Root2                       = "root2"
	ClosedAccumulationPoints    = "closed-accumulation-points"
	ClosedAccumulationPointsRev = "closed-accumulation-points-rev"
	CompactSet                  = "compact-set"
	IntExtBoundary              = "int-ext-boundary"
	AdherentAccumulation        = "adherent-accumulation-isolated"
	ConvFunctionToPoint         = "conv-function-to-point"
	PointwiseUniformConv        = "pointwise-uniform-conv"
)

// Route describes one diagram.
type Route struct {
	ID          string
	Title       string
	Description string
	Kind        Kind
}

var all = []Route{
	{HeineBorel, "Heine-Borel Theorem", "Proof by Contradiction using Interval Bisection", Walkthrough},
	{OpenClosedSets, "Open vs. Closed Sets", "Understanding topology in ℝ through visualization", Walkthrough},
	{OpenCovering, "Open Covering", "Visualizing open coverings and finite subcovers", Walkthrough},
	{OrderViz, "Order on Real Numbers", "Well-definedness, totality, and compatibility of order", Sequence},
	{SeqLimits, "Sequences and Limits", "Lemma 1.3.3: Sequences and their limits", Sequence},
	{SeqFromBelow, "Sequences from Below", "Understanding sequences approaching from below", Sequence},
	{Root2, "Trapping √2 Between Rationals", "Finding rational approximations to irrational numbers", Sequence},
	{ClosedAccumulationPoints, "Closed Sets and Accumulation Points", "Understanding closed sets through accumulation points", Walkthrough},
	{ClosedAccumulationPointsRev, "Closed Sets and Accumulation Points (Reverse)", "Reverse direction: accumulation points imply closed", Walkthrough},
	{CompactSet, "Compact Sets", "A visual guide to compactness: open coverings, finite subcovers, and sequential compactness", Walkthrough},
	{IntExtBoundary, "Interior, Exterior & Boundary", "Probe a point and watch its ε-ball decide where it lies", Region},
	{AdherentAccumulation, "Adherent, Accumulation & Isolated", "Classify points against a set with a shrinking ball", PointSet},
	{ConvFunctionToPoint, "Convergence of a function at a point", "Definition 3.4.1", EpsDelta},
	{PointwiseUniformConv, "Pointwise vs Uniform Convergence", "fₙ(x) = xⁿ converging to f(x) = 0", PowerConv},
}

// All returns every route in index order.
func All() []Route {
	out := make([]Route, len(all))
	copy(out, all)
	return out
}

// IDs returns every route id in index order.
func IDs() []string {
	ids := make([]string, len(all))
	for i, r := range all {
		ids[i] = r.ID
	}
	return ids
}

// Lookup finds a route by id.
func Lookup(id string) (Route, error) {
	for _, r := range all {
		if r.ID == id {
			return r, nil
		}
	}
	return Route{}, fmt.Errorf("%w: %q", common.ErrUnknownRoute, id)
}
