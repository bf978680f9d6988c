package walkthrough

import (
	"fmt"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/routes"
)

// Walkthrough identifiers.
const (
	HeineBorel                  = routes.HeineBorel
	ClosedAccumulationPoints    = routes.ClosedAccumulationPoints
	ClosedAccumulationPointsRev = routes.ClosedAccumulationPointsRev
	OpenCovering                = routes.OpenCovering
	CompactSet                  = routes.CompactSet
	OpenClosedSets              = routes.OpenClosedSets
)

// Info describes a walkthrough.
type Info struct {
	ID       string
	Title    string
	Subtitle string
	Theorem  string
	steps    func() []Step
}

var catalog = []Info{
	{
		ID:       HeineBorel,
		Title:    "Heine-Borel Theorem",
		Subtitle: "Proof by Contradiction using Interval Bisection",
		Theorem:  "Let S be a closed and bounded subset of ℝ, and let {Uᵢ}ᵢ∈I be an open covering of S. Then there exists a finite subcollection that still covers S.",
		steps:    heineBorelSteps,
	},
	{
		ID:       ClosedAccumulationPoints,
		Title:    "Closed Sets and Accumulation Points",
		Subtitle: "A closed set contains all of its accumulation points",
		Theorem:  "If A ⊆ ℝ is closed and a is an accumulation point of A, then a ∈ A.",
		steps:    closedAccumulationSteps,
	},
	{
		ID:       ClosedAccumulationPointsRev,
		Title:    "Closed Sets and Accumulation Points (Reverse)",
		Subtitle: "Reverse direction: accumulation points imply closed",
		Theorem:  "If A ⊆ ℝ contains all of its accumulation points, then A is closed.",
		steps:    closedAccumulationRevSteps,
	},
	{
		ID:       OpenCovering,
		Title:    "Open Covering",
		Subtitle: "A fundamental concept in topology and real analysis",
		Theorem:  "An open covering of A ⊆ ℝ is a collection of open sets {Uᵢ}ᵢ∈I such that A ⊆ ⋃ᵢ Uᵢ.",
		steps:    openCoveringSteps,
	},
	{
		ID:       CompactSet,
		Title:    "Compact Sets",
		Subtitle: "Open coverings, finite subcovers, and sequential compactness",
		Theorem:  "K ⊆ ℝ is compact if every open covering of K has a finite subcovering.",
		steps:    compactSetSteps,
	},
	{
		ID:       OpenClosedSets,
		Title:    "Open vs. Closed Sets",
		Subtitle: "Understanding topology in ℝ through visualization",
		Theorem:  "U is open if ∀x ∈ U ∃ε > 0 with (x-ε, x+ε) ⊆ U; F is closed if Fᶜ is open.",
		steps:    openClosedSteps,
	},
}

// All returns every walkthrough in display order.
func All() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a walkthrough by id.
func Lookup(id string) (Info, error) {
	for _, info := range catalog {
		if info.ID == id {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: walkthrough %q", common.ErrUnknownRoute, id)
}

// Steps returns a fresh copy of the walkthrough's steps.
func (i Info) Steps() []Step {
	if i.steps == nil {
		return nil
	}
	return i.steps()
}

// NewStepper returns a stepper owned by the caller, positioned at step 0.
func (i Info) NewStepper() *Stepper {
	return NewStepper(i.Steps())
}
