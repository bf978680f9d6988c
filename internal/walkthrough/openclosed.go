package walkthrough

import (
	"fmt"
	"math"
)

// RealInterval is an interval of ℝ; infinite ends are ±Inf and never closed.
type RealInterval struct {
	A, B        float64
	LeftClosed  bool
	RightClosed bool
}

// Notation renders the interval in bracket notation.
func (r RealInterval) Notation() string {
	left, right := "(", ")"
	if r.LeftClosed && !math.IsInf(r.A, -1) {
		left = "["
	}
	if r.RightClosed && !math.IsInf(r.B, 1) {
		right = "]"
	}
	return fmt.Sprintf("%s%s, %s%s", left, endpoint(r.A), endpoint(r.B), right)
}

func endpoint(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-∞"
	case math.IsInf(v, 1):
		return "∞"
	default:
		return fmt.Sprintf("%g", v)
	}
}

// IsOpen reports whether every point has a neighborhood inside the interval,
// that is no finite endpoint is included.
func (r RealInterval) IsOpen() bool {
	return !(r.LeftClosed && !math.IsInf(r.A, -1)) && !(r.RightClosed && !math.IsInf(r.B, 1))
}

// IsClosed reports whether the interval contains all its accumulation
// points, that is every finite endpoint is included.
func (r RealInterval) IsClosed() bool {
	leftOK := math.IsInf(r.A, -1) || r.LeftClosed
	rightOK := math.IsInf(r.B, 1) || r.RightClosed
	return leftOK && rightOK
}

// SetExample is one entry of the open-versus-closed comparison.
type SetExample struct {
	Notation    string
	Description string
}

// SetGroup is a family of examples shown side by side.
type SetGroup struct {
	Key     string
	Name    string
	Open    SetExample
	Closed  SetExample
	Neither SetExample
}

// OpenClosedGroups lists the comparison groups in display order.
func OpenClosedGroups() []SetGroup {
	return []SetGroup{
		{
			Key:     "interval",
			Name:    "Intervals",
			Open:    SetExample{Notation: "(a, b)", Description: "Open interval - excludes endpoints"},
			Closed:  SetExample{Notation: "[a, b]", Description: "Closed interval - includes endpoints"},
			Neither: SetExample{Notation: "[a, b)", Description: "Half-open - neither open nor closed"},
		},
		{
			Key:     "special",
			Name:    "Special Cases",
			Open:    SetExample{Notation: "ℝ, ∅", Description: "The entire real line and empty set"},
			Closed:  SetExample{Notation: "ℝ, ∅", Description: "Also closed! (clopen sets)"},
			Neither: SetExample{Notation: "(0, 1] ∪ (2, 3)", Description: "Mixed unions"},
		},
		{
			Key:     "discrete",
			Name:    "Discrete Sets",
			Open:    SetExample{Notation: "∅", Description: "No isolated points form open sets"},
			Closed:  SetExample{Notation: "ℤ, {5}", Description: "All discrete sets are closed"},
			Neither: SetExample{Notation: "—", Description: "Not applicable"},
		},
	}
}

func openClosedSteps() []Step {
	groups := OpenClosedGroups()
	steps := make([]Step, 0, len(groups))
	for _, g := range groups {
		steps = append(steps, Step{
			Title: g.Name,
			Description: fmt.Sprintf("Open: %s (%s). Closed: %s (%s). Neither: %s (%s).",
				g.Open.Notation, g.Open.Description,
				g.Closed.Notation, g.Closed.Description,
				g.Neither.Notation, g.Neither.Description),
			Detail: "A set is open when each point has an ε-neighborhood inside it, closed when its complement is open.",
			Flags:  ShowSet | ShowComplement,
		})
	}
	return steps
}
