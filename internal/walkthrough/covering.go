package walkthrough

import "sort"

// OpenSet is an open interval (Center-Radius, Center+Radius) on the line,
// drawn as a disk in the diagrams.
type OpenSet struct {
	Label  string
	Center float64
	Radius float64
}

// Left is the open left end.
func (u OpenSet) Left() float64 { return u.Center - u.Radius }

// Right is the open right end.
func (u OpenSet) Right() float64 { return u.Center + u.Radius }

// Contains reports whether x lies strictly inside u.
func (u OpenSet) Contains(x float64) bool {
	return x > u.Left() && x < u.Right()
}

// CoveringSegment is the segment S = [a, b] of the open-covering diagram.
var CoveringSegment = Interval{A: 50, B: 520}

// CoveringSets is the open covering of CoveringSegment.
func CoveringSets() []OpenSet {
	return []OpenSet{
		{Label: "U₁", Center: 80, Radius: 70},
		{Label: "U₂", Center: 160, Radius: 65},
		{Label: "U₃", Center: 240, Radius: 75},
		{Label: "U₄", Center: 330, Radius: 70},
		{Label: "U₅", Center: 410, Radius: 65},
		{Label: "U₆", Center: 490, Radius: 70},
	}
}

// Covers reports whether the union of sets contains every point of s.
func Covers(sets []OpenSet, s Interval) bool {
	_, ok := FiniteSubcover(sets, s)
	return ok
}

// FiniteSubcover picks a subcover of s greedily: starting at the left end,
// it repeatedly takes the set containing the current frontier that reaches
// furthest right. It returns the chosen indices in ascending order and
// whether they cover s.
func FiniteSubcover(sets []OpenSet, s Interval) ([]int, bool) {
	var chosen []int
	frontier := s.A
	for {
		best, reach := -1, frontier
		for i, u := range sets {
			if u.Contains(frontier) && u.Right() > reach {
				best, reach = i, u.Right()
			}
		}
		if best < 0 {
			sort.Ints(chosen)
			return chosen, false
		}
		chosen = append(chosen, best)
		if reach > s.B {
			sort.Ints(chosen)
			return chosen, true
		}
		// reach is not in the set that produced it, the next pass must
		// find another set containing it.
		frontier = reach
	}
}

func openCoveringSteps() []Step {
	return []Step{
		{
			Title:       "The Set S",
			Description: "Let's start with a set S (the thick blue line segment). This is the set we want to 'cover'.",
			Flags:       ShowSet,
		},
		{
			Title:       "Open Sets (Circles)",
			Description: "An open set in ℝ is like an interval without its endpoints. Here, we visualize them as circular regions. Each point inside is 'covered' by that open set.",
			Flags:       ShowSet | ShowOpenSets,
		},
		{
			Title:       "Open Covering",
			Description: "An open covering is a collection of open sets whose union contains all of S. Every point in S must be inside at least one open set.",
			Flags:       ShowSet | ShowOpenSets | ShowCover,
		},
		{
			Title:       "Why 'Open'?",
			Description: "The sets must be open (no boundary points included). This is crucial for many theorems in analysis!",
			Flags:       ShowSet | ShowOpenSets | ShowCover,
		},
	}
}
