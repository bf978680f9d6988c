package walkthrough

import (
	"math"

	"github.com/Veraticus/analysis-viz/internal/geom"
)

func compactSetSteps() []Step {
	return []Step{
		{
			Title:       "What is Compactness?",
			Description: "A set K ⊂ ℝ is compact when every open covering of K has a finite subcovering. Compactness turns infinitely many local facts into finitely many.",
			Detail:      "In ℝ this is the same as being closed and bounded (Heine-Borel).",
			Flags:       ShowSet,
		},
		{
			Title:       "Open Coverings",
			Description: "An open covering of K is a family {Uᵢ} of open sets with K ⊆ ⋃ Uᵢ. The family may be infinite.",
			Detail:      "Every point of K sits inside at least one Uᵢ.",
			Flags:       ShowSet | ShowOpenSets | ShowCover,
		},
		{
			Title:       "Finite Subcover",
			Description: "Compactness asks for finitely many Uᵢ₁, …, Uᵢₙ that still cover K. Redundant sets are discarded.",
			Detail:      "(0, 1) fails: the cover {(1/n, 1)} has no finite subcover.",
			Flags:       ShowSet | ShowOpenSets | ShowCover | HighlightSuccess,
		},
		{
			Title:       "Sequential Compactness",
			Description: "K is sequentially compact when every sequence in K has a subsequence converging to a point of K.",
			Detail:      "Bisect the region repeatedly and keep a piece with infinitely many terms (Bolzano-Weierstrass).",
			Flags:       ShowSet | ShowSequence | ShowLimit,
		},
		{
			Title:       "The Three Equivalences",
			Description: "For K ⊂ ℝ: K is compact ⟺ K is sequentially compact ⟺ K is closed and bounded.",
			Detail:      "The equivalence with closed and bounded is special to ℝⁿ.",
			Flags:       ShowSet | HighlightSuccess,
		},
		{
			Title:       "Examples & Non-Examples",
			Description: "[a, b], finite sets and {0} ∪ {1/n} are compact. (0, 1), [0, ∞) and ℚ ∩ [0, 1] are not.",
			Detail:      "Each non-example is either unbounded or misses one of its accumulation points.",
			Flags:       ShowSet | ShowComplement,
		},
	}
}

// Random supplies uniform samples in [0, 1).
type Random interface {
	Float64() float64
}

// SequenceTerm is a numbered term of a sequence in the plane.
type SequenceTerm struct {
	Point geom.Point
	Index int
}

// CompactSequence returns n terms wandering inside the unit square around
// (0.5, 0.5), jittered by rng. A nil rng gives the unjittered terms.
func CompactSequence(n int, rng Random) []SequenceTerm {
	terms := make([]SequenceTerm, 0, n)
	for i := 1; i <= n; i++ {
		x := 0.5 + 0.3*math.Cos(float64(i)*0.8)
		y := 0.5 + 0.3*math.Sin(float64(i)*0.7)
		if rng != nil {
			x += (rng.Float64() - 0.5) * 0.15
			y += (rng.Float64() - 0.5) * 0.15
		}
		terms = append(terms, SequenceTerm{Point: geom.Pt(x, y), Index: i})
	}
	return terms
}

// ConvergentSubsequence extracts a subsequence by repeated quadrisection of
// the bounding box: at each level it keeps the quadrant holding the most
// later terms and takes the first of them. The returned indices into terms
// are strictly increasing.
func ConvergentSubsequence(terms []SequenceTerm) []int {
	if len(terms) == 0 {
		return nil
	}

	lo, hi := terms[0].Point, terms[0].Point
	for _, t := range terms {
		lo = geom.Pt(math.Min(lo.X, t.Point.X), math.Min(lo.Y, t.Point.Y))
		hi = geom.Pt(math.Max(hi.X, t.Point.X), math.Max(hi.Y, t.Point.Y))
	}

	remaining := make([]int, len(terms))
	for i := range remaining {
		remaining[i] = i
	}

	var picked []int
	for len(remaining) > 0 {
		first := remaining[0]
		picked = append(picked, first)

		mid := geom.Pt((lo.X+hi.X)/2, (lo.Y+hi.Y)/2)
		var quads [4][]int
		for _, i := range remaining[1:] {
			p := terms[i].Point
			q := 0
			if p.X > mid.X {
				q |= 1
			}
			if p.Y > mid.Y {
				q |= 2
			}
			quads[q] = append(quads[q], i)
		}

		best := 0
		for q := 1; q < 4; q++ {
			if len(quads[q]) > len(quads[best]) {
				best = q
			}
		}
		if best&1 == 1 {
			lo.X = mid.X
		} else {
			hi.X = mid.X
		}
		if best&2 == 2 {
			lo.Y = mid.Y
		} else {
			hi.Y = mid.Y
		}
		remaining = quads[best]
	}
	return picked
}
