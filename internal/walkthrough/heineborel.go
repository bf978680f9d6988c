package walkthrough

// Interval is a closed interval [A, B] produced at some bisection level.
type Interval struct {
	Note  string
	A, B  float64
	Level int
}

// Length is B-A.
func (iv Interval) Length() float64 {
	return iv.B - iv.A
}

// Contains reports whether x lies in [A, B].
func (iv Interval) Contains(x float64) bool {
	return x >= iv.A && x <= iv.B
}

// Half selects which half survives a bisection.
type Half int

const (
	// LeftHalf keeps [a, m].
	LeftHalf Half = iota
	// RightHalf keeps [m, b].
	RightHalf
)

// Bisect halves [a, b] once per choice, returning the starting interval
// followed by one interval per level.
func Bisect(a, b float64, choices []Half) []Interval {
	out := make([]Interval, 0, len(choices)+1)
	out = append(out, Interval{A: a, B: b})
	for i, c := range choices {
		m := (a + b) / 2
		note := "Left half cannot be finitely covered"
		if c == RightHalf {
			a = m
			note = "Right half cannot be finitely covered"
		} else {
			b = m
		}
		out = append(out, Interval{A: a, B: b, Level: i + 1, Note: note})
	}
	return out
}

// HeineBorelIntervals are the nested intervals drawn by the bisection proof.
func HeineBorelIntervals() []Interval {
	return Bisect(0, 1, []Half{RightHalf, LeftHalf, RightHalf, LeftHalf})
}

// HeineBorelLimit is the point the drawn intervals close in on.
const HeineBorelLimit = 0.656

// VisibleIntervals returns the intervals drawn at step index.
func VisibleIntervals(all []Interval, step int) []Interval {
	n := step + 1
	if n > len(all) {
		n = len(all)
	}
	if n < 0 {
		n = 0
	}
	return all[:n]
}

func heineBorelSteps() []Step {
	base := ShowSet | ShowIntervals
	return []Step{
		{
			Title:       "Setup: Assume for Contradiction",
			Description: "Suppose S ⊂ [a₀, b₀] is closed and bounded, but CANNOT be covered by finitely many open sets from our covering {Uᵢ}.",
			Detail:      "We'll derive a contradiction by constructing a nested sequence of intervals.",
			Flags:       base,
		},
		{
			Title:       "Step 1: Bisect the Interval",
			Description: "Cut [a₀, b₀] in half. At least ONE half cannot be finitely covered (otherwise the whole interval could be!).",
			Detail:      "Call this 'bad' half [a₁, b₁]. Its length is (b₀-a₀)/2.",
			Flags:       base,
		},
		{
			Title:       "Step 2: Keep Bisecting",
			Description: "Repeat! Bisect [a₁, b₁]. One half cannot be finitely covered — call it [a₂, b₂].",
			Detail:      "Length is now (b₀-a₀)/4. We keep going...",
			Flags:       base,
		},
		{
			Title:       "Step 3: Nested Intervals",
			Description: "We get a nested sequence: [a₀,b₀] ⊃ [a₁,b₁] ⊃ [a₂,b₂] ⊃ ...",
			Detail:      "Each [aⱼ, bⱼ] cannot be finitely covered, and bⱼ - aⱼ = (b₀-a₀)/2ʲ → 0",
			Flags:       base,
		},
		{
			Title:       "Step 4: Find the Limit Point",
			Description: "Pick cₖ ∈ S ∩ [aₖ, bₖ] for each k. Since intervals shrink to zero width, (cₖ) is Cauchy!",
			Detail:      "So cₖ → c for some c ∈ ℝ. Since S is closed, c ∈ S.",
			Flags:       base | ShowLimit,
		},
		{
			Title:       "Step 5: The Contradiction",
			Description: "Since c ∈ S, some open set Uᵢ₀ contains c. So there's an ε-ball around c inside Uᵢ₀.",
			Detail:      "But for large j, the entire interval [aⱼ, bⱼ] fits inside this ε-ball!",
			Flags:       base | ShowLimit | ShowNeighborhood | HighlightContradiction,
		},
		{
			Title:       "Step 6: Conclusion",
			Description: "This means [aⱼ, bⱼ] ∩ S is covered by just ONE open set Uᵢ₀ — a finite cover!",
			Detail:      "CONTRADICTION! So our assumption was wrong. S CAN be finitely covered. ∎",
			Flags:       base | ShowLimit | ShowNeighborhood | HighlightSuccess,
		},
	}
}
