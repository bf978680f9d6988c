package sequence

import "math"

// OrderTerms is the length of the order-view sequences.
const OrderTerms = 20

// Generate returns limit + offset/k + osc·sin(2k)/k for k = 1..OrderTerms.
func Generate(limit, offset, osc float64) []float64 {
	seq := make([]float64, OrderTerms)
	for k := 1; k <= OrderTerms; k++ {
		fk := float64(k)
		seq[k-1] = limit + offset/fk + osc*math.Sin(2*fk)/fk
	}
	return seq
}

// Pair is two sequences drawn together.
type Pair struct {
	Name        string
	First       []float64
	Second      []float64
	FirstLabel  string
	SecondLabel string
}

// EquivalentPairs are two pairs of equivalent sequences, with limits 1.5
// and 0.8.
func EquivalentPairs() (a, b Pair) {
	a = Pair{
		Name:        "(aₖ) ~ (aₖ')",
		First:       Generate(1.5, 0.5, 0.3),
		Second:      Generate(1.5, -0.3, 0.2),
		FirstLabel:  "aₖ",
		SecondLabel: "aₖ'",
	}
	b = Pair{
		Name:        "(bₖ) ~ (bₖ')",
		First:       Generate(0.8, 0.4, 0.2),
		Second:      Generate(0.8, -0.2, 0.15),
		FirstLabel:  "bₖ",
		SecondLabel: "bₖ'",
	}
	return a, b
}

// SeparatedPair is a pair of non-equivalent sequences, with limits 1.2 and
// 0.7.
func SeparatedPair() Pair {
	return Pair{
		Name:        "(pₖ) ≁ (qₖ)",
		First:       Generate(1.2, 0.3, 0.1),
		Second:      Generate(0.7, 0.2, 0.1),
		FirstLabel:  "pₖ",
		SecondLabel: "qₖ",
	}
}

// Difference returns a[k]-b[k] over the common length.
func Difference(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := range n {
		out[i] = a[i] - b[i]
	}
	return out
}

// EventuallyAbove returns the 1-based index N from which every term is at
// least margin, and whether such an N exists within the sequence.
func EventuallyAbove(seq []float64, margin float64) (int, bool) {
	n := IndexAbove(seq, margin)
	return n, n <= len(seq)
}

// EventuallyPositive reports whether the sequence is eventually bounded
// below by margin > 0.
func EventuallyPositive(seq []float64, margin float64) bool {
	if margin <= 0 {
		return false
	}
	_, ok := EventuallyAbove(seq, margin)
	return ok
}

// EventuallyLess reports whether a[k] < b[k] from some index on.
func EventuallyLess(a, b []float64) bool {
	_, ok := EventuallyAbove(Difference(b, a), math.SmallestNonzeroFloat64)
	return ok
}

// OrderView is one tab of the order diagram.
type OrderView struct {
	Key   string
	Title string
	Text  string
}

// OrderViews lists the tabs in display order.
func OrderViews() []OrderView {
	return []OrderView{
		{Key: "wellDefined", Title: "Well-Definedness of Order", Text: "If (aₖ) ~ (aₖ') and (bₖ) ~ (bₖ'), and aₖ < bₖ eventually, then aₖ' < bₖ' eventually."},
		{Key: "totality", Title: "Totality of Order", Text: "For distinct a, b ∈ ℝ, either a < b or a > b. The key is that non-equivalent Cauchy sequences eventually separate."},
		{Key: "difference", Title: "The Difference Sequence", Text: "For non-equivalent sequences, (aₖ - bₖ) is eventually bounded away from 0 and has constant sign."},
		{Key: "compatibility", Title: "Compatibility with Operations", Text: "a < b implies a+c < b+c, and 0 < a, 0 < b imply 0 < ab."},
	}
}
