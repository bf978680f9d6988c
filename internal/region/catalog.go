package region

import (
	"fmt"

	"github.com/Veraticus/analysis-viz/internal/common"
)

// Example is a named shape offered by the interior/boundary/exterior widget.
type Example struct {
	Key   string
	Name  string
	Label string
	Shape Shape
}

// Examples returns the shapes in display order.
func Examples() []Example {
	return []Example{
		{Key: "disk", Name: "Disk", Label: "Closed Disk", Shape: Shape{Kind: Disk, Radius: 140}},
		{Key: "square", Name: "Square", Label: "Closed Square", Shape: Shape{Kind: Square, Half: 130}},
		{Key: "annulus", Name: "Ring", Label: "Annulus", Shape: Shape{Kind: Annulus, Inner: 60, Outer: 150}},
		{Key: "star", Name: "Star", Label: "Star Shape", Shape: Shape{Kind: Star, Points: 5, Outer: 150, Inner: 65}},
	}
}

// Lookup finds an example by key.
func Lookup(key string) (Example, error) {
	for _, ex := range Examples() {
		if ex.Key == key {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %q", common.ErrUnknownShape, key)
}

// Explanation describes what the ε-ball shows for a classification.
func Explanation(c Classification, eps float64) string {
	switch c {
	case Interior:
		return fmt.Sprintf("B(x, %g) ⊆ S — the entire ε-ball lies within the set.", eps)
	case Boundary:
		return fmt.Sprintf("B(x, %g) intersects both S and Sᶜ — no ε-ball fits entirely in either.", eps)
	case Exterior:
		return fmt.Sprintf("B(x, %g) ⊆ Sᶜ — the entire ε-ball lies outside the set.", eps)
	default:
		return ""
	}
}
