// Package walkthrough holds the step-by-step proof walkthroughs and the small
// diagram computations that accompany them.
package walkthrough

// Flag marks a diagram element that a step shows.
type Flag uint32

const (
	// ShowSet draws the set under discussion.
	ShowSet Flag = 1 << iota
	// ShowComplement shades the complement of the set.
	ShowComplement
	// ShowPoint marks the distinguished point a.
	ShowPoint
	// ShowNeighborhood draws the ε-neighborhood of the point.
	ShowNeighborhood
	// PointInSet draws the point as a member of the set.
	PointInSet
	// HighlightContradiction emphasises the contradiction.
	HighlightContradiction
	// ShowAccumulationTest draws the punctured-neighborhood test.
	ShowAccumulationTest
	// HighlightSuccess emphasises the conclusion.
	HighlightSuccess
	// ShowIntervals draws the nested bisection intervals.
	ShowIntervals
	// ShowLimit marks the limit point of the nested intervals.
	ShowLimit
	// ShowOpenSets draws the open sets of a cover.
	ShowOpenSets
	// ShowCover shades the union of the cover.
	ShowCover
	// ShowSequence draws sequence terms.
	ShowSequence
)

// Has reports whether f includes flag.
func (f Flag) Has(flag Flag) bool {
	return f&flag != 0
}

// Step is one static state of a walkthrough.
type Step struct {
	Title       string
	Description string
	Detail      string
	Flags       Flag
}

// Stepper navigates an ordered list of steps. Navigation past either end is
// clamped, never rejected.
type Stepper struct {
	steps []Step
	index int
}

// NewStepper starts at step 0.
func NewStepper(steps []Step) *Stepper {
	return &Stepper{steps: steps}
}

// Len is the number of steps.
func (s *Stepper) Len() int {
	return len(s.steps)
}

// Index is the current step index.
func (s *Stepper) Index() int {
	return s.index
}

// Current returns the current step. An empty stepper returns the zero Step.
func (s *Stepper) Current() Step {
	if len(s.steps) == 0 {
		return Step{}
	}
	return s.steps[s.index]
}

// Steps returns all steps.
func (s *Stepper) Steps() []Step {
	return s.steps
}

// Next advances one step; a no-op on the last step.
func (s *Stepper) Next() {
	s.Jump(s.index + 1)
}

// Prev goes back one step; a no-op on the first step.
func (s *Stepper) Prev() {
	s.Jump(s.index - 1)
}

// Jump moves to step i, clamped to the valid range.
func (s *Stepper) Jump(i int) {
	switch {
	case len(s.steps) == 0 || i < 0:
		s.index = 0
	case i >= len(s.steps):
		s.index = len(s.steps) - 1
	default:
		s.index = i
	}
}

// AtStart reports whether the first step is showing.
func (s *Stepper) AtStart() bool {
	return s.index == 0
}

// AtEnd reports whether the last step is showing.
func (s *Stepper) AtEnd() bool {
	return len(s.steps) == 0 || s.index == len(s.steps)-1
}
