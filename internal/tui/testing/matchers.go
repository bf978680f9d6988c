package testing

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StateMatcher collects view assertions and reports them together.
type StateMatcher struct {
	failures []string
}

// NewStateMatcher creates a new state matcher.
func NewStateMatcher() *StateMatcher {
	return &StateMatcher{}
}

// ViewContains asserts that the view, without ANSI codes, contains expected.
func (m *StateMatcher) ViewContains(view, expected string) *StateMatcher {
	if !strings.Contains(StripANSI(view), expected) {
		m.failures = append(m.failures, fmt.Sprintf("view does not contain '%s'", expected))
	}
	return m
}

// ViewNotContains asserts that the view does not contain unexpected.
func (m *StateMatcher) ViewNotContains(view, unexpected string) *StateMatcher {
	if strings.Contains(StripANSI(view), unexpected) {
		m.failures = append(m.failures, fmt.Sprintf("view contains unexpected '%s'", unexpected))
	}
	return m
}

// InOrder asserts that the strings appear in the view in order.
func (m *StateMatcher) InOrder(view string, expected ...string) *StateMatcher {
	if !ContainsInOrder(StripANSI(view), expected...) {
		m.failures = append(m.failures, fmt.Sprintf("view does not contain %q in order", expected))
	}
	return m
}

// MaxWidth asserts that no line of the view is wider than width cells.
func (m *StateMatcher) MaxWidth(view string, width int) *StateMatcher {
	for i, line := range strings.Split(StripANSI(view), "\n") {
		if w := lipgloss.Width(line); w > width {
			m.failures = append(m.failures, fmt.Sprintf("line %d is %d cells wide, limit %d", i, w, width))
		}
	}
	return m
}

// Check returns an error if any assertions failed.
func (m *StateMatcher) Check() error {
	if len(m.failures) > 0 {
		return fmt.Errorf("state assertions failed:\n%s", strings.Join(m.failures, "\n"))
	}
	return nil
}
