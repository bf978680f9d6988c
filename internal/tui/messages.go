package tui

// tickMsg drives the animation phase.
type tickMsg struct{}

// openRouteMsg switches from the index to a widget.
type openRouteMsg struct {
	id string
}

// errorMsg reports a failure to the status bar.
type errorMsg struct {
	err error
}
