package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	FieldError lipgloss.Style
	Success    lipgloss.Style

	// List row states
	Selected lipgloss.Style
	Grabbed  lipgloss.Style

	// Step indicator states
	StepActive  lipgloss.Style
	StepDone    lipgloss.Style
	StepPending lipgloss.Style

	Border lipgloss.Style
	Hint   lipgloss.Style
}
