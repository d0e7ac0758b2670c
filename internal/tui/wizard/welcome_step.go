package wizard

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tapfolio/tapfolio/internal/tui/theme"
)

// WelcomeStep is the static first step: it shows which card is being edited
// and how to drive the wizard.
type WelcomeStep struct {
	uuid    string
	fresh   bool // true when the card was claimed just now
	dropped int  // malformed link entries purged on load
	width   int
	height  int
}

func NewWelcomeStep(uuid string, fresh bool, dropped int) *WelcomeStep {
	return &WelcomeStep{uuid: uuid, fresh: fresh, dropped: dropped}
}

func (s *WelcomeStep) Init() tea.Cmd { return nil }

func (s *WelcomeStep) Sync() {}

func (s *WelcomeStep) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (s *WelcomeStep) View() string {
	st := theme.Current().S()

	heading := "Let's set up your card."
	if !s.fresh {
		heading = "Let's update your card."
	}

	parts := []string{
		st.Value.Render(heading),
		"",
		st.Label.Render(fmt.Sprintf("Card %s", s.uuid)),
		"",
		st.Value.Render("The next steps walk through your contact details,\npictures, bio and links. Nothing is saved until you\nconfirm on the review screen."),
	}

	if s.dropped > 0 {
		parts = append(parts, "",
			st.Hint.Render(fmt.Sprintf("%d malformed link entries were removed from the saved card.", s.dropped)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *WelcomeStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *WelcomeStep) Focus() {}
func (s *WelcomeStep) Blur()  {}
