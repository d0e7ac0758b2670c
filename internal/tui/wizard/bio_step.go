package wizard

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"

	"github.com/tapfolio/tapfolio/internal/card"
	"github.com/tapfolio/tapfolio/internal/tui/theme"
)

// BioStep edits the free-form bio in a textarea, with an external $EDITOR
// escape hatch for longer text.
type BioStep struct {
	draft    *card.Draft
	textarea textarea.Model
	tmpFile  string
	width    int
	height   int
}

// NewBioStep creates the bio textarea pre-filled from the draft.
func NewBioStep(draft *card.Draft) *BioStep {
	ta := textarea.New()
	ta.Placeholder = "A few sentences about who you are and what you do..."
	ta.CharLimit = card.MaxBioLen
	ta.SetHeight(8)
	ta.SetWidth(60)
	ta.SetValue(draft.Bio)
	ta.Focus()

	return &BioStep{
		draft:    draft,
		textarea: ta,
	}
}

// Init initializes the bio step.
func (s *BioStep) Init() tea.Cmd {
	return textarea.Blink
}

// Sync writes the textarea content into the draft.
func (s *BioStep) Sync() {
	s.draft.Bio = strings.TrimSpace(s.textarea.Value())
}

// Update handles messages for the bio step.
func (s *BioStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+e":
			if os.Getenv("EDITOR") != "" {
				return s.openEditor()
			}
			return nil
		case "tab":
			s.Sync()
			return func() tea.Msg { return TabExitForwardMsg{} }
		case "shift+tab":
			s.Sync()
			return func() tea.Msg { return TabExitBackwardMsg{} }
		}

	case BioEditedMsg:
		content := strings.TrimSpace(msg.Content)
		if utf8.RuneCountInString(content) > card.MaxBioLen {
			content = string([]rune(content)[:card.MaxBioLen])
		}
		s.textarea.SetValue(content)
		s.Sync()
		if s.tmpFile != "" {
			_ = os.Remove(s.tmpFile)
			s.tmpFile = ""
		}
		return nil
	}

	var cmd tea.Cmd
	s.textarea, cmd = s.textarea.Update(msg)
	return cmd
}

// openEditor launches the user's $EDITOR with the current bio content.
func (s *BioStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "tapfolio_bio_*.md")
	if err != nil {
		return nil // Silently fail - editor not available
	}

	if _, err := tmpfile.WriteString(s.textarea.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()

	s.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("tapfolio", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return nil
		}
		content, err := os.ReadFile(tmpfile.Name())
		if err != nil {
			return nil
		}
		return BioEditedMsg{Content: string(content)}
	})
}

// View renders the bio step.
func (s *BioStep) View() string {
	st := theme.Current().S()

	remaining := card.MaxBioLen - utf8.RuneCountInString(s.textarea.Value())
	counter := st.Hint.Render(fmt.Sprintf("%d characters left", remaining))

	hint := "tab to continue"
	if os.Getenv("EDITOR") != "" {
		hint = "ctrl+e to open $EDITOR • tab to continue"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		st.Value.Render("Tell people a bit about yourself:"),
		"",
		s.textarea.View(),
		counter,
		"",
		st.Hint.Render(hint),
	)
}

// SetSize updates the size of the bio step.
func (s *BioStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.textarea.SetWidth(width - 2)

	h := height - 8
	if h < 5 {
		h = 5
	}
	if h > 12 {
		h = 12
	}
	s.textarea.SetHeight(h)
}

// Focus focuses the textarea.
func (s *BioStep) Focus() {
	s.textarea.Focus()
}

// Blur blurs the textarea.
func (s *BioStep) Blur() {
	s.textarea.Blur()
}
