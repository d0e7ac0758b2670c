package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tapfolio/tapfolio/internal/card"
	"github.com/tapfolio/tapfolio/internal/tui/theme"
)

// contactField describes one input row of the contact form.
type contactField struct {
	label       string
	placeholder string
	limit       int
	get         func(ci *card.ContactInfo) string
	set         func(ci *card.ContactInfo, v string)
}

var contactFields = []contactField{
	{
		label:       "Name",
		placeholder: "Jane Doe",
		limit:       card.MaxNameLen,
		get:         func(ci *card.ContactInfo) string { return ci.Name },
		set:         func(ci *card.ContactInfo, v string) { ci.Name = v },
	},
	{
		label:       "Job title",
		placeholder: "Software Engineer",
		limit:       card.MaxNameLen,
		get:         func(ci *card.ContactInfo) string { return ci.Title },
		set:         func(ci *card.ContactInfo, v string) { ci.Title = v },
	},
	{
		label:       "Company",
		placeholder: "Acme Corp",
		limit:       card.MaxNameLen,
		get:         func(ci *card.ContactInfo) string { return ci.Company },
		set:         func(ci *card.ContactInfo, v string) { ci.Company = v },
	},
	{
		label:       "Email",
		placeholder: "jane@example.com",
		limit:       0,
		get:         func(ci *card.ContactInfo) string { return ci.Email },
		set:         func(ci *card.ContactInfo, v string) { ci.Email = v },
	},
	{
		label:       "Phone",
		placeholder: "+15551234567",
		limit:       17,
		get:         func(ci *card.ContactInfo) string { return ci.Phone },
		set:         func(ci *card.ContactInfo, v string) { ci.Phone = v },
	},
	{
		label:       "Website",
		placeholder: "https://example.com",
		limit:       0,
		get:         func(ci *card.ContactInfo) string { return ci.Website },
		set:         func(ci *card.ContactInfo, v string) { ci.Website = v },
	},
	{
		label:       "Address",
		placeholder: "123 Main St, Springfield",
		limit:       card.MaxAddressLen,
		get:         func(ci *card.ContactInfo) string { return ci.Address },
		set:         func(ci *card.ContactInfo, v string) { ci.Address = v },
	},
}

// ContactStep edits the card's contact fields as a vertical form.
type ContactStep struct {
	draft   *card.Draft
	inputs  []textinput.Model
	focused int
	width   int
	height  int
}

// NewContactStep creates the contact form pre-filled from the draft.
func NewContactStep(draft *card.Draft) *ContactStep {
	inputs := make([]textinput.Model, len(contactFields))
	for i, f := range contactFields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		if f.limit > 0 {
			ti.CharLimit = f.limit
		}
		ti.SetValue(f.get(&draft.ContactInfo))
		inputs[i] = ti
	}
	inputs[0].Focus()

	return &ContactStep{
		draft:  draft,
		inputs: inputs,
	}
}

// Init initializes the contact step.
func (s *ContactStep) Init() tea.Cmd {
	return textinput.Blink
}

// Sync writes the current input values into the draft.
func (s *ContactStep) Sync() {
	for i, f := range contactFields {
		f.set(&s.draft.ContactInfo, strings.TrimSpace(s.inputs[i].Value()))
	}
}

// Update handles messages for the contact step.
func (s *ContactStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down", "enter":
			if s.focused >= len(s.inputs)-1 {
				s.Sync()
				return func() tea.Msg { return TabExitForwardMsg{} }
			}
			s.focusField(s.focused + 1)
			return nil
		case "shift+tab", "up":
			if s.focused <= 0 {
				s.Sync()
				return func() tea.Msg { return TabExitBackwardMsg{} }
			}
			s.focusField(s.focused - 1)
			return nil
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return cmd
}

func (s *ContactStep) focusField(i int) {
	s.inputs[s.focused].Blur()
	s.focused = i
	s.inputs[s.focused].Focus()
}

// View renders the contact form.
func (s *ContactStep) View() string {
	st := theme.Current().S()

	rows := make([]string, 0, len(s.inputs)+1)
	rows = append(rows, st.Value.Render("How can people reach you?"), "")
	for i, f := range contactFields {
		label := st.Label.Render(fmt.Sprintf("%-10s", f.label))
		if i == s.focused {
			label = st.Title.Render(fmt.Sprintf("%-10s", f.label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.inputs[i].View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetSize updates the size of the contact step.
func (s *ContactStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	for i := range s.inputs {
		s.inputs[i].SetWidth(width - 14)
	}
}

// Focus focuses the first input.
func (s *ContactStep) Focus() {
	s.focusField(0)
}

// FocusLast focuses the last input.
func (s *ContactStep) FocusLast() {
	s.focusField(len(s.inputs) - 1)
}

// Blur blurs all inputs.
func (s *ContactStep) Blur() {
	s.inputs[s.focused].Blur()
}
