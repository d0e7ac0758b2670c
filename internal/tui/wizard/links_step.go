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

// linkStepMode determines whether the editor is browsing rows or editing one.
type linkStepMode int

const (
	modeBrowse linkStepMode = iota
	modeEdit
)

// LinkStep is the ordered link collection editor. One instance handles the
// social list (platform + URL, capped) and another the other-links list
// (title + URL, unbounded); everything else is shared.
type LinkStep struct {
	draft *card.Draft
	kind  card.ListKind

	cursor int
	drag   card.DragState
	mode   linkStepMode

	// Edit form state. editIndex is -1 while adding a new entry.
	editIndex int
	inputs    [2]textinput.Model
	focused   int

	width  int
	height int
}

// NewLinkStep creates an editor over the draft list of the given kind.
func NewLinkStep(draft *card.Draft, kind card.ListKind) *LinkStep {
	s := &LinkStep{
		draft:     draft,
		kind:      kind,
		editIndex: -1,
	}

	first := textinput.New()
	second := textinput.New()
	if kind == card.ListSocial {
		first.Placeholder = "github, linkedin, x..."
		first.CharLimit = card.MaxPlatformLen
	} else {
		first.Placeholder = "My blog"
		first.CharLimit = card.MaxNameLen
	}
	second.Placeholder = "https://..."
	s.inputs[0] = first
	s.inputs[1] = second

	return s
}

// Init initializes the link step.
func (s *LinkStep) Init() tea.Cmd {
	return nil
}

// Sync is a no-op: the editor mutates the draft lists directly.
func (s *LinkStep) Sync() {}

func (s *LinkStep) length() int {
	if s.kind == card.ListSocial {
		return len(s.draft.SocialLinks)
	}
	return len(s.draft.OtherLinks)
}

func (s *LinkStep) row(i int) (first, second string) {
	if s.kind == card.ListSocial {
		l := s.draft.SocialLinks[i]
		return card.PlatformLabel(l.Platform), l.URL
	}
	l := s.draft.OtherLinks[i]
	return l.Title, l.URL
}

// Update handles messages for the link step.
func (s *LinkStep) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.mode == modeEdit {
			var cmd tea.Cmd
			s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
			return cmd
		}
		return nil
	}

	if s.mode == modeEdit {
		return s.updateEdit(key)
	}
	return s.updateBrowse(key)
}

func (s *LinkStep) updateBrowse(key tea.KeyPressMsg) tea.Cmd {
	n := s.length()

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return nil

	case "down", "j":
		if s.cursor < n-1 {
			s.cursor++
		}
		return nil

	case "shift+up":
		if n > 1 && s.cursor > 0 {
			s.move(s.cursor, s.cursor-1)
			s.cursor--
		}
		return nil

	case "shift+down":
		if n > 1 && s.cursor < n-1 {
			s.move(s.cursor, s.cursor+1)
			s.cursor++
		}
		return nil

	case "space", "g":
		if s.drag.Active() {
			return s.drop()
		}
		if n > 0 {
			s.drag.Begin(s.cursor, s.kind)
		}
		return nil

	case "enter":
		if s.drag.Active() {
			return s.drop()
		}
		if n > 0 {
			s.openEdit(s.cursor)
		}
		return nil

	case "a", "n":
		if s.kind == card.ListSocial && !card.CanAddSocial(s.draft.SocialLinks) {
			return showToast("You can add a maximum of 5 social links.")
		}
		s.openEdit(-1)
		return nil

	case "d", "x":
		if n == 0 {
			return nil
		}
		s.drag.Clear()
		s.remove(s.cursor)
		if s.cursor >= s.length() && s.cursor > 0 {
			s.cursor--
		}
		return nil

	case "esc":
		if s.drag.Active() {
			s.drag.Clear()
			return nil
		}
		// Fall through to the wizard's back handling via toast-free no-op;
		// browse esc without a drag is handled by the controller.
		return nil

	case "tab":
		if !s.drag.Active() {
			return func() tea.Msg { return TabExitForwardMsg{} }
		}
		return nil

	case "shift+tab":
		if !s.drag.Active() {
			return func() tea.Msg { return TabExitBackwardMsg{} }
		}
		return nil
	}

	return nil
}

func (s *LinkStep) updateEdit(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		s.closeEdit()
		return nil

	case "tab", "down":
		s.focusInput((s.focused + 1) % 2)
		return nil

	case "shift+tab", "up":
		s.focusInput((s.focused + 1) % 2)
		return nil

	case "enter":
		if s.focused == 0 {
			s.focusInput(1)
			return nil
		}
		return s.saveEdit()
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(key)
	return cmd
}

func (s *LinkStep) openEdit(index int) {
	s.mode = modeEdit
	s.editIndex = index
	s.drag.Clear()

	if index >= 0 {
		if s.kind == card.ListSocial {
			l := s.draft.SocialLinks[index]
			s.inputs[0].SetValue(l.Platform)
			s.inputs[1].SetValue(l.URL)
		} else {
			l := s.draft.OtherLinks[index]
			s.inputs[0].SetValue(l.Title)
			s.inputs[1].SetValue(l.URL)
		}
	} else {
		s.inputs[0].SetValue("")
		s.inputs[1].SetValue("")
	}
	s.focusInput(0)
}

func (s *LinkStep) closeEdit() {
	s.mode = modeBrowse
	s.editIndex = -1
	s.inputs[0].Blur()
	s.inputs[1].Blur()
}

func (s *LinkStep) saveEdit() tea.Cmd {
	first := strings.TrimSpace(s.inputs[0].Value())
	second := strings.TrimSpace(s.inputs[1].Value())

	if first == "" && second == "" {
		// Nothing entered: treat as cancel
		s.closeEdit()
		return nil
	}

	if s.kind == card.ListSocial {
		entry := card.SocialLink{Platform: strings.ToLower(first), URL: second}
		if s.editIndex >= 0 {
			s.draft.SocialLinks[s.editIndex] = entry
		} else {
			s.draft.SocialLinks = append(s.draft.SocialLinks, entry)
			s.cursor = len(s.draft.SocialLinks) - 1
		}
	} else {
		entry := card.OtherLink{Title: first, URL: second}
		if s.editIndex >= 0 {
			s.draft.OtherLinks[s.editIndex] = entry
		} else {
			s.draft.OtherLinks = append(s.draft.OtherLinks, entry)
			s.cursor = len(s.draft.OtherLinks) - 1
		}
	}

	s.closeEdit()
	return nil
}

func (s *LinkStep) move(from, to int) {
	if s.kind == card.ListSocial {
		s.draft.SocialLinks = card.MoveLink(s.draft.SocialLinks, from, to)
	} else {
		s.draft.OtherLinks = card.MoveLink(s.draft.OtherLinks, from, to)
	}
}

func (s *LinkStep) remove(i int) {
	if s.kind == card.ListSocial {
		s.draft.SocialLinks = card.RemoveLink(s.draft.SocialLinks, i)
	} else {
		s.draft.OtherLinks = card.RemoveLink(s.draft.OtherLinks, i)
	}
}

func (s *LinkStep) drop() tea.Cmd {
	if s.kind == card.ListSocial {
		s.draft.SocialLinks = s.drag.DropSocial(s.draft.SocialLinks, s.cursor)
	} else {
		s.draft.OtherLinks = s.drag.DropOther(s.draft.OtherLinks, s.cursor)
	}
	return nil
}

func (s *LinkStep) focusInput(i int) {
	s.inputs[s.focused].Blur()
	s.focused = i
	s.inputs[s.focused].Focus()
}

// View renders the link editor.
func (s *LinkStep) View() string {
	if s.mode == modeEdit {
		return s.viewEdit()
	}
	return s.viewBrowse()
}

func (s *LinkStep) viewBrowse() string {
	st := theme.Current().S()

	heading := "Where can people find you online?"
	if s.kind == card.ListOther {
		heading = "Anything else you want to share?"
	}

	parts := []string{st.Value.Render(heading), ""}

	n := s.length()
	if n == 0 {
		parts = append(parts, st.Hint.Render("No links yet. Press a to add one."))
	}
	for i := 0; i < n; i++ {
		first, second := s.row(i)
		line := fmt.Sprintf("%-20s %s", truncate(first, 20), truncate(second, 38))

		switch {
		case s.drag.Active() && s.drag.Index == i:
			line = st.Grabbed.Render("≡ " + line)
		case i == s.cursor:
			line = st.Selected.Render("> " + line)
		default:
			line = st.Value.Render("  " + line)
		}
		parts = append(parts, line)
	}

	if s.kind == card.ListSocial {
		parts = append(parts, "", st.Hint.Render(fmt.Sprintf("%d of %d links used", n, card.MaxSocialLinks)))
	}

	hint := "a add • enter edit • d delete • space grab/drop • shift+↑↓ move"
	if s.drag.Active() {
		hint = "↑↓ choose position • space drop • esc cancel"
	}
	parts = append(parts, "", st.Hint.Render(hint))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *LinkStep) viewEdit() string {
	st := theme.Current().S()

	firstLabel := "Title"
	if s.kind == card.ListSocial {
		firstLabel = "Platform"
	}

	parts := []string{
		st.Label.Render(firstLabel),
		s.inputs[0].View(),
	}

	// Platform name completion hints
	if s.kind == card.ListSocial && s.focused == 0 {
		if matches := card.FilterPlatforms(s.inputs[0].Value()); len(matches) > 0 {
			labels := make([]string, 0, 5)
			for i, p := range matches {
				if i == 5 {
					break
				}
				labels = append(labels, p.Label)
			}
			parts = append(parts, st.Hint.Render(strings.Join(labels, " · ")))
		}
	}

	parts = append(parts,
		"",
		st.Label.Render("URL"),
		s.inputs[1].View(),
		"",
		st.Hint.Render("enter save • esc cancel"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// SetSize updates the size of the link step.
func (s *LinkStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.inputs[0].SetWidth(width - 4)
	s.inputs[1].SetWidth(width - 4)
}

// Focus focuses the list (browse mode has no inputs to focus).
func (s *LinkStep) Focus() {
	if s.mode == modeEdit {
		s.focusInput(s.focused)
	}
}

// Blur blurs any focused input.
func (s *LinkStep) Blur() {
	s.inputs[0].Blur()
	s.inputs[1].Blur()
}

// Editing reports whether the edit form is open (used by the controller to
// route esc to the form instead of going back a step).
func (s *LinkStep) Editing() bool {
	return s.mode == modeEdit
}

// Dragging reports whether a row is currently grabbed.
func (s *LinkStep) Dragging() bool {
	return s.drag.Active()
}

func showToast(text string) tea.Cmd {
	return func() tea.Msg {
		return ShowToastMsg{Text: text}
	}
}
