package wizard

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/tapfolio/tapfolio/internal/card"
	"github.com/tapfolio/tapfolio/internal/tui/cardview"
	"github.com/tapfolio/tapfolio/internal/tui/theme"
)

// ReviewStep shows a rendered preview of the draft before submitting.
type ReviewStep struct {
	draft    *card.Draft
	uuid     string
	viewport viewport.Model
	width    int
	height   int
}

// NewReviewStep creates the review preview for the draft.
func NewReviewStep(draft *card.Draft, uuid string) *ReviewStep {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(12),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	s := &ReviewStep{
		draft:    draft,
		uuid:     uuid,
		viewport: vp,
		width:    60,
		height:   16,
	}
	s.refresh()
	return s
}

// previewCard materializes the draft as a card record for rendering.
func (s *ReviewStep) previewCard() *card.Card {
	ci := s.draft.ContactInfo
	return &card.Card{
		UUID:           s.uuid,
		ContactInfo:    &ci,
		Bio:            s.draft.Bio,
		SocialLinks:    s.draft.SocialLinks,
		OtherLinks:     s.draft.OtherLinks,
		ProfilePicture: s.draft.ProfilePicture,
		BannerPicture:  s.draft.BannerPicture,
	}
}

func (s *ReviewStep) refresh() {
	s.viewport.SetContent(cardview.RenderCard(s.previewCard(), s.width))
	s.viewport.GotoTop()
}

// Init initializes the review step.
func (s *ReviewStep) Init() tea.Cmd {
	return nil
}

// Sync re-renders the preview from the draft.
func (s *ReviewStep) Sync() {
	s.refresh()
}

// Update handles messages for the review step (scrolling).
func (s *ReviewStep) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case tea.KeyPressMsg:
		switch m.String() {
		case "tab":
			return func() tea.Msg { return TabExitForwardMsg{} }
		case "shift+tab":
			return func() tea.Msg { return TabExitBackwardMsg{} }
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// View renders the review step.
func (s *ReviewStep) View() string {
	st := theme.Current().S()

	var b strings.Builder
	b.WriteString(s.viewport.View())
	b.WriteString("\n")
	b.WriteString(st.Hint.Render("↑↓ scroll • tab to buttons • Save submits your card"))
	return b.String()
}

// SetSize updates the dimensions for the review step.
func (s *ReviewStep) SetSize(width, height int) {
	s.width = width
	s.height = height

	s.viewport.SetWidth(width)
	vh := height - 2
	if vh < 5 {
		vh = 5
	}
	s.viewport.SetHeight(vh)
	s.refresh()
}

// Focus is a no-op; the viewport has no input focus.
func (s *ReviewStep) Focus() {}

// Blur is a no-op.
func (s *ReviewStep) Blur() {}
