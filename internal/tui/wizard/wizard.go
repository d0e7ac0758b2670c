// Package wizard implements the multi-step card editing flow: a Bubble Tea
// model owning the draft, one component per step, and toast-surfaced
// validation gating between steps.
package wizard

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/tapfolio/tapfolio/internal/api"
	"github.com/tapfolio/tapfolio/internal/card"
	"github.com/tapfolio/tapfolio/internal/imaging"
	"github.com/tapfolio/tapfolio/internal/logger"
	"github.com/tapfolio/tapfolio/internal/tui/theme"
)

// Step enumeration for the wizard flow.
type Step int

const (
	StepWelcome Step = iota
	StepContact
	StepImages
	StepBio
	StepSocials
	StepLinks
	StepReview

	stepCount
)

// Title returns the human-readable heading for a step.
func (s Step) Title() string {
	switch s {
	case StepWelcome:
		return "Welcome"
	case StepContact:
		return "Contact details"
	case StepImages:
		return "Pictures"
	case StepBio:
		return "Bio"
	case StepSocials:
		return "Social links"
	case StepLinks:
		return "Other links"
	case StepReview:
		return "Review"
	}
	return ""
}

// gatingPaths returns the validation paths that must be clean before leaving
// the step. Steps without entries advance unconditionally.
func gatingPaths(s Step) []string {
	switch s {
	case StepContact:
		return []string{"contactInfo.name", "contactInfo.email"}
	case StepBio:
		return []string{"bio"}
	case StepSocials:
		return []string{"socialLinks"}
	case StepLinks:
		return []string{"otherLinks"}
	}
	return nil
}

// Modal layout constants
const (
	modalWidth        = 70
	modalPadding      = 2
	modalBorderWidth  = 1
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2)
)

// ErrCancelled is returned by Run when the user backs out without saving.
var ErrCancelled = errors.New("wizard cancelled by user")

// stepComponent is the contract every step implements.
type stepComponent interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Sync()
	Focus()
	Blur()
}

// Model is the main Bubble Tea model for the card editing wizard.
type Model struct {
	step      Step
	cancelled bool
	saved     *card.Card

	draft  *card.Draft
	client *api.Client
	uuid   string

	width  int
	height int

	submitting bool
	toast      *Toast

	// Step components, created once and kept for the whole run so their
	// state survives back/next navigation.
	welcome *WelcomeStep
	contact *ContactStep
	images  *ImagesStep
	bio     *BioStep
	socials *LinkStep
	links   *LinkStep
	review  *ReviewStep

	// Button bar with focus tracking, cached per step
	buttonBar     *ButtonBar
	buttonFocused bool
	stepBars      [stepCount]*ButtonBar
}

// New builds the wizard model for a loaded card. fresh indicates the card was
// claimed in this session (changes the welcome copy only).
func New(client *api.Client, loaded *card.Card, fresh bool) *Model {
	draft, dropped := card.NewDraft(loaded)
	if dropped > 0 {
		logger.Warn("Dropped %d malformed link entries while loading card %s", dropped, loaded.UUID)
	}

	uuid := loaded.UUID

	profile := imaging.NewUploader(imaging.SlotProfile, imaging.Binding{
		Get: func() string { return draft.ProfilePicture },
		Set: func(url string) { draft.ProfilePicture = url },
		Upload: func(ctx context.Context, filename string, data []byte) (string, error) {
			return client.UploadProfilePicture(ctx, uuid, data, filename)
		},
		Remove: func(ctx context.Context) error {
			return client.DeleteProfilePicture(ctx, uuid)
		},
	})
	banner := imaging.NewUploader(imaging.SlotBanner, imaging.Binding{
		Get: func() string { return draft.BannerPicture },
		Set: func(url string) { draft.BannerPicture = url },
		Upload: func(ctx context.Context, filename string, data []byte) (string, error) {
			return client.UploadBannerPicture(ctx, uuid, data, filename)
		},
		Remove: func(ctx context.Context) error {
			return client.DeleteBannerPicture(ctx, uuid)
		},
	})

	return &Model{
		step:    StepWelcome,
		draft:   draft,
		client:  client,
		uuid:    uuid,
		toast:   NewToast(),
		welcome: NewWelcomeStep(uuid, fresh, dropped),
		contact: NewContactStep(draft),
		images:  NewImagesStep(draft, profile, banner),
		bio:     NewBioStep(draft),
		socials: NewLinkStep(draft, card.ListSocial),
		links:   NewLinkStep(draft, card.ListOther),
		review:  NewReviewStep(draft, uuid),
	}
}

// Run executes the wizard and returns the saved card, or ErrCancelled if the
// user backed out.
func Run(client *api.Client, loaded *card.Card, fresh bool) (*card.Card, error) {
	m := New(client, loaded, fresh)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wiz, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if wiz.cancelled {
		return nil, ErrCancelled
	}
	return wiz.saved, nil
}

// Draft exposes the draft for tests.
func (m *Model) Draft() *card.Draft {
	return m.draft
}

// CurrentStep exposes the active step for tests.
func (m *Model) CurrentStep() Step {
	return m.step
}

// ToastMessage exposes the visible toast text for tests.
func (m *Model) ToastMessage() string {
	return m.toast.Message()
}

func (m *Model) component(s Step) stepComponent {
	switch s {
	case StepWelcome:
		return m.welcome
	case StepContact:
		return m.contact
	case StepImages:
		return m.images
	case StepBio:
		return m.bio
	case StepSocials:
		return m.socials
	case StepLinks:
		return m.links
	case StepReview:
		return m.review
	}
	return nil
}

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	return m.welcome.Init()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// Button-focused keyboard input
		if m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					m.component(m.step).Focus()
					return m, nil
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					m.component(m.step).Focus()
					return m, nil
				}
				return m, nil
			case "enter", "space":
				return m.activateButton(m.buttonBar.FocusedButton())
			case "esc":
				m.buttonFocused = false
				m.buttonBar.Blur()
				m.component(m.step).Focus()
				return m, nil
			}
			return m, nil
		}

		// Global keybindings
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "esc":
			if m.stepConsumesEsc() {
				break // Step handles its own esc (drag, edit form, crop)
			}
			if m.step == StepWelcome {
				m.cancelled = true
				return m, tea.Quit
			}
			return m.goBack()

		case "enter":
			// The welcome step has no inputs: enter advances.
			if m.step == StepWelcome {
				return m.goNext()
			}

		case "tab":
			if m.step == StepWelcome {
				return m.focusButtons(true), nil
			}

		case "shift+tab":
			if m.step == StepWelcome {
				return m.focusButtons(false), nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeSteps()
		return m, nil

	case ShowToastMsg:
		return m, m.toast.Show(msg.Text)

	case ToastDismissMsg:
		return m, m.toast.Update(msg)

	case TabExitForwardMsg:
		return m.focusButtons(true), nil

	case TabExitBackwardMsg:
		return m.focusButtons(false), nil

	case UploadDoneMsg, RemoveDoneMsg:
		// Transfer results always land on the images step, even if the user
		// navigated elsewhere while the call was in flight.
		return m, m.images.Update(msg)

	case CardSavedMsg:
		m.submitting = false
		m.saved = msg.Card
		return m, tea.Quit

	case SaveErrorMsg:
		m.submitting = false
		logger.Error("Saving card %s failed: %v", m.uuid, msg.Err)
		return m, m.toast.Show(msg.Err.Error())
	}

	// Forward messages to the current step
	cmd := m.component(m.step).Update(msg)
	return m, cmd
}

// stepConsumesEsc reports whether the active step has internal state that esc
// should unwind before the wizard navigates back.
func (m *Model) stepConsumesEsc() bool {
	switch m.step {
	case StepImages:
		return m.images.Busy()
	case StepSocials:
		return m.socials.Editing() || m.socials.Dragging()
	case StepLinks:
		return m.links.Editing() || m.links.Dragging()
	}
	return false
}

func (m *Model) focusButtons(fromStart bool) *Model {
	m.buttonFocused = true
	m.component(m.step).Blur()
	m.ensureButtonBar()
	if fromStart {
		m.buttonBar.FocusFirst()
	} else {
		m.buttonBar.FocusLast()
	}
	return m
}

// ensureButtonBar creates the button bar if needed, using a cached instance
// per step so focus state survives re-renders.
func (m *Model) ensureButtonBar() {
	if cached := m.stepBars[m.step]; cached != nil {
		m.buttonBar = cached
		return
	}

	nextLabel := "Next →"
	if m.step == StepReview {
		nextLabel = "Save"
	}
	bar := NewButtonBar(CreateBackNextButtons(m.step > StepWelcome, nextLabel))
	bar.SetWidth(modalContentWidth)

	m.stepBars[m.step] = bar
	m.buttonBar = bar
}

// activateButton handles button activation.
func (m *Model) activateButton(id ButtonID) (tea.Model, tea.Cmd) {
	switch id {
	case ButtonBack:
		return m.goBack()
	case ButtonNext:
		return m.goNext()
	}
	return m, nil
}

// goBack moves to the previous step unconditionally.
func (m *Model) goBack() (tea.Model, tea.Cmd) {
	if m.step == StepWelcome {
		return m, nil
	}
	m.component(m.step).Sync()
	m.step--
	return m, m.enterStep()
}

// goNext validates the draft, blocks on the first gating-field error, and
// otherwise advances (clamped). On the review step it submits instead.
func (m *Model) goNext() (tea.Model, tea.Cmd) {
	m.component(m.step).Sync()

	if m.step == StepReview {
		return m, m.submit()
	}

	if paths := gatingPaths(m.step); len(paths) > 0 {
		errs := card.Validate(m.draft)
		if text := errs.First(paths...); text != "" {
			return m, m.toast.Show(text)
		}
	}

	if m.step < StepReview {
		m.step++
	}
	return m, m.enterStep()
}

// enterStep re-focuses and re-initializes the step after navigation.
func (m *Model) enterStep() tea.Cmd {
	m.buttonFocused = false
	m.buttonBar = nil
	comp := m.component(m.step)
	comp.Sync()
	comp.SetSize(m.contentSize())
	comp.Focus()
	return comp.Init()
}

// submit serializes the draft and sends the partial update.
func (m *Model) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true

	payload := m.draft.UpdatePayload()
	client := m.client
	uuid := m.uuid

	return func() tea.Msg {
		saved, err := client.UpdateCard(context.Background(), uuid, payload)
		if err != nil {
			return SaveErrorMsg{Err: err}
		}
		return CardSavedMsg{Card: saved}
	}
}

// contentSize returns the internal content dimensions for the modal.
func (m *Model) contentSize() (width, height int) {
	width = modalContentWidth

	height = m.height - 4
	if height < 20 {
		height = 20
	}
	if height > 40 {
		height = 40
	}
	height -= 10
	if height < 10 {
		height = 10
	}
	return width, height
}

func (m *Model) resizeSteps() {
	w, h := m.contentSize()
	for s := StepWelcome; s < stepCount; s++ {
		m.component(s).SetSize(w, h)
	}
	for _, bar := range m.stepBars {
		if bar != nil {
			bar.SetWidth(w)
		}
	}
}

// View renders the wizard.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderStep()

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	if m.toast.IsVisible() {
		uv.NewStyledString(m.toast.View(m.width, m.height)).Draw(canvas, uv.Rectangle{
			Min: uv.Position{X: 0, Y: 0},
			Max: uv.Position{X: m.width, Y: m.height},
		})
	}

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderStep renders the modal for the current step.
func (m *Model) renderStep() string {
	t := theme.Current()
	st := t.S()

	title := st.Title.Render(fmt.Sprintf("Your card — step %d of %d: %s",
		int(m.step)+1, int(stepCount), m.step.Title()))

	progress := st.Subtitle.Render(renderProgress(m.step))

	stepContent := m.component(m.step).View()

	m.ensureButtonBar()
	buttons := m.buttonBar.Render()

	hint := st.Hint.Render("tab to navigate • esc to go back")
	if m.step == StepWelcome {
		hint = st.Hint.Render("enter to begin • esc to quit")
	}
	if m.submitting {
		hint = st.Hint.Render("saving...")
	}

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Padding(modalPadding).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BgOverlay))

	return modalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		progress,
		"",
		stepContent,
		"",
		buttons,
		"",
		hint,
	))
}

// renderProgress renders the step dots with percent complete.
func renderProgress(s Step) string {
	pct := int(s) * 100 / int(stepCount-1)

	dots := make([]byte, 0, int(stepCount)*2)
	for i := Step(0); i < stepCount; i++ {
		if i <= s {
			dots = append(dots, '*', ' ')
		} else {
			dots = append(dots, '.', ' ')
		}
	}
	return fmt.Sprintf("%s %d%%", string(dots[:len(dots)-1]), pct)
}
