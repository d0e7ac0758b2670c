package wizard

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tapfolio/tapfolio/internal/card"
	"github.com/tapfolio/tapfolio/internal/imaging"
	"github.com/tapfolio/tapfolio/internal/logger"
	"github.com/tapfolio/tapfolio/internal/tui/theme"
)

const cropMoveStep = 16

// ImagesStep manages the profile and banner picture slots: file selection,
// crop adjustment and upload. Both slots run the same pipeline; the banner
// crops 3:1 and the profile 1:1 with a circular mask.
type ImagesStep struct {
	draft     *card.Draft
	uploaders [2]*imaging.Uploader // profile, banner

	slotCursor int
	pathInput  textinput.Model
	picking    bool

	width  int
	height int
}

// NewImagesStep creates the image step over the two slot uploaders.
func NewImagesStep(draft *card.Draft, profile, banner *imaging.Uploader) *ImagesStep {
	ti := textinput.New()
	ti.Placeholder = "/path/to/image.jpg"

	return &ImagesStep{
		draft:     draft,
		uploaders: [2]*imaging.Uploader{profile, banner},
		pathInput: ti,
	}
}

// Init initializes the images step.
func (s *ImagesStep) Init() tea.Cmd {
	return nil
}

// Sync is a no-op: uploads write server URLs into the draft directly.
func (s *ImagesStep) Sync() {}

func (s *ImagesStep) current() *imaging.Uploader {
	return s.uploaders[s.slotCursor]
}

func (s *ImagesStep) uploaderFor(slot imaging.Slot) *imaging.Uploader {
	for _, u := range s.uploaders {
		if u.Slot == slot {
			return u
		}
	}
	return nil
}

// Update handles messages for the images step. State and draft mutations for
// a transfer happen here, on the update loop; the command goroutine only
// carries the network call.
func (s *ImagesStep) Update(m tea.Msg) tea.Cmd {
	switch m := m.(type) {
	case UploadDoneMsg:
		if up := s.uploaderFor(m.Slot); up != nil {
			up.FinishUpload(m.URL, m.Err)
		}
		if m.Err != nil {
			return showToast(m.Err.Error())
		}
		return nil

	case RemoveDoneMsg:
		if up := s.uploaderFor(m.Slot); up != nil {
			up.FinishRemove(m.Err)
		}
		if m.Err != nil {
			return showToast(m.Err.Error())
		}
		return nil

	case tea.KeyPressMsg:
		if s.picking {
			return s.updatePicking(m)
		}
		if s.current().State() == imaging.StateCropping {
			return s.updateCropping(m)
		}
		return s.updateBrowse(m)
	}

	if s.picking {
		var cmd tea.Cmd
		s.pathInput, cmd = s.pathInput.Update(m)
		return cmd
	}
	return nil
}

func (s *ImagesStep) updateBrowse(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "up", "k", "down", "j":
		// Slot switching stays available while the other slot transfers.
		s.slotCursor = 1 - s.slotCursor
		return nil

	case "enter", "s":
		if s.current().State() != imaging.StateIdle {
			return nil
		}
		s.picking = true
		s.pathInput.SetValue("")
		s.pathInput.Focus()
		return textinput.Blink

	case "r", "d":
		up := s.current()
		started, err := up.StartRemove()
		if err != nil {
			return showToast(err.Error())
		}
		if !started {
			return nil
		}
		slot := up.Slot
		return func() tea.Msg {
			err := up.RunRemove(context.Background())
			if err != nil {
				logger.Error("Remove %s picture failed: %v", slot, err)
			}
			return RemoveDoneMsg{Slot: slot, Err: err}
		}

	case "tab":
		return func() tea.Msg { return TabExitForwardMsg{} }

	case "shift+tab":
		return func() tea.Msg { return TabExitBackwardMsg{} }
	}
	return nil
}

func (s *ImagesStep) updatePicking(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		s.picking = false
		s.pathInput.Blur()
		return nil

	case "enter":
		path := strings.TrimSpace(s.pathInput.Value())
		if path == "" {
			return nil
		}
		s.picking = false
		s.pathInput.Blur()
		if err := s.current().Select(path); err != nil {
			return showToast(err.Error())
		}
		return nil
	}

	var cmd tea.Cmd
	s.pathInput, cmd = s.pathInput.Update(key)
	return cmd
}

func (s *ImagesStep) updateCropping(key tea.KeyPressMsg) tea.Cmd {
	up := s.current()
	task := up.Task()
	if task == nil {
		return nil
	}

	switch key.String() {
	case "esc":
		up.Cancel()
		return nil

	case "left", "h":
		task.Move(-cropMoveStep, 0)
	case "right", "l":
		task.Move(cropMoveStep, 0)
	case "up", "k":
		task.Move(0, -cropMoveStep)
	case "down", "j":
		task.Move(0, cropMoveStep)
	case "+", "=":
		task.Zoom(0.9)
	case "-", "_":
		task.Zoom(1.1)

	case "enter":
		filename, data, err := up.StartUpload()
		if err != nil {
			return showToast(err.Error())
		}
		slot := up.Slot
		return func() tea.Msg {
			url, err := up.RunUpload(context.Background(), filename, data)
			if err != nil {
				logger.Error("Upload %s picture failed: %v", slot, err)
			}
			return UploadDoneMsg{Slot: slot, URL: url, Err: err}
		}
	}
	return nil
}

// View renders the images step.
func (s *ImagesStep) View() string {
	st := theme.Current().S()

	if s.picking {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			st.Value.Render(fmt.Sprintf("Image file for the %s picture:", s.current().Slot)),
			"",
			s.pathInput.View(),
			"",
			st.Hint.Render("enter select • esc cancel • max 5MB, JPEG/PNG/GIF"),
		)
	}

	if s.current().State() == imaging.StateCropping {
		task := s.current().Task()
		r := task.Rect()
		shape := "3:1 banner"
		if task.Slot == imaging.SlotProfile {
			shape = "1:1 circle"
		}
		return lipgloss.JoinVertical(
			lipgloss.Left,
			st.Value.Render(fmt.Sprintf("Adjust the %s crop (%s):", task.Slot, shape)),
			"",
			st.Label.Render(fmt.Sprintf("Region %dx%d at (%d, %d)", r.Dx(), r.Dy(), r.Min.X, r.Min.Y)),
			"",
			st.Hint.Render("arrows move • +/- zoom • enter upload • esc cancel"),
		)
	}

	rows := []string{st.Value.Render("Add pictures to your card:"), ""}
	labels := [2]string{"Profile picture (square)", "Banner (3:1)"}
	values := [2]string{s.draft.ProfilePicture, s.draft.BannerPicture}

	for i := 0; i < 2; i++ {
		status := values[i]
		if status == "" {
			status = "not set"
		}
		switch s.uploaders[i].State() {
		case imaging.StateUploading:
			status = "uploading..."
		case imaging.StateRemoving:
			status = "removing..."
		}
		line := fmt.Sprintf("%-26s %s", labels[i], truncate(status, 34))
		if i == s.slotCursor {
			rows = append(rows, st.Selected.Render("> "+line))
		} else {
			rows = append(rows, st.Value.Render("  "+line))
		}
	}

	rows = append(rows, "", st.Hint.Render("↑↓ choose slot • enter pick file • r remove • tab continue"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetSize updates the size of the images step.
func (s *ImagesStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.pathInput.SetWidth(width - 4)
}

// Focus focuses the path input when it is open.
func (s *ImagesStep) Focus() {
	if s.picking {
		s.pathInput.Focus()
	}
}

// Blur blurs the path input.
func (s *ImagesStep) Blur() {
	s.pathInput.Blur()
}

// Busy reports whether a selection, crop or transfer is in progress on either
// slot (used by the controller to route esc here instead of going back).
func (s *ImagesStep) Busy() bool {
	if s.picking {
		return true
	}
	for _, u := range s.uploaders {
		if u.State() != imaging.StateIdle {
			return true
		}
	}
	return false
}
