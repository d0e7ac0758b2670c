package wizard

import (
	"github.com/tapfolio/tapfolio/internal/card"
	"github.com/tapfolio/tapfolio/internal/imaging"
)

// ShowToastMsg asks the wizard to surface a transient notification.
type ShowToastMsg struct {
	Text string
}

// TabExitForwardMsg is sent by a step when Tab walks off its last input,
// moving focus to the wizard's button bar.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent by a step when Shift+Tab walks off its first
// input, moving focus to the button bar from the end.
type TabExitBackwardMsg struct{}

// BioEditedMsg is sent when the external editor returns with new bio content.
type BioEditedMsg struct {
	Content string
}

// UploadDoneMsg reports the outcome of an image upload. The slot's state and
// the draft are only touched once this message reaches the update loop.
type UploadDoneMsg struct {
	Slot imaging.Slot
	URL  string
	Err  error
}

// RemoveDoneMsg reports the outcome of a server-side image removal.
type RemoveDoneMsg struct {
	Slot imaging.Slot
	Err  error
}

// CardSavedMsg is sent when the backend accepted the submitted draft.
type CardSavedMsg struct {
	Card *card.Card
}

// SaveErrorMsg is sent when submitting the draft failed. The wizard stays on
// the review step so the user can retry.
type SaveErrorMsg struct {
	Err error
}
