package wizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapfolio/tapfolio/internal/api"
	"github.com/tapfolio/tapfolio/internal/card"
)

func newTestModel(t *testing.T, c *card.Card) *Model {
	t.Helper()
	if c == nil {
		c = &card.Card{UUID: "11111111-1111-1111-1111-111111111111"}
	}
	return New(api.New("http://localhost:1", "token"), c, true)
}

func TestStepsStartAtWelcome(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, StepWelcome, m.CurrentStep())
}

func TestNextBlockedWithoutName(t *testing.T) {
	m := newTestModel(t, nil)

	_, _ = m.goNext() // welcome → contact
	require.Equal(t, StepContact, m.CurrentStep())

	_, cmd := m.goNext()
	assert.Equal(t, StepContact, m.CurrentStep(), "must not advance past contact")
	require.NotNil(t, cmd, "blocked advance surfaces a toast dismiss timer")
	assert.Equal(t, "Your name is required to get started.", m.ToastMessage())
}

func TestNextAdvancesExactlyOneStep(t *testing.T) {
	m := newTestModel(t, nil)
	m.contact.inputs[0].SetValue("Jane Doe")
	m.contact.inputs[3].SetValue("jane@example.com")

	_, _ = m.goNext()
	require.Equal(t, StepContact, m.CurrentStep())

	_, _ = m.goNext()
	assert.Equal(t, StepImages, m.CurrentStep())
	assert.Equal(t, "Jane Doe", m.Draft().ContactInfo.Name, "next syncs inputs into the draft")
}

func TestInvalidEmailBlocksContactStep(t *testing.T) {
	m := newTestModel(t, nil)
	m.contact.inputs[0].SetValue("Jane Doe")
	m.contact.inputs[3].SetValue("not-an-email")

	_, _ = m.goNext()
	_, _ = m.goNext()
	assert.Equal(t, StepContact, m.CurrentStep())
	assert.Equal(t, "Please enter a valid email.", m.ToastMessage())
}

func TestBackIsUnconditional(t *testing.T) {
	m := newTestModel(t, nil)
	_, _ = m.goNext()
	require.Equal(t, StepContact, m.CurrentStep())

	// Contact is invalid (no name) but back still navigates
	_, _ = m.goBack()
	assert.Equal(t, StepWelcome, m.CurrentStep())

	_, _ = m.goBack()
	assert.Equal(t, StepWelcome, m.CurrentStep(), "back clamps at the first step")
}

func TestEscOnWelcomeCancels(t *testing.T) {
	m := newTestModel(t, nil)
	model, _ := m.Update(tea.KeyPressMsg{Text: "esc"})
	wiz := model.(*Model)
	assert.True(t, wiz.cancelled)
}

func TestEscBeyondWelcomeGoesBack(t *testing.T) {
	m := newTestModel(t, nil)
	_, _ = m.goNext()
	require.Equal(t, StepContact, m.CurrentStep())

	model, _ := m.Update(tea.KeyPressMsg{Text: "esc"})
	wiz := model.(*Model)
	assert.False(t, wiz.cancelled)
	assert.Equal(t, StepWelcome, wiz.CurrentStep())
}

func TestSpaceActivatesFocusedButton(t *testing.T) {
	m := newTestModel(t, nil)
	m.contact.inputs[0].SetValue("Jane Doe")
	m.contact.inputs[3].SetValue("jane@example.com")
	_, _ = m.goNext()
	require.Equal(t, StepContact, m.CurrentStep())

	m.focusButtons(true)
	require.Equal(t, ButtonBack, m.buttonBar.FocusedButton())
	require.True(t, m.buttonBar.FocusNext())
	require.Equal(t, ButtonNext, m.buttonBar.FocusedButton())

	model, _ := m.Update(spaceKey())
	wiz := model.(*Model)
	assert.Equal(t, StepImages, wiz.CurrentStep(), "space on the focused Next button advances")
}

func TestExistingCardPrefillsContactInputs(t *testing.T) {
	c := &card.Card{
		UUID: "22222222-2222-2222-2222-222222222222",
		ContactInfo: &card.ContactInfo{
			Name:  "Sam Smith",
			Email: "sam@example.com",
		},
	}
	m := newTestModel(t, c)
	assert.Equal(t, "Sam Smith", m.contact.inputs[0].Value())
	assert.Equal(t, "sam@example.com", m.contact.inputs[3].Value())
}

func TestSaveErrorStaysOnReview(t *testing.T) {
	m := newTestModel(t, nil)
	m.step = StepReview
	m.submitting = true

	model, _ := m.Update(SaveErrorMsg{Err: assert.AnError})
	wiz := model.(*Model)
	assert.Equal(t, StepReview, wiz.CurrentStep())
	assert.False(t, wiz.submitting)
	assert.NotEmpty(t, wiz.ToastMessage())
}

func TestCardSavedQuits(t *testing.T) {
	m := newTestModel(t, nil)
	m.step = StepReview

	saved := &card.Card{UUID: "x"}
	model, cmd := m.Update(CardSavedMsg{Card: saved})
	wiz := model.(*Model)
	assert.Equal(t, saved, wiz.saved)
	require.NotNil(t, cmd, "saving quits the program")
}

func TestSubmitIsSingleFlight(t *testing.T) {
	m := newTestModel(t, nil)
	m.step = StepReview

	first := m.submit()
	assert.NotNil(t, first)
	assert.Nil(t, m.submit(), "second submit while in flight is a no-op")
}

func TestGatingPathsPerStep(t *testing.T) {
	assert.Nil(t, gatingPaths(StepWelcome))
	assert.Nil(t, gatingPaths(StepImages))
	assert.Nil(t, gatingPaths(StepReview))
	assert.Equal(t, []string{"contactInfo.name", "contactInfo.email"}, gatingPaths(StepContact))
	assert.Equal(t, []string{"bio"}, gatingPaths(StepBio))
	assert.Equal(t, []string{"socialLinks"}, gatingPaths(StepSocials))
	assert.Equal(t, []string{"otherLinks"}, gatingPaths(StepLinks))
}
