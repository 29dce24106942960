package wizard

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestNewHuhUI(t *testing.T) {
	ui := NewHuhUI()
	assert.NotNil(t, ui)
	assert.NotNil(t, ui.isTerminal)
}

func TestHuhUI_EnsureInteractive_NilChecker(t *testing.T) {
	ui := &HuhUI{isTerminal: nil}
	err := ui.ensureInteractive()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestHuhUI_NoTTY(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}

	t.Run("MultiSelect", func(t *testing.T) {
		var res []string
		err := ui.MultiSelect("Title", []Choice{{Label: "A", Value: "a"}}, &res)
		assert.Error(t, err)
	})

	t.Run("Confirm", func(t *testing.T) {
		var res bool
		err := ui.Confirm("Title", "", &res)
		assert.Error(t, err)
	})

	t.Run("Note", func(t *testing.T) {
		err := ui.Note("Title", "Body")
		assert.Error(t, err)
	})
}

func stubRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })
	runFormFunc = fn
}

func TestHuhUI_RunFormSuccess(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	called := false
	stubRunForm(t, func(form *huh.Form) error {
		assert.NotNil(t, form)
		called = true
		return nil
	})

	var res bool
	assert.NoError(t, ui.Confirm("Title", "Description", &res))
	assert.True(t, called)
}

func TestHuhUI_RunFormMapsUserAbortToCancelled(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })

	err := ui.Note("Title", "Body")
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestHuhUI_RunFormPassesOtherErrors(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	boom := errors.New("boom")
	stubRunForm(t, func(*huh.Form) error { return boom })

	var res []string
	err := ui.MultiSelect("Title", nil, &res)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrCancelled)
}

func TestFormFilter_InterruptMsgConvertsToQuitMsg(t *testing.T) {
	msg := formFilter(nil, tea.InterruptMsg{})
	assert.IsType(t, tea.QuitMsg{}, msg)
}

func TestFormFilter_OtherMsgPassesThrough(t *testing.T) {
	msg := formFilter(nil, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.IsType(t, tea.WindowSizeMsg{}, msg)
}

func TestWizardKeyMap_EscQuits(t *testing.T) {
	km := wizardKeyMap()
	assert.Contains(t, km.Quit.Keys(), "esc")
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
}
