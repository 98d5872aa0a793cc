package app

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/LofiStudio/internal/config"
	"github.com/Rorical/LofiStudio/internal/dispatcher"
	"github.com/Rorical/LofiStudio/internal/eventbus"
	"github.com/Rorical/LofiStudio/internal/models"
	"github.com/Rorical/LofiStudio/internal/update"
)

type nopClipboard struct{}

func (nopClipboard) WriteText(string) error { return nil }

func newTestModel(t *testing.T) (*AppModel, *eventbus.EventBus) {
	t.Helper()
	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	t.Cleanup(func() {
		disp.Stop()
		eb.Close()
	})
	return NewAppModel(models.NewAppModel(true), disp, update.NewEnv(eb, nopClipboard{})), eb
}

func TestView_InitialScreen(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Current Weather")
	assert.Contains(t, view, "Your Mood")
	assert.Contains(t, view, models.HintChooseBoth)
	assert.Contains(t, view, "Ready")
	assert.NotContains(t, view, "Copy")
}

func TestView_ResultAndError(t *testing.T) {
	m, _ := newTestModel(t)
	m.appModel.SelectWeather("foggy")
	m.appModel.SelectMood("nostalgic")

	m.appModel.Generation = models.FailedState("No prompt was returned from the AI model.")
	assert.Contains(t, m.View(), "No prompt was returned")

	m.appModel.Generation = models.SucceededState("65 BPM, foghorn pads")
	view := m.View()
	assert.Contains(t, view, "65 BPM, foghorn pads")
	assert.Contains(t, view, "foggy")
	assert.NotContains(t, view, "No prompt was returned")
}

func TestUpdate_CoreEventKeepsListening(t *testing.T) {
	m, eb := newTestModel(t)
	m.appModel.SelectWeather("rainy")
	m.appModel.SelectMood("calm")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	require.NotNil(t, cmd)
	event := (<-eb.UIToCore()).(eventbus.GenerateRequestEvent)

	_, cmd = m.Update(update.CoreEventMsg{Event: eventbus.GenerationResultEvent{RequestID: event.RequestID, Prompt: "done"}})
	require.NotNil(t, cmd)

	prompt, ok := m.appModel.Generation.Prompt()
	require.True(t, ok)
	assert.Equal(t, "done", prompt)
}

func TestUpdate_WindowSizeResizesHelp(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	assert.Equal(t, 90, m.help.Width)
	assert.Equal(t, 90, m.appModel.Width)
}

func TestNewApplication(t *testing.T) {
	cfg := config.New("test", config.Profile{})
	cfg.LogFile = filepath.Join(t.TempDir(), "studio.log")

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	assert.False(t, application.model.appModel.ServiceReady)
	application.Stop()
}
