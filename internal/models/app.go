package models

import (
	"github.com/charmbracelet/bubbles/spinner"
)

const (
	HintChooseBoth    = "Choose a weather condition and a mood to continue"
	HintChooseWeather = "Choose a weather condition to continue"
	HintChooseMood    = "Choose a mood to continue"
)

// Section is the part of the screen that currently has keyboard focus.
type Section int

const (
	WeatherSection Section = iota
	MoodSection
	GenerateSection
	ResultSection
)

// Selection is the user's weather and mood choice. Empty means not chosen.
type Selection struct {
	Weather string
	Mood    string
}

// AppModel represents the UI state. It is only touched from the Bubble Tea
// update loop, so it needs no locking.
type AppModel struct {
	Selection  Selection
	Generation GenerationState
	Copied     bool

	copyToken int    // bumped on every copy, stale reverts are ignored
	pendingID string // request ID of the in-flight generation

	Focus         Section
	WeatherCursor int
	MoodCursor    int
	Status        string
	ServiceReady  bool
	Spinner       spinner.Model
	Width         int
	Height        int
}

func NewAppModel(serviceReady bool) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return AppModel{
		Generation:   IdleState(),
		Status:       "Ready",
		ServiceReady: serviceReady,
		Spinner:      s,
	}
}

// SelectWeather sets the weather. Values outside the catalog are ignored.
// A displayed result or error stays until the next generation.
func (m *AppModel) SelectWeather(value string) bool {
	if _, ok := FindWeather(value); !ok {
		return false
	}
	m.Selection.Weather = value
	return true
}

// SelectMood sets the mood. Values outside the catalog are ignored.
func (m *AppModel) SelectMood(value string) bool {
	if _, ok := FindMood(value); !ok {
		return false
	}
	m.Selection.Mood = value
	return true
}

func (m *AppModel) CanGenerate() bool {
	return m.Selection.Weather != "" && m.Selection.Mood != "" && !m.Generation.IsLoading()
}

// Hint returns the guidance line shown under the generate button.
func (m *AppModel) Hint() string {
	if m.Generation.IsLoading() {
		return ""
	}
	switch {
	case m.Selection.Weather == "" && m.Selection.Mood == "":
		return HintChooseBoth
	case m.Selection.Weather == "":
		return HintChooseWeather
	case m.Selection.Mood == "":
		return HintChooseMood
	}
	return ""
}

// BeginGeneration enters Loading for requestID. It reports false, changing
// nothing, when generation is not allowed.
func (m *AppModel) BeginGeneration(requestID string) bool {
	if !m.CanGenerate() {
		return false
	}
	m.Generation = LoadingState()
	m.Copied = false
	m.copyToken++
	m.pendingID = requestID
	// The result card goes away while loading.
	if m.Focus == ResultSection {
		m.Focus = GenerateSection
	}
	m.Status = "Composing your vibe"
	return true
}

// PendingRequest returns the ID of the in-flight generation, if any.
func (m *AppModel) PendingRequest() (string, bool) {
	if !m.Generation.IsLoading() {
		return "", false
	}
	return m.pendingID, true
}

// ResolveGeneration records the outcome of the in-flight request. Results for
// any other request ID are dropped.
func (m *AppModel) ResolveGeneration(requestID, prompt string, err error) bool {
	if !m.Generation.IsLoading() || requestID != m.pendingID {
		return false
	}
	m.pendingID = ""
	if err != nil {
		m.Generation = FailedState(FailureMessage(err))
		m.Status = "Generation failed"
		return true
	}
	m.Generation = SucceededState(prompt)
	m.Status = "Prompt ready"
	return true
}

// CopyText returns the text to put on the clipboard when a result is shown.
func (m *AppModel) CopyText() (string, bool) {
	return m.Generation.Prompt()
}

// MarkCopied raises the copied flag and returns the token its revert must
// present. Copying again restarts the window. It refuses while no result is
// shown.
func (m *AppModel) MarkCopied() (int, bool) {
	if _, ok := m.CopyText(); !ok {
		return 0, false
	}
	m.copyToken++
	m.Copied = true
	m.Status = "Copied to clipboard"
	return m.copyToken, true
}

// ExpireCopied clears the copied flag if token belongs to the latest copy.
func (m *AppModel) ExpireCopied(token int) bool {
	if token != m.copyToken || !m.Copied {
		return false
	}
	m.Copied = false
	m.Status = "Ready"
	return true
}

// SetClipboardError reports a failed copy without touching the result.
func (m *AppModel) SetClipboardError(err error) {
	m.Copied = false
	m.Status = "Clipboard error: " + FailureMessage(err)
}
