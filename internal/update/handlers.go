package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Rorical/LofiStudio/internal/clipboard"
	"github.com/Rorical/LofiStudio/internal/eventbus"
	"github.com/Rorical/LofiStudio/internal/models"
)

// CopyFeedbackWindow is how long the "copied" indicator stays on.
const CopyFeedbackWindow = 2 * time.Second

// GridColumns is the width of the option grids; cursor movement wraps on it.
const GridColumns = 4

// Env carries what the handlers need besides the model itself.
type Env struct {
	EventBus  *eventbus.EventBus
	Clipboard clipboard.Clipboard
	Keys      KeyMap
	NewID     func() string
}

func NewEnv(eb *eventbus.EventBus, clip clipboard.Clipboard) Env {
	return Env{
		EventBus:  eb,
		Clipboard: clip,
		Keys:      DefaultKeyMap(),
		NewID:     uuid.NewString,
	}
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// ClipboardResultMsg reports how writing Text to the clipboard ended.
type ClipboardResultMsg struct {
	Text string
	Err  error
}

// CopyExpiredMsg asks to clear the copied indicator raised with Token.
type CopyExpiredMsg struct {
	Token int
}

// HandleKeyMsg handles keyboard input
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, env Env) tea.Cmd {
	keys := env.Keys

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, keys.NextSection):
		moveFocus(appModel, 1)
	case key.Matches(keyMsg, keys.PrevSection):
		moveFocus(appModel, -1)
	case key.Matches(keyMsg, keys.Left):
		moveCursor(appModel, -1)
	case key.Matches(keyMsg, keys.Right):
		moveCursor(appModel, 1)
	case key.Matches(keyMsg, keys.Up):
		moveCursor(appModel, -GridColumns)
	case key.Matches(keyMsg, keys.Down):
		moveCursor(appModel, GridColumns)
	case key.Matches(keyMsg, keys.Pick):
		index := int(keyMsg.String()[0] - '1')
		pick(appModel, index)
	case key.Matches(keyMsg, keys.Select):
		switch appModel.Focus {
		case models.WeatherSection:
			pick(appModel, appModel.WeatherCursor)
		case models.MoodSection:
			pick(appModel, appModel.MoodCursor)
		case models.GenerateSection:
			return HandleGenerate(appModel, env)
		case models.ResultSection:
			return HandleCopy(appModel, env)
		}
	case key.Matches(keyMsg, keys.Generate):
		return HandleGenerate(appModel, env)
	case key.Matches(keyMsg, keys.Copy):
		return HandleCopy(appModel, env)
	}
	return nil
}

// focusable lists the sections tab cycles through; the result card only
// takes focus while a result is shown.
func focusable(appModel *models.AppModel) []models.Section {
	sections := []models.Section{models.WeatherSection, models.MoodSection, models.GenerateSection}
	if _, ok := appModel.CopyText(); ok {
		sections = append(sections, models.ResultSection)
	}
	return sections
}

func moveFocus(appModel *models.AppModel, delta int) {
	sections := focusable(appModel)
	current := 0
	for i, s := range sections {
		if s == appModel.Focus {
			current = i
			break
		}
	}
	next := (current + delta + len(sections)) % len(sections)
	appModel.Focus = sections[next]
}

func moveCursor(appModel *models.AppModel, delta int) {
	switch appModel.Focus {
	case models.WeatherSection:
		appModel.WeatherCursor = clampCursor(appModel.WeatherCursor+delta, len(models.WeatherOptions()))
	case models.MoodSection:
		appModel.MoodCursor = clampCursor(appModel.MoodCursor+delta, len(models.MoodOptions()))
	}
}

func clampCursor(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// pick selects option index of the focused grid and moves the cursor there.
func pick(appModel *models.AppModel, index int) {
	switch appModel.Focus {
	case models.WeatherSection:
		options := models.WeatherOptions()
		if index < 0 || index >= len(options) {
			return
		}
		appModel.WeatherCursor = index
		appModel.SelectWeather(options[index].Value)
	case models.MoodSection:
		options := models.MoodOptions()
		if index < 0 || index >= len(options) {
			return
		}
		appModel.MoodCursor = index
		appModel.SelectMood(options[index].Value)
	}
}

// HandleGenerate starts a generation when one is allowed. While a request is
// in flight it does nothing, so at most one request is ever outstanding.
func HandleGenerate(appModel *models.AppModel, env Env) tea.Cmd {
	requestID := env.NewID()
	if !appModel.BeginGeneration(requestID) {
		return nil
	}

	event := eventbus.GenerateRequestEvent{
		RequestID: requestID,
		Weather:   appModel.Selection.Weather,
		Mood:      appModel.Selection.Mood,
	}
	if err := env.EventBus.SendToCore(event); err != nil {
		appModel.ResolveGeneration(requestID, "", fmt.Errorf("could not reach the prompt service: %w", err))
		return nil
	}

	return appModel.Spinner.Tick
}

// HandleCopy writes the current result to the clipboard off the update loop.
func HandleCopy(appModel *models.AppModel, env Env) tea.Cmd {
	text, ok := appModel.CopyText()
	if !ok {
		return nil
	}
	clip := env.Clipboard
	return func() tea.Msg {
		return ClipboardResultMsg{Text: text, Err: clip.WriteText(text)}
	}
}

// HandleClipboardResult drops results for text that is no longer shown, such
// as a copy finishing after a new generation started.
func HandleClipboardResult(appModel *models.AppModel, msg ClipboardResultMsg) tea.Cmd {
	if current, ok := appModel.CopyText(); !ok || current != msg.Text {
		return nil
	}
	if msg.Err != nil {
		appModel.SetClipboardError(msg.Err)
		return nil
	}
	token, ok := appModel.MarkCopied()
	if !ok {
		return nil
	}
	return CopyRevertCmd(token)
}

// CopyRevertCmd fires CopyExpiredMsg once the feedback window has passed.
func CopyRevertCmd(token int) tea.Cmd {
	return tea.Tick(CopyFeedbackWindow, func(time.Time) tea.Msg {
		return CopyExpiredMsg{Token: token}
	})
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.GenerationResultEvent:
		appModel.ResolveGeneration(event.RequestID, event.Prompt, event.Err)
	case eventbus.StatusEvent:
		appModel.ServiceReady = event.Ready
		if !appModel.Generation.IsLoading() {
			appModel.Status = event.Message
		}
	}
	return nil
}

func HandleSpinnerTick(appModel *models.AppModel, msg spinner.TickMsg) tea.Cmd {
	// Let the tick chain die once loading ends; HandleGenerate restarts it.
	if !appModel.Generation.IsLoading() {
		return nil
	}
	var cmd tea.Cmd
	appModel.Spinner, cmd = appModel.Spinner.Update(msg)
	return cmd
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}
