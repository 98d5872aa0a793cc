package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/LofiStudio/internal/dispatcher"
	"github.com/Rorical/LofiStudio/internal/models"
	"github.com/Rorical/LofiStudio/internal/update"
	"github.com/Rorical/LofiStudio/ui/components"
)

// AppModel is the tea.Model wrapping the UI state.
type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	env        update.Env
	help       help.Model
}

func NewAppModel(state models.AppModel, disp *dispatcher.EventDispatcher, env update.Env) *AppModel {
	return &AppModel{
		appModel:   state,
		dispatcher: disp,
		env:        env,
		help:       help.New(),
	}
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Lo-Fi Prompt Studio"),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = size.Width
	}

	cmd := update.HandleUpdate(&m.appModel, msg, m.env)
	return m, cmd
}

func (m *AppModel) View() string {
	s := &m.appModel
	width := s.Width
	var b strings.Builder

	b.WriteString(components.RenderHeader())

	b.WriteString(components.RenderOptionGrid("01", "Current Weather", models.WeatherOptions(),
		s.Selection.Weather, s.WeatherCursor, s.Focus == models.WeatherSection, update.GridColumns))
	b.WriteString("\n")
	b.WriteString(components.RenderOptionGrid("02", "Your Mood", models.MoodOptions(),
		s.Selection.Mood, s.MoodCursor, s.Focus == models.MoodSection, update.GridColumns))
	b.WriteString("\n")

	b.WriteString(components.RenderGenerate(s.CanGenerate(), s.Generation.IsLoading(), s.Spinner.View(),
		s.Focus == models.GenerateSection, s.Hint()))

	if msg, ok := s.Generation.ErrorMessage(); ok {
		b.WriteString(components.RenderError(msg, width))
		b.WriteString("\n")
	}

	if prompt, ok := s.Generation.Prompt(); ok {
		weather, _ := models.FindWeather(s.Selection.Weather)
		mood, _ := models.FindMood(s.Selection.Mood)
		b.WriteString(components.RenderResult(prompt, weather, mood, s.Copied, s.Focus == models.ResultSection, width))
		b.WriteString("\n")
	}

	b.WriteString(components.RenderFooter())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.env.Keys))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(s.Status, width))

	return b.String()
}
