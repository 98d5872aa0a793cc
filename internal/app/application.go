package app

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Rorical/LofiStudio/internal/clipboard"
	"github.com/Rorical/LofiStudio/internal/config"
	"github.com/Rorical/LofiStudio/internal/core"
	"github.com/Rorical/LofiStudio/internal/dispatcher"
	"github.com/Rorical/LofiStudio/internal/eventbus"
	"github.com/Rorical/LofiStudio/internal/logger"
	"github.com/Rorical/LofiStudio/internal/metrics"
	"github.com/Rorical/LofiStudio/internal/models"
	"github.com/Rorical/LofiStudio/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *zap.Logger
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.PromptService
	model      *AppModel
}

func NewApplication(cfg *config.Config) (*Application, error) {
	log, err := newFileLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		log.Warn("event bus error", zap.String("operation", e.Operation), zap.Error(e.Err))
	})

	disp := dispatcher.NewEventDispatcher(eb)

	client := core.NewPromptClient(cfg,
		core.WithLogger(log),
		core.WithMetrics(metrics.New()),
	)
	service := core.NewPromptService(client, eb, log)

	env := update.NewEnv(eb, clipboard.NewOSC52())
	model := NewAppModel(models.NewAppModel(service.IsReady()), disp, env)

	return &Application{
		config:     cfg,
		logger:     log,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.logger.Info("starting studio", zap.String("profile", app.config.ActiveProfile))
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.dispatcher.Stop()
	app.service.Stop()
	app.eventBus.Close()
	_ = app.logger.Sync()
}

// newFileLogger keeps logs off the terminal, which the TUI owns.
func newFileLogger(cfg *config.Config) (*zap.Logger, error) {
	path := cfg.LogFile
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "lofistudio.log")
	}
	return logger.New(cfg.LogLevel, path)
}
