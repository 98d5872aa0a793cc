package core

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Rorical/LofiStudio/internal/config"
	"github.com/Rorical/LofiStudio/internal/eventbus"
)

// PromptService runs generation requests coming from the UI on its own
// goroutine and pushes each outcome back over the event bus.
type PromptService struct {
	client   PromptGenerator
	eventBus *eventbus.EventBus
	logger   *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewPromptService(client PromptGenerator, eb *eventbus.EventBus, logger *zap.Logger) *PromptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &PromptService{
		client:   client,
		eventBus: eb,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start reports readiness to the UI and starts the event loop.
func (ps *PromptService) Start() {
	ps.pushStatus()
	ps.wg.Add(1)
	go func() {
		defer ps.wg.Done()
		ps.eventLoop()
	}()
}

// Stop cancels any in-flight request and waits for the loop to exit.
func (ps *PromptService) Stop() {
	ps.cancel()
	ps.wg.Wait()
}

func (ps *PromptService) IsReady() bool {
	return ps.client.IsConfigured()
}

func (ps *PromptService) eventLoop() {
	for {
		select {
		case <-ps.ctx.Done():
			return
		case event, ok := <-ps.eventBus.UIToCore():
			if !ok {
				return
			}
			ps.handleUIEvent(event)
		}
	}
}

func (ps *PromptService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.GenerateRequestEvent:
		ps.processGeneration(e)
	}
}

func (ps *PromptService) processGeneration(e eventbus.GenerateRequestEvent) {
	log := ps.logger.With(zap.String("request_id", e.RequestID))
	log.Debug("generation requested", zap.String("weather", e.Weather), zap.String("mood", e.Mood))

	prompt, err := ps.client.CreateLofiMusicPrompt(ps.ctx, PromptRequest{
		Weather: e.Weather,
		Mood:    e.Mood,
	})
	if err != nil {
		log.Debug("generation failed", zap.Error(err))
	}

	// The UI stays in Loading until this result arrives.
	if sendErr := ps.eventBus.SendToUIWait(ps.ctx, eventbus.GenerationResultEvent{
		RequestID: e.RequestID,
		Prompt:    prompt,
		Err:       err,
	}); sendErr != nil {
		log.Error("failed to deliver generation result", zap.Error(sendErr))
	}
}

func (ps *PromptService) pushStatus() {
	status := eventbus.StatusEvent{Ready: ps.IsReady()}
	if status.Ready {
		status.Message = "Ready"
	} else {
		status.Message = "API key not configured: set " + config.APIKeyEnv + " or run `lofistudio profile add`"
	}

	if err := ps.eventBus.SendToUI(status); err != nil {
		ps.logger.Error("failed to send status to UI", zap.Error(err))
	}
}
