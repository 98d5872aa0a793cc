package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rorical/LofiStudio/internal/core"
	"github.com/Rorical/LofiStudio/internal/metrics"
	"github.com/Rorical/LofiStudio/internal/models"
)

const (
	RequestIDHeader = "X-Request-ID"

	generateTimeout = 90 * time.Second
	requestIDKey    = "request_id"
)

// Server exposes the prompt client over HTTP.
type Server struct {
	generator    core.PromptGenerator
	metrics      *metrics.Recorder
	logger       *zap.Logger
	defaultModel string
}

// New builds a Server. defaultModel is only echoed back in responses when a
// request does not name a model; the client resolves the model on its own.
func New(generator core.PromptGenerator, rec *metrics.Recorder, logger *zap.Logger, defaultModel string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultModel == "" {
		defaultModel = core.DefaultModel
	}
	return &Server{
		generator:    generator,
		metrics:      rec,
		logger:       logger,
		defaultModel: defaultModel,
	}
}

// Router wires up the HTTP handlers.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(s.logger),
	)

	router.GET("/healthz", s.health)
	if s.metrics != nil {
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	api := router.Group("/v1")
	{
		api.GET("/options", s.options)
		api.POST("/prompts", s.createPrompt)
	}

	return router
}

// HTTPServer returns a configured *http.Server listening on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      generateTimeout + 10*time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}

type optionBody struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type optionsResponse struct {
	Weather []optionBody `json:"weather"`
	Mood    []optionBody `json:"mood"`
}

type promptRequest struct {
	Weather string `json:"weather"`
	Mood    string `json:"mood"`
	Model   string `json:"model"`
}

type promptResponse struct {
	Prompt  string `json:"prompt"`
	Weather string `json:"weather"`
	Mood    string `json:"mood"`
	Model   string `json:"model"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"configured": s.generator.IsConfigured(),
	})
}

func (s *Server) options(c *gin.Context) {
	c.JSON(http.StatusOK, optionsResponse{
		Weather: toBodies(models.WeatherOptions()),
		Mood:    toBodies(models.MoodOptions()),
	})
}

func (s *Server) createPrompt(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, newHTTPError(http.StatusBadRequest, "invalid_request", "request body must be a JSON object", err))
		return
	}

	req.Weather = strings.TrimSpace(req.Weather)
	req.Mood = strings.TrimSpace(req.Mood)
	req.Model = strings.TrimSpace(req.Model)

	if req.Weather == "" || req.Mood == "" {
		s.writeError(c, newHTTPError(http.StatusBadRequest, "invalid_input", core.ErrInvalidInput.Error(), core.ErrInvalidInput))
		return
	}
	if _, ok := models.FindWeather(req.Weather); !ok {
		s.writeError(c, newHTTPError(http.StatusBadRequest, "unknown_weather", "unknown weather: "+req.Weather, nil))
		return
	}
	if _, ok := models.FindMood(req.Mood); !ok {
		s.writeError(c, newHTTPError(http.StatusBadRequest, "unknown_mood", "unknown mood: "+req.Mood, nil))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	prompt, err := s.generator.CreateLofiMusicPrompt(ctx, core.PromptRequest{
		Weather: req.Weather,
		Mood:    req.Mood,
		Model:   req.Model,
	})
	if err != nil {
		s.writeError(c, mapError(err))
		return
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	c.JSON(http.StatusOK, promptResponse{
		Prompt:  prompt,
		Weather: req.Weather,
		Mood:    req.Mood,
		Model:   model,
	})
}

func (s *Server) writeError(c *gin.Context, httpErr *httpError) {
	fields := []zap.Field{
		zap.String(requestIDKey, c.GetString(requestIDKey)),
		zap.String("code", httpErr.Code),
		zap.Int("status", httpErr.Status),
	}
	if httpErr.Err != nil {
		fields = append(fields, zap.Error(httpErr.Err))
	}
	if httpErr.Status >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields...)
	} else {
		s.logger.Warn("request failed", fields...)
	}

	c.AbortWithStatusJSON(httpErr.Status, gin.H{
		"error": gin.H{
			"code":    httpErr.Code,
			"message": httpErr.Message,
		},
	})
}

type httpError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func newHTTPError(status int, code, message string, err error) *httpError {
	return &httpError{Status: status, Code: code, Message: message, Err: err}
}

// mapError turns a client error into its HTTP form.
func mapError(err error) *httpError {
	var cfgErr *core.ConfigError
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		return newHTTPError(http.StatusBadRequest, "invalid_input", err.Error(), err)
	case errors.As(err, &cfgErr):
		return newHTTPError(http.StatusServiceUnavailable, "not_configured", cfgErr.Error(), err)
	case errors.Is(err, core.ErrEmptyResult):
		return newHTTPError(http.StatusBadGateway, "empty_result", models.FailureMessage(err), err)
	case errors.Is(err, core.ErrProvider):
		return newHTTPError(http.StatusBadGateway, "provider_error", models.FailureMessage(err), err)
	default:
		return newHTTPError(http.StatusInternalServerError, "internal_error", models.GenericFailureMessage, err)
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String(requestIDKey, c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func toBodies(options []models.Option) []optionBody {
	out := make([]optionBody, 0, len(options))
	for _, opt := range options {
		out = append(out, optionBody{Value: opt.Value, Label: opt.Label, Icon: opt.Icon})
	}
	return out
}
