package service

import (
	"context"
	"fmt"
	"time"

	"github.com/otey247/diagram-creator/internal/completion"
	"github.com/otey247/diagram-creator/internal/metrics"
	"github.com/otey247/diagram-creator/internal/models"
	"github.com/otey247/diagram-creator/internal/sanitize"
	"github.com/otey247/diagram-creator/internal/templates"
	"go.uber.org/zap"
)

// DiagramService turns a user subject into sanitized Mermaid markup.
// It keeps no state between calls.
type DiagramService struct {
	logger    *zap.Logger
	completer completion.Completer
}

func NewDiagramService(logger *zap.Logger, completer completion.Completer) *DiagramService {
	return &DiagramService{
		logger:    logger.Named("diagram"),
		completer: completer,
	}
}

func (s *DiagramService) Generate(ctx context.Context, req *models.AskRequest) (*models.AskResponse, error) {
	if req.Input == "" {
		return nil, ErrInvalidInput
	}

	id, err := templates.Parse(req.SelectedTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownTemplate, err)
	}

	prompt, err := BuildPrompt(req.Input, id)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	log := s.logger.With(zap.String("template", string(id)))
	log.Info("generating diagram", zap.Int("input_len", len(req.Input)))

	start := time.Now()
	raw, err := s.completer.Complete(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		metrics.GenerationsTotal(metrics.StatusError, string(id))
		metrics.GenerationDuration(metrics.StatusError, string(id), elapsed)
		return nil, fmt.Errorf("completion: %w", err)
	}

	text := sanitize.Sanitize(raw)

	status := metrics.StatusOK
	if text == "" {
		status = metrics.StatusEmpty
		log.Warn("completion returned empty text")
	}
	metrics.GenerationsTotal(status, string(id))
	metrics.GenerationDuration(status, string(id), elapsed)

	log.Info("diagram generated", zap.Duration("elapsed", elapsed), zap.Int("text_len", len(text)))
	return &models.AskResponse{Text: text}, nil
}
