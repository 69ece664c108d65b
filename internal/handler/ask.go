package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/otey247/diagram-creator/internal/models"
	"github.com/otey247/diagram-creator/internal/service"
	"github.com/otey247/diagram-creator/internal/templates"
	"go.uber.org/zap"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgGenericFailure   = "An error occurred while generating the diagram"
)

type diagramService interface {
	Generate(ctx context.Context, req *models.AskRequest) (*models.AskResponse, error)
}

type AskHandler struct {
	service diagramService
	logger  *zap.Logger
	// detailed errors are only exposed outside production
	production bool
}

func NewAskHandler(service diagramService, logger *zap.Logger, production bool) *AskHandler {
	return &AskHandler{
		service:    service,
		logger:     logger.Named("handler"),
		production: production,
	}
}

// Ask godoc
// @Summary Generate a diagram
// @Description Generate Mermaid markup for a subject using the selected template.
// @Tags ask
// @Accept json
// @Produce json
// @Param request body models.AskRequest true "Ask request"
// @Success 200 {object} models.AskResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 405 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/ask [post]
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.MethodNotAllowed(w, r)
		return
	}

	var req models.AskRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: fmt.Sprintf("invalid JSON: %s", err)})
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: err.Error()})
		return
	}

	resp, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: models.ErrEmptyInput.Error()})
			return
		}

		h.logger.Error("generation failed",
			zap.String("template", req.SelectedTemplate),
			zap.Error(err),
		)
		msg := msgGenericFailure
		if !h.production {
			msg = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Templates godoc
// @Summary List diagram templates
// @Tags ask
// @Produce json
// @Success 200 {array} models.TemplateInfo
// @Router /api/templates [get]
func (h *AskHandler) Templates(w http.ResponseWriter, _ *http.Request) {
	list := templates.List()
	out := make([]models.TemplateInfo, 0, len(list))
	for _, t := range list {
		out = append(out, models.TemplateInfo{ID: string(t.ID), Label: t.Label})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AskHandler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, models.MessageResponse{Message: msgMethodNotAllowed})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to encode: %s", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
