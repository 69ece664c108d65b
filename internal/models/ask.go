package models

import "errors"

var ErrEmptyInput = errors.New("No input in the request")

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Input string `json:"input" validate:"required" example:"a payments pipeline"`
	// One of the ids from GET /api/templates, defaults to flowchart.
	SelectedTemplate string `json:"selectedTemplate,omitempty" example:"flowchart"`
}

func (r AskRequest) Validate() error {
	if r.Input == "" {
		return ErrEmptyInput
	}
	return nil
}

type AskResponse struct {
	Text string `json:"text" example:"flowchart TD\n  a[Start] --> b[Charge card]"`
}

// MessageResponse is returned for client errors (400, 405).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for server errors (500).
type ErrorResponse struct {
	Error string `json:"error"`
}

type TemplateInfo struct {
	ID    string `json:"id" example:"sequence"`
	Label string `json:"label" example:"Sequence Diagram"`
}
