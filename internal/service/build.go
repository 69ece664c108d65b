package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/otey247/diagram-creator/internal/templates"
)

var (
	ErrInvalidInput    = errors.New("input is empty")
	ErrUnknownTemplate = errors.New("unknown template")
)

// BuildPrompt assembles the completion prompt: the template's syntax
// guide, the fixed instruction block, then the subject line with input.
func BuildPrompt(input string, id templates.ID) (string, error) {
	if input == "" {
		return "", ErrInvalidInput
	}

	guide, err := templates.SyntaxGuideFor(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownTemplate, err)
	}

	var b strings.Builder
	b.WriteString(guide)
	if !strings.HasSuffix(guide, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(instructions)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, subjectTemplate, id, input)
	return b.String(), nil
}
