// Package view holds the client side form state: what the user typed,
// which template is selected and what the canvas currently shows.
package view

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/otey247/diagram-creator/internal/models"
	"github.com/otey247/diagram-creator/internal/templates"
)

// GenericError is shown for every failed request, whatever the cause.
const GenericError = "Sorry! a small issue occurred"

type Phase int

const (
	Idle Phase = iota
	Loading
	Shown
	Errored
	RenderFailed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Shown:
		return "shown"
	case Errored:
		return "errored"
	case RenderFailed:
		return "render-failed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// State is a snapshot of the canvas. Chart is set in Shown and
// RenderFailed, Message in Errored and RenderFailed.
type State struct {
	Phase   Phase
	Chart   string
	Message string
}

type Asker interface {
	Ask(ctx context.Context, req models.AskRequest) (*models.AskResponse, error)
}

// Renderer draws a chart. It returns an error for markup it cannot parse.
type Renderer interface {
	Render(chart string) error
}

type RenderFunc func(chart string) error

func (f RenderFunc) Render(chart string) error { return f(chart) }

type View struct {
	asker    Asker
	renderer Renderer

	mu       sync.Mutex
	input    string
	selected templates.ID
	state    State
}

// New returns an idle view. renderer may be nil when the caller only
// needs the markup.
func New(asker Asker, renderer Renderer) *View {
	return &View{
		asker:    asker,
		renderer: renderer,
		selected: templates.Default,
	}
}

func (v *View) SetInput(input string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.input = input
}

func (v *View) Select(id templates.ID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = id
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) Placeholder() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return fmt.Sprintf("What the %s is about", strings.ToLower(v.selected.Label()))
}

func (v *View) ButtonLabel() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.Phase == Errored {
		return "Retry"
	}
	return "Generate " + v.selected.Label()
}

// Name is the download name for the current input: every whitespace
// character becomes a dash and the result is lower-cased.
func (v *View) Name() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, v.input))
}

// Submit sends the current input. It does nothing and returns false when
// the input is empty or a previous submission is still loading; otherwise
// it blocks until the answer is applied and returns true.
func (v *View) Submit(ctx context.Context) bool {
	v.mu.Lock()
	if v.input == "" || v.state.Phase == Loading {
		v.mu.Unlock()
		return false
	}
	req := models.AskRequest{Input: v.input, SelectedTemplate: string(v.selected)}
	v.state = State{Phase: Loading}
	v.mu.Unlock()

	resp, err := v.asker.Ask(ctx, req)

	v.mu.Lock()
	if err != nil || resp == nil || resp.Text == "" {
		v.state = State{Phase: Errored, Message: GenericError}
		v.mu.Unlock()
		return true
	}
	v.state = State{Phase: Shown, Chart: resp.Text}
	v.mu.Unlock()

	if rerr := v.render(resp.Text); rerr != nil {
		v.mu.Lock()
		v.state = State{Phase: RenderFailed, Chart: resp.Text, Message: rerr.Error()}
		v.mu.Unlock()
	}
	return true
}

// render never lets a renderer panic escape into the caller.
func (v *View) render(chart string) (err error) {
	if v.renderer == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panic: %v", r)
		}
	}()
	return v.renderer.Render(chart)
}
