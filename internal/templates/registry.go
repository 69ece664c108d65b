package templates

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed syntax/*.md
var syntaxFS embed.FS

// ID is the stable identifier of a diagram template as sent by clients.
type ID string

const (
	Flowchart          ID = "flowchart"
	Mindmap            ID = "mindmap"
	Timeline           ID = "timeline"
	UserJourney        ID = "userjourney"
	Class              ID = "class"
	Kanban             ID = "kanban"
	EntityRelationship ID = "entityrelationship"
	Sequence           ID = "sequence"
	State              ID = "state"
	Gantt              ID = "gantt"
	Quadrant           ID = "quadrant"
	Sankey             ID = "sankey"
	Architecture       ID = "architecture"
)

// Default is used when a request does not select a template.
const Default = Flowchart

var ErrNotFound = errors.New("template not found")

// Template describes one supported diagram kind.
type Template struct {
	ID          ID     `json:"id"`
	Label       string `json:"label"`
	SyntaxGuide string `json:"-"`
}

var registry = []Template{
	{ID: Flowchart, Label: "Flowchart"},
	{ID: Mindmap, Label: "Mindmap"},
	{ID: Timeline, Label: "Timeline"},
	{ID: UserJourney, Label: "User Journey"},
	{ID: Class, Label: "Class Diagram"},
	{ID: Kanban, Label: "Kanban"},
	{ID: EntityRelationship, Label: "Entity Relationship"},
	{ID: Sequence, Label: "Sequence Diagram"},
	{ID: State, Label: "State Diagram"},
	{ID: Gantt, Label: "Gantt Chart"},
	{ID: Quadrant, Label: "Quadrant Chart"},
	{ID: Sankey, Label: "Sankey Diagram"},
	{ID: Architecture, Label: "Architecture Diagram"},
}

var index = make(map[ID]int, len(registry))

// Guides are part of the binary, so a missing one is a build mistake.
func init() {
	for i := range registry {
		id := registry[i].ID
		if _, dup := index[id]; dup {
			panic(fmt.Sprintf("templates: duplicate id %q", id))
		}
		data, err := syntaxFS.ReadFile("syntax/" + string(id) + ".md")
		if err != nil {
			panic(fmt.Sprintf("templates: syntax guide for %q: %v", id, err))
		}
		registry[i].SyntaxGuide = string(data)
		index[id] = i
	}
}

// List returns every template in display order.
func List() []Template {
	out := make([]Template, len(registry))
	copy(out, registry)
	return out
}

func Lookup(id ID) (Template, error) {
	i, ok := index[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return registry[i], nil
}

func SyntaxGuideFor(id ID) (string, error) {
	t, err := Lookup(id)
	if err != nil {
		return "", err
	}
	return t.SyntaxGuide, nil
}

// Parse resolves a client supplied value. Matching ignores case and
// surrounding whitespace; an empty value resolves to Default.
func Parse(s string) (ID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, nil
	}
	id := ID(s)
	if _, ok := index[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, s)
	}
	return id, nil
}

// Label returns the display label, falling back to the default
// template's label for unknown ids.
func (id ID) Label() string {
	if i, ok := index[id]; ok {
		return registry[i].Label
	}
	return registry[index[Default]].Label
}
