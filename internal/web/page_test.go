package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/otey247/diagram-creator/internal/templates"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIndexRendersForm(t *testing.T) {
	page := NewPage(zap.NewNop())

	rec := httptest.NewRecorder()
	page.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `placeholder="What the flowchart is about"`)
	assert.Contains(t, body, "Generate Flowchart")
	assert.Contains(t, body, `<option value="flowchart" selected>Flowchart</option>`)
	for _, tmpl := range templates.List() {
		assert.Contains(t, body, `value="`+string(tmpl.ID)+`"`)
	}
}

func TestIndexPreselectsTemplate(t *testing.T) {
	page := NewPage(zap.NewNop())

	rec := httptest.NewRecorder()
	page.Index(rec, httptest.NewRequest(http.MethodGet, "/?template=sequence", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `placeholder="What the sequence diagram is about"`)
	assert.Contains(t, body, "Generate Sequence Diagram")
	assert.Contains(t, body, `<option value="sequence" selected>Sequence Diagram</option>`)
}

func TestIndexUnknownTemplateFallsBack(t *testing.T) {
	page := NewPage(zap.NewNop())

	rec := httptest.NewRecorder()
	page.Index(rec, httptest.NewRequest(http.MethodGet, "/?template=pie", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Generate Flowchart")
}

func TestStaticServesScript(t *testing.T) {
	page := NewPage(zap.NewNop())

	rec := httptest.NewRecorder()
	http.StripPrefix("/static/", page.Static()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/ask")
}
