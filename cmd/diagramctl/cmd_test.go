package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAskWritesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":"timeline\n  2024 : launch"}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "plan.mmd")
	out, err := runCmd(t, "--server", srv.URL, "ask", "-t", "timeline", "-o", path, "product", "plan")
	require.NoError(t, err)

	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "timeline\n  2024 : launch", string(data))
}

func TestAskStdout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":"flowchart TD"}`))
	}))
	defer srv.Close()

	out, err := runCmd(t, "--server", srv.URL, "ask", "-o", "-", "checkout")
	require.NoError(t, err)

	assert.Equal(t, "flowchart TD\n", out)
}

func TestAskServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := runCmd(t, "--server", srv.URL, "ask", "-o", "-", "checkout")

	assert.EqualError(t, err, "Sorry! a small issue occurred")
}

func TestAskUnknownTemplate(t *testing.T) {
	_, err := runCmd(t, "ask", "-t", "pie", "x")

	assert.ErrorContains(t, err, "template not found")
}

func TestTemplatesCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"flowchart","label":"Flowchart"},{"id":"sankey","label":"Sankey Diagram"}]`))
	}))
	defer srv.Close()

	out, err := runCmd(t, "--server", srv.URL, "templates")
	require.NoError(t, err)

	assert.Contains(t, out, "flowchart")
	assert.Contains(t, out, "Sankey Diagram")
}

func TestBenchPrintsTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":"flowchart TD\n  a --> b"}`))
	}))
	defer srv.Close()

	out, err := runCmd(t, "--server", srv.URL, "bench", "-t", "flowchart", "-t", "gantt", "--subject", "one", "--subject", "two")
	require.NoError(t, err)

	assert.Contains(t, out, "| Template | Requests | Errors |")
	assert.Contains(t, out, "| flowchart | 2 | 0 |")
	assert.Contains(t, out, "| gantt | 2 | 0 |")
	assert.Contains(t, out, "| **ALL** | 4 | 0 |")
}

func TestBenchCountsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":""}`))
	}))
	defer srv.Close()

	out, err := runCmd(t, "--server", srv.URL, "bench", "-t", "mindmap", "--subject", "one")
	require.NoError(t, err)

	assert.Contains(t, out, "| mindmap | 0 | 1 |")
	assert.NotContains(t, out, "**ALL**")
}
