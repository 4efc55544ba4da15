package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahzs645/portfolio-themes/internal/types"
)

const sampleYAML = `
cv:
  name: Ada Lovelace
  email: ada@example.com
  social:
    - network: GitHub
      url: https://github.com/ada
  sections:
    about: Pioneer of computing.
    experience:
      - company: Analytical Engines
        position: Programmer
        start_date: "1842-01"
        end_date: present
    projects:
      - name: Notes
      - name: Old Draft
        tags: [archived]
`

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	srv, err := New(cfg)
	require.NoError(t, err)
	return srv
}

func TestNew_InvalidPort(t *testing.T) {
	_, err := New(Config{Port: -1})
	assert.Error(t, err)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), "request ID middleware tags every response")
}

func TestHandleNormalize(t *testing.T) {
	srv := newTestServer(t, Config{})

	t.Run("Normalizes a YAML body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/normalize", strings.NewReader(sampleYAML))
		srv.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var cv types.NormalizedCV
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cv))
		assert.Equal(t, "Ada Lovelace", cv.Name)
		require.NotNil(t, cv.CurrentJobTitle)
		assert.Equal(t, "Programmer", *cv.CurrentJobTitle)
		assert.Len(t, cv.Projects, 1, "archived entries filtered")
	})

	t.Run("Exclude query parameter hides sections", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/normalize?exclude=projects", strings.NewReader(sampleYAML))
		srv.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var cv types.NormalizedCV
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cv))
		assert.Empty(t, cv.Projects)
		assert.Equal(t, []string{"projects"}, cv.ExcludedSections)
	})

	t.Run("Empty body is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/normalize", nil)
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Malformed YAML is unprocessable", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/normalize", strings.NewReader("cv: [unclosed"))
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})

	t.Run("Oversized body is rejected with 413", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/normalize", strings.NewReader(strings.Repeat("a", maxBodySize+1)))
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "request body too large")
	})

	t.Run("Read failure is a bad request, not 413", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/normalize", failingReader{})
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "failed to read request body")
	})
}

// failingReader simulates a client connection dropping mid-body.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestHandleNormalize_ConfiguredExclusions(t *testing.T) {
	srv := newTestServer(t, Config{ExcludedSections: []string{"about"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/normalize", strings.NewReader(sampleYAML))
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var cv types.NormalizedCV
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cv))
	assert.Equal(t, "", cv.About)
	assert.Equal(t, []string{"about"}, cv.ExcludedSections)
}

func TestHandleValidate(t *testing.T) {
	srv := newTestServer(t, Config{})

	t.Run("Valid document", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(sampleYAML))
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"valid":true`)
	})

	t.Run("Schema violations listed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader("cv:\n  social:\n    - network: GitHub\n"))
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"valid":false`)
		assert.Contains(t, rec.Body.String(), "url")
	})

	t.Run("Malformed YAML is a bad request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader("cv: [unclosed"))
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleDefaultCV(t *testing.T) {
	t.Run("No default configured", func(t *testing.T) {
		srv := newTestServer(t, Config{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cv", nil)
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Serves the configured document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cv.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

		srv := newTestServer(t, Config{DefaultCV: path})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cv", nil)
		srv.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var cv types.NormalizedCV
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cv))
		assert.Equal(t, "Ada Lovelace", cv.Name)
	})
}

func TestHandleThemes(t *testing.T) {
	srv := newTestServer(t, Config{})

	t.Run("Lists registered themes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/themes", nil)
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"default":"classic"`)
		assert.Contains(t, rec.Body.String(), `"terminal"`)
	})

	t.Run("Single theme lookup", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/themes/terminal", nil)
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"dateGranularity":"range"`)
	})

	t.Run("Unknown theme", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/themes/nope", nil)
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/normalize", nil)
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
