package server

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/ahzs645/portfolio-themes/internal/normalize"
	"github.com/ahzs645/portfolio-themes/internal/parsing"
	"github.com/ahzs645/portfolio-themes/internal/schemas"
	"github.com/ahzs645/portfolio-themes/internal/themes"
)

// maxBodySize caps uploaded CV documents at 1 MiB.
const maxBodySize = 1 << 20

// advisoryLogf returns the diagnostic sink for the normalizer: log.Printf in
// dev mode, silent otherwise.
func (s *Server) advisoryLogf() func(format string, args ...any) {
	if !s.dev {
		return nil
	}
	return log.Printf
}

// readBody reads the request body under the size cap, writing the error
// response itself on failure. Only an exceeded cap is 413; any other read
// failure is the client's bad request.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		}
		return nil, false
	}
	return body, true
}

// handleNormalize parses the request body as CV YAML and responds with the
// normalized record. Section exclusions come from the server configuration
// plus any "exclude" query parameters.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	if len(body) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "request body is empty")
		return
	}

	doc, err := parsing.Parse(body)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	excluded := append([]string{}, s.excludedSections...)
	excluded = append(excluded, r.URL.Query()["exclude"]...)

	cv := normalize.NormalizeCV(doc, normalize.Options{
		ExcludedSections: excluded,
		Logf:             s.advisoryLogf(),
	})
	s.jsonResponse(w, http.StatusOK, cv)
}

// handleValidate runs the advisory schema check on the request body.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	err := schemas.ValidateDocument(body)
	if err == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{"valid": true})
		return
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		problems := make([]map[string]string, 0, len(validationErr.Errors))
		for _, fieldErr := range validationErr.Errors {
			problems = append(problems, map[string]string{
				"field":   fieldErr.Field,
				"message": fieldErr.Message,
			})
		}
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"valid":  false,
			"errors": problems,
		})
		return
	}

	s.errorResponse(w, http.StatusBadRequest, err.Error())
}

// handleDefaultCV serves the configured default document, normalized.
func (s *Server) handleDefaultCV(w http.ResponseWriter, _ *http.Request) {
	if s.defaultCV == "" {
		s.errorResponse(w, http.StatusNotFound, "no default CV configured")
		return
	}

	doc, err := parsing.Load(s.defaultCV)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	cv := normalize.NormalizeCV(doc, normalize.Options{
		ExcludedSections: s.excludedSections,
		Logf:             s.advisoryLogf(),
	})
	s.jsonResponse(w, http.StatusOK, cv)
}

// handleThemes lists the registered presentation themes.
func (s *Server) handleThemes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"themes":  themes.List(),
		"default": themes.DefaultTheme,
	})
}

// handleGetTheme returns one theme descriptor by name.
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	theme, ok := themes.Get(name)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "unknown theme: "+name)
		return
	}
	s.jsonResponse(w, http.StatusOK, theme)
}
