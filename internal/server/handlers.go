// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/writer/internal/assemble"
	"github.com/pdiddy/writer/internal/compile"
	"github.com/pdiddy/writer/internal/document"
	"github.com/pdiddy/writer/internal/render"
	"github.com/pdiddy/writer/internal/templates"
	"github.com/pdiddy/writer/pkg/types"
)

type messageResponse struct {
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("could not encode response")
	}
}

// sendError writes err as {"detail": ...}. A zero code is derived from err.
func (s *Server) sendError(w http.ResponseWriter, r *http.Request, err error, code int) {
	if code == 0 {
		code = statusFor(err)
	}
	entry := s.log.WithError(err).WithField("path", r.URL.Path).WithField("status", code)
	if code >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Info("request rejected")
	}
	s.writeJSON(w, code, errorResponse{Detail: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, assemble.ErrInvalidRequest), errors.Is(err, render.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, templates.ErrTemplateNotFound),
		errors.Is(err, templates.ErrNoTemplateDir),
		errors.Is(err, templates.ErrNoTemplates):
		return http.StatusNotFound
	case errors.Is(err, render.ErrMalformedTemplate), errors.Is(err, render.ErrNoInsertionPoint):
		return http.StatusUnprocessableEntity
	case errors.Is(err, compile.ErrCompilerNotFound):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) status() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, messageResponse{Message: "LaTeX Template Processing API is running"})
	})
}

// listTemplates serves the numbered template names having one of exts.
func (s *Server) listTemplates(exts ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		names, err := templates.List(s.cfg.TemplatesDir)
		if err != nil {
			s.sendError(w, r, err, 0)
			return
		}
		var kept []string
		for _, n := range names {
			for _, ext := range exts {
				if strings.EqualFold(filepath.Ext(n), ext) {
					kept = append(kept, n)
					break
				}
			}
		}
		if len(kept) == 0 {
			s.sendError(w, r, templates.ErrNoTemplates, http.StatusNotFound)
			return
		}
		s.writeJSON(w, http.StatusOK, templates.Numbered(kept))
	})
}

func (s *Server) resumePlaceholders() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]map[string]string{
			"basic_info": render.LabelMap(render.BasicPlaceholders()),
			"education":  render.LabelMap(render.EducationPlaceholders()),
			"experience": render.LabelMap(render.ExperiencePlaceholders()),
			"project":    render.LabelMap(render.ProjectPlaceholders()),
		})
	})
}

func (s *Server) reportPlaceholders() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]map[string]string{
			"report_info": render.LabelMap(render.ReportPlaceholders()),
			"author_info": render.LabelMap(render.AuthorPlaceholders()),
		})
	})
}

// decodeBody reads a JSON payload of at most maxBodyBytes into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := document.Decode(body, document.FormatJSON, v); err != nil {
		return fmt.Errorf("%w: %v", assemble.ErrInvalidRequest, err)
	}
	return nil
}

// outputName returns requested, or a unique <family>-<uuid> name so
// concurrent requests never share output files.
func outputName(family, requested string) string {
	if strings.TrimSpace(requested) != "" {
		return requested
	}
	return family + "-" + uuid.NewString()
}

func (s *Server) generateResume() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var data types.ResumeData
		if err := decodeBody(w, r, &data); err != nil {
			s.sendError(w, r, err, 0)
			return
		}
		out, err := s.gen.Generate(r.Context(), assemble.Request{
			Family:   render.FamilyResume,
			Document: types.Document{Resume: &data},
			Output:   outputName(render.FamilyResume, data.OutputFilename),
		})
		if err != nil {
			s.sendError(w, r, err, 0)
			return
		}
		s.writeJSON(w, http.StatusOK, messageResponse{Message: "PDF generated successfully", Path: out.PDFPath})
	})
}

// generateReport uses the grid author layout unless ?layout=linear.
func (s *Server) generateReport() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var data types.ReportData
		if err := decodeBody(w, r, &data); err != nil {
			s.sendError(w, r, err, 0)
			return
		}
		if len(data.Authors) == 0 {
			s.sendError(w, r, errors.New("at least one author is required"), http.StatusBadRequest)
			return
		}

		family := render.FamilyReportGrid
		switch layout := r.URL.Query().Get("layout"); layout {
		case "", "grid":
		case "linear":
			family = render.FamilyReport
		default:
			s.sendError(w, r, fmt.Errorf("unknown layout %q: use grid or linear", layout), http.StatusBadRequest)
			return
		}

		out, err := s.gen.Generate(r.Context(), assemble.Request{
			Family:   family,
			Document: types.Document{Report: &data},
			Output:   outputName("report", data.OutputFilename),
		})
		if err != nil {
			s.sendError(w, r, err, 0)
			return
		}
		s.writeJSON(w, http.StatusOK, messageResponse{Message: "Report PDF generated successfully", Path: out.PDFPath})
	})
}

// generateLetter responds with the PDF itself.
func (s *Server) generateLetter() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var data types.LetterData
		if err := decodeBody(w, r, &data); err != nil {
			s.sendError(w, r, err, 0)
			return
		}
		out, err := s.gen.Generate(r.Context(), assemble.Request{
			Family:   render.FamilyLetter,
			Document: types.Document{Letter: &data},
			Output:   outputName(render.FamilyLetter, data.OutputFilename),
		})
		if err != nil {
			s.sendError(w, r, err, 0)
			return
		}

		pdf, err := os.ReadFile(out.PDFPath)
		if err != nil {
			s.sendError(w, r, fmt.Errorf("reading generated PDF: %w", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filepath.Base(out.PDFPath)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdf); err != nil {
			s.log.WithError(err).Warn("could not write PDF response")
		}
	})
}
