package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	figmacodegen "github.com/hellenic-development/figma-codegen"
	"github.com/hellenic-development/figma-codegen/pkg/ast"
	"github.com/hellenic-development/figma-codegen/pkg/classifier"
	"github.com/hellenic-development/figma-codegen/pkg/emitter"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/metrics"
	"github.com/hellenic-development/figma-codegen/pkg/normalizer"
)

// markdown renders emitted READMEs for the preview endpoint. GFM covers the
// pipe tables the README uses.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// handleConvert turns a posted design document into a generated project
// archive in the requested format.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	format := r.URL.Query().Get("format")
	if format == "" {
		format = string(emitter.FormatHTML)
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	res, err := figmacodegen.GenerateJSON(body, figmacodegen.Options{
		Format:        emitter.Format(format),
		IncludeStyles: true,
		Pipeline:      s.cfg.Pipeline,
		Logger:        s.log,
	})
	if err != nil {
		status, code := statusFor(err)
		metrics.RecordConversion(format, code, time.Since(start))
		writeError(w, status, code, err.Error())
		return
	}

	metrics.RecordConversion(string(res.Format), "success", time.Since(start))
	metrics.RecordArchive(figmacodegen.ScreenCount(res.Screens), len(res.Archive))
	for _, warn := range res.Warnings {
		metrics.RecordPipelineWarning(string(warn.Code))
	}

	filename := fmt.Sprintf("figma-codegen-%s.zip", uuid.NewString())
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Archive)))
	w.Write(res.Archive)
}

// inspectResponse summarizes what a conversion would find without generating
// any code.
type inspectResponse struct {
	Screens  int      `json:"screens"`
	Elements int      `json:"elements"`
	Texts    []string `json:"texts"`
	Tokens   []string `json:"tokens"`
	Warnings []string `json:"warnings"`
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	doc, err := figma.ParseDocument(body)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, err.Error())
		return
	}

	norm, err := normalizer.New(s.cfg.Pipeline).Normalize(doc)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, err.Error())
		return
	}

	texts := ast.ExtractAllText(norm.Screens)
	if texts == nil {
		texts = []string{}
	}
	warnings := make([]string, 0, len(norm.Warnings))
	for _, warn := range norm.Warnings {
		warnings = append(warnings, warn.String())
	}

	writeJSON(w, http.StatusOK, inspectResponse{
		Screens:  ast.ScreenCount(norm.Screens),
		Elements: norm.Elements,
		Texts:    texts,
		Tokens:   emitter.TokenSummary(norm.Screens),
		Warnings: warnings,
	})
}

const previewShell = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>README preview</title>
<style>body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }</style>
</head>
<body>
%s</body>
</html>
`

// handlePreviewREADME runs the pipeline up to emission and renders the
// generated README as HTML.
func (s *Server) handlePreviewREADME(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("format")
	if raw == "" {
		raw = string(emitter.FormatHTML)
	}
	format, err := emitter.ParseFormat(raw)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, err.Error())
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	doc, err := figma.ParseDocument(body)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, err.Error())
		return
	}
	norm, err := normalizer.New(s.cfg.Pipeline).Normalize(doc)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, err.Error())
		return
	}
	classifier.Annotate(norm.Screens)

	out, err := emitter.Emit(norm.Screens, format, emitter.Options{IncludeStyles: true})
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, err.Error())
		return
	}

	readme, ok := out.Files.Get("README.md")
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal", "emission produced no README")
		return
	}

	var html bytes.Buffer
	if err := markdown.Convert(readme, &html); err != nil {
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, previewShell, html.String())
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"formats": emitter.Formats()})
}

// readBody reads the posted document under the configured size cap. On
// failure the error response has already been written.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		} else {
			writeError(w, http.StatusBadRequest, "body_read", "could not read request body")
		}
		return nil, false
	}
	return body, true
}
