package server_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hellenic-development/figma-codegen/pkg/config"
	"github.com/hellenic-development/figma-codegen/pkg/server"
)

// loginJSON is a minimal single-screen document: one frame with one text
// element, in the bare node-wrapper shape.
const loginJSON = `{
	"children": [{
		"type": "FRAME",
		"name": "Login Screen",
		"boundingBox": {"x": 0, "y": 0, "width": 375, "height": 667},
		"children": [{
			"type": "TEXT",
			"characters": "Login",
			"boundingBox": {"x": 10, "y": 10, "width": 100, "height": 20}
		}]
	}]
}`

func newTestServer(cfg config.Config) *server.Server {
	return server.NewServer(cfg, zap.NewNop().Sugar())
}

func post(t *testing.T, srv *server.Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, srv *server.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["code"], body["error"]
}

func TestConvertReturnsArchive(t *testing.T) {
	srv := newTestServer(config.Default())

	rec := post(t, srv, "/api/convert?format=react", loginJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	disposition := rec.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment; filename=")
	assert.Contains(t, disposition, ".zip")

	archive := rec.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "src/GeneratedApp.jsx")
	assert.Contains(t, names, "package.json")
	assert.Contains(t, names, "README.md")
}

func TestConvertDefaultsToHTML(t *testing.T) {
	srv := newTestServer(config.Default())

	rec := post(t, srv, "/api/convert", loginJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	archive := rec.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	var hasIndex bool
	for _, f := range zr.File {
		if f.Name == "index.html" {
			hasIndex = true
		}
	}
	assert.True(t, hasIndex, "default conversion emits index.html")
}

func TestConvertUnsupportedFormat(t *testing.T) {
	srv := newTestServer(config.Default())

	rec := post(t, srv, "/api/convert?format=angular", loginJSON)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, message := decodeError(t, rec)
	assert.Equal(t, "unsupported_format", code)
	assert.Contains(t, message, "angular")
}

func TestConvertUnrecognizedShape(t *testing.T) {
	srv := newTestServer(config.Default())

	rec := post(t, srv, "/api/convert", `[1, 2, 3]`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, "input_shape", code)
}

func TestConvertEmptyDesign(t *testing.T) {
	srv := newTestServer(config.Default())

	rec := post(t, srv, "/api/convert", `{"children": []}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, "empty_design", code)
}

func TestConvertBodyTooLarge(t *testing.T) {
	cfg := config.Default()
	cfg.Server.MaxBodyBytes = 10
	srv := newTestServer(cfg)

	rec := post(t, srv, "/api/convert", loginJSON)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, "body_too_large", code)
}

func TestInspect(t *testing.T) {
	srv := newTestServer(config.Default())

	rec := post(t, srv, "/api/inspect", loginJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Screens  int      `json:"screens"`
		Elements int      `json:"elements"`
		Texts    []string `json:"texts"`
		Tokens   []string `json:"tokens"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 1, body.Screens)
	assert.Equal(t, 2, body.Elements)
	assert.Equal(t, []string{"Login"}, body.Texts)
	assert.Equal(t, []string{"text-xs: 14px"}, body.Tokens, "defaulted typography surfaces as a token scale")
	assert.Contains(t, strings.Join(body.Warnings, "\n"), "low_yield")
}

func TestPreviewREADME(t *testing.T) {
	srv := newTestServer(config.Default())

	rec := post(t, srv, "/api/preview/readme?format=react", loginJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	html := rec.Body.String()
	assert.Contains(t, html, "<h1>GeneratedApp</h1>")
	assert.Contains(t, html, "<table>", "screens table renders as HTML")
	assert.Contains(t, html, "Login Screen")
}

func TestPreviewREADMEUnsupportedFormat(t *testing.T) {
	srv := newTestServer(config.Default())

	rec := post(t, srv, "/api/preview/readme?format=svelte", loginJSON)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, "unsupported_format", code)
}

func TestFormats(t *testing.T) {
	srv := newTestServer(config.Default())

	rec := get(t, srv, "/api/formats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Formats []string `json:"formats"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []string{"html", "react", "vue", "moneyview"}, body.Formats)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(config.Default())

	rec := get(t, srv, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
