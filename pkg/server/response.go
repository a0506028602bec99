package server

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/hellenic-development/figma-codegen/pkg/emitter"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/normalizer"
	"github.com/hellenic-development/figma-codegen/pkg/packager"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response carrying a machine-readable code
// alongside the human-readable message.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}

// statusFor maps pipeline errors onto HTTP status and error codes. Malformed
// input and bad format selectors are the caller's fault; an empty design is
// semantically unprocessable; archive assembly failures are ours.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, figma.ErrInputShape):
		return http.StatusBadRequest, "input_shape"
	case errors.Is(err, emitter.ErrUnsupportedFormat):
		return http.StatusBadRequest, "unsupported_format"
	case errors.Is(err, normalizer.ErrEmptyDesign):
		return http.StatusUnprocessableEntity, "empty_design"
	case errors.Is(err, packager.ErrArchive):
		return http.StatusInternalServerError, "archive"
	}
	return http.StatusInternalServerError, "internal"
}
