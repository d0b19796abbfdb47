package httpapi

import (
	"encoding/json"
	"net/http"

	"lingod/internal/pipeline"
	"lingod/pkg/types"
)

// statusForKind maps a pipeline result kind to its HTTP status code.
func statusForKind(kind string) int {
	switch kind {
	case pipeline.KindValidation, pipeline.KindTokenization:
		return http.StatusBadRequest
	case pipeline.KindTimeout:
		return http.StatusTooManyRequests
	case pipeline.KindModelLoad:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeJSONError writes a consistent JSON error payload for transport-level
// failures that never reached the pipeline.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
