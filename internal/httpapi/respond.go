package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/api"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondUpstreamError maps marketplace client errors to HTTP responses:
// structured rejections keep their upstream status, everything else is a
// gateway-level failure.
func respondUpstreamError(w http.ResponseWriter, err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		respondError(w, apiErr.Status, "upstream_rejected", apiErr.Message)
		return
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		respondError(w, http.StatusServiceUnavailable, "service_unavailable", "marketplace API is unavailable")
		return
	}
	respondError(w, http.StatusBadGateway, "upstream_error", "marketplace API request failed")
}
