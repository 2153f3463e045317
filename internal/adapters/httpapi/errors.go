package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/vishnuv4/students-excel/internal/app/pairing"
	"github.com/vishnuv4/students-excel/internal/app/roster"
)

type errorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
}

// writeError maps an app-layer error to its HTTP response. Anything that is
// not an app error is logged and reported as an opaque 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if ae := (*roster.Error)(nil); errors.As(err, &ae) {
		writeAPIError(w, r, ae.Status, ae.Code, ae.Message, ae.Details)
		return
	}
	if ae := (*pairing.Error)(nil); errors.As(err, &ae) {
		writeAPIError(w, r, ae.Status, ae.Code, ae.Message, ae.Details)
		return
	}

	s.Log.Error().Err(err).Str("path", r.URL.Path).Msg("unhandled error")
	writeAPIError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code string, message string, details map[string]any) {
	resp := errorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		resp.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
