package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the API HTTP router.
//
// This is intentionally a thin adapter: handlers decode JSON, delegate to
// the app services and serialize the result.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	// Baseline production-safe middleware (minimal but useful).
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health endpoint is deliberately unversioned (used for infra checks).
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/workbook/sheets", s.handleListSheets)
	r.Post("/rosters/normalize", s.handleNormalizeNames)
	r.Post("/pairings/rounds", s.handleGenerateRound)
	r.Post("/pairings/duplicate-check", s.handleCheckDuplicates)
	r.Get("/history/rounds", s.handleListHistory)

	return r
}
