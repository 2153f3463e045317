package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/rs/zerolog"

	"github.com/vishnuv4/students-excel/internal/app/pairing"
	"github.com/vishnuv4/students-excel/internal/app/roster"
	"github.com/vishnuv4/students-excel/internal/domain"
	"github.com/vishnuv4/students-excel/internal/ports/out/historyrepo"
)

// Server is the HTTP adapter over the app services.
type Server struct {
	Roster   *roster.Service
	Pairings *pairing.Service
	Log      zerolog.Logger
}

func NewServer(rosterSvc *roster.Service, pairingSvc *pairing.Service, log zerolog.Logger) *Server {
	return &Server{
		Roster:   rosterSvc,
		Pairings: pairingSvc,
		Log:      log,
	}
}

type pairJSON struct {
	A string `json:"a"`
	B string `json:"b"`
}

func pairsJSON(pairs []domain.Pair) []pairJSON {
	out := make([]pairJSON, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, pairJSON{A: p.A, B: p.B})
	}
	return out
}

func (s *Server) handleListSheets(w http.ResponseWriter, r *http.Request) {
	sheets, err := s.Roster.ListSheets(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Sheets []string `json:"sheets"`
	}{Sheets: sheets})
}

type normalizeNamesRequest struct {
	SourceSheet      string `json:"sourceSheet"`
	TargetSheet      string `json:"targetSheet"`
	ExpectedCount    int    `json:"expectedCount"`
	DropLeadingRows  int    `json:"dropLeadingRows"`
	DropTrailingRows int    `json:"dropTrailingRows"`
}

func (s *Server) handleNormalizeNames(w http.ResponseWriter, r *http.Request) {
	var req normalizeNamesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := s.Roster.NormalizeNames(r.Context(), roster.NormalizeNamesInput{
		SourceSheet:      req.SourceSheet,
		TargetSheet:      req.TargetSheet,
		ExpectedCount:    req.ExpectedCount,
		DropLeadingRows:  req.DropLeadingRows,
		DropTrailingRows: req.DropTrailingRows,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Sheet string   `json:"sheet"`
		Names []string `json:"names"`
	}{Sheet: res.Sheet, Names: res.Names})
}

type generateRoundRequest struct {
	NamesSheet  string `json:"namesSheet"`
	TargetSheet string `json:"targetSheet"`

	// Seed distinguishes absent/null (nondeterministic draw) from a value.
	Seed nullable.Nullable[int64] `json:"seed,omitempty"`
}

type generateRoundResponse struct {
	RoundID string     `json:"roundId,omitempty"`
	Label   string     `json:"label"`
	Pairs   []pairJSON `json:"pairs"`
}

func (s *Server) handleGenerateRound(w http.ResponseWriter, r *http.Request) {
	var req generateRoundRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := pairing.GenerateRoundInput{
		NamesSheet:  req.NamesSheet,
		TargetSheet: req.TargetSheet,
	}
	if req.Seed.IsSpecified() && !req.Seed.IsNull() {
		if v, err := req.Seed.Get(); err == nil {
			in.Seed = &v
		}
	}

	res, err := s.Pairings.GenerateRound(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, generateRoundResponse{
		RoundID: string(res.RoundID),
		Label:   res.Label,
		Pairs:   pairsJSON(res.Pairs),
	})
}

type checkDuplicatesRequest struct {
	Sheets []string `json:"sheets"`
}

type comparisonJSON struct {
	RoundA string     `json:"roundA"`
	RoundB string     `json:"roundB"`
	Common []pairJSON `json:"common"`
}

func (s *Server) handleCheckDuplicates(w http.ResponseWriter, r *http.Request) {
	var req checkDuplicatesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := s.Pairings.CheckDuplicates(r.Context(), pairing.CheckDuplicatesInput{Sheets: req.Sheets})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]comparisonJSON, 0, len(res))
	for _, c := range res {
		out = append(out, comparisonJSON{
			RoundA: c.RoundA,
			RoundB: c.RoundB,
			Common: pairsJSON(c.Common),
		})
	}
	writeJSON(w, http.StatusOK, struct {
		Comparisons []comparisonJSON `json:"comparisons"`
	}{Comparisons: out})
}

type roundJSON struct {
	RoundID   string     `json:"roundId"`
	Label     string     `json:"label"`
	Seed      *int64     `json:"seed"`
	Pairs     []pairJSON `json:"pairs"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	rounds, err := s.Pairings.ListHistory(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]roundJSON, 0, len(rounds))
	for _, rd := range rounds {
		out = append(out, roundFromDomain(rd))
	}
	writeJSON(w, http.StatusOK, struct {
		Rounds []roundJSON `json:"rounds"`
	}{Rounds: out})
}

func roundFromDomain(r historyrepo.Round) roundJSON {
	return roundJSON{
		RoundID:   string(r.ID),
		Label:     r.Label,
		Seed:      r.Seed,
		Pairs:     pairsJSON(r.Pairs),
		CreatedAt: r.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", nil)
		return false
	}
	return true
}
