package httpserver

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvaldez/fitpulse/internal/domain"
)

func (s *Server) handleListWeightLogs(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var from, to *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(w, "invalid from date, expected YYYY-MM-DD")
			return
		}
		from = &t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(w, "invalid to date, expected YYYY-MM-DD")
			return
		}
		to = &t
	}
	list, err := s.progress.History(r.Context(), userID, from, to)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateWeightLog(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var req struct {
		WeightKG decimal.Decimal `json:"weight_kg"`
		Date     string          `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	entry := &domain.WeightLog{UserID: userID, WeightKG: req.WeightKG}
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			badRequest(w, "invalid date, expected YYYY-MM-DD")
			return
		}
		entry.DateLogged = t
	}
	if err := s.progress.LogWeight(r.Context(), entry); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
