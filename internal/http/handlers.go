package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"jizhang/internal/analytics"
	"jizhang/internal/core"
	"jizhang/internal/parser"
	"jizhang/internal/store"
)

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Records []core.ExpenseRecord `json:"records"`
	Count   int                  `json:"count"`
}

type createResponse struct {
	Records []store.StoredRecord `json:"records"`
	Count   int                  `json:"count"`
}

type analyzeRequest struct {
	Records []core.ExpenseRecord `json:"records"`
	Period  string               `json:"period"`
}

// handleParse runs the parsing engine over the submitted text. Nothing is
// stored; text without recognizable amounts yields an empty record list.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	records := parser.Parse(sanitizeInput(req.Text))
	if records == nil {
		records = []core.ExpenseRecord{}
	}
	writeJSON(w, http.StatusOK, parseResponse{Records: records, Count: len(records)})
}

// handleCreateExpenses parses the submitted text and appends every resulting
// record to the store.
func (s *Server) handleCreateExpenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	stored, err := s.records.CreateFromText(r.Context(), sanitizeInput(req.Text))
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to create expense records", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store records")
		return
	}
	if stored == nil {
		stored = []store.StoredRecord{}
	}
	writeJSON(w, http.StatusCreated, createResponse{Records: stored, Count: len(stored)})
}

// handleAnalyze runs the analytics engine over caller-supplied records
// without touching the store.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result := analytics.Analyze(req.Records, core.ParsePeriod(req.Period))
	writeJSON(w, http.StatusOK, result)
}

// handleAnalysis analyzes everything currently in the store. An unknown or
// absent period falls back to all-time.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	period := core.ParsePeriod(r.URL.Query().Get("period"))
	result, err := s.records.Overview(r.Context(), period)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to analyze records", "error", err, "period", period)
		writeError(w, http.StatusInternalServerError, "failed to analyze records")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleAnalysisChart renders the stored records' analysis as a PNG chart.
func (s *Server) handleAnalysisChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = "trend"
	}
	if kind != "trend" && kind != "category" {
		writeError(w, http.StatusBadRequest, "unknown chart kind: "+kind)
		return
	}

	period := core.ParsePeriod(r.URL.Query().Get("period"))
	result, err := s.records.Overview(r.Context(), period)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to analyze records", "error", err, "period", period)
		writeError(w, http.StatusInternalServerError, "failed to analyze records")
		return
	}

	var png []byte
	switch kind {
	case "trend":
		png, err = s.charts.TrendChart(result)
	case "category":
		png, err = s.charts.CategoryChart(result)
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to render chart", "error", err, "kind", kind, "period", period)
		writeError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}
	if png == nil {
		writeError(w, http.StatusNotFound, "no data for the requested period")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		slog.ErrorContext(r.Context(), "Failed to write chart response", "error", err)
	}
}
