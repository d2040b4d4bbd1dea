package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"sman/internal/category"
	"sman/internal/core"
	"sman/internal/services"
	"sman/internal/voice"
)

// periodFromQuery reads the viewing period from query parameters.
// ?date=YYYY-MM-DD is a day deep link; otherwise ?period= plus ?value=
// select the window. Missing parameters mean the whole ledger.
func periodFromQuery(r *http.Request) (core.Period, bool) {
	q := r.URL.Query()

	if date := q.Get("date"); date != "" {
		if !core.ValidDate(date) {
			return core.Period{}, false
		}
		return core.Day(date), true
	}

	value := q.Get("value")
	switch q.Get("period") {
	case "", "all":
		return core.All(), true
	case "day":
		if !core.ValidDate(value) {
			return core.Period{}, false
		}
		return core.Day(value), true
	case "month":
		if len(value) != 7 {
			return core.Period{}, false
		}
		return core.Month(value), true
	case "year":
		if len(value) != 4 {
			return core.Period{}, false
		}
		return core.Year(value), true
	default:
		return core.Period{}, false
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	p, ok := periodFromQuery(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid period parameters")
		return
	}
	txs, err := s.ledger.ListTransactions(r.Context(), p)
	if err != nil {
		slog.ErrorContext(r.Context(), "List transactions failed", "error", err)
		writeDomainError(w, err)
		return
	}
	if txs == nil {
		txs = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in services.CreateTransactionInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	tx, err := s.ledger.CreateTransaction(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.ledger.DeleteTransaction(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	p, ok := periodFromQuery(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid period parameters")
		return
	}
	sum, err := s.ledger.Summary(r.Context(), p)
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary failed", "error", err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	days, err := s.ledger.Calendar(r.Context(), month)
	if err != nil {
		if errors.Is(err, core.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, "invalid month: expected YYYY-MM")
			return
		}
		slog.ErrorContext(r.Context(), "Calendar failed", "error", err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

type categoriesResponse struct {
	Groups      []category.Group `json:"groups"`
	Income      category.Entry   `json:"income"`
	ChartColors []string         `json:"chartColors"`
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{
		Groups:      category.Groups,
		Income:      category.IncomeCategory,
		ChartColors: category.ChartColors,
	})
}

func (s *Server) handleListDiaries(w http.ResponseWriter, r *http.Request) {
	p, ok := periodFromQuery(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid period parameters")
		return
	}
	diaries, err := s.ledger.ListDiaries(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List diaries failed", "error", err)
		writeDomainError(w, err)
		return
	}
	diaries = core.FilterDiaries(diaries, p)
	if diaries == nil {
		diaries = []core.Diary{}
	}
	writeJSON(w, http.StatusOK, diaries)
}

func (s *Server) handleGetDiary(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if !core.ValidDate(date) {
		writeError(w, http.StatusBadRequest, "invalid date: expected YYYY-MM-DD")
		return
	}
	d, err := s.ledger.GetDiary(r.Context(), date)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type saveDiaryRequest struct {
	Content string `json:"content"`
}

// handleSaveDiary upserts the diary for the date. Blank content removes
// the entry; both cases answer 204.
func (s *Server) handleSaveDiary(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	var req saveDiaryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.ledger.SaveDiary(r.Context(), core.Diary{Date: date, Content: req.Content}); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	filename, text, err := s.ledger.ExportText(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Export failed", "error", err)
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 10<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read request body: "+err.Error())
		return
	}
	res, err := s.ledger.ImportText(r.Context(), string(body))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type voiceDraftRequest struct {
	Text string `json:"text"`
}

type voiceDraftResponse struct {
	voice.Draft
	Date string `json:"date,omitempty"`
}

// handleVoiceDraft turns a spoken phrase into a transaction draft. The
// draft is a suggestion for the client form, never a stored record.
func (s *Server) handleVoiceDraft(w http.ResponseWriter, r *http.Request) {
	var req voiceDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, http.StatusUnprocessableEntity, "text is empty")
		return
	}
	if utf8.RuneCountInString(text) > s.voiceDraftMaxLen {
		writeError(w, http.StatusUnprocessableEntity, "text too long")
		return
	}

	draft := voice.Parse(voice.Normalize(text))
	resp := voiceDraftResponse{Draft: draft}
	if date, ok := draft.Date(core.Today); ok {
		resp.Date = date
	}
	writeJSON(w, http.StatusOK, resp)
}
