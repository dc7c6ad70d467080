package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/application/resolution"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// CaseHandler serves the case resolution API.
type CaseHandler struct {
	orchestrator *resolution.Orchestrator
	logger       logging.Logger
}

// NewCaseHandler constructs the handler set over the orchestrator.
func NewCaseHandler(orchestrator *resolution.Orchestrator, logger logging.Logger) *CaseHandler {
	return &CaseHandler{orchestrator: orchestrator, logger: logger.Named("http")}
}

// GetCaseByCNR resolves a single case. A suspended lookup answers 202
// with the captcha action; failures map through the shared status table.
func (h *CaseHandler) GetCaseByCNR(w http.ResponseWriter, r *http.Request) {
	cnr := chi.URLParam(r, "cnr")
	lookup := h.orchestrator.Lookup(r.Context(), cnr)
	writeLookup(w, lookup)
}

func writeLookup(w http.ResponseWriter, lookup court.Lookup) {
	envelope := court.EnvelopeFromLookup(lookup)
	switch lookup.Status {
	case court.StatusOK:
		writeJSON(w, http.StatusOK, envelope)
	case court.StatusActionRequired:
		writeJSON(w, http.StatusAccepted, envelope)
	default:
		writeJSON(w, errors.StatusFor(lookup.Code), envelope)
	}
}

// SearchCases runs a filtered search against the active chain's search
// provider. An empty filter set is valid and returns the provider's
// default page.
func (h *CaseHandler) SearchCases(w http.ResponseWriter, r *http.Request) {
	var filters court.SearchFilters
	if err := decodeBody(r, &filters); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.orchestrator.Search(r.Context(), filters)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetCauseList returns the daily listing for a court. The date defaults
// to today when absent.
func (h *CaseHandler) GetCauseList(w http.ResponseWriter, r *http.Request) {
	courtID := r.URL.Query().Get("court")
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, h.logger, errors.New(errors.CodeInvalidParam, "date must be YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	entries, err := h.orchestrator.CauseList(r.Context(), courtID, date)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":    date.Format("2006-01-02"),
		"court":   courtID,
		"entries": entries,
	})
}

// ListOrders returns the order metadata of a case.
func (h *CaseHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orchestrator.ListOrders(r.Context(), chi.URLParam(r, "cnr"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// DownloadOrder streams an order document.
func (h *CaseHandler) DownloadOrder(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 {
		writeError(w, h.logger, errors.New(errors.CodeInvalidParam, "order number must be a positive integer"))
		return
	}

	artifact, err := h.orchestrator.DownloadOrder(r.Context(), chi.URLParam(r, "cnr"), number)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	contentType := artifact.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+artifact.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}

// ResumeLookup retries a lookup that was suspended for a captcha.
func (h *CaseHandler) ResumeLookup(w http.ResponseWriter, r *http.Request) {
	lookup := h.orchestrator.Resume(r.Context(), chi.URLParam(r, "sessionID"))
	writeLookup(w, lookup)
}

// ImportCase stores a case in the manual provider.
func (h *CaseHandler) ImportCase(w http.ResponseWriter, r *http.Request) {
	var c court.CanonicalCase
	if err := decodeBody(r, &c); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := h.orchestrator.Manual().ImportCase(r.Context(), &c); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"cnr": c.CNR})
}

// ImportOrders appends orders to an imported case.
func (h *CaseHandler) ImportOrders(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Orders []court.Order `json:"orders"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, h.logger, err)
		return
	}

	cnr := chi.URLParam(r, "cnr")
	if err := h.orchestrator.Manual().ImportOrders(r.Context(), cnr, body.Orders); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"cnr": cnr, "added": len(body.Orders)})
}

// ListProviders describes the active resolution chain.
func (h *CaseHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mode":      h.orchestrator.Mode(),
		"providers": h.orchestrator.Providers(),
	})
}

// ProbeProviders runs connectivity probes across the chain.
func (h *CaseHandler) ProbeProviders(w http.ResponseWriter, r *http.Request) {
	results := h.orchestrator.ProbeAll(r.Context())

	statuses := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			statuses[name] = err.Error()
			healthy = false
		} else {
			statuses[name] = "ok"
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]interface{}{"healthy": healthy, "providers": statuses})
}

// Health is the liveness endpoint.
func (h *CaseHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
