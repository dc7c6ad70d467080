package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/application/resolution"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/messaging/kafka"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/prometheus"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/session"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/storage/minio"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/provider"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

const testCNR = "DLHC010012342023"

// newTestAPI wires the full stack in manual mode. The portal sources have
// no base URL configured so their attempts fail without touching the
// network and every lookup falls through to the imported local store.
func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Providers.Mode = resolution.ModeManual
	cfg.Metrics.Enabled = true

	logger := logging.NewNopLogger()
	sessions := session.NewMemoryStore(time.Minute)
	factory := provider.NewFactory(provider.Deps{
		Cfg:      cfg.Providers,
		Detector: provider.NewCaptchaDetector(),
		Probe:    provider.NewAlwaysAvailableProbe(),
		Sessions: sessions,
		Logger:   logger,
	})
	metrics := prometheus.NewMetrics()

	orchestrator, err := resolution.New(cfg.Providers, factory, sessions,
		minio.NewNopArchive(), metrics, kafka.NewNopPublisher(), logger)
	require.NoError(t, err)

	return NewRouter(cfg, orchestrator, metrics, logger)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := doJSON(t, newTestAPI(t), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpointExposed(t *testing.T) {
	rec := doJSON(t, newTestAPI(t), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestImportThenLookup(t *testing.T) {
	api := newTestAPI(t)

	imported := court.CanonicalCase{
		CNR:        testCNR,
		CaseNumber: "W.P. 1/2023",
		Title:      "A vs B",
		Court:      "High Court of Delhi",
	}
	rec := doJSON(t, api, http.MethodPost, "/api/v1/import/cases", imported)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, api, http.MethodGet, "/api/v1/cases/cnr/"+testCNR, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope court.Envelope[court.CanonicalCase]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Data)
	assert.Equal(t, "A vs B", envelope.Data.Title)
	assert.Equal(t, provider.TypeManual, envelope.Provider)
}

func TestLookupMalformedCNRIsBadRequest(t *testing.T) {
	rec := doJSON(t, newTestAPI(t), http.MethodGet, "/api/v1/cases/cnr/short", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope court.Envelope[court.CanonicalCase]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, string(errors.CodeInvalidCNR), envelope.Error)
}

func TestLookupUnknownCNRIsExhaustion(t *testing.T) {
	rec := doJSON(t, newTestAPI(t), http.MethodGet, "/api/v1/cases/cnr/"+testCNR, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var envelope court.Envelope[court.CanonicalCase]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, string(errors.CodeAllProvidersExhausted), envelope.Error)
	assert.True(t, envelope.RequiresManual)
}

func TestSearchEndpoint(t *testing.T) {
	api := newTestAPI(t)
	doJSON(t, api, http.MethodPost, "/api/v1/import/cases", court.CanonicalCase{
		CNR:     testCNR,
		Title:   "Ravi vs State",
		Parties: []court.Party{{Name: "Ravi Kumar", Type: court.PartyPetitioner}},
	})

	rec := doJSON(t, api, http.MethodPost, "/api/v1/cases/search", court.SearchFilters{PartyName: "ravi"})
	require.Equal(t, http.StatusOK, rec.Code)

	var result court.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Cases, 1)
	assert.Equal(t, "Ravi vs State", result.Cases[0].Title)
}

func TestSearchRejectsUnknownFields(t *testing.T) {
	rec := doJSON(t, newTestAPI(t), http.MethodPost, "/api/v1/cases/search", map[string]string{"partyNam": "typo"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportOrdersAndList(t *testing.T) {
	api := newTestAPI(t)
	doJSON(t, api, http.MethodPost, "/api/v1/import/cases", court.CanonicalCase{CNR: testCNR})

	rec := doJSON(t, api, http.MethodPost, "/api/v1/import/cases/"+testCNR+"/orders",
		map[string]interface{}{"orders": []court.Order{{Name: "Interim Order"}}})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, api, http.MethodGet, "/api/v1/cases/cnr/"+testCNR+"/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Orders []court.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Orders, 1)
	assert.Equal(t, 1, body.Orders[0].Number)
}

func TestProvidersEndpoint(t *testing.T) {
	rec := doJSON(t, newTestAPI(t), http.MethodGet, "/api/v1/providers/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Mode      string               `json:"mode"`
		Providers []court.Capabilities `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, resolution.ModeManual, body.Mode)
	require.Len(t, body.Providers, 3)
	assert.Equal(t, provider.TypeDistrictPortal, body.Providers[0].Provider)
	assert.Equal(t, provider.TypeHighCourtPortal, body.Providers[1].Provider)
	assert.Equal(t, provider.TypeManual, body.Providers[2].Provider)
}

func TestResumeUnknownSession(t *testing.T) {
	rec := doJSON(t, newTestAPI(t), http.MethodPost, "/api/v1/sessions/nope/resume", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
