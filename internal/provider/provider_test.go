package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/session"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

const testCNR = "DLHC010012342023"

func ecourtsConfig(a, b string) config.ECourtsConfig {
	return config.ECourtsConfig{EndpointA: a, EndpointB: b, Timeout: 5 * time.Second}
}

func TestECourtsRejectsMalformedCNRWithoutNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	p := NewECourts(ecourtsConfig(srv.URL, ""), time.Second, logging.NewNopLogger())
	lookup := p.GetCaseByCNR(context.Background(), "short")

	assert.True(t, lookup.Failed())
	assert.Equal(t, errors.CodeInvalidCNR, lookup.Code)
	assert.False(t, called, "malformed cnr must not reach the network")
}

func TestECourtsFailoverToSecondary(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer primary.Close()

	secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cnr": "` + testCNR + `", "title": "A vs B", "courtName": "High Court of Delhi"}`))
	}))
	defer secondary.Close()

	p := NewECourts(ecourtsConfig(primary.URL, secondary.URL), time.Second, logging.NewNopLogger())
	lookup := p.GetCaseByCNR(context.Background(), testCNR)

	require.Equal(t, court.StatusOK, lookup.Status)
	assert.Equal(t, "A vs B", lookup.Case.Title)
}

func TestECourtsNoFailoverOnNoData(t *testing.T) {
	secondaryCalled := false
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer primary.Close()
	secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secondaryCalled = true
	}))
	defer secondary.Close()

	p := NewECourts(ecourtsConfig(primary.URL, secondary.URL), time.Second, logging.NewNopLogger())
	lookup := p.GetCaseByCNR(context.Background(), testCNR)

	assert.True(t, lookup.Failed())
	assert.Equal(t, errors.CodeNoData, lookup.Code)
	assert.False(t, secondaryCalled, "a definitive no-record answer must not fail over")
}

func TestECourtsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	p := NewECourts(ecourtsConfig(srv.URL, ""), time.Second, logging.NewNopLogger())
	lookup := p.GetCaseByCNR(context.Background(), testCNR)

	assert.True(t, lookup.Failed())
	assert.Equal(t, errors.CodeUpstreamParseError, lookup.Code)
}

func TestECourtsEmptyBodyIsNoData(t *testing.T) {
	secondaryCalled := false
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer primary.Close()
	secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secondaryCalled = true
	}))
	defer secondary.Close()

	p := NewECourts(ecourtsConfig(primary.URL, secondary.URL), time.Second, logging.NewNopLogger())
	lookup := p.GetCaseByCNR(context.Background(), testCNR)

	assert.True(t, lookup.Failed())
	assert.Equal(t, errors.CodeNoData, lookup.Code)
	assert.False(t, secondaryCalled, "an empty body is a definitive answer, not an availability failure")
}

func highCourtPortal(t *testing.T, upstream string, store session.Store) Provider {
	t.Helper()
	cfg := config.PortalsConfig{HighCourtBaseURL: upstream, Timeout: 5 * time.Second}
	return NewHighCourtPortal(cfg, time.Second, NewCaptchaDetector(), store, logging.NewNopLogger())
}

func TestPortalSuspendsOnCaptchaAndParksSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"captchaRequired": true, "captchaUrl": "https://hc.example/captcha.png"}`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore(time.Minute)
	p := highCourtPortal(t, srv.URL, store)
	lookup := p.GetCaseByCNR(context.Background(), testCNR)

	require.True(t, lookup.Suspended())
	require.NotNil(t, lookup.Action)
	assert.Equal(t, "https://hc.example/captcha.png", lookup.Action.CaptchaURL)
	require.NotEmpty(t, lookup.Action.SessionID)

	parked, err := store.Get(context.Background(), lookup.Action.SessionID)
	require.NoError(t, err)
	assert.Equal(t, testCNR, parked.CNR)
}

func TestPortalCleanResponsePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cnr": "` + testCNR + `", "title": "X vs Y"}`))
	}))
	defer srv.Close()

	p := highCourtPortal(t, srv.URL, session.NewMemoryStore(time.Minute))
	lookup := p.GetCaseByCNR(context.Background(), testCNR)

	require.Equal(t, court.StatusOK, lookup.Status)
	assert.Nil(t, lookup.Action)
	assert.Equal(t, "X vs Y", lookup.Case.Title)
}

func TestCaptchaDetectorMarkers(t *testing.T) {
	d := NewCaptchaDetector()

	_, hit := d.Detect(map[string]interface{}{"error": "Please solve the CAPTCHA to continue"})
	assert.True(t, hit)

	url, hit := d.Detect(map[string]interface{}{"captcha_url": "https://x/c.png"})
	assert.True(t, hit)
	assert.Equal(t, "https://x/c.png", url)

	_, hit = d.Detect(map[string]interface{}{"cnr": testCNR})
	assert.False(t, hit)
}

func newManual() *ManualProvider {
	return NewManual(NewAlwaysAvailableProbe(), logging.NewNopLogger())
}

func TestManualImportAndLookup(t *testing.T) {
	ctx := context.Background()
	p := newManual()

	require.NoError(t, p.ImportCase(ctx, &court.CanonicalCase{
		CNR:        testCNR,
		CaseNumber: "W.P. 1/2023",
		Title:      "A vs B",
		Court:      "High Court of Delhi",
		Parties: []court.Party{
			{Name: "A", Type: court.PartyPetitioner},
			{Name: "B", Type: court.PartyRespondent},
		},
	}))

	lookup := p.GetCaseByCNR(ctx, testCNR)
	require.Equal(t, court.StatusOK, lookup.Status)
	assert.Equal(t, "A vs B", lookup.Case.Title)

	missing := p.GetCaseByCNR(ctx, "KABC010012342023")
	assert.Equal(t, errors.CodeNoData, missing.Code)
}

func TestManualImportRejectsBadCNR(t *testing.T) {
	err := newManual().ImportCase(context.Background(), &court.CanonicalCase{CNR: "nope"})
	assert.Equal(t, errors.CodeInvalidCNR, errors.GetCode(err))
}

func TestManualSearchFiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	p := newManual()
	require.NoError(t, p.ImportCase(ctx, &court.CanonicalCase{
		CNR: "KABC010012342023", Title: "Ravi vs State",
		Parties: []court.Party{{Name: "Ravi Kumar", Type: court.PartyPetitioner}},
	}))
	require.NoError(t, p.ImportCase(ctx, &court.CanonicalCase{
		CNR: "KABC010012352023", Title: "Asha vs State",
		Parties: []court.Party{{Name: "Asha Devi", Type: court.PartyPetitioner}},
	}))

	res, err := p.SearchCases(ctx, court.SearchFilters{PartyName: "ravi"})
	require.NoError(t, err)
	require.Len(t, res.Cases, 1)
	assert.Equal(t, "Ravi vs State", res.Cases[0].Title)

	// Empty filters are a valid search returning everything.
	all, err := p.SearchCases(ctx, court.SearchFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	page, err := p.SearchCases(ctx, court.SearchFilters{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page.Cases, 1)
	assert.Equal(t, 2, page.Total)
}

func TestManualImportOrdersAppends(t *testing.T) {
	ctx := context.Background()
	p := newManual()
	require.NoError(t, p.ImportCase(ctx, &court.CanonicalCase{CNR: testCNR}))
	require.NoError(t, p.ImportOrders(ctx, testCNR, []court.Order{{Name: "Interim Order"}}))
	require.NoError(t, p.ImportOrders(ctx, testCNR, []court.Order{{Name: "Final Order"}}))

	orders, err := p.ListOrders(ctx, testCNR)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 1, orders[0].Number)
	assert.Equal(t, 2, orders[1].Number)
}

type downProbe struct{}

func (downProbe) Available(_ context.Context) error {
	return errors.New(errors.CodeUpstreamUnavailable, "store offline")
}

func TestManualUnavailableProbe(t *testing.T) {
	p := NewManual(downProbe{}, logging.NewNopLogger())
	lookup := p.GetCaseByCNR(context.Background(), testCNR)
	assert.True(t, lookup.Failed())
	assert.Equal(t, errors.CodeUpstreamUnavailable, lookup.Code)
}

func TestJudgmentsAcceptsLooseIdentifiers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"docId": "SCJUDG2019004512", "title": "U vs S", "judgment_date": "2019-11-21"}`))
	}))
	defer srv.Close()

	p := NewJudgments(config.JudgmentsConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, time.Second, logging.NewNopLogger())

	// 14 characters: invalid for strict providers, valid here.
	lookup := p.GetCaseByCNR(context.Background(), "SCJUDG20190045")
	require.Equal(t, court.StatusOK, lookup.Status)

	bad := p.GetCaseByCNR(context.Background(), "has-hyphens-1234")
	assert.Equal(t, errors.CodeInvalidCNR, bad.Code)
}

func testFactory() *Factory {
	return NewFactory(Deps{
		Cfg: config.ProvidersConfig{
			Vendors:      []config.VendorConfig{{Name: "kleopatra", BaseURL: "https://k.example"}},
			ProbeTimeout: time.Second,
		},
		Detector: NewCaptchaDetector(),
		Probe:    NewAlwaysAvailableProbe(),
		Sessions: session.NewMemoryStore(time.Minute),
		Logger:   logging.NewNopLogger(),
	})
}

func TestFactoryCreatesRegisteredTypes(t *testing.T) {
	f := testFactory()
	for _, tag := range []string{TypeECourts, TypeDistrictPortal, TypeHighCourtPortal, TypeJudgments, TypeManual, "kleopatra"} {
		p, err := f.Create(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, tag, p.Name())
	}
}

func TestFactoryRejectsUnknownType(t *testing.T) {
	_, err := testFactory().Create("mystery")
	assert.Equal(t, errors.CodeUnknownProviderType, errors.GetCode(err))
}

func TestFactoryManualIsShared(t *testing.T) {
	f := testFactory()
	a, err := f.Create(TypeManual)
	require.NoError(t, err)
	b, err := f.Create(TypeManual)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestVendorEndpointSlug(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"data": {"cnr_number": "` + testCNR + `"}}`))
	}))
	defer srv.Close()

	p := NewVendor(config.VendorConfig{Name: "surepass", BaseURL: srv.URL, Timeout: 5 * time.Second}, time.Second, logging.NewNopLogger())
	lookup := p.GetCaseByCNR(context.Background(), testCNR)

	require.Equal(t, court.StatusOK, lookup.Status)
	// DLHC classifies as a high-court CNR.
	assert.Equal(t, "/api/core/live/high-court/case", path)
	assert.Equal(t, "high-court", lookup.Endpoint)
}

func TestVendorEmptyBodyIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := NewVendor(config.VendorConfig{Name: "surepass", BaseURL: srv.URL, Timeout: 5 * time.Second}, time.Second, logging.NewNopLogger())
	lookup := p.GetCaseByCNR(context.Background(), testCNR)

	assert.True(t, lookup.Failed())
	assert.Equal(t, errors.CodeNoData, lookup.Code)
	assert.Equal(t, "high-court", lookup.Endpoint, "a no-record answer keeps its endpoint attribution")
}

func TestPortalEmptyBodyIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer srv.Close()

	p := highCourtPortal(t, srv.URL, session.NewMemoryStore(time.Minute))
	lookup := p.GetCaseByCNR(context.Background(), testCNR)

	assert.True(t, lookup.Failed())
	assert.Equal(t, errors.CodeNoData, lookup.Code)
}
