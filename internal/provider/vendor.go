package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/normalize"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// VendorKleopatra is the vendor name that selects the nested Kleopatra
// response normalizer; every other vendor uses the generic one.
const VendorKleopatra = "kleopatra"

// vendorProvider adapts a paid third-party API. Vendors expose per-court
// endpoints of the form {base}/api/core/live/{court-type-slug}/case; the
// slug is derived from the CNR being resolved.
type vendorProvider struct {
	cfg          config.VendorConfig
	client       *apiClient
	normalizeFn  func(normalize.Document) *court.CanonicalCase
	probeTimeout time.Duration
	logger       logging.Logger
}

// NewVendor constructs a provider for one configured vendor.
func NewVendor(cfg config.VendorConfig, probeTimeout time.Duration, logger logging.Logger) Provider {
	normalizeFn := normalize.ThirdParty
	if cfg.Name == VendorKleopatra {
		normalizeFn = normalize.Kleopatra
	}
	return &vendorProvider{
		cfg:          cfg,
		client:       newAPIClient(cfg.Name, cfg.BaseURL, cfg.APIKey, cfg.Timeout),
		normalizeFn:  normalizeFn,
		probeTimeout: probeTimeout,
		logger:       logger.Named(cfg.Name),
	}
}

func (p *vendorProvider) Name() string { return p.cfg.Name }

func (p *vendorProvider) Capabilities() court.Capabilities {
	return court.Capabilities{
		Provider: p.cfg.Name,
		Type:     "third_party",
		Operations: []court.Operation{
			court.OpGetCaseByCNR, court.OpSearchCases, court.OpGetCauseList,
			court.OpListOrders, court.OpDownloadOrderPDF, court.OpTestConnection,
			court.OpGetCapabilities,
		},
		Courts:             court.CascadeOrder(),
		CNRRule:            court.CNRRuleStrict,
		MaxConcurrent:      4,
		RateLimitPerMinute: 120,
		RequiresAPIKey:     true,
	}
}

// casePath builds the per-court live endpoint for a court type.
func (p *vendorProvider) casePath(ct court.CourtType) string {
	return fmt.Sprintf("/api/core/live/%s/case", ct.Slug())
}

// LookupAt resolves a CNR against the endpoint for a specific court
// type. The orchestrator uses this to cascade one vendor across the
// court hierarchy after the classified tier returns no data.
func (p *vendorProvider) LookupAt(ctx context.Context, cnr string, ct court.CourtType) court.Lookup {
	if !court.CNRRuleStrict.Valid(cnr) {
		return court.LookupFailed(errors.CodeInvalidCNR, "cnr does not match the required format", p.cfg.Name)
	}

	doc, err := p.client.postJSON(ctx, p.casePath(ct), map[string]string{"cnr": cnr})
	if err != nil {
		lookup := failedLookup(err, p.cfg.Name)
		lookup.Endpoint = ct.Slug()
		return lookup
	}

	c := p.normalizeFn(doc)
	if normalize.Empty(c) {
		lookup := court.LookupFailed(errors.CodeNoData, p.cfg.Name+": no record at this endpoint", p.cfg.Name)
		lookup.Endpoint = ct.Slug()
		return lookup
	}
	lookup := court.LookupOK(c, p.cfg.Name)
	lookup.Endpoint = ct.Slug()
	return lookup
}

func (p *vendorProvider) GetCaseByCNR(ctx context.Context, cnr string) court.Lookup {
	return p.LookupAt(ctx, cnr, court.ClassifyCNR(cnr))
}

func (p *vendorProvider) SearchCases(ctx context.Context, filters court.SearchFilters) (*court.SearchResult, error) {
	body := map[string]interface{}{
		"limit":  filters.EffectiveLimit(),
		"offset": filters.Offset,
	}
	if filters.PartyName != "" {
		body["party_name"] = filters.PartyName
	}
	if filters.AdvocateName != "" {
		body["advocate_name"] = filters.AdvocateName
	}
	if filters.CaseNumber != "" {
		body["case_number"] = filters.CaseNumber
	}
	if filters.CaseType != "" {
		body["case_type"] = filters.CaseType
	}
	if filters.CaseStatus != "" {
		body["case_status"] = filters.CaseStatus
	}
	if filters.Court != "" {
		body["court"] = filters.Court
	}

	path := fmt.Sprintf("/api/core/live/%s/search", filters.EffectiveCourtType().Slug())
	doc, err := p.client.postJSON(ctx, path, body)
	if err != nil {
		return nil, err
	}

	result := normalize.SearchResults(doc, p.normalizeFn)
	result.Limit = filters.EffectiveLimit()
	result.Offset = filters.Offset
	return result, nil
}

func (p *vendorProvider) GetCauseList(ctx context.Context, courtID string, date time.Time) ([]court.CauseListEntry, error) {
	doc, err := p.client.postJSON(ctx, "/api/core/live/cause-list", map[string]string{
		"court": courtID,
		"date":  date.Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}
	return normalize.CauseList(doc), nil
}

func (p *vendorProvider) ListOrders(ctx context.Context, cnr string) ([]court.Order, error) {
	lookup := p.GetCaseByCNR(ctx, cnr)
	if lookup.Failed() {
		return nil, errors.New(lookup.Code, lookup.Message)
	}
	return lookup.Case.Orders, nil
}

func (p *vendorProvider) DownloadOrderPDF(ctx context.Context, cnr string, orderNumber int) (*court.OrderArtifact, error) {
	orders, err := p.ListOrders(ctx, cnr)
	if err != nil {
		return nil, err
	}
	return downloadOrderFrom(ctx, p.client, cnr, orderNumber, orders)
}

func (p *vendorProvider) TestConnection(ctx context.Context) error {
	return p.client.probe(ctx, p.probeTimeout)
}
