package provider

import (
	"context"
	"net/url"
	"time"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/normalize"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// TypeJudgments is the factory tag for the judgments archive.
const TypeJudgments = "judgments"

// judgmentsProvider adapts the judgments archive. The archive indexes
// decided cases under its own document identifiers, which are 10 to 20
// alphanumeric characters rather than well-formed CNRs, so this provider
// validates against the loose rule.
type judgmentsProvider struct {
	client       *apiClient
	probeTimeout time.Duration
	logger       logging.Logger
}

// NewJudgments constructs the judgments-archive provider.
func NewJudgments(cfg config.JudgmentsConfig, probeTimeout time.Duration, logger logging.Logger) Provider {
	return &judgmentsProvider{
		client:       newAPIClient(TypeJudgments, cfg.BaseURL, cfg.APIKey, cfg.Timeout),
		probeTimeout: probeTimeout,
		logger:       logger.Named(TypeJudgments),
	}
}

func (p *judgmentsProvider) Name() string { return TypeJudgments }

func (p *judgmentsProvider) Capabilities() court.Capabilities {
	return court.Capabilities{
		Provider: TypeJudgments,
		Type:     "archive",
		Operations: []court.Operation{
			court.OpGetCaseByCNR, court.OpSearchCases, court.OpListOrders,
			court.OpDownloadOrderPDF, court.OpTestConnection, court.OpGetCapabilities,
		},
		Courts:  []court.CourtType{court.CourtSupreme, court.CourtHigh},
		CNRRule: court.CNRRuleLoose,
	}
}

func (p *judgmentsProvider) GetCaseByCNR(ctx context.Context, cnr string) court.Lookup {
	if !court.CNRRuleLoose.Valid(cnr) {
		return court.LookupFailed(errors.CodeInvalidCNR, "identifier does not match the archive format", TypeJudgments)
	}

	doc, err := p.client.getJSON(ctx, "/judgments/"+url.PathEscape(cnr), nil)
	if err != nil {
		return failedLookup(err, TypeJudgments)
	}

	c := normalize.Judgment(doc)
	if normalize.Empty(c) {
		return court.LookupFailed(errors.CodeNoData, "judgments: no judgment on record", TypeJudgments)
	}
	return court.LookupOK(c, TypeJudgments)
}

func (p *judgmentsProvider) SearchCases(ctx context.Context, filters court.SearchFilters) (*court.SearchResult, error) {
	query := url.Values{}
	if filters.PartyName != "" {
		query.Set("party", filters.PartyName)
	}
	if filters.CaseNumber != "" {
		query.Set("citation", filters.CaseNumber)
	}
	if filters.Court != "" {
		query.Set("court", filters.Court)
	}

	doc, err := p.client.getJSON(ctx, "/judgments/search", query)
	if err != nil {
		return nil, err
	}
	result := normalize.SearchResults(doc, normalize.Judgment)
	result.Limit = filters.EffectiveLimit()
	result.Offset = filters.Offset
	return result, nil
}

func (p *judgmentsProvider) GetCauseList(_ context.Context, _ string, _ time.Time) ([]court.CauseListEntry, error) {
	return nil, errUnsupported(TypeJudgments, court.OpGetCauseList)
}

func (p *judgmentsProvider) ListOrders(ctx context.Context, cnr string) ([]court.Order, error) {
	lookup := p.GetCaseByCNR(ctx, cnr)
	if lookup.Failed() {
		return nil, errors.New(lookup.Code, lookup.Message)
	}
	return lookup.Case.Orders, nil
}

func (p *judgmentsProvider) DownloadOrderPDF(ctx context.Context, cnr string, orderNumber int) (*court.OrderArtifact, error) {
	orders, err := p.ListOrders(ctx, cnr)
	if err != nil {
		return nil, err
	}
	return downloadOrderFrom(ctx, p.client, cnr, orderNumber, orders)
}

func (p *judgmentsProvider) TestConnection(ctx context.Context) error {
	return p.client.probe(ctx, p.probeTimeout)
}
