package provider

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/normalize"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// TypeECourts is the factory tag for the official government API.
const TypeECourts = "ecourts"

// ecourtsProvider adapts the official e-Courts API. Two endpoints expose
// the same data set; the primary is tried first and the secondary only
// after a transport or server failure, never after a definitive answer
// such as "no record".
type ecourtsProvider struct {
	primary      *apiClient
	secondary    *apiClient
	probeTimeout time.Duration
	logger       logging.Logger
}

// NewECourts constructs the official-API provider. The secondary client
// is nil when no second endpoint is configured.
func NewECourts(cfg config.ECourtsConfig, probeTimeout time.Duration, logger logging.Logger) Provider {
	p := &ecourtsProvider{
		primary:      newAPIClient(TypeECourts, cfg.EndpointA, cfg.APIKey, cfg.Timeout),
		probeTimeout: probeTimeout,
		logger:       logger.Named(TypeECourts),
	}
	if cfg.EndpointB != "" {
		p.secondary = newAPIClient(TypeECourts, cfg.EndpointB, cfg.APIKey, cfg.Timeout)
	}
	return p
}

func (p *ecourtsProvider) Name() string { return TypeECourts }

func (p *ecourtsProvider) Capabilities() court.Capabilities {
	return court.Capabilities{
		Provider: TypeECourts,
		Type:     "official",
		Operations: []court.Operation{
			court.OpGetCaseByCNR, court.OpGetCauseList, court.OpListOrders,
			court.OpDownloadOrderPDF, court.OpTestConnection, court.OpGetCapabilities,
		},
		Courts:             court.CascadeOrder(),
		CNRRule:            court.CNRRuleStrict,
		RateLimitPerMinute: 60,
		RequiresAPIKey:     true,
	}
}

// withFailover runs fn against the primary endpoint, then the secondary.
// Failover happens only on availability errors; a definitive result from
// the primary, including NoData, is returned as-is.
func (p *ecourtsProvider) withFailover(fn func(c *apiClient) (normalize.Document, error)) (normalize.Document, error) {
	doc, err := fn(p.primary)
	if err == nil || p.secondary == nil {
		return doc, err
	}
	code := errors.GetCode(err)
	if code != errors.CodeUpstreamUnavailable && code != errors.CodeAPIUnavailable {
		return nil, err
	}
	p.logger.Warn("primary endpoint failed, trying secondary", logging.Err(err))
	return fn(p.secondary)
}

func (p *ecourtsProvider) GetCaseByCNR(ctx context.Context, cnr string) court.Lookup {
	if !court.CNRRuleStrict.Valid(cnr) {
		return court.LookupFailed(errors.CodeInvalidCNR, "cnr does not match the required format", TypeECourts)
	}

	doc, err := p.withFailover(func(c *apiClient) (normalize.Document, error) {
		return c.getJSON(ctx, "/case/cnr", url.Values{"cnr": {cnr}})
	})
	if err != nil {
		return failedLookup(err, TypeECourts)
	}

	c := normalize.ECourts(doc)
	if normalize.Empty(c) {
		return court.LookupFailed(errors.CodeNoData, "ecourts: no record found", TypeECourts)
	}
	return court.LookupOK(c, TypeECourts)
}

func (p *ecourtsProvider) SearchCases(_ context.Context, _ court.SearchFilters) (*court.SearchResult, error) {
	return nil, errUnsupported(TypeECourts, court.OpSearchCases)
}

func (p *ecourtsProvider) GetCauseList(ctx context.Context, courtID string, date time.Time) ([]court.CauseListEntry, error) {
	doc, err := p.withFailover(func(c *apiClient) (normalize.Document, error) {
		return c.getJSON(ctx, "/causelist", url.Values{
			"court": {courtID},
			"date":  {date.Format("2006-01-02")},
		})
	})
	if err != nil {
		return nil, err
	}
	return normalize.CauseList(doc), nil
}

func (p *ecourtsProvider) ListOrders(ctx context.Context, cnr string) ([]court.Order, error) {
	lookup := p.GetCaseByCNR(ctx, cnr)
	if lookup.Failed() {
		return nil, errors.New(lookup.Code, lookup.Message)
	}
	return lookup.Case.Orders, nil
}

func (p *ecourtsProvider) DownloadOrderPDF(ctx context.Context, cnr string, orderNumber int) (*court.OrderArtifact, error) {
	orders, err := p.ListOrders(ctx, cnr)
	if err != nil {
		return nil, err
	}
	return downloadOrderFrom(ctx, p.primary, cnr, orderNumber, orders)
}

func (p *ecourtsProvider) TestConnection(ctx context.Context) error {
	if err := p.primary.probe(ctx, p.probeTimeout); err == nil {
		return nil
	} else if p.secondary == nil {
		return err
	}
	return p.secondary.probe(ctx, p.probeTimeout)
}

// downloadOrderFrom fetches the PDF behind the matching order entry.
func downloadOrderFrom(ctx context.Context, client *apiClient, cnr string, orderNumber int, orders []court.Order) (*court.OrderArtifact, error) {
	for _, o := range orders {
		if o.Number != orderNumber {
			continue
		}
		if o.URL == "" {
			return nil, errors.Newf(errors.CodeNoData, "order %d has no document attached", orderNumber)
		}
		data, contentType, err := client.getRaw(ctx, o.URL)
		if err != nil {
			return nil, err
		}
		return &court.OrderArtifact{
			CNR:         cnr,
			OrderNumber: orderNumber,
			FileName:    fmt.Sprintf("%s-order-%d.pdf", cnr, orderNumber),
			ContentType: contentType,
			Data:        data,
			URL:         o.URL,
		}, nil
	}
	return nil, errors.Newf(errors.CodeNoData, "order %d not found for %s", orderNumber, cnr)
}
