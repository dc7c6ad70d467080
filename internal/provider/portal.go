package provider

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/session"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/normalize"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// Factory tags for the scraped portal sources.
const (
	TypeDistrictPortal  = "district_portal"
	TypeHighCourtPortal = "highcourt_portal"
)

// portalProvider adapts a scraped court portal. Portals intermittently
// interpose a captcha challenge; when the injected detector recognizes
// one, the lookup suspends with an ActionRequired instead of failing.
// The high-court portal additionally parks the upstream session so the
// retry after the captcha answer lands on the same server state.
type portalProvider struct {
	name         string
	client       *apiClient
	detector     CaptchaDetector
	sessions     session.Store
	courts       []court.CourtType
	probeTimeout time.Duration
	logger       logging.Logger
}

// NewDistrictPortal constructs the district e-Courts portal provider.
func NewDistrictPortal(cfg config.PortalsConfig, probeTimeout time.Duration, detector CaptchaDetector, logger logging.Logger) Provider {
	return &portalProvider{
		name:         TypeDistrictPortal,
		client:       newAPIClient(TypeDistrictPortal, cfg.DistrictBaseURL, "", cfg.Timeout),
		detector:     detector,
		courts:       []court.CourtType{court.CourtDistrict},
		probeTimeout: probeTimeout,
		logger:       logger.Named(TypeDistrictPortal),
	}
}

// NewHighCourtPortal constructs the high-court portal provider. Suspended
// lookups park their state in sessions.
func NewHighCourtPortal(cfg config.PortalsConfig, probeTimeout time.Duration, detector CaptchaDetector, sessions session.Store, logger logging.Logger) Provider {
	return &portalProvider{
		name:         TypeHighCourtPortal,
		client:       newAPIClient(TypeHighCourtPortal, cfg.HighCourtBaseURL, "", cfg.Timeout),
		detector:     detector,
		sessions:     sessions,
		courts:       []court.CourtType{court.CourtHigh},
		probeTimeout: probeTimeout,
		logger:       logger.Named(TypeHighCourtPortal),
	}
}

func (p *portalProvider) Name() string { return p.name }

func (p *portalProvider) Capabilities() court.Capabilities {
	return court.Capabilities{
		Provider: p.name,
		Type:     "portal",
		Operations: []court.Operation{
			court.OpGetCaseByCNR, court.OpSearchCases, court.OpGetCauseList,
			court.OpListOrders, court.OpDownloadOrderPDF, court.OpTestConnection,
			court.OpGetCapabilities,
		},
		Courts:            p.courts,
		CNRRule:           court.CNRRuleStrict,
		MaxConcurrent:     2,
		MayRequireCaptcha: true,
	}
}

func (p *portalProvider) GetCaseByCNR(ctx context.Context, cnr string) court.Lookup {
	if !court.CNRRuleStrict.Valid(cnr) {
		return court.LookupFailed(errors.CodeInvalidCNR, "cnr does not match the required format", p.name)
	}

	doc, err := p.client.getJSON(ctx, "/case/status", url.Values{"cnr": {cnr}})
	if err != nil {
		return failedLookup(err, p.name)
	}

	if captchaURL, challenged := p.detector.Detect(doc); challenged {
		return p.suspend(ctx, cnr, captchaURL)
	}

	c := normalize.ECourts(doc)
	if normalize.Empty(c) {
		return court.LookupFailed(errors.CodeNoData, p.name+": no record found", p.name)
	}
	return court.LookupOK(c, p.name)
}

// suspend converts a captcha challenge into an action-required lookup,
// parking the session when a store is configured.
func (p *portalProvider) suspend(ctx context.Context, cnr, captchaURL string) court.Lookup {
	action := &court.ActionRequired{
		Provider:   p.name,
		CaptchaURL: captchaURL,
		Message:    "solve the portal captcha and retry with the session id",
	}

	if p.sessions != nil {
		sess := &session.Session{
			ID:         uuid.NewString(),
			Provider:   p.name,
			CNR:        cnr,
			CaptchaURL: captchaURL,
			CreatedAt:  time.Now().UTC(),
		}
		if err := p.sessions.Put(ctx, sess); err != nil {
			p.logger.Warn("failed to park captcha session", logging.Err(err))
		} else {
			action.SessionID = sess.ID
		}
	}

	p.logger.Info("lookup suspended for captcha",
		logging.String("cnr", cnr),
		logging.String("session", action.SessionID))
	return court.LookupSuspended(action)
}

func (p *portalProvider) SearchCases(ctx context.Context, filters court.SearchFilters) (*court.SearchResult, error) {
	query := url.Values{}
	if filters.PartyName != "" {
		query.Set("party", filters.PartyName)
	}
	if filters.AdvocateName != "" {
		query.Set("advocate", filters.AdvocateName)
	}
	if filters.CaseNumber != "" {
		query.Set("case_no", filters.CaseNumber)
	}
	if filters.CaseStatus != "" {
		query.Set("status", filters.CaseStatus)
	}

	doc, err := p.client.getJSON(ctx, "/case/search", query)
	if err != nil {
		return nil, err
	}
	if _, challenged := p.detector.Detect(doc); challenged {
		return nil, errors.New(errors.CodeCaptchaRequired, p.name+": search blocked by captcha")
	}

	result := normalize.SearchResults(doc, normalize.ECourts)
	result.Limit = filters.EffectiveLimit()
	result.Offset = filters.Offset
	return result, nil
}

func (p *portalProvider) GetCauseList(ctx context.Context, courtID string, date time.Time) ([]court.CauseListEntry, error) {
	doc, err := p.client.getJSON(ctx, "/causelist", url.Values{
		"court": {courtID},
		"date":  {date.Format("2006-01-02")},
	})
	if err != nil {
		return nil, err
	}
	if _, challenged := p.detector.Detect(doc); challenged {
		return nil, errors.New(errors.CodeCaptchaRequired, p.name+": cause list blocked by captcha")
	}
	return normalize.CauseList(doc), nil
}

func (p *portalProvider) ListOrders(ctx context.Context, cnr string) ([]court.Order, error) {
	lookup := p.GetCaseByCNR(ctx, cnr)
	if lookup.Suspended() {
		return nil, errors.New(errors.CodeCaptchaRequired, p.name+": order listing blocked by captcha")
	}
	if lookup.Failed() {
		return nil, errors.New(lookup.Code, lookup.Message)
	}
	return lookup.Case.Orders, nil
}

func (p *portalProvider) DownloadOrderPDF(ctx context.Context, cnr string, orderNumber int) (*court.OrderArtifact, error) {
	orders, err := p.ListOrders(ctx, cnr)
	if err != nil {
		return nil, err
	}
	return downloadOrderFrom(ctx, p.client, cnr, orderNumber, orders)
}

func (p *portalProvider) TestConnection(ctx context.Context) error {
	return p.client.probe(ctx, p.probeTimeout)
}
