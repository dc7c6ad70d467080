package provider

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// TypeManual is the factory tag for the operator-maintained local store.
const TypeManual = "manual"

// ManualProvider serves cases imported by operators. It is the only
// provider with write operations: ImportCase and ImportOrders are the
// sole mutators, everything else reads under RLock. The availability
// probe is injected so tests can simulate the store being offline.
type ManualProvider struct {
	mu     sync.RWMutex
	cases  map[string]*court.CanonicalCase
	probe  AvailabilityProbe
	logger logging.Logger
}

// NewManual constructs an empty manual store.
func NewManual(probe AvailabilityProbe, logger logging.Logger) *ManualProvider {
	return &ManualProvider{
		cases:  make(map[string]*court.CanonicalCase),
		probe:  probe,
		logger: logger.Named(TypeManual),
	}
}

func (p *ManualProvider) Name() string { return TypeManual }

func (p *ManualProvider) Capabilities() court.Capabilities {
	return court.Capabilities{
		Provider: TypeManual,
		Type:     "manual",
		Operations: []court.Operation{
			court.OpGetCaseByCNR, court.OpSearchCases, court.OpGetCauseList,
			court.OpListOrders, court.OpTestConnection, court.OpGetCapabilities,
		},
		Courts:  court.CascadeOrder(),
		CNRRule: court.CNRRuleStrict,
	}
}

// ImportCase stores or replaces a case under its CNR. The stored value is
// a copy so later mutation of the argument cannot corrupt the store.
func (p *ManualProvider) ImportCase(_ context.Context, c *court.CanonicalCase) error {
	if c == nil {
		return errors.New(errors.CodeInvalidInput, "manual: case is required")
	}
	if !court.CNRRuleStrict.Valid(c.CNR) {
		return errors.New(errors.CodeInvalidCNR, "manual: cnr does not match the required format")
	}

	stored := *c
	p.mu.Lock()
	p.cases[c.CNR] = &stored
	p.mu.Unlock()

	p.logger.Info("case imported", logging.String("cnr", c.CNR))
	return nil
}

// ImportOrders appends orders to an already imported case, assigning
// sequence numbers after the existing ones.
func (p *ManualProvider) ImportOrders(_ context.Context, cnr string, orders []court.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.cases[cnr]
	if !ok {
		return errors.Newf(errors.CodeNoData, "manual: no imported case for %s", cnr)
	}
	next := len(c.Orders) + 1
	for _, o := range orders {
		if o.Number == 0 {
			o.Number = next
		}
		next++
		c.Orders = append(c.Orders, o)
	}
	return nil
}

func (p *ManualProvider) GetCaseByCNR(ctx context.Context, cnr string) court.Lookup {
	if !court.CNRRuleStrict.Valid(cnr) {
		return court.LookupFailed(errors.CodeInvalidCNR, "cnr does not match the required format", TypeManual)
	}
	if err := p.probe.Available(ctx); err != nil {
		return court.LookupFailed(errors.CodeUpstreamUnavailable, "manual store unavailable", TypeManual)
	}

	p.mu.RLock()
	c, ok := p.cases[cnr]
	p.mu.RUnlock()
	if !ok {
		return court.LookupFailed(errors.CodeNoData, "no imported case for this cnr", TypeManual)
	}

	copied := *c
	return court.LookupOK(&copied, TypeManual)
}

func (p *ManualProvider) SearchCases(ctx context.Context, filters court.SearchFilters) (*court.SearchResult, error) {
	if err := p.probe.Available(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, "manual store unavailable")
	}

	p.mu.RLock()
	matched := make([]court.CanonicalCase, 0)
	for _, c := range p.cases {
		if manualMatches(c, filters) {
			matched = append(matched, *c)
		}
	}
	p.mu.RUnlock()

	// Map iteration order is random; sort for a stable page.
	sort.Slice(matched, func(i, j int) bool { return matched[i].CNR < matched[j].CNR })

	total := len(matched)
	limit := filters.EffectiveLimit()
	offset := filters.Offset
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return &court.SearchResult{
		Cases:  matched[offset:end],
		Total:  total,
		Limit:  limit,
		Offset: filters.Offset,
	}, nil
}

func manualMatches(c *court.CanonicalCase, f court.SearchFilters) bool {
	if f.CNR != "" && c.CNR != f.CNR {
		return false
	}
	if f.CaseNumber != "" && !strings.EqualFold(c.CaseNumber, f.CaseNumber) {
		return false
	}
	if f.PartyName != "" {
		found := false
		for _, party := range c.Parties {
			if strings.Contains(strings.ToLower(party.Name), strings.ToLower(f.PartyName)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.AdvocateName != "" {
		found := false
		for _, adv := range c.Advocates {
			if strings.Contains(strings.ToLower(adv.Name), strings.ToLower(f.AdvocateName)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Court != "" && !strings.Contains(strings.ToLower(c.Court), strings.ToLower(f.Court)) {
		return false
	}
	if f.CaseStatus != "" && !strings.EqualFold(c.CaseStatus, f.CaseStatus) {
		return false
	}
	return true
}

// GetCauseList lists imported cases with a hearing on the given date.
func (p *ManualProvider) GetCauseList(ctx context.Context, courtID string, date time.Time) ([]court.CauseListEntry, error) {
	if err := p.probe.Available(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, "manual store unavailable")
	}

	y, m, d := date.Date()

	p.mu.RLock()
	defer p.mu.RUnlock()

	var entries []court.CauseListEntry
	for _, c := range p.cases {
		if courtID != "" && !strings.Contains(strings.ToLower(c.Court), strings.ToLower(courtID)) {
			continue
		}
		if c.NextHearingDate == nil {
			continue
		}
		hy, hm, hd := c.NextHearingDate.Date()
		if hy != y || hm != m || hd != d {
			continue
		}
		entries = append(entries, court.CauseListEntry{
			CNR:        c.CNR,
			CaseNumber: c.CaseNumber,
			Title:      c.Title,
			Court:      c.Court,
			HallNumber: c.HallNumber,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].CNR < entries[j].CNR })
	for i := range entries {
		entries[i].SerialNumber = i + 1
	}
	return entries, nil
}

func (p *ManualProvider) ListOrders(ctx context.Context, cnr string) ([]court.Order, error) {
	lookup := p.GetCaseByCNR(ctx, cnr)
	if lookup.Failed() {
		return nil, errors.New(lookup.Code, lookup.Message)
	}
	return lookup.Case.Orders, nil
}

// DownloadOrderPDF is unsupported: the manual store holds metadata and
// external links only, never document bytes.
func (p *ManualProvider) DownloadOrderPDF(_ context.Context, _ string, _ int) (*court.OrderArtifact, error) {
	return nil, errUnsupported(TypeManual, court.OpDownloadOrderPDF)
}

func (p *ManualProvider) TestConnection(ctx context.Context) error {
	return p.probe.Available(ctx)
}
