package resolution

import (
	"context"
	"time"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/messaging/kafka"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/provider"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// Search queries the active chain in order. A vendor gets exactly one
// attempt: different vendors answer from different data sets, so
// switching vendors silently would change the result universe mid-query.
// Non-vendor sources that are unreachable fall through to the next one.
// Empty filters are a valid request.
func (o *Orchestrator) Search(ctx context.Context, filters court.SearchFilters) (*court.SearchResult, error) {
	var result *court.SearchResult
	p, err := o.attemptChain(court.OpSearchCases, func(p provider.Provider) error {
		r, searchErr := p.SearchCases(ctx, filters)
		if searchErr != nil {
			return searchErr
		}
		result = r
		return nil
	})

	if p != nil {
		o.audit(ctx, "search", map[string]interface{}{
			"provider": p.Name(),
			"filters":  filters,
			"ok":       err == nil,
		})
	}
	return result, err
}

// CauseList fetches the daily listing for a court.
func (o *Orchestrator) CauseList(ctx context.Context, courtID string, date time.Time) ([]court.CauseListEntry, error) {
	var entries []court.CauseListEntry
	_, err := o.attemptChain(court.OpGetCauseList, func(p provider.Provider) error {
		e, listErr := p.GetCauseList(ctx, courtID, date)
		if listErr != nil {
			return listErr
		}
		entries = e
		return nil
	})
	return entries, err
}

// ListOrders returns the order metadata for a case.
func (o *Orchestrator) ListOrders(ctx context.Context, cnr string) ([]court.Order, error) {
	if !court.CNRRuleStrict.Valid(cnr) {
		return nil, errors.New(errors.CodeInvalidCNR, "cnr does not match the required format")
	}

	var orders []court.Order
	_, err := o.attemptChain(court.OpListOrders, func(p provider.Provider) error {
		got, listErr := p.ListOrders(ctx, cnr)
		if listErr != nil {
			return listErr
		}
		orders = got
		return nil
	})
	return orders, err
}

// DownloadOrder fetches an order document, serving from the archive when
// the document was fetched before and archiving it on first download.
// Archive failures degrade to a pass-through download, never to a failed
// request.
func (o *Orchestrator) DownloadOrder(ctx context.Context, cnr string, orderNumber int) (*court.OrderArtifact, error) {
	if !court.CNRRuleStrict.Valid(cnr) {
		return nil, errors.New(errors.CodeInvalidCNR, "cnr does not match the required format")
	}

	var artifact *court.OrderArtifact
	p, err := o.attemptChain(court.OpDownloadOrderPDF, func(p provider.Provider) error {
		a, downloadErr := p.DownloadOrderPDF(ctx, cnr, orderNumber)
		if downloadErr != nil {
			return downloadErr
		}
		artifact = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	if key, archiveErr := o.archive.Store(ctx, artifact); archiveErr != nil {
		o.logger.Warn("order archival failed",
			logging.String("cnr", cnr),
			logging.Int("order", orderNumber),
			logging.Err(archiveErr))
	} else if key != "" {
		if url, presignErr := o.archive.PresignedURL(ctx, key); presignErr == nil && url != "" {
			artifact.URL = url
		}
	}

	o.audit(ctx, "order_download", map[string]interface{}{
		"provider": p.Name(),
		"cnr":      cnr,
		"order":    orderNumber,
	})
	return artifact, nil
}

// ProbeAll runs TestConnection against every provider in the chain and
// returns the per-provider error, nil for healthy sources.
func (o *Orchestrator) ProbeAll(ctx context.Context) map[string]error {
	results := make(map[string]error, len(o.chain))
	for _, p := range o.chain {
		results[p.Name()] = p.TestConnection(ctx)
	}
	return results
}

// attemptChain runs attempt against each chain provider supporting op
// until one succeeds or fails with a terminal code. Unavailable and
// empty-handed sources fall through to the next; captcha challenges and
// input errors surface immediately. Paid vendors are never retried
// against a sibling vendor for search. Returns the provider of the final
// attempt, nil when none supports op.
func (o *Orchestrator) attemptChain(op court.Operation, attempt func(provider.Provider) error) (provider.Provider, error) {
	var (
		last    provider.Provider
		lastErr error
	)
	for _, p := range o.chain {
		if !p.Capabilities().Supports(op) {
			continue
		}

		started := time.Now()
		err := attempt(p)
		o.metrics.ObserveAttempt(p.Name(), string(op), outcomeOf(err), time.Since(started))
		if err == nil {
			return p, nil
		}

		last, lastErr = p, err
		if !cascades(errors.GetCode(err)) {
			break
		}
		if op == court.OpSearchCases && p.Capabilities().Type == "third_party" {
			break
		}
	}
	if last == nil {
		return nil, errors.Newf(errors.CodeUnsupportedOperation,
			"no provider in the active chain supports %s", string(op))
	}
	return last, lastErr
}

// outcomeOf maps an operation error onto the metrics outcome label.
func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	if errors.IsCode(err, errors.CodeCaptchaRequired) {
		return "action_required"
	}
	return "failed"
}

// audit appends one entry to the audit trail topic.
func (o *Orchestrator) audit(ctx context.Context, action string, detail map[string]interface{}) {
	entry := map[string]interface{}{
		"action": action,
		"mode":   o.mode,
		"detail": detail,
	}
	if err := o.events.Publish(ctx, kafka.TopicAuditLog, action, entry); err != nil {
		o.logger.Warn("audit publish failed", logging.Err(err))
	}
}
