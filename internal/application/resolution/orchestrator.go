// Package resolution implements the case resolution orchestrator: the
// single entry point that turns an inbound request into a sequence of
// provider attempts according to the configured mode, with fallback
// cascading, outcome attribution, metrics and event publication.
package resolution

import (
	"context"
	"time"

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

// Modes select which sources participate in resolution and in what
// order.
const (
	ModeOfficial   = "official"
	ModeManual     = "manual"
	ModeThirdParty = "third_party"
)

// Orchestrator coordinates providers to resolve case data. Attempts
// within one resolution are strictly sequential: the next source is
// contacted only after the previous one has definitively answered.
type Orchestrator struct {
	mode     string
	factory  *provider.Factory
	sessions session.Store
	archive  minio.Archive
	metrics  *prometheus.Metrics
	events   kafka.Publisher
	logger   logging.Logger

	// chain is the ordered list of providers consulted for lookups in
	// the configured mode, built once at startup. Configuration is
	// immutable for the lifetime of a resolution.
	chain []provider.Provider
}

// New builds an Orchestrator for the configured mode. Provider
// construction errors are fatal: a typo in configuration must stop the
// service, not silently shrink the chain.
func New(cfg config.ProvidersConfig, factory *provider.Factory, sessions session.Store,
	archive minio.Archive, metrics *prometheus.Metrics, events kafka.Publisher,
	logger logging.Logger) (*Orchestrator, error) {

	o := &Orchestrator{
		mode:     cfg.Mode,
		factory:  factory,
		sessions: sessions,
		archive:  archive,
		metrics:  metrics,
		events:   events,
		logger:   logger.Named("resolution"),
	}

	var tags []string
	switch cfg.Mode {
	case ModeOfficial:
		tags = []string{provider.TypeECourts, provider.TypeDistrictPortal,
			provider.TypeHighCourtPortal, provider.TypeJudgments}
	case ModeManual:
		tags = []string{provider.TypeDistrictPortal, provider.TypeHighCourtPortal,
			provider.TypeManual}
	case ModeThirdParty:
		for _, v := range cfg.Vendors {
			tags = append(tags, v.Name)
		}
	default:
		return nil, errors.Newf(errors.CodeInvalidParam, "unknown resolution mode %q", cfg.Mode)
	}

	for _, tag := range tags {
		p, err := factory.Create(tag)
		if err != nil {
			return nil, err
		}
		o.chain = append(o.chain, p)
	}
	return o, nil
}

// Mode returns the configured resolution mode.
func (o *Orchestrator) Mode() string { return o.mode }

// Providers describes every provider in the active chain.
func (o *Orchestrator) Providers() []court.Capabilities {
	caps := make([]court.Capabilities, 0, len(o.chain))
	for _, p := range o.chain {
		caps = append(caps, p.Capabilities())
	}
	return caps
}

// Manual exposes the shared manual store for the import operations.
func (o *Orchestrator) Manual() *provider.ManualProvider { return o.factory.Manual() }

// Lookup resolves a CNR through the active chain. The CNR is validated
// before any network traffic; a malformed CNR fails immediately. The
// terminal result carries the attribution of whichever attempt produced
// it and the elapsed time of the whole resolution.
func (o *Orchestrator) Lookup(ctx context.Context, cnr string) court.Lookup {
	started := time.Now()

	if !court.CNRRuleStrict.Valid(cnr) {
		return o.finishLookup(ctx, cnr, 0, started,
			court.LookupFailed(errors.CodeInvalidCNR, "cnr does not match the required format", ""))
	}

	var last court.Lookup
	attempts := 0
	for _, p := range o.chain {
		if !p.Capabilities().Supports(court.OpGetCaseByCNR) {
			continue
		}

		result, n := o.attemptProvider(ctx, p, cnr)
		attempts += n
		if result.Status != court.StatusFailed {
			return o.finishLookup(ctx, cnr, attempts, started, result)
		}
		last = result

		// No-record answers, transport failures, malformed upstream
		// bodies and per-provider identifier mismatches cascade to the
		// next source; anything else is terminal.
		if !cascades(result.Code) {
			break
		}
	}

	if attempts == 0 {
		last = court.LookupFailed(errors.CodeMissingConfig, "no provider in the active chain supports cnr lookup", "")
	} else if cascades(last.Code) {
		last = court.LookupFailed(errors.CodeAllProvidersExhausted,
			"no configured source could resolve this cnr", last.Provider)
	}
	return o.finishLookup(ctx, cnr, attempts, started, last)
}

// cascades reports whether a failure code allows moving on to the next
// source instead of terminating the resolution.
func cascades(code errors.ErrorCode) bool {
	return errors.Retryable(code) ||
		code == errors.CodeNoData ||
		code == errors.CodeInvalidCNR ||
		code == errors.CodeUpstreamParseError
}

// attemptProvider runs one provider's lookup, cascading a vendor across
// the court hierarchy when the classified tier has no record. It returns
// the provider's terminal result and the number of upstream attempts
// made.
func (o *Orchestrator) attemptProvider(ctx context.Context, p provider.Provider, cnr string) (court.Lookup, int) {
	vendor, tiered := p.(interface {
		LookupAt(ctx context.Context, cnr string, ct court.CourtType) court.Lookup
	})
	if !tiered {
		return o.timedAttempt(ctx, p.Name(), cnr, func(ctx context.Context) court.Lookup {
			return p.GetCaseByCNR(ctx, cnr)
		}), 1
	}

	classified := court.ClassifyCNR(cnr)
	result := o.timedAttempt(ctx, p.Name(), cnr, func(ctx context.Context) court.Lookup {
		return vendor.LookupAt(ctx, cnr, classified)
	})
	attempts := 1
	if result.Status != court.StatusFailed || result.Code != errors.CodeNoData {
		return result, attempts
	}

	// The classified tier has no record; walk the remaining tiers in
	// the fixed hierarchy order, one at a time.
	for _, ct := range court.CascadeAfter(classified) {
		tier := ct
		result = o.timedAttempt(ctx, p.Name(), cnr, func(ctx context.Context) court.Lookup {
			return vendor.LookupAt(ctx, cnr, tier)
		})
		attempts++
		if result.Status != court.StatusFailed || result.Code != errors.CodeNoData {
			return result, attempts
		}
	}
	return result, attempts
}

// timedAttempt wraps one upstream attempt with timing, metrics and
// logging.
func (o *Orchestrator) timedAttempt(ctx context.Context, providerName, cnr string, fn func(context.Context) court.Lookup) court.Lookup {
	started := time.Now()
	result := fn(ctx)
	elapsed := time.Since(started)

	o.metrics.ObserveAttempt(providerName, string(court.OpGetCaseByCNR), string(result.Status), elapsed)
	o.logger.Debug("lookup attempt",
		logging.String("provider", providerName),
		logging.String("cnr", cnr),
		logging.String("status", string(result.Status)),
		logging.String("code", string(result.Code)),
		logging.Duration("elapsed", elapsed))
	return result
}

// finishLookup stamps the terminal result with total elapsed time,
// records cascade depth and publishes the lifecycle event.
func (o *Orchestrator) finishLookup(ctx context.Context, cnr string, attempts int, started time.Time, result court.Lookup) court.Lookup {
	result.ResponseTime = time.Since(started)
	o.metrics.CascadeDepth.Observe(float64(attempts))

	switch result.Status {
	case court.StatusOK:
		o.publish(ctx, kafka.TopicCaseResolved, cnr, result)
	case court.StatusActionRequired:
		if result.Action != nil {
			o.metrics.CaptchaSuspensions.WithLabelValues(result.Action.Provider).Inc()
		}
		o.publish(ctx, kafka.TopicActionRequired, cnr, result)
	case court.StatusFailed:
		o.publish(ctx, kafka.TopicResolutionFailed, cnr, result)
	}
	return result
}

// publish emits a lifecycle event. Failures are logged and swallowed: a
// broker outage must never affect a resolution result.
func (o *Orchestrator) publish(ctx context.Context, topic, key string, payload interface{}) {
	if err := o.events.Publish(ctx, topic, key, payload); err != nil {
		o.logger.Warn("event publish failed", logging.String("topic", topic), logging.Err(err))
	}
}

// Resume re-runs a lookup that was suspended for a captcha. The parked
// session is consumed whether or not the retry succeeds; a lookup that is
// challenged again parks a fresh session.
func (o *Orchestrator) Resume(ctx context.Context, sessionID string) court.Lookup {
	sess, err := o.sessions.Get(ctx, sessionID)
	if err != nil {
		return court.LookupFailed(errors.CodeNotFound, "unknown or expired captcha session", "")
	}
	_ = o.sessions.Delete(ctx, sessionID)
	return o.Lookup(ctx, sess.CNR)
}
