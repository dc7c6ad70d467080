// Package provider defines the uniform contract every upstream court-data
// source implements, plus the factory that builds providers from
// configuration. A provider adapts one source (a government API, a
// scraped portal, a paid vendor, or the local manual store) to the
// canonical operations; it never exposes upstream shapes or panics across
// this boundary.
package provider

import (
	"context"
	"time"

	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// Provider is one upstream court-data source. Implementations must be
// safe for concurrent use.
//
// GetCaseByCNR returns a tagged Lookup rather than (case, error): a
// lookup can succeed, fail with a closed-set code, or suspend pending an
// out-of-band captcha step, and the three outcomes are peers. All other
// operations use conventional error returns with *errors.AppError codes.
type Provider interface {
	// Name returns the stable identifier used in attribution, metrics
	// and configuration.
	Name() string

	// Capabilities describes what this provider can do so the
	// orchestrator can skip it for unsupported operations.
	Capabilities() court.Capabilities

	GetCaseByCNR(ctx context.Context, cnr string) court.Lookup

	SearchCases(ctx context.Context, filters court.SearchFilters) (*court.SearchResult, error)

	// GetCauseList returns the daily listing for a court on a date.
	GetCauseList(ctx context.Context, courtID string, date time.Time) ([]court.CauseListEntry, error)

	ListOrders(ctx context.Context, cnr string) ([]court.Order, error)

	DownloadOrderPDF(ctx context.Context, cnr string, orderNumber int) (*court.OrderArtifact, error)

	// TestConnection performs a cheap connectivity probe. A nil return
	// means the source is reachable, not that any given lookup will
	// succeed.
	TestConnection(ctx context.Context) error
}

// errUnsupported is the shared failure for operations a provider's
// capability set excludes.
func errUnsupported(name string, op court.Operation) error {
	return errors.Newf(errors.CodeUnsupportedOperation, "provider %s does not support %s", name, op)
}
