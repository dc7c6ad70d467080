package provider

import (
	"sort"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/session"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
)

// Deps carries the injected collaborators every provider constructor may
// need. Injecting them here rather than reaching for globals keeps
// providers testable in isolation.
type Deps struct {
	Cfg      config.ProvidersConfig
	Detector CaptchaDetector
	Probe    AvailabilityProbe
	Sessions session.Store
	Logger   logging.Logger
}

// Factory builds providers from configuration by type tag. Vendor
// providers are registered under their configured vendor names alongside
// the fixed source tags.
type Factory struct {
	deps     Deps
	builders map[string]func() Provider

	// manual is shared across creations so imported cases survive
	// repeated factory calls within one process.
	manual *ManualProvider
}

// NewFactory constructs a Factory over the given dependencies.
func NewFactory(deps Deps) *Factory {
	f := &Factory{deps: deps}
	f.manual = NewManual(deps.Probe, deps.Logger)

	f.builders = map[string]func() Provider{
		TypeECourts: func() Provider {
			return NewECourts(deps.Cfg.ECourts, deps.Cfg.ProbeTimeout, deps.Logger)
		},
		TypeDistrictPortal: func() Provider {
			return NewDistrictPortal(deps.Cfg.Portals, deps.Cfg.ProbeTimeout, deps.Detector, deps.Logger)
		},
		TypeHighCourtPortal: func() Provider {
			return NewHighCourtPortal(deps.Cfg.Portals, deps.Cfg.ProbeTimeout, deps.Detector, deps.Sessions, deps.Logger)
		},
		TypeJudgments: func() Provider {
			return NewJudgments(deps.Cfg.Judgments, deps.Cfg.ProbeTimeout, deps.Logger)
		},
		TypeManual: func() Provider { return f.manual },
	}
	for _, vendorCfg := range deps.Cfg.Vendors {
		cfg := vendorCfg
		f.builders[cfg.Name] = func() Provider {
			return NewVendor(cfg, deps.Cfg.ProbeTimeout, deps.Logger)
		}
	}
	return f
}

// Create builds the provider registered under typeTag. Unknown tags fail
// fast with CodeUnknownProviderType so a configuration typo surfaces at
// startup rather than as a silent fallthrough.
func (f *Factory) Create(typeTag string) (Provider, error) {
	builder, ok := f.builders[typeTag]
	if !ok {
		return nil, errors.Newf(errors.CodeUnknownProviderType, "unknown provider type %q", typeTag)
	}
	return builder(), nil
}

// Manual returns the shared manual store, which interface layers need in
// its concrete form for the import operations.
func (f *Factory) Manual() *ManualProvider { return f.manual }

// AvailableTypes lists every registered provider tag, sorted.
func (f *Factory) AvailableTypes() []string {
	types := make([]string, 0, len(f.builders))
	for tag := range f.builders {
		types = append(types, tag)
	}
	sort.Strings(types)
	return types
}
