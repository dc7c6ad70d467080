package provider

import (
	"context"
	"strings"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/normalize"
)

// CaptchaDetector decides whether an upstream portal response is a
// captcha challenge rather than case data. Detection is deterministic and
// based solely on response content; injecting the detector lets tests
// drive both branches of the suspension flow.
type CaptchaDetector interface {
	Detect(doc normalize.Document) (captchaURL string, challenged bool)
}

// markerDetector recognizes the challenge shapes the e-Courts portals
// actually emit: an explicit captcha flag, a captcha image URL, or a
// challenge marker in the status/error text.
type markerDetector struct{}

// NewCaptchaDetector returns the production detector.
func NewCaptchaDetector() CaptchaDetector { return markerDetector{} }

func (markerDetector) Detect(doc normalize.Document) (string, bool) {
	for _, key := range []string{"captchaUrl", "captcha_url", "captchaImage", "captcha_image"} {
		if u, ok := doc[key].(string); ok && u != "" {
			return u, true
		}
	}
	if flag, ok := doc["captchaRequired"].(bool); ok && flag {
		return "", true
	}
	if flag, ok := doc["captcha_required"].(bool); ok && flag {
		return "", true
	}
	for _, key := range []string{"error", "message", "status"} {
		if s, ok := doc[key].(string); ok {
			lower := strings.ToLower(s)
			if strings.Contains(lower, "captcha") || strings.Contains(lower, "verification code") {
				return "", true
			}
		}
	}
	return "", false
}

// AvailabilityProbe reports whether a source that has no real upstream
// (the manual store) should be treated as reachable. The production probe
// always succeeds; tests inject failing probes to exercise fallback
// paths.
type AvailabilityProbe interface {
	Available(ctx context.Context) error
}

type alwaysAvailable struct{}

func (alwaysAvailable) Available(_ context.Context) error { return nil }

// NewAlwaysAvailableProbe returns a probe that always reports success.
func NewAlwaysAvailableProbe() AvailabilityProbe { return alwaysAvailable{} }
