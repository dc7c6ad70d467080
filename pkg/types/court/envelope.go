package court

import (
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
)

// Envelope is the wire shape the API and CLI surfaces emit. It flattens
// the tagged Lookup result back into the historical envelope consumers
// expect: success=true implies Data is present and fully normalized;
// requiresCaptcha=true carries the action payload in Captcha rather than
// overloading Data.
type Envelope[T any] struct {
	Success         bool            `json:"success"`
	Data            *T              `json:"data,omitempty"`
	Error           string          `json:"error,omitempty"`
	Message         string          `json:"message,omitempty"`
	RequiresCaptcha bool            `json:"requiresCaptcha,omitempty"`
	RequiresManual  bool            `json:"requiresManual,omitempty"`
	Captcha         *ActionRequired `json:"captcha,omitempty"`
	ResponseTimeMs  int64           `json:"responseTime,omitempty"`
	Provider        string          `json:"provider"`
	Total           int             `json:"total,omitempty"`
	Limit           int             `json:"limit,omitempty"`
	Offset          int             `json:"offset,omitempty"`
}

// EnvelopeFromLookup flattens a Lookup into the wire envelope.
func EnvelopeFromLookup(l Lookup) Envelope[CanonicalCase] {
	env := Envelope[CanonicalCase]{
		Provider:       l.Provider,
		ResponseTimeMs: l.ResponseTime.Milliseconds(),
	}
	switch l.Status {
	case StatusOK:
		env.Success = true
		env.Data = l.Case
	case StatusActionRequired:
		env.Error = errors.CodeCaptchaRequired.String()
		env.Message = "human verification required before this source will respond"
		env.RequiresCaptcha = true
		env.Captcha = l.Action
	default:
		env.Error = l.Code.String()
		env.Message = l.Message
		env.RequiresManual = l.Code == errors.CodeAllProvidersExhausted ||
			l.Code == errors.CodeCaptchaRequired
	}
	return env
}
