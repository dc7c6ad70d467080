package court

import (
	"time"

	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
)

// LookupStatus is the discriminant of a Lookup result. A lookup either
// succeeds, fails with a closed-set error code, or suspends because the
// upstream source demands a human action (CAPTCHA) before it will answer.
// Suspension is not a failure: the same request can succeed after the
// external step completes, and callers must not retry it in a loop.
type LookupStatus string

const (
	StatusOK             LookupStatus = "ok"
	StatusActionRequired LookupStatus = "action_required"
	StatusFailed         LookupStatus = "failed"
)

// ActionRequired carries everything a caller needs to complete the
// out-of-band step: the CAPTCHA to solve and the session under which the
// retry must be made.
type ActionRequired struct {
	Provider   string `json:"provider"`
	CaptchaURL string `json:"captchaUrl"`
	SessionID  string `json:"sessionId"`
	Message    string `json:"message,omitempty"`
}

// Lookup is the tagged result of a single-case resolution. Exactly one of
// Case / Action is populated according to Status; Code and Message are set
// only on StatusFailed. Provider and Endpoint attribute the outcome to
// whichever attempt produced it; ResponseTime covers the whole resolution
// including cascaded attempts.
type Lookup struct {
	Status       LookupStatus     `json:"status"`
	Case         *CanonicalCase   `json:"case,omitempty"`
	Action       *ActionRequired  `json:"action,omitempty"`
	Code         errors.ErrorCode `json:"code,omitempty"`
	Message      string           `json:"message,omitempty"`
	Provider     string           `json:"provider"`
	Endpoint     string           `json:"endpoint,omitempty"`
	ResponseTime time.Duration    `json:"responseTime"`
}

// LookupOK constructs a successful lookup attributed to provider.
func LookupOK(c *CanonicalCase, provider string) Lookup {
	return Lookup{Status: StatusOK, Case: c, Provider: provider}
}

// LookupSuspended constructs an action-required lookup.
func LookupSuspended(action *ActionRequired) Lookup {
	provider := ""
	if action != nil {
		provider = action.Provider
	}
	return Lookup{Status: StatusActionRequired, Action: action, Provider: provider}
}

// LookupFailed constructs a failed lookup with a closed-set code.
func LookupFailed(code errors.ErrorCode, message, provider string) Lookup {
	return Lookup{Status: StatusFailed, Code: code, Message: message, Provider: provider}
}

// Failed reports whether the lookup terminated in a failure state.
func (l Lookup) Failed() bool { return l.Status == StatusFailed }

// Suspended reports whether the lookup requires an external human action.
func (l Lookup) Suspended() bool { return l.Status == StatusActionRequired }

// SearchResult is the page of canonical cases a search produced. Zero
// matches is a success with an empty list, never a failure.
type SearchResult struct {
	Cases  []CanonicalCase `json:"cases"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// CauseListEntry is one row of a daily cause list.
type CauseListEntry struct {
	SerialNumber int    `json:"serialNumber"`
	CNR          string `json:"cnr,omitempty"`
	CaseNumber   string `json:"caseNumber"`
	Title        string `json:"title"`
	Court        string `json:"court"`
	HallNumber   string `json:"hallNumber,omitempty"`
	Judge        string `json:"judge,omitempty"`
	Purpose      string `json:"purpose,omitempty"`
}

// OrderArtifact is a downloaded order document plus its metadata. URL is a
// presigned archive link when archival is configured, otherwise the
// upstream URL the document came from.
type OrderArtifact struct {
	CNR         string `json:"cnr"`
	OrderNumber int    `json:"orderNumber"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"-"`
	URL         string `json:"url,omitempty"`
}
