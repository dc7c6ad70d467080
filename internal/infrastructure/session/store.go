// Package session persists short-lived captcha resolution sessions. When
// a portal provider suspends a lookup pending operator input, the upstream
// cookies and form state are parked here under an opaque session id so the
// lookup can resume after the captcha answer arrives.
package session

import (
	"context"
	"time"

	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
)

// Session is the parked state of a suspended portal lookup.
type Session struct {
	ID         string            `json:"id"`
	Provider   string            `json:"provider"`
	CNR        string            `json:"cnr"`
	CaptchaURL string            `json:"captchaUrl"`
	Cookies    map[string]string `json:"cookies,omitempty"`
	FormState  map[string]string `json:"formState,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New(errors.CodeNotFound, "session not found or expired")

// Store persists suspended lookup sessions with a bounded lifetime.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put saves the session under s.ID, overwriting any previous value,
	// and schedules expiry after the store's TTL.
	Put(ctx context.Context, s *Session) error

	// Get returns the session for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes the session for id. Deleting an absent id is not an
	// error.
	Delete(ctx context.Context, id string) error

	// Close releases any underlying resources.
	Close() error
}
