package calendar

import (
	"context"
	"fmt"
	"time"
)

// Event is one search result: the event title and its start instant.
// All-day events carry a date-only start; AllDay marks those so callers can
// render them without a wall-clock time.
type Event struct {
	Title  string
	Start  time.Time
	AllDay bool
}

// Service is the calendar collaborator contract. Implementations own the
// transport; callers treat every failure as the calendar being unavailable.
type Service interface {
	// CheckFree reports whether the calendar has zero events overlapping
	// [start, end).
	CheckFree(ctx context.Context, start, end time.Time) (bool, error)
	// CreateEvent inserts a new event and returns an externally
	// dereferenceable link to it. Not idempotent: calling it twice with the
	// same arguments creates a duplicate event.
	CreateEvent(ctx context.Context, title string, start, end time.Time) (string, error)
	// SearchByKeyword returns up to limit events starting at or after
	// notBefore that match keyword, in the backend's native order.
	SearchByKeyword(ctx context.Context, keyword string, notBefore time.Time, limit int64) ([]Event, error)
}

// UnavailableError wraps any calendar backend failure (network, auth, bad
// response). It is surfaced to the user without retry.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("calendar unavailable during %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
