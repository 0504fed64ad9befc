// File: services/agent/errors.go
package agent

import (
	"errors"
	"fmt"
)

// TimeParseField identifies which part of a scheduling request failed to
// parse, so the user can be told exactly what to fix.
type TimeParseField string

const (
	TimeParseDate TimeParseField = "date"
	TimeParseTime TimeParseField = "time"
	TimeParseZone TimeParseField = "timezone"
)

// TimeParseError reports a malformed date, time or timezone in a scheduling
// request. The request is failed with a user-visible reply and no state is
// touched.
type TimeParseError struct {
	Field TimeParseField
	Value string
	Err   error
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *TimeParseError) Unwrap() error {
	return e.Err
}

// InvalidSelectionError reports a numeric reply outside the current
// suggestion set. The set stays valid for another attempt.
type InvalidSelectionError struct {
	Label   int
	Options int
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("selection %d outside the %d offered options", e.Label, e.Options)
}

// ErrEmptyKeyword means a query request carried no keyword to search for.
// The calendar is not called in that case.
var ErrEmptyKeyword = errors.New("no keyword extracted for query")
