package models

// IntentAction is the closed set of actions the classifier can decide on.
type IntentAction string

const (
	ActionSchedule     IntentAction = "schedule"
	ActionQuery        IntentAction = "query"
	ActionVerify       IntentAction = "verify"
	ActionUnrecognized IntentAction = "unrecognized"
)

// Decision is the validated outcome of one classifier call. Per-action
// required fields are enforced at the classifier boundary, so consumers can
// dispatch on Action without re-checking presence:
//   - ActionSchedule: Title, Date and Time are set.
//   - ActionVerify: Date and Time are set, Title may be empty.
//   - ActionQuery: Query holds the extracted keyword (possibly empty).
//   - ActionUnrecognized: no other field is meaningful.
type Decision struct {
	Action IntentAction `json:"action"`
	Title  string       `json:"title,omitempty"`
	Date   string       `json:"date,omitempty"` // YYYY-MM-DD
	Time   string       `json:"time,omitempty"` // HH:MM, 24-hour
	Query  string       `json:"query,omitempty"`
}
