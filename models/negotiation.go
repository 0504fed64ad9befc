package models

// NegotiationPhase tags the pending half of a multi-turn booking negotiation.
type NegotiationPhase string

const (
	// PhaseAwaitingSelection means alternatives were offered and the next
	// bare-number reply picks one of them.
	PhaseAwaitingSelection NegotiationPhase = "awaiting_selection"
	// PhaseAwaitingTitle means a slot is already chosen and the next message,
	// whatever its content, becomes the event title.
	PhaseAwaitingTitle NegotiationPhase = "awaiting_title"
)

// NegotiationState is the per-user context kept between turns. Idle is
// represented by key absence in the store, so a stored state is always in one
// of the two pending phases. At most one state exists per user; a fresh
// request that produces a new suggestion set silently overwrites it.
type NegotiationState struct {
	Phase NegotiationPhase `json:"phase"`

	// Summary is the event title carried over from the originating schedule
	// request. Empty means the negotiation started as a bare availability
	// check and the title still has to be asked for.
	Summary string `json:"summary,omitempty"`

	// Suggestions is only meaningful while Phase is PhaseAwaitingSelection.
	Suggestions SuggestionSet `json:"suggestions,omitempty"`

	// ChosenSlot is only meaningful while Phase is PhaseAwaitingTitle.
	ChosenSlot TimeSlot `json:"chosenSlot,omitempty"`
}
