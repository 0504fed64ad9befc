package models

import "time"

// SlotDuration is the fixed length of every slot the agent checks or books.
// It is a compile-time constant of the scheduling core, not user-configurable.
const SlotDuration = time.Hour

// TimeSlot is a half-open interval [Start, End) in a concrete timezone.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SuggestionSet is an ordered set of alternative slots. Labels are dense,
// 1-based indexes into Slots, ordered by ascending offset from the slot the
// user originally asked for.
type SuggestionSet struct {
	Slots []TimeSlot `json:"slots"`
}

// Get returns the slot behind a 1-based label.
func (s SuggestionSet) Get(label int) (TimeSlot, bool) {
	if label < 1 || label > len(s.Slots) {
		return TimeSlot{}, false
	}
	return s.Slots[label-1], true
}

// Len returns the number of suggestions.
func (s SuggestionSet) Len() int {
	return len(s.Slots)
}

// Empty reports whether no alternative was free. Callers must treat this as
// "no alternatives", not as an error.
func (s SuggestionSet) Empty() bool {
	return len(s.Slots) == 0
}
