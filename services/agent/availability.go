// File: services/agent/availability.go
package agent

import (
	"context"

	"agendabot/models"
	"agendabot/services/calendar"
)

// AvailabilityResolver answers free/busy questions and builds ordered
// alternative suggestions on top of the calendar collaborator.
type AvailabilityResolver struct {
	Calendar calendar.Service
}

// IsFree reports whether the calendar has no event overlapping the slot.
func (r *AvailabilityResolver) IsFree(ctx context.Context, slot models.TimeSlot) (bool, error) {
	return r.Calendar.CheckFree(ctx, slot.Start, slot.End)
}

// Suggest evaluates the offset candidates in order and keeps only the free
// ones, renumbering densely from 1. An empty set means no alternatives were
// found, not an error.
func (r *AvailabilityResolver) Suggest(ctx context.Context, slot models.TimeSlot) (models.SuggestionSet, error) {
	var set models.SuggestionSet
	for _, candidate := range OffsetCandidates(slot) {
		free, err := r.IsFree(ctx, candidate)
		if err != nil {
			return models.SuggestionSet{}, err
		}
		if free {
			set.Slots = append(set.Slots, candidate)
		}
	}
	return set, nil
}
