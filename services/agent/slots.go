// File: services/agent/slots.go
package agent

import (
	"strings"
	"time"

	"agendabot/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// suggestionOffsets are tried in this exact order. The order fixes the
// numbering of the options presented to the user, so it must not change.
var suggestionOffsets = [...]time.Duration{
	30 * time.Minute,
	60 * time.Minute,
	90 * time.Minute,
}

// BuildSlot combines a calendar date and a 24-hour wall-clock time in the
// named timezone into a slot of the fixed duration.
func BuildSlot(date, clock, timezone string) (models.TimeSlot, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return models.TimeSlot{}, &TimeParseError{Field: TimeParseZone, Value: timezone, Err: err}
	}

	day, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return models.TimeSlot{}, &TimeParseError{Field: TimeParseDate, Value: date, Err: err}
	}

	wall, err := time.Parse(timeLayout, strings.TrimSpace(clock))
	if err != nil {
		return models.TimeSlot{}, &TimeParseError{Field: TimeParseTime, Value: clock, Err: err}
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), wall.Hour(), wall.Minute(), 0, 0, loc)
	return models.TimeSlot{Start: start, End: start.Add(models.SlotDuration)}, nil
}

// OffsetCandidates produces the alternative slots considered when the
// requested one is taken: +30, +60 and +90 minutes from its start, each with
// the fixed duration, in ascending offset order.
func OffsetCandidates(slot models.TimeSlot) []models.TimeSlot {
	candidates := make([]models.TimeSlot, 0, len(suggestionOffsets))
	for _, offset := range suggestionOffsets {
		start := slot.Start.Add(offset)
		candidates = append(candidates, models.TimeSlot{
			Start: start,
			End:   start.Add(models.SlotDuration),
		})
	}
	return candidates
}
