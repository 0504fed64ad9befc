package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendabot/models"
	"agendabot/services/calendar"
)

func baseSlot() models.TimeSlot {
	start := time.Date(2025, 3, 10, 13, 0, 0, 0, mustLocation(testTimezone))
	return models.TimeSlot{Start: start, End: start.Add(models.SlotDuration)}
}

func TestSuggestKeepsOrderAndRenumbersDensely(t *testing.T) {
	t.Parallel()

	cal := newFakeCalendar()
	slot := baseSlot()
	// +30 is taken, +60 and +90 are free.
	cal.markBusy(slot.Start.Add(30 * time.Minute))

	resolver := &AvailabilityResolver{Calendar: cal}
	set, err := resolver.Suggest(context.Background(), slot)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	first, ok := set.Get(1)
	require.True(t, ok)
	assert.Equal(t, slot.Start.Add(60*time.Minute), first.Start)

	second, ok := set.Get(2)
	require.True(t, ok)
	assert.Equal(t, slot.Start.Add(90*time.Minute), second.Start)

	_, ok = set.Get(3)
	assert.False(t, ok)
	_, ok = set.Get(0)
	assert.False(t, ok)
}

func TestSuggestEmptyWhenAllCandidatesBusy(t *testing.T) {
	t.Parallel()

	cal := newFakeCalendar()
	slot := baseSlot()
	for _, offset := range []time.Duration{30 * time.Minute, 60 * time.Minute, 90 * time.Minute} {
		cal.markBusy(slot.Start.Add(offset))
	}

	resolver := &AvailabilityResolver{Calendar: cal}
	set, err := resolver.Suggest(context.Background(), slot)
	require.NoError(t, err)
	assert.True(t, set.Empty())
}

func TestSuggestPropagatesCalendarFailure(t *testing.T) {
	t.Parallel()

	cal := newFakeCalendar()
	cal.checkErr = &calendar.UnavailableError{Op: "free/busy check", Err: context.DeadlineExceeded}

	resolver := &AvailabilityResolver{Calendar: cal}
	_, err := resolver.Suggest(context.Background(), baseSlot())

	var unavailable *calendar.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestSuggestedSlotsKeepFixedDuration(t *testing.T) {
	t.Parallel()

	resolver := &AvailabilityResolver{Calendar: newFakeCalendar()}
	set, err := resolver.Suggest(context.Background(), baseSlot())
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())
	for _, slot := range set.Slots {
		assert.Equal(t, models.SlotDuration, slot.End.Sub(slot.Start))
	}
}
