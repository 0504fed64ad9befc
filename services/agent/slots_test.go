package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendabot/models"
)

func TestBuildSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		date      string
		clock     string
		timezone  string
		wantField TimeParseField
	}{
		{name: "valid", date: "2025-03-10", clock: "13:00", timezone: testTimezone},
		{name: "valid with surrounding spaces", date: " 2025-03-10 ", clock: " 13:00 ", timezone: testTimezone},
		{name: "day out of range", date: "2025-02-30", clock: "13:00", timezone: testTimezone, wantField: TimeParseDate},
		{name: "not a date", date: "next tuesday", clock: "13:00", timezone: testTimezone, wantField: TimeParseDate},
		{name: "empty date", date: "", clock: "13:00", timezone: testTimezone, wantField: TimeParseDate},
		{name: "hour out of range", date: "2025-03-10", clock: "25:00", timezone: testTimezone, wantField: TimeParseTime},
		{name: "not a time", date: "2025-03-10", clock: "noonish", timezone: testTimezone, wantField: TimeParseTime},
		{name: "unknown timezone", date: "2025-03-10", clock: "13:00", timezone: "Mars/Olympus", wantField: TimeParseZone},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			slot, err := BuildSlot(tc.date, tc.clock, tc.timezone)
			if tc.wantField != "" {
				var parseErr *TimeParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, tc.wantField, parseErr.Field)
				return
			}
			require.NoError(t, err)

			loc := mustLocation(tc.timezone)
			assert.Equal(t, time.Date(2025, 3, 10, 13, 0, 0, 0, loc), slot.Start)
			assert.Equal(t, models.SlotDuration, slot.End.Sub(slot.Start))
		})
	}
}

func TestOffsetCandidates(t *testing.T) {
	t.Parallel()

	loc := mustLocation(testTimezone)
	start := time.Date(2025, 3, 10, 13, 0, 0, 0, loc)
	slot := models.TimeSlot{Start: start, End: start.Add(models.SlotDuration)}

	candidates := OffsetCandidates(slot)
	require.Len(t, candidates, 3)

	wantOffsets := []time.Duration{30 * time.Minute, 60 * time.Minute, 90 * time.Minute}
	for i, cand := range candidates {
		assert.Equal(t, start.Add(wantOffsets[i]), cand.Start, "candidate %d start", i+1)
		assert.Equal(t, models.SlotDuration, cand.End.Sub(cand.Start), "candidate %d duration", i+1)
	}
}
