package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendabot/models"
	"agendabot/services/calendar"
)

func queryDecision(keyword string) *models.Decision {
	return &models.Decision{Action: models.ActionQuery, Query: keyword}
}

// The keyword is folded to lowercase ASCII before the collaborator sees it.
func TestQueryNormalizesKeywordBeforeSearch(t *testing.T) {
	t.Parallel()

	cal := newFakeCalendar()
	cal.results = []calendar.Event{
		{Title: "Almoço com a equipe", Start: time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)},
	}
	clf := &fakeClassifier{decision: queryDecision("Almoço")}
	svc := newTestService(cal, clf)

	resp, err := svc.HandleMessage(context.Background(), "u1", "when is my almoço?")
	require.NoError(t, err)

	require.Len(t, cal.searches, 1)
	assert.Equal(t, "almoco", cal.searches[0].keyword)
	assert.Equal(t, int64(10), cal.searches[0].limit)
	// Only future events: the search floor is the current instant in UTC.
	assert.True(t, cal.searches[0].notBefore.Equal(svc.Now().UTC()))

	assert.Contains(t, resp.Reply, "Almoço com a equipe")
	// 15:00 UTC renders at 12:00 in America/Sao_Paulo.
	assert.Contains(t, resp.Reply, "12/03 at 12:00")
}

func TestQueryEmptyKeywordShortCircuits(t *testing.T) {
	t.Parallel()

	cal := newFakeCalendar()
	clf := &fakeClassifier{decision: queryDecision("  ")}
	svc := newTestService(cal, clf)

	resp, err := svc.HandleMessage(context.Background(), "u1", "what do I have?")
	require.NoError(t, err)
	assert.Equal(t, msgEmptyKeyword, resp.Reply)
	assert.Empty(t, cal.searches, "the collaborator must not be queried without a keyword")
}

func TestQueryWithoutMatches(t *testing.T) {
	t.Parallel()

	cal := newFakeCalendar()
	clf := &fakeClassifier{decision: queryDecision("lunch")}
	svc := newTestService(cal, clf)

	resp, err := svc.HandleMessage(context.Background(), "u1", "when is my lunch?")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "couldn't find")
	assert.Contains(t, resp.Reply, "lunch")
}

func TestQueryRendersAllDayEvents(t *testing.T) {
	t.Parallel()

	cal := newFakeCalendar()
	cal.results = []calendar.Event{
		{Title: "Conference", Start: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), AllDay: true},
	}
	clf := &fakeClassifier{decision: queryDecision("conference")}
	svc := newTestService(cal, clf)

	resp, err := svc.HandleMessage(context.Background(), "u1", "when is the conference?")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "Conference - 20/03")
	assert.NotContains(t, resp.Reply, "20/03 at")
}

func TestQueryPreservesCollaboratorOrder(t *testing.T) {
	t.Parallel()

	cal := newFakeCalendar()
	cal.results = []calendar.Event{
		{Title: "later lunch", Start: time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC)},
		{Title: "earlier lunch", Start: time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)},
	}
	clf := &fakeClassifier{decision: queryDecision("lunch")}
	svc := newTestService(cal, clf)

	resp, err := svc.HandleMessage(context.Background(), "u1", "when are my lunches?")
	require.NoError(t, err)

	idxLater := strings.Index(resp.Reply, "later lunch")
	idxEarlier := strings.Index(resp.Reply, "earlier lunch")
	require.GreaterOrEqual(t, idxLater, 0)
	require.GreaterOrEqual(t, idxEarlier, 0)
	assert.Less(t, idxLater, idxEarlier, "results are not re-sorted")
}
