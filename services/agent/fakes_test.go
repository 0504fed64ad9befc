package agent

import (
	"context"
	"time"

	"agendabot/models"
	"agendabot/services/calendar"
)

// fakeCalendar scripts free/busy answers and records side effects.
type fakeCalendar struct {
	busyStarts map[string]bool
	checkErr   error

	created   []createdEvent
	link      string
	createErr error

	searches  []searchCall
	results   []calendar.Event
	searchErr error
}

type createdEvent struct {
	title string
	start time.Time
	end   time.Time
}

type searchCall struct {
	keyword   string
	notBefore time.Time
	limit     int64
}

func newFakeCalendar() *fakeCalendar {
	return &fakeCalendar{
		busyStarts: make(map[string]bool),
		link:       "https://calendar.google.com/event/abc",
	}
}

func (f *fakeCalendar) markBusy(start time.Time) {
	f.busyStarts[start.Format(time.RFC3339)] = true
}

func (f *fakeCalendar) CheckFree(ctx context.Context, start, end time.Time) (bool, error) {
	if f.checkErr != nil {
		return false, f.checkErr
	}
	return !f.busyStarts[start.Format(time.RFC3339)], nil
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, title string, start, end time.Time) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, createdEvent{title: title, start: start, end: end})
	return f.link, nil
}

func (f *fakeCalendar) SearchByKeyword(ctx context.Context, keyword string, notBefore time.Time, limit int64) ([]calendar.Event, error) {
	f.searches = append(f.searches, searchCall{keyword: keyword, notBefore: notBefore, limit: limit})
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results, nil
}

// fakeClassifier returns a scripted decision and counts invocations.
type fakeClassifier struct {
	decision *models.Decision
	err      error
	calls    int
}

func (f *fakeClassifier) Classify(ctx context.Context, text string, today time.Time) (*models.Decision, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.decision, nil
}

const testTimezone = "America/Sao_Paulo"

func newTestService(cal *fakeCalendar, classifier *fakeClassifier) *DefaultAgentService {
	svc := NewDefaultAgentService(cal, classifier, NewMemoryStateStore(), testTimezone)
	svc.Now = func() time.Time {
		return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	}
	return svc
}

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
