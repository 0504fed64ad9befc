// File: services/calendar/google.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"agendabot/utils"
)

// GoogleCalendarService talks to the Google Calendar v3 API.
type GoogleCalendarService struct {
	svc        *gcal.Service
	calendarID string
	timezone   string
}

// NewGoogleCalendarService builds a client from a credentials file. The
// timezone name is attached to created events so the backend renders them in
// the user's local time.
func NewGoogleCalendarService(ctx context.Context, credentialsFile, calendarID, timezone string) (*GoogleCalendarService, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar client: %w", err)
	}
	return &GoogleCalendarService{
		svc:        svc,
		calendarID: calendarID,
		timezone:   timezone,
	}, nil
}

// CheckFree lists events overlapping [start, end) and reports free when none
// are found.
func (g *GoogleCalendarService) CheckFree(ctx context.Context, start, end time.Time) (bool, error) {
	res, err := g.svc.Events.List(g.calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return false, &UnavailableError{Op: "free/busy check", Err: err}
	}
	return len(res.Items) == 0, nil
}

// CreateEvent inserts the event and returns its HTML link.
func (g *GoogleCalendarService) CreateEvent(ctx context.Context, title string, start, end time.Time) (string, error) {
	event := &gcal.Event{
		Summary: title,
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
	}
	created, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", &UnavailableError{Op: "event creation", Err: err}
	}
	return created.HtmlLink, nil
}

// SearchByKeyword runs a free-text search over future events. The keyword is
// expected to be pre-normalized by the caller. Results come back in the API's
// native order.
func (g *GoogleCalendarService) SearchByKeyword(ctx context.Context, keyword string, notBefore time.Time, limit int64) ([]Event, error) {
	logger := utils.GetLogger()
	timeMin := formatQueryTime(notBefore)
	logger.Debug("Searching calendar by keyword",
		zap.String("keyword", keyword),
		zap.String("timeMin", timeMin),
	)

	// singleEvents/orderBy are deliberately omitted: combining them with the
	// q parameter makes the API flaky.
	res, err := g.svc.Events.List(g.calendarID).
		TimeMin(timeMin).
		MaxResults(limit).
		Q(keyword).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UnavailableError{Op: "keyword search", Err: err}
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		if item.Start == nil {
			continue
		}
		ev := Event{Title: item.Summary}
		switch {
		case item.Start.DateTime != "":
			start, err := time.Parse(time.RFC3339, item.Start.DateTime)
			if err != nil {
				continue
			}
			ev.Start = start
		case item.Start.Date != "":
			start, err := time.Parse("2006-01-02", item.Start.Date)
			if err != nil {
				continue
			}
			ev.Start = start
			ev.AllDay = true
		default:
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// formatQueryTime renders an instant as strict UTC 'YYYY-MM-DDTHH:MM:SSZ'.
// The API rejects the '+00:00' offset spelling for timeMin with a 400.
func formatQueryTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05") + "Z"
}
