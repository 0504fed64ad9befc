// File: services/agent/query.go
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"agendabot/services/calendar"
	"agendabot/utils"
)

const maxQueryResults = 10

// handleQuery looks up future events by keyword.
func (s *DefaultAgentService) handleQuery(ctx context.Context, keyword string) (string, error) {
	logger := utils.GetLogger()

	kw := strings.TrimSpace(keyword)
	if kw == "" {
		logger.Debug("Query without keyword", zap.Error(ErrEmptyKeyword))
		return msgEmptyKeyword, nil
	}

	normalized := calendar.NormalizeKeyword(kw)
	events, err := s.Calendar.SearchByKeyword(ctx, normalized, s.now().UTC(), maxQueryResults)
	if err != nil {
		return "", err
	}
	if len(events) == 0 {
		return fmt.Sprintf(msgNoEventsFound, kw), nil
	}

	loc := s.location()
	var b strings.Builder
	fmt.Fprintf(&b, msgEventsHeader, kw)
	for _, ev := range events {
		fmt.Fprintf(&b, "📅 %s - %s\n", ev.Title, formatEventStart(ev, loc))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func formatEventStart(ev calendar.Event, loc *time.Location) string {
	if ev.AllDay {
		return ev.Start.Format("02/01")
	}
	return formatDayTime(ev.Start.In(loc))
}
