// File: services/agent/router.go
package agent

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"agendabot/models"
	"agendabot/services/calendar"
	"agendabot/utils"
)

// digitsOnly matches one or more digits and nothing else. Only such replies
// are treated as slot selections; anything else re-enters the fresh path.
var digitsOnly = regexp.MustCompile(`^\d+$`)

const startCommand = "/start"

// HandleMessage routes one inbound message for one user: follow-up turns are
// consumed by the pending negotiation, everything else goes through the
// classifier. Processing for the same user key is serialized.
func (s *DefaultAgentService) HandleMessage(ctx context.Context, userID, text string) (*models.ChatResponse, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == startCommand {
		return &models.ChatResponse{Reply: msgGreeting}, nil
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	state, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load negotiation state for %s: %w", userID, err)
	}

	if state != nil {
		switch state.Phase {
		case models.PhaseAwaitingSelection:
			if digitsOnly.MatchString(trimmed) {
				return s.finish(s.handleSelection(ctx, userID, state, trimmed))
			}
			// Not a bare number: treat as a brand-new request. The pending
			// suggestions stay valid unless the new request overwrites them.
		case models.PhaseAwaitingTitle:
			return s.finish(s.completeWithTitle(ctx, userID, state, trimmed))
		}
	}

	return s.handleFresh(ctx, userID, trimmed)
}

func (s *DefaultAgentService) handleFresh(ctx context.Context, userID, text string) (*models.ChatResponse, error) {
	logger := utils.GetLogger()

	decision, err := s.Classifier.Classify(ctx, text, s.now().In(s.location()))
	if err != nil {
		logger.Warn("Intent classification failed", zap.String("user", userID), zap.Error(err))
		return &models.ChatResponse{Reply: msgCannotProcess}, nil
	}

	switch decision.Action {
	case models.ActionSchedule:
		return s.finish(s.handleScheduleRequest(ctx, userID, decision.Title, decision.Date, decision.Time))
	case models.ActionVerify:
		return s.finish(s.handleScheduleRequest(ctx, userID, "", decision.Date, decision.Time))
	case models.ActionQuery:
		return s.finish(s.handleQuery(ctx, decision.Query))
	default:
		return &models.ChatResponse{Reply: msgUnrecognized}, nil
	}
}

// finish maps classified domain failures onto user-visible replies. Anything
// unclassified (state store faults, programming errors) bubbles up so the
// transport can answer with its own error response.
func (s *DefaultAgentService) finish(reply string, err error) (*models.ChatResponse, error) {
	if err == nil {
		return &models.ChatResponse{Reply: reply}, nil
	}

	logger := utils.GetLogger()
	var parseErr *TimeParseError
	var unavailable *calendar.UnavailableError
	switch {
	case errors.As(err, &parseErr):
		logger.Warn("Failed to parse requested slot", zap.Error(err))
		return &models.ChatResponse{Reply: timeParseReply(parseErr)}, nil
	case errors.As(err, &unavailable):
		logger.Error("Calendar backend unavailable", zap.Error(err))
		return &models.ChatResponse{Reply: msgCalendarUnavailable}, nil
	}
	return nil, err
}

func timeParseReply(err *TimeParseError) string {
	switch err.Field {
	case TimeParseTime:
		return msgBadTime
	case TimeParseZone:
		return msgBadZone
	default:
		return msgBadDate
	}
}
