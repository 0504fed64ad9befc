// File: services/agent/negotiator.go
package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"agendabot/models"
	"agendabot/utils"
)

// handleScheduleRequest runs a fresh schedule or verify request. An empty
// title means the request is a bare availability check: nothing is booked on
// the free path, and a negotiation opened on the busy path still has to ask
// for a title later.
func (s *DefaultAgentService) handleScheduleRequest(ctx context.Context, userID, title, date, clock string) (string, error) {
	logger := utils.GetLogger()

	slot, err := BuildSlot(date, clock, s.Timezone)
	if err != nil {
		return "", err
	}

	free, err := s.Resolver.IsFree(ctx, slot)
	if err != nil {
		return "", err
	}

	if free {
		if title == "" {
			return fmt.Sprintf(msgVerifyFree, formatDayTime(slot.Start)), nil
		}
		link, err := s.Calendar.CreateEvent(ctx, title, slot.Start, slot.End)
		if err != nil {
			return "", err
		}
		// The negotiation (if any was pending) is complete.
		if err := s.Store.Clear(ctx, userID); err != nil {
			return "", fmt.Errorf("clear negotiation state for %s: %w", userID, err)
		}
		logger.Info("Event created",
			zap.String("user", userID),
			zap.Time("start", slot.Start),
		)
		return fmt.Sprintf(msgScheduled, title, slot.Start.Format("02/01/2006"), slot.Start.Format("15:04"), link), nil
	}

	suggestions, err := s.Resolver.Suggest(ctx, slot)
	if err != nil {
		return "", err
	}

	if suggestions.Empty() {
		if title == "" {
			return fmt.Sprintf(msgVerifyBusyNoAlternatives, formatDayTime(slot.Start)), nil
		}
		return msgBusyNoAlternatives, nil
	}

	state := &models.NegotiationState{
		Phase:       models.PhaseAwaitingSelection,
		Summary:     title,
		Suggestions: suggestions,
	}
	// Overwrites any previous negotiation for this user.
	if err := s.Store.Set(ctx, userID, state); err != nil {
		return "", fmt.Errorf("save negotiation state for %s: %w", userID, err)
	}

	options := renderOptions(suggestions)
	if title == "" {
		return fmt.Sprintf(msgVerifyBusySuggest, formatDayTime(slot.Start), options), nil
	}
	return fmt.Sprintf(msgBusySuggest, slot.Start.Format("15:04"), options), nil
}

// handleSelection consumes a bare-number reply while suggestions are pending.
func (s *DefaultAgentService) handleSelection(ctx context.Context, userID string, state *models.NegotiationState, text string) (string, error) {
	logger := utils.GetLogger()

	label, err := strconv.Atoi(text)
	if err != nil {
		label = -1
	}
	slot, ok := state.Suggestions.Get(label)
	if !ok {
		// State deliberately untouched: the same options remain selectable.
		logger.Debug("Rejected slot selection",
			zap.String("user", userID),
			zap.Error(&InvalidSelectionError{Label: label, Options: state.Suggestions.Len()}),
		)
		return msgInvalidOption, nil
	}

	if state.Summary != "" {
		link, err := s.Calendar.CreateEvent(ctx, state.Summary, slot.Start, slot.End)
		if err != nil {
			// Keep the state so the selection can be retried once the
			// calendar is reachable again.
			return "", err
		}
		if err := s.Store.Clear(ctx, userID); err != nil {
			return "", fmt.Errorf("clear negotiation state for %s: %w", userID, err)
		}
		logger.Info("Event created from selection",
			zap.String("user", userID),
			zap.Time("start", slot.Start),
		)
		return fmt.Sprintf(msgBookingConfirmed, state.Summary, slot.Start.Format("15:04"), link), nil
	}

	// No title yet: remember the chosen slot and ask for one. The suggestion
	// set is discarded with the overwrite.
	next := &models.NegotiationState{
		Phase:      models.PhaseAwaitingTitle,
		ChosenSlot: slot,
	}
	if err := s.Store.Set(ctx, userID, next); err != nil {
		return "", fmt.Errorf("save negotiation state for %s: %w", userID, err)
	}
	return msgAskTitle, nil
}

// completeWithTitle finishes a negotiation in the awaiting-title phase: the
// whole message becomes the event title.
func (s *DefaultAgentService) completeWithTitle(ctx context.Context, userID string, state *models.NegotiationState, text string) (string, error) {
	title := strings.TrimSpace(text)
	slot := state.ChosenSlot

	link, err := s.Calendar.CreateEvent(ctx, title, slot.Start, slot.End)
	if err != nil {
		// Keep the state so the user can resend the title.
		return "", err
	}
	if err := s.Store.Clear(ctx, userID); err != nil {
		return "", fmt.Errorf("clear negotiation state for %s: %w", userID, err)
	}
	utils.GetLogger().Info("Event created with supplied title",
		zap.String("user", userID),
		zap.Time("start", slot.Start),
	)
	return fmt.Sprintf(msgBookingConfirmed, title, slot.Start.Format("15:04"), link), nil
}

// renderOptions renders a suggestion set as "(1) at 14:00 or (2) at 14:30".
func renderOptions(set models.SuggestionSet) string {
	parts := make([]string, 0, set.Len())
	for i, slot := range set.Slots {
		parts = append(parts, fmt.Sprintf("(%d) at %s", i+1, slot.Start.Format("15:04")))
	}
	return strings.Join(parts, " or ")
}

func formatDayTime(t time.Time) string {
	return t.Format("02/01") + " at " + t.Format("15:04")
}
