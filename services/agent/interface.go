// File: services/agent/interface.go
package agent

import (
	"context"
	"time"

	"agendabot/models"
	"agendabot/services/calendar"
	ai "agendabot/services/intelligence"
	"agendabot/utils"

	"go.uber.org/zap"
)

// Service is the conversational scheduling agent. HandleMessage is the single
// entry point for an inbound chat message; the returned response carries the
// outbound text for the same user. Every classified failure becomes a
// user-visible reply; a non-nil error is reserved for infrastructure faults
// the transport must surface itself.
type Service interface {
	HandleMessage(ctx context.Context, userID, text string) (*models.ChatResponse, error)
}

// DefaultAgentService wires the classifier, the calendar collaborator and the
// per-user negotiation state into the turn-by-turn state machine.
type DefaultAgentService struct {
	Calendar   calendar.Service
	Classifier ai.Classifier
	Store      StateStore
	Resolver   *AvailabilityResolver

	// Timezone is the named zone requested dates are anchored in and event
	// times are rendered in.
	Timezone string

	// Now is the clock; overridable in tests.
	Now func() time.Time

	locks *userLocks
}

func NewDefaultAgentService(cal calendar.Service, classifier ai.Classifier, store StateStore, timezone string) *DefaultAgentService {
	return &DefaultAgentService{
		Calendar:   cal,
		Classifier: classifier,
		Store:      store,
		Resolver:   &AvailabilityResolver{Calendar: cal},
		Timezone:   timezone,
		Now:        time.Now,
		locks:      newUserLocks(),
	}
}

func (s *DefaultAgentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// location resolves the display timezone, falling back to UTC when the
// configured name is unknown. Scheduling paths surface the bad timezone to
// the user via BuildSlot instead.
func (s *DefaultAgentService) location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		utils.GetLogger().Warn("Unknown display timezone, falling back to UTC",
			zap.String("timezone", s.Timezone), zap.Error(err))
		return time.UTC
	}
	return loc
}
