// File: services/intelligence/decision.go
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"agendabot/models"
)

// rawDecision mirrors the JSON the model is asked to produce. Fields are
// validated per action before anything downstream sees them.
type rawDecision struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Query  string `json:"query"`
}

// ParseDecision validates classifier output into a closed Decision variant.
// An unknown or empty action maps to ActionUnrecognized rather than an error;
// a payload missing the fields its own action requires is uninterpretable and
// yields a ClassificationError.
func ParseDecision(payload string) (*models.Decision, error) {
	var raw rawDecision
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, &ClassificationError{Err: fmt.Errorf("decode decision payload: %w", err)}
	}

	switch strings.ToLower(strings.TrimSpace(raw.Action)) {
	case "schedule":
		if strings.TrimSpace(raw.Title) == "" {
			return nil, &ClassificationError{Err: fmt.Errorf("schedule decision missing title")}
		}
		if raw.Date == "" || raw.Time == "" {
			return nil, &ClassificationError{Err: fmt.Errorf("schedule decision missing date or time")}
		}
		return &models.Decision{
			Action: models.ActionSchedule,
			Title:  strings.TrimSpace(raw.Title),
			Date:   raw.Date,
			Time:   raw.Time,
		}, nil
	case "verify":
		if raw.Date == "" || raw.Time == "" {
			return nil, &ClassificationError{Err: fmt.Errorf("verify decision missing date or time")}
		}
		return &models.Decision{
			Action: models.ActionVerify,
			Title:  strings.TrimSpace(raw.Title),
			Date:   raw.Date,
			Time:   raw.Time,
		}, nil
	case "query":
		return &models.Decision{
			Action: models.ActionQuery,
			Query:  raw.Query,
		}, nil
	default:
		return &models.Decision{Action: models.ActionUnrecognized}, nil
	}
}
