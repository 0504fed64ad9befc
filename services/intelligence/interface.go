// File: services/intelligence/interface.go
package ai

import (
	"context"
	"fmt"
	"time"

	"agendabot/models"
)

// Classifier turns one free-text message into a structured scheduling
// decision. today anchors relative dates ("tomorrow", "next friday").
type Classifier interface {
	Classify(ctx context.Context, text string, today time.Time) (*models.Decision, error)
}

// ClassificationError means the classifier was unreachable or returned a
// payload that cannot be interpreted as a decision. The caller answers with a
// generic retry message and leaves all state untouched.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classify intent: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}
