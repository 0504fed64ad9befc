// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"agendabot/models"
)

// decisionSchema constrains the model output to the closed decision shape.
var decisionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"action": {Type: genai.TypeString, Description: "The main action: \"schedule\", \"query\" or \"verify\"."},
		"title":  {Type: genai.TypeString, Description: "The title or summary of the event."},
		"date":   {Type: genai.TypeString, Description: "The event date, ALWAYS in 'YYYY-MM-DD' format."},
		"time":   {Type: genai.TypeString, Description: "The event time in 'HH:MM' format (24 hours)."},
		"query":  {Type: genai.TypeString, Description: "The search keyword, when the action is \"query\"."},
	},
	Required: []string{"action"},
}

// GeminiClassifier decides scheduling intent with a Gemini model forced into
// JSON output.
type GeminiClassifier struct {
	model *genai.GenerativeModel
}

func NewGeminiClassifier(apiKey, modelName string) *GeminiClassifier {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = decisionSchema
	return &GeminiClassifier{model: model}
}

func (g *GeminiClassifier) Classify(ctx context.Context, text string, today time.Time) (*models.Decision, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(classifierPrompt(text, today)))
	if err != nil {
		return nil, &ClassificationError{Err: fmt.Errorf("gemini generate error: %w", err)}
	}
	return ParseDecision(collectText(resp))
}

func classifierPrompt(text string, today time.Time) string {
	return fmt.Sprintf(
		"The current date is %s. Analyze the user's request: %q. "+
			"DECIDE whether the intent is 'schedule', 'query' or 'verify'. "+
			"If the intent is 'query', extract ONLY the main subject of the event (e.g. 'lunch', 'meeting') into 'query'. "+
			"If the intent is 'schedule' or 'verify', convert the date to YYYY-MM-DD and the time to 24-hour HH:MM. "+
			"Your answer MUST be a JSON object that includes the 'action' field.",
		today.Format("2006-01-02"), text,
	)
}

func collectText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
