package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/ternarybob/tickerlens/internal/models"
)

// analysisPayload accepts a fractional confidence; models often answer 87.5
type analysisPayload struct {
	models.Analysis
	Confidence float64 `json:"confidence"`
}

// ParseAnalysis decodes and validates a model response.
// Markdown code fences and prose around the JSON object are ignored.
func ParseAnalysis(text string) (*models.Analysis, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}

	analysis := payload.Analysis
	analysis.Confidence = int(math.Round(payload.Confidence))
	analysis.Verdict = models.Verdict(strings.ToUpper(strings.TrimSpace(string(analysis.Verdict))))
	for i := range analysis.ReasoningPoints {
		rp := &analysis.ReasoningPoints[i]
		rp.Type = models.ReasoningType(strings.ToLower(strings.TrimSpace(string(rp.Type))))
	}

	if err := analysis.Validate(); err != nil {
		return nil, fmt.Errorf("analysis failed validation: %w", err)
	}

	return &analysis, nil
}

func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in response")
	}
	return text[start : end+1], nil
}
