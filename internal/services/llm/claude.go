package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
)

// ClaudeProvider generates content with the Anthropic Messages API
type ClaudeProvider struct {
	client      anthropic.Client
	model       string
	maxTokens   int
	temperature float32
	logger      arbor.ILogger
}

// NewClaudeProvider creates an Anthropic client for apiKey
func NewClaudeProvider(config *common.ClaudeConfig, apiKey string, logger arbor.ILogger, opts ...option.RequestOption) *ClaudeProvider {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &ClaudeProvider{
		client:      anthropic.NewClient(opts...),
		model:       config.Model,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		logger:      logger,
	}
}

// GetProviderType returns ProviderClaude
func (p *ClaudeProvider) GetProviderType() ProviderType {
	return ProviderClaude
}

// GenerateContent makes one Messages call. The Messages API has no schema-constrained output,
// so a requested schema is appended to the system prompt.
func (p *ClaudeProvider) GenerateContent(ctx context.Context, request *ContentRequest) (*ContentResponse, error) {
	maxTokens := request.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.maxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(request.Prompt)),
		},
	}

	temp := request.Temperature
	if temp <= 0 {
		temp = p.temperature
	}
	if temp > 0 {
		params.Temperature = anthropic.Float(float64(temp))
	}

	system, err := claudeSystemPrompt(request)
	if err != nil {
		return nil, err
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	p.logger.Debug().
		Str("model", p.model).
		Int("max_tokens", maxTokens).
		Msg("Calling Claude API")

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("Claude API call failed: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("empty response from Claude API")
	}

	return &ContentResponse{
		Text:     text.String(),
		Provider: ProviderClaude,
		Model:    p.model,
	}, nil
}

func claudeSystemPrompt(request *ContentRequest) (string, error) {
	if len(request.OutputSchema) == 0 {
		return request.SystemInstruction, nil
	}

	schema, err := json.Marshal(request.OutputSchema)
	if err != nil {
		return "", fmt.Errorf("failed to encode output schema: %w", err)
	}

	var b strings.Builder
	if request.SystemInstruction != "" {
		b.WriteString(request.SystemInstruction)
		b.WriteString("\n\n")
	}
	b.WriteString("Respond with a single JSON object and nothing else. It must validate against this JSON schema:\n")
	b.Write(schema)
	return b.String(), nil
}
