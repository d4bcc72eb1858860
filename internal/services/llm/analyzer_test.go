package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/models"
	"github.com/ternarybob/tickerlens/internal/schemas"
	"google.golang.org/genai"
)

// fakeProvider records requests and answers with a canned response
type fakeProvider struct {
	text     string
	err      error
	calls    int
	request  *ContentRequest
	deadline bool
}

func (f *fakeProvider) GenerateContent(ctx context.Context, request *ContentRequest) (*ContentResponse, error) {
	f.calls++
	f.request = request
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return &ContentResponse{Text: f.text, Provider: ProviderGemini, Model: "test-model"}, nil
}

func (f *fakeProvider) GetProviderType() ProviderType {
	return ProviderGemini
}

var testQuote = &models.Quote{
	Symbol: "AAPL", CompanyName: "Apple Inc.", CurrentPrice: 190.25, ChangePercent: 1.2,
	Volume: "55.0M", MarketCap: "2.9T", Exchange: "NMS",
}

func TestAnalyzer_Analyze(t *testing.T) {
	fake := &fakeProvider{text: validAnalysisJSON}
	a, err := NewAnalyzer(fake, time.Second, arbor.NewLogger())
	require.NoError(t, err)

	analysis, err := a.Analyze(context.Background(), testQuote)
	require.NoError(t, err)

	assert.Equal(t, models.VerdictBuy, analysis.Verdict)
	assert.Equal(t, 1, fake.calls)
	assert.True(t, fake.deadline, "timeout applied to the call")
	assert.Contains(t, fake.request.Prompt, "Apple Inc. (AAPL)")
	assert.NotEmpty(t, fake.request.SystemInstruction)
	assert.Equal(t, "object", fake.request.OutputSchema["type"])
	assert.Equal(t, "gemini", a.Name())
}

func TestAnalyzer_NoRetryOnError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("429 resource exhausted")}
	a, err := NewAnalyzer(fake, time.Second, arbor.NewLogger())
	require.NoError(t, err)

	_, err = a.Analyze(context.Background(), testQuote)
	require.Error(t, err)
	assert.Equal(t, 1, fake.calls)
}

func TestAnalyzer_UnusableResponse(t *testing.T) {
	fake := &fakeProvider{text: `{"verdict":"MAYBE"}`}
	a, err := NewAnalyzer(fake, time.Second, arbor.NewLogger())
	require.NoError(t, err)

	_, err = a.Analyze(context.Background(), testQuote)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unusable analysis")
}

func TestConvertToGenaiSchema(t *testing.T) {
	schemaMap, err := schemas.LoadSchema(schemas.AnalysisSchema)
	require.NoError(t, err)

	schema, err := convertToGenaiSchema(schemaMap)
	require.NoError(t, err)

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Len(t, schema.Required, 9)

	verdict := schema.Properties["verdict"]
	require.NotNil(t, verdict)
	assert.Equal(t, []string{"BUY", "HOLD", "AVOID"}, verdict.Enum)

	confidence := schema.Properties["confidence"]
	require.NotNil(t, confidence.Maximum)
	assert.Equal(t, 100.0, *confidence.Maximum)

	reasoning := schema.Properties["reasoningPoints"]
	assert.Equal(t, genai.TypeArray, reasoning.Type)
	require.NotNil(t, reasoning.Items)
	assert.Equal(t, []string{"positive", "negative", "neutral"}, reasoning.Items.Properties["type"].Enum)

	_, err = convertToGenaiSchema(map[string]interface{}{"type": "tuple"})
	assert.Error(t, err)
}

func TestClaudeSystemPrompt(t *testing.T) {
	system, err := claudeSystemPrompt(&ContentRequest{
		SystemInstruction: "Be brief.",
		OutputSchema:      map[string]interface{}{"type": "object"},
	})
	require.NoError(t, err)
	assert.Contains(t, system, "Be brief.")
	assert.Contains(t, system, `{"type":"object"}`)

	system, err = claudeSystemPrompt(&ContentRequest{SystemInstruction: "Be brief."})
	require.NoError(t, err)
	assert.Equal(t, "Be brief.", system)
}

func TestNewAnalysisProvider(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("TICKERLENS_GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("TICKERLENS_CLAUDE_API_KEY", "")

	logger := arbor.NewLogger()
	ctx := context.Background()

	cfg := common.NewDefaultConfig()
	cfg.LLM.Provider = common.LLMProviderNone
	p, err := NewAnalysisProvider(ctx, cfg, logger)
	require.NoError(t, err)
	assert.Nil(t, p)

	cfg.LLM.Provider = common.LLMProviderGemini
	p, err = NewAnalysisProvider(ctx, cfg, logger)
	require.NoError(t, err)
	assert.Nil(t, p, "missing key falls back to synthesizer only")

	cfg.LLM.Provider = common.LLMProviderClaude
	cfg.Claude.APIKey = "sk-test"
	p, err = NewAnalysisProvider(ctx, cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "claude", p.Name())

	cfg.LLM.Provider = "openai"
	_, err = NewAnalysisProvider(ctx, cfg, logger)
	assert.Error(t, err)
}
