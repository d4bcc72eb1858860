// Package llm asks a hosted model (Gemini or Claude) for a structured investment analysis.
package llm

import (
	"context"
)

// ProviderType represents the AI provider type
type ProviderType string

const (
	// ProviderGemini uses Google Gemini API
	ProviderGemini ProviderType = "gemini"
	// ProviderClaude uses Anthropic Claude API
	ProviderClaude ProviderType = "claude"
)

// ContentRequest is a provider-agnostic single-turn generation request
type ContentRequest struct {
	Prompt            string
	SystemInstruction string
	Temperature       float32
	MaxTokens         int
	OutputSchema      map[string]interface{} // JSON schema the response must follow
}

// ContentResponse represents a provider-agnostic content generation response
type ContentResponse struct {
	Text     string
	Provider ProviderType
	Model    string
}

// Provider generates text from a hosted model. Implementations make exactly one API call.
type Provider interface {
	GenerateContent(ctx context.Context, request *ContentRequest) (*ContentResponse, error)
	GetProviderType() ProviderType
}
