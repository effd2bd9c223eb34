// Package llm talks to hosted language models. Every provider returns
// schema-checked JSON through the same Request and Response types, and
// decorators add retries and an audit trail in the local store.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured response per call.
type Provider interface {
	// Generate sends req and returns its content. With req.Schema set the
	// content has already passed ValidateResponse.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, used for logging and pricing.
	ModelID() string
}

// Request is a single-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, switches the provider to its native JSON mode.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Prompt builds a Request with one user message.
func Prompt(system, user string, schema *Schema) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
		Schema:   schema,
	}
}

type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema with a name. The name is a cache key and is
// sent to providers that label structured output (OpenAI schema name).
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any

	// Example is a conforming document returned by the demo provider. It
	// is never sent to a vendor.
	Example json.RawMessage
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type Response struct {
	// Content is validated JSON for schema requests, raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that served the request, which can differ from
	// ModelID when a gateway routes it.
	Model string

	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
