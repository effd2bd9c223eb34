package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider returns queued responses in FIFO order and records every
// request. Tests use it with an explicit queue. In demo mode an empty queue
// falls back to a document built from the request schema, so the app runs
// end to end without a vendor key.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	demo      bool
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewDemoProvider creates a MockProvider that never runs dry.
func NewDemoProvider() *MockProvider {
	return &MockProvider{demo: true}
}

// Generate pops the next canned response. An empty queue yields
// ErrProviderUnavailable unless the provider is in demo mode.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		if !m.demo {
			return nil, &ErrProviderUnavailable{Err: nil}
		}
		content, err := demoContent(req)
		if err != nil {
			return nil, &ErrInvalidResponse{Err: err}
		}
		return &Response{Content: content, Model: "mock", StopReason: StopEnd}, nil
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: StopEnd,
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// demoContent prefers the schema's own example and otherwise synthesizes
// a minimal document from the definition. Both are validated.
func demoContent(req Request) (json.RawMessage, error) {
	if req.Schema == nil {
		return json.RawMessage(`"mock"`), nil
	}
	content := req.Schema.Example
	if len(content) == 0 {
		b, err := json.Marshal(synthesize(req.Schema.Definition))
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", req.Schema.Name, err)
		}
		content = b
	}
	if err := ValidateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return content, nil
}

// synthesize builds the smallest value accepted by def: required object
// properties only, empty arrays, the first enum value, and numbers halfway
// between their bounds.
func synthesize(def map[string]any) any {
	if enums, ok := def["enum"].([]any); ok && len(enums) > 0 {
		return enums[0]
	}

	switch def["type"] {
	case "object":
		out := map[string]any{}
		props, _ := def["properties"].(map[string]any)
		required, _ := def["required"].([]any)
		for name, p := range props {
			if !slices.Contains(required, any(name)) {
				continue
			}
			if pd, ok := p.(map[string]any); ok {
				out[name] = synthesize(pd)
			}
		}
		return out
	case "array":
		return []any{}
	case "number", "integer":
		lo, hasLo := schemaNumber(def["minimum"])
		hi, hasHi := schemaNumber(def["maximum"])
		switch {
		case hasLo && hasHi:
			return int((lo + hi) / 2)
		case hasLo:
			return int(lo)
		case hasHi:
			return int(hi)
		}
		return 0
	case "boolean":
		return false
	default:
		return "mock"
	}
}
