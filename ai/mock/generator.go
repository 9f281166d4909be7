package mock

import "context"

// MockGenerator is a test double for ai.Generator.
type MockGenerator struct {
	// GenerateMessageFunc is called by GenerateMessage if set.
	// If nil, a fixed canned message is returned.
	GenerateMessageFunc func(ctx context.Context, prompt string) (string, error)

	// Prompts records every prompt passed to GenerateMessage, for
	// assertions on prompt construction.
	Prompts []string
}

// NewMockGenerator creates a mock generator with default canned behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateMessage records the prompt and returns a canned message unless
// custom behavior is injected.
func (m *MockGenerator) GenerateMessage(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)

	if m.GenerateMessageFunc != nil {
		return m.GenerateMessageFunc(ctx, prompt)
	}

	return "Hi there, I came across your profile and would love to connect.", nil
}
