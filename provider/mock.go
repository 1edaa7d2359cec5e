package provider

import (
	"context"
	"sync"
)

// MockCompleter is a test double for Completer.
// It supports fixed responses, sequential responses, and custom handlers.
type MockCompleter struct {
	mu           sync.Mutex
	responses    []string
	responseIdx  int
	err          error
	completeFunc func(ctx context.Context, prompt string) (string, error)

	// Calls tracks all prompts for assertions.
	Calls []string
}

// NewMockCompleter creates a mock that returns a fixed response.
func NewMockCompleter(response string) *MockCompleter {
	return &MockCompleter{responses: []string{response}}
}

// WithResponses configures sequential responses.
// Cycles back to the beginning after exhausting all responses.
func (m *MockCompleter) WithResponses(responses ...string) *MockCompleter {
	m.responses = responses
	return m
}

// WithError configures the mock to always return an error.
func (m *MockCompleter) WithError(err error) *MockCompleter {
	m.err = err
	return m
}

// WithCompleteFunc sets a custom handler for Complete calls.
// This takes precedence over fixed responses.
func (m *MockCompleter) WithCompleteFunc(fn func(ctx context.Context, prompt string) (string, error)) *MockCompleter {
	m.completeFunc = fn
	return m
}

// Complete implements Completer.
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if m.completeFunc != nil {
		return m.completeFunc(ctx, prompt)
	}
	if m.err != nil {
		return "", m.err
	}
	if len(m.responses) == 0 {
		return "", nil
	}

	response := m.responses[m.responseIdx%len(m.responses)]
	m.responseIdx++
	return response, nil
}

// CallCount returns the number of Complete calls.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
