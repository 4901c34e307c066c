package llm

import (
	"context"
	"sync"
)

// MockClient is a test double for the Client interface. It replays queued
// replies in order and records every prompt it receives.
type MockClient struct {
	mu      sync.Mutex
	replies []string
	err     error
	Prompts []string
}

// NewMockClient creates a mock client that replays the given replies.
func NewMockClient(replies ...string) *MockClient {
	return &MockClient{replies: replies}
}

// FailWith makes every subsequent Generate call return err.
func (m *MockClient) FailWith(err error) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// Generate records the prompt and returns the next queued reply. When the
// queue is exhausted the last reply is repeated.
func (m *MockClient) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if m.err != nil {
		return "", m.err
	}
	if len(m.replies) == 0 {
		return "", nil
	}
	if len(m.replies) == 1 {
		return m.replies[0], nil
	}

	reply := m.replies[0]
	m.replies = m.replies[1:]
	return reply, nil
}
