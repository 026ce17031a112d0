package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned reply for MockClient.
type MockResponse struct {
	Text string
	Err  error
}

// MockCall records one prompt sent to MockClient.
type MockCall struct {
	Prompt string
	JSON   bool
}

// MockClient is a deterministic Client for tests. It returns canned
// responses in FIFO order and records every prompt.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []MockCall
}

func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

func (m *MockClient) GenerateText(_ context.Context, prompt string) (string, error) {
	return m.next(MockCall{Prompt: prompt, JSON: true})
}

func (m *MockClient) GenerateChatResponse(_ context.Context, prompt string) (string, error) {
	return m.next(MockCall{Prompt: prompt})
}

func (m *MockClient) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockClient) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockClient) next(call MockCall) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, call)

	if len(m.responses) == 0 {
		return "", &ErrProviderUnavailable{}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}
