package provider

import "context"

// MockProvider is a mock AI provider for testing.
type MockProvider struct {
	Response    string             // Fixed response returned for every prompt
	Responses   map[string]string  // Optional per-prompt responses (overrides Response)
	Err         error              // Error to return instead of a response
	ModelName   string             // Reported model identifier
	CallCount   int                // Number of times Generate was called
	LastRequest *GenerationRequest // Last request received
}

// NewMockProvider creates a mock provider with a fixed response.
func NewMockProvider(response string) *MockProvider {
	return &MockProvider{
		Response:  response,
		ModelName: "mock-model",
	}
}

// Generate returns the configured response or error.
func (m *MockProvider) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return "", m.Err
	}

	if m.Responses != nil {
		if resp, ok := m.Responses[req.Prompt]; ok {
			return resp, nil
		}
	}

	return m.Response, nil
}

// Model returns the mock model identifier.
func (m *MockProvider) Model() string {
	return m.ModelName
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements AIProvider
var _ AIProvider = (*MockProvider)(nil)
