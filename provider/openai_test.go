package provider

import (
	"errors"
	"testing"

	"github.com/ZaguanLabs/convertirse"
)

func TestNewOpenAIProvider_RequiresAPIKey(t *testing.T) {
	tests := []string{"", "   ", "\n"}

	for _, key := range tests {
		_, err := NewOpenAIProvider(OpenAIConfig{APIKey: key})

		var cfgErr *convertirse.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("APIKey=%q: expected *ConfigurationError, got %v", key, err)
		}
	}
}

func TestNewOpenAIProvider_DefaultModel(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}

	if p.Model() != "gpt-4o-mini" {
		t.Errorf("Model() = %q, want %q", p.Model(), "gpt-4o-mini")
	}
}

func TestNewOpenAIProvider_GroqDefaults(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test", BaseURL: GroqBaseURL})
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}

	if p.Model() != DefaultGroqModel {
		t.Errorf("Model() = %q, want %q", p.Model(), DefaultGroqModel)
	}
}

func TestNewOpenAIProvider_ExplicitModel(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test",
		BaseURL: GroqBaseURL,
		Model:   "llama-3.3-70b-versatile",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}

	if p.Model() != "llama-3.3-70b-versatile" {
		t.Errorf("Model() = %q, want %q", p.Model(), "llama-3.3-70b-versatile")
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limit", errors.New("Rate limit exceeded"), true},
		{"429", errors.New("status code: 429"), true},
		{"503", errors.New("status code: 503"), true},
		{"502", errors.New("bad gateway: 502"), true},
		{"timeout", errors.New("request timeout"), true},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"auth failure", errors.New("invalid api key"), false},
		{"bad request", errors.New("status code: 400"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
