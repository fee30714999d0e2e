// Package convertirse provides an AI-powered source code conversion engine.
package convertirse

import (
	"strconv"
	"strings"
)

// MinCodeLength is the minimum trimmed length of a code snippet.
// Shorter inputs are rejected before any provider call is made.
const MinCodeLength = 10

// Temperature and token bounds accepted by ConversionConfig.
const (
	MinTemperature float32 = 0.0
	MaxTemperature float32 = 1.0
	MinMaxTokens           = 1000
	MaxMaxTokens           = 32768
)

// ConversionRequest describes a single code conversion.
// SourceLang and TargetLang must be members of SupportedLanguages.
// Identity conversions (SourceLang == TargetLang) are permitted and
// produce an idiomatic reformatting of the input.
type ConversionRequest struct {
	SourceLang string // Source language name (e.g., "Python")
	TargetLang string // Target language name (e.g., "Go")
	Code       string // Code snippet to convert
}

// Validate checks the request against the supported language set and the
// minimum code length. Returns a *ValidationError on failure.
func (r ConversionRequest) Validate() error {
	if !IsSupported(r.SourceLang) {
		return &ValidationError{
			Field:   "source_lang",
			Message: "unsupported language " + strconv.Quote(r.SourceLang),
		}
	}
	if !IsSupported(r.TargetLang) {
		return &ValidationError{
			Field:   "target_lang",
			Message: "unsupported language " + strconv.Quote(r.TargetLang),
		}
	}
	if len(strings.TrimSpace(r.Code)) < MinCodeLength {
		return &ValidationError{
			Field:   "code",
			Message: "code snippet too short (minimum 10 characters)",
		}
	}
	return nil
}

// ConversionConfig holds per-request generation parameters.
// It is supplied by the caller and never mutated by the converter.
type ConversionConfig struct {
	Temperature float32 // Sampling temperature in [0.0, 1.0]
	MaxTokens   int     // Maximum output tokens in [1000, 32768]
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() ConversionConfig {
	return ConversionConfig{
		Temperature: 0.2,
		MaxTokens:   32768,
	}
}

// Validate checks the configuration bounds.
// Returns a *ConfigurationError on failure.
func (c ConversionConfig) Validate() error {
	if c.Temperature < MinTemperature || c.Temperature > MaxTemperature {
		return &ConfigurationError{Message: "temperature must be in [0.0, 1.0]"}
	}
	if c.MaxTokens < MinMaxTokens || c.MaxTokens > MaxMaxTokens {
		return &ConfigurationError{Message: "max tokens must be in [1000, 32768]"}
	}
	return nil
}

// ConversionResult is the outcome of a conversion.
type ConversionResult struct {
	Output      string // Raw model output (what the cache stores)
	Code        string // Converted code extracted from the fenced block
	Summary     string // Prose summary following the code block
	Cached      bool   // Whether the output came from the cache
	Fingerprint string // Cache key of the request
}
