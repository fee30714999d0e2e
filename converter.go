package convertirse

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

// Converter is the main conversion engine: a response cache in front of an
// AI provider.
type Converter struct {
	provider     AIProvider
	cache        ConversionCache
	config       ConversionConfig
	timeout      time.Duration
	extendedKeys bool
	group        singleflight.Group
}

// AIProvider is the interface for AI text-generation backends.
type AIProvider interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// GenerationRequest contains the parameters for a single generation call.
type GenerationRequest struct {
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// ModelIdentifier is implemented by providers that expose the name of the
// model they call. Used for extended cache keys.
type ModelIdentifier interface {
	Model() string
}

// ConversionCache is the interface for response caching.
type ConversionCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ConverterOption is a functional option for configuring the Converter.
type ConverterOption func(*Converter)

// WithCache sets the response cache.
func WithCache(cache ConversionCache) ConverterOption {
	return func(c *Converter) {
		c.cache = cache
	}
}

// WithConfig sets the default generation configuration.
func WithConfig(cfg ConversionConfig) ConverterOption {
	return func(c *Converter) {
		c.config = cfg
	}
}

// WithTimeout sets a deadline applied to each provider call. Zero means the
// caller's context alone governs cancellation.
func WithTimeout(d time.Duration) ConverterOption {
	return func(c *Converter) {
		c.timeout = d
	}
}

// WithExtendedKeys includes the model identifier and generation
// configuration in cache keys, so the same code converted with different
// parameters is cached separately. By default keys cover only the
// (source language, target language, code) triple.
func WithExtendedKeys() ConverterOption {
	return func(c *Converter) {
		c.extendedKeys = true
	}
}

// NewConverter creates a new Converter with the given provider.
func NewConverter(provider AIProvider, opts ...ConverterOption) *Converter {
	c := &Converter{
		provider: provider,
		config:   DefaultConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Convert converts a code snippet using the converter's default
// configuration. See ConvertWithConfig.
func (c *Converter) Convert(ctx context.Context, req ConversionRequest) (*ConversionResult, error) {
	return c.ConvertWithConfig(ctx, req, c.config)
}

// ConvertWithConfig converts a code snippet with an explicit generation
// configuration. On a cache hit the stored output is returned with no
// provider call. On a miss the prompt is built, sent to the provider, and
// the raw output is stored under the request fingerprint. Provider failures
// propagate as *GenerationError and are never cached; a subsequent
// identical request retries the call. Concurrent misses for the same key
// are collapsed into a single provider call.
func (c *Converter) ConvertWithConfig(ctx context.Context, req ConversionRequest, cfg ConversionConfig) (*ConversionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if c.provider == nil {
		return nil, &ConfigurationError{Message: "no AI provider configured"}
	}

	key := c.cacheKey(req, cfg)

	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return c.result(key, cached, true), nil
		}
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent call may have stored the value while this one
		// waited on the singleflight lock.
		if c.cache != nil {
			if cached, ok := c.cache.Get(key); ok {
				return cached, nil
			}
		}

		prompt, err := BuildPrompt(req)
		if err != nil {
			return nil, err
		}

		output, err := c.generate(ctx, GenerationRequest{
			Prompt:      prompt,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		})
		if err != nil {
			return nil, err
		}

		if c.cache != nil {
			_ = c.cache.Set(key, output) // Ignore cache set errors
		}

		return output, nil
	})
	if err != nil {
		return nil, err
	}

	return c.result(key, v.(string), false), nil
}

// generate calls the provider, applying the configured timeout and wrapping
// unexpected error types so callers always see a *GenerationError.
func (c *Converter) generate(ctx context.Context, req GenerationRequest) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	output, err := c.provider.Generate(ctx, req)
	if err != nil {
		var genErr *GenerationError
		if errors.As(err, &genErr) {
			return "", err
		}
		return "", &GenerationError{Message: "model call failed", Cause: err}
	}

	return output, nil
}

// cacheKey computes the cache key for a request under the converter's
// key policy.
func (c *Converter) cacheKey(req ConversionRequest, cfg ConversionConfig) string {
	if c.extendedKeys {
		return FingerprintExtended(req, c.model(), cfg)
	}
	return Fingerprint(req)
}

// model returns the provider's model identifier when it exposes one.
func (c *Converter) model() string {
	if m, ok := c.provider.(ModelIdentifier); ok {
		return m.Model()
	}
	return ""
}

func (c *Converter) result(key, output string, cached bool) *ConversionResult {
	code, summary := ParseOutput(output)
	return &ConversionResult{
		Output:      output,
		Code:        code,
		Summary:     summary,
		Cached:      cached,
		Fingerprint: key,
	}
}

// Config returns the converter's default generation configuration.
func (c *Converter) Config() ConversionConfig {
	return c.config
}

// Cache returns the configured response cache, or nil.
func (c *Converter) Cache() ConversionCache {
	return c.cache
}
