// Package cache provides conversion response cache implementations.
package cache

// ConversionCache is the interface for response caching.
type ConversionCache interface {
	// Get retrieves a cached output. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores an output in the cache.
	Set(key string, value string) error
}

// EnumerableCache is implemented by backends whose entries can be listed,
// which enables export.
type EnumerableCache interface {
	ConversionCache

	// Entries returns all live entries as key-value pairs.
	Entries() (map[string]string, error)
}
