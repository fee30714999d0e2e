package convertirse

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// fingerprintSeparator joins the fingerprint fields. The unit separator
// cannot occur in language names and is vanishingly rare in source code,
// so distinct triples never collide on concatenation.
const fingerprintSeparator = "\x1f"

// Fingerprint computes the cache key for a request: the SHA-256 hex digest
// of the canonical (source language, target language, code) triple.
// Languages are canonicalized and code is whitespace-trimmed, so requests
// that differ only in language casing or surrounding whitespace share a key.
// Generation configuration is deliberately not part of this key; use
// FingerprintExtended when configuration should differentiate entries.
func Fingerprint(req ConversionRequest) string {
	sum := sha256.Sum256([]byte(canonicalTriple(req)))
	return hex.EncodeToString(sum[:])
}

// FingerprintExtended computes a cache key that also covers the model
// identifier and generation configuration. Use this when the same triple
// may be converted with different models or parameters and the results
// must be cached separately.
func FingerprintExtended(req ConversionRequest, model string, cfg ConversionConfig) string {
	parts := []string{
		canonicalTriple(req),
		model,
		strconv.FormatFloat(float64(cfg.Temperature), 'f', -1, 32),
		strconv.Itoa(cfg.MaxTokens),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, fingerprintSeparator)))
	return hex.EncodeToString(sum[:])
}

// canonicalTriple builds the canonical concatenation of the request fields.
func canonicalTriple(req ConversionRequest) string {
	return strings.Join([]string{
		NormalizeLanguage(req.SourceLang),
		NormalizeLanguage(req.TargetLang),
		strings.TrimSpace(req.Code),
	}, fingerprintSeparator)
}
