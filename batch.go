package convertirse

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds concurrent provider calls in ConvertBatch.
const batchConcurrency = 4

// ParallelFingerprintLookup performs cache lookups in parallel using
// goroutines. keyFn maps a request to its cache key; nil means Fingerprint.
// Returns a map of cache key to cached output, and the deduplicated
// requests that missed.
func ParallelFingerprintLookup(cache ConversionCache, reqs []ConversionRequest, keyFn func(ConversionRequest) string) (map[string]string, []ConversionRequest) {
	if keyFn == nil {
		keyFn = Fingerprint
	}

	if cache == nil || len(reqs) == 0 {
		hits := make(map[string]string)
		return hits, dedupeRequests(reqs, keyFn)
	}

	type lookupResult struct {
		key   string
		value string
		found bool
	}

	// Deduplicate requests by key first
	unique := make(map[string]ConversionRequest)
	order := make([]string, 0, len(reqs))
	for _, req := range reqs {
		key := keyFn(req)
		if _, exists := unique[key]; !exists {
			unique[key] = req
			order = append(order, key)
		}
	}

	results := make(chan lookupResult, len(unique))
	var wg sync.WaitGroup

	for key := range unique {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			if val, ok := cache.Get(k); ok {
				results <- lookupResult{key: k, value: val, found: true}
			} else {
				results <- lookupResult{key: k, found: false}
			}
		}(key)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	hits := make(map[string]string)
	for result := range results {
		if result.found {
			hits[result.key] = result.value
		}
	}

	// Preserve input order for the misses
	var misses []ConversionRequest
	for _, key := range order {
		if _, ok := hits[key]; !ok {
			misses = append(misses, unique[key])
		}
	}

	return hits, misses
}

// dedupeRequests removes requests that share a cache key, preserving order.
func dedupeRequests(reqs []ConversionRequest, keyFn func(ConversionRequest) string) []ConversionRequest {
	seen := make(map[string]bool)
	var out []ConversionRequest
	for _, req := range reqs {
		key := keyFn(req)
		if !seen[key] {
			seen[key] = true
			out = append(out, req)
		}
	}
	return out
}

// ConvertBatch converts multiple requests, checking the cache for all of
// them in parallel and converting the misses with bounded concurrency.
// Results are returned in input order. All requests are validated before
// any provider call is made; the first failure cancels the remaining
// conversions.
func (c *Converter) ConvertBatch(ctx context.Context, reqs []ConversionRequest) ([]*ConversionResult, error) {
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	keyFn := func(req ConversionRequest) string {
		return c.cacheKey(req, c.config)
	}

	hits, _ := ParallelFingerprintLookup(c.cache, reqs, keyFn)

	results := make([]*ConversionResult, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, req := range reqs {
		i, req := i, req
		key := keyFn(req)

		if output, ok := hits[key]; ok {
			results[i] = c.result(key, output, true)
			continue
		}

		g.Go(func() error {
			// Convert collapses duplicate keys via singleflight, so
			// repeated misses in one batch cost a single provider call.
			result, err := c.Convert(gctx, req)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
