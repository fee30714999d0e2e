package convertirse

// RequestDiff represents the difference between two sets of conversion
// requests, keyed by fingerprint. Useful for incremental re-conversion:
// only convert what changed.
type RequestDiff struct {
	// Added contains requests that are new (not in the previous set).
	Added []ConversionRequest

	// Removed contains requests that are gone from the new set.
	Removed []ConversionRequest

	// Unchanged contains requests present in both sets.
	Unchanged []ConversionRequest

	// Modified contains pairs where a named request's content changed.
	// Only populated by DiffRequestsByName.
	Modified []ModifiedRequest
}

// ModifiedRequest represents a named request whose content changed.
type ModifiedRequest struct {
	Name string
	Old  ConversionRequest
	New  ConversionRequest
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Unchanged int
	Modified  int
}

// Stats returns summary statistics for the diff.
func (d *RequestDiff) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Unchanged: len(d.Unchanged),
		Modified:  len(d.Modified),
	}
}

// HasChanges returns true if there are any differences.
func (d *RequestDiff) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Modified) > 0
}

// NeedsConversion returns the requests that need a fresh conversion:
// new requests and the new side of modified pairs.
func (d *RequestDiff) NeedsConversion() []ConversionRequest {
	result := make([]ConversionRequest, 0, len(d.Added)+len(d.Modified))
	result = append(result, d.Added...)
	for _, m := range d.Modified {
		result = append(result, m.New)
	}
	return result
}

// DiffRequests compares two request sets by fingerprint and returns the
// differences.
func DiffRequests(oldReqs, newReqs []ConversionRequest) *RequestDiff {
	result := &RequestDiff{}

	oldByKey := make(map[string]ConversionRequest)
	newByKey := make(map[string]ConversionRequest)

	for _, req := range oldReqs {
		oldByKey[Fingerprint(req)] = req
	}
	for _, req := range newReqs {
		newByKey[Fingerprint(req)] = req
	}

	for key, oldReq := range oldByKey {
		if _, exists := newByKey[key]; exists {
			result.Unchanged = append(result.Unchanged, oldReq)
		} else {
			result.Removed = append(result.Removed, oldReq)
		}
	}

	for key, newReq := range newByKey {
		if _, exists := oldByKey[key]; !exists {
			result.Added = append(result.Added, newReq)
		}
	}

	return result
}

// DiffRequestsByName compares two named request sets (e.g., keyed by file
// path). A name present in both sets with a different fingerprint is
// reported as modified rather than as an add/remove pair.
func DiffRequestsByName(oldReqs, newReqs map[string]ConversionRequest) *RequestDiff {
	result := &RequestDiff{}

	for name, oldReq := range oldReqs {
		newReq, exists := newReqs[name]
		if !exists {
			result.Removed = append(result.Removed, oldReq)
			continue
		}
		if Fingerprint(oldReq) == Fingerprint(newReq) {
			result.Unchanged = append(result.Unchanged, oldReq)
		} else {
			result.Modified = append(result.Modified, ModifiedRequest{
				Name: name,
				Old:  oldReq,
				New:  newReq,
			})
		}
	}

	for name, newReq := range newReqs {
		if _, exists := oldReqs[name]; !exists {
			result.Added = append(result.Added, newReq)
		}
	}

	return result
}
