package cache

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteCache is a persistent conversion cache backed by SQLite, so
// converted outputs survive process restarts.
type SQLiteCache struct {
	db     *sql.DB
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

const createConversionsTable = `
CREATE TABLE IF NOT EXISTS conversions (
	fingerprint TEXT NOT NULL PRIMARY KEY,
	output TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	ttl_seconds INTEGER NOT NULL
);
`

// SQLiteStats contains cache performance metrics.
type SQLiteStats struct {
	Entries int64
	Hits    int64
	Misses  int64
}

// NewSQLiteCache opens (or creates) a cache database at the given path.
// If ttl is zero or negative, entries never expire.
func NewSQLiteCache(dbPath string, ttl time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if _, err := db.Exec(createConversionsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}

	if ttl < 0 {
		ttl = 0
	}

	return &SQLiteCache{db: db, ttl: ttl}, nil
}

// Get retrieves a cached output. Returns empty string and false if not
// found or expired.
func (c *SQLiteCache) Get(key string) (string, bool) {
	var output string
	var createdAt time.Time
	var ttlSeconds int64

	err := c.db.QueryRow(
		`SELECT output, created_at, ttl_seconds FROM conversions WHERE fingerprint = ?`,
		key,
	).Scan(&output, &createdAt, &ttlSeconds)

	if err != nil {
		c.misses.Add(1)
		return "", false
	}

	if ttlSeconds > 0 && time.Since(createdAt) > time.Duration(ttlSeconds)*time.Second {
		c.misses.Add(1)
		return "", false
	}

	c.hits.Add(1)
	return output, true
}

// Set stores an output in the cache.
func (c *SQLiteCache) Set(key string, value string) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO conversions (fingerprint, output, created_at, ttl_seconds)
		 VALUES (?, ?, ?, ?)`,
		key, value, time.Now().UTC(), int64(c.ttl.Seconds()),
	)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Stats returns cache performance metrics.
func (c *SQLiteCache) Stats() (SQLiteStats, error) {
	var count int64
	err := c.db.QueryRow(`SELECT COUNT(*) FROM conversions`).Scan(&count)
	if err != nil {
		return SQLiteStats{}, fmt.Errorf("cache stats: %w", err)
	}
	return SQLiteStats{
		Entries: count,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}, nil
}

// Clear removes cache entries. If expiredOnly is true, only expired entries
// are removed.
func (c *SQLiteCache) Clear(expiredOnly bool) error {
	var query string
	if expiredOnly {
		query = `DELETE FROM conversions WHERE ttl_seconds > 0 AND (julianday('now') - julianday(created_at)) * 86400 > ttl_seconds`
	} else {
		query = `DELETE FROM conversions`
	}
	_, err := c.db.Exec(query)
	if err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}

// Entries returns all non-expired entries as key-value pairs.
// This is used for cache export.
func (c *SQLiteCache) Entries() (map[string]string, error) {
	rows, err := c.db.Query(`SELECT fingerprint, output, created_at, ttl_seconds FROM conversions`)
	if err != nil {
		return nil, fmt.Errorf("cache entries: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, output string
		var createdAt time.Time
		var ttlSeconds int64
		if err := rows.Scan(&key, &output, &createdAt, &ttlSeconds); err != nil {
			return nil, fmt.Errorf("cache entries: %w", err)
		}
		if ttlSeconds > 0 && time.Since(createdAt) > time.Duration(ttlSeconds)*time.Second {
			continue
		}
		result[key] = output
	}

	return result, rows.Err()
}

// Close releases the database connection.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// Verify SQLiteCache implements EnumerableCache
var _ EnumerableCache = (*SQLiteCache)(nil)
