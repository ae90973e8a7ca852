// Package check implements the up-to-date decision engine: a per-evaluation
// timestamp cache and the staleness comparison over a configuration snapshot.
package check

import (
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/fresh/internal/core/ports"
)

// TimestampCache memoizes filesystem last-write-time queries for a single
// evaluation pass. Once a path has been read, every subsequent read within
// the pass returns the memoized result, including absence, so one evaluation
// observes a single consistent snapshot of disk state.
//
// A cache must not outlive its pass: callers construct a fresh instance per
// evaluation so the next check reflects current disk state. Each pass owns
// its cache exclusively, so there is no locking.
type TimestampCache struct {
	fs      ports.FileSystem
	entries map[string]timestampEntry
}

type timestampEntry struct {
	at      time.Time
	present bool
}

// NewTimestampCache creates a cache for one evaluation pass over fs.
func NewTimestampCache(fs ports.FileSystem) *TimestampCache {
	return &TimestampCache{
		fs:      fs,
		entries: make(map[string]timestampEntry),
	}
}

// GetTimestampUTC returns the last-write time of path in UTC, or ok == false
// if the file is absent. The first request for a path queries the filesystem;
// later requests for the same path (under the cache's key policy) are served
// from memory with no further filesystem access.
func (c *TimestampCache) GetTimestampUTC(path string) (time.Time, bool) {
	key := normalizePath(path)
	if e, ok := c.entries[key]; ok {
		return e.at, e.present
	}

	at, ok := c.fs.ModTimeUTC(path)
	c.entries[key] = timestampEntry{at: at, present: ok}
	return at, ok
}

// Count returns the number of distinct paths memoized so far. Used for
// diagnostics, not correctness.
func (c *TimestampCache) Count() int {
	return len(c.entries)
}

// normalizePath is the cache's key policy: cleaned, case-folded paths.
// Project files on the host systems this engine targets are compared
// case-insensitively, and fixing the policy here keeps it testable
// independent of the case sensitivity of the filesystem underneath.
func normalizePath(path string) string {
	return strings.ToLower(filepath.Clean(path))
}
