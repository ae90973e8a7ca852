// Package ports defines the core interfaces for the application.
package ports

import "time"

// FileSystem is the sole I/O dependency of the timestamp cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ModTimeUTC returns the last-write time of the file at path in UTC.
	// A missing file, or any failure to query it, is reported as absent
	// (ok == false) rather than an error: absence of an output that has
	// not been built yet is an expected precondition, not a failure.
	ModTimeUTC(path string) (at time.Time, ok bool)
}
