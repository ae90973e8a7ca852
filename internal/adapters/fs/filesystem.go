// Package fs provides filesystem adapters for the up-to-date check.
package fs

import (
	"os"
	"time"

	"go.trai.ch/fresh/internal/core/ports"
)

var _ ports.FileSystem = (*OS)(nil)

// OS implements ports.FileSystem over the real filesystem.
type OS struct{}

// NewOS creates a new OS filesystem adapter.
func NewOS() *OS {
	return &OS{}
}

// ModTimeUTC returns the last-write time of path in UTC. A missing file and
// any stat failure both report absence: the distinction carries no meaning
// for the check, and absorbing I/O errors here keeps the layers above free of
// error handling for what is an expected condition.
func (o *OS) ModTimeUTC(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime().UTC(), true
}
