package check

import "go.trai.ch/fresh/internal/core/ports"

// Factory creates checkers. One checker serves one project configuration, so
// hosts create them as configurations load rather than sharing a singleton.
type Factory struct {
	fs ports.FileSystem
}

// NewFactory creates a Factory over the given filesystem.
func NewFactory(fs ports.FileSystem) *Factory {
	return &Factory{fs: fs}
}

// New creates a checker for one project configuration.
func (f *Factory) New() *Checker {
	return NewChecker(f.fs)
}
