package fs

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver expands input glob patterns to concrete file paths.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs resolves the given patterns relative to root. Patterns with
// glob metacharacters (including `**`) expand to their matches; literal paths
// pass through unchanged even when missing, so a declared input that does not
// exist still reaches the verdict instead of silently disappearing here.
// Results are sorted and deduplicated.
func (r *Resolver) ResolveInputs(patterns []string, root string) ([]string, error) {
	var resolved []string
	for _, pattern := range patterns {
		full := filepath.Join(root, pattern)

		if !isGlob(pattern) {
			resolved = append(resolved, full)
			continue
		}

		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid input pattern"), "pattern", pattern)
		}
		resolved = append(resolved, matches...)
	}

	slices.Sort(resolved)
	return slices.Compact(resolved), nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
