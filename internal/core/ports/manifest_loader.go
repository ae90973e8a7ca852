package ports

import "go.trai.ch/fresh/internal/core/domain"

// ManifestLoader loads the project manifest and returns one snapshot per
// declared project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at the given path. Input globs are resolved
	// relative to the manifest's directory.
	Load(path string) ([]domain.Snapshot, error)
}
