// Package config provides the manifest loader for fresh.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*FileManifestLoader)(nil)

// FileManifestLoader implements ports.ManifestLoader over a YAML file.
type FileManifestLoader struct {
	fs       ports.FileSystem
	resolver ports.InputResolver
}

// NewFileManifestLoader creates a loader. The filesystem is used to read the
// referenced projects' output timestamps at load time; the resolver expands
// input glob patterns.
func NewFileManifestLoader(fs ports.FileSystem, resolver ports.InputResolver) *FileManifestLoader {
	return &FileManifestLoader{fs: fs, resolver: resolver}
}

// Load reads the manifest at path and returns one snapshot per declared
// project configuration. Paths in the snapshots are absolute with respect to
// the manifest's directory.
//
// A reference names another project in the same manifest; its timestamp in
// the snapshot is the newest last-write time among that project's declared
// outputs for the same configuration, read once here so evaluation chains
// without re-running the referenced project's own check.
func (l *FileManifestLoader) Load(path string) ([]domain.Snapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	root := filepath.Dir(path)

	if err := validate(&manifest); err != nil {
		return nil, err
	}

	var snapshots []domain.Snapshot
	for _, project := range sortedKeys(manifest.Projects) {
		dto := manifest.Projects[project]
		for _, configuration := range sortedKeys(dto.Configurations) {
			snapshot, err := l.buildSnapshot(&manifest, root, project, configuration)
			if err != nil {
				return nil, err
			}
			snapshots = append(snapshots, snapshot)
		}
	}

	return snapshots, nil
}

func validate(manifest *Manifest) error {
	for project, dto := range manifest.Projects {
		if len(dto.Configurations) == 0 {
			return zerr.With(zerr.New("project declares no configurations"), "project", project)
		}
		for configuration, cfg := range dto.Configurations {
			if configuration == "" {
				return zerr.With(zerr.New("empty configuration name"), "project", project)
			}
			for _, ref := range cfg.References {
				target, ok := manifest.Projects[ref]
				if !ok {
					return zerr.With(zerr.With(zerr.New("reference to unknown project"),
						"project", project), "reference", ref)
				}
				if _, ok := target.Configurations[configuration]; !ok {
					return zerr.With(zerr.With(zerr.With(zerr.New("referenced project lacks configuration"),
						"project", project), "reference", ref), "configuration", configuration)
				}
			}
		}
	}
	return nil
}

func (l *FileManifestLoader) buildSnapshot(manifest *Manifest, root, project, configuration string) (domain.Snapshot, error) {
	cfg := manifest.Projects[project].Configurations[configuration]

	inputs, err := l.resolver.ResolveInputs(cfg.Inputs, root)
	if err != nil {
		return domain.Snapshot{}, zerr.With(zerr.With(err, "project", project), "configuration", configuration)
	}

	copyItems := make([]domain.CopyItem, len(cfg.Copy))
	for i, item := range cfg.Copy {
		copyItems[i] = domain.CopyItem{
			Source:      filepath.Join(root, item.From),
			Destination: filepath.Join(root, item.To),
		}
	}

	references := make([]domain.Reference, len(cfg.References))
	for i, ref := range cfg.References {
		refOutputs := manifest.Projects[ref].Configurations[configuration].Outputs
		at, ok := l.newestOutputTime(root, refOutputs)
		references[i] = domain.Reference{
			Project:       domain.NewInternedString(ref),
			OutputTimeUTC: at,
			HasOutput:     ok,
		}
	}

	return domain.Snapshot{
		Project:       domain.NewInternedString(project),
		Configuration: domain.NewInternedString(configuration),
		Inputs:        domain.NewInternedStrings(inputs),
		Outputs:       canonicalizePaths(root, cfg.Outputs),
		CopyItems:     copyItems,
		References:    references,
	}, nil
}

// newestOutputTime finds the referenced project's most recent output. All
// outputs must exist for the reference to count as having output; a
// partially built reference forces the referencing project stale through
// HasOutput == false.
func (l *FileManifestLoader) newestOutputTime(root string, outputs []string) (time.Time, bool) {
	if len(outputs) == 0 {
		return time.Time{}, false
	}

	var newest time.Time
	for _, output := range outputs {
		at, ok := l.fs.ModTimeUTC(filepath.Join(root, output))
		if !ok {
			return time.Time{}, false
		}
		if at.After(newest) {
			newest = at
		}
	}
	return newest, true
}

func canonicalizePaths(root string, paths []string) []domain.InternedString {
	if len(paths) == 0 {
		return nil
	}

	joined := make([]string, len(paths))
	for i, p := range paths {
		joined[i] = filepath.Join(root, p)
	}
	slices.Sort(joined)

	return domain.NewInternedStrings(slices.Compact(joined))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
