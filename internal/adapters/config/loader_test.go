package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/adapters/config"
	"go.trai.ch/fresh/internal/adapters/fs"
	"go.trai.ch/fresh/internal/core/domain"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "fresh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeFileAt(t *testing.T, path string, at time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))
	require.NoError(t, os.Chtimes(path, at, at))
}

func newLoader() *config.FileManifestLoader {
	return config.NewFileManifestLoader(fs.NewOS(), fs.NewResolver())
}

func TestLoad_SingleProject(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, filepath.Join(dir, "src", "main.go"), time.Unix(100, 0))
	path := writeManifest(t, dir, `
version: "1"
projects:
  app:
    configurations:
      Debug|AnyCPU:
        inputs: ["src/**/*.go"]
        outputs: ["bin/app"]
`)

	snapshots, err := newLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	snapshot := snapshots[0]
	assert.Equal(t, "app", snapshot.Project.String())
	assert.Equal(t, "Debug|AnyCPU", snapshot.Configuration.String())
	require.Len(t, snapshot.Inputs, 1)
	assert.Equal(t, filepath.Join(dir, "src", "main.go"), snapshot.Inputs[0].String())
	require.Len(t, snapshot.Outputs, 1)
	assert.Equal(t, filepath.Join(dir, "bin", "app"), snapshot.Outputs[0].String())
}

func TestLoad_CopyItems(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
version: "1"
projects:
  app:
    configurations:
      Debug|AnyCPU:
        outputs: ["bin/app"]
        copy:
          - from: assets/logo.png
            to: bin/logo.png
`)

	snapshots, err := newLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	require.Len(t, snapshots[0].CopyItems, 1)
	assert.Equal(t, domain.CopyItem{
		Source:      filepath.Join(dir, "assets", "logo.png"),
		Destination: filepath.Join(dir, "bin", "logo.png"),
	}, snapshots[0].CopyItems[0])
}

func TestLoad_ReferenceTimestamps(t *testing.T) {
	dir := t.TempDir()
	libOut := filepath.Join(dir, "bin", "lib")
	writeFileAt(t, libOut, time.Unix(500, 0))
	path := writeManifest(t, dir, `
version: "1"
projects:
  lib:
    configurations:
      Debug|AnyCPU:
        outputs: ["bin/lib"]
  app:
    configurations:
      Debug|AnyCPU:
        outputs: ["bin/app"]
        references: ["lib"]
`)

	snapshots, err := newLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	// Projects are returned in sorted order.
	assert.Equal(t, "app", snapshots[0].Project.String())
	assert.Equal(t, "lib", snapshots[1].Project.String())

	require.Len(t, snapshots[0].References, 1)
	ref := snapshots[0].References[0]
	assert.Equal(t, "lib", ref.Project.String())
	require.True(t, ref.HasOutput)
	assert.Equal(t, time.Unix(500, 0).UTC(), ref.OutputTimeUTC)
}

func TestLoad_ReferenceWithUnbuiltOutputs(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
version: "1"
projects:
  lib:
    configurations:
      Debug|AnyCPU:
        outputs: ["bin/lib"]
  app:
    configurations:
      Debug|AnyCPU:
        outputs: ["bin/app"]
        references: ["lib"]
`)

	snapshots, err := newLoader().Load(path)
	require.NoError(t, err)

	require.Len(t, snapshots[0].References, 1)
	assert.False(t, snapshots[0].References[0].HasOutput)
}

func TestLoad_UnknownReference(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
version: "1"
projects:
  app:
    configurations:
      Debug|AnyCPU:
        outputs: ["bin/app"]
        references: ["ghost"]
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown project")
}

func TestLoad_ReferenceLacksConfiguration(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
version: "1"
projects:
  lib:
    configurations:
      Release|AnyCPU:
        outputs: ["bin/lib"]
  app:
    configurations:
      Debug|AnyCPU:
        outputs: ["bin/app"]
        references: ["lib"]
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lacks configuration")
}

func TestLoad_ProjectWithoutConfigurations(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
version: "1"
projects:
  app: {}
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no configurations")
}

func TestLoad_OutputsDeduplicated(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
version: "1"
projects:
  app:
    configurations:
      Debug|AnyCPU:
        outputs: ["bin/app", "bin/app", "bin/a"]
`)

	snapshots, err := newLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	require.Len(t, snapshots[0].Outputs, 2)
	assert.Equal(t, filepath.Join(dir, "bin", "a"), snapshots[0].Outputs[0].String())
	assert.Equal(t, filepath.Join(dir, "bin", "app"), snapshots[0].Outputs[1].String())
}

func TestLoad_MissingManifest(t *testing.T) {
	_, err := newLoader().Load(filepath.Join(t.TempDir(), "fresh.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestLoad_MalformedManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "projects: [not a map]")

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}
