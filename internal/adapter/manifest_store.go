package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "ehthops.dev/pkg/ehthops/internal/model"
	"gopkg.in/yaml.v3"
)

// ManifestStore persists the record of a linking run.
type ManifestStore interface {
	SaveManifest(path m.Path, manifest m.Manifest) error
	LoadManifest(path m.Path) (m.Manifest, error)
}

// YAMLManifestStore stores manifests as YAML documents.
type YAMLManifestStore struct{}

// NewYAMLManifestStore constructs a YAMLManifestStore.
func NewYAMLManifestStore() *YAMLManifestStore {
	return &YAMLManifestStore{}
}

// SaveManifest replaces the manifest at path atomically.
func (s *YAMLManifestStore) SaveManifest(path m.Path, manifest m.Manifest) error {
	content, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".manifest-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp manifest: %w", err)
	}

	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write manifest: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close manifest: %w", err)
	}

	if err := os.Rename(tmp.Name(), string(path)); err != nil {
		return fmt.Errorf("rename manifest: %w", err)
	}

	return nil
}

// LoadManifest reads the manifest at path.
func (s *YAMLManifestStore) LoadManifest(path m.Path) (m.Manifest, error) {
	// #nosec G304 - manifest lives in the stage log directory
	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(content, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	return manifest, nil
}
