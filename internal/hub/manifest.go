package hub

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the bookkeeping file written into a model directory
// after a successful snapshot fetch.
const ManifestFileName = ".modelcrate.yaml"

// Manifest records which repository a model directory came from and when.
type Manifest struct {
	ModelID   string    `yaml:"model_id"`
	FetchedAt time.Time `yaml:"fetched_at"`
}

// WriteManifest saves a fetch manifest into modelDir. The write goes through
// a temp file and rename so the manifest is never partially written.
func WriteManifest(modelDir, modelID string) error {
	m := Manifest{
		ModelID:   modelID,
		FetchedAt: time.Now().UTC().Truncate(time.Second),
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(modelDir, ManifestFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}

// LoadManifest reads the fetch manifest from modelDir. Returns nil without
// error when none exists; directories can predate manifest bookkeeping.
func LoadManifest(modelDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(modelDir, ManifestFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
