// Package report produces the per-model inventory report for everything
// under the models root. It never mutates the filesystem, so re-running it
// on unchanged contents yields identical output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/modelcrate/modelcrate/internal/config"
	"github.com/modelcrate/modelcrate/internal/hub"
	"github.com/modelcrate/modelcrate/internal/inventory"
)

// ModelConfig is the subset of a model's config.json worth surfacing in the
// report. Every field is optional.
type ModelConfig struct {
	Architectures   []string `json:"architectures"`
	ModelType       string   `json:"model_type"`
	HiddenSize      *int64   `json:"hidden_size"`
	NumHiddenLayers *int64   `json:"num_hidden_layers"`
}

// LoadModelConfig reads and parses config.json from a model directory.
func LoadModelConfig(modelDir string) (*ModelConfig, error) {
	data, err := os.ReadFile(filepath.Join(modelDir, config.ConfigFileName))
	if err != nil {
		return nil, err
	}

	var mc ModelConfig
	if err := json.Unmarshal(data, &mc); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.ConfigFileName, err)
	}
	return &mc, nil
}

// Run writes the full inventory report for modelsRoot to w. A missing root
// or one with no model subdirectories is a normal terminal state, reported
// as such with a nil error.
func Run(w io.Writer, modelsRoot string) error {
	entries, err := os.ReadDir(modelsRoot)
	if err != nil {
		fmt.Fprintf(w, "No models found in %s\n", modelsRoot)
		return nil
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	if len(dirs) == 0 {
		fmt.Fprintf(w, "No models found in %s\n", modelsRoot)
		return nil
	}

	for _, name := range dirs {
		reportModel(w, modelsRoot, name)
	}

	return nil
}

// reportModel writes one model's section. Each model is independent: a bad
// config.json or unreadable subtree degrades this section only.
func reportModel(w io.Writer, modelsRoot, name string) {
	modelDir := filepath.Join(modelsRoot, name)

	fmt.Fprintf(w, "=== Model: %s ===\n", name)

	if m, err := hub.LoadManifest(modelDir); err == nil && m != nil {
		fmt.Fprintf(w, "  Source: %s\n", m.ModelID)
		fmt.Fprintf(w, "  Fetched: %s\n", m.FetchedAt.Format(time.RFC3339))
	}

	mc, err := LoadModelConfig(modelDir)
	if err != nil {
		fmt.Fprintf(w, "  Warning: could not read %s: %v\n", config.ConfigFileName, err)
	} else {
		if len(mc.Architectures) > 0 {
			fmt.Fprintf(w, "  Architecture: %s\n", mc.Architectures[0])
		}
		if mc.ModelType != "" {
			fmt.Fprintf(w, "  Model type: %s\n", mc.ModelType)
		}
		if mc.HiddenSize != nil {
			fmt.Fprintf(w, "  Hidden size: %d\n", *mc.HiddenSize)
		}
		if mc.NumHiddenLayers != nil {
			fmt.Fprintf(w, "  Layers: %d\n", *mc.NumHiddenLayers)
		}
	}

	files, err := inventory.Collect(modelDir)
	if err != nil {
		fmt.Fprintf(w, "  Warning: could not enumerate files: %v\n", err)
		return
	}

	fmt.Fprintln(w, "  Files:")
	for _, f := range files {
		fmt.Fprintf(w, "    %s (%s)\n", f.Path, inventory.FormatSize(f.Size))
	}

	s := inventory.Summarize(files)
	fmt.Fprintf(w, "  Total: %d files, %s\n", s.Files, inventory.FormatGB(s.Bytes))
}
