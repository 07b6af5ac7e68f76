package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultModelsRoot is where downloaded model directories live inside the image.
const DefaultModelsRoot = "/models"

// ConfigFileName is the per-model metadata file produced by the model hub.
const ConfigFileName = "config.json"

// Config holds all environment-sourced settings, resolved once at process entry.
type Config struct {
	ModelID    string // MODEL_ID, format "namespace/name"
	Token      string // HF_TOKEN, optional
	Endpoint   string // HF_ENDPOINT, optional hub host override
	ModelsRoot string // MODELS_ROOT
}

// Load builds a Config from the process environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	// Ignore a missing .env; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		ModelID:    strings.TrimSpace(os.Getenv("MODEL_ID")),
		Token:      strings.TrimSpace(os.Getenv("HF_TOKEN")),
		Endpoint:   strings.TrimRight(strings.TrimSpace(os.Getenv("HF_ENDPOINT")), "/"),
		ModelsRoot: os.Getenv("MODELS_ROOT"),
	}
	if cfg.ModelsRoot == "" {
		cfg.ModelsRoot = DefaultModelsRoot
	}

	return cfg, nil
}

// RequireModelID returns an error when no model identifier was configured.
// Fetch treats this as fatal before touching the filesystem.
func (c *Config) RequireModelID() error {
	if c.ModelID == "" {
		return fmt.Errorf("MODEL_ID is not set; expected a model identifier like namespace/name")
	}
	return nil
}

// HasToken reports whether an auth token was configured.
func (c *Config) HasToken() bool {
	return c.Token != ""
}

// ModelDir returns the local directory the configured model materializes into.
func (c *Config) ModelDir() string {
	return filepath.Join(c.ModelsRoot, LocalDirName(c.ModelID))
}

// LocalDirName derives the local directory name from a model identifier:
// the last slash-delimited segment, so "meta-llama/Llama-3.2-1B" becomes
// "Llama-3.2-1B".
func LocalDirName(modelID string) string {
	parts := strings.Split(strings.TrimRight(modelID, "/"), "/")
	return parts[len(parts)-1]
}

// EnsureModelsRoot creates the models root if it does not exist yet.
func (c *Config) EnsureModelsRoot() error {
	if err := os.MkdirAll(c.ModelsRoot, 0755); err != nil {
		return fmt.Errorf("failed to create models root %s: %w", c.ModelsRoot, err)
	}
	return nil
}
