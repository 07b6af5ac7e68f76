package hub

import (
	"context"
	"fmt"

	"github.com/bodaay/HuggingFaceModelDownloader/pkg/hfdownloader"

	"github.com/modelcrate/modelcrate/internal/config"
	"github.com/modelcrate/modelcrate/internal/ui"
)

// snapshotConcurrency is the number of parallel connections hfdownloader
// uses per file.
const snapshotConcurrency = 8

// Snapshot materializes the full repository named by cfg.ModelID into
// cfg.ModelDir() and returns that path. The transfer, resume on partial
// downloads, and integrity checks are all the library's; any failure comes
// back as a single wrapped error and there is no retry here.
func Snapshot(ctx context.Context, cfg *config.Config) (string, error) {
	dest := cfg.ModelDir()

	job := hfdownloader.Job{
		Repo:     cfg.ModelID,
		Revision: "main",
	}
	settings := hfdownloader.Settings{
		OutputDir:   dest,
		Token:       cfg.Token,
		Concurrency: snapshotConcurrency,
	}

	err := hfdownloader.Download(ctx, job, settings, func(e hfdownloader.ProgressEvent) {
		switch e.Event {
		case "file_start":
			ui.Debug("downloading", "file", e.Path)
		case "file_done":
			ui.Debug("downloaded", "file", e.Path)
		case "retry":
			ui.Warn("retrying", "file", e.Path, "reason", e.Message)
		case "error":
			ui.Warn("transfer error", "file", e.Path, "reason", e.Message)
		}
	})
	if err != nil {
		return "", fmt.Errorf("snapshot download of %s failed: %w", cfg.ModelID, err)
	}

	return dest, nil
}
