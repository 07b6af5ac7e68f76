package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/modelcrate/modelcrate/internal/config"
	"github.com/modelcrate/modelcrate/internal/hub"
	"github.com/modelcrate/modelcrate/internal/inventory"
	"github.com/modelcrate/modelcrate/internal/ui"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the configured model repository into the models root",
	Long: `Download a full snapshot of the model repository named by MODEL_ID into
<models-root>/<last-segment-of-MODEL_ID>.

Environment:
  MODEL_ID     model repository to fetch, e.g. meta-llama/Llama-3.2-1B (required)
  HF_TOKEN     access token for private or gated repositories (optional)
  HF_ENDPOINT  hub mirror override (optional)
  MODELS_ROOT  base directory for models (default /models)`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			ui.Fatal("Failed to load config: %v", err)
		}
		if err := cfg.RequireModelID(); err != nil {
			ui.Fatal("%v", err)
		}

		if cfg.HasToken() {
			fmt.Println("Auth token: Yes")
		} else {
			fmt.Println("Auth token: No")
		}

		client := hub.NewClient(cfg)
		if cfg.Endpoint != "" {
			ui.Info("using hub endpoint", "url", client.Endpoint())
		}

		if err := cfg.EnsureModelsRoot(); err != nil {
			ui.Fatal("%v", err)
		}

		model, err := client.GetModel(cfg.ModelID)
		if err != nil {
			handleModelError(err, cfg.ModelID)
			os.Exit(1)
		}

		if bool(model.Gated) && !cfg.HasToken() {
			ui.PrintError("Authentication required")
			fmt.Printf("\nThe repository '%s' is gated.\n\n", cfg.ModelID)
			fmt.Println("To access gated models, provide a Hugging Face token:")
			fmt.Println("  1. Get a token at https://huggingface.co/settings/tokens")
			fmt.Println("  2. Set: export HF_TOKEN=hf_xxxxx")
			os.Exit(1)
		}

		fmt.Printf("Fetching %s into %s\n", ui.Keyword(cfg.ModelID), ui.Bold(cfg.ModelDir()))

		path, err := hub.Snapshot(cmd.Context(), cfg)
		if err != nil {
			ui.Fatal("%v", err)
		}

		if err := hub.WriteManifest(path, cfg.ModelID); err != nil {
			ui.Warn("could not write manifest", "error", err)
		}

		entries, err := inventory.Collect(path)
		if err != nil {
			ui.Warn("could not summarize download", "error", err)
		} else {
			s := inventory.Summarize(entries)
			fmt.Printf("%s Fetched %s files, %s\n",
				ui.Success(ui.IconCheck),
				humanize.Comma(int64(s.Files)),
				ui.FormatBytes(s.Bytes))
		}

		fmt.Printf("\nContents of %s:\n", path)
		if err := inventory.Tree(os.Stdout, path); err != nil {
			ui.Warn("could not print directory tree", "error", err)
		}
	},
}

func handleModelError(err error, modelID string) {
	if strings.Contains(err.Error(), "404") {
		ui.PrintError("Model not found")
		fmt.Printf("\nCould not find '%s' on the hub.\n\n", modelID)
		fmt.Println("Tips:")
		fmt.Println("  • Check the spelling of the repository name")
		fmt.Println("  • Private repositories need HF_TOKEN set")
	} else {
		ui.PrintError("%v", err)
	}
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
