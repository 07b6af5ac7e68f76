package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modelcrate/modelcrate/internal/config"
	"github.com/modelcrate/modelcrate/internal/report"
	"github.com/modelcrate/modelcrate/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the models root, then print the full inventory report",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			ui.Fatal("Failed to load config: %v", err)
		}

		fmt.Printf("Contents of %s:\n", cfg.ModelsRoot)
		entries, err := os.ReadDir(cfg.ModelsRoot)
		if err != nil {
			fmt.Println(ui.Muted("  (not listable)"))
		} else {
			for _, e := range entries {
				if e.IsDir() {
					fmt.Printf("  %s/\n", e.Name())
				} else {
					fmt.Printf("  %s\n", e.Name())
				}
			}
		}
		fmt.Println()

		if err := report.Run(os.Stdout, cfg.ModelsRoot); err != nil {
			ui.Fatal("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
