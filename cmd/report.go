package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/modelcrate/modelcrate/internal/config"
	"github.com/modelcrate/modelcrate/internal/report"
	"github.com/modelcrate/modelcrate/internal/ui"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print an inventory report for every model under the models root",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			ui.Fatal("Failed to load config: %v", err)
		}

		if err := report.Run(os.Stdout, cfg.ModelsRoot); err != nil {
			ui.Fatal("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
