package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modelcrate/modelcrate/internal/config"
	"github.com/modelcrate/modelcrate/internal/ui"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Exit zero when the models root is listable",
	Long: `Liveness probe for the container: succeeds when the models root can be
listed. Wire it into HEALTHCHECK or an exec probe.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			ui.Fatal("Failed to load config: %v", err)
		}

		if _, err := os.ReadDir(cfg.ModelsRoot); err != nil {
			ui.PrintError("models root not listable: %v", err)
			os.Exit(1)
		}

		fmt.Println("ok")
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
