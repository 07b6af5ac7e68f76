package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/modelcrate/modelcrate/internal/config"
	"github.com/modelcrate/modelcrate/internal/ui"
	"github.com/modelcrate/modelcrate/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show modelcrate version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.Bold(fmt.Sprintf("modelcrate %s (%s/%s)", version.Version, runtime.GOOS, runtime.GOARCH)))

		cfg, err := config.Load()
		if err == nil {
			fmt.Println()
			fmt.Println(ui.Bold("Paths:"))
			fmt.Printf("  Models: %s\n", ui.Muted(cfg.ModelsRoot))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
