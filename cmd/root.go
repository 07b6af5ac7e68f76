package cmd

import (
	"os"

	"github.com/modelcrate/modelcrate/internal/ui"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "modelcrate",
	Short: "Bundle Hugging Face model weights into a container image",
	Long: `Modelcrate bakes model weights into a container image. At build time it
downloads a named model repository from the Hugging Face hub into the models
root; at run time it reports what the image actually carries.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.InitLogger(verbose)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
