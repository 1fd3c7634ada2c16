package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "appres",
	Short: "Inspects and converts application resource files",
	Long: `Appres works with the resource directories an application loads its
files from: the directory next to the executable, or the per-user
configuration directory.

Common workflows:
  appres path executable          Print the executable's resource directory
  appres path config              Print the per-user config directory
  appres show cfg.yaml            Render a resource file as pretty JSON
  appres convert cfg.yaml cfg.toml  Convert a resource file between formats`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
