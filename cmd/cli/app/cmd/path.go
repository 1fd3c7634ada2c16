package cmd

import (
	"fmt"

	"appres/resources"

	"github.com/spf13/cobra"
)

var resolveBase string
var resolveApp string

func init() {
	pathResolveCmd.Flags().StringVar(&resolveBase, "base", "", "Base directory to resolve against")
	pathResolveCmd.Flags().StringVar(&resolveApp, "app", "", "Resolve against the app's config directory")
	pathCmd.AddCommand(pathExecutableCmd)
	pathCmd.AddCommand(pathConfigCmd)
	pathCmd.AddCommand(pathResolveCmd)
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Resolves resource directories",
	Long:  `Commands for resolving the directories resource files are loaded from`,
}

var pathExecutableCmd = &cobra.Command{
	Use:   "executable",
	Short: "Prints the directory containing the running executable",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resources.ExecutableDir()
		if err != nil {
			return err
		}
		fmt.Println(dir)
		return nil
	},
}

var pathConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the per-user configuration directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resources.ConfigDir()
		if err != nil {
			return err
		}
		fmt.Println(dir)
		return nil
	},
}

var pathResolveCmd = &cobra.Command{
	Use:   "resolve <relative-path>",
	Short: "Prints the resolved location of a relative resource path",
	Long: `Resolves a relative path against a resource directory: the --base
directory if given, the app's config directory with --app, or the
executable's directory by default`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := resolveStore()
		if err != nil {
			return err
		}
		fmt.Println(store.ResolvedPath(args[0]))
		return nil
	},
}

func resolveStore() (*resources.Store, error) {
	if resolveApp != "" {
		return resources.ForApp(resolveApp)
	}
	if resolveBase != "" {
		return resources.At(resolveBase), nil
	}
	return resources.RelativeToExecutable()
}
