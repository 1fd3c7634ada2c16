package cmd

import (
	"fmt"

	"appres/cmd/cli/app"
	"appres/internal/cli/output"

	"github.com/spf13/cobra"
)

var convertPretty bool

func init() {
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", false, "Write pretty output where the format supports it")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Converts a resource file between formats",
	Long: `Reads a resource file, decodes it according to its extension and writes
it to the output path in the format implied by the output extension.
Supported formats: json, toml, yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectConvertCommandHandler()
		if err != nil {
			return fmt.Errorf("error injecting convert handler: %v", err)
		}

		if err := handler.Handle(args[0], args[1], convertPretty); err != nil {
			return err
		}
		output.PrintSuccess(fmt.Sprintf("converted %s -> %s", args[0], args[1]))
		return nil
	},
}
