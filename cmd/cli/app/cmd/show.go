package cmd

import (
	"fmt"

	"appres/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Renders a resource file as pretty JSON",
	Long:  `Decodes a json, toml or yaml resource file and prints it as pretty json to stdout`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectShowCommandHandler()
		if err != nil {
			return fmt.Errorf("error injecting show handler: %v", err)
		}

		rendered, err := handler.Handle(args[0])
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	},
}
