package commands

import (
	"github.com/spf13/cobra"

	"github.com/albctl/albctl/cmd/albctl/handlers"
)

// Init returns the command for interactively creating a configuration.
//
// This command guides users through creating a configuration YAML file
// using an interactive wizard.
//
// Flags:
//
//	--output, -o: Path to output file (default "albctl.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration",
		Long: `Interactively create a configuration file.

This command guides you through configuring the deployment step by
step. It will ask about:

  - Azure subscription and resource group
  - Azure region
  - Controller chart version and namespace

The generated YAML is fully expanded and explicit, so every default is
visible and editable afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "albctl.yaml", "Output file path")

	return cmd
}
