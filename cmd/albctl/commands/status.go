package commands

import (
	"github.com/spf13/cobra"

	"github.com/albctl/albctl/cmd/albctl/handlers"
)

// Status returns the command that reports on a deployed stack.
//
// The command is read-only: it queries the most recent deployment outputs,
// connects to the cluster, and reports the load balancer state without
// changing anything.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect albctl.yaml)
//	--output, -o: Report format: text, json, or yaml
func Status() *cobra.Command {
	var opts handlers.StatusOptions

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report the state of a deployed stack",
		Long: `Report the state of a deployed load balancer stack.

This command reads the deployment outputs from Azure, connects to the
cluster, and reports the load balancer condition, the controller pods,
and the gateway address. It never modifies anything.

Examples:
  # Human-readable report
  albctl status

  # Machine-readable report
  albctl status -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: albctl.yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Report format: text, json, or yaml")

	return cmd
}
