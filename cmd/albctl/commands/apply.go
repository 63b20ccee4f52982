package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/albctl/albctl/cmd/albctl/handlers"
)

// Apply returns the command that deploys the full load balancer stack.
//
// The command runs the deployment pipeline: resource group, ARM template,
// cluster credentials, controller install, workload manifests, convergence
// wait, role assignment, annotation, and the final summary.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect albctl.yaml)
//	--resource-group, -g: Deploy into this resource group instead of the configured one
//	--no-tui: Disable the interactive dashboard even on a terminal
//	--timeout: Overall deadline for the deployment
//	--kubeconfig-out: Where to write the fetched cluster credentials
//
// Environment variables:
//
//	AZURE_SUBSCRIPTION_ID: Azure subscription (used when the config omits one)
func Apply() *cobra.Command {
	var opts handlers.ApplyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Deploy the load balancer stack",
		Long: `Deploy Application Gateway for Containers end to end.

This command creates the resource group, applies the ARM template that
provisions the AKS cluster and the managed identity, installs the ALB
controller chart, applies the Gateway API workload, and waits for the
load balancer to converge.

If no config file is specified, it looks for albctl.yaml in the current
directory. Use 'albctl init' to create a configuration file.

Examples:
  # Deploy using albctl.yaml in the current directory
  albctl apply

  # Deploy using a specific config file
  albctl apply -c production.yaml

  # Re-apply after configuration changes
  albctl apply`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: albctl.yaml)")
	cmd.Flags().StringVarP(&opts.ResourceGroup, "resource-group", "g", "", "Deploy into this resource group instead of the configured one")
	cmd.Flags().BoolVar(&opts.NoTUI, "no-tui", false, "Disable the interactive dashboard")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 45*time.Minute, "Overall deployment deadline (0 disables)")
	cmd.Flags().StringVar(&opts.KubeconfigOut, "kubeconfig-out", "kubeconfig", "File the cluster credentials are written to (empty disables)")

	return cmd
}
