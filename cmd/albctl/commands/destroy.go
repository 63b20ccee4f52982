package commands

import (
	"github.com/spf13/cobra"

	"github.com/albctl/albctl/cmd/albctl/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command deletes the resource group and with it everything the
// deployment created: the AKS cluster, the load balancer, the managed
// identity, and the network.
func Destroy() *cobra.Command {
	var opts handlers.DestroyOptions

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the resource group and everything in it",
		Long: `Destroy removes the deployed stack from Azure.

Deleting the resource group removes all resources the deployment created:
  - The AKS cluster
  - The Application Gateway for Containers resource
  - The managed identity and its role assignments
  - The virtual network and subnets

Example:
  albctl destroy -c albctl.yaml

WARNING: This operation is irreversible. All cluster data will be lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (required)")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
