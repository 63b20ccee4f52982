package provisioning

import "fmt"

// ClusterPhase fetches credentials for the provisioned cluster, builds the
// cluster-facing clients and ensures the controller namespace exists. An
// unreachable cluster is fatal.
type ClusterPhase struct{}

// Name implements Phase.
func (ClusterPhase) Name() string { return "cluster" }

// Provision implements Phase.
func (p ClusterPhase) Provision(ctx *Context) error {
	cfg := ctx.Config
	clusterName := ctx.State.Outputs.ClusterName

	kubeconfig, err := ctx.Azure.ClusterCredentials(ctx, cfg.ResourceGroup, clusterName)
	if err != nil {
		return fmt.Errorf("failed to fetch credentials for cluster %s: %w", clusterName, err)
	}
	ctx.State.Kubeconfig = kubeconfig

	client, err := ctx.NewKubeClient(kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to connect to cluster %s: %w", clusterName, err)
	}
	ctx.State.Kube = client

	installer, err := ctx.NewInstaller(kubeconfig, cfg.Controller.Namespace)
	if err != nil {
		return fmt.Errorf("failed to prepare the chart installer: %w", err)
	}
	ctx.State.Installer = installer

	created, err := client.EnsureNamespace(ctx, cfg.Controller.Namespace)
	if err != nil {
		return fmt.Errorf("failed to ensure namespace %s: %w", cfg.Controller.Namespace, err)
	}
	ctx.State.NamespaceCreated = created
	if created {
		LogResourceCreated(ctx.Observer, p.Name(), "namespace", cfg.Controller.Namespace)
	} else {
		LogResourceExists(ctx.Observer, p.Name(), "namespace", cfg.Controller.Namespace)
	}

	return nil
}
