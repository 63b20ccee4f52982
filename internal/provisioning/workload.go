package provisioning

import (
	"fmt"

	"github.com/albctl/albctl/internal/workload"
)

const fieldManager = "albctl"

// WorkloadPhase renders the workload manifests with the deployed subnet ID
// and applies them with server-side apply.
type WorkloadPhase struct{}

// Name implements Phase.
func (WorkloadPhase) Name() string { return "workload" }

// Provision implements Phase.
func (p WorkloadPhase) Provision(ctx *Context) error {
	cfg := ctx.Config

	manifest, err := workload.Load(cfg.Workload.Manifest)
	if err != nil {
		return err
	}
	rendered, err := workload.Render(manifest, ctx.State.Outputs.AppGwSubnetID)
	if err != nil {
		return err
	}

	// The controller chart just installed the custom resource definitions;
	// the client's mapper has to learn them before the apply.
	if err := ctx.State.Kube.RefreshDiscovery(ctx); err != nil {
		return fmt.Errorf("failed to refresh API discovery: %w", err)
	}
	if err := ctx.State.Kube.ApplyManifests(ctx, rendered, fieldManager); err != nil {
		return fmt.Errorf("failed to apply workload manifests: %w", err)
	}

	ctx.Observer.Printf("[%s] manifests applied to namespace %s", p.Name(), cfg.Workload.Namespace)
	return nil
}
