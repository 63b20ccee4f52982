package provisioning

import (
	"fmt"

	"github.com/albctl/albctl/internal/infra"
)

// InfrastructurePhase applies the ARM template and resolves its outputs.
// When the named deployment yields no usable outputs, the most recent
// deployment in the group is consulted instead; a run that cannot learn the
// cluster name from either stops here.
type InfrastructurePhase struct{}

// Name implements Phase.
func (InfrastructurePhase) Name() string { return "infrastructure" }

// Provision implements Phase.
func (p InfrastructurePhase) Provision(ctx *Context) error {
	cfg := ctx.Config

	tmpl, err := infra.Load(cfg.Deployment)
	if err != nil {
		return err
	}

	ctx.Observer.Printf("[%s] applying deployment %s to resource group %s", p.Name(), cfg.Deployment.Name, cfg.ResourceGroup)
	if err := ctx.Azure.ApplyTemplate(ctx, cfg.ResourceGroup, cfg.Deployment.Name, tmpl.Document, tmpl.Parameters); err != nil {
		return fmt.Errorf("failed to apply infrastructure template: %w", err)
	}

	outputs, err := ctx.Azure.OutputsForDeployment(ctx, cfg.ResourceGroup, cfg.Deployment.Name)
	if err != nil {
		return fmt.Errorf("failed to read deployment outputs: %w", err)
	}
	if outputs.Empty() {
		ctx.Observer.Printf("[%s] deployment %s returned no outputs, falling back to the most recent deployment", p.Name(), cfg.Deployment.Name)
		outputs, err = ctx.Azure.LatestOutputs(ctx, cfg.ResourceGroup)
		if err != nil {
			return fmt.Errorf("failed to read outputs of the most recent deployment: %w", err)
		}
	}
	if outputs.Empty() {
		return fmt.Errorf("deployment outputs carry no cluster name, refusing to guess which cluster to configure")
	}

	ctx.State.Outputs = outputs
	ctx.Observer.Printf("[%s] cluster %s, association subnet %s", p.Name(), outputs.ClusterName, outputs.AppGwSubnetID)
	return nil
}
