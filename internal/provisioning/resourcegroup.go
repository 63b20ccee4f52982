package provisioning

import "fmt"

// managedByTag marks resource groups created by this tool.
var managedByTag = map[string]string{"managed-by": "albctl"}

// ResourceGroupPhase ensures the target resource group exists. A missing
// group is created; an existing one is left as is. Permission failures are
// fatal, nothing later can succeed without the group.
type ResourceGroupPhase struct{}

// Name implements Phase.
func (ResourceGroupPhase) Name() string { return "resource-group" }

// Provision implements Phase.
func (p ResourceGroupPhase) Provision(ctx *Context) error {
	name := ctx.Config.ResourceGroup

	exists, err := ctx.Azure.ResourceGroupExists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check resource group %s: %w", name, err)
	}
	if exists {
		LogResourceExists(ctx.Observer, p.Name(), "resource group", name)
		return nil
	}

	if err := ctx.Azure.EnsureResourceGroup(ctx, name, ctx.Config.Location, managedByTag); err != nil {
		return fmt.Errorf("failed to create resource group %s: %w", name, err)
	}

	ctx.State.ResourceGroupCreated = true
	LogResourceCreated(ctx.Observer, p.Name(), "resource group", name)
	return nil
}
