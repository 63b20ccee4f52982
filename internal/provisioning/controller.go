package provisioning

import (
	"fmt"

	"github.com/albctl/albctl/internal/helm"
	"github.com/albctl/albctl/internal/util/retry"
)

// ControllerPhase installs the load balancer controller chart. Transient
// registry and cluster hiccups are absorbed by a bounded retry with a fixed
// delay; the phase fails only after the last attempt.
type ControllerPhase struct{}

// Name implements Phase.
func (ControllerPhase) Name() string { return "controller" }

// Provision implements Phase.
func (p ControllerPhase) Provision(ctx *Context) error {
	cfg := ctx.Config
	spec := helm.SpecFromConfig(cfg.Controller)
	values := helm.ControllerValues(cfg.Controller.Namespace, ctx.State.Outputs.IdentityClientID)

	attempt := 0
	err := retry.Do(ctx, func() error {
		attempt++
		ctx.Observer.Printf("[%s] installing %s %s (attempt %d/%d)", p.Name(), spec.Release, spec.Version, attempt, ctx.InstallAttempts)
		_, err := ctx.State.Installer.InstallOrUpgrade(ctx, spec, values)
		return err
	}, retry.WithAttempts(ctx.InstallAttempts), retry.WithDelay(ctx.InstallDelay))
	if err != nil {
		return fmt.Errorf("failed to install the controller after %d attempts: %w", ctx.InstallAttempts, err)
	}

	ctx.Observer.Printf("[%s] release %s is installed", p.Name(), spec.Release)
	return nil
}
