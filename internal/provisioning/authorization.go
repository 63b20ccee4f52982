package provisioning

// AuthorizationPhase grants the controller identity access to the load
// balancer resource extracted during convergence. The grant is scoped to
// that single resource. Every failure here degrades the run with a warning;
// the deployment itself is already live.
type AuthorizationPhase struct{}

// Name implements Phase.
func (AuthorizationPhase) Name() string { return "authorization" }

// Provision implements Phase.
func (p AuthorizationPhase) Provision(ctx *Context) error {
	id := ctx.State.ControllerID
	if id == "" {
		ctx.Warnf(p.Name(), "no load balancer resource ID extracted; skipping the role assignment")
		return nil
	}
	principal := ctx.State.Outputs.IdentityPrincipalID
	if principal == "" {
		ctx.Warnf(p.Name(), "deployment outputs carry no identity principal ID; skipping the role assignment")
		return nil
	}

	created, err := ctx.Azure.EnsureRoleAssignment(ctx, id, ctx.Config.Authorization.RoleDefinition, principal)
	if err != nil {
		ctx.Warnf(p.Name(), "failed to grant the controller identity access to %s: %v", id, err)
		return nil
	}
	if created {
		ctx.State.RoleCreated = true
		LogResourceCreated(ctx.Observer, p.Name(), "role assignment", id)
	} else {
		LogResourceExists(ctx.Observer, p.Name(), "role assignment", id)
	}
	return nil
}
