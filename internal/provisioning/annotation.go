package provisioning

import (
	"github.com/albctl/albctl/internal/alb"
)

// AnnotationPhase records the extracted load balancer identity on the
// workload resource so operators and tooling can find the Azure resource
// from inside the cluster. Failures degrade the run with a warning.
type AnnotationPhase struct{}

// Name implements Phase.
func (AnnotationPhase) Name() string { return "annotation" }

// Provision implements Phase.
func (p AnnotationPhase) Provision(ctx *Context) error {
	cfg := ctx.Config

	id := ctx.State.ControllerID
	if id == "" {
		ctx.Warnf(p.Name(), "no load balancer resource ID extracted; skipping the annotation")
		return nil
	}

	name := ctx.State.ControllerName
	if name == "" {
		if parsed, err := alb.ParseControllerID(id); err == nil {
			name = parsed.Name
		}
	}

	annotations := map[string]string{
		alb.AnnotationControllerID:   id,
		alb.AnnotationControllerName: name,
	}
	err := ctx.State.Kube.Annotate(ctx, alb.GroupVersionResource, cfg.Workload.Namespace, cfg.Workload.Name, annotations)
	if err != nil {
		ctx.Warnf(p.Name(), "failed to annotate %s/%s: %v", cfg.Workload.Namespace, cfg.Workload.Name, err)
		return nil
	}

	ctx.State.Annotated = true
	ctx.Observer.Printf("[%s] recorded the load balancer identity on %s/%s", p.Name(), cfg.Workload.Namespace, cfg.Workload.Name)
	return nil
}
