package provisioning

import (
	"github.com/albctl/albctl/internal/alb"
	"github.com/albctl/albctl/internal/kube"
)

// Summary is the read-only report produced at the end of a run. Every field
// is best effort; reads that fail leave their field empty and add a warning.
type Summary struct {
	ResourceGroup     string            `json:"resourceGroup" yaml:"resourceGroup"`
	ClusterName       string            `json:"clusterName" yaml:"clusterName"`
	ControllerID      string            `json:"controllerId,omitempty" yaml:"controllerId,omitempty"`
	ControllerName    string            `json:"controllerName,omitempty" yaml:"controllerName,omitempty"`
	DeploymentStatus  string            `json:"deploymentStatus,omitempty" yaml:"deploymentStatus,omitempty"`
	DeploymentMessage string            `json:"deploymentMessage,omitempty" yaml:"deploymentMessage,omitempty"`
	ProvisioningState string            `json:"provisioningState,omitempty" yaml:"provisioningState,omitempty"`
	FrontendAddress   string            `json:"frontendAddress,omitempty" yaml:"frontendAddress,omitempty"`
	Pods              []kube.PodSummary `json:"pods,omitempty" yaml:"pods,omitempty"`
	Warnings          []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// SummaryPhase gathers the final report. It only reads: the workload
// resource, the managed Azure resource, the controller pods, and the
// externally reachable address. Partial data is fine.
type SummaryPhase struct{}

// Name implements Phase.
func (SummaryPhase) Name() string { return "summary" }

// Provision implements Phase.
func (p SummaryPhase) Provision(ctx *Context) error {
	cfg := ctx.Config

	summary := &Summary{
		ResourceGroup:  cfg.ResourceGroup,
		ClusterName:    ctx.State.Outputs.ClusterName,
		ControllerID:   ctx.State.ControllerID,
		ControllerName: ctx.State.ControllerName,
	}

	obj, err := ctx.State.Kube.GetResource(ctx, alb.GroupVersionResource, cfg.Workload.Namespace, cfg.Workload.Name)
	if err != nil {
		ctx.Warnf(p.Name(), "failed to read %s/%s: %v", cfg.Workload.Namespace, cfg.Workload.Name, err)
	} else {
		conditions := alb.ConditionsFromUnstructured(obj)
		if cond, ok := alb.FindCondition(conditions, alb.DeploymentConditionType); ok {
			summary.DeploymentStatus = cond.Status
			summary.DeploymentMessage = cond.Message
		}
	}

	if parsed, err := alb.ParseControllerID(ctx.State.ControllerID); err == nil {
		tc, err := ctx.Azure.GetTrafficController(ctx, parsed.ResourceGroup, parsed.Name)
		if err != nil {
			ctx.Warnf(p.Name(), "failed to read the managed load balancer %s: %v", parsed.Name, err)
		} else {
			summary.ProvisioningState = tc.ProvisioningState
			if len(tc.FrontendFQDNs) > 0 {
				summary.FrontendAddress = tc.FrontendFQDNs[0]
			}
		}
	}

	pods, err := ctx.State.Kube.PodSummaries(ctx, cfg.Controller.Namespace)
	if err != nil {
		ctx.Warnf(p.Name(), "failed to list controller pods: %v", err)
	} else {
		summary.Pods = pods
	}

	address, err := ctx.State.Kube.GatewayAddress(ctx, cfg.Workload.Namespace, cfg.Workload.Gateway)
	if err != nil {
		ctx.Warnf(p.Name(), "failed to read the gateway address: %v", err)
	} else if address != "" {
		// The gateway address is what clients actually reach; prefer it
		// over the frontend FQDN reported by the management plane.
		summary.FrontendAddress = address
	}

	summary.Warnings = ctx.State.Warnings
	ctx.State.Summary = summary

	ctx.Observer.Printf("[%s] cluster %s in %s", p.Name(), summary.ClusterName, summary.ResourceGroup)
	if summary.ControllerID != "" {
		ctx.Observer.Printf("[%s] load balancer %s (%s)", p.Name(), summary.ControllerName, summary.ProvisioningState)
	}
	if summary.FrontendAddress != "" {
		ctx.Observer.Printf("[%s] reachable at http://%s", p.Name(), summary.FrontendAddress)
	}
	for _, pod := range summary.Pods {
		ctx.Observer.Printf("[%s] pod %s %s %s", p.Name(), pod.Name, pod.Ready, pod.Phase)
	}
	for _, warning := range summary.Warnings {
		ctx.Observer.Printf("[%s] warning: %s", p.Name(), warning)
	}
	return nil
}
