package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/albctl/albctl/internal/alb"
	"github.com/albctl/albctl/internal/provisioning"
)

// StatusOptions carries the status command flags.
type StatusOptions struct {
	ConfigPath string
	Output     string
}

// quietObserver drops all pipeline output. The rendered report owns stdout;
// log lines would corrupt the machine-readable formats.
type quietObserver struct{}

func (quietObserver) Printf(string, ...interface{}) {}
func (quietObserver) Event(provisioning.Event)      {}
func (quietObserver) Progress(string, int, int)     {}

// Status reports on a deployed stack without changing it.
//
// It reads the deployment outputs from Azure, connects to the cluster, and
// reuses the summary phase to collect the load balancer condition, the
// controller pods, and the gateway address. Unlike apply, it probes the
// status once and never waits.
func Status(ctx context.Context, opts StatusOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	client, err := newAzureClient(cfg.SubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to create Azure client: %w", err)
	}

	pCtx := newDeployContext(ctx, cfg, client)
	pCtx.Observer = quietObserver{}

	if err := gatherStatus(pCtx); err != nil {
		return err
	}

	return renderSummary(pCtx.State.Summary, opts.Output)
}

// gatherStatus populates the deployment state by reading, never writing.
func gatherStatus(pCtx *provisioning.Context) error {
	cfg := pCtx.Config

	outputs, err := pCtx.Azure.OutputsForDeployment(pCtx, cfg.ResourceGroup, cfg.Deployment.Name)
	if err != nil || outputs.Empty() {
		outputs, err = pCtx.Azure.LatestOutputs(pCtx, cfg.ResourceGroup)
		if err != nil {
			return fmt.Errorf("failed to read deployment outputs: %w", err)
		}
	}
	if outputs.ClusterName == "" {
		return fmt.Errorf("no deployment found in resource group %s; run 'albctl apply' first", cfg.ResourceGroup)
	}
	pCtx.State.Outputs = outputs

	kubeconfig, err := pCtx.Azure.ClusterCredentials(pCtx, cfg.ResourceGroup, outputs.ClusterName)
	if err != nil {
		return fmt.Errorf("failed to fetch credentials for cluster %s: %w", outputs.ClusterName, err)
	}

	kubeClient, err := pCtx.NewKubeClient(kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to connect to cluster %s: %w", outputs.ClusterName, err)
	}
	pCtx.State.Kube = kubeClient

	// One probe for the load balancer identity; no waiting.
	source := provisioning.NewClusterStatusSource(kubeClient, cfg.Workload.Namespace, cfg.Workload.Name)
	if conditions, err := source.Conditions(pCtx); err == nil {
		if id, ok := pCtx.Extractor.Extract(conditions); ok {
			pCtx.State.ControllerID = id
			if parsed, err := alb.ParseControllerID(id); err == nil {
				pCtx.State.ControllerName = parsed.Name
			}
		}
	}

	return provisioning.SummaryPhase{}.Provision(pCtx)
}

// renderSummary writes the report to stdout in the requested format.
func renderSummary(summary *provisioning.Summary, format string) error {
	if summary == nil {
		return fmt.Errorf("no status collected")
	}

	switch format {
	case "", "text":
		renderText(summary)
		return nil
	case "json":
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render status: %w", err)
		}
		fmt.Println(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(summary)
		if err != nil {
			return fmt.Errorf("failed to render status: %w", err)
		}
		fmt.Print(string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected text, json, or yaml)", format)
	}
}

func renderText(s *provisioning.Summary) {
	fmt.Printf("Resource group:  %s\n", s.ResourceGroup)
	fmt.Printf("Cluster:         %s\n", s.ClusterName)

	if s.ControllerID != "" {
		fmt.Printf("Load balancer:   %s\n", s.ControllerName)
		fmt.Printf("  Resource ID:   %s\n", s.ControllerID)
	} else {
		fmt.Printf("Load balancer:   not reported yet\n")
	}
	if s.DeploymentStatus != "" {
		line := s.DeploymentStatus
		if s.DeploymentMessage != "" {
			line += " (" + s.DeploymentMessage + ")"
		}
		fmt.Printf("  Deployment:    %s\n", line)
	}
	if s.ProvisioningState != "" {
		fmt.Printf("  Provisioning:  %s\n", s.ProvisioningState)
	}
	if s.FrontendAddress != "" {
		fmt.Printf("  Address:       http://%s\n", s.FrontendAddress)
	}

	if len(s.Pods) > 0 {
		fmt.Printf("Controller pods:\n")
		for _, pod := range s.Pods {
			fmt.Printf("  %-44s %-10s %s", pod.Name, pod.Phase, pod.Ready)
			if pod.Restarts > 0 {
				fmt.Printf("  (%d restarts)", pod.Restarts)
			}
			fmt.Println()
		}
	}

	if len(s.Warnings) > 0 {
		fmt.Printf("Warnings:\n")
		for _, warning := range s.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}
}
