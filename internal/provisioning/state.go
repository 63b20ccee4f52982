package provisioning

import (
	"github.com/albctl/albctl/internal/helm"
	"github.com/albctl/albctl/internal/kube"
	"github.com/albctl/albctl/internal/platform/azure"
)

// State holds the shared results of deployment phases. It is progressively
// populated as each phase completes and is read by the phases that follow.
type State struct {
	// Resource group results
	ResourceGroupCreated bool

	// Infrastructure results (populated by the infrastructure phase)
	Outputs azure.DeploymentOutputs

	// Cluster results (populated by the cluster phase)
	Kubeconfig       []byte
	Kube             kube.Client
	Installer        helm.Installer
	NamespaceCreated bool

	// Convergence results
	ControllerID   string
	ControllerName string
	Converged      bool

	// Post-convergence results
	RoleCreated bool
	Annotated   bool

	// Final report
	Summary *Summary

	// Warnings collected across all phases. A non-empty list still exits
	// zero.
	Warnings []string
}

// NewState creates an empty deployment state.
func NewState() *State {
	return &State{}
}
