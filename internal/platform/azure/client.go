// Package azure provides a wrapper around the Azure Resource Manager API.
package azure

import "context"

// DeploymentOutputs holds the infrastructure template outputs the
// orchestrator consumes. Values are empty strings when the deployment did
// not produce them.
type DeploymentOutputs struct {
	// ClusterName is the AKS cluster name.
	ClusterName string
	// AppGwSubnetID is the resource ID of the subnet delegated to the
	// application gateway.
	AppGwSubnetID string
	// IdentityClientID is the client ID of the controller's managed
	// identity.
	IdentityClientID string
	// IdentityPrincipalID is the principal object ID of the controller's
	// managed identity, used for role assignments.
	IdentityPrincipalID string
}

// Empty reports whether the outputs carry no cluster name. An empty
// cluster name means the queried deployment is not the one that
// provisioned the infrastructure.
func (o DeploymentOutputs) Empty() bool {
	return o.ClusterName == ""
}

// ResourceGroupManager manages Azure resource groups.
type ResourceGroupManager interface {
	// EnsureResourceGroup creates the resource group if it does not
	// exist. Creating an existing group is a no-op on the Azure side.
	EnsureResourceGroup(ctx context.Context, name, location string, tags map[string]string) error
	ResourceGroupExists(ctx context.Context, name string) (bool, error)
	// DeleteResourceGroup deletes the group and everything in it,
	// blocking until the deletion completes.
	DeleteResourceGroup(ctx context.Context, name string) error
}

// DeploymentManager manages ARM template deployments.
type DeploymentManager interface {
	// ApplyTemplate runs an incremental deployment and blocks until it
	// completes.
	ApplyTemplate(ctx context.Context, resourceGroup, deploymentName string, template, parameters map[string]interface{}) error
	// OutputsForDeployment returns the outputs of a named deployment.
	OutputsForDeployment(ctx context.Context, resourceGroup, deploymentName string) (DeploymentOutputs, error)
	// LatestOutputs returns the outputs of the most recent deployment in
	// the resource group, by deployment timestamp.
	LatestOutputs(ctx context.Context, resourceGroup string) (DeploymentOutputs, error)
}

// ClusterManager fetches AKS cluster access credentials.
type ClusterManager interface {
	// ClusterCredentials returns a kubeconfig for the named cluster.
	ClusterCredentials(ctx context.Context, resourceGroup, clusterName string) ([]byte, error)
}

// AuthorizationManager manages role assignments.
type AuthorizationManager interface {
	// EnsureRoleAssignment grants roleDefinition to principalID at scope.
	// Returns false with a nil error when the assignment already exists.
	EnsureRoleAssignment(ctx context.Context, scope, roleDefinition, principalID string) (created bool, err error)
}

// TrafficController describes the managed load-balancing resource.
type TrafficController struct {
	ID                string
	Name              string
	Location          string
	ProvisioningState string
	// FrontendFQDNs are the externally reachable addresses of the
	// controller's frontends.
	FrontendFQDNs []string
}

// TrafficControllerManager reads traffic controller state.
type TrafficControllerManager interface {
	GetTrafficController(ctx context.Context, resourceGroup, name string) (*TrafficController, error)
}

// Manager combines all Azure management interfaces.
type Manager interface {
	ResourceGroupManager
	DeploymentManager
	ClusterManager
	AuthorizationManager
	TrafficControllerManager
}
