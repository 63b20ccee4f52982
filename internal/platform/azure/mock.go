package azure

import "context"

// MockClient is a mock implementation of Manager.
type MockClient struct {
	EnsureResourceGroupFunc func(ctx context.Context, name, location string, tags map[string]string) error
	ResourceGroupExistsFunc func(ctx context.Context, name string) (bool, error)
	DeleteResourceGroupFunc func(ctx context.Context, name string) error

	ApplyTemplateFunc        func(ctx context.Context, resourceGroup, deploymentName string, template, parameters map[string]interface{}) error
	OutputsForDeploymentFunc func(ctx context.Context, resourceGroup, deploymentName string) (DeploymentOutputs, error)
	LatestOutputsFunc        func(ctx context.Context, resourceGroup string) (DeploymentOutputs, error)

	ClusterCredentialsFunc func(ctx context.Context, resourceGroup, clusterName string) ([]byte, error)

	EnsureRoleAssignmentFunc func(ctx context.Context, scope, roleDefinition, principalID string) (bool, error)

	GetTrafficControllerFunc func(ctx context.Context, resourceGroup, name string) (*TrafficController, error)
}

// Ensure interface compliance
var _ Manager = (*MockClient)(nil)

// EnsureResourceGroup mocks resource group creation.
func (m *MockClient) EnsureResourceGroup(ctx context.Context, name, location string, tags map[string]string) error {
	if m.EnsureResourceGroupFunc != nil {
		return m.EnsureResourceGroupFunc(ctx, name, location, tags)
	}
	return nil
}

// ResourceGroupExists mocks the existence check.
func (m *MockClient) ResourceGroupExists(ctx context.Context, name string) (bool, error) {
	if m.ResourceGroupExistsFunc != nil {
		return m.ResourceGroupExistsFunc(ctx, name)
	}
	return false, nil
}

// DeleteResourceGroup mocks resource group deletion.
func (m *MockClient) DeleteResourceGroup(ctx context.Context, name string) error {
	if m.DeleteResourceGroupFunc != nil {
		return m.DeleteResourceGroupFunc(ctx, name)
	}
	return nil
}

// ApplyTemplate mocks a template deployment.
func (m *MockClient) ApplyTemplate(ctx context.Context, resourceGroup, deploymentName string, template, parameters map[string]interface{}) error {
	if m.ApplyTemplateFunc != nil {
		return m.ApplyTemplateFunc(ctx, resourceGroup, deploymentName, template, parameters)
	}
	return nil
}

// OutputsForDeployment mocks the named deployment output lookup.
func (m *MockClient) OutputsForDeployment(ctx context.Context, resourceGroup, deploymentName string) (DeploymentOutputs, error) {
	if m.OutputsForDeploymentFunc != nil {
		return m.OutputsForDeploymentFunc(ctx, resourceGroup, deploymentName)
	}
	return DeploymentOutputs{}, nil
}

// LatestOutputs mocks the most-recent deployment output lookup.
func (m *MockClient) LatestOutputs(ctx context.Context, resourceGroup string) (DeploymentOutputs, error) {
	if m.LatestOutputsFunc != nil {
		return m.LatestOutputsFunc(ctx, resourceGroup)
	}
	return DeploymentOutputs{}, nil
}

// ClusterCredentials mocks the kubeconfig fetch.
func (m *MockClient) ClusterCredentials(ctx context.Context, resourceGroup, clusterName string) ([]byte, error) {
	if m.ClusterCredentialsFunc != nil {
		return m.ClusterCredentialsFunc(ctx, resourceGroup, clusterName)
	}
	return []byte("mock-kubeconfig"), nil
}

// EnsureRoleAssignment mocks the role grant.
func (m *MockClient) EnsureRoleAssignment(ctx context.Context, scope, roleDefinition, principalID string) (bool, error) {
	if m.EnsureRoleAssignmentFunc != nil {
		return m.EnsureRoleAssignmentFunc(ctx, scope, roleDefinition, principalID)
	}
	return true, nil
}

// GetTrafficController mocks reading the managed resource.
func (m *MockClient) GetTrafficController(ctx context.Context, resourceGroup, name string) (*TrafficController, error) {
	if m.GetTrafficControllerFunc != nil {
		return m.GetTrafficControllerFunc(ctx, resourceGroup, name)
	}
	return &TrafficController{Name: name, ProvisioningState: "Succeeded"}, nil
}
