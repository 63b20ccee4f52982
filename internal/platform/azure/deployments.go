package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ApplyTemplate runs an incremental ARM deployment and blocks until the
// service reports completion. Validation and quota errors surface as the
// returned error; nothing is retried here.
func (c *RealClient) ApplyTemplate(ctx context.Context, resourceGroup, deploymentName string, template, parameters map[string]interface{}) error {
	deployment := armresources.Deployment{
		Properties: &armresources.DeploymentProperties{
			Template:   template,
			Parameters: parameters,
			Mode:       to.Ptr(armresources.DeploymentModeIncremental),
		},
	}

	poller, err := c.deployments.BeginCreateOrUpdate(ctx, resourceGroup, deploymentName, deployment, nil)
	if err != nil {
		return fmt.Errorf("failed to start deployment %q: %w", deploymentName, err)
	}

	_, err = poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: c.pollFrequency})
	if err != nil {
		return fmt.Errorf("deployment %q failed: %w", deploymentName, err)
	}
	return nil
}

// OutputsForDeployment returns the outputs of a named deployment. A
// deployment that exists but produced no outputs yields empty values, not
// an error; the caller decides whether to fall back.
func (c *RealClient) OutputsForDeployment(ctx context.Context, resourceGroup, deploymentName string) (DeploymentOutputs, error) {
	resp, err := c.deployments.Get(ctx, resourceGroup, deploymentName, nil)
	if err != nil {
		if IsNotFound(err) {
			return DeploymentOutputs{}, nil
		}
		return DeploymentOutputs{}, fmt.Errorf("failed to get deployment %q: %w", deploymentName, err)
	}

	return outputsFromDeployment(&resp.DeploymentExtended), nil
}

// LatestOutputs returns the outputs of the most recent deployment in the
// resource group, by deployment timestamp. The deployment's logical name
// is not guaranteed to be discoverable by every caller, so this is the
// fallback when the named lookup comes back empty.
func (c *RealClient) LatestOutputs(ctx context.Context, resourceGroup string) (DeploymentOutputs, error) {
	var latest *armresources.DeploymentExtended
	var latestTime time.Time

	pager := c.deployments.NewListByResourceGroupPager(resourceGroup, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return DeploymentOutputs{}, fmt.Errorf("failed to list deployments in %q: %w", resourceGroup, err)
		}
		for _, d := range page.Value {
			if d == nil || d.Properties == nil || d.Properties.Timestamp == nil {
				continue
			}
			if latest == nil || d.Properties.Timestamp.After(latestTime) {
				latest = d
				latestTime = *d.Properties.Timestamp
			}
		}
	}

	if latest == nil {
		return DeploymentOutputs{}, fmt.Errorf("no deployments found in resource group %q", resourceGroup)
	}

	return outputsFromDeployment(latest), nil
}

// outputsFromDeployment extracts the outputs mapping from a deployment.
func outputsFromDeployment(d *armresources.DeploymentExtended) DeploymentOutputs {
	if d == nil || d.Properties == nil {
		return DeploymentOutputs{}
	}
	return OutputsFromMap(d.Properties.Outputs)
}

// OutputsFromMap converts ARM's raw outputs shape into DeploymentOutputs.
// ARM reports outputs as {"name": {"type": "String", "value": "..."}};
// missing or non-string entries yield empty fields.
func OutputsFromMap(raw interface{}) DeploymentOutputs {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return DeploymentOutputs{}
	}

	return DeploymentOutputs{
		ClusterName:         stringOutput(m, "clusterName"),
		AppGwSubnetID:       stringOutput(m, "appGwSubnetId"),
		IdentityClientID:    stringOutput(m, "albIdentityClientId"),
		IdentityPrincipalID: stringOutput(m, "albIdentityPrincipalId"),
	}
}

// stringOutput reads one string-typed output value.
func stringOutput(outputs map[string]interface{}, key string) string {
	entry, ok := outputs[key].(map[string]interface{})
	if !ok {
		return ""
	}
	value, _ := entry["value"].(string)
	return value
}
