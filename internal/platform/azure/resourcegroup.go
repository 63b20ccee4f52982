package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// EnsureResourceGroup creates the resource group if it does not exist.
// CreateOrUpdate is idempotent: re-creating an existing group with the
// same location succeeds.
func (c *RealClient) EnsureResourceGroup(ctx context.Context, name, location string, tags map[string]string) error {
	group := armresources.ResourceGroup{
		Location: to.Ptr(location),
	}
	if len(tags) > 0 {
		group.Tags = make(map[string]*string, len(tags))
		for k, v := range tags {
			group.Tags[k] = to.Ptr(v)
		}
	}

	_, err := c.resourceGroups.CreateOrUpdate(ctx, name, group, nil)
	if err != nil {
		return fmt.Errorf("failed to ensure resource group %q: %w", name, err)
	}
	return nil
}

// ResourceGroupExists reports whether the resource group exists.
func (c *RealClient) ResourceGroupExists(ctx context.Context, name string) (bool, error) {
	resp, err := c.resourceGroups.CheckExistence(ctx, name, nil)
	if err != nil {
		return false, fmt.Errorf("failed to check resource group %q: %w", name, err)
	}
	return resp.Success, nil
}

// DeleteResourceGroup deletes the group and everything in it, blocking
// until the deletion completes.
func (c *RealClient) DeleteResourceGroup(ctx context.Context, name string) error {
	poller, err := c.resourceGroups.BeginDelete(ctx, name, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete resource group %q: %w", name, err)
	}

	_, err = poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: c.pollFrequency})
	if err != nil {
		return fmt.Errorf("failed waiting for resource group %q deletion: %w", name, err)
	}
	return nil
}
