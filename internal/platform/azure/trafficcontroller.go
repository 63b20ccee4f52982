package azure

import (
	"context"
	"fmt"
)

// GetTrafficController reads the managed traffic controller and its
// frontend FQDNs.
func (c *RealClient) GetTrafficController(ctx context.Context, resourceGroup, name string) (*TrafficController, error) {
	resp, err := c.trafficControllers.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get traffic controller %q: %w", name, err)
	}

	tc := &TrafficController{}
	if resp.ID != nil {
		tc.ID = *resp.ID
	}
	if resp.Name != nil {
		tc.Name = *resp.Name
	}
	if resp.Location != nil {
		tc.Location = *resp.Location
	}
	if resp.Properties != nil && resp.Properties.ProvisioningState != nil {
		tc.ProvisioningState = string(*resp.Properties.ProvisioningState)
	}

	pager := c.frontends.NewListByTrafficControllerPager(resourceGroup, name, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list frontends of %q: %w", name, err)
		}
		for _, frontend := range page.Value {
			if frontend != nil && frontend.Properties != nil && frontend.Properties.Fqdn != nil {
				tc.FrontendFQDNs = append(tc.FrontendFQDNs, *frontend.Properties.Fqdn)
			}
		}
	}

	return tc, nil
}
