package azure

import (
	"context"
	"fmt"
)

// ClusterCredentials fetches a user kubeconfig for the named AKS cluster.
// The kubeconfig is returned in memory; it is never written to the
// caller's kubeconfig file by this layer.
func (c *RealClient) ClusterCredentials(ctx context.Context, resourceGroup, clusterName string) ([]byte, error) {
	resp, err := c.managedClusters.ListClusterUserCredentials(ctx, resourceGroup, clusterName, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch credentials for cluster %q: %w", clusterName, err)
	}

	for _, kubeconfig := range resp.Kubeconfigs {
		if kubeconfig != nil && len(kubeconfig.Value) > 0 {
			return kubeconfig.Value, nil
		}
	}

	return nil, fmt.Errorf("cluster %q returned no kubeconfig", clusterName)
}
