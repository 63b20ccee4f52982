package azure

import (
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v3"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/servicenetworking/armservicenetworking"
)

// RealClient implements Manager using the Azure Resource Manager API.
type RealClient struct {
	subscriptionID string
	credential     azcore.TokenCredential
	clientOptions  *arm.ClientOptions
	pollFrequency  time.Duration

	resourceGroups     *armresources.ResourceGroupsClient
	deployments        *armresources.DeploymentsClient
	managedClusters    *armcontainerservice.ManagedClustersClient
	roleAssignments    *armauthorization.RoleAssignmentsClient
	trafficControllers *armservicenetworking.TrafficControllerInterfaceClient
	frontends          *armservicenetworking.FrontendsInterfaceClient
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithCredential sets the token credential. Without it the default
// credential chain (environment, managed identity, Azure CLI) is used.
func WithCredential(cred azcore.TokenCredential) ClientOption {
	return func(c *RealClient) {
		c.credential = cred
	}
}

// WithPollFrequency sets how often long-running operations are polled.
func WithPollFrequency(d time.Duration) ClientOption {
	return func(c *RealClient) {
		c.pollFrequency = d
	}
}

// WithClientOptions sets ARM client options (cloud, transport, retries).
func WithClientOptions(opts *arm.ClientOptions) ClientOption {
	return func(c *RealClient) {
		c.clientOptions = opts
	}
}

// NewRealClient creates a RealClient for the given subscription.
func NewRealClient(subscriptionID string, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{
		subscriptionID: subscriptionID,
		pollFrequency:  10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.credential == nil {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build Azure credential: %w", err)
		}
		c.credential = cred
	}

	var err error
	if c.resourceGroups, err = armresources.NewResourceGroupsClient(subscriptionID, c.credential, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	if c.deployments, err = armresources.NewDeploymentsClient(subscriptionID, c.credential, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create deployments client: %w", err)
	}
	if c.managedClusters, err = armcontainerservice.NewManagedClustersClient(subscriptionID, c.credential, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create managed clusters client: %w", err)
	}
	if c.roleAssignments, err = armauthorization.NewRoleAssignmentsClient(subscriptionID, c.credential, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create role assignments client: %w", err)
	}
	if c.trafficControllers, err = armservicenetworking.NewTrafficControllerInterfaceClient(subscriptionID, c.credential, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create traffic controllers client: %w", err)
	}
	if c.frontends, err = armservicenetworking.NewFrontendsInterfaceClient(subscriptionID, c.credential, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create frontends client: %w", err)
	}

	return c, nil
}

// SubscriptionID returns the subscription this client targets.
func (c *RealClient) SubscriptionID() string {
	return c.subscriptionID
}
