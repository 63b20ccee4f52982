package kube

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/restmapper"
	"k8s.io/client-go/tools/clientcmd"
)

// PodSummary captures the fields of a pod worth reporting after a deployment.
type PodSummary struct {
	Name     string `json:"name"`
	Phase    string `json:"phase"`
	Ready    string `json:"ready"`
	Restarts int32  `json:"restarts,omitempty"`
}

// Client provides Kubernetes operations for the deployment flow.
type Client interface {
	// EnsureNamespace creates the namespace if it does not exist.
	// Returns true if the namespace was created, false if it already existed.
	EnsureNamespace(ctx context.Context, name string) (bool, error)

	// ApplyManifests applies multi-document YAML using Server-Side Apply.
	// The fieldManager identifies the actor applying the configuration.
	ApplyManifests(ctx context.Context, manifests []byte, fieldManager string) error

	// RefreshDiscovery refreshes the API discovery to pick up newly installed CRDs.
	// This should be called after installing a Helm chart that includes CRDs.
	RefreshDiscovery(ctx context.Context) error

	// GetResource fetches a single resource by group/version/resource, namespace
	// and name.
	GetResource(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string) (*unstructured.Unstructured, error)

	// Annotate merges the given annotations into the resource's metadata.
	Annotate(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string, annotations map[string]string) error

	// PodSummaries lists the pods in a namespace with their phase and readiness.
	PodSummaries(ctx context.Context, namespace string) ([]PodSummary, error)

	// GatewayAddress returns the first status address of a Gateway API gateway,
	// or an empty string if none has been assigned yet.
	GatewayAddress(ctx context.Context, namespace, name string) (string, error)
}

// client implements the Client interface using k8s.io/client-go.
type client struct {
	clientset     kubernetes.Interface
	dynamicClient dynamic.Interface
	mapper        meta.RESTMapper
	kubeconfig    []byte // Store for refreshing discovery
}

// NewFromKubeconfig creates a Client from kubeconfig bytes.
// This avoids the need to write kubeconfig to a temporary file.
func NewFromKubeconfig(kubeconfig []byte) (Client, error) {
	restConfig, err := clientcmd.RESTConfigFromKubeConfig(kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create REST config from kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes clientset: %w", err)
	}

	// Dynamic client for arbitrary manifests, including the load balancer CRD
	dynamicClient, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}

	discoveryClient, err := discovery.NewDiscoveryClientForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create discovery client: %w", err)
	}

	groupResources, err := restmapper.GetAPIGroupResources(discoveryClient)
	if err != nil {
		return nil, fmt.Errorf("failed to get API group resources: %w", err)
	}
	mapper := restmapper.NewDiscoveryRESTMapper(groupResources)

	return &client{
		clientset:     clientset,
		dynamicClient: dynamicClient,
		mapper:        mapper,
		kubeconfig:    kubeconfig,
	}, nil
}

// NewFromClients creates a Client from pre-configured clients.
// This is useful for testing with fake clients.
func NewFromClients(
	clientset kubernetes.Interface,
	dynamicClient dynamic.Interface,
	mapper meta.RESTMapper,
) Client {
	return &client{
		clientset:     clientset,
		dynamicClient: dynamicClient,
		mapper:        mapper,
	}
}

// RefreshDiscovery rebuilds the REST mapper. The controller chart installs
// CRDs that the mapper created at connect time does not know about.
func (c *client) RefreshDiscovery(ctx context.Context) error {
	if len(c.kubeconfig) == 0 {
		// For test clients, skip refresh
		return nil
	}

	restConfig, err := clientcmd.RESTConfigFromKubeConfig(c.kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to create REST config: %w", err)
	}

	discoveryClient, err := discovery.NewDiscoveryClientForConfig(restConfig)
	if err != nil {
		return fmt.Errorf("failed to create discovery client: %w", err)
	}

	groupResources, err := restmapper.GetAPIGroupResources(discoveryClient)
	if err != nil {
		return fmt.Errorf("failed to get API group resources: %w", err)
	}

	c.mapper = restmapper.NewDiscoveryRESTMapper(groupResources)
	return nil
}
