package provisioning

import (
	"context"

	"github.com/albctl/albctl/internal/alb"
	"github.com/albctl/albctl/internal/kube"
)

// StatusSource yields the current status conditions of the workload's load
// balancer resource. The convergence phase polls it until the deployment
// condition carries the controller's resource ID.
type StatusSource interface {
	Conditions(ctx context.Context) ([]alb.Condition, error)
}

// clusterStatusSource reads conditions from the resource in the cluster.
type clusterStatusSource struct {
	client    kube.Client
	namespace string
	name      string
}

// NewClusterStatusSource returns a StatusSource backed by the named load
// balancer resource.
func NewClusterStatusSource(client kube.Client, namespace, name string) StatusSource {
	return &clusterStatusSource{
		client:    client,
		namespace: namespace,
		name:      name,
	}
}

func (s *clusterStatusSource) Conditions(ctx context.Context) ([]alb.Condition, error) {
	obj, err := s.client.GetResource(ctx, alb.GroupVersionResource, s.namespace, s.name)
	if err != nil {
		return nil, err
	}
	return alb.ConditionsFromUnstructured(obj), nil
}
