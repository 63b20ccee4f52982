package kube

import (
	"context"
	"encoding/json"
	"fmt"

	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
)

// gatewayResource identifies Gateway API gateways, through which the managed
// load balancer exposes workloads.
var gatewayResource = schema.GroupVersionResource{
	Group:    "gateway.networking.k8s.io",
	Version:  "v1",
	Resource: "gateways",
}

// GetResource fetches a single resource by group/version/resource, namespace
// and name.
func (c *client) GetResource(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string) (*unstructured.Unstructured, error) {
	obj, err := c.dynamicClient.Resource(gvr).Namespace(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s/%s: %w", gvr.Resource, namespace, name, err)
	}
	return obj, nil
}

// Annotate merges the given annotations into the resource's metadata using a
// JSON merge patch. Existing annotations with other keys are left untouched.
func (c *client) Annotate(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string, annotations map[string]string) error {
	if len(annotations) == 0 {
		return nil
	}

	patch := map[string]interface{}{
		"metadata": map[string]interface{}{
			"annotations": annotations,
		},
	}
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to marshal annotation patch: %w", err)
	}

	_, err = c.dynamicClient.Resource(gvr).Namespace(namespace).Patch(
		ctx,
		name,
		types.MergePatchType,
		data,
		metav1.PatchOptions{},
	)
	if err != nil {
		return fmt.Errorf("failed to annotate %s %s/%s: %w", gvr.Resource, namespace, name, err)
	}

	return nil
}

// PodSummaries lists the pods in a namespace with their phase, readiness and
// restart counts.
func (c *client) PodSummaries(ctx context.Context, namespace string) ([]PodSummary, error) {
	pods, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods in %s: %w", namespace, err)
	}

	summaries := make([]PodSummary, 0, len(pods.Items))
	for _, pod := range pods.Items {
		ready := 0
		var restarts int32
		for _, status := range pod.Status.ContainerStatuses {
			if status.Ready {
				ready++
			}
			restarts += status.RestartCount
		}

		summaries = append(summaries, PodSummary{
			Name:     pod.Name,
			Phase:    string(pod.Status.Phase),
			Ready:    fmt.Sprintf("%d/%d", ready, len(pod.Spec.Containers)),
			Restarts: restarts,
		})
	}

	return summaries, nil
}

// GatewayAddress returns the first status address of a Gateway API gateway.
// A gateway that does not exist or has no address yet yields an empty string.
func (c *client) GatewayAddress(ctx context.Context, namespace, name string) (string, error) {
	obj, err := c.dynamicClient.Resource(gatewayResource).Namespace(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if errors.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get gateway %s/%s: %w", namespace, name, err)
	}

	addresses, found, err := unstructured.NestedSlice(obj.Object, "status", "addresses")
	if err != nil || !found {
		return "", nil
	}

	for _, entry := range addresses {
		address, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if value, ok := address["value"].(string); ok && value != "" {
			return value, nil
		}
	}

	return "", nil
}
