// Package alb models the ApplicationLoadBalancer custom resource surface the
// orchestrator consumes: its group/version/resource coordinates, the status
// condition records published by the controller, and extraction of the
// traffic controller resource ID from those conditions.
package alb

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupVersionResource locates ApplicationLoadBalancer resources on the API
// server.
var GroupVersionResource = schema.GroupVersionResource{
	Group:    "alb.networking.azure.io",
	Version:  "v1",
	Resource: "applicationloadbalancers",
}

// Kind is the ApplicationLoadBalancer kind name as it appears in manifests.
const Kind = "ApplicationLoadBalancer"

// Annotation keys linking the cluster resource back to the Azure-side
// traffic controller.
const (
	AnnotationControllerID   = "alb.networking.azure.io/traffic-controller-id"
	AnnotationControllerName = "alb.networking.azure.io/traffic-controller-name"
)

// Condition is one status.conditions record as published by the controller.
type Condition struct {
	Type    string
	Status  string
	Reason  string
	Message string
}

// ConditionsFromUnstructured reads status.conditions from an
// ApplicationLoadBalancer object. A missing status or condition list yields
// an empty slice, not an error: a freshly created resource has no status yet.
func ConditionsFromUnstructured(obj *unstructured.Unstructured) []Condition {
	if obj == nil {
		return nil
	}

	raw, found, err := unstructured.NestedSlice(obj.Object, "status", "conditions")
	if err != nil || !found {
		return nil
	}

	conditions := make([]Condition, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		c := Condition{}
		if v, ok := m["type"].(string); ok {
			c.Type = v
		}
		if v, ok := m["status"].(string); ok {
			c.Status = v
		}
		if v, ok := m["reason"].(string); ok {
			c.Reason = v
		}
		if v, ok := m["message"].(string); ok {
			c.Message = v
		}
		conditions = append(conditions, c)
	}

	return conditions
}

// FindCondition returns the first condition with the given type.
func FindCondition(conditions []Condition, conditionType string) (Condition, bool) {
	for _, c := range conditions {
		if c.Type == conditionType {
			return c, true
		}
	}
	return Condition{}, false
}
