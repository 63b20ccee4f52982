package alb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

func albObject(conditions []interface{}) *unstructured.Unstructured {
	return &unstructured.Unstructured{
		Object: map[string]interface{}{
			"apiVersion": "alb.networking.azure.io/v1",
			"kind":       Kind,
			"metadata": map[string]interface{}{
				"name":      "alb-test",
				"namespace": "alb-infra",
			},
			"status": map[string]interface{}{
				"conditions": conditions,
			},
		},
	}
}

func TestConditionsFromUnstructured(t *testing.T) {
	t.Parallel()

	t.Run("reads all fields", func(t *testing.T) {
		t.Parallel()
		obj := albObject([]interface{}{
			map[string]interface{}{
				"type":    "Deployment",
				"status":  "True",
				"reason":  "Ready",
				"message": "alb-id=/subscriptions/s/resourceGroups/rg/providers/Microsoft.ServiceNetworking/trafficControllers/alb-1",
			},
			map[string]interface{}{
				"type":   "Accepted",
				"status": "True",
			},
		})

		conditions := ConditionsFromUnstructured(obj)
		require.Len(t, conditions, 2)
		assert.Equal(t, "Deployment", conditions[0].Type)
		assert.Equal(t, "True", conditions[0].Status)
		assert.Equal(t, "Ready", conditions[0].Reason)
		assert.Contains(t, conditions[0].Message, "alb-id=")
		assert.Equal(t, "Accepted", conditions[1].Type)
		assert.Empty(t, conditions[1].Message)
	})

	t.Run("missing status yields empty", func(t *testing.T) {
		t.Parallel()
		obj := &unstructured.Unstructured{Object: map[string]interface{}{
			"apiVersion": "alb.networking.azure.io/v1",
			"kind":       Kind,
		}}

		assert.Empty(t, ConditionsFromUnstructured(obj))
	})

	t.Run("nil object yields empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ConditionsFromUnstructured(nil))
	})

	t.Run("malformed entries are skipped", func(t *testing.T) {
		t.Parallel()
		obj := albObject([]interface{}{
			"not a map",
			map[string]interface{}{"type": "Deployment"},
		})

		conditions := ConditionsFromUnstructured(obj)
		require.Len(t, conditions, 1)
		assert.Equal(t, "Deployment", conditions[0].Type)
	})
}

func TestFindCondition(t *testing.T) {
	t.Parallel()

	conditions := []Condition{
		{Type: "Accepted", Status: "True"},
		{Type: "Deployment", Status: "False", Reason: "InProgress"},
		{Type: "Deployment", Status: "True", Reason: "Ready"},
	}

	c, found := FindCondition(conditions, "Deployment")
	require.True(t, found)
	assert.Equal(t, "InProgress", c.Reason)

	_, found = FindCondition(conditions, "Programmed")
	assert.False(t, found)
}

func TestParseControllerID(t *testing.T) {
	t.Parallel()

	t.Run("valid ID", func(t *testing.T) {
		t.Parallel()
		raw := "/subscriptions/7f2a0000-1111-2222-3333-444455556666/resourceGroups/alb-test-rg/providers/Microsoft.ServiceNetworking/trafficControllers/alb-test"

		id, err := ParseControllerID(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, id.Raw)
		assert.Equal(t, "7f2a0000-1111-2222-3333-444455556666", id.SubscriptionID)
		assert.Equal(t, "alb-test-rg", id.ResourceGroup)
		assert.Equal(t, "alb-test", id.Name)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := ParseControllerID("not-a-resource-id")
		assert.Error(t, err)
	})
}
