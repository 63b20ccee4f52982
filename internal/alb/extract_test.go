package alb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerIDExtractor(t *testing.T) {
	t.Parallel()

	extractor := NewControllerIDExtractor()

	t.Run("extracts ID surrounded by text", func(t *testing.T) {
		t.Parallel()
		conditions := []Condition{
			{
				Type:    "Deployment",
				Message: "foo alb-id=/subscriptions/X/.../trafficControllers/alb-abc123 bar",
			},
		}

		id, found := extractor.Extract(conditions)
		require.True(t, found)
		assert.Equal(t, "/subscriptions/X/.../trafficControllers/alb-abc123", id)
	})

	t.Run("extracts ID at end of message", func(t *testing.T) {
		t.Parallel()
		conditions := []Condition{
			{
				Type:    "Deployment",
				Message: "alb resource deployed successfully, alb-id=/subscriptions/0000/resourceGroups/rg/providers/Microsoft.ServiceNetworking/trafficControllers/alb-test",
			},
		}

		id, found := extractor.Extract(conditions)
		require.True(t, found)
		assert.Equal(t, "/subscriptions/0000/resourceGroups/rg/providers/Microsoft.ServiceNetworking/trafficControllers/alb-test", id)
	})

	t.Run("no Deployment condition yields nothing", func(t *testing.T) {
		t.Parallel()
		conditions := []Condition{
			{Type: "Accepted", Status: "True", Message: "Valid ApplicationLoadBalancer"},
			{Type: "Ready", Status: "False", Message: "alb-id=/subscriptions/x/y not from the right condition"},
		}

		id, found := extractor.Extract(conditions)
		assert.False(t, found)
		assert.Empty(t, id)
	})

	t.Run("empty condition list yields nothing", func(t *testing.T) {
		t.Parallel()
		id, found := extractor.Extract(nil)
		assert.False(t, found)
		assert.Empty(t, id)
	})

	t.Run("Deployment condition without marker is skipped", func(t *testing.T) {
		t.Parallel()
		conditions := []Condition{
			{Type: "Deployment", Status: "False", Message: "alb resource provisioning in progress"},
			{Type: "Deployment", Status: "True", Message: "done alb-id=/subscriptions/s/resourceGroups/rg/providers/Microsoft.ServiceNetworking/trafficControllers/alb-2"},
		}

		id, found := extractor.Extract(conditions)
		require.True(t, found)
		assert.Equal(t, "/subscriptions/s/resourceGroups/rg/providers/Microsoft.ServiceNetworking/trafficControllers/alb-2", id)
	})
}

func TestNewPrefixExtractor_CustomContract(t *testing.T) {
	t.Parallel()

	extractor := NewPrefixExtractor("Provisioned", "resource=")
	conditions := []Condition{
		{Type: "Provisioned", Message: "created resource=/subscriptions/a/b/c"},
		{Type: "Deployment", Message: "alb-id=/should/not/match"},
	}

	id, found := extractor.Extract(conditions)
	require.True(t, found)
	assert.Equal(t, "/subscriptions/a/b/c", id)
}
