package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSubnetID = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Network/virtualNetworks/vnet/subnets/appgw"

func TestRender_SubstitutesEveryOccurrence(t *testing.T) {
	t.Parallel()
	manifest := []byte(`spec:
  associations:
  - $SUBNET_ID
  backup:
  - $SUBNET_ID
`)

	rendered, err := Render(manifest, testSubnetID)
	require.NoError(t, err)

	assert.NotContains(t, string(rendered), PlaceholderSubnetID)
	assert.Equal(t, 2, strings.Count(string(rendered), testSubnetID))
}

func TestRender_MissingPlaceholderIsAnError(t *testing.T) {
	t.Parallel()
	manifest := []byte(`spec:
  associations:
  - /already/resolved/subnet
`)

	_, err := Render(manifest, testSubnetID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not contain the $SUBNET_ID placeholder")
}

func TestRender_EmptySubnetID(t *testing.T) {
	t.Parallel()
	_, err := Render([]byte("- $SUBNET_ID"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subnet ID is empty")
}

func TestLoad_EmbeddedDefault(t *testing.T) {
	t.Parallel()
	manifest, err := Load("")
	require.NoError(t, err)

	content := string(manifest)
	assert.Contains(t, content, PlaceholderSubnetID)
	assert.Contains(t, content, "kind: ApplicationLoadBalancer")
	assert.Contains(t, content, "kind: Gateway")
	assert.Contains(t, content, "kind: HTTPRoute")
}

func TestLoad_EmbeddedDefaultRenders(t *testing.T) {
	t.Parallel()
	manifest, err := Load("")
	require.NoError(t, err)

	rendered, err := Render(manifest, testSubnetID)
	require.NoError(t, err)
	assert.Contains(t, string(rendered), testSubnetID)
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: ConfigMap\n"), 0o600))

	manifest, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kind: ConfigMap\n", string(manifest))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read workload manifest")
}
