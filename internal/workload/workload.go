// Package workload renders the sample application manifests, substituting
// the deployment's subnet into the load balancer association placeholder.
package workload

import (
	"bytes"
	"embed"
	"fmt"
	"os"
)

//go:embed manifests/*
var manifestsFS embed.FS

// PlaceholderSubnetID is the token the manifests carry where the
// association subnet resource ID belongs.
const PlaceholderSubnetID = "$SUBNET_ID"

// Load returns the manifest document to deploy. An empty path selects the
// embedded sample application.
func Load(path string) ([]byte, error) {
	if path == "" {
		return manifestsFS.ReadFile("manifests/sample-app.yaml")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload manifest %s: %w", path, err)
	}
	return content, nil
}

// Render substitutes every occurrence of the subnet placeholder with the
// given subnet resource ID. A manifest without the placeholder is rejected
// rather than applied unmodified, since the load balancer association would
// silently point nowhere.
func Render(manifest []byte, subnetID string) ([]byte, error) {
	if subnetID == "" {
		return nil, fmt.Errorf("subnet ID is empty")
	}

	placeholder := []byte(PlaceholderSubnetID)
	if !bytes.Contains(manifest, placeholder) {
		return nil, fmt.Errorf("workload manifest does not contain the %s placeholder", PlaceholderSubnetID)
	}

	return bytes.ReplaceAll(manifest, placeholder, []byte(subnetID)), nil
}
