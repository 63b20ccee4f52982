// Package infra loads the ARM template describing the cluster, network and
// identity resources the deployment applies.
package infra

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/albctl/albctl/internal/config"
)

//go:embed templates/*
var templatesFS embed.FS

// Template holds a parsed ARM template and its parameter values, in the
// shape the Resource Manager deployment API expects.
type Template struct {
	Document   map[string]interface{}
	Parameters map[string]interface{}
}

// Load returns the deployment template and parameters selected by the
// configuration. Empty paths select the embedded defaults.
func Load(cfg config.DeploymentSpec) (*Template, error) {
	templateRaw, err := readOrEmbedded(cfg.Template, "templates/azuredeploy.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment template: %w", err)
	}
	document, err := parseJSON(templateRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deployment template: %w", err)
	}

	parametersRaw, err := readOrEmbedded(cfg.Parameters, "templates/azuredeploy.parameters.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment parameters: %w", err)
	}
	parametersDoc, err := parseJSON(parametersRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deployment parameters: %w", err)
	}

	return &Template{
		Document:   document,
		Parameters: parameterValues(parametersDoc),
	}, nil
}

func readOrEmbedded(path, embedded string) ([]byte, error) {
	if path == "" {
		return templatesFS.ReadFile(embedded)
	}
	return os.ReadFile(path)
}

func parseJSON(raw []byte) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// parameterValues unwraps a full parameters file down to the name/value
// mapping the deployment API takes. A document that is already the inner
// mapping passes through unchanged.
func parameterValues(doc map[string]interface{}) map[string]interface{} {
	if _, hasSchema := doc["$schema"]; !hasSchema {
		return doc
	}
	if inner, ok := doc["parameters"].(map[string]interface{}); ok {
		return inner
	}
	return doc
}
