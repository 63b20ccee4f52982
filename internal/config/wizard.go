package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	SubscriptionID string
	ResourceGroup  string
	Location       string
	Version        string
	Namespace      string
}

// locationOptions are the regions offered by the wizard. Any region short
// name is accepted in the config file; the wizard just lists common ones.
func locationOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("East US (eastus)", "eastus"),
		huh.NewOption("East US 2 (eastus2)", "eastus2"),
		huh.NewOption("West US 3 (westus3)", "westus3"),
		huh.NewOption("North Europe (northeurope)", "northeurope"),
		huh.NewOption("West Europe (westeurope)", "westeurope"),
		huh.NewOption("UK South (uksouth)", "uksouth"),
		huh.NewOption("Southeast Asia (southeastasia)", "southeastasia"),
		huh.NewOption("Australia East (australiaeast)", "australiaeast"),
	}
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		ResourceGroup: "alb-test-rg",
		Location:      "eastus",
		Version:       DefaultControllerVersion,
		Namespace:     DefaultControllerNamespace,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subscription ID").
				Description("Azure subscription GUID. Leave empty to use AZURE_SUBSCRIPTION_ID.").
				Placeholder("00000000-0000-0000-0000-000000000000").
				Value(&result.SubscriptionID).
				Validate(validateSubscriptionID),

			huh.NewInput().
				Title("Resource group").
				Description("Created on apply when it does not exist yet").
				Value(&result.ResourceGroup).
				Validate(validateResourceGroup),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Location").
				Description("Azure region for the resource group and cluster").
				Options(locationOptions()...).
				Value(&result.Location),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Controller version").
				Description("alb-controller chart version to install").
				Value(&result.Version).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("controller version is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Controller namespace").
				Description("Namespace the controller is installed into").
				Value(&result.Namespace).
				Validate(validateNamespace),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config with defaults applied,
// so the written YAML is explicit and self-documenting.
func (r *WizardResult) ToConfig() *Config {
	cfg := &Config{
		SubscriptionID: r.SubscriptionID,
		ResourceGroup:  r.ResourceGroup,
		Location:       r.Location,
		Controller: ControllerSpec{
			Version:   r.Version,
			Namespace: r.Namespace,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// validateSubscriptionID accepts a GUID or empty (environment fallback).
func validateSubscriptionID(s string) error {
	if s == "" {
		return nil
	}
	if !subscriptionIDRegex.MatchString(s) {
		return fmt.Errorf("must be a GUID like 00000000-0000-0000-0000-000000000000")
	}
	return nil
}

// validateResourceGroup validates an Azure resource group name.
func validateResourceGroup(s string) error {
	if s == "" {
		return fmt.Errorf("resource group is required")
	}
	if len(s) > 90 {
		return fmt.Errorf("resource group name must be 90 characters or less")
	}
	if !resourceGroupRegex.MatchString(s) {
		return fmt.Errorf("only letters, digits, hyphens, underscores, periods, and parentheses are allowed")
	}
	return nil
}

// validateNamespace validates a Kubernetes namespace name.
func validateNamespace(s string) error {
	if s == "" {
		return fmt.Errorf("namespace is required")
	}
	if len(s) > 63 {
		return fmt.Errorf("namespace must be 63 characters or less")
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return fmt.Errorf("namespace can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return fmt.Errorf("namespace cannot start or end with a hyphen")
	}
	return nil
}
