package config

import (
	"strings"
	"testing"
)

func TestWizardResult_ToConfig(t *testing.T) {
	t.Parallel()
	result := &WizardResult{
		SubscriptionID: "7f2a0000-1111-2222-3333-444455556666",
		ResourceGroup:  "my-rg",
		Location:       "westeurope",
		Version:        "1.8.0",
		Namespace:      "azure-alb-system",
	}

	cfg := result.ToConfig()

	if cfg.ResourceGroup != "my-rg" {
		t.Errorf("ResourceGroup = %q, want %q", cfg.ResourceGroup, "my-rg")
	}
	if cfg.Controller.Version != "1.8.0" {
		t.Errorf("Controller.Version = %q, want %q", cfg.Controller.Version, "1.8.0")
	}
	// Defaults fill everything the wizard does not ask about.
	if cfg.Controller.Chart != DefaultControllerChart {
		t.Errorf("Controller.Chart = %q, want default", cfg.Controller.Chart)
	}
	if cfg.Workload.Name != DefaultWorkloadName {
		t.Errorf("Workload.Name = %q, want default", cfg.Workload.Name)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("wizard output should validate, got: %v", err)
	}
}

func TestWizardValidators(t *testing.T) {
	t.Parallel()

	t.Run("subscription", func(t *testing.T) {
		t.Parallel()
		if err := validateSubscriptionID(""); err != nil {
			t.Errorf("empty subscription should pass (env fallback), got: %v", err)
		}
		if err := validateSubscriptionID("7f2a0000-1111-2222-3333-444455556666"); err != nil {
			t.Errorf("valid GUID rejected: %v", err)
		}
		if err := validateSubscriptionID("xyz"); err == nil {
			t.Error("invalid GUID accepted")
		}
	})

	t.Run("resource group", func(t *testing.T) {
		t.Parallel()
		if err := validateResourceGroup("alb-test-rg"); err != nil {
			t.Errorf("valid name rejected: %v", err)
		}
		if err := validateResourceGroup(""); err == nil {
			t.Error("empty name accepted")
		}
		if err := validateResourceGroup(strings.Repeat("x", 91)); err == nil {
			t.Error("overlong name accepted")
		}
		if err := validateResourceGroup("bad/name"); err == nil {
			t.Error("slash accepted")
		}
	})

	t.Run("namespace", func(t *testing.T) {
		t.Parallel()
		if err := validateNamespace("azure-alb-system"); err != nil {
			t.Errorf("valid namespace rejected: %v", err)
		}
		if err := validateNamespace("-leading"); err == nil {
			t.Error("leading hyphen accepted")
		}
		if err := validateNamespace("Upper"); err == nil {
			t.Error("uppercase accepted")
		}
	})
}
