package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/albctl/albctl/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the configuration wizard.
	runWizard = config.RunWizard

	// saveConfig writes the config to a file.
	saveConfig = config.Save
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	cfg := result.ToConfig()

	if err := saveConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("albctl - Application Gateway for Containers on AKS")
	fmt.Println("==================================================")
	fmt.Println()
	fmt.Println("This wizard creates a deployment configuration with sensible defaults.")
	fmt.Println("The generated YAML is fully expanded and explicit.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	if cfg.SubscriptionID != "" {
		fmt.Printf("  Subscription:   %s\n", cfg.SubscriptionID)
	} else {
		fmt.Printf("  Subscription:   from AZURE_SUBSCRIPTION_ID\n")
	}
	fmt.Printf("  Resource group: %s\n", cfg.ResourceGroup)
	fmt.Printf("  Location:       %s\n", cfg.Location)
	fmt.Printf("  Controller:     %s in namespace %s\n", cfg.Controller.Version, cfg.Controller.Namespace)
	fmt.Printf("  Workload:       %s/%s\n", cfg.Workload.Namespace, cfg.Workload.Name)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	step := 1
	if cfg.SubscriptionID == "" {
		fmt.Printf("  %d. Set your Azure subscription:\n", step)
		fmt.Println("     export AZURE_SUBSCRIPTION_ID=<your-subscription>")
		fmt.Println()
		step++
	}
	fmt.Printf("  %d. Review %s if needed\n", step, outputPath)
	fmt.Println()
	fmt.Printf("  %d. Deploy:\n", step+1)
	fmt.Printf("     albctl apply\n")
	fmt.Println()
}
