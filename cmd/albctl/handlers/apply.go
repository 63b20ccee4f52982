// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/albctl/albctl/internal/config"
	"github.com/albctl/albctl/internal/platform/azure"
	"github.com/albctl/albctl/internal/provisioning"
	"github.com/albctl/albctl/internal/ui/tui"
)

// ApplyOptions carries the apply command flags.
type ApplyOptions struct {
	ConfigPath    string
	ResourceGroup string
	NoTUI         bool
	Timeout       time.Duration
	KubeconfigOut string
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newAzureClient creates the Azure management client.
	newAzureClient = func(subscriptionID string) (azure.Manager, error) {
		return azure.NewRealClient(subscriptionID)
	}

	// newDeployContext creates a provisioning context.
	newDeployContext = provisioning.NewContext

	// deployPhases returns the deployment pipeline phases.
	deployPhases = provisioning.DeployPhases

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.Load

	// findConfigFile finds the default config file (for testing injection).
	findConfigFile = config.FindConfigFile

	// writeFile writes data to a file (for testing injection).
	writeFile = os.WriteFile

	// runDeployTUI runs the deployment behind the terminal dashboard.
	runDeployTUI = tui.RunDeployTUI

	// stdoutIsTTY reports whether stdout is an interactive terminal.
	stdoutIsTTY = isInteractiveTTY
)

// Apply deploys the full load balancer stack.
//
// This function orchestrates the complete deployment workflow:
//  1. Loads and validates the configuration
//  2. Initializes the Azure client for the configured subscription
//  3. Runs the deployment pipeline: resource group, ARM template, cluster
//     credentials, controller install, workload manifests, convergence wait,
//     role assignment, annotation, and the final summary
//  4. Writes the fetched kubeconfig to disk for later inspection
//
// On an interactive terminal the pipeline runs behind a dashboard; pass
// --no-tui (or redirect output) for plain log lines.
//
// A run that only collected warnings still succeeds. Warnings are repeated
// after the pipeline so they survive the dashboard teardown.
func Apply(ctx context.Context, opts ApplyOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	if opts.ResourceGroup != "" {
		cfg.ResourceGroup = opts.ResourceGroup
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid resource group override: %w", err)
		}
	}

	client, err := newAzureClient(cfg.SubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to create Azure client: %w", err)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	state, err := runDeployment(ctx, cfg, client, opts)
	if err != nil {
		return err
	}

	if err := writeKubeconfig(state, opts.KubeconfigOut); err != nil {
		return err
	}

	printApplySuccess(cfg, state, opts)
	return nil
}

// runDeployment executes the pipeline, on a terminal behind the TUI.
// Returns the final deployment state for reporting.
func runDeployment(ctx context.Context, cfg *config.Config, client azure.Manager, opts ApplyOptions) (*provisioning.State, error) {
	if opts.NoTUI || !stdoutIsTTY() {
		pCtx := newDeployContext(ctx, cfg, client)
		log.Printf("Deploying into resource group %s (%s)", cfg.ResourceGroup, cfg.Location)
		if err := provisioning.NewPipeline(deployPhases()...).Run(pCtx); err != nil {
			return nil, err
		}
		return pCtx.State, nil
	}

	// Quitting the TUI mid-run returns ErrInterrupted; the cancel stops the
	// pipeline goroutine it leaves behind.
	tuiCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pCtx := newDeployContext(tuiCtx, cfg, client)
	err := runDeployTUI(cfg.ResourceGroup, cfg.Location, func(ch chan<- tea.Msg) error {
		pCtx.Observer = tui.NewChannelObserver(ch)
		return provisioning.NewPipeline(deployPhases()...).Run(pCtx)
	})
	if err != nil {
		return nil, err
	}
	return pCtx.State, nil
}

// loadConfig loads and validates the configuration.
// If configPath is empty, it looks for albctl.yaml in the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w\nRun 'albctl init' to create one", err)
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Using config: %s", configPath)
	return cfg, nil
}

// writeKubeconfig persists the fetched cluster credentials to disk.
// Skipped when the path is empty or no credentials were fetched.
func writeKubeconfig(state *provisioning.State, path string) error {
	if path == "" || len(state.Kubeconfig) == 0 {
		return nil
	}

	if err := writeFile(path, state.Kubeconfig, 0600); err != nil {
		return fmt.Errorf("failed to write kubeconfig: %w", err)
	}

	return nil
}

// printApplySuccess outputs the completion message and next steps.
func printApplySuccess(cfg *config.Config, state *provisioning.State, opts ApplyOptions) {
	fmt.Printf("\nDeployment complete!\n")

	if summary := state.Summary; summary != nil {
		fmt.Printf("  Cluster:       %s\n", summary.ClusterName)
		if summary.ControllerID != "" {
			fmt.Printf("  Load balancer: %s\n", summary.ControllerID)
		}
		if summary.FrontendAddress != "" {
			fmt.Printf("  Address:       http://%s\n", summary.FrontendAddress)
		}
	}

	if opts.KubeconfigOut != "" && len(state.Kubeconfig) > 0 {
		fmt.Printf("  Kubeconfig:    %s\n", opts.KubeconfigOut)
		fmt.Printf("\nYou can now inspect the deployment with:\n")
		fmt.Printf("  export KUBECONFIG=%s\n", opts.KubeconfigOut)
		fmt.Printf("  kubectl get pods -n %s\n", cfg.Controller.Namespace)
	}

	if len(state.Warnings) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, warning := range state.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
