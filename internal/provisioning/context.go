package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/albctl/albctl/internal/alb"
	"github.com/albctl/albctl/internal/config"
	"github.com/albctl/albctl/internal/helm"
	"github.com/albctl/albctl/internal/kube"
	"github.com/albctl/albctl/internal/platform/azure"
)

// Defaults for the controller install retry and the convergence poll.
const (
	DefaultInstallAttempts = 3
	DefaultInstallDelay    = 10 * time.Second
	DefaultPollIterations  = 20
	DefaultPollInterval    = 30 * time.Second
)

// Context wraps all dependencies and state needed for a deployment phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Azure    azure.Manager
	Observer Observer

	// Extractor pulls the load balancer resource ID out of status
	// conditions once the controller has converged.
	Extractor alb.IdentifierExtractor

	// Status overrides the condition source polled during convergence.
	// Left nil, conditions are read from the workload resource in the
	// cluster.
	Status StatusSource

	// NewKubeClient builds the cluster client once credentials exist.
	NewKubeClient func(kubeconfig []byte) (kube.Client, error)

	// NewInstaller builds the chart installer once credentials exist.
	NewInstaller func(kubeconfig []byte, namespace string) (helm.Installer, error)

	// InstallAttempts bounds the controller install retry.
	InstallAttempts int
	// InstallDelay is the fixed wait between install attempts.
	InstallDelay time.Duration
	// PollIterations bounds the convergence poll.
	PollIterations int
	// PollInterval is the fixed wait between convergence probes.
	PollInterval time.Duration
}

// NewContext creates a deployment context with production defaults.
func NewContext(ctx context.Context, cfg *config.Config, azureClient azure.Manager) *Context {
	return &Context{
		Context:   ctx,
		Config:    cfg,
		State:     NewState(),
		Azure:     azureClient,
		Observer:  NewConsoleObserver(),
		Extractor: alb.NewControllerIDExtractor(),
		NewKubeClient: func(kubeconfig []byte) (kube.Client, error) {
			return kube.NewFromKubeconfig(kubeconfig)
		},
		NewInstaller: func(kubeconfig []byte, namespace string) (helm.Installer, error) {
			return helm.NewClient(kubeconfig, namespace)
		},
		InstallAttempts: DefaultInstallAttempts,
		InstallDelay:    DefaultInstallDelay,
		PollIterations:  DefaultPollIterations,
		PollInterval:    DefaultPollInterval,
	}
}

// Warnf records a non-fatal degradation and keeps going. Warnings surface
// in the final report but never change the exit code.
func (c *Context) Warnf(phase, format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	c.State.Warnings = append(c.State.Warnings, message)
	c.Observer.Event(Event{
		Type:    EventWarning,
		Phase:   phase,
		Message: message,
	})
}
