package helm

import (
	"context"
	"fmt"
	"io"
	"time"

	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/registry"
	"helm.sh/helm/v3/pkg/release"
)

// installTimeout bounds a single install or upgrade, including the wait for
// the controller workloads to become ready.
const installTimeout = 10 * time.Minute

// Installer abstracts chart installation so the deployment flow can be
// tested without a registry or a cluster.
type Installer interface {
	// InstallOrUpgrade installs the chart or upgrades the release if it
	// already exists.
	InstallOrUpgrade(ctx context.Context, spec ChartSpec, values Values) (*release.Release, error)

	// ReleaseExists reports whether a release with the given name exists.
	ReleaseExists(releaseName string) (bool, error)

	// Uninstall removes a release.
	Uninstall(releaseName string) error
}

// Client provides Helm operations using in-memory kubeconfig.
type Client struct {
	namespace      string
	actionConfig   *action.Configuration
	registryClient *registry.Client
}

// NewClient creates a Helm client from kubeconfig bytes. Releases are
// managed in the given namespace.
func NewClient(kubeconfig []byte, namespace string) (*Client, error) {
	actionConfig := new(action.Configuration)
	restGetter := NewInMemoryRESTClientGetter(kubeconfig, namespace)

	// Initialize with a no-op logger (suppress debug output)
	if err := actionConfig.Init(restGetter, namespace, "secret", func(format string, v ...interface{}) {}); err != nil {
		return nil, fmt.Errorf("failed to initialize helm action config: %w", err)
	}

	// The controller chart is distributed through an OCI registry.
	registryClient, err := registry.NewClient(
		registry.ClientOptDebug(false),
		registry.ClientOptWriter(io.Discard),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry client: %w", err)
	}
	actionConfig.RegistryClient = registryClient

	return &Client{
		namespace:      namespace,
		actionConfig:   actionConfig,
		registryClient: registryClient,
	}, nil
}

// InstallOrUpgrade installs a chart or upgrades if already installed.
func (c *Client) InstallOrUpgrade(ctx context.Context, spec ChartSpec, values Values) (*release.Release, error) {
	histClient := action.NewHistory(c.actionConfig)
	histClient.Max = 1
	_, err := histClient.Run(spec.Release)

	if err != nil {
		// Release doesn't exist, install
		return c.install(ctx, spec, values)
	}
	// Release exists, upgrade
	return c.upgrade(ctx, spec, values)
}

func (c *Client) install(ctx context.Context, spec ChartSpec, values Values) (*release.Release, error) {
	installClient := action.NewInstall(c.actionConfig)
	installClient.ReleaseName = spec.Release
	installClient.Namespace = c.namespace
	installClient.CreateNamespace = true
	installClient.Version = spec.Version
	installClient.Wait = true
	installClient.Timeout = installTimeout
	installClient.SetRegistryClient(c.registryClient)

	chrt, err := c.loadChart(&installClient.ChartPathOptions, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}

	return installClient.RunWithContext(ctx, chrt, values)
}

func (c *Client) upgrade(ctx context.Context, spec ChartSpec, values Values) (*release.Release, error) {
	upgradeClient := action.NewUpgrade(c.actionConfig)
	upgradeClient.Namespace = c.namespace
	upgradeClient.Version = spec.Version
	upgradeClient.Wait = true
	upgradeClient.Timeout = installTimeout
	upgradeClient.ReuseValues = false // Use new values
	upgradeClient.SetRegistryClient(c.registryClient)

	chrt, err := c.loadChart(&upgradeClient.ChartPathOptions, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}

	return upgradeClient.RunWithContext(ctx, spec.Release, chrt, values)
}

// loadChart resolves the chart reference through the action's path options.
// OCI references, repository URLs and local paths are all handled there.
func (c *Client) loadChart(cpo *action.ChartPathOptions, spec ChartSpec) (*chart.Chart, error) {
	settings := cli.New()
	cpo.Version = spec.Version

	chartPath, err := cpo.LocateChart(spec.Reference, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to locate chart %s: %w", spec.Reference, err)
	}

	return loader.Load(chartPath)
}

// Uninstall removes a Helm release.
func (c *Client) Uninstall(releaseName string) error {
	uninstallClient := action.NewUninstall(c.actionConfig)
	uninstallClient.Wait = true
	uninstallClient.Timeout = 5 * time.Minute

	_, err := uninstallClient.Run(releaseName)
	return err
}

// ReleaseExists checks if a release exists.
func (c *Client) ReleaseExists(releaseName string) (bool, error) {
	histClient := action.NewHistory(c.actionConfig)
	histClient.Max = 1
	_, err := histClient.Run(releaseName)
	if err != nil {
		return false, nil
	}
	return true, nil
}
