package handlers

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/albctl/albctl/internal/config"
	"github.com/albctl/albctl/internal/kube"
	"github.com/albctl/albctl/internal/platform/azure"
	"github.com/albctl/albctl/internal/provisioning"
)

func TestLoadConfig_EmptyPath_NoDefaultFile(t *testing.T) {
	saveAndRestoreFactories(t)

	findConfigFile = func() (string, error) {
		return "", errors.New("config file albctl.yaml not found")
	}

	_, err := loadConfig("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no config file found")
	assert.Contains(t, err.Error(), "albctl init")
}

func TestLoadConfig_EmptyPath_WithDefaultFile(t *testing.T) {
	saveAndRestoreFactories(t)

	findConfigFile = func() (string, error) {
		return "albctl.yaml", nil
	}
	loadConfigFile = func(path string) (*config.Config, error) {
		assert.Equal(t, "albctl.yaml", path)
		return testConfig(), nil
	}

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "rg-alb-demo", cfg.ResourceGroup)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	saveAndRestoreFactories(t)

	findConfigFile = func() (string, error) {
		t.Error("the default lookup must not run when a path is given")
		return "", nil
	}
	loadConfigFile = func(path string) (*config.Config, error) {
		assert.Equal(t, "production.yaml", path)
		return testConfig(), nil
	}

	_, err := loadConfig("production.yaml")
	require.NoError(t, err)
}

func TestLoadConfig_LoadError(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) {
		return nil, errors.New("yaml: line 3")
	}

	_, err := loadConfig("broken.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestApply_Success_NoTUI(t *testing.T) {
	saveAndRestoreFactories(t)

	var written map[string][]byte
	loadConfigFile = func(_ string) (*config.Config, error) { return testConfig(), nil }
	stdoutIsTTY = func() bool { return false }
	newAzureClient = func(subscriptionID string) (azure.Manager, error) {
		assert.Equal(t, "00000000-0000-0000-0000-000000000000", subscriptionID)
		return &azure.MockClient{}, nil
	}
	deployPhases = func() []provisioning.Phase {
		return []provisioning.Phase{stubPhase{name: "stub", run: func(pCtx *provisioning.Context) error {
			pCtx.State.Kubeconfig = []byte("apiVersion: v1")
			pCtx.State.Summary = &provisioning.Summary{ClusterName: "aks-alb-demo"}
			return nil
		}}}
	}
	writeFile = func(name string, data []byte, perm fs.FileMode) error {
		if written == nil {
			written = map[string][]byte{}
		}
		written[name] = data
		assert.Equal(t, fs.FileMode(0600), perm)
		return nil
	}

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "albctl.yaml", KubeconfigOut: "kubeconfig"})
	require.NoError(t, err)
	assert.Equal(t, []byte("apiVersion: v1"), written["kubeconfig"])
}

func TestApply_PipelineErrorIsFatal(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) { return testConfig(), nil }
	stdoutIsTTY = func() bool { return false }
	newAzureClient = func(_ string) (azure.Manager, error) { return &azure.MockClient{}, nil }
	deployPhases = func() []provisioning.Phase {
		return []provisioning.Phase{stubPhase{name: "stub", run: func(_ *provisioning.Context) error {
			return errors.New("quota exceeded")
		}}}
	}
	writeFile = func(_ string, _ []byte, _ fs.FileMode) error {
		t.Error("nothing must be written after a fatal error")
		return nil
	}

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "albctl.yaml", KubeconfigOut: "kubeconfig"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestApply_WarningsStillSucceed(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) { return testConfig(), nil }
	stdoutIsTTY = func() bool { return false }
	newAzureClient = func(_ string) (azure.Manager, error) { return &azure.MockClient{}, nil }
	deployPhases = func() []provisioning.Phase {
		return []provisioning.Phase{stubPhase{name: "stub", run: func(pCtx *provisioning.Context) error {
			pCtx.Warnf("stub", "the load balancer did not report its resource ID")
			return nil
		}}}
	}

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "albctl.yaml"})
	assert.NoError(t, err, "warnings degrade the run, they do not fail it")
}

func TestApply_UsesTUIOnTerminal(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) { return testConfig(), nil }
	stdoutIsTTY = func() bool { return true }
	newAzureClient = func(_ string) (azure.Manager, error) { return &azure.MockClient{}, nil }
	deployPhases = func() []provisioning.Phase {
		return []provisioning.Phase{stubPhase{name: "stub", run: func(_ *provisioning.Context) error { return nil }}}
	}

	tuiRuns := 0
	runDeployTUI = func(resourceGroup, location string, deployFn func(ch chan<- tea.Msg) error) error {
		tuiRuns++
		assert.Equal(t, "rg-alb-demo", resourceGroup)
		assert.Equal(t, "eastus", location)
		ch := make(chan tea.Msg, 64)
		defer close(ch)
		return deployFn(ch)
	}

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "albctl.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 1, tuiRuns)
}

func TestApply_NoTUIFlagForcesPlainOutput(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) { return testConfig(), nil }
	stdoutIsTTY = func() bool { return true }
	newAzureClient = func(_ string) (azure.Manager, error) { return &azure.MockClient{}, nil }
	deployPhases = func() []provisioning.Phase {
		return []provisioning.Phase{stubPhase{name: "stub", run: func(_ *provisioning.Context) error { return nil }}}
	}
	runDeployTUI = func(_, _ string, _ func(ch chan<- tea.Msg) error) error {
		t.Error("the TUI must not start with --no-tui")
		return nil
	}

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "albctl.yaml", NoTUI: true})
	require.NoError(t, err)
}

func TestApply_ResourceGroupOverride(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) { return testConfig(), nil }
	stdoutIsTTY = func() bool { return false }
	newAzureClient = func(_ string) (azure.Manager, error) { return &azure.MockClient{}, nil }

	var seen string
	newDeployContext = func(ctx context.Context, cfg *config.Config, client azure.Manager) *provisioning.Context {
		seen = cfg.ResourceGroup
		return provisioning.NewContext(ctx, cfg, client)
	}
	deployPhases = func() []provisioning.Phase {
		return []provisioning.Phase{stubPhase{name: "stub", run: func(_ *provisioning.Context) error { return nil }}}
	}

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "albctl.yaml", ResourceGroup: "rg-other"})
	require.NoError(t, err)
	assert.Equal(t, "rg-other", seen)
}

func TestApply_ResourceGroupOverrideInvalid(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) { return testConfig(), nil }
	newAzureClient = func(_ string) (azure.Manager, error) {
		t.Error("no client should be built for an invalid override")
		return nil, nil
	}

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "albctl.yaml", ResourceGroup: "not a valid group!"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid resource group override")
}

func TestApply_AzureClientError(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) { return testConfig(), nil }
	newAzureClient = func(_ string) (azure.Manager, error) {
		return nil, errors.New("no subscription ID configured")
	}

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "albctl.yaml"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create Azure client")
}

func TestApply_KubeconfigWriteError(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) { return testConfig(), nil }
	stdoutIsTTY = func() bool { return false }
	newAzureClient = func(_ string) (azure.Manager, error) { return &azure.MockClient{}, nil }
	deployPhases = func() []provisioning.Phase {
		return []provisioning.Phase{stubPhase{name: "stub", run: func(pCtx *provisioning.Context) error {
			pCtx.State.Kubeconfig = []byte("apiVersion: v1")
			return nil
		}}}
	}
	writeFile = func(_ string, _ []byte, _ fs.FileMode) error {
		return errors.New("read-only file system")
	}

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "albctl.yaml", KubeconfigOut: "kubeconfig"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write kubeconfig")
}

func TestWriteKubeconfig_SkipsWhenDisabled(t *testing.T) {
	saveAndRestoreFactories(t)

	writeFile = func(_ string, _ []byte, _ fs.FileMode) error {
		t.Error("nothing must be written when the path is empty")
		return nil
	}

	state := provisioning.NewState()
	state.Kubeconfig = []byte("apiVersion: v1")
	require.NoError(t, writeKubeconfig(state, ""))
}

// testConfig returns a deployable configuration with defaults applied.
func testConfig() *config.Config {
	cfg := &config.Config{
		SubscriptionID: "00000000-0000-0000-0000-000000000000",
		ResourceGroup:  "rg-alb-demo",
		Location:       "eastus",
	}
	cfg.ApplyDefaults()
	return cfg
}

// stubPhase is a minimal pipeline phase driven by a closure.
type stubPhase struct {
	name string
	run  func(*provisioning.Context) error
}

func (p stubPhase) Name() string                              { return p.name }
func (p stubPhase) Provision(ctx *provisioning.Context) error { return p.run(ctx) }

// stubKube is a kube.Client stand-in with overridable behavior. The zero
// value answers every call with an empty result.
type stubKube struct {
	GetResourceFunc    func(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string) (*unstructured.Unstructured, error)
	PodSummariesFunc   func(ctx context.Context, namespace string) ([]kube.PodSummary, error)
	GatewayAddressFunc func(ctx context.Context, namespace, name string) (string, error)
}

var _ kube.Client = (*stubKube)(nil)

func (s *stubKube) EnsureNamespace(_ context.Context, _ string) (bool, error) { return false, nil }

func (s *stubKube) ApplyManifests(_ context.Context, _ []byte, _ string) error { return nil }

func (s *stubKube) RefreshDiscovery(_ context.Context) error { return nil }

func (s *stubKube) GetResource(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string) (*unstructured.Unstructured, error) {
	if s.GetResourceFunc != nil {
		return s.GetResourceFunc(ctx, gvr, namespace, name)
	}
	return &unstructured.Unstructured{Object: map[string]interface{}{}}, nil
}

func (s *stubKube) Annotate(_ context.Context, _ schema.GroupVersionResource, _, _ string, _ map[string]string) error {
	return nil
}

func (s *stubKube) PodSummaries(ctx context.Context, namespace string) ([]kube.PodSummary, error) {
	if s.PodSummariesFunc != nil {
		return s.PodSummariesFunc(ctx, namespace)
	}
	return nil, nil
}

func (s *stubKube) GatewayAddress(ctx context.Context, namespace, name string) (string, error) {
	if s.GatewayAddressFunc != nil {
		return s.GatewayAddressFunc(ctx, namespace, name)
	}
	return "", nil
}

// saveAndRestoreFactories snapshots every factory variable in the package
// and restores them when the test finishes.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origNewAzureClient := newAzureClient
	origNewDeployContext := newDeployContext
	origDeployPhases := deployPhases
	origLoadConfigFile := loadConfigFile
	origFindConfigFile := findConfigFile
	origWriteFile := writeFile
	origRunDeployTUI := runDeployTUI
	origStdoutIsTTY := stdoutIsTTY
	origConfirmDestroy := confirmDestroy
	origFileExists := fileExists
	origRunWizard := runWizard
	origSaveConfig := saveConfig

	t.Cleanup(func() {
		newAzureClient = origNewAzureClient
		newDeployContext = origNewDeployContext
		deployPhases = origDeployPhases
		loadConfigFile = origLoadConfigFile
		findConfigFile = origFindConfigFile
		writeFile = origWriteFile
		runDeployTUI = origRunDeployTUI
		stdoutIsTTY = origStdoutIsTTY
		confirmDestroy = origConfirmDestroy
		fileExists = origFileExists
		runWizard = origRunWizard
		saveConfig = origSaveConfig
	})
}
