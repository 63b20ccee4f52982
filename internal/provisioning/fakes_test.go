package provisioning

import (
	"context"
	"time"

	"helm.sh/helm/v3/pkg/release"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/albctl/albctl/internal/alb"
	"github.com/albctl/albctl/internal/config"
	"github.com/albctl/albctl/internal/helm"
	"github.com/albctl/albctl/internal/kube"
	"github.com/albctl/albctl/internal/platform/azure"
)

// testControllerID is a syntactically valid traffic controller resource ID
// shared by the phase tests.
const testControllerID = "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg-alb-demo/providers/Microsoft.ServiceNetworking/trafficControllers/alb-demo"

// fakeKubeClient implements kube.Client with overridable behavior per
// method. Unset methods succeed with benign defaults.
type fakeKubeClient struct {
	EnsureNamespaceFunc func(ctx context.Context, name string) (bool, error)
	ApplyManifestsFunc  func(ctx context.Context, manifests []byte, fieldManager string) error
	RefreshFunc         func(ctx context.Context) error
	GetResourceFunc     func(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string) (*unstructured.Unstructured, error)
	AnnotateFunc        func(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string, annotations map[string]string) error
	PodSummariesFunc    func(ctx context.Context, namespace string) ([]kube.PodSummary, error)
	GatewayAddressFunc  func(ctx context.Context, namespace, name string) (string, error)
}

var _ kube.Client = (*fakeKubeClient)(nil)

func (f *fakeKubeClient) EnsureNamespace(ctx context.Context, name string) (bool, error) {
	if f.EnsureNamespaceFunc != nil {
		return f.EnsureNamespaceFunc(ctx, name)
	}
	return true, nil
}

func (f *fakeKubeClient) ApplyManifests(ctx context.Context, manifests []byte, fieldManager string) error {
	if f.ApplyManifestsFunc != nil {
		return f.ApplyManifestsFunc(ctx, manifests, fieldManager)
	}
	return nil
}

func (f *fakeKubeClient) RefreshDiscovery(ctx context.Context) error {
	if f.RefreshFunc != nil {
		return f.RefreshFunc(ctx)
	}
	return nil
}

func (f *fakeKubeClient) GetResource(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string) (*unstructured.Unstructured, error) {
	if f.GetResourceFunc != nil {
		return f.GetResourceFunc(ctx, gvr, namespace, name)
	}
	return &unstructured.Unstructured{Object: map[string]interface{}{}}, nil
}

func (f *fakeKubeClient) Annotate(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string, annotations map[string]string) error {
	if f.AnnotateFunc != nil {
		return f.AnnotateFunc(ctx, gvr, namespace, name, annotations)
	}
	return nil
}

func (f *fakeKubeClient) PodSummaries(ctx context.Context, namespace string) ([]kube.PodSummary, error) {
	if f.PodSummariesFunc != nil {
		return f.PodSummariesFunc(ctx, namespace)
	}
	return nil, nil
}

func (f *fakeKubeClient) GatewayAddress(ctx context.Context, namespace, name string) (string, error) {
	if f.GatewayAddressFunc != nil {
		return f.GatewayAddressFunc(ctx, namespace, name)
	}
	return "", nil
}

// fakeInstaller implements helm.Installer and counts install calls.
type fakeInstaller struct {
	InstallOrUpgradeFunc func(ctx context.Context, spec helm.ChartSpec, values helm.Values) (*release.Release, error)

	installs   int
	lastSpec   helm.ChartSpec
	lastValues helm.Values
}

var _ helm.Installer = (*fakeInstaller)(nil)

func (f *fakeInstaller) InstallOrUpgrade(ctx context.Context, spec helm.ChartSpec, values helm.Values) (*release.Release, error) {
	f.installs++
	f.lastSpec = spec
	f.lastValues = values
	if f.InstallOrUpgradeFunc != nil {
		return f.InstallOrUpgradeFunc(ctx, spec, values)
	}
	return &release.Release{Name: spec.Release}, nil
}

func (f *fakeInstaller) ReleaseExists(string) (bool, error) { return false, nil }

func (f *fakeInstaller) Uninstall(string) error { return nil }

// scriptedStatus plays back canned condition lists in call order. The last
// step repeats once the script runs out; an empty script yields no
// conditions forever.
type scriptedStatus struct {
	steps []statusStep
	calls int
}

type statusStep struct {
	conditions []alb.Condition
	err        error
}

func (s *scriptedStatus) Conditions(context.Context) ([]alb.Condition, error) {
	defer func() { s.calls++ }()
	if len(s.steps) == 0 {
		return nil, nil
	}
	step := s.steps[len(s.steps)-1]
	if s.calls < len(s.steps) {
		step = s.steps[s.calls]
	}
	return step.conditions, step.err
}

// testContext builds a Context wired with fakes, a recording observer and
// delays short enough for tests.
func testContext() (*Context, *MockObserver) {
	cfg := &config.Config{
		SubscriptionID: "00000000-0000-0000-0000-000000000000",
		ResourceGroup:  "rg-alb-demo",
		Location:       "eastus",
	}
	cfg.ApplyDefaults()

	observer := NewMockObserver()
	ctx := NewContext(context.Background(), cfg, &azure.MockClient{})
	ctx.Observer = observer
	ctx.InstallDelay = time.Millisecond
	ctx.PollInterval = time.Millisecond
	return ctx, observer
}
