package helm

import "github.com/albctl/albctl/internal/config"

// ChartSpec identifies a chart to install and the release it becomes.
type ChartSpec struct {
	// Reference is an OCI reference, a chart repository URL or a local
	// path, as accepted by helm itself.
	Reference string

	// Version pins the chart version.
	Version string

	// Release is the Helm release name.
	Release string
}

// SpecFromConfig builds the controller chart spec from the configuration.
func SpecFromConfig(cfg config.ControllerSpec) ChartSpec {
	return ChartSpec{
		Reference: cfg.Chart,
		Version:   cfg.Version,
		Release:   cfg.Release,
	}
}
