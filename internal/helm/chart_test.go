package helm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/albctl/albctl/internal/config"
)

func TestSpecFromConfig(t *testing.T) {
	t.Parallel()
	spec := SpecFromConfig(config.ControllerSpec{
		Chart:   "oci://mcr.microsoft.com/application-lb/charts/alb-controller",
		Version: "1.7.9",
		Release: "alb-controller",
	})

	assert.Equal(t, "oci://mcr.microsoft.com/application-lb/charts/alb-controller", spec.Reference)
	assert.Equal(t, "1.7.9", spec.Version)
	assert.Equal(t, "alb-controller", spec.Release)
}

func TestSpecFromConfig_Defaults(t *testing.T) {
	t.Parallel()
	var cfg config.Config
	cfg.ApplyDefaults()

	spec := SpecFromConfig(cfg.Controller)

	assert.Equal(t, config.DefaultControllerChart, spec.Reference)
	assert.Equal(t, config.DefaultControllerVersion, spec.Version)
	assert.Equal(t, config.DefaultControllerRelease, spec.Release)
}
