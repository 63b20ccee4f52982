// Package config defines the albctl.yaml configuration surface: the Azure
// target (subscription, resource group, location), the infrastructure
// deployment, the controller chart, and the workload manifests.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// subscriptionIDRegex matches an Azure subscription GUID.
var subscriptionIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// resourceGroupRegex matches valid Azure resource group names.
var resourceGroupRegex = regexp.MustCompile(`^[-\w._()]+$`)

// locationRegex matches Azure region short names (eastus, westeurope, ...).
var locationRegex = regexp.MustCompile(`^[a-z][a-z0-9]+$`)

// Defaults applied by ApplyDefaults when the config omits a field.
const (
	DefaultDeploymentName      = "alb-infra"
	DefaultControllerChart     = "oci://mcr.microsoft.com/application-lb/charts/alb-controller"
	DefaultControllerVersion   = "1.7.9"
	DefaultControllerNamespace = "azure-alb-system"
	DefaultControllerRelease   = "alb-controller"
	DefaultWorkloadNamespace   = "alb-infra"
	DefaultWorkloadName        = "alb-test"
	DefaultWorkloadGateway     = "gateway-01"

	// DefaultRoleDefinition is the "AppGw for Containers Configuration
	// Manager" built-in role.
	DefaultRoleDefinition = "fbc52c3f-28ad-4303-a892-8a056630b8f1"
)

// subscriptionEnvVar supplies the subscription ID when the config omits it.
const subscriptionEnvVar = "AZURE_SUBSCRIPTION_ID"

// Config is the albctl deployment configuration.
type Config struct {
	// SubscriptionID is the Azure subscription GUID. Falls back to the
	// AZURE_SUBSCRIPTION_ID environment variable when empty.
	SubscriptionID string `yaml:"subscription_id,omitempty"`

	// ResourceGroup is the Azure resource group everything is deployed
	// into. Created when missing.
	ResourceGroup string `yaml:"resource_group"`

	// Location is the Azure region short name, e.g. eastus.
	Location string `yaml:"location"`

	// Deployment configures the ARM template deployment.
	Deployment DeploymentSpec `yaml:"deployment,omitempty"`

	// Controller configures the alb-controller Helm installation.
	Controller ControllerSpec `yaml:"controller,omitempty"`

	// Workload configures the sample workload manifests.
	Workload WorkloadSpec `yaml:"workload,omitempty"`

	// Authorization configures the post-convergence role assignment.
	Authorization AuthorizationSpec `yaml:"authorization,omitempty"`
}

// DeploymentSpec configures the ARM template deployment.
type DeploymentSpec struct {
	// Name is the logical deployment name inside the resource group.
	// Outputs are looked up by this name first; when that lookup comes
	// back empty the most recent deployment in the group is used instead.
	Name string `yaml:"name,omitempty"`

	// Template is a path to an ARM template JSON document. Empty selects
	// the embedded template.
	Template string `yaml:"template,omitempty"`

	// Parameters is a path to an ARM parameters JSON document. Empty
	// selects the embedded defaults.
	Parameters string `yaml:"parameters,omitempty"`
}

// ControllerSpec configures the alb-controller Helm installation.
type ControllerSpec struct {
	// Chart is an OCI reference or an HTTP chart repository URL.
	Chart string `yaml:"chart,omitempty"`

	// Version pins the chart version.
	Version string `yaml:"version,omitempty"`

	// Namespace is where the controller is installed.
	Namespace string `yaml:"namespace,omitempty"`

	// Release is the Helm release name.
	Release string `yaml:"release,omitempty"`
}

// WorkloadSpec configures the workload manifests.
type WorkloadSpec struct {
	// Namespace receives the workload manifests.
	Namespace string `yaml:"namespace,omitempty"`

	// Manifest is a path to a multi-document YAML file. Empty selects the
	// embedded sample application. The document must carry the subnet
	// placeholder token.
	Manifest string `yaml:"manifest,omitempty"`

	// Name is the ApplicationLoadBalancer resource name polled for
	// convergence and annotated afterwards.
	Name string `yaml:"name,omitempty"`

	// Gateway is the Gateway API resource whose address the summary
	// reports.
	Gateway string `yaml:"gateway,omitempty"`
}

// AuthorizationSpec configures the post-convergence role assignment.
type AuthorizationSpec struct {
	// RoleDefinition is a role definition GUID or a fully qualified role
	// definition resource ID.
	RoleDefinition string `yaml:"role_definition,omitempty"`
}

// ApplyDefaults fills unset fields with their defaults and resolves the
// subscription ID from the environment.
func (c *Config) ApplyDefaults() {
	if c.SubscriptionID == "" {
		c.SubscriptionID = os.Getenv(subscriptionEnvVar)
	}
	if c.Deployment.Name == "" {
		c.Deployment.Name = DefaultDeploymentName
	}
	if c.Controller.Chart == "" {
		c.Controller.Chart = DefaultControllerChart
	}
	if c.Controller.Version == "" {
		c.Controller.Version = DefaultControllerVersion
	}
	if c.Controller.Namespace == "" {
		c.Controller.Namespace = DefaultControllerNamespace
	}
	if c.Controller.Release == "" {
		c.Controller.Release = DefaultControllerRelease
	}
	if c.Workload.Namespace == "" {
		c.Workload.Namespace = DefaultWorkloadNamespace
	}
	if c.Workload.Name == "" {
		c.Workload.Name = DefaultWorkloadName
	}
	if c.Workload.Gateway == "" {
		c.Workload.Gateway = DefaultWorkloadGateway
	}
	if c.Authorization.RoleDefinition == "" {
		c.Authorization.RoleDefinition = DefaultRoleDefinition
	}
}

// Validate checks the configuration for errors. Call ApplyDefaults first;
// Validate does not fill anything in.
func (c *Config) Validate() error {
	var errs []error

	if c.SubscriptionID == "" {
		errs = append(errs, fmt.Errorf("subscription_id is required (or set %s)", subscriptionEnvVar))
	} else if !subscriptionIDRegex.MatchString(c.SubscriptionID) {
		errs = append(errs, fmt.Errorf("subscription_id %q is not a GUID", c.SubscriptionID))
	}

	if c.ResourceGroup == "" {
		errs = append(errs, errors.New("resource_group is required"))
	} else if len(c.ResourceGroup) > 90 || !resourceGroupRegex.MatchString(c.ResourceGroup) {
		errs = append(errs, fmt.Errorf("resource_group %q is not a valid Azure resource group name", c.ResourceGroup))
	}

	if c.Location == "" {
		errs = append(errs, errors.New("location is required"))
	} else if !locationRegex.MatchString(c.Location) {
		errs = append(errs, fmt.Errorf("location %q is not an Azure region short name", c.Location))
	}

	if c.Controller.Version == "" {
		errs = append(errs, errors.New("controller.version is required"))
	}
	if c.Controller.Namespace == "" {
		errs = append(errs, errors.New("controller.namespace is required"))
	}
	if c.Workload.Namespace == "" {
		errs = append(errs, errors.New("workload.namespace is required"))
	}

	return errors.Join(errs...)
}
