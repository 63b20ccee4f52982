package alb

import "regexp"

// The controller reports the provisioned traffic controller's ARM resource
// ID inside a free-text condition message. That message format is an
// external contract owned by the controller and may change between
// versions, so the matching strategy lives behind IdentifierExtractor
// rather than inline in the orchestration code.

// DeploymentConditionType is the condition the controller uses to report
// provisioning progress of the Azure-side resource.
const DeploymentConditionType = "Deployment"

// controllerIDPrefix marks the resource ID inside the condition message,
// e.g. "alb-id=/subscriptions/.../trafficControllers/alb-x".
const controllerIDPrefix = "alb-id="

// IdentifierExtractor derives the traffic controller resource ID from a
// condition list. The second return is false when no identifier is present.
type IdentifierExtractor interface {
	Extract(conditions []Condition) (string, bool)
}

// PrefixExtractor extracts a whitespace-delimited token following a fixed
// prefix from the message of conditions with a matching type.
type PrefixExtractor struct {
	ConditionType string
	pattern       *regexp.Regexp
}

// NewPrefixExtractor builds an extractor for the given condition type and
// message prefix.
func NewPrefixExtractor(conditionType, prefix string) *PrefixExtractor {
	return &PrefixExtractor{
		ConditionType: conditionType,
		pattern:       regexp.MustCompile(regexp.QuoteMeta(prefix) + `(\S+)`),
	}
}

// NewControllerIDExtractor returns the extractor for the current controller
// message format.
func NewControllerIDExtractor() *PrefixExtractor {
	return NewPrefixExtractor(DeploymentConditionType, controllerIDPrefix)
}

// Extract scans conditions of the configured type and returns the first
// identifier found. Conditions of other types are ignored entirely; a
// matching type with no identifier in its message does not stop the scan.
func (e *PrefixExtractor) Extract(conditions []Condition) (string, bool) {
	for _, c := range conditions {
		if c.Type != e.ConditionType {
			continue
		}
		if m := e.pattern.FindStringSubmatch(c.Message); m != nil {
			return m[1], true
		}
	}
	return "", false
}
