package alb

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

// ControllerID is a parsed traffic controller ARM resource ID.
type ControllerID struct {
	// Raw is the full resource ID as extracted from the condition message.
	Raw string
	// SubscriptionID, ResourceGroup and Name are the parsed components.
	SubscriptionID string
	ResourceGroup  string
	Name           string
}

// ParseControllerID parses a traffic controller resource ID of the form
// /subscriptions/<sub>/resourceGroups/<rg>/providers/Microsoft.ServiceNetworking/trafficControllers/<name>.
func ParseControllerID(id string) (ControllerID, error) {
	parsed, err := arm.ParseResourceID(id)
	if err != nil {
		return ControllerID{}, fmt.Errorf("invalid traffic controller ID %q: %w", id, err)
	}

	return ControllerID{
		Raw:            id,
		SubscriptionID: parsed.SubscriptionID,
		ResourceGroup:  parsed.ResourceGroupName,
		Name:           parsed.Name,
	}, nil
}
