package azure

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v3"
	"github.com/google/uuid"
)

// EnsureRoleAssignment grants roleDefinition to principalID at scope.
// The assignment name must be a GUID and must be fresh on every create
// attempt; the service deduplicates by (principal, role, scope) and
// reports an existing grant as RoleAssignmentExists, which this method
// maps to (false, nil).
func (c *RealClient) EnsureRoleAssignment(ctx context.Context, scope, roleDefinition, principalID string) (bool, error) {
	parameters := armauthorization.RoleAssignmentCreateParameters{
		Properties: &armauthorization.RoleAssignmentProperties{
			PrincipalID:      to.Ptr(principalID),
			PrincipalType:    to.Ptr(armauthorization.PrincipalTypeServicePrincipal),
			RoleDefinitionID: to.Ptr(c.roleDefinitionID(roleDefinition)),
		},
	}

	_, err := c.roleAssignments.Create(ctx, scope, uuid.NewString(), parameters, nil)
	if err != nil {
		if IsRoleAssignmentExists(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create role assignment at %q: %w", scope, err)
	}
	return true, nil
}

// roleDefinitionID qualifies a bare role definition GUID with the
// subscription path. Fully qualified IDs pass through unchanged.
func (c *RealClient) roleDefinitionID(roleDefinition string) string {
	if strings.HasPrefix(roleDefinition, "/") {
		return roleDefinition
	}
	return fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Authorization/roleDefinitions/%s", c.subscriptionID, roleDefinition)
}
