package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// roleAssignmentExistsCode is the service error code returned when a role
// assignment with the same principal, role, and scope already exists.
const roleAssignmentExistsCode = "RoleAssignmentExists"

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

// IsConflict checks if an error indicates a conflict occurred.
func IsConflict(err error) bool {
	return hasStatusCode(err, http.StatusConflict)
}

// IsForbidden checks if an error indicates missing permissions.
func IsForbidden(err error) bool {
	return hasStatusCode(err, http.StatusForbidden)
}

// IsRoleAssignmentExists checks if an error means the role assignment is
// already in place. The service reports this either as a 409 or with a
// dedicated error code.
func IsRoleAssignmentExists(err error) bool {
	if IsConflict(err) {
		return true
	}
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.ErrorCode == roleAssignmentExistsCode
	}
	return false
}

// hasStatusCode checks if the error is an ARM response error with one of
// the given HTTP status codes.
func hasStatusCode(err error, codes ...int) bool {
	if err == nil {
		return false
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		for _, code := range codes {
			if respErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}
