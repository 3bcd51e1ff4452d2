// Package access decides whether a user may read or act on a service
// request. It holds no state and performs no I/O.
package access

import "helpmynew-service/internal/app/models"

type Decision string

const (
	DecisionClientMatch   Decision = "client_match"
	DecisionProviderMatch Decision = "provider_match"
	DecisionAdminOverride Decision = "admin_override"
	DecisionDenied        Decision = "denied"
)

// CanAccess grants access to the request's client, its assigned provider
// and any admin.
func CanAccess(user *models.User, request *models.ServiceRequest) Decision {
	if user == nil || request == nil || user.UserID == "" {
		return DecisionDenied
	}
	if request.ClientID == user.UserID {
		return DecisionClientMatch
	}
	if providerID := request.AssignedProvider(); providerID != "" && providerID == user.UserID {
		return DecisionProviderMatch
	}
	if user.IsAdmin() {
		return DecisionAdminOverride
	}
	return DecisionDenied
}

func Allowed(user *models.User, request *models.ServiceRequest) bool {
	return CanAccess(user, request) != DecisionDenied
}

// IsClientOrAdmin is the narrower check used before opening a checkout.
func IsClientOrAdmin(user *models.User, request *models.ServiceRequest) bool {
	decision := CanAccess(user, request)
	return decision == DecisionClientMatch || decision == DecisionAdminOverride
}
