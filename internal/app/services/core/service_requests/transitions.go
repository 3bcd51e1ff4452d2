package serviceRequests

import (
	"fmt"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
)

// allowedTransitions lists the caller-initiated edges of the request
// lifecycle. Payment-driven completion is handled separately.
var allowedTransitions = map[models.ServiceRequestStatus][]models.ServiceRequestStatus{
	models.ServiceRequestStatusPending: {
		models.ServiceRequestStatusAccepted,
		models.ServiceRequestStatusCancelled,
	},
	models.ServiceRequestStatusAccepted: {
		models.ServiceRequestStatusInProgress,
		models.ServiceRequestStatusCancelled,
	},
	models.ServiceRequestStatusInProgress: {
		models.ServiceRequestStatusCompleted,
		models.ServiceRequestStatusCancelled,
	},
}

// checkTransition returns an empty reason when from -> to is allowed for a
// request whose provider (after the update) is providerID.
func checkTransition(from, to models.ServiceRequestStatus, providerID string) string {
	if from.IsTerminal() {
		return fmt.Sprintf(constvars.ErrDevTransitionTerminal, from)
	}

	allowed := false
	for _, next := range allowedTransitions[from] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Sprintf(constvars.ErrDevTransitionNotAllowed, from, to)
	}

	if to == models.ServiceRequestStatusAccepted && providerID == "" {
		return constvars.ErrDevProviderRequired
	}
	return ""
}
