package serviceRequests

import (
	"testing"

	"helpmynew-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestCheckTransition(t *testing.T) {
	statuses := []models.ServiceRequestStatus{
		models.ServiceRequestStatusPending,
		models.ServiceRequestStatusAccepted,
		models.ServiceRequestStatusInProgress,
		models.ServiceRequestStatusCompleted,
		models.ServiceRequestStatusCancelled,
	}

	allowed := map[[2]models.ServiceRequestStatus]bool{
		{models.ServiceRequestStatusPending, models.ServiceRequestStatusAccepted}:     true,
		{models.ServiceRequestStatusPending, models.ServiceRequestStatusCancelled}:    true,
		{models.ServiceRequestStatusAccepted, models.ServiceRequestStatusInProgress}:  true,
		{models.ServiceRequestStatusAccepted, models.ServiceRequestStatusCancelled}:   true,
		{models.ServiceRequestStatusInProgress, models.ServiceRequestStatusCompleted}: true,
		{models.ServiceRequestStatusInProgress, models.ServiceRequestStatusCancelled}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			reason := checkTransition(from, to, "user_provider")
			if allowed[[2]models.ServiceRequestStatus{from, to}] {
				assert.Empty(t, reason, "%s -> %s should be allowed", from, to)
			} else {
				assert.NotEmpty(t, reason, "%s -> %s should be rejected", from, to)
			}
		}
	}
}

func TestCheckTransitionRequiresProviderToAccept(t *testing.T) {
	reason := checkTransition(models.ServiceRequestStatusPending, models.ServiceRequestStatusAccepted, "")
	assert.NotEmpty(t, reason)
}
