package models

import (
	"time"
)

type ServiceRequestStatus string

const (
	ServiceRequestStatusPending    ServiceRequestStatus = "pending"
	ServiceRequestStatusAccepted   ServiceRequestStatus = "accepted"
	ServiceRequestStatusInProgress ServiceRequestStatus = "in_progress"
	ServiceRequestStatusCompleted  ServiceRequestStatus = "completed"
	ServiceRequestStatusCancelled  ServiceRequestStatus = "cancelled"
)

// IsTerminal reports whether no further mutation is accepted.
func (s ServiceRequestStatus) IsTerminal() bool {
	return s == ServiceRequestStatusCompleted || s == ServiceRequestStatusCancelled
}

func (s ServiceRequestStatus) IsValid() bool {
	switch s {
	case ServiceRequestStatusPending,
		ServiceRequestStatusAccepted,
		ServiceRequestStatusInProgress,
		ServiceRequestStatusCompleted,
		ServiceRequestStatusCancelled:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyUrgent   Urgency = "urgent"
	UrgencyNormal   Urgency = "normal"
	UrgencyFlexible Urgency = "flexible"
)

type ServiceRequest struct {
	RequestID   string                 `json:"request_id" bson:"request_id"`
	ClientID    string                 `json:"client_id" bson:"client_id"`
	ProviderID  *string                `json:"provider_id" bson:"provider_id"`
	CategoryID  string                 `json:"category_id" bson:"category_id"`
	Title       string                 `json:"title" bson:"title"`
	Description string                 `json:"description" bson:"description"`
	Urgency     Urgency                `json:"urgency" bson:"urgency"`
	Status      ServiceRequestStatus   `json:"status" bson:"status"`
	PriceAgreed *Amount                `json:"price_agreed" bson:"price_agreed"`
	Location    map[string]interface{} `json:"location,omitempty" bson:"location,omitempty"`
	PostalCode  string                 `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	CreatedAt   time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at" bson:"updated_at"`
	// Revision grows by one on every conditional write.
	Revision int64 `json:"revision" bson:"revision"`
}

// AssignedProvider returns the provider id or an empty string.
func (r *ServiceRequest) AssignedProvider() string {
	if r.ProviderID == nil {
		return ""
	}
	return *r.ProviderID
}

func (r *ServiceRequest) Clone() *ServiceRequest {
	clone := *r
	if r.ProviderID != nil {
		providerID := *r.ProviderID
		clone.ProviderID = &providerID
	}
	if r.PriceAgreed != nil {
		price := *r.PriceAgreed
		clone.PriceAgreed = &price
	}
	if r.Location != nil {
		clone.Location = make(map[string]interface{}, len(r.Location))
		for k, v := range r.Location {
			clone.Location[k] = v
		}
	}
	return &clone
}

// ServiceRequestPatch is the set of fields a conditional write replaces.
// Nil fields are left untouched.
type ServiceRequestPatch struct {
	Status      *ServiceRequestStatus
	ProviderID  *string
	PriceAgreed *Amount
	UpdatedAt   time.Time
}

// ServiceRequestCondition is the state a conditional write expects to find.
// Revision pins the exact version that was read, so any interleaved write
// makes the condition miss.
type ServiceRequestCondition struct {
	Revision   int64
	Status     ServiceRequestStatus
	ProviderID string
}

// ConditionFor captures the version of r that a write is based on.
func ConditionFor(r *ServiceRequest) ServiceRequestCondition {
	return ServiceRequestCondition{
		Revision:   r.Revision,
		Status:     r.Status,
		ProviderID: r.AssignedProvider(),
	}
}
