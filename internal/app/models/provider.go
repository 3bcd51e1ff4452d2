package models

import "time"

type ProviderAvailability string

const (
	ProviderAvailable ProviderAvailability = "available"
	ProviderBusy      ProviderAvailability = "busy"
	ProviderOffline   ProviderAvailability = "offline"
)

// ProviderProfile is the marketplace listing of a user with the provider
// role. A user has at most one.
type ProviderProfile struct {
	ProviderID   string                   `json:"provider_id" bson:"provider_id"`
	UserID       string                   `json:"user_id" bson:"user_id"`
	Bio          string                   `json:"bio" bson:"bio"`
	Categories   []string                 `json:"categories" bson:"categories"`
	Services     []map[string]interface{} `json:"services" bson:"services"`
	Availability ProviderAvailability     `json:"availability" bson:"availability"`
	ResponseTime string                   `json:"response_time" bson:"response_time"`
	Rating       float64                  `json:"rating" bson:"rating"`
	TotalReviews int                      `json:"total_reviews" bson:"total_reviews"`
	Verified     bool                     `json:"verified" bson:"verified"`
	Location     map[string]interface{}   `json:"location,omitempty" bson:"location,omitempty"`
	PostalCode   string                   `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	CreatedAt    time.Time                `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at" bson:"updated_at"`
}

// ProviderFilter narrows a provider search. Empty fields match everything;
// offline providers are never listed.
type ProviderFilter struct {
	CategoryID string
	PostalCode string
}

func (p *ProviderProfile) Matches(filter ProviderFilter) bool {
	if p.Availability == ProviderOffline {
		return false
	}
	if filter.PostalCode != "" && p.PostalCode != filter.PostalCode {
		return false
	}
	if filter.CategoryID == "" {
		return true
	}
	for _, category := range p.Categories {
		if category == filter.CategoryID {
			return true
		}
	}
	return false
}
