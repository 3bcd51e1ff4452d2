package responses

import "helpmynew-service/internal/app/models"

// Provider is a profile enriched with the owning user's public fields.
type Provider struct {
	models.ProviderProfile
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
}
