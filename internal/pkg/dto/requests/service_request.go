package requests

import "helpmynew-service/internal/app/models"

type CreateServiceRequest struct {
	CategoryID  string                 `json:"category_id" validate:"required,notblank"`
	Title       string                 `json:"title" validate:"required,notblank"`
	Description string                 `json:"description" validate:"required,notblank"`
	Urgency     string                 `json:"urgency" validate:"omitempty,oneof=urgent normal flexible"`
	PriceAgreed *models.Amount         `json:"price_agreed" validate:"omitempty,gte=0"`
	ProviderID  *string                `json:"provider_id" validate:"omitempty,notblank"`
	Location    map[string]interface{} `json:"location"`
	PostalCode  string                 `json:"postal_code" validate:"omitempty,max=16"`
}

// UpdateServiceRequest holds the only fields a request update may change.
type UpdateServiceRequest struct {
	Status      *string        `json:"status" validate:"omitempty,oneof=pending accepted in_progress completed cancelled"`
	PriceAgreed *models.Amount `json:"price_agreed" validate:"omitempty,gte=0"`
	ProviderID  *string        `json:"provider_id" validate:"omitempty,notblank"`
}
