package requests

import "helpmynew-service/internal/app/models"

type CreateCheckout struct {
	RequestID string         `json:"request_id" validate:"required,notblank"`
	OriginURL string         `json:"origin_url" validate:"required,url"`
	Amount    *models.Amount `json:"amount" validate:"omitempty,gt=0"`
	Currency  string         `json:"currency" validate:"omitempty,len=3,alpha"`
}
