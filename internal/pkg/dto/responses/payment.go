package responses

import "helpmynew-service/internal/app/models"

type Checkout struct {
	URL           string `json:"url"`
	SessionID     string `json:"session_id"`
	TransactionID string `json:"transaction_id"`
	Reused        bool   `json:"reused"`
}

type PaymentStatus struct {
	Status        string                   `json:"status"`
	PaymentStatus string                   `json:"payment_status"`
	AmountTotal   models.Amount            `json:"amount_total"`
	Currency      string                   `json:"currency"`
	Transaction   models.TransactionStatus `json:"transaction_status"`
	RequestStatus string                   `json:"request_status,omitempty"`
	Warnings      []string                 `json:"warnings,omitempty"`
}

type WebhookAck struct {
	Status    string `json:"status"`
	EventType string `json:"event_type,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
}
