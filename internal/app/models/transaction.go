package models

import (
	"time"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// IsSettled reports whether the transaction has been paid, refunded or not.
func (s TransactionStatus) IsSettled() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusRefunded
}

type PaymentTransaction struct {
	TransactionID string            `json:"transaction_id" bson:"transaction_id"`
	RequestID     string            `json:"request_id" bson:"request_id"`
	ClientID      string            `json:"client_id" bson:"client_id"`
	ProviderID    string            `json:"provider_id,omitempty" bson:"provider_id,omitempty"`
	Amount        Amount            `json:"amount" bson:"amount"`
	Currency      string            `json:"currency" bson:"currency"`
	PaymentMethod string            `json:"payment_method" bson:"payment_method"`
	SessionID     string            `json:"session_id" bson:"session_id"`
	CheckoutURL   string            `json:"checkout_url,omitempty" bson:"checkout_url,omitempty"`
	Status        TransactionStatus `json:"status" bson:"status"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" bson:"updated_at"`
}

func (t *PaymentTransaction) Clone() *PaymentTransaction {
	clone := *t
	return &clone
}
