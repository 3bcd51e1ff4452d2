package models

import "time"

// GatewaySession is the gateway's view of a checkout session.
type GatewaySession struct {
	SessionID     string
	CheckoutURL   string
	PaymentStatus string
	SessionStatus string
	AmountTotal   Amount
	Currency      string
	Metadata      map[string]string
}

// CheckoutSessionInput describes a checkout session to open at the gateway.
type CheckoutSessionInput struct {
	Amount     Amount
	Currency   string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// WebhookEvent is a verified gateway notification.
type WebhookEvent struct {
	EventID    string
	EventType  string
	Session    GatewaySession
	ReceivedAt time.Time
	RawPayload []byte
}

// PaymentFact is a single report of payment status for a session, from
// either the poll, the webhook or the sweeper.
type PaymentFact struct {
	SessionID     string
	PaymentStatus string
	SessionStatus string
	AmountTotal   Amount
	Currency      string
	Source        string
}

func PaymentFactFromSession(session *GatewaySession, source string) PaymentFact {
	return PaymentFact{
		SessionID:     session.SessionID,
		PaymentStatus: session.PaymentStatus,
		SessionStatus: session.SessionStatus,
		AmountTotal:   session.AmountTotal,
		Currency:      session.Currency,
		Source:        source,
	}
}

// ReconciliationOutcome reports what applying a payment fact did.
type ReconciliationOutcome struct {
	SessionID         string               `json:"session_id"`
	TransactionStatus TransactionStatus    `json:"transaction_status"`
	RequestStatus     ServiceRequestStatus `json:"request_status,omitempty"`
	Applied           bool                 `json:"applied"`
	Duplicate         bool                 `json:"duplicate"`
	Warnings          []string             `json:"warnings,omitempty"`
}
