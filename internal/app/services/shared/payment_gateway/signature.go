package payment_gateway

import (
	"time"

	"github.com/stripe/stripe-go/v76/webhook"
)

var (
	ErrSignatureMissing   = webhook.ErrNotSigned
	ErrSignatureMalformed = webhook.ErrInvalidHeader
	ErrSignatureExpired   = webhook.ErrTooOld
	ErrSignatureMismatch  = webhook.ErrNoValidSignature
)

// SignatureHeader builds the Stripe-Signature header a sender would attach
// to payload.
func SignatureHeader(payload []byte, secret string, timestamp time.Time) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: timestamp,
	})
	return signed.Header
}
