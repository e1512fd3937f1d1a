// internal/domain/models/payment.go
package models

import "time"

// Payment status values. A payment stays UNPAID until the external provider
// confirms it; PAID never reverts.
const (
	PaymentPaid   = "PAID"
	PaymentUnpaid = "UNPAID"
)

// Payment is a payment record as the core API serializes it.
type Payment struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	EventID       string     `json:"eventId"`
	Amount        float64    `json:"amount"`
	TransactionID string     `json:"transactionId,omitempty"`
	Status        string     `json:"status"` // PAID | UNPAID
	PaidAt        *time.Time `json:"paidAt,omitempty"`

	Event *Event `json:"event,omitempty"`
	User  *User  `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
