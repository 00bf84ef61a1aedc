package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentApproved = "Approved"
)

// Payment records a contact-request purchase. The Stripe transaction id is
// kept for reconciliation; approval flips Status and unlocks the contact info.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	BiodataID     int64              `bson:"biodataId" json:"biodataId"`
	Amount        int64              `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     int64              `bson:"createdAt" json:"createdAt"`
}
