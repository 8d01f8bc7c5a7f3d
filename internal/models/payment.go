package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment represents a recorded payment in the payments collection. Payments
// are immutable once written; status is always "paid".
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ParcelID      string             `bson:"parcelId" json:"parcelId"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status        string             `bson:"status" json:"status"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}
