package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Parcel payment states.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Parcel represents a parcel document in the parcels collection. The sender's
// email lives in created_by and is what the list endpoint filters on.
type Parcel struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Type            string             `bson:"type" json:"type"`
	Weight          float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	SenderName      string             `bson:"senderName" json:"senderName"`
	SenderContact   string             `bson:"senderContact,omitempty" json:"senderContact,omitempty"`
	SenderRegion    string             `bson:"senderRegion,omitempty" json:"senderRegion,omitempty"`
	ReceiverName    string             `bson:"receiverName" json:"receiverName"`
	ReceiverContact string             `bson:"receiverContact,omitempty" json:"receiverContact,omitempty"`
	ReceiverRegion  string             `bson:"receiverRegion,omitempty" json:"receiverRegion,omitempty"`
	Cost            float64            `bson:"cost,omitempty" json:"cost,omitempty"`
	CreatedBy       string             `bson:"created_by" json:"created_by"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
