package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rider application states. "approve" is the value the admin dashboard sends;
// reaching it promotes the matching user to the rider role.
const (
	RiderStatusPending  = "pending"
	RiderStatusApproved = "approve"
	RiderStatusRejected = "rejected"
)

// Rider represents a rider application document in the riders collection.
type Rider struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Age       int                `bson:"age,omitempty" json:"age,omitempty"`
	Region    string             `bson:"region,omitempty" json:"region,omitempty"`
	District  string             `bson:"district,omitempty" json:"district,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	BikeBrand string             `bson:"bikeBrand,omitempty" json:"bikeBrand,omitempty"`
	BikeRegNo string             `bson:"bikeRegNo,omitempty" json:"bikeRegNo,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
