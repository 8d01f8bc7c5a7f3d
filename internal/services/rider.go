package services

import (
	"context"
	"fmt"
	"time"

	"github.com/markjakearzadon/profast-gobackend.git/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RiderService works on the riders collection and, for approvals, the users
// collection as well, so it holds the database rather than a single handle.
type RiderService struct {
	db *mongo.Database
}

func NewRiderService(db *mongo.Database) *RiderService {
	return &RiderService{db: db}
}

func (s *RiderService) Create(ctx context.Context, rider *models.Rider) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rider.ID = primitive.NewObjectID()
	rider.CreatedAt = time.Now()
	if rider.Status == "" {
		rider.Status = models.RiderStatusPending
	}

	result, err := s.db.Collection("riders").InsertOne(ctx, rider)
	if err != nil {
		return "", fmt.Errorf("failed to insert rider: %v", err)
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// List returns all rider applications, optionally filtered by exact status.
func (s *RiderService) List(ctx context.Context, status string) ([]models.Rider, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cur, err := s.db.Collection("riders").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch riders: %v", err)
	}
	defer cur.Close(ctx)

	var riders []models.Rider
	if err := cur.All(ctx, &riders); err != nil {
		return nil, fmt.Errorf("failed to decode riders: %v", err)
	}

	return riders, nil
}

// UpdateStatus sets the rider's status. When the new status is "approve" the
// user matching the given email is promoted to the rider role. The two writes
// are sequential with no transaction; a failed promotion is logged with the
// identifiers needed to reconcile it by hand and is not surfaced to the
// caller, matching the primary-acknowledgement-only contract.
func (s *RiderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, email string) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := s.db.Collection("riders").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, fmt.Errorf("failed to update rider status: %v", err)
	}

	if status == models.RiderStatusApproved {
		_, err := s.db.Collection("users").UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": models.RoleRider}})
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"riderId": id.Hex(),
				"email":   email,
			}).Error("rider approved but user role update failed")
		}
	}

	return result, nil
}
