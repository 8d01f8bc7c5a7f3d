package services

import (
	"context"
	"fmt"
	"time"

	"github.com/markjakearzadon/profast-gobackend.git/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ParcelService struct {
	collection *mongo.Collection
}

func NewParcelService(db *mongo.Database) *ParcelService {
	return &ParcelService{collection: db.Collection("parcels")}
}

func (s *ParcelService) Create(ctx context.Context, parcel *models.Parcel) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	parcel.ID = primitive.NewObjectID()
	if parcel.CreatedAt.IsZero() {
		parcel.CreatedAt = time.Now()
	}
	if parcel.PaymentStatus == "" {
		parcel.PaymentStatus = models.PaymentStatusUnpaid
	}

	result, err := s.collection.InsertOne(ctx, parcel)
	if err != nil {
		return "", fmt.Errorf("failed to insert parcel: %v", err)
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// List returns parcels newest first, optionally filtered by the sender's
// email (the created_by field).
func (s *ParcelService) List(ctx context.Context, email string) ([]models.Parcel, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["created_by"] = email
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parcels: %v", err)
	}
	defer cur.Close(ctx)

	var parcels []models.Parcel
	if err := cur.All(ctx, &parcels); err != nil {
		return nil, fmt.Errorf("failed to decode parcels: %v", err)
	}

	return parcels, nil
}

// GetByID returns the parcel with the given id. mongo.ErrNoDocuments is
// passed through unwrapped so the handler can signal absence explicitly.
func (s *ParcelService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var parcel models.Parcel
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&parcel); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch parcel: %v", err)
	}

	return &parcel, nil
}

// Delete removes the parcel with the given id and returns the deleted count.
// Deleting a parcel that does not exist is not an error; the count is 0.
func (s *ParcelService) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete parcel: %v", err)
	}

	return result.DeletedCount, nil
}
