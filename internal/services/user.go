package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/markjakearzadon/profast-gobackend.git/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService struct {
	collection *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{collection: db.Collection("users")}
}

// CreateIfAbsent inserts the user unless a document with the same email
// already exists, and returns the new document's id ("" when the user was
// already present). The find-then-insert pair is not atomic: two concurrent
// signups for the same email can both pass the check.
func (s *UserService) CreateIfAbsent(ctx context.Context, user *models.User) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return "", nil
	}
	if err != mongo.ErrNoDocuments {
		return "", fmt.Errorf("failed to look up user: %v", err)
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to insert user: %v", err)
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Search returns users whose name or email contains the query substring,
// case-insensitively, excluding admins.
func (s *UserService) Search(ctx context.Context, query string) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	regex := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"role": bson.M{"$ne": models.RoleAdmin},
		"$or": []bson.M{
			{"name": bson.M{"$regex": regex}},
			{"email": bson.M{"$regex": regex}},
		},
	}

	cur, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %v", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %v", err)
	}

	return users, nil
}

// MakeAdmin sets the user's role to admin and returns the modified count
// (0 when no user has that id).
func (s *UserService) MakeAdmin(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return 0, fmt.Errorf("failed to update user role: %v", err)
	}

	return result.ModifiedCount, nil
}
