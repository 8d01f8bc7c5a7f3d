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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentService records payments and propagates the paid status to the
// referenced parcel, so it holds the database rather than a single handle.
type PaymentService struct {
	db *mongo.Database
}

func NewPaymentService(db *mongo.Database) *PaymentService {
	return &PaymentService{db: db}
}

// Record stamps the payment with the current time and the paid status,
// inserts it, then marks the referenced parcel paid. The two writes are
// sequential with no transaction: if the parcel update fails after the
// insert succeeded, the payment stays recorded, the error is returned, and
// the ids are logged for reconciliation. It returns the new payment's id and
// the number of parcels modified (0 when the parcelId matches nothing).
func (s *PaymentService) Record(ctx context.Context, payment *models.Payment) (string, int64, error) {
	parcelID, err := primitive.ObjectIDFromHex(payment.ParcelID)
	if err != nil {
		return "", 0, fmt.Errorf("invalid parcel id %q: %v", payment.ParcelID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	payment.ID = primitive.NewObjectID()
	payment.PaidAt = time.Now()
	payment.Status = models.PaymentStatusPaid

	insertResult, err := s.db.Collection("payments").InsertOne(ctx, payment)
	if err != nil {
		return "", 0, fmt.Errorf("failed to insert payment: %v", err)
	}
	paymentID := insertResult.InsertedID.(primitive.ObjectID).Hex()

	updateResult, err := s.db.Collection("parcels").UpdateOne(ctx,
		bson.M{"_id": parcelID},
		bson.M{"$set": bson.M{"paymentStatus": models.PaymentStatusPaid}})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"paymentId": paymentID,
			"parcelId":  payment.ParcelID,
		}).Error("payment recorded but parcel status update failed")
		return paymentID, 0, fmt.Errorf("failed to update parcel status: %v", err)
	}

	return paymentID, updateResult.ModifiedCount, nil
}

// List returns payments newest first, optionally filtered by payer email.
func (s *PaymentService) List(ctx context.Context, email string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})
	cur, err := s.db.Collection("payments").Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %v", err)
	}
	defer cur.Close(ctx)

	var payments []models.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %v", err)
	}

	return payments, nil
}
