package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/markjakearzadon/profast-gobackend.git/internal/models"
)

// PaymentStore is the slice of the payment service the handler needs.
type PaymentStore interface {
	Record(ctx context.Context, payment *models.Payment) (string, int64, error)
	List(ctx context.Context, email string) ([]models.Payment, error)
}

// PaymentIntentCreator creates a gateway payment intent for an amount in
// major currency units and returns the client secret.
type PaymentIntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amount float64) (string, error)
}

type PaymentHandler struct {
	service PaymentStore
	gateway PaymentIntentCreator
}

func NewPaymentHandler(service PaymentStore, gateway PaymentIntentCreator) *PaymentHandler {
	return &PaymentHandler{service: service, gateway: gateway}
}

// CreatePaymentIntent handles POST /create-payment-intent. Gateway failures
// are surfaced as a server error carrying the gateway's message.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	clientSecret, err := h.gateway.CreatePaymentIntent(r.Context(), body.Amount)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": clientSecret})
}

// RecordPayment handles POST /payments: insert the payment, then flip the
// referenced parcel's payment status.
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if payment.ParcelID == "" {
		http.Error(w, "parcelId is required", http.StatusBadRequest)
		return
	}

	paymentID, parcelModified, err := h.service.Record(r.Context(), &payment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":           "payment saved and parcel updated",
		"paymentInsertedId": paymentID,
		"parcelModified":    parcelModified,
	})
}

// GetPayments handles GET /payments?email=
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	payments, err := h.service.List(r.Context(), email)
	if err != nil {
		http.Error(w, "failed to fetch payments", http.StatusInternalServerError)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}
