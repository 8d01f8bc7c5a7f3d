package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/markjakearzadon/profast-gobackend.git/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RiderStore is the slice of the rider service the handler needs.
type RiderStore interface {
	Create(ctx context.Context, rider *models.Rider) (string, error)
	List(ctx context.Context, status string) ([]models.Rider, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status, email string) (*mongo.UpdateResult, error)
}

type RiderHandler struct {
	service RiderStore
}

func NewRiderHandler(service RiderStore) *RiderHandler {
	return &RiderHandler{service: service}
}

// CreateRider handles POST /riders.
func (h *RiderHandler) CreateRider(w http.ResponseWriter, r *http.Request) {
	var rider models.Rider
	if err := json.NewDecoder(r.Body).Decode(&rider); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.service.Create(r.Context(), &rider)
	if err != nil {
		http.Error(w, "failed to create rider", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"insertedId": id})
}

// GetRiders handles GET /riders?status=
func (h *RiderHandler) GetRiders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	riders, err := h.service.List(r.Context(), status)
	if err != nil {
		http.Error(w, "failed to fetch riders", http.StatusInternalServerError)
		return
	}
	if riders == nil {
		riders = []models.Rider{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(riders)
}

// UpdateRiderStatus handles PATCH /riders/{id}. The body carries the target
// status and the applicant's email; only the primary update's counts are
// reported, the role promotion on approval is fire-and-forget.
func (h *RiderHandler) UpdateRiderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid rider ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Status string `json:"status"`
		Email  string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.Status == "" {
		http.Error(w, "status field is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, body.Status, body.Email)
	if err != nil {
		http.Error(w, "failed to update rider status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}
