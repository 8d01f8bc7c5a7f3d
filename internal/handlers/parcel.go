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

// ParcelStore is the slice of the parcel service the handler needs.
type ParcelStore interface {
	Create(ctx context.Context, parcel *models.Parcel) (string, error)
	List(ctx context.Context, email string) ([]models.Parcel, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ParcelHandler struct {
	service ParcelStore
}

func NewParcelHandler(service ParcelStore) *ParcelHandler {
	return &ParcelHandler{service: service}
}

// CreateParcel handles POST /parcels.
func (h *ParcelHandler) CreateParcel(w http.ResponseWriter, r *http.Request) {
	var parcel models.Parcel
	if err := json.NewDecoder(r.Body).Decode(&parcel); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.service.Create(r.Context(), &parcel)
	if err != nil {
		http.Error(w, "failed to create parcel", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message":    "Parcel saved successfully!",
		"insertedId": id,
	})
}

// GetParcels handles GET /parcels?email= (token-guarded route).
func (h *ParcelHandler) GetParcels(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	parcels, err := h.service.List(r.Context(), email)
	if err != nil {
		http.Error(w, "failed to fetch parcels", http.StatusInternalServerError)
		return
	}
	if parcels == nil {
		parcels = []models.Parcel{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parcels)
}

// GetParcel handles GET /parcels/{id}. Absence is a distinct 404, not an
// empty body.
func (h *ParcelHandler) GetParcel(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid parcel ID", http.StatusBadRequest)
		return
	}

	parcel, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "parcel not found", http.StatusNotFound)
		} else {
			http.Error(w, "failed to fetch parcel", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parcel)
}

// DeleteParcel handles DELETE /parcels/{id}. A missing parcel is reported as
// deletedCount 0, not an error.
func (h *ParcelHandler) DeleteParcel(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid parcel ID", http.StatusBadRequest)
		return
	}

	count, err := h.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to delete parcel", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"deletedCount": count})
}
