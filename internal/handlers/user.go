package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/markjakearzadon/profast-gobackend.git/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the slice of the user service the handler needs.
type UserStore interface {
	CreateIfAbsent(ctx context.Context, user *models.User) (string, error)
	Search(ctx context.Context, query string) ([]models.User, error)
	MakeAdmin(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserHandler struct {
	service UserStore
}

func NewUserHandler(service UserStore) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser handles POST /users. Creation is idempotent on email: a second
// request for the same email acknowledges without inserting.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if user.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateIfAbsent(r.Context(), &user)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if id == "" {
		json.NewEncoder(w).Encode(map[string]string{"message": "user already exists"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"insertedId": id})
}

// SearchUsers handles GET /users/search?query=
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	users, err := h.service.Search(r.Context(), query)
	if err != nil {
		http.Error(w, "failed to search users", http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// MakeAdmin handles PATCH /users/{id}/make-admin.
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	count, err := h.service.MakeAdmin(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to update user role", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":       "user role updated to admin",
		"modifiedCount": count,
	})
}
