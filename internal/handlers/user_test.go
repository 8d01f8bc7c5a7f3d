package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/markjakearzadon/profast-gobackend.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	createID     string
	createErr    error
	createdUser  *models.User
	searchResult []models.User
	searchQuery  string
	searchErr    error
	adminCount   int64
	adminErr     error
}

func (f *fakeUserStore) CreateIfAbsent(ctx context.Context, user *models.User) (string, error) {
	f.createdUser = user
	return f.createID, f.createErr
}

func (f *fakeUserStore) Search(ctx context.Context, query string) ([]models.User, error) {
	f.searchQuery = query
	return f.searchResult, f.searchErr
}

func (f *fakeUserStore) MakeAdmin(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return f.adminCount, f.adminErr
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		store      *fakeUserStore
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:       "new user inserted",
			body:       `{"name":"Rahim","email":"rahim@example.com"}`,
			store:      &fakeUserStore{createID: "68b1c2d3e4f5a6b7c8d9e0f1"},
			wantStatus: http.StatusCreated,
			wantBody:   map[string]string{"insertedId": "68b1c2d3e4f5a6b7c8d9e0f1"},
		},
		{
			name:       "existing user acknowledged",
			body:       `{"email":"rahim@example.com"}`,
			store:      &fakeUserStore{createID: ""},
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"message": "user already exists"},
		},
		{
			name:       "missing email",
			body:       `{"name":"Rahim"}`,
			store:      &fakeUserStore{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{`,
			store:      &fakeUserStore{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store failure",
			body:       `{"email":"rahim@example.com"}`,
			store:      &fakeUserStore{createErr: errors.New("connection reset")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUserHandler(tt.store)
			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.CreateUser(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != nil {
				var got map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.wantBody, got)
			}
		})
	}
}

func TestSearchUsers(t *testing.T) {
	store := &fakeUserStore{
		searchResult: []models.User{
			{Name: "Rahim Uddin", Email: "rahim@example.com", Role: models.RoleUser},
		},
	}
	h := NewUserHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/users/search?query=rahim", nil)
	rec := httptest.NewRecorder()
	h.SearchUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rahim", store.searchQuery)

	var got []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "rahim@example.com", got[0].Email)
}

func TestSearchUsersEmptyResult(t *testing.T) {
	h := NewUserHandler(&fakeUserStore{searchResult: nil})

	req := httptest.NewRequest(http.MethodGet, "/users/search?query=nobody", nil)
	rec := httptest.NewRecorder()
	h.SearchUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestMakeAdmin(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		h := NewUserHandler(&fakeUserStore{adminCount: 1})

		req := httptest.NewRequest(http.MethodPatch, "/users/68b1c2d3e4f5a6b7c8d9e0f1/make-admin", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "68b1c2d3e4f5a6b7c8d9e0f1"})
		rec := httptest.NewRecorder()
		h.MakeAdmin(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, float64(1), got["modifiedCount"])
	})

	t.Run("invalid id", func(t *testing.T) {
		h := NewUserHandler(&fakeUserStore{})

		req := httptest.NewRequest(http.MethodPatch, "/users/not-an-id/make-admin", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "not-an-id"})
		rec := httptest.NewRecorder()
		h.MakeAdmin(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
