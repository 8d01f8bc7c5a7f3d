package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/markjakearzadon/profast-gobackend.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentStore struct {
	recordID       string
	recordModified int64
	recordErr      error
	recorded       *models.Payment
	listResult     []models.Payment
	listEmail      string
	listErr        error
}

func (f *fakePaymentStore) Record(ctx context.Context, payment *models.Payment) (string, int64, error) {
	f.recorded = payment
	return f.recordID, f.recordModified, f.recordErr
}

func (f *fakePaymentStore) List(ctx context.Context, email string) ([]models.Payment, error) {
	f.listEmail = email
	return f.listResult, f.listErr
}

type fakeGateway struct {
	secret    string
	err       error
	gotAmount float64
}

func (f *fakeGateway) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	f.gotAmount = amount
	return f.secret, f.err
}

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("returns client secret", func(t *testing.T) {
		gateway := &fakeGateway{secret: "pi_123_secret_456"}
		h := NewPaymentHandler(&fakePaymentStore{}, gateway)

		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"amount":25.5}`))
		rec := httptest.NewRecorder()
		h.CreatePaymentIntent(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 25.5, gateway.gotAmount)

		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "pi_123_secret_456", got["clientSecret"])
	})

	t.Run("gateway failure carries message", func(t *testing.T) {
		h := NewPaymentHandler(&fakePaymentStore{}, &fakeGateway{err: errors.New("amount too small")})

		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"amount":0.01}`))
		rec := httptest.NewRecorder()
		h.CreatePaymentIntent(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "amount too small", got["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewPaymentHandler(&fakePaymentStore{}, &fakeGateway{})

		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		h.CreatePaymentIntent(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecordPayment(t *testing.T) {
	t.Run("records and reports parcel update", func(t *testing.T) {
		store := &fakePaymentStore{recordID: "68b1c2d3e4f5a6b7c8d9e0f4", recordModified: 1}
		h := NewPaymentHandler(store, &fakeGateway{})

		body := `{"parcelId":"68b1c2d3e4f5a6b7c8d9e0f3","email":"sender@example.com","amount":120}`
		req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.RecordPayment(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, store.recorded)
		assert.Equal(t, "68b1c2d3e4f5a6b7c8d9e0f3", store.recorded.ParcelID)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "payment saved and parcel updated", got["message"])
		assert.Equal(t, "68b1c2d3e4f5a6b7c8d9e0f4", got["paymentInsertedId"])
		assert.Equal(t, float64(1), got["parcelModified"])
	})

	t.Run("missing parcelId", func(t *testing.T) {
		h := NewPaymentHandler(&fakePaymentStore{}, &fakeGateway{})

		req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(`{"amount":120}`))
		rec := httptest.NewRecorder()
		h.RecordPayment(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		h := NewPaymentHandler(&fakePaymentStore{recordErr: errors.New("failed to update parcel status: timeout")}, &fakeGateway{})

		body := `{"parcelId":"68b1c2d3e4f5a6b7c8d9e0f3","amount":120}`
		req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.RecordPayment(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetPayments(t *testing.T) {
	store := &fakePaymentStore{
		listResult: []models.Payment{
			{Email: "sender@example.com", Amount: 120, Status: models.PaymentStatusPaid},
		},
	}
	h := NewPaymentHandler(store, &fakeGateway{})

	req := httptest.NewRequest(http.MethodGet, "/payments?email=sender@example.com", nil)
	rec := httptest.NewRecorder()
	h.GetPayments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sender@example.com", store.listEmail)

	var got []models.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, models.PaymentStatusPaid, got[0].Status)
}
