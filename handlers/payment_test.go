package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"truebond/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakePaymentStore struct {
	payments map[primitive.ObjectID]*models.Payment
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: map[primitive.ObjectID]*models.Payment{}}
}

func (f *fakePaymentStore) Insert(_ context.Context, p *models.Payment) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	copied := *p
	f.payments[p.ID] = &copied
	return nil
}

func (f *fakePaymentStore) ByEmail(_ context.Context, email string) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentStore) All(_ context.Context) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range f.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePaymentStore) Approve(_ context.Context, id primitive.ObjectID) error {
	p, ok := f.payments[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Status = models.PaymentApproved
	return nil
}

func (f *fakePaymentStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.payments[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.payments, id)
	return nil
}

func (f *fakePaymentStore) Revenue(_ context.Context) (int64, error) {
	var total int64
	for _, p := range f.payments {
		if p.Status == models.PaymentApproved {
			total += p.Amount
		}
	}
	return total, nil
}

func paymentRouter(fake *fakePaymentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(fake)

	router := gin.New()
	router.POST("/create-payment-intent", h.CreatePaymentIntent)
	router.POST("/payments", h.CreatePayment)
	router.GET("/payments/:email", h.PaymentsByEmail)
	router.PATCH("/payments/:id/approve", h.ApprovePayment)
	router.DELETE("/payments/:id", h.DeletePayment)
	return router
}

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	router := paymentRouter(newFakePaymentStore())

	for _, amount := range []int64{0, -100} {
		body, _ := json.Marshal(map[string]interface{}{"amount": amount})
		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code, "amount %d must be rejected before the gateway call", amount)
	}
}

func TestCreatePaymentRecordsPending(t *testing.T) {
	fake := newFakePaymentStore()
	router := paymentRouter(fake)

	body, _ := json.Marshal(map[string]interface{}{
		"email":         "u@x.com",
		"biodataId":     3,
		"amount":        500,
		"transactionId": "pi_123",
	})
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusCreated, resp.Code)

	require.Len(t, fake.payments, 1)
	for _, p := range fake.payments {
		assert.Equal(t, models.PaymentPending, p.Status)
		assert.Equal(t, "usd", p.Currency)
		assert.Equal(t, int64(500), p.Amount)
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	fake := newFakePaymentStore()
	router := paymentRouter(fake)

	// Missing transactionId.
	body, _ := json.Marshal(map[string]interface{}{
		"email":     "u@x.com",
		"biodataId": 3,
		"amount":    500,
	})
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, fake.payments)
}

func TestApproveAndDeletePayment(t *testing.T) {
	fake := newFakePaymentStore()
	payment := models.Payment{Email: "u@x.com", Amount: 500, Status: models.PaymentPending}
	require.NoError(t, fake.Insert(context.Background(), &payment))
	router := paymentRouter(fake)

	req := httptest.NewRequest(http.MethodPatch, "/payments/"+payment.ID.Hex()+"/approve", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, models.PaymentApproved, fake.payments[payment.ID].Status)

	revenue, err := fake.Revenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(500), revenue)

	req = httptest.NewRequest(http.MethodDelete, "/payments/"+payment.ID.Hex(), nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, fake.payments)

	req = httptest.NewRequest(http.MethodDelete, "/payments/"+payment.ID.Hex(), nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
