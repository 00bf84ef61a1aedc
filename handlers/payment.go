package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"truebond/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentHandler struct {
	payments PaymentStore
}

func NewPaymentHandler(payments PaymentStore) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// InitStripe wires the Stripe API key from the environment. Call once at startup.
func InitStripe(secretKey string) {
	stripe.Key = secretKey
}

type PaymentIntentRequest struct {
	Amount int64 `json:"amount"`
}

type PaymentRequest struct {
	Email         string `json:"email" binding:"required,email"`
	BiodataID     int64  `json:"biodataId" binding:"required,gt=0"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	Currency      string `json:"currency"`
	TransactionID string `json:"transactionId" binding:"required"`
}

// CreatePaymentIntent asks Stripe for a payment intent and returns the client
// secret. Card data never touches this service.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("[CreatePaymentIntent] stripe call failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

// CreatePayment records a completed contact-request purchase as pending until
// an admin approves it.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	payment := models.Payment{
		Email:         req.Email,
		BiodataID:     req.BiodataID,
		Amount:        req.Amount,
		Currency:      currency,
		TransactionID: req.TransactionID,
		Status:        models.PaymentPending,
		CreatedAt:     time.Now().Unix(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.payments.Insert(ctx, &payment); err != nil {
		log.Printf("[CreatePayment] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Payment recorded", "id": payment.ID.Hex()})
}

func (h *PaymentHandler) PaymentsByEmail(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	payments, err := h.payments.ByEmail(ctx, email)
	if err != nil {
		log.Printf("[PaymentsByEmail] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	payments, err := h.payments.All(ctx)
	if err != nil {
		log.Printf("[ListPayments] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	err = h.payments.Approve(ctx, id)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	if err != nil {
		log.Printf("[ApprovePayment] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment approved"})
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	err = h.payments.Delete(ctx, id)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	if err != nil {
		log.Printf("[DeletePayment] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
