package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"foodie-api/models"
)

// PaymentController simulates payment processing. No payment gateway is
// contacted and no financial side effect occurs; every well-formed request
// succeeds with a locally generated transaction id.
type PaymentController struct{}

// NewPaymentController creates a new PaymentController.
func NewPaymentController() *PaymentController {
	return &PaymentController{}
}

// ProcessPayment accepts a payment intent and synthesizes a success
// response echoing the input.
func (pc *PaymentController) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, failBadRequest, "Invalid request body")
		return
	}

	result := models.PaymentResult{
		Success:       true,
		TransactionID: "TXN-" + uuid.NewString(),
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Status:        "completed",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		CustomerInfo:  req.CustomerInfo,
		OrderData:     req.OrderData,
	}

	logrus.WithFields(logrus.Fields{
		"transaction":   result.TransactionID,
		"amount":        result.Amount,
		"currency":      result.Currency,
		"paymentMethod": result.PaymentMethod,
	}).Info("payment processed (simulated)")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Payment processed successfully",
		"payment": result,
	})
}
