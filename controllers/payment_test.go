package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodie-api/models"
)

// The payment endpoint is a simulation: it never contacts a gateway and
// always succeeds for well-formed input. These tests assert that artifact;
// they are not a contract for real payment processing.
func TestProcessPayment(t *testing.T) {
	pc := NewPaymentController()

	body := `{
		"amount": 1042.60,
		"currency": "INR",
		"paymentMethod": "card",
		"customerInfo": {"name": "Asha", "email": "asha@example.com"},
		"orderData": {"items": 3}
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payment/process", strings.NewReader(body))
	pc.ProcessPayment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Payment models.PaymentResult `json:"payment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if !resp.Success || !resp.Payment.Success {
		t.Error("simulated payment should always report success")
	}
	if resp.Payment.TransactionID == "" {
		t.Error("transaction id must be non-empty")
	}
	if !strings.HasPrefix(resp.Payment.TransactionID, "TXN-") {
		t.Errorf("transaction id = %q, want TXN- prefix", resp.Payment.TransactionID)
	}
	if resp.Payment.Amount != 1042.60 {
		t.Errorf("amount = %v, want 1042.60 echoed back", resp.Payment.Amount)
	}
	if resp.Payment.Status != "completed" {
		t.Errorf("status = %q, want %q", resp.Payment.Status, "completed")
	}
	if resp.Payment.Timestamp == "" {
		t.Error("timestamp must be set")
	}
}

func TestProcessPaymentInvalidBody(t *testing.T) {
	pc := NewPaymentController()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payment/process", strings.NewReader("{not json"))
	pc.ProcessPayment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
