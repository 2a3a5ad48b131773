package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

// Every case here fails request validation before the handler reaches the
// datastore, so a zero-value controller with nil collections is safe: a
// rejected request must leave the stored order untouched.
func TestUpdateOrderStatusRejectsBadRequests(t *testing.T) {
	oc := &OrderController{}

	tests := []struct {
		name        string
		orderID     string
		body        string
		wantMessage string
	}{
		{
			name:        "missing status field",
			orderID:     "507f1f77bcf86cd799439011",
			body:        `{}`,
			wantMessage: "Missing status in request body",
		},
		{
			name:        "empty status value",
			orderID:     "507f1f77bcf86cd799439011",
			body:        `{"status": ""}`,
			wantMessage: "Missing status in request body",
		},
		{
			name:        "unknown status value",
			orderID:     "507f1f77bcf86cd799439011",
			body:        `{"status": "teleported"}`,
			wantMessage: "Invalid status: teleported",
		},
		{
			name:        "invalid order id",
			orderID:     "not-a-hex-id",
			body:        `{"status": "confirmed"}`,
			wantMessage: "Invalid order ID",
		},
		{
			name:        "malformed body",
			orderID:     "507f1f77bcf86cd799439011",
			body:        `{not json`,
			wantMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch,
				"/api/orders/"+tt.orderID+"/status", strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"id": tt.orderID})

			oc.UpdateOrderStatus(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}

			var resp struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMessage)
			}
		})
	}
}
