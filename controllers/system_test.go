package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodie-api/utils"
)

func TestHealth(t *testing.T) {
	state := utils.NewDBState()
	sc := NewSystemController(state, nil)

	t.Run("disconnected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		sc.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["database"] != "Not Connected" {
			t.Errorf("database = %q, want %q", resp["database"], "Not Connected")
		}
		if resp["status"] != "OK" {
			t.Errorf("status = %q, want %q", resp["status"], "OK")
		}
		if resp["timestamp"] == "" {
			t.Error("timestamp must be set")
		}
	})

	t.Run("connected", func(t *testing.T) {
		state.SetConnected(true)
		rec := httptest.NewRecorder()
		sc.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["database"] != "Connected" {
			t.Errorf("database = %q, want %q", resp["database"], "Connected")
		}
	})
}
