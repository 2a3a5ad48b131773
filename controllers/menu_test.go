package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// Unknown category values are rejected before the query runs, so nil
// collections never get touched.
func TestGetMenuItemsRejectsUnknownCategory(t *testing.T) {
	mc := &MenuController{}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/menu?category=breakfast", nil)
	mc.GetMenuItems(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if want := "Invalid category: breakfast"; resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}

func TestGetRestaurantMenuRejectsUnknownCategory(t *testing.T) {
	rc := &RestaurantController{}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/restaurants/507f1f77bcf86cd799439011/menu?category=brunch", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "507f1f77bcf86cd799439011"})
	rc.GetRestaurantMenu(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if want := "Invalid category: brunch"; resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}
