package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"foodie-api/utils"
)

func TestRequireDB(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("disconnected returns 503", func(t *testing.T) {
		state := utils.NewDBState()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)

		RequireDB(state)(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
		}
	})

	t.Run("connected passes through", func(t *testing.T) {
		state := utils.NewDBState()
		state.SetConnected(true)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)

		RequireDB(state)(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}
