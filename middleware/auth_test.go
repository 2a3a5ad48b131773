package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodie-api/utils"
)

func TestAuthMiddleware(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rejections := []struct {
		name        string
		authHeader  string
		wantMessage string
	}{
		{
			name:        "missing header",
			authHeader:  "",
			wantMessage: "Authorization header missing",
		},
		{
			name:        "not a bearer token",
			authHeader:  "Basic dXNlcjpwYXNz",
			wantMessage: "Invalid Authorization header format",
		},
		{
			name:        "garbage token",
			authHeader:  "Bearer not.a.token",
			wantMessage: "Invalid token",
		},
	}

	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			AuthMiddleware(next).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
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

	t.Run("valid token passes claims through", func(t *testing.T) {
		token, err := utils.GenerateJWT("asha@example.com", "customer")
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		var got *utils.Claims
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = r.Context().Value(UserContextKey).(*utils.Claims)
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		AuthMiddleware(inner).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if got == nil {
			t.Fatal("claims missing from request context")
		}
		if got.Email != "asha@example.com" || got.Role != "customer" {
			t.Errorf("claims = %q/%q, want asha@example.com/customer", got.Email, got.Role)
		}
	})
}
