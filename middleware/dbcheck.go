package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"foodie-api/utils"
)

// RequireDB gates API routes on datastore availability. When the database
// is unreachable every guarded route answers 503 instead of failing deep
// inside a handler.
func RequireDB(state *utils.DBState) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !state.Connected() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"error":   "Database not available",
					"message": "Please configure MongoDB connection in .env file",
					"details": "Add MONGODB_URI to your environment variables",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
