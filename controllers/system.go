package controllers

import (
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"foodie-api/seed"
	"foodie-api/utils"
)

// SystemController serves operational endpoints: service banner, health,
// setup instructions and database seeding.
type SystemController struct {
	State *utils.DBState
	DB    *mongo.Database
}

// NewSystemController creates a new SystemController.
func NewSystemController(state *utils.DBState, db *mongo.Database) *SystemController {
	return &SystemController{State: state, DB: db}
}

func (sc *SystemController) databaseStatus() string {
	if sc.State.Connected() {
		return "Connected"
	}
	return "Not Connected"
}

// Root returns the service banner.
func (sc *SystemController) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message":  "Foodie API is running!",
		"database": sc.databaseStatus(),
		"status":   "OK",
	})
}

// Health reports operational status.
func (sc *SystemController) Health(w http.ResponseWriter, r *http.Request) {
	environment := os.Getenv("APP_ENV")
	if environment == "" {
		environment = "development"
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status":      "OK",
		"database":    sc.databaseStatus(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": environment,
	})
}

// Setup returns database configuration instructions.
func (sc *SystemController) Setup(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Database Setup Instructions",
		"steps": []string{
			"1. Create a MongoDB database (Atlas or a local instance)",
			"2. Get your connection string",
			"3. Add MONGODB_URI=your_connection_string to the .env file",
			"4. Restart the server",
		},
		"currentStatus": sc.databaseStatus(),
	})
}

// Seed reseeds the database with fixed sample data. Destructive: users,
// restaurants and menu items are cleared first. Orders are left alone.
func (sc *SystemController) Seed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := seed.Database(ctx, sc.DB); err != nil {
		respondServerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Database seeded successfully!"})
}
