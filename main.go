package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"foodie-api/controllers"
	"foodie-api/routes"
	"foodie-api/seed"
	"foodie-api/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize email service (nil when unconfigured)
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	dbState := utils.NewDBState()
	client, connected, err := utils.ConnectDB()
	if err != nil {
		logrus.WithError(err).Fatal("invalid MongoDB configuration")
	}
	dbState.SetConnected(connected)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logrus.WithError(err).Error("error disconnecting from MongoDB")
		}
	}()

	db := client.Database(utils.DatabaseName())

	// Seed an empty database with sample data
	if connected {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		count, err := db.Collection("restaurants").CountDocuments(ctx, bson.M{})
		if err == nil && count == 0 {
			logrus.Info("database is empty, seeding with sample data")
			if err := seed.Database(ctx, db); err != nil {
				logrus.WithError(err).Error("seeding failed")
			}
		}
		cancel()
	} else {
		logrus.Warn("database not connected; API routes will return 503")
	}

	// Initialize controllers
	userController := controllers.NewUserController(db)
	restaurantController := controllers.NewRestaurantController(db)
	menuController := controllers.NewMenuController(db)
	orderController := controllers.NewOrderController(db, emailService)
	paymentController := controllers.NewPaymentController()
	systemController := controllers.NewSystemController(dbState, db)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, dbState,
		userController, restaurantController, menuController,
		orderController, paymentController, systemController)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: cors(handlers.LoggingHandler(os.Stdout, router)),
	}

	go func() {
		logrus.WithField("port", port).Info("Foodie API server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("shutdown error")
	}
}
