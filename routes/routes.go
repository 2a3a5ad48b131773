package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"foodie-api/controllers"
	"foodie-api/middleware"
	"foodie-api/utils"
)

// RegisterRoutes sets up all the routes for the application. Everything
// under /api except /api/setup is gated on datastore availability.
func RegisterRoutes(
	router *mux.Router,
	dbState *utils.DBState,
	userController *controllers.UserController,
	restaurantController *controllers.RestaurantController,
	menuController *controllers.MenuController,
	orderController *controllers.OrderController,
	paymentController *controllers.PaymentController,
	systemController *controllers.SystemController,
) {
	// Operational routes
	router.HandleFunc("/", systemController.Root).Methods("GET")
	router.HandleFunc("/health", systemController.Health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/setup", systemController.Setup).Methods("GET")

	guarded := api.NewRoute().Subrouter()
	guarded.Use(middleware.RequireDB(dbState))

	// Auth routes
	guarded.HandleFunc("/auth/register", userController.Register).Methods("POST")
	guarded.HandleFunc("/auth/login", userController.Login).Methods("POST")
	guarded.Handle("/auth/profile",
		middleware.AuthMiddleware(http.HandlerFunc(userController.GetProfile))).Methods("GET")

	// Restaurant routes
	guarded.HandleFunc("/restaurants", restaurantController.GetRestaurants).Methods("GET")
	guarded.HandleFunc("/restaurants/{id}", restaurantController.GetRestaurantByID).Methods("GET")
	guarded.HandleFunc("/restaurants/{id}/menu", restaurantController.GetRestaurantMenu).Methods("GET")

	// Menu routes
	guarded.HandleFunc("/menu", menuController.GetMenuItems).Methods("GET")
	guarded.HandleFunc("/menu/{id}", menuController.GetMenuItemByID).Methods("GET")

	// Order routes
	guarded.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	guarded.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	guarded.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")
	guarded.HandleFunc("/orders/{id}/status", orderController.UpdateOrderStatus).Methods("PATCH")

	// Payment simulation
	guarded.HandleFunc("/payment/process", paymentController.ProcessPayment).Methods("POST")

	// Seeding
	guarded.HandleFunc("/seed", systemController.Seed).Methods("POST")
}
