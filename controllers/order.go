package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodie-api/models"
	"foodie-api/pricing"
	"foodie-api/statemachine"
	"foodie-api/utils"
)

// OrderController handles order creation, listing, detail and status
// updates.
type OrderController struct {
	OrderCollection      *mongo.Collection
	UserCollection       *mongo.Collection
	RestaurantCollection *mongo.Collection
	MenuItemCollection   *mongo.Collection
	EmailService         *utils.EmailService
}

// NewOrderController creates a new OrderController.
func NewOrderController(db *mongo.Database, emailService *utils.EmailService) *OrderController {
	return &OrderController{
		OrderCollection:      db.Collection("orders"),
		UserCollection:       db.Collection("users"),
		RestaurantCollection: db.Collection("restaurants"),
		MenuItemCollection:   db.Collection("menuitems"),
		EmailService:         emailService,
	}
}

// orderFilter builds the query for order listings.
func orderFilter(customer, restaurant primitive.ObjectID, status string) bson.M {
	filter := bson.M{}
	if !customer.IsZero() {
		filter["customer"] = customer
	}
	if !restaurant.IsZero() {
		filter["restaurant"] = restaurant
	}
	if status != "" {
		filter["status"] = status
	}
	return filter
}

// CreateOrder validates a proposed order, computes authoritative totals,
// persists it and returns the expanded record. The insert and the
// expand-and-read that follows are two separate round trips; a concurrent
// status write between them is reflected in whichever read wins.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, failBadRequest, "Invalid request body")
		return
	}

	if err := pricing.ValidateCreateOrder(&req); err != nil {
		respondFailure(w, failBadRequest, err.Error())
		return
	}

	customerID, err := primitive.ObjectIDFromHex(req.Customer)
	if err != nil {
		respondFailure(w, failBadRequest, "Invalid customer ID")
		return
	}
	restaurantID, err := primitive.ObjectIDFromHex(req.Restaurant)
	if err != nil {
		respondFailure(w, failBadRequest, "Invalid restaurant ID")
		return
	}

	status := models.StatusPending
	if req.Status != "" {
		status = models.OrderStatus(req.Status)
		if !statemachine.IsValidStatus(status) {
			respondFailure(w, failBadRequest, "Invalid status: "+req.Status)
			return
		}
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, err := primitive.ObjectIDFromHex(item.MenuItem)
		if err != nil {
			respondFailure(w, failBadRequest, "Invalid menu item ID")
			return
		}
		items = append(items, models.OrderItem{
			MenuItem: menuItemID,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	subtotal, tax, total := pricing.Totals(req.Items, *req.DeliveryFee)

	now := time.Now().UTC()
	order := models.Order{
		Customer:    customerID,
		Restaurant:  restaurantID,
		Items:       items,
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: *req.DeliveryFee,
		Total:       total,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := oc.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		respondServerError(w, err)
		return
	}
	order.ID = result.InsertedID.(primitive.ObjectID)

	logrus.WithFields(logrus.Fields{
		"order":    order.ID.Hex(),
		"customer": order.Customer.Hex(),
		"subtotal": subtotal,
		"tax":      tax,
		"total":    total,
	}).Info("order created")

	resp, err := oc.expandOrder(ctx, order)
	if err != nil {
		// The order already exists at this point; there is no
		// compensating delete for a failed read-back.
		respondServerError(w, err)
		return
	}

	if oc.EmailService != nil && resp.Customer != nil && resp.Customer.Email != "" {
		go func(email, name string, order models.OrderResponse) {
			if err := oc.EmailService.SendOrderConfirmation(email, name, order); err != nil {
				logrus.WithError(err).WithField("email", email).Error("failed to send order confirmation")
			}
		}(resp.Customer.Email, resp.Customer.Name, resp)
	}

	respondJSON(w, http.StatusCreated, resp)
}

// GetOrders lists orders with optional customer, restaurant and status
// filters, newest first, all references expanded.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var customerID, restaurantID primitive.ObjectID
	var err error
	if hex := query.Get("customer"); hex != "" {
		if customerID, err = primitive.ObjectIDFromHex(hex); err != nil {
			respondFailure(w, failBadRequest, "Invalid customer ID")
			return
		}
	}
	if hex := query.Get("restaurant"); hex != "" {
		if restaurantID, err = primitive.ObjectIDFromHex(hex); err != nil {
			respondFailure(w, failBadRequest, "Invalid restaurant ID")
			return
		}
	}

	filter := orderFilter(customerID, restaurantID, query.Get("status"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := oc.OrderCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		respondServerError(w, err)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		respondServerError(w, err)
		return
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp, err := oc.expandOrder(ctx, order)
		if err != nil {
			respondServerError(w, err)
			return
		}
		responses = append(responses, resp)
	}

	respondJSON(w, http.StatusOK, responses)
}

// GetOrderByID returns a single expanded order or 404.
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondFailure(w, failBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	err = oc.OrderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondFailure(w, failNotFound, "Order not found")
		return
	}
	if err != nil {
		respondServerError(w, err)
		return
	}

	resp, err := oc.expandOrder(ctx, order)
	if err != nil {
		respondServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// UpdateOrderStatus moves an order to a new status. The new status must be
// a known value and reachable from the current one per the transition
// table.
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondFailure(w, failBadRequest, "Invalid order ID")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondFailure(w, failBadRequest, "Invalid request body")
		return
	}
	if body.Status == "" {
		respondFailure(w, failBadRequest, "Missing status in request body")
		return
	}

	newStatus := models.OrderStatus(body.Status)
	if !statemachine.IsValidStatus(newStatus) {
		respondFailure(w, failBadRequest, "Invalid status: "+body.Status)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	err = oc.OrderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondFailure(w, failNotFound, "Order not found")
		return
	}
	if err != nil {
		respondServerError(w, err)
		return
	}

	if err := statemachine.CanTransition(order.Status, newStatus); err != nil {
		respondFailure(w, failBadRequest, err.Error())
		return
	}

	_, err = oc.OrderCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": newStatus, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		respondServerError(w, err)
		return
	}

	err = oc.OrderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		respondServerError(w, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"order":  order.ID.Hex(),
		"status": order.Status,
	}).Info("order status updated")

	resp, err := oc.expandOrder(ctx, order)
	if err != nil {
		respondServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// expandOrder replaces the order's stored references with their declared
// projections: customer name/email/phone, restaurant name/address/contact,
// menu items name/price/image.
func (oc *OrderController) expandOrder(ctx context.Context, order models.Order) (models.OrderResponse, error) {
	resp := models.OrderResponse{
		ID:          order.ID,
		Items:       make([]models.OrderItemResponse, 0, len(order.Items)),
		Subtotal:    order.Subtotal,
		Tax:         order.Tax,
		DeliveryFee: order.DeliveryFee,
		Total:       order.Total,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}

	customers, err := fetchUserRefs(ctx, oc.UserCollection,
		[]primitive.ObjectID{order.Customer}, customerProjection)
	if err != nil {
		return resp, err
	}
	if customer, ok := customers[order.Customer]; ok {
		resp.Customer = &customer
	}

	restaurants, err := fetchRestaurantRefs(ctx, oc.RestaurantCollection,
		[]primitive.ObjectID{order.Restaurant}, orderRestaurantProjection)
	if err != nil {
		return resp, err
	}
	if restaurant, ok := restaurants[order.Restaurant]; ok {
		resp.Restaurant = &restaurant
	}

	menuItemIDs := make([]primitive.ObjectID, 0, len(order.Items))
	for _, item := range order.Items {
		menuItemIDs = append(menuItemIDs, item.MenuItem)
	}
	menuItems, err := fetchMenuItemRefs(ctx, oc.MenuItemCollection, menuItemIDs, orderMenuItemProjection)
	if err != nil {
		return resp, err
	}

	for _, item := range order.Items {
		itemResp := models.OrderItemResponse{
			Price:    item.Price,
			Quantity: item.Quantity,
		}
		if ref, ok := menuItems[item.MenuItem]; ok {
			itemResp.MenuItem = &ref
		}
		resp.Items = append(resp.Items, itemResp)
	}

	return resp, nil
}
