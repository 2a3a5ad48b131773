package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the closed set of states an order moves through.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusPickedUp  OrderStatus = "picked-up"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a line item within an order. Price and quantity are
// snapshots taken at order time, not live references.
type OrderItem struct {
	MenuItem primitive.ObjectID `bson:"menuItem" json:"menuItem"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Order represents a placed order for one customer at one restaurant.
// Subtotal, tax and total are computed server-side at creation time.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Customer    primitive.ObjectID `bson:"customer" json:"customer"`
	Restaurant  primitive.ObjectID `bson:"restaurant" json:"restaurant"`
	Items       []OrderItem        `bson:"items" json:"items"`
	Subtotal    float64            `bson:"subtotal" json:"subtotal"`
	Tax         float64            `bson:"tax" json:"tax"`
	DeliveryFee float64            `bson:"deliveryFee" json:"deliveryFee"`
	Total       float64            `bson:"total" json:"total"`
	Status      OrderStatus        `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderItemRequest is a proposed line item on order creation.
type OrderItemRequest struct {
	MenuItem string  `json:"menuItem"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateOrderRequest is the order creation payload. DeliveryFee is a
// pointer so a missing field can be told apart from a zero fee.
type CreateOrderRequest struct {
	Customer    string             `json:"customer"`
	Restaurant  string             `json:"restaurant"`
	Items       []OrderItemRequest `json:"items"`
	DeliveryFee *float64           `json:"deliveryFee"`
	Status      string             `json:"status"`
}

// OrderItemResponse is a line item with its menu item reference expanded.
type OrderItemResponse struct {
	MenuItem *MenuItemRef `json:"menuItem"`
	Price    float64      `json:"price"`
	Quantity int          `json:"quantity"`
}

// OrderResponse is an order with customer, restaurant and menu item
// references expanded to their per-endpoint projections.
type OrderResponse struct {
	ID          primitive.ObjectID  `json:"id"`
	Customer    *UserRef            `json:"customer"`
	Restaurant  *RestaurantRef      `json:"restaurant"`
	Items       []OrderItemResponse `json:"items"`
	Subtotal    float64             `json:"subtotal"`
	Tax         float64             `json:"tax"`
	DeliveryFee float64             `json:"deliveryFee"`
	Total       float64             `json:"total"`
	Status      OrderStatus         `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}
