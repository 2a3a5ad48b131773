// Package pricing validates proposed orders and computes their
// authoritative monetary totals.
package pricing

import (
	"math"

	"foodie-api/models"
)

// TaxRate is the tax applied to the order subtotal. The server-computed
// value is authoritative; client-side previews may differ.
const TaxRate = 0.08

// ValidationError describes a rejected order payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidateCreateOrder checks a proposed order for structural completeness.
// Checks run in a fixed sequence: required fields first, then the item
// list, then each line item.
func ValidateCreateOrder(req *models.CreateOrderRequest) error {
	if req.Customer == "" || req.Restaurant == "" || req.Items == nil || req.DeliveryFee == nil {
		return ValidationError{
			Field:   "order",
			Message: "Missing required fields: customer, restaurant, items, or deliveryFee",
		}
	}

	if len(req.Items) == 0 {
		return ValidationError{
			Field:   "items",
			Message: "Order must include at least one item",
		}
	}

	for _, item := range req.Items {
		if item.Price <= 0 || item.Quantity <= 0 {
			return ValidationError{
				Field:   "items",
				Message: "Each item must include price and quantity",
			}
		}
	}

	if *req.DeliveryFee < 0 {
		return ValidationError{
			Field:   "deliveryFee",
			Message: "Delivery fee must not be negative",
		}
	}

	return nil
}

// Totals computes subtotal, tax and total for the given line items and
// delivery fee. Tax and total are rounded to 2 decimal places.
func Totals(items []models.OrderItemRequest, deliveryFee float64) (subtotal, tax, total float64) {
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	tax = round2(subtotal * TaxRate)
	total = round2(subtotal + deliveryFee + tax)
	return subtotal, tax, total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
