package pricing

import (
	"math"
	"testing"

	"foodie-api/models"
)

func fee(v float64) *float64 { return &v }

func TestValidateCreateOrder(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.CreateOrderRequest
		wantErr bool
	}{
		{
			name: "valid order",
			req: &models.CreateOrderRequest{
				Customer:   "64f1b2a4c8e4fa0012345678",
				Restaurant: "64f1b2a4c8e4fa0087654321",
				Items: []models.OrderItemRequest{
					{MenuItem: "64f1b2a4c8e4fa0011112222", Price: 350, Quantity: 2},
				},
				DeliveryFee: fee(49),
			},
			wantErr: false,
		},
		{
			name: "missing customer",
			req: &models.CreateOrderRequest{
				Restaurant: "64f1b2a4c8e4fa0087654321",
				Items: []models.OrderItemRequest{
					{MenuItem: "64f1b2a4c8e4fa0011112222", Price: 350, Quantity: 2},
				},
				DeliveryFee: fee(49),
			},
			wantErr: true,
		},
		{
			name: "missing delivery fee",
			req: &models.CreateOrderRequest{
				Customer:   "64f1b2a4c8e4fa0012345678",
				Restaurant: "64f1b2a4c8e4fa0087654321",
				Items: []models.OrderItemRequest{
					{MenuItem: "64f1b2a4c8e4fa0011112222", Price: 350, Quantity: 2},
				},
			},
			wantErr: true,
		},
		{
			name: "zero delivery fee is allowed",
			req: &models.CreateOrderRequest{
				Customer:   "64f1b2a4c8e4fa0012345678",
				Restaurant: "64f1b2a4c8e4fa0087654321",
				Items: []models.OrderItemRequest{
					{MenuItem: "64f1b2a4c8e4fa0011112222", Price: 350, Quantity: 2},
				},
				DeliveryFee: fee(0),
			},
			wantErr: false,
		},
		{
			name: "empty items",
			req: &models.CreateOrderRequest{
				Customer:    "64f1b2a4c8e4fa0012345678",
				Restaurant:  "64f1b2a4c8e4fa0087654321",
				Items:       []models.OrderItemRequest{},
				DeliveryFee: fee(49),
			},
			wantErr: true,
		},
		{
			name: "item missing price",
			req: &models.CreateOrderRequest{
				Customer:   "64f1b2a4c8e4fa0012345678",
				Restaurant: "64f1b2a4c8e4fa0087654321",
				Items: []models.OrderItemRequest{
					{MenuItem: "64f1b2a4c8e4fa0011112222", Quantity: 2},
				},
				DeliveryFee: fee(49),
			},
			wantErr: true,
		},
		{
			name: "item missing quantity",
			req: &models.CreateOrderRequest{
				Customer:   "64f1b2a4c8e4fa0012345678",
				Restaurant: "64f1b2a4c8e4fa0087654321",
				Items: []models.OrderItemRequest{
					{MenuItem: "64f1b2a4c8e4fa0011112222", Price: 350},
				},
				DeliveryFee: fee(49),
			},
			wantErr: true,
		},
		{
			name: "negative quantity",
			req: &models.CreateOrderRequest{
				Customer:   "64f1b2a4c8e4fa0012345678",
				Restaurant: "64f1b2a4c8e4fa0087654321",
				Items: []models.OrderItemRequest{
					{MenuItem: "64f1b2a4c8e4fa0011112222", Price: 350, Quantity: -1},
				},
				DeliveryFee: fee(49),
			},
			wantErr: true,
		},
		{
			name: "negative delivery fee",
			req: &models.CreateOrderRequest{
				Customer:   "64f1b2a4c8e4fa0012345678",
				Restaurant: "64f1b2a4c8e4fa0087654321",
				Items: []models.OrderItemRequest{
					{MenuItem: "64f1b2a4c8e4fa0011112222", Price: 350, Quantity: 2},
				},
				DeliveryFee: fee(-5),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateOrder(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.OrderItemRequest
		deliveryFee  float64
		wantSubtotal float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name: "two pizzas and a tiramisu",
			items: []models.OrderItemRequest{
				{Price: 350, Quantity: 2},
				{Price: 220, Quantity: 1},
			},
			deliveryFee:  49,
			wantSubtotal: 920,
			wantTax:      73.60,
			wantTotal:    1042.60,
		},
		{
			name: "single item, free delivery",
			items: []models.OrderItemRequest{
				{Price: 100, Quantity: 1},
			},
			deliveryFee:  0,
			wantSubtotal: 100,
			wantTax:      8,
			wantTotal:    108,
		},
		{
			name: "tax rounds to 2 decimal places",
			items: []models.OrderItemRequest{
				{Price: 33.33, Quantity: 3},
			},
			deliveryFee:  10,
			wantSubtotal: 99.99,
			wantTax:      8.00, // 7.9992 rounds up
			wantTotal:    117.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, tax, total := Totals(tt.items, tt.deliveryFee)
			if !almostEqual(subtotal, tt.wantSubtotal) {
				t.Errorf("Totals() subtotal = %v, want %v", subtotal, tt.wantSubtotal)
			}
			if !almostEqual(tax, tt.wantTax) {
				t.Errorf("Totals() tax = %v, want %v", tax, tt.wantTax)
			}
			if !almostEqual(total, tt.wantTotal) {
				t.Errorf("Totals() total = %v, want %v", total, tt.wantTotal)
			}
		})
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
