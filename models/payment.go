package models

import "encoding/json"

// PaymentRequest is a payment intent submitted by the client at checkout.
// CustomerInfo and OrderData are opaque to the server and echoed back.
type PaymentRequest struct {
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	CustomerInfo  json.RawMessage `json:"customerInfo,omitempty"`
	OrderData     json.RawMessage `json:"orderData,omitempty"`
}

// PaymentResult is the synthesized outcome of a simulated payment. No
// payment gateway is ever contacted.
type PaymentResult struct {
	Success       bool            `json:"success"`
	TransactionID string          `json:"transactionId"`
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	Timestamp     string          `json:"timestamp"`
	CustomerInfo  json.RawMessage `json:"customerInfo,omitempty"`
	OrderData     json.RawMessage `json:"orderData,omitempty"`
}
