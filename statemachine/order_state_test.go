package statemachine

import (
	"testing"

	"foodie-api/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr bool
	}{
		{name: "pending to confirmed", from: models.StatusPending, to: models.StatusConfirmed, wantErr: false},
		{name: "pending to cancelled", from: models.StatusPending, to: models.StatusCancelled, wantErr: false},
		{name: "confirmed to preparing", from: models.StatusConfirmed, to: models.StatusPreparing, wantErr: false},
		{name: "preparing to ready", from: models.StatusPreparing, to: models.StatusReady, wantErr: false},
		{name: "preparing to cancelled", from: models.StatusPreparing, to: models.StatusCancelled, wantErr: false},
		{name: "ready to picked-up", from: models.StatusReady, to: models.StatusPickedUp, wantErr: false},
		{name: "picked-up to delivered", from: models.StatusPickedUp, to: models.StatusDelivered, wantErr: false},
		{name: "pending cannot skip to delivered", from: models.StatusPending, to: models.StatusDelivered, wantErr: true},
		{name: "ready cannot be cancelled", from: models.StatusReady, to: models.StatusCancelled, wantErr: true},
		{name: "delivered is terminal", from: models.StatusDelivered, to: models.StatusPending, wantErr: true},
		{name: "cancelled is terminal", from: models.StatusCancelled, to: models.StatusConfirmed, wantErr: true},
		{name: "no self transition", from: models.StatusPending, to: models.StatusPending, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("CanTransition(%s, %s) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
		models.StatusReady, models.StatusPickedUp, models.StatusDelivered,
		models.StatusCancelled,
	} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%s) = false, want true", s)
		}
	}

	for _, s := range []models.OrderStatus{"", "shipped", "PENDING", "done"} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true, want false", s)
		}
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPending)
	if len(nexts) != 2 {
		t.Fatalf("ValidTransitionsFrom(pending) = %v, want 2 states", nexts)
	}

	if nexts := ValidTransitionsFrom(models.StatusDelivered); nexts != nil {
		t.Errorf("ValidTransitionsFrom(delivered) = %v, want none", nexts)
	}
}
