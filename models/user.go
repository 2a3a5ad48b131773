package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleCustomer   = "customer"
	RoleRestaurant = "restaurant"
)

// User represents a registered account: a customer placing orders or a
// restaurant owner.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Phone     string             `bson:"phone" json:"phone"`
	Role      string             `bson:"role" json:"role"` // "customer" or "restaurant"
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserRef is the partial projection of a user embedded in expanded
// responses. Which fields are populated depends on the endpoint's
// projection: restaurant listings expand the owner to name/email, orders
// expand the customer to name/email/phone.
type UserRef struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
