package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address represents a restaurant's street address with map coordinates.
type Address struct {
	Street      string      `bson:"street" json:"street"`
	City        string      `bson:"city" json:"city"`
	State       string      `bson:"state" json:"state"`
	ZipCode     string      `bson:"zipCode" json:"zipCode"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Contact holds a restaurant's contact details.
type Contact struct {
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email" json:"email"`
}

// DeliveryWindow is the estimated delivery time range in minutes.
type DeliveryWindow struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

// DayHours is the opening and closing time for one weekday, as "HH:MM".
type DayHours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// Restaurant represents a restaurant profile. Each restaurant is owned by
// exactly one user with the "restaurant" role.
type Restaurant struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string              `bson:"name" json:"name"`
	Description    string              `bson:"description" json:"description"`
	Cuisine        []string            `bson:"cuisine" json:"cuisine"`
	Address        Address             `bson:"address" json:"address"`
	Contact        Contact             `bson:"contact" json:"contact"`
	Owner          primitive.ObjectID  `bson:"owner" json:"owner"`
	Rating         float64             `bson:"rating" json:"rating"`
	ReviewCount    int                 `bson:"reviewCount" json:"reviewCount"`
	DeliveryTime   DeliveryWindow      `bson:"deliveryTime" json:"deliveryTime"`
	DeliveryFee    float64             `bson:"deliveryFee" json:"deliveryFee"`
	MinimumOrder   float64             `bson:"minimumOrder" json:"minimumOrder"`
	IsOpen         bool                `bson:"isOpen" json:"isOpen"`
	OperatingHours map[string]DayHours `bson:"operatingHours,omitempty" json:"operatingHours,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
}

// RestaurantResponse is a restaurant with its owner reference expanded to a
// name/email projection.
type RestaurantResponse struct {
	Restaurant
	Owner *UserRef `json:"owner"`
}

// RestaurantRef is the partial projection of a restaurant embedded in
// expanded responses. Menu listings project name/rating/deliveryTime, the
// menu detail adds the address, and orders project name/address/contact.
type RestaurantRef struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Rating       *float64           `bson:"rating,omitempty" json:"rating,omitempty"`
	DeliveryTime *DeliveryWindow    `bson:"deliveryTime,omitempty" json:"deliveryTime,omitempty"`
	Address      *Address           `bson:"address,omitempty" json:"address,omitempty"`
	Contact      *Contact           `bson:"contact,omitempty" json:"contact,omitempty"`
}
