package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Menu item categories
const (
	CategoryAppetizer = "appetizer"
	CategoryMain      = "main"
	CategoryDessert   = "dessert"
	CategoryBeverage  = "beverage"
	CategorySpecial   = "special"
)

// Dietary tags
const (
	DietaryVegetarian = "vegetarian"
	DietaryVegan      = "vegan"
	DietaryGlutenFree = "gluten-free"
	DietaryDairyFree  = "dairy-free"
	DietaryKeto       = "keto"
	DietaryHalal      = "halal"
)

// NutritionInfo holds optional nutrition facts for a menu item.
type NutritionInfo struct {
	Calories float64 `bson:"calories,omitempty" json:"calories,omitempty"`
	Protein  float64 `bson:"protein,omitempty" json:"protein,omitempty"`
	Carbs    float64 `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Fat      float64 `bson:"fat,omitempty" json:"fat,omitempty"`
}

// MenuItem represents a dish offered by exactly one restaurant.
type MenuItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	Category      string             `bson:"category" json:"category"`
	Restaurant    primitive.ObjectID `bson:"restaurant" json:"restaurant"`
	Image         string             `bson:"image" json:"image"`
	Ingredients   []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	NutritionInfo *NutritionInfo     `bson:"nutritionInfo,omitempty" json:"nutritionInfo,omitempty"`
	Dietary       []string           `bson:"dietary,omitempty" json:"dietary,omitempty"`
	IsAvailable   bool               `bson:"isAvailable" json:"isAvailable"`
	Rating        float64            `bson:"rating" json:"rating"`
	ReviewCount   int                `bson:"reviewCount" json:"reviewCount"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// MenuItemResponse is a menu item with its restaurant reference expanded.
type MenuItemResponse struct {
	MenuItem
	Restaurant *RestaurantRef `json:"restaurant"`
}

// MenuItemRef is the name/price/image projection of a menu item embedded in
// expanded order responses.
type MenuItemRef struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Image string             `bson:"image" json:"image"`
}

// ValidCategory reports whether c is one of the menu item categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryAppetizer, CategoryMain, CategoryDessert, CategoryBeverage, CategorySpecial:
		return true
	}
	return false
}
