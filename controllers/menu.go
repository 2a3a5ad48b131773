package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodie-api/models"
)

// MenuController handles cross-restaurant menu item requests.
type MenuController struct {
	MenuItemCollection   *mongo.Collection
	RestaurantCollection *mongo.Collection
}

// NewMenuController creates a new MenuController.
func NewMenuController(db *mongo.Database) *MenuController {
	return &MenuController{
		MenuItemCollection:   db.Collection("menuitems"),
		RestaurantCollection: db.Collection("restaurants"),
	}
}

// menuFilter builds the query for menu listings. The search parameter
// matches name, description and ingredients case-insensitively.
func menuFilter(restaurant primitive.ObjectID, category, search string) bson.M {
	filter := bson.M{}
	if !restaurant.IsZero() {
		filter["restaurant"] = restaurant
	}
	if category != "" {
		filter["category"] = category
	}
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
			bson.M{"ingredients": regex},
		}
	}
	return filter
}

func menuSort() bson.D {
	return bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}
}

// GetMenuItems lists menu items with optional restaurant, category and
// search filters. Restaurants are expanded to a name/rating/deliveryTime
// projection.
func (mc *MenuController) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var restaurantID primitive.ObjectID
	if hex := query.Get("restaurant"); hex != "" {
		var err error
		restaurantID, err = primitive.ObjectIDFromHex(hex)
		if err != nil {
			respondFailure(w, failBadRequest, "Invalid restaurant ID")
			return
		}
	}

	category := query.Get("category")
	if category != "" && !models.ValidCategory(category) {
		respondFailure(w, failBadRequest, "Invalid category: "+category)
		return
	}

	filter := menuFilter(restaurantID, category, query.Get("search"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := mc.MenuItemCollection.Find(ctx, filter, options.Find().SetSort(menuSort()))
	if err != nil {
		respondServerError(w, err)
		return
	}
	defer cursor.Close(ctx)

	var menuItems []models.MenuItem
	if err := cursor.All(ctx, &menuItems); err != nil {
		respondServerError(w, err)
		return
	}

	restaurantIDs := make([]primitive.ObjectID, 0, len(menuItems))
	for _, item := range menuItems {
		restaurantIDs = append(restaurantIDs, item.Restaurant)
	}
	restaurants, err := fetchRestaurantRefs(ctx, mc.RestaurantCollection, restaurantIDs, menuRestaurantProjection)
	if err != nil {
		respondServerError(w, err)
		return
	}

	responses := make([]models.MenuItemResponse, 0, len(menuItems))
	for _, item := range menuItems {
		resp := models.MenuItemResponse{MenuItem: item}
		if ref, ok := restaurants[item.Restaurant]; ok {
			resp.Restaurant = &ref
		}
		responses = append(responses, resp)
	}

	respondJSON(w, http.StatusOK, responses)
}

// GetMenuItemByID returns a single menu item; the restaurant expansion adds
// the address on top of the listing projection.
func (mc *MenuController) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondFailure(w, failBadRequest, "Invalid menu item ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var menuItem models.MenuItem
	err = mc.MenuItemCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&menuItem)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondFailure(w, failNotFound, "Menu item not found")
		return
	}
	if err != nil {
		respondServerError(w, err)
		return
	}

	restaurants, err := fetchRestaurantRefs(ctx, mc.RestaurantCollection,
		[]primitive.ObjectID{menuItem.Restaurant}, menuDetailRestaurantProjection)
	if err != nil {
		respondServerError(w, err)
		return
	}

	resp := models.MenuItemResponse{MenuItem: menuItem}
	if ref, ok := restaurants[menuItem.Restaurant]; ok {
		resp.Restaurant = &ref
	}

	respondJSON(w, http.StatusOK, resp)
}
