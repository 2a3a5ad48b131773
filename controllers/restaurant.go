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

// RestaurantController handles restaurant listing, detail and per-restaurant
// menu requests.
type RestaurantController struct {
	RestaurantCollection *mongo.Collection
	MenuItemCollection   *mongo.Collection
	UserCollection       *mongo.Collection
}

// NewRestaurantController creates a new RestaurantController.
func NewRestaurantController(db *mongo.Database) *RestaurantController {
	return &RestaurantController{
		RestaurantCollection: db.Collection("restaurants"),
		MenuItemCollection:   db.Collection("menuitems"),
		UserCollection:       db.Collection("users"),
	}
}

// restaurantFilter builds the query for restaurant listings. Absent
// parameters match everything.
func restaurantFilter(cuisine, search string) bson.M {
	filter := bson.M{}
	if cuisine != "" {
		filter["cuisine"] = cuisine
	}
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
			bson.M{"cuisine": regex},
		}
	}
	return filter
}

// restaurantSort maps the sortBy parameter to a sort order; unknown or
// absent values fall back to newest first.
func restaurantSort(sortBy string) bson.D {
	switch sortBy {
	case "rating":
		return bson.D{{Key: "rating", Value: -1}}
	case "deliveryTime":
		return bson.D{{Key: "deliveryTime.min", Value: 1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// GetRestaurants lists restaurants with optional cuisine, search and sortBy
// parameters. Owners are expanded to a name/email projection.
func (rc *RestaurantController) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := restaurantFilter(query.Get("cuisine"), query.Get("search"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := rc.RestaurantCollection.Find(ctx, filter,
		options.Find().SetSort(restaurantSort(query.Get("sortBy"))))
	if err != nil {
		respondServerError(w, err)
		return
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		respondServerError(w, err)
		return
	}

	ownerIDs := make([]primitive.ObjectID, 0, len(restaurants))
	for _, restaurant := range restaurants {
		ownerIDs = append(ownerIDs, restaurant.Owner)
	}
	owners, err := fetchUserRefs(ctx, rc.UserCollection, ownerIDs, ownerProjection)
	if err != nil {
		respondServerError(w, err)
		return
	}

	responses := make([]models.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		resp := models.RestaurantResponse{Restaurant: restaurant}
		if owner, ok := owners[restaurant.Owner]; ok {
			resp.Owner = &owner
		}
		responses = append(responses, resp)
	}

	respondJSON(w, http.StatusOK, responses)
}

// GetRestaurantByID returns a single restaurant with its owner expanded.
func (rc *RestaurantController) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondFailure(w, failBadRequest, "Invalid restaurant ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var restaurant models.Restaurant
	err = rc.RestaurantCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondFailure(w, failNotFound, "Restaurant not found")
		return
	}
	if err != nil {
		respondServerError(w, err)
		return
	}

	owners, err := fetchUserRefs(ctx, rc.UserCollection,
		[]primitive.ObjectID{restaurant.Owner}, ownerProjection)
	if err != nil {
		respondServerError(w, err)
		return
	}

	resp := models.RestaurantResponse{Restaurant: restaurant}
	if owner, ok := owners[restaurant.Owner]; ok {
		resp.Owner = &owner
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetRestaurantMenu lists the menu items of one restaurant, optionally
// filtered by category, sorted by category then name.
func (rc *RestaurantController) GetRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondFailure(w, failBadRequest, "Invalid restaurant ID")
		return
	}

	filter := bson.M{"restaurant": id}
	if category := r.URL.Query().Get("category"); category != "" {
		if !models.ValidCategory(category) {
			respondFailure(w, failBadRequest, "Invalid category: "+category)
			return
		}
		filter["category"] = category
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := rc.MenuItemCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		respondServerError(w, err)
		return
	}
	defer cursor.Close(ctx)

	menuItems := []models.MenuItem{}
	if err := cursor.All(ctx, &menuItems); err != nil {
		respondServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, menuItems)
}
