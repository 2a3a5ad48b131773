package controllers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodie-api/models"
)

// Per-endpoint field projections for reference expansion. Each endpoint
// declares exactly which fields of a referenced entity it exposes; nothing
// else leaks into responses.
var (
	ownerProjection                = bson.M{"name": 1, "email": 1}
	customerProjection             = bson.M{"name": 1, "email": 1, "phone": 1}
	orderRestaurantProjection      = bson.M{"name": 1, "address": 1, "contact": 1}
	menuRestaurantProjection       = bson.M{"name": 1, "rating": 1, "deliveryTime": 1}
	menuDetailRestaurantProjection = bson.M{"name": 1, "rating": 1, "deliveryTime": 1, "address": 1}
	orderMenuItemProjection        = bson.M{"name": 1, "price": 1, "image": 1}
)

func dedupeIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// fetchUserRefs loads the projected users for the given ids in one query.
// Ids with no matching document are simply absent from the result, so a
// dangling reference expands to null rather than an error.
func fetchUserRefs(ctx context.Context, coll *mongo.Collection, ids []primitive.ObjectID, projection bson.M) (map[primitive.ObjectID]models.UserRef, error) {
	refs := make(map[primitive.ObjectID]models.UserRef)
	if len(ids) == 0 {
		return refs, nil
	}

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": dedupeIDs(ids)}},
		options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var ref models.UserRef
		if err := cursor.Decode(&ref); err != nil {
			return nil, err
		}
		refs[ref.ID] = ref
	}
	return refs, cursor.Err()
}

func fetchRestaurantRefs(ctx context.Context, coll *mongo.Collection, ids []primitive.ObjectID, projection bson.M) (map[primitive.ObjectID]models.RestaurantRef, error) {
	refs := make(map[primitive.ObjectID]models.RestaurantRef)
	if len(ids) == 0 {
		return refs, nil
	}

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": dedupeIDs(ids)}},
		options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var ref models.RestaurantRef
		if err := cursor.Decode(&ref); err != nil {
			return nil, err
		}
		refs[ref.ID] = ref
	}
	return refs, cursor.Err()
}

func fetchMenuItemRefs(ctx context.Context, coll *mongo.Collection, ids []primitive.ObjectID, projection bson.M) (map[primitive.ObjectID]models.MenuItemRef, error) {
	refs := make(map[primitive.ObjectID]models.MenuItemRef)
	if len(ids) == 0 {
		return refs, nil
	}

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": dedupeIDs(ids)}},
		options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var ref models.MenuItemRef
		if err := cursor.Decode(&ref); err != nil {
			return nil, err
		}
		refs[ref.ID] = ref
	}
	return refs, cursor.Err()
}
