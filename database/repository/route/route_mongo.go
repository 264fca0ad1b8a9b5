package routeRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hoofline/database"
	"hoofline/models"
	"hoofline/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRouteRepo implements RouteRepository using MongoDB.
type MongoRouteRepo struct {
	routeColl *mongo.Collection
}

// NewMongoRouteRepo constructs a new instance of MongoRouteRepo.
func NewMongoRouteRepo() RouteRepository {
	db := database.DB()
	return &MongoRouteRepo{
		routeColl: db.Collection("route_orders"),
	}
}

func (repo *MongoRouteRepo) GetByID(routeID string) (*models.RouteOrder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var route models.RouteOrder
	if err := repo.routeColl.FindOne(ctx, bson.M{"id": routeID}).Decode(&route); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("route", routeID)
		}
		return nil, fmt.Errorf("error fetching route %s: %w", routeID, err)
	}
	return &route, nil
}

func (repo *MongoRouteRepo) CreateRoute(route *models.RouteOrder) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.routeColl.InsertOne(ctx, route); err != nil {
		return fmt.Errorf("error creating route: %w", err)
	}
	return nil
}

func (repo *MongoRouteRepo) ReplaceStops(routeID string, stops []models.RouteStop, estimated bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"stops":     stops,
		"estimated": estimated,
		"updatedAt": time.Now(),
	}}
	res, err := repo.routeColl.UpdateOne(ctx, bson.M{"id": routeID}, update)
	if err != nil {
		return fmt.Errorf("error replacing route stops: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("route", routeID)
	}
	return nil
}

func (repo *MongoRouteRepo) UpdateStatus(routeID string, status models.RouteOrderStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := repo.routeColl.UpdateOne(ctx, bson.M{"id": routeID}, update)
	if err != nil {
		return fmt.Errorf("error updating route status: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("route", routeID)
	}
	return nil
}

func (repo *MongoRouteRepo) UpdateStopStatus(routeID, stopID string, status models.RouteStopStatus, note string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":    routeID,
		"stops": bson.M{"$elemMatch": bson.M{"id": stopID}},
	}
	set := bson.M{
		"stops.$.status": status,
		"updatedAt":      time.Now(),
	}
	if note != "" {
		set["stops.$.note"] = note
	}
	res, err := repo.routeColl.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating stop status: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("route stop", routeID+"/"+stopID)
	}
	return nil
}
