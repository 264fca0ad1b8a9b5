package scheduleRepo

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	providerColl  *mongo.Collection
	weeklyColl    *mongo.Collection
	exceptionColl *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	return &MongoScheduleRepo{
		providerColl:  db.Collection("providers"),
		weeklyColl:    db.Collection("weekly_hours"),
		exceptionColl: db.Collection("date_exceptions"),
	}
}

// GetProviderByID retrieves a provider document by ID.
func (repo *MongoScheduleRepo) GetProviderByID(providerID string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var provider models.Provider
	filter := bson.M{"id": providerID}
	if err := repo.providerColl.FindOne(ctx, filter).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("provider", providerID)
		}
		return nil, fmt.Errorf("error fetching provider with id %s: %w", providerID, err)
	}
	return &provider, nil
}

// GetWeeklyHours retrieves the template row for one weekday. A missing row is
// returned as (nil, nil): the resolver treats the gap as closed.
func (repo *MongoScheduleRepo) GetWeeklyHours(providerID string, weekday int) (*models.WeeklyHours, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var hours models.WeeklyHours
	filter := bson.M{"providerId": providerID, "weekday": weekday}
	if err := repo.weeklyColl.FindOne(ctx, filter).Decode(&hours); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching weekly hours: %w", err)
	}
	return &hours, nil
}

// UpsertWeeklyHours overwrites the template row for the given weekday.
// Template rows are never deleted, only overwritten.
func (repo *MongoScheduleRepo) UpsertWeeklyHours(hours *models.WeeklyHours) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": hours.ProviderID, "weekday": hours.Weekday}
	update := bson.M{"$set": hours}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.weeklyColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting weekly hours: %w", err)
	}
	return nil
}

// GetDateException retrieves the exception for (provider, date), or (nil, nil)
// when none exists.
func (repo *MongoScheduleRepo) GetDateException(providerID, date string) (*models.DateException, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var exc models.DateException
	filter := bson.M{"providerId": providerID, "date": date}
	if err := repo.exceptionColl.FindOne(ctx, filter).Decode(&exc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching date exception: %w", err)
	}
	return &exc, nil
}

// UpsertDateException writes the exception for (provider, date). The upsert on
// the compound key keeps at most one exception per provider and date.
func (repo *MongoScheduleRepo) UpsertDateException(exc *models.DateException) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": exc.ProviderID, "date": exc.Date}
	update := bson.M{"$set": exc}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.exceptionColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting date exception: %w", err)
	}
	return nil
}

// DeleteDateException removes the exception for (provider, date).
func (repo *MongoScheduleRepo) DeleteDateException(providerID, date string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID, "date": date}
	res, err := repo.exceptionColl.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("error deleting date exception: %w", err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("date exception", providerID+"/"+date)
	}
	return nil
}
