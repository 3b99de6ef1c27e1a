package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"launch-control-service/internal/domain/entity"
	"launch-control-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const launchCollection = "launches"

// launchProjection hides storage bookkeeping from callers
var launchProjection = bson.M{
	"_id":       0,
	"createdAt": 0,
	"updatedAt": 0,
}

// MongoLaunchRepository implements LaunchRepository
type MongoLaunchRepository struct {
	collection *mongo.Collection
}

// NewMongoLaunchRepository creates a new launch repository
func NewMongoLaunchRepository(db *mongo.Database) repository.LaunchRepository {
	return &MongoLaunchRepository{
		collection: db.Collection(launchCollection),
	}
}

// EnsureLaunchIndexes creates the unique index on flightNumber. Upserts rely on it
// to never insert the same flight number twice.
func EnsureLaunchIndexes(ctx context.Context, db *mongo.Database) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "flightNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(launchCollection).Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create flightNumber index: %w", err)
	}
	return nil
}

// FindByFlightNumber finds a launch by flight number
func (r *MongoLaunchRepository) FindByFlightNumber(ctx context.Context, flightNumber int) (*entity.Launch, error) {
	opts := options.FindOne().SetProjection(launchProjection)
	return r.findOne(ctx, bson.M{"flightNumber": flightNumber}, opts)
}

// FindAll returns launches in stored order
func (r *MongoLaunchRepository) FindAll(ctx context.Context, query entity.LaunchQuery) ([]*entity.Launch, error) {
	opts := options.Find().SetProjection(launchProjection)
	if query.Skip > 0 {
		opts.SetSkip(query.Skip)
	}
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find launches: %w", err)
	}
	defer cursor.Close(ctx)

	launches := make([]*entity.Launch, 0)
	if err := cursor.All(ctx, &launches); err != nil {
		return nil, fmt.Errorf("failed to decode launches: %w", err)
	}

	return launches, nil
}

// FindLatestByFlightNumber returns the launch with the highest flight number
func (r *MongoLaunchRepository) FindLatestByFlightNumber(ctx context.Context) (*entity.Launch, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "flightNumber", Value: -1}}).
		SetProjection(launchProjection)
	return r.findOne(ctx, bson.M{}, opts)
}

// UpsertByFlightNumber replaces the business fields of the launch with the same
// flight number, or inserts it when none exists
func (r *MongoLaunchRepository) UpsertByFlightNumber(ctx context.Context, launch *entity.Launch) error {
	now := time.Now()

	customers := launch.Customers
	if customers == nil {
		customers = []string{}
	}

	updateDoc := bson.M{
		"flightNumber": launch.FlightNumber,
		"mission":      launch.Mission,
		"rocket":       launch.Rocket,
		"launchDate":   launch.LaunchDate,
		"customers":    customers,
		"upcoming":     launch.Upcoming,
		"success":      launch.Success,
		"updatedAt":    now,
	}
	update := bson.M{
		"$set":         updateDoc,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	if launch.Target != "" {
		updateDoc["target"] = launch.Target
	} else {
		update["$unset"] = bson.M{"target": ""}
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"flightNumber": launch.FlightNumber}

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert launch %d: %w", launch.FlightNumber, err)
	}
	return nil
}

// UpdateByFlightNumber applies a partial update and reports whether a document changed
func (r *MongoLaunchRepository) UpdateByFlightNumber(ctx context.Context, flightNumber int, patch entity.LaunchPatch) (bool, error) {
	if patch.IsEmpty() {
		return false, nil
	}

	set := bson.M{}
	if patch.Upcoming != nil {
		set["upcoming"] = *patch.Upcoming
	}
	if patch.Success != nil {
		set["success"] = *patch.Success
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"flightNumber": flightNumber},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, fmt.Errorf("failed to update launch %d: %w", flightNumber, err)
	}

	return result.ModifiedCount == 1, nil
}

func (r *MongoLaunchRepository) findOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (*entity.Launch, error) {
	var launch entity.Launch
	err := r.collection.FindOne(ctx, filter, opts).Decode(&launch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find launch: %w", err)
	}
	return &launch, nil
}
