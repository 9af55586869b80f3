package repository

import (
	"context"
	"fmt"

	"flight-booking-seeder/internal/domain/entity"
	"flight-booking-seeder/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoFlightRecordRepository appends flight records to MongoDB collections
type MongoFlightRecordRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

var (
	_ repository.FlightRecordRepository = (*MongoFlightRecordRepository)(nil)
	_ repository.SchemaPreparer         = (*MongoFlightRecordRepository)(nil)
)

// NewMongoFlightRecordRepository creates a new flight record repository
func NewMongoFlightRecordRepository(client *mongo.Client, db *mongo.Database) *MongoFlightRecordRepository {
	return &MongoFlightRecordRepository{
		client: client,
		db:     db,
	}
}

// Prepare creates the lookup indexes the flight search filters on.
// None of them is unique: numbers are only unique within one batch.
func (r *MongoFlightRecordRepository) Prepare(ctx context.Context, collection string) error {
	// Index on number for single-flight lookups
	numberIndex := mongo.IndexModel{
		Keys: bson.M{"number": 1},
	}

	// Compound index for route and date searches
	routeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "from_location", Value: 1},
			{Key: "to_location", Value: 1},
			{Key: "departure_date", Value: 1},
		},
	}

	// Index on class for filtering
	classIndex := mongo.IndexModel{
		Keys: bson.M{"class": 1},
	}

	_, err := r.db.Collection(collection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		numberIndex,
		routeIndex,
		classIndex,
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
	}
	return nil
}

// Append inserts one flight record and returns the assigned document id
func (r *MongoFlightRecordRepository) Append(ctx context.Context, collection string, record *entity.FlightRecord) (string, error) {
	result, err := r.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to insert flight %s: %w", record.Number, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(result.InsertedID), nil
}

// Close disconnects the client
func (r *MongoFlightRecordRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
