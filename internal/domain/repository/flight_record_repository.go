package repository

import (
	"context"

	"flight-booking-seeder/internal/domain/entity"
)

// FlightRecordRepository is the append-only sink flight records are written to
type FlightRecordRepository interface {
	// Append stores record in collection and returns the identifier the sink assigned
	Append(ctx context.Context, collection string, record *entity.FlightRecord) (string, error)
	// Close releases the underlying client
	Close(ctx context.Context) error
}

// SchemaPreparer is implemented by sinks that create indexes or tables before the first write
type SchemaPreparer interface {
	Prepare(ctx context.Context, collection string) error
}
