package firestore

import (
	"context"
	"fmt"
	"path"

	"flight-booking-seeder/internal/domain/entity"
	"flight-booking-seeder/internal/domain/repository"
	"flight-booking-seeder/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/firestore/v1"
	"google.golang.org/api/option"
)

const nullValue = "NULL_VALUE"

// NewFirestoreService creates a Firestore REST client. A nil token source
// leaves authentication to opts.
func NewFirestoreService(ctx context.Context, tokenSource oauth2.TokenSource, opts ...option.ClientOption) (*firestore.Service, error) {
	if tokenSource != nil {
		opts = append([]option.ClientOption{option.WithTokenSource(tokenSource)}, opts...)
	}

	service, err := firestore.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore service: %w", err)
	}
	return service, nil
}

// FirestoreFlightRecordRepository appends flight records as Firestore documents
// with server-assigned ids
type FirestoreFlightRecordRepository struct {
	service *firestore.Service
	parent  string
	logger  logger.Logger
}

var _ repository.FlightRecordRepository = (*FirestoreFlightRecordRepository)(nil)

// NewFirestoreFlightRecordRepository creates a new flight record repository
func NewFirestoreFlightRecordRepository(service *firestore.Service, projectID, databaseID string, logger logger.Logger) *FirestoreFlightRecordRepository {
	return &FirestoreFlightRecordRepository{
		service: service,
		parent:  fmt.Sprintf("projects/%s/databases/%s/documents", projectID, databaseID),
		logger:  logger,
	}
}

// Append creates one document in collection and returns its generated id
func (r *FirestoreFlightRecordRepository) Append(ctx context.Context, collection string, record *entity.FlightRecord) (string, error) {
	doc, err := r.service.Projects.Databases.Documents.
		CreateDocument(r.parent, collection, toDocument(record)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to create document for flight %s: %w", record.Number, err)
	}

	id := path.Base(doc.Name)
	r.logger.Debug("Created document", "collection", collection, "documentID", id, "number", record.Number)
	return id, nil
}

// Close is a no-op, the REST client holds no connection
func (r *FirestoreFlightRecordRepository) Close(ctx context.Context) error {
	return nil
}

func toDocument(record *entity.FlightRecord) *firestore.Document {
	return &firestore.Document{
		Fields: map[string]firestore.Value{
			"from_location":   stringValue(record.FromLocation),
			"to_location":     stringValue(record.ToLocation),
			"departure_date":  stringValue(record.DepartureDate),
			"departure_time":  stringValue(record.DepartureTime),
			"arrival_time":    stringValue(record.ArrivalTime),
			"return_date":     optionalStringValue(record.ReturnDate),
			"return_time":     optionalStringValue(record.ReturnTime),
			"class":           stringValue(record.Class),
			"seat_max":        integerValue(record.SeatMax),
			"seat_available":  integerValue(record.SeatAvailable),
			"booked_seats":    integerArray(record.BookedSeats),
			"available_seats": integerArray(record.AvailableSeats),
			"price":           integerValue(record.Price),
			"facilities":      stringArray(record.Facilities),
			"created_at":      stringValue(record.CreatedAt),
			"number":          stringValue(record.Number),
		},
	}
}

func stringValue(s string) firestore.Value {
	return firestore.Value{StringValue: s, ForceSendFields: []string{"StringValue"}}
}

func optionalStringValue(s *string) firestore.Value {
	if s == nil {
		return firestore.Value{NullValue: nullValue}
	}
	return stringValue(*s)
}

func integerValue(n int) firestore.Value {
	return firestore.Value{IntegerValue: int64(n), ForceSendFields: []string{"IntegerValue"}}
}

func integerArray(ns []int) firestore.Value {
	values := make([]*firestore.Value, len(ns))
	for i, n := range ns {
		v := integerValue(n)
		values[i] = &v
	}
	return firestore.Value{ArrayValue: &firestore.ArrayValue{Values: values}}
}

func stringArray(ss []string) firestore.Value {
	values := make([]*firestore.Value, len(ss))
	for i, s := range ss {
		v := stringValue(s)
		values[i] = &v
	}
	return firestore.Value{ArrayValue: &firestore.ArrayValue{Values: values}}
}
