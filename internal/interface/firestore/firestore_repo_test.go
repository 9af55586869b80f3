package firestore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flight-booking-seeder/internal/domain/entity"
	"flight-booking-seeder/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type capturedRequest struct {
	method string
	path   string
	body   map[string]any
}

func newTestRepository(t *testing.T, handler http.HandlerFunc) *FirestoreFlightRecordRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	service, err := NewFirestoreService(context.Background(), nil,
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return NewFirestoreFlightRecordRepository(service, "flight-booking-3f2a1", "(default)", logger.NewNopLogger())
}

func testFlight() *entity.FlightRecord {
	return &entity.FlightRecord{
		FromLocation:   "Tokyo",
		ToLocation:     "London",
		DepartureDate:  "2027-03-14",
		DepartureTime:  "08:05",
		ArrivalTime:    "15:40",
		Class:          entity.ClassEconomy,
		SeatMax:        24,
		SeatAvailable:  23,
		BookedSeats:    []int{9},
		AvailableSeats: []int{1, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
		Price:          100,
		Facilities:     []string{"Air Conditioning", "Food"},
		CreatedAt:      "2026-10-19 22:30:00",
		Number:         "AB12CD34",
	}
}

func TestAppend_CreatesDocument(t *testing.T) {
	var got capturedRequest
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got.body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "projects/flight-booking-3f2a1/databases/(default)/documents/FlightBooking/x1Y2z3"}`))
	})

	id, err := repo.Append(context.Background(), "FlightBooking", testFlight())
	require.NoError(t, err)
	assert.Equal(t, "x1Y2z3", id)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/v1/projects/flight-booking-3f2a1/databases/(default)/documents/FlightBooking", got.path)

	fields := got.body["fields"].(map[string]any)
	assert.Len(t, fields, 16)
	assert.Equal(t, map[string]any{"stringValue": "Tokyo"}, fields["from_location"])
	assert.Equal(t, map[string]any{"stringValue": "AB12CD34"}, fields["number"])
	assert.Equal(t, map[string]any{"integerValue": "24"}, fields["seat_max"])
	assert.Equal(t, map[string]any{"integerValue": "100"}, fields["price"])
	assert.Equal(t, map[string]any{"nullValue": "NULL_VALUE"}, fields["return_date"])
	assert.Equal(t, map[string]any{"nullValue": "NULL_VALUE"}, fields["return_time"])

	booked := fields["booked_seats"].(map[string]any)["arrayValue"].(map[string]any)["values"].([]any)
	assert.Equal(t, []any{map[string]any{"integerValue": "9"}}, booked)

	facilities := fields["facilities"].(map[string]any)["arrayValue"].(map[string]any)["values"].([]any)
	assert.Equal(t, []any{
		map[string]any{"stringValue": "Air Conditioning"},
		map[string]any{"stringValue": "Food"},
	}, facilities)
}

func TestAppend_SurfacesAPIError(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "Missing or insufficient permissions.", "status": "PERMISSION_DENIED"}}`))
	})

	_, err := repo.Append(context.Background(), "FlightBooking", testFlight())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AB12CD34")

	var apiErr *googleapi.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
}

func TestToDocument_RoundTripFields(t *testing.T) {
	flight := testFlight()
	returnDate, returnTime := "2027-03-19", "11:20"
	flight.ReturnDate, flight.ReturnTime = &returnDate, &returnTime

	doc := toDocument(flight)
	assert.Equal(t, "2027-03-19", doc.Fields["return_date"].StringValue)
	assert.Empty(t, doc.Fields["return_date"].NullValue)
	assert.Equal(t, "11:20", doc.Fields["return_time"].StringValue)
	assert.Len(t, doc.Fields["available_seats"].ArrayValue.Values, 23)
}

func TestClose(t *testing.T) {
	repo := NewFirestoreFlightRecordRepository(nil, "p", "(default)", logger.NewNopLogger())
	assert.NoError(t, repo.Close(context.Background()))
}
