package repository

import (
	"context"
	"testing"

	"flight-booking-seeder/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func testFlight() *entity.FlightRecord {
	returnDate, returnTime := "2026-11-08", "06:45"
	return &entity.FlightRecord{
		FromLocation:   "Paris",
		ToLocation:     "Sydney",
		DepartureDate:  "2026-11-03",
		DepartureTime:  "23:10",
		ArrivalTime:    "07:25",
		ReturnDate:     &returnDate,
		ReturnTime:     &returnTime,
		Class:          entity.ClassBusiness,
		SeatMax:        24,
		SeatAvailable:  22,
		BookedSeats:    []int{17, 3},
		AvailableSeats: []int{1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 18, 19, 20, 21, 22, 23, 24},
		Price:          350,
		Facilities:     []string{"Air Conditioning", "Food", "WiFi", "Coffee"},
		CreatedAt:      "2026-10-19 22:30:00",
		Number:         "Q7W2ZK91",
	}
}

func TestMongoFlightRecordRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("append inserts the record", func(mt *mtest.T) {
		repo := NewMongoFlightRecordRepository(mt.Client, mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.Append(context.Background(), mt.Coll.Name(), testFlight())
		require.NoError(mt, err)
		assert.Len(mt, id, 24, "hex object id")

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "insert", started.CommandName)

		docs := started.Command.Lookup("documents").Array()
		values, err := docs.Values()
		require.NoError(mt, err)
		require.Len(mt, values, 1)

		doc := values[0].Document()
		assert.Equal(mt, "Q7W2ZK91", doc.Lookup("number").StringValue())
		assert.Equal(mt, "Paris", doc.Lookup("from_location").StringValue())
		assert.Equal(mt, "2026-11-08", doc.Lookup("return_date").StringValue())
		assert.EqualValues(mt, 24, doc.Lookup("seat_max").AsInt64())
		assert.Equal(mt, bson.TypeArray, doc.Lookup("facilities").Type)
	})

	mt.Run("one-way record stores null return fields", func(mt *mtest.T) {
		repo := NewMongoFlightRecordRepository(mt.Client, mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		flight := testFlight()
		flight.ReturnDate, flight.ReturnTime = nil, nil

		_, err := repo.Append(context.Background(), mt.Coll.Name(), flight)
		require.NoError(mt, err)

		values, err := mt.GetStartedEvent().Command.Lookup("documents").Array().Values()
		require.NoError(mt, err)
		doc := values[0].Document()
		assert.Equal(mt, bson.TypeNull, doc.Lookup("return_date").Type)
		assert.Equal(mt, bson.TypeNull, doc.Lookup("return_time").Type)
	})

	mt.Run("append surfaces write errors", func(mt *mtest.T) {
		repo := NewMongoFlightRecordRepository(mt.Client, mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Append(context.Background(), mt.Coll.Name(), testFlight())
		require.Error(mt, err)
		assert.True(mt, mongo.IsDuplicateKeyError(err))
		assert.Contains(mt, err.Error(), "Q7W2ZK91")
	})

	mt.Run("prepare creates indexes", func(mt *mtest.T) {
		repo := NewMongoFlightRecordRepository(mt.Client, mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.Prepare(context.Background(), mt.Coll.Name()))
		assert.Equal(mt, "createIndexes", mt.GetStartedEvent().CommandName)
	})
}
