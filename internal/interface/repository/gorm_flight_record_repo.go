package repository

import (
	"context"
	"fmt"
	"strconv"

	"flight-booking-seeder/internal/domain/entity"
	"flight-booking-seeder/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightRecordRepository appends flight records to a relational table through gorm
type GormFlightRecordRepository struct {
	db *gorm.DB
}

var (
	_ repository.FlightRecordRepository = (*GormFlightRecordRepository)(nil)
	_ repository.SchemaPreparer         = (*GormFlightRecordRepository)(nil)
)

// NewGormFlightRecordRepository creates a new GORM flight record repository
func NewGormFlightRecordRepository(db *gorm.DB) *GormFlightRecordRepository {
	return &GormFlightRecordRepository{
		db: db,
	}
}

// FlightBooking GORM model for database mapping. The table name is the collection.
type FlightBooking struct {
	ID             uint     `gorm:"primaryKey"`
	FromLocation   string   `gorm:"column:from_location;index:idx_route"`
	ToLocation     string   `gorm:"column:to_location;index:idx_route"`
	DepartureDate  string   `gorm:"column:departure_date;index:idx_route"`
	DepartureTime  string   `gorm:"column:departure_time"`
	ArrivalTime    string   `gorm:"column:arrival_time"`
	ReturnDate     *string  `gorm:"column:return_date"`
	ReturnTime     *string  `gorm:"column:return_time"`
	Class          string   `gorm:"column:class"`
	SeatMax        int      `gorm:"column:seat_max"`
	SeatAvailable  int      `gorm:"column:seat_available"`
	BookedSeats    []int    `gorm:"column:booked_seats;serializer:json"`
	AvailableSeats []int    `gorm:"column:available_seats;serializer:json"`
	Price          int      `gorm:"column:price"`
	Facilities     []string `gorm:"column:facilities;serializer:json"`
	GeneratedAt    string   `gorm:"column:created_at"`
	Number         string   `gorm:"column:number;index"`
}

// Prepare creates the table for collection if it does not exist yet
func (r *GormFlightRecordRepository) Prepare(ctx context.Context, collection string) error {
	if err := r.db.WithContext(ctx).Table(collection).AutoMigrate(&FlightBooking{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", collection, err)
	}
	return nil
}

// Append inserts one flight record and returns its row id
func (r *GormFlightRecordRepository) Append(ctx context.Context, collection string, record *entity.FlightRecord) (string, error) {
	row := toFlightBooking(record)

	result := r.db.WithContext(ctx).Table(collection).Create(&row)
	if result.Error != nil {
		return "", fmt.Errorf("failed to insert flight %s: %w", record.Number, result.Error)
	}

	return strconv.FormatUint(uint64(row.ID), 10), nil
}

// Close closes the underlying connection pool
func (r *GormFlightRecordRepository) Close(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Convert domain entity to GORM model
func toFlightBooking(record *entity.FlightRecord) FlightBooking {
	return FlightBooking{
		FromLocation:   record.FromLocation,
		ToLocation:     record.ToLocation,
		DepartureDate:  record.DepartureDate,
		DepartureTime:  record.DepartureTime,
		ArrivalTime:    record.ArrivalTime,
		ReturnDate:     record.ReturnDate,
		ReturnTime:     record.ReturnTime,
		Class:          record.Class,
		SeatMax:        record.SeatMax,
		SeatAvailable:  record.SeatAvailable,
		BookedSeats:    record.BookedSeats,
		AvailableSeats: record.AvailableSeats,
		Price:          record.Price,
		Facilities:     record.Facilities,
		GeneratedAt:    record.CreatedAt,
		Number:         record.Number,
	}
}
