package router

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"flight-booking-seeder/internal/domain/repository"
	"flight-booking-seeder/pkg/logger"
)

var ErrUnknownSink = errors.New("unknown sink driver")

// SinkFactory opens a connected flight record sink
type SinkFactory func(ctx context.Context) (repository.FlightRecordRepository, error)

// SinkRouter routes a configured driver name to the factory that opens it
type SinkRouter struct {
	factories map[string]SinkFactory
	logger    logger.Logger
}

// NewSinkRouter creates a new sink router
func NewSinkRouter(logger logger.Logger) *SinkRouter {
	return &SinkRouter{
		factories: make(map[string]SinkFactory),
		logger:    logger,
	}
}

// Register registers a factory for driver, replacing any earlier one
func (r *SinkRouter) Register(driver string, factory SinkFactory) {
	r.factories[driver] = factory
	r.logger.Debug("Registered sink", "driver", driver)
}

// Drivers returns the registered driver names in sorted order
func (r *SinkRouter) Drivers() []string {
	drivers := make([]string, 0, len(r.factories))
	for driver := range r.factories {
		drivers = append(drivers, driver)
	}
	sort.Strings(drivers)
	return drivers
}

// Open opens the sink registered for driver
func (r *SinkRouter) Open(ctx context.Context, driver string) (repository.FlightRecordRepository, error) {
	factory, ok := r.factories[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownSink, driver, r.Drivers())
	}

	r.logger.Info("Opening sink", "driver", driver)
	sink, err := factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s sink: %w", driver, err)
	}
	return sink, nil
}
