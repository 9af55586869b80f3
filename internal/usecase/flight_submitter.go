package usecase

import (
	"context"
	"fmt"
	"time"

	"flight-booking-seeder/internal/domain/entity"
	"flight-booking-seeder/internal/domain/repository"
	"flight-booking-seeder/pkg/logger"
	"flight-booking-seeder/pkg/metrics"
)

// FlightSubmitter writes a generated batch to the sink, one record per call
type FlightSubmitter struct {
	sinkName string
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewFlightSubmitter creates a new submitter. sinkName labels metrics and logs.
func NewFlightSubmitter(
	sinkName string,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlightSubmitter {
	return &FlightSubmitter{
		sinkName: sinkName,
		metrics:  metrics,
		logger:   logger,
	}
}

// Submit appends records to collection in order and stops at the first failure.
// It returns how many records were written before returning.
func (s *FlightSubmitter) Submit(ctx context.Context, sink repository.FlightRecordRepository, collection string, records []*entity.FlightRecord) (int, error) {
	start := time.Now()
	defer func() {
		s.metrics.SubmissionTime.Observe(time.Since(start).Seconds())
	}()

	for i, record := range records {
		handle, err := sink.Append(ctx, collection, record)
		if err != nil {
			s.metrics.SubmitErrors.WithLabelValues(s.sinkName).Inc()
			s.logger.Error("Failed to submit flight record",
				"position", i+1,
				"number", record.Number,
				"submitted", i,
				"error", err)
			return i, fmt.Errorf("failed to submit record %d (%s): %w", i+1, record.Number, err)
		}

		s.metrics.RecordsSubmitted.Inc()
		s.logger.Debug("Flight record submitted", "number", record.Number, "handle", handle)
	}

	s.logger.Info("Batch submitted",
		"collection", collection,
		"sink", s.sinkName,
		"count", len(records))

	return len(records), nil
}
