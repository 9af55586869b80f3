package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-booking-seeder/internal/domain/entity"
	"flight-booking-seeder/internal/domain/repository"
)

// BatchGenerator produces a batch of records
type BatchGenerator interface {
	Generate(n int) ([]*entity.FlightRecord, error)
}

// BatchSubmitter writes a batch to a collection of sink
type BatchSubmitter interface {
	Submit(ctx context.Context, sink repository.FlightRecordRepository, collection string, records []*entity.FlightRecord) (int, error)
}

// SeedResult summarises one run
type SeedResult struct {
	Generated      int
	Submitted      int
	GenerationTime time.Duration
	SubmissionTime time.Duration
}

// FlightSeeder generates a full batch and only then submits it. It owns the
// sink for the length of one run.
type FlightSeeder struct {
	generator  BatchGenerator
	submitter  BatchSubmitter
	sink       repository.FlightRecordRepository
	collection string
	batchSize  int
}

// NewFlightSeeder creates a new seeder
func NewFlightSeeder(
	generator BatchGenerator,
	submitter BatchSubmitter,
	sink repository.FlightRecordRepository,
	collection string,
	batchSize int,
) *FlightSeeder {
	return &FlightSeeder{
		generator:  generator,
		submitter:  submitter,
		sink:       sink,
		collection: collection,
		batchSize:  batchSize,
	}
}

// Run seeds one batch and closes the sink before returning, whatever the outcome.
// A generation error aborts before the sink is touched, indexes and tables included.
func (s *FlightSeeder) Run(ctx context.Context) (result *SeedResult, err error) {
	defer func() {
		if closeErr := s.sink.Close(ctx); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close sink: %w", closeErr))
		}
	}()

	result = &SeedResult{}

	start := time.Now()
	records, err := s.generator.Generate(s.batchSize)
	result.GenerationTime = time.Since(start)
	if err != nil {
		return result, err
	}
	result.Generated = len(records)

	if preparer, ok := s.sink.(repository.SchemaPreparer); ok {
		if err := preparer.Prepare(ctx, s.collection); err != nil {
			return result, fmt.Errorf("failed to prepare %s: %w", s.collection, err)
		}
	}

	start = time.Now()
	submitted, err := s.submitter.Submit(ctx, s.sink, s.collection, records)
	result.SubmissionTime = time.Since(start)
	result.Submitted = submitted

	return result, err
}
