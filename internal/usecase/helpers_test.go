package usecase

import (
	"context"
	"errors"
	"time"

	"flight-booking-seeder/internal/domain/entity"
	"flight-booking-seeder/pkg/logger"
	"flight-booking-seeder/pkg/metrics"
)

var fixedNow = time.Date(2026, 10, 19, 22, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics("flight_seeder_test")
}

func newTestLogger() logger.Logger {
	return logger.NewNopLogger()
}

// scriptedSource replays a fixed list of draws, then falls back to a constant
type scriptedSource struct {
	draws    []int
	fallback int
	calls    int
}

func (s *scriptedSource) Intn(n int) int {
	s.calls++
	if len(s.draws) == 0 {
		return s.fallback % n
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % n
}

func repeat(v, times int) []int {
	out := make([]int, times)
	for i := range out {
		out[i] = v
	}
	return out
}

// recordingSink stores every appended record and fails on call failOn (1-based, 0 = never)
type recordingSink struct {
	failOn     int
	prepareErr error
	closeErr   error

	calls    int
	appended []*entity.FlightRecord
	prepared []string
	closed   bool
}

var errSinkDown = errors.New("sink unavailable")

func (s *recordingSink) Prepare(_ context.Context, collection string) error {
	s.prepared = append(s.prepared, collection)
	return s.prepareErr
}

func (s *recordingSink) Append(_ context.Context, _ string, record *entity.FlightRecord) (string, error) {
	s.calls++
	if s.failOn != 0 && s.calls == s.failOn {
		return "", errSinkDown
	}
	s.appended = append(s.appended, record)
	return record.Number, nil
}

func (s *recordingSink) Close(context.Context) error {
	s.closed = true
	return s.closeErr
}
