package usecase

import (
	"errors"
	"fmt"

	"flight-booking-seeder/pkg/logger"
	"flight-booking-seeder/pkg/metrics"
	"flight-booking-seeder/pkg/utils"
)

const FlightNumberLength = 8

// ErrExhausted is returned when a bounded retry loop runs out of attempts
var ErrExhausted = errors.New("attempts exhausted")

// IdentifierAllocator issues flight numbers that are unique within one batch
type IdentifierAllocator struct {
	rng         utils.RandomSource
	issued      map[string]struct{}
	maxAttempts int
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewIdentifierAllocator creates an allocator with an empty issued set
func NewIdentifierAllocator(rng utils.RandomSource, maxAttempts int, metrics *metrics.Metrics, logger logger.Logger) *IdentifierAllocator {
	return &IdentifierAllocator{
		rng:         rng,
		issued:      make(map[string]struct{}),
		maxAttempts: maxAttempts,
		metrics:     metrics,
		logger:      logger,
	}
}

// Next draws codes until one has not been issued yet, records it and returns it
func (a *IdentifierAllocator) Next() (string, error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		code := utils.RandomString(a.rng, utils.UPPERCASE_ALPHANUMERIC, FlightNumberLength)
		if _, taken := a.issued[code]; !taken {
			a.issued[code] = struct{}{}
			return code, nil
		}

		a.metrics.IdentifierCollisions.Inc()
		a.logger.Debug("Flight number collision", "number", code, "attempt", attempt)
	}

	return "", fmt.Errorf("%w: no unused flight number after %d draws", ErrExhausted, a.maxAttempts)
}

// Issued reports how many codes have been handed out
func (a *IdentifierAllocator) Issued() int {
	return len(a.issued)
}
