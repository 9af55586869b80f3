package usecase

import (
	"fmt"
	"time"

	"flight-booking-seeder/internal/domain/entity"
	"flight-booking-seeder/pkg/logger"
	"flight-booking-seeder/pkg/metrics"
	"flight-booking-seeder/pkg/utils"
)

const SeatMax = 24

var (
	Locations      = []string{"New York", "London", "Paris", "Tokyo", "Sydney"}
	Classes        = []string{entity.ClassEconomy, entity.ClassBusiness}
	BaseFacilities = []string{"Air Conditioning", "Food"}

	ExtraFacilities = map[string][]string{
		entity.ClassEconomy:  {"WiFi"},
		entity.ClassBusiness: {"WiFi", "Coffee"},
	}

	PriceTiers = map[string][]int{
		entity.ClassEconomy:  {50, 100, 150, 200, 250},
		entity.ClassBusiness: {200, 250, 300, 350, 400},
	}
)

// GeneratorOptions bounds the retry loops of a generator run
type GeneratorOptions struct {
	MaxIdentifierAttempts int
	MaxCandidateAttempts  int
}

// FlightGenerator produces batches of synthetic flight records
type FlightGenerator struct {
	rng     utils.RandomSource
	now     func() time.Time
	opts    GeneratorOptions
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewFlightGenerator creates a new flight generator. now is read for every
// candidate, the way a wall clock would be.
func NewFlightGenerator(
	rng utils.RandomSource,
	now func() time.Time,
	opts GeneratorOptions,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlightGenerator {
	return &FlightGenerator{
		rng:     rng,
		now:     now,
		opts:    opts,
		metrics: metrics,
		logger:  logger,
	}
}

// Generate builds n mutually unique records. Nothing is written anywhere.
func (g *FlightGenerator) Generate(n int) ([]*entity.FlightRecord, error) {
	start := time.Now()
	defer func() {
		g.metrics.GenerationTime.Observe(time.Since(start).Seconds())
	}()

	numbers := NewIdentifierAllocator(g.rng, g.opts.MaxIdentifierAttempts, g.metrics, g.logger)
	flights := make([]*entity.FlightRecord, 0, n)

	for i := 0; i < n; i++ {
		flight, err := g.nextUnique(flights, numbers)
		if err != nil {
			return nil, fmt.Errorf("failed to generate record %d of %d: %w", i+1, n, err)
		}
		flights = append(flights, flight)
		g.metrics.RecordsGenerated.Inc()
	}

	g.logger.Info("Batch generated",
		"count", len(flights),
		"numbersIssued", numbers.Issued())

	return flights, nil
}

// nextUnique samples candidates until one does not match an accepted record
func (g *FlightGenerator) nextUnique(accepted []*entity.FlightRecord, numbers *IdentifierAllocator) (*entity.FlightRecord, error) {
	for attempt := 1; attempt <= g.opts.MaxCandidateAttempts; attempt++ {
		candidate, err := g.candidate(numbers)
		if err != nil {
			return nil, err
		}

		if !isDuplicate(candidate, accepted) {
			return candidate, nil
		}

		g.metrics.DuplicateCandidates.Inc()
		g.logger.Debug("Discarding duplicate candidate",
			"number", candidate.Number,
			"departureDate", candidate.DepartureDate,
			"departureTime", candidate.DepartureTime,
			"attempt", attempt)
	}

	return nil, fmt.Errorf("%w: no unique record after %d candidates", ErrExhausted, g.opts.MaxCandidateAttempts)
}

// candidate samples every field of one record
func (g *FlightGenerator) candidate(numbers *IdentifierAllocator) (*entity.FlightRecord, error) {
	from := utils.Choice(g.rng, Locations)
	to := utils.Choice(g.rng, otherLocations(from))

	departureDate := g.now().AddDate(0, 0, utils.IntBetween(g.rng, 1, 365))
	departure := g.now().Add(g.clockOffset())

	duration := time.Duration(utils.IntBetween(g.rng, 5, 10))*time.Hour +
		time.Duration(utils.IntBetween(g.rng, 0, 59))*time.Minute
	arrival := departure.Add(duration)

	var returnDate, returnTime *string
	if utils.CoinFlip(g.rng) {
		date := departureDate.AddDate(0, 0, utils.IntBetween(g.rng, 2, 7)).Format(utils.DATE_LAYOUT)
		clock := g.now().Add(g.clockOffset()).Format(utils.CLOCK_LAYOUT)
		returnDate, returnTime = &date, &clock
	}

	class := utils.Choice(g.rng, Classes)
	seatAvailable := utils.IntBetween(g.rng, 15, SeatMax)
	price := utils.Choice(g.rng, PriceTiers[class])
	facilities := FacilitiesFor(class)

	booked, available := partitionSeats(g.rng, SeatMax, SeatMax-seatAvailable)
	createdAt := g.now()

	number, err := numbers.Next()
	if err != nil {
		return nil, err
	}

	return &entity.FlightRecord{
		FromLocation:   from,
		ToLocation:     to,
		DepartureDate:  departureDate.Format(utils.DATE_LAYOUT),
		DepartureTime:  departure.Format(utils.CLOCK_LAYOUT),
		ArrivalTime:    arrival.Format(utils.CLOCK_LAYOUT),
		ReturnDate:     returnDate,
		ReturnTime:     returnTime,
		Class:          class,
		SeatMax:        SeatMax,
		SeatAvailable:  seatAvailable,
		BookedSeats:    booked,
		AvailableSeats: available,
		Price:          price,
		Facilities:     facilities,
		CreatedAt:      createdAt.Format(utils.TIMESTAMP_LAYOUT),
		Number:         number,
	}, nil
}

// clockOffset is a random 0-23h 0-59m shift applied to the generation clock
func (g *FlightGenerator) clockOffset() time.Duration {
	return time.Duration(utils.IntBetween(g.rng, 0, 23))*time.Hour +
		time.Duration(utils.IntBetween(g.rng, 0, 59))*time.Minute
}

// FacilitiesFor returns a fresh copy of the facility list for class
func FacilitiesFor(class string) []string {
	facilities := make([]string, 0, len(BaseFacilities)+len(ExtraFacilities[class]))
	facilities = append(facilities, BaseFacilities...)
	return append(facilities, ExtraFacilities[class]...)
}

func otherLocations(from string) []string {
	out := make([]string, 0, len(Locations)-1)
	for _, loc := range Locations {
		if loc != from {
			out = append(out, loc)
		}
	}
	return out
}

// partitionSeats samples bookedCount seats out of 1..seatMax; the rest are available in ascending order
func partitionSeats(rng utils.RandomSource, seatMax, bookedCount int) ([]int, []int) {
	booked := utils.Sample(rng, utils.IntRange(1, seatMax), bookedCount)

	taken := make(map[int]bool, len(booked))
	for _, seat := range booked {
		taken[seat] = true
	}

	available := make([]int, 0, seatMax-len(booked))
	for seat := 1; seat <= seatMax; seat++ {
		if !taken[seat] {
			available = append(available, seat)
		}
	}
	return booked, available
}

func isDuplicate(flight *entity.FlightRecord, flights []*entity.FlightRecord) bool {
	for _, f := range flights {
		if f.SameOffer(flight) {
			return true
		}
	}
	return false
}
