package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"flight-booking-seeder/internal/domain/repository"
	"flight-booking-seeder/internal/infrastructure/config"
	"flight-booking-seeder/internal/infrastructure/oauth"
	"flight-booking-seeder/internal/infrastructure/persistence"
	"flight-booking-seeder/internal/infrastructure/router"
	"flight-booking-seeder/internal/interface/firestore"
	sinkRepo "flight-booking-seeder/internal/interface/repository"
	"flight-booking-seeder/internal/usecase"
	"flight-booking-seeder/pkg/logger"
	"flight-booking-seeder/pkg/metrics"
	"flight-booking-seeder/pkg/utils"

	"github.com/google/uuid"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log := logger.NewLogger("info")
		log.Error("Failed to load config", "error", err)
		log.Sync()
		return 1
	}

	// Create logger
	zapLog := logger.NewLogger(cfg.LogLevel)
	defer zapLog.Sync()

	runID := uuid.NewString()
	log := zapLog.With("runId", runID, "sink", cfg.SinkDriver)
	log.Info("Starting flight booking seeder",
		"version", cfg.AppVersion,
		"collection", cfg.Collection,
		"batchSize", cfg.BatchSize)

	ctx := context.Background()
	m := metrics.NewMetrics("flight_seeder")

	// Set up sinks
	sinks := router.NewSinkRouter(log)
	sinks.Register(config.SinkFirestore, firestoreSink(cfg, log))
	sinks.Register(config.SinkMongoDB, mongoSink(cfg))
	sinks.Register(config.SinkPostgres, postgresSink(cfg))

	sink, err := sinks.Open(ctx, cfg.SinkDriver)
	if err != nil {
		log.Error("Failed to open sink", "error", err)
		return 1
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("Seeding random source", "seed", seed)

	generator := usecase.NewFlightGenerator(
		utils.NewRandomSource(seed),
		time.Now,
		usecase.GeneratorOptions{
			MaxIdentifierAttempts: cfg.MaxIdentifierAttempts,
			MaxCandidateAttempts:  cfg.MaxCandidateAttempts,
		},
		m,
		log,
	)
	submitter := usecase.NewFlightSubmitter(cfg.SinkDriver, m, log)
	seeder := usecase.NewFlightSeeder(generator, submitter, sink, cfg.Collection, cfg.BatchSize)

	result, err := seeder.Run(ctx)
	pushMetrics(ctx, cfg, m, runID, log)
	if err != nil {
		log.Error("Seeding failed",
			"generated", result.Generated,
			"submitted", result.Submitted,
			"error", err)
		return 1
	}

	log.Info("Seeding completed",
		"generated", result.Generated,
		"submitted", result.Submitted,
		"generationTime", result.GenerationTime.String(),
		"submissionTime", result.SubmissionTime.String())
	fmt.Printf("Data uploaded to %s.\n", cfg.SinkDriver)

	return 0
}

func firestoreSink(cfg *config.Config, log logger.Logger) router.SinkFactory {
	return func(ctx context.Context) (repository.FlightRecordRepository, error) {
		auth, err := oauth.NewFirestoreOAuth(ctx, cfg.CredentialsFile, cfg.FirestoreProjectID, log)
		if err != nil {
			return nil, err
		}

		service, err := firestore.NewFirestoreService(ctx, auth.GetTokenSource())
		if err != nil {
			return nil, err
		}

		return firestore.NewFirestoreFlightRecordRepository(service, auth.ProjectID(), cfg.FirestoreDatabase, log), nil
	}
}

func mongoSink(cfg *config.Config) router.SinkFactory {
	return func(ctx context.Context) (repository.FlightRecordRepository, error) {
		client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword, cfg.ConnectTimeout)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}

		return sinkRepo.NewMongoFlightRecordRepository(client, db), nil
	}
}

func postgresSink(cfg *config.Config) router.SinkFactory {
	return func(ctx context.Context) (repository.FlightRecordRepository, error) {
		db, err := persistence.NewGormDB(ctx, cfg.PostgresURI, cfg.ConnectTimeout)
		if err != nil {
			return nil, err
		}

		return sinkRepo.NewGormFlightRecordRepository(db), nil
	}
}

func pushMetrics(ctx context.Context, cfg *config.Config, m *metrics.Metrics, runID string, log logger.Logger) {
	if cfg.PushgatewayURL == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	err := m.Push(ctx, cfg.PushgatewayURL, "flight_seeder", map[string]string{
		"sink":   cfg.SinkDriver,
		"run_id": runID,
	})
	if err != nil {
		log.Warn("Failed to push metrics", "error", err)
	}
}
