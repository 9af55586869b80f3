// internal/infrastructure/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Sink drivers
const (
	SinkFirestore = "firestore"
	SinkMongoDB   = "mongodb"
	SinkPostgres  = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Seeding
	SinkDriver            string
	Collection            string
	BatchSize             int
	RandomSeed            int64
	MaxIdentifierAttempts int
	MaxCandidateAttempts  int
	ConnectTimeout        time.Duration

	// Firestore
	CredentialsFile    string
	FirestoreProjectID string
	FirestoreDatabase  string

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL
	PostgresURI string

	// Metrics
	PushgatewayURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		SinkDriver:            getEnv("SINK_DRIVER", SinkFirestore),
		Collection:            getEnv("FLIGHT_COLLECTION", "FlightBooking"),
		BatchSize:             getEnvAsInt("BATCH_SIZE", 1000),
		RandomSeed:            getEnvAsInt64("RANDOM_SEED", 0),
		MaxIdentifierAttempts: getEnvAsInt("MAX_IDENTIFIER_ATTEMPTS", 1000),
		MaxCandidateAttempts:  getEnvAsInt("MAX_CANDIDATE_ATTEMPTS", 1000),
		ConnectTimeout:        time.Duration(getEnvAsInt("CONNECT_TIMEOUT", 10)) * time.Second,

		CredentialsFile:    getEnv("GOOGLE_APPLICATION_CREDENTIALS", "flight-booking-adminsdk.json"),
		FirestoreProjectID: getEnv("FIRESTORE_PROJECT_ID", ""),
		FirestoreDatabase:  getEnv("FIRESTORE_DATABASE", "(default)"),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "flight_booking"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", ""),

		PushgatewayURL: getEnv("PUSHGATEWAY_URL", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values a run cannot start without
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: BATCH_SIZE must be positive, got %d", ErrInvalidConfig, c.BatchSize)
	}
	if c.MaxIdentifierAttempts <= 0 || c.MaxCandidateAttempts <= 0 {
		return fmt.Errorf("%w: attempt limits must be positive", ErrInvalidConfig)
	}
	if c.Collection == "" {
		return fmt.Errorf("%w: FLIGHT_COLLECTION is empty", ErrInvalidConfig)
	}

	switch c.SinkDriver {
	case SinkFirestore:
		if c.CredentialsFile == "" {
			return fmt.Errorf("%w: GOOGLE_APPLICATION_CREDENTIALS is required for %s", ErrInvalidConfig, SinkFirestore)
		}
	case SinkMongoDB:
		if c.MongoURI == "" || c.MongoDB == "" {
			return fmt.Errorf("%w: MONGODB_DSN and MONGO_DB are required for %s", ErrInvalidConfig, SinkMongoDB)
		}
	case SinkPostgres:
		if c.PostgresURI == "" {
			return fmt.Errorf("%w: POSTGRES_DSN is required for %s", ErrInvalidConfig, SinkPostgres)
		}
	default:
		return fmt.Errorf("%w: unknown SINK_DRIVER %q", ErrInvalidConfig, c.SinkDriver)
	}

	return nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
