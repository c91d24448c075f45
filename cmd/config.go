package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"shop/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort        string
	ShutdownTimeout time.Duration

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	AppName           string
	Version           string
	MaxPageSize       int
	OpenAPIValidation bool

	HealthPingSchedule string
	HealthPingTimeout  time.Duration

	LogLevel slog.Level
}

// LoadConfig reads the configuration from the environment. Variables found in
// envFiles are added to the environment first but never override it; missing
// files are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv builds and validates a Config from lookup.
func ConfigFromEnv(lookup func(key string) (string, bool)) (Config, error) {
	env := envReader{lookup: lookup}

	config := Config{
		HTTPPort:           env.str("HTTP_PORT", "8080"),
		ShutdownTimeout:    env.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DBDriver:           strings.ToLower(env.str("DB_DRIVER", DriverPostgres)),
		DBHost:             env.str("DB_HOST", ""),
		DBPort:             env.str("DB_PORT", "5432"),
		DBUser:             env.str("DB_USER", ""),
		DBPassword:         env.str("DB_PASSWORD", ""),
		DBName:             env.str("DB_NAME", ""),
		DBSslMode:          env.str("DB_SSLMODE", "disable"),
		SQLitePath:         env.str("SQLITE_PATH", "shop.db"),
		AppName:            env.str("APP_NAME", "shopApp"),
		Version:            env.str("APP_VERSION", "dev"),
		MaxPageSize:        env.integer("MAX_PAGE_SIZE", 2000),
		OpenAPIValidation:  env.boolean("OPENAPI_VALIDATION", true),
		HealthPingSchedule: env.str("HEALTH_PING_SCHEDULE", "*/10 * * * * *"),
		HealthPingTimeout:  env.duration("HEALTH_PING_TIMEOUT", 2*time.Second),
		LogLevel:           env.level("LOG_LEVEL", slog.LevelInfo),
	}

	if err := errors.Join(env.err, config.Validate()); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the values the service cannot start without.
func (c Config) Validate() error {
	var problems []error

	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.AppName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("APP_NAME"))
	}
	if c.MaxPageSize < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("MAX_PAGE_SIZE", c.MaxPageSize, 1, "unbounded"))
	}

	switch c.DBDriver {
	case DriverPostgres:
		for key, value := range map[string]string{
			"DB_HOST": c.DBHost,
			"DB_USER": c.DBUser,
			"DB_NAME": c.DBName,
		} {
			if value == "" {
				problems = append(problems, errs.NewValueIsRequiredError(key))
			}
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, errs.NewValueIsRequiredError("SQLITE_PATH"))
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("DB_DRIVER",
			fmt.Errorf("%q is neither %q nor %q", c.DBDriver, DriverPostgres, DriverSQLite)))
	}

	return errors.Join(problems...)
}

// PostgresDSN is the keyword/value connection string for the postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

type envReader struct {
	lookup func(key string) (string, bool)
	err    error
}

func (r *envReader) str(key, fallback string) string {
	if value, ok := r.lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func (r *envReader) integer(key string, fallback int) int {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return value
}

func (r *envReader) boolean(key string, fallback bool) bool {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return value
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return value
}

func (r *envReader) level(key string, fallback slog.Level) slog.Level {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		r.fail(key, err)
		return fallback
	}
	return level
}

func (r *envReader) fail(key string, cause error) {
	r.err = errors.Join(r.err, errs.NewValueIsInvalidErrorWithCause(key, cause))
}
