package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// ConfigFileEnv names the environment variable holding an optional YAML
// config file. Environment variables always take precedence over the file.
const ConfigFileEnv = "LIBRARY_CONFIG"

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Migrations
	AutoMigrate    bool
	MigrationsPath string

	// Lending rules
	LoanPeriod     time.Duration
	MaxBorrowLimit int
	ReservationTTL time.Duration

	// Background workers
	ReservationSweepInterval time.Duration
	LoanStatsInterval        time.Duration
	NotificationWorkers      int
	NotificationQueueSize    int

	// Membership
	VerificationCodeTTL time.Duration

	// Logging configuration
	LogLevel string
}

func defaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("HTTP_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 30*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 120*time.Second)
	v.SetDefault("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "library")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_MAX_CONN_LIFETIME", time.Hour)
	v.SetDefault("DB_MAX_CONN_IDLE_TIME", 30*time.Minute)
	v.SetDefault("DB_HEALTH_CHECK_PERIOD", time.Minute)
	v.SetDefault("AUTO_MIGRATE", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LOAN_PERIOD", 14*24*time.Hour)
	v.SetDefault("MAX_BORROW_LIMIT", 5)
	v.SetDefault("RESERVATION_TTL", 7*24*time.Hour)
	v.SetDefault("RESERVATION_SWEEP_INTERVAL", time.Minute)
	v.SetDefault("LOAN_STATS_INTERVAL", 30*time.Second)
	v.SetDefault("NOTIFICATION_WORKERS", 2)
	v.SetDefault("NOTIFICATION_QUEUE_SIZE", 100)
	v.SetDefault("VERIFICATION_CODE_TTL", 24*time.Hour)
	v.SetDefault("LOG_LEVEL", "info")
}

// Load loads configuration from environment variables, layered over an
// optional YAML file named by LIBRARY_CONFIG.
func Load() (*Config, error) {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		ServerPort:               v.GetString("SERVER_PORT"),
		ReadTimeout:              v.GetDuration("HTTP_READ_TIMEOUT"),
		WriteTimeout:             v.GetDuration("HTTP_WRITE_TIMEOUT"),
		IdleTimeout:              v.GetDuration("HTTP_IDLE_TIMEOUT"),
		ShutdownTimeout:          v.GetDuration("HTTP_SHUTDOWN_TIMEOUT"),
		DBHost:                   v.GetString("DB_HOST"),
		DBPort:                   v.GetInt("DB_PORT"),
		DBUser:                   v.GetString("DB_USER"),
		DBPassword:               v.GetString("DB_PASSWORD"),
		DBName:                   v.GetString("DB_NAME"),
		DBSSLMode:                v.GetString("DB_SSL_MODE"),
		DBMaxConns:               v.GetInt32("DB_MAX_CONNS"),
		DBMinConns:               v.GetInt32("DB_MIN_CONNS"),
		DBMaxConnLifetime:        v.GetDuration("DB_MAX_CONN_LIFETIME"),
		DBMaxConnIdleTime:        v.GetDuration("DB_MAX_CONN_IDLE_TIME"),
		DBHealthCheckPeriod:      v.GetDuration("DB_HEALTH_CHECK_PERIOD"),
		AutoMigrate:              v.GetBool("AUTO_MIGRATE"),
		MigrationsPath:           v.GetString("MIGRATIONS_PATH"),
		LoanPeriod:               v.GetDuration("LOAN_PERIOD"),
		MaxBorrowLimit:           v.GetInt("MAX_BORROW_LIMIT"),
		ReservationTTL:           v.GetDuration("RESERVATION_TTL"),
		ReservationSweepInterval: v.GetDuration("RESERVATION_SWEEP_INTERVAL"),
		LoanStatsInterval:        v.GetDuration("LOAN_STATS_INTERVAL"),
		NotificationWorkers:      v.GetInt("NOTIFICATION_WORKERS"),
		NotificationQueueSize:    v.GetInt("NOTIFICATION_QUEUE_SIZE"),
		VerificationCodeTTL:      v.GetDuration("VERIFICATION_CODE_TTL"),
		LogLevel:                 v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.LoanPeriod <= 0 {
		return fmt.Errorf("LOAN_PERIOD must be positive")
	}
	if c.MaxBorrowLimit < 1 {
		return fmt.Errorf("MAX_BORROW_LIMIT must be at least 1")
	}
	if c.ReservationTTL < 0 {
		return fmt.Errorf("RESERVATION_TTL must not be negative")
	}
	if c.ReservationSweepInterval <= 0 {
		return fmt.Errorf("RESERVATION_SWEEP_INTERVAL must be positive")
	}
	if c.LoanStatsInterval <= 0 {
		return fmt.Errorf("LOAN_STATS_INTERVAL must be positive")
	}
	if c.NotificationWorkers < 1 {
		return fmt.Errorf("NOTIFICATION_WORKERS must be at least 1")
	}
	if c.NotificationQueueSize < 1 {
		return fmt.Errorf("NOTIFICATION_QUEUE_SIZE must be at least 1")
	}
	return nil
}

// DatabaseURL returns the connection URL used by the migration tooling.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + strconv.Itoa(c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}
