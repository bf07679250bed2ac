package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envVars = []string{
	"SERVER_PORT",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSL_MODE",
	"DB_MAX_CONNS",
	"DB_MIN_CONNS",
	"LOAN_PERIOD",
	"MAX_BORROW_LIMIT",
	"RESERVATION_TTL",
	"NOTIFICATION_WORKERS",
	"AUTO_MIGRATE",
	"LOG_LEVEL",
	ConfigFileEnv,
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envVars {
		// t.Setenv restores the original value once the test finishes.
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "library" {
			t.Errorf("DBName = %v, want library", cfg.DBName)
		}
		if cfg.DBMaxConns != 25 {
			t.Errorf("DBMaxConns = %v, want 25", cfg.DBMaxConns)
		}
		if cfg.DBMinConns != 5 {
			t.Errorf("DBMinConns = %v, want 5", cfg.DBMinConns)
		}
		if cfg.LoanPeriod != 14*24*time.Hour {
			t.Errorf("LoanPeriod = %v, want 336h", cfg.LoanPeriod)
		}
		if cfg.MaxBorrowLimit != 5 {
			t.Errorf("MaxBorrowLimit = %v, want 5", cfg.MaxBorrowLimit)
		}
		if cfg.ReservationTTL != 7*24*time.Hour {
			t.Errorf("ReservationTTL = %v, want 168h", cfg.ReservationTTL)
		}
		if cfg.VerificationCodeTTL != 24*time.Hour {
			t.Errorf("VerificationCodeTTL = %v, want 24h", cfg.VerificationCodeTTL)
		}
		if cfg.AutoMigrate {
			t.Error("AutoMigrate should default to false")
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_SSL_MODE", "require")
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("LOAN_PERIOD", "72h")
		t.Setenv("MAX_BORROW_LIMIT", "3")
		t.Setenv("NOTIFICATION_WORKERS", "8")
		t.Setenv("AUTO_MIGRATE", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBHost != "db.example.com" {
			t.Errorf("DBHost = %v, want db.example.com", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.DBPassword != "testpass" {
			t.Errorf("DBPassword = %v, want testpass", cfg.DBPassword)
		}
		if cfg.DBSSLMode != "require" {
			t.Errorf("DBSSLMode = %v, want require", cfg.DBSSLMode)
		}
		if cfg.DBMaxConns != 50 {
			t.Errorf("DBMaxConns = %v, want 50", cfg.DBMaxConns)
		}
		if cfg.LoanPeriod != 72*time.Hour {
			t.Errorf("LoanPeriod = %v, want 72h", cfg.LoanPeriod)
		}
		if cfg.MaxBorrowLimit != 3 {
			t.Errorf("MaxBorrowLimit = %v, want 3", cfg.MaxBorrowLimit)
		}
		if cfg.NotificationWorkers != 8 {
			t.Errorf("NotificationWorkers = %v, want 8", cfg.NotificationWorkers)
		}
		if !cfg.AutoMigrate {
			t.Error("AutoMigrate should be true")
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.DBMaxConnIdleTime != 30*time.Minute {
			t.Errorf("DBMaxConnIdleTime = %v, want 30m", cfg.DBMaxConnIdleTime)
		}
		if cfg.DBHealthCheckPeriod != time.Minute {
			t.Errorf("DBHealthCheckPeriod = %v, want 1m", cfg.DBHealthCheckPeriod)
		}
		if cfg.ReservationSweepInterval != time.Minute {
			t.Errorf("ReservationSweepInterval = %v, want 1m", cfg.ReservationSweepInterval)
		}
	})

	t.Run("yaml file layered under environment", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "library.yaml")
		content := "db_name: from_file\nmax_borrow_limit: 2\nserver_port: \"7070\"\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		t.Setenv(ConfigFileEnv, path)
		t.Setenv("SERVER_PORT", "9191")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBName != "from_file" {
			t.Errorf("DBName = %v, want from_file", cfg.DBName)
		}
		if cfg.MaxBorrowLimit != 2 {
			t.Errorf("MaxBorrowLimit = %v, want 2", cfg.MaxBorrowLimit)
		}
		if cfg.ServerPort != "9191" {
			t.Errorf("ServerPort = %v, want 9191 from environment", cfg.ServerPort)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "missing.yaml"))

		if _, err := Load(); err == nil {
			t.Error("Load() should fail when the config file does not exist")
		}
	})

	t.Run("invalid borrow limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAX_BORROW_LIMIT", "0")

		if _, err := Load(); err == nil {
			t.Error("Load() should reject MAX_BORROW_LIMIT=0")
		}
	})
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     5432,
		DBUser:     "lib",
		DBPassword: "p@ss",
		DBName:     "library",
		DBSSLMode:  "disable",
	}

	want := "postgres://lib:p%40ss@db:5432/library?sslmode=disable"
	if got := cfg.DatabaseURL(); got != want {
		t.Errorf("DatabaseURL() = %v, want %v", got, want)
	}
}
