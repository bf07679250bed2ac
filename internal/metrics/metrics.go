// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, lending operations,
// notifications, loans, and database operations.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/logger"
)

const (
	namespace = "library_lending"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Lending metrics - track borrow, return, reserve and fulfil outcomes
	LendingOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lending",
			Name:      "operations_total",
			Help:      "Total number of lending operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	LendingOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lending",
			Name:      "operation_duration_seconds",
			Help:      "Lending operation duration in seconds, including the transaction",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	ReservationsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reservations",
			Name:      "expired_total",
			Help:      "Total number of active reservations canceled because they expired",
		},
	)

	// Loan gauges - refreshed by LoanStatsCollector
	ActiveLoans = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "loans",
			Name:      "active",
			Help:      "Number of books currently on loan",
		},
	)

	OverdueLoans = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "loans",
			Name:      "overdue",
			Help:      "Number of loans past their due date",
		},
	)

	// Notification metrics - track the asynchronous dispatcher
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "total",
			Help:      "Total number of notifications by kind and result",
		},
		[]string{"kind", "result"},
	)

	NotificationQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "queue_depth",
			Help:      "Number of notifications waiting for a worker",
		},
	)

	// Database metrics - track database operation performance
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// Outcome labels for lending operations.
const (
	OutcomeSuccess = "success"
)

var outcomeLabels = map[error]string{
	domain.ErrInvalidRequest: "invalid_request",
	domain.ErrUnauthorized:   "unauthorized",
	domain.ErrForbidden:      "forbidden",
	domain.ErrNotFound:       "not_found",
	domain.ErrConflict:       "conflict",
	domain.ErrInternal:       "internal",
}

// Outcome returns the outcome label for the result of an operation.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	return outcomeLabels[domain.KindOf(err)]
}

// ObserveLendingOperation records the outcome and duration of a lending
// operation.
func ObserveLendingOperation(operation string, err error, durationSeconds float64) {
	LendingOperationsTotal.WithLabelValues(operation, Outcome(err)).Inc()
	LendingOperationDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// ObserveReservationsExpired records reservations canceled by expiry.
func ObserveReservationsExpired(n int64) {
	if n > 0 {
		ReservationsExpiredTotal.Add(float64(n))
	}
}

// ObserveNotification records a notification result: sent, failed or dropped.
func ObserveNotification(kind, result string) {
	NotificationsTotal.WithLabelValues(kind, result).Inc()
}

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// PgxPoolStats adapts a pgx pool to PoolStatsProvider.
func PgxPoolStats(pool *pgxpool.Pool) PoolStatsProvider {
	return &pgxPoolAdapter{pool: pool}
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: PgxPoolStats(pool),
		stopChan: make(chan struct{}),
	}
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// LoanStatsProvider reports the number of active and overdue loans.
type LoanStatsProvider interface {
	LoanStats(ctx context.Context, now time.Time) (active int, overdue int, err error)
}

// LoanStatsCollector refreshes the loan gauges periodically
type LoanStatsCollector struct {
	provider LoanStatsProvider
	timeout  time.Duration
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewLoanStatsCollector creates a new loan stats collector
func NewLoanStatsCollector(provider LoanStatsProvider) *LoanStatsCollector {
	return &LoanStatsCollector{
		provider: provider,
		timeout:  5 * time.Second,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting loan stats every interval
func (c *LoanStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *LoanStatsCollector) collect() {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	active, overdue, err := c.provider.LoanStats(ctx, time.Now())
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Warn("Failed to collect loan stats", slog.String("error", err.Error()))
		}
		return
	}
	ActiveLoans.Set(float64(active))
	OverdueLoans.Set(float64(overdue))
}

// Stop stops the loan stats collector
func (c *LoanStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

// Seconds returns the elapsed time since the timer was created
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// LogPoolStats logs a snapshot of the connection pool at debug level.
func LogPoolStats(ctx context.Context, provider PoolStatsProvider) {
	stats := provider.Stat()
	logger.DebugContext(ctx, "Database pool stats",
		slog.Int("total_conns", int(stats.TotalConns())),
		slog.Int("idle_conns", int(stats.IdleConns())),
		slog.Int("acquired_conns", int(stats.AcquiredConns())),
	)
}
