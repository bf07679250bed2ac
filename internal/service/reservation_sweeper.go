package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kelvinmfon2025/book-api/internal/logger"
)

// ReservationExpirer cancels reservations past their expiry.
type ReservationExpirer interface {
	ExpireReservations(ctx context.Context) (int64, error)
}

// ReservationSweeper periodically expires stale reservations.
type ReservationSweeper struct {
	expirer  ReservationExpirer
	timeout  time.Duration
	stopChan chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewReservationSweeper creates a new ReservationSweeper.
func NewReservationSweeper(expirer ReservationExpirer) *ReservationSweeper {
	return &ReservationSweeper{
		expirer:  expirer,
		timeout:  30 * time.Second,
		stopChan: make(chan struct{}),
	}
}

// Start sweeps immediately and then every interval until Stop.
func (s *ReservationSweeper) Start(interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.Sweep()

		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Sweep runs one expiry pass and returns the number of reservations
// canceled. Errors are logged.
func (s *ReservationSweeper) Sweep() int64 {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.expirer.ExpireReservations(ctx)
	if err != nil {
		logger.Error("Reservation sweep failed", slog.String("error", err.Error()))
		return 0
	}
	return n
}

// Stop stops the sweeper and waits for an in-flight sweep to finish. It is
// safe to call more than once.
func (s *ReservationSweeper) Stop() {
	s.once.Do(func() { close(s.stopChan) })
	s.wg.Wait()
}
