package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kelvinmfon2025/book-api/internal/logger"
	"github.com/kelvinmfon2025/book-api/internal/metrics"
)

const (
	// DefaultSendTimeout bounds a single delivery attempt.
	DefaultSendTimeout = 10 * time.Second
	// DefaultMaxAttempts is how many times a failed delivery is tried.
	DefaultMaxAttempts = 3
	// DefaultRetryBackoff is the delay before the second attempt; it doubles
	// for each further attempt.
	DefaultRetryBackoff = 200 * time.Millisecond
)

// Result labels recorded for each notification.
const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
)

// Dispatcher queues messages and delivers them from a pool of workers.
type Dispatcher struct {
	sender      Sender
	timeout     time.Duration
	maxAttempts int
	backoff     time.Duration

	queue  chan Message
	wg     sync.WaitGroup
	closed bool
	mu     sync.RWMutex
}

// NewDispatcher creates a Dispatcher with workerCount workers and a queue of
// queueSize messages.
func NewDispatcher(sender Sender, workerCount, queueSize int) *Dispatcher {
	d := &Dispatcher{
		sender:      sender,
		timeout:     DefaultSendTimeout,
		maxAttempts: DefaultMaxAttempts,
		backoff:     DefaultRetryBackoff,
		queue:       make(chan Message, queueSize),
	}

	for i := 0; i < workerCount; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// SetRetry overrides the delivery attempts and initial backoff.
func (d *Dispatcher) SetRetry(maxAttempts int, backoff time.Duration) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	d.maxAttempts = maxAttempts
	d.backoff = backoff
}

// Notify queues msg without blocking. The message is dropped when the queue
// is full or the dispatcher is closed.
func (d *Dispatcher) Notify(ctx context.Context, msg Message) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ctx, msg, "dispatcher closed")
		return
	}

	select {
	case d.queue <- msg:
		metrics.NotificationQueueDepth.Inc()
	default:
		d.drop(ctx, msg, "queue full")
	}
}

func (d *Dispatcher) drop(ctx context.Context, msg Message, reason string) {
	metrics.ObserveNotification(string(msg.Kind), ResultDropped)
	logger.WarnContext(ctx, "Notification dropped",
		slog.String("kind", string(msg.Kind)),
		slog.String("user_id", msg.UserID),
		slog.String("reason", reason),
	)
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for msg := range d.queue {
		metrics.NotificationQueueDepth.Dec()
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	backoff := d.backoff
	var err error

	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err = d.sender.Send(ctx, msg)
		cancel()

		if err == nil {
			metrics.ObserveNotification(string(msg.Kind), ResultSent)
			return
		}

		logger.Warn("Notification delivery attempt failed",
			slog.String("kind", string(msg.Kind)),
			slog.String("user_id", msg.UserID),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)

		if attempt < d.maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	metrics.ObserveNotification(string(msg.Kind), ResultFailed)
	logger.Error("Notification delivery failed",
		slog.String("kind", string(msg.Kind)),
		slog.String("user_id", msg.UserID),
		slog.String("error", err.Error()),
	)
}

// Close stops accepting messages and waits for queued ones to be delivered.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}
