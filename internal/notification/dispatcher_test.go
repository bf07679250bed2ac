package notification_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/notification"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []notification.Message
	failures int32
	calls    atomic.Int32
}

func (s *recordingSender) Send(ctx context.Context, msg notification.Message) error {
	n := s.calls.Add(1)
	if n <= s.failures {
		return errors.New("smtp unavailable")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

func (s *recordingSender) sent() []notification.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notification.Message(nil), s.messages...)
}

type blockingSender struct {
	started chan struct{}
	release chan struct{}
	count   atomic.Int32
}

func (s *blockingSender) Send(ctx context.Context, msg notification.Message) error {
	if s.count.Add(1) == 1 {
		close(s.started)
	}
	<-s.release
	return nil
}

func TestDispatcher_DeliversQueuedMessages(t *testing.T) {
	sender := &recordingSender{}
	d := notification.NewDispatcher(sender, 2, 10)

	for i := 0; i < 5; i++ {
		d.Notify(context.Background(), notification.Message{Kind: notification.KindWelcome, To: "a@example.com"})
	}
	d.Close()

	sent := sender.sent()
	require.Len(t, sent, 5)
	assert.False(t, sent[0].CreatedAt.IsZero(), "CreatedAt should be stamped")
}

func TestDispatcher_RetriesFailedDelivery(t *testing.T) {
	sender := &recordingSender{failures: 2}
	d := notification.NewDispatcher(sender, 1, 1)
	d.SetRetry(3, time.Millisecond)

	d.Notify(context.Background(), notification.Message{Kind: notification.KindWelcome})
	d.Close()

	assert.Equal(t, int32(3), sender.calls.Load())
	assert.Len(t, sender.sent(), 1)
}

func TestDispatcher_GivesUpAfterMaxAttempts(t *testing.T) {
	sender := &recordingSender{failures: 10}
	d := notification.NewDispatcher(sender, 1, 1)
	d.SetRetry(2, time.Millisecond)

	d.Notify(context.Background(), notification.Message{Kind: notification.KindWelcome})
	d.Close()

	assert.Equal(t, int32(2), sender.calls.Load())
	assert.Empty(t, sender.sent())
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	sender := &blockingSender{started: make(chan struct{}), release: make(chan struct{})}
	d := notification.NewDispatcher(sender, 1, 1)

	d.Notify(context.Background(), notification.Message{Kind: notification.KindWelcome})
	<-sender.started

	d.Notify(context.Background(), notification.Message{Kind: notification.KindWelcome})
	d.Notify(context.Background(), notification.Message{Kind: notification.KindWelcome})

	close(sender.release)
	d.Close()

	assert.Equal(t, int32(2), sender.count.Load(), "third message should have been dropped")
}

func TestDispatcher_NotifyAfterCloseIsDropped(t *testing.T) {
	sender := &recordingSender{}
	d := notification.NewDispatcher(sender, 1, 1)
	d.Close()
	d.Close()

	assert.NotPanics(t, func() {
		d.Notify(context.Background(), notification.Message{Kind: notification.KindWelcome})
	})
	assert.Empty(t, sender.sent())
}

func TestLogSender_WritesJSONPayload(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))
	sender := notification.NewLogSenderWithLogger(l)

	u := &domain.User{ID: "u1", Email: "ada@example.com", FirstName: "Ada", VerificationCode: "123456"}
	msg := notification.VerificationMessage(u, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	require.NoError(t, sender.Send(context.Background(), msg))

	out := buf.String()
	assert.Contains(t, out, "Notification sent")
	assert.Contains(t, out, "email_verification")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "123456")
	assert.Contains(t, out, "2024-01-02T03:04:05Z")
}

func TestReservationMessage(t *testing.T) {
	expires := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	u := &domain.User{ID: "u1", Email: "bob@example.com"}
	book := &domain.Book{ID: "b1", Title: "Dune"}
	res := &domain.Reservation{ID: "r1", BookID: "b1", Status: domain.ReservationActive, ExpiresAt: &expires}

	msg := notification.ReservationMessage(notification.KindReservationCreated, u, book, res)

	assert.Equal(t, notification.KindReservationCreated, msg.Kind)
	assert.Equal(t, "bob@example.com", msg.To)
	assert.Equal(t, "Reservation confirmed", msg.Subject)
	assert.Equal(t, "Dune", msg.Data["title"])
	assert.Equal(t, "2024-05-01T00:00:00Z", msg.Data["expiresAt"])
}
