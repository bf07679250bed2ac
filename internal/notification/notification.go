// Package notification delivers user-facing messages asynchronously. Delivery
// is fire-and-forget: failures are logged and counted, never returned to the
// operation that triggered them.
package notification

import (
	"context"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/kelvinmfon2025/book-api/internal/logger"
)

// Kind identifies the template of a notification.
type Kind string

const (
	KindEmailVerification    Kind = "email_verification"
	KindWelcome              Kind = "welcome"
	KindReservationCreated   Kind = "reservation_created"
	KindReservationAvailable Kind = "reservation_available"
	KindReservationFulfilled Kind = "reservation_fulfilled"
	KindReservationCanceled  Kind = "reservation_canceled"
)

// Message is a notification addressed to one user.
type Message struct {
	Kind      Kind              `json:"kind"`
	UserID    string            `json:"userId,omitempty"`
	To        string            `json:"to"`
	Subject   string            `json:"subject"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes each message as a JSON payload to the structured log. It
// stands in for a mail gateway.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender writing to the default logger.
func NewLogSender() *LogSender {
	return &LogSender{log: logger.Default()}
}

// NewLogSenderWithLogger creates a LogSender writing to l.
func NewLogSenderWithLogger(l *slog.Logger) *LogSender {
	return &LogSender{log: l}
}

// Send encodes msg and logs it.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	payload, err := jsoniter.ConfigFastest.Marshal(msg)
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "Notification sent",
		slog.String("kind", string(msg.Kind)),
		slog.String("to", msg.To),
		slog.String("payload", string(payload)),
	)
	return nil
}
