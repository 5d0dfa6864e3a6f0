// Package realtime relays database change notifications to websocket clients.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/db"
)

// MessageChannel is the NOTIFY channel the messages insert trigger publishes on
const MessageChannel = "message_inserted"

const (
	minBackoff = 500 * time.Millisecond
	maxBackoff = 30 * time.Second
)

// Conn is a dedicated connection able to LISTEN
type Conn interface {
	Listen(ctx context.Context, channel string) error
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Release()
}

// Connector opens a listening connection
type Connector func(ctx context.Context) (Conn, error)

type poolConn struct {
	conn *pgxpool.Conn
}

func (c poolConn) Listen(ctx context.Context, channel string) error {
	_, err := c.conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize())
	return err
}

func (c poolConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	return c.conn.Conn().WaitForNotification(ctx)
}

func (c poolConn) Release() {
	c.conn.Release()
}

// PoolConnector checks out a connection from the pool for each listen session
func PoolConnector(database *db.PostgresDB) Connector {
	return func(ctx context.Context) (Conn, error) {
		conn, err := database.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		return poolConn{conn: conn}, nil
	}
}

// messageRow mirrors row_to_json output of the messages table
type messageRow struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// Relay listens for new messages and publishes message.created to both parties
type Relay struct {
	connect   Connector
	publisher services.EventPublisher
	logger    zerolog.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewRelay creates a new Relay
func NewRelay(connect Connector, publisher services.EventPublisher, logger zerolog.Logger) *Relay {
	return &Relay{
		connect:   connect,
		publisher: publisher,
		logger:    logger.With().Str("component", "realtime").Logger(),
		sleep:     sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Run listens until ctx is cancelled, reconnecting with exponential backoff
func (r *Relay) Run(ctx context.Context) {
	backoff := minBackoff
	for {
		connected, err := r.listen(ctx)
		if ctx.Err() != nil {
			r.logger.Info().Msg("Realtime relay stopped")
			return
		}
		if connected {
			backoff = minBackoff
		}

		r.logger.Warn().Err(err).Dur("retryIn", backoff).Msg("Realtime relay disconnected")
		if r.sleep(ctx, backoff) != nil {
			r.logger.Info().Msg("Realtime relay stopped")
			return
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

// listen runs one LISTEN session. connected reports whether LISTEN succeeded.
func (r *Relay) listen(ctx context.Context) (connected bool, err error) {
	conn, err := r.connect(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Release()

	if err := conn.Listen(ctx, MessageChannel); err != nil {
		return false, fmt.Errorf("failed to listen on %s: %w", MessageChannel, err)
	}
	r.logger.Info().Str("channel", MessageChannel).Msg("Realtime relay listening")

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return true, err
		}
		if notification.Channel != MessageChannel {
			continue
		}
		if err := r.HandlePayload(notification.Payload); err != nil {
			r.logger.Error().Err(err).Msg("Dropping malformed notification")
		}
	}
}

// HandlePayload decodes a messages row and publishes it
func (r *Relay) HandlePayload(payload string) error {
	var row messageRow
	if err := json.Unmarshal([]byte(payload), &row); err != nil {
		return fmt.Errorf("failed to decode message notification: %w", err)
	}
	if row.ID == "" || row.SenderID == "" || row.ReceiverID == "" {
		return errors.New("message notification is missing ids")
	}

	message := models.Message{
		ID:         row.ID,
		SenderID:   row.SenderID,
		ReceiverID: row.ReceiverID,
		Content:    row.Content,
		Read:       row.Read,
		CreatedAt:  row.CreatedAt.UTC(),
	}
	r.publisher.Publish([]string{message.SenderID, message.ReceiverID}, services.EventMessageCreated, message)
	return nil
}
