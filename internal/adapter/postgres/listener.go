package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Listener receives LISTEN/NOTIFY events for a single channel over a
// dedicated connection acquired from the pool. Triggers on the record tables
// call pg_notify after every committed change; the payload carries the table
// name and is informational only.
type Listener struct {
	pool    *pgxpool.Pool
	channel string
}

// NewListener creates a Listener for the given notification channel.
func NewListener(pool *pgxpool.Pool, channel string) *Listener {
	return &Listener{pool: pool, channel: channel}
}

// Listen blocks, invoking onChange with the notification payload for every
// event until ctx is canceled (returns ctx.Err()) or the connection fails.
// The caller owns reconnect policy; each call acquires a fresh connection.
func (l *Listener) Listen(ctx context.Context, onChange func(payload string)) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer conn.Release()

	// Identifier.Sanitize quotes the channel name; LISTEN takes no bind params.
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen on channel %s: %w", l.channel, err)
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("wait for notification: %w", err)
		}
		onChange(notification.Payload)
	}
}
