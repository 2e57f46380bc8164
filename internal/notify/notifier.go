// Package notify pushes new job identifiers onto a Redis list so workers
// can pick them up without polling the database. Delivery is best-effort:
// a push failure is logged and swallowed, it never fails the request that
// created the job.
package notify

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// QueueName is the Redis list the worker consumes.
const QueueName = "jobs"

const pushTimeout = 5 * time.Second

// Notifier signals an external worker that a job was created.
type Notifier interface {
	JobCreated(id int)
}

// RedisNotifier pushes job ids onto a Redis list. The caller owns the
// client lifecycle.
type RedisNotifier struct {
	client redis.Cmdable
	logger zerolog.Logger
}

func NewRedisNotifier(client redis.Cmdable, logger zerolog.Logger) *RedisNotifier {
	return &RedisNotifier{client: client, logger: logger}
}

// JobCreated pushes the id from its own goroutine with a detached timeout
// context, so a slow or dead broker never holds up the create request.
func (n *RedisNotifier) JobCreated(id int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		if err := n.client.RPush(ctx, QueueName, strconv.Itoa(id)).Err(); err != nil {
			n.logger.Warn().Err(err).Int("job_id", id).Msg("failed to push job to notification queue")
			return
		}
		n.logger.Debug().Int("job_id", id).Msgf("pushed job to queue %q", QueueName)
	}()
}

// Noop is used when no broker is configured; workers fall back to polling.
type Noop struct {
	logger zerolog.Logger
}

func NewNoop(logger zerolog.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) JobCreated(id int) {
	n.logger.Debug().Int("job_id", id).Msg("notification channel not configured, job saved to store only")
}

var (
	_ Notifier = (*RedisNotifier)(nil)
	_ Notifier = (*Noop)(nil)
)
