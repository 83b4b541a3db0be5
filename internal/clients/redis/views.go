package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/onetool/server/internal/logger"
)

// ViewCounter buffers Q&A post view hits in redis; the qna service folds the
// pending count back into the row on each detail read, so redis only ever
// holds views not yet persisted. Counts are best-effort: a down redis never
// fails a board read, it only stops the counter moving.
type ViewCounter interface {
	// Hit records one view and returns the total pending count.
	Hit(ctx context.Context, boardID uuid.UUID) (int64, error)
	// Flush subtracts n views that have been persisted. Hits that land
	// between Hit and Flush stay pending.
	Flush(ctx context.Context, boardID uuid.UUID, n int64) error
	Close() error
}

type viewCounter struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewViewCounter(log *logger.Logger, addr string) (ViewCounter, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &viewCounter{
		log: log.With("service", "RedisViewCounter"),
		rdb: rdb,
	}, nil
}

func viewKey(boardID uuid.UUID) string {
	return "qna:views:" + boardID.String()
}

func (vc *viewCounter) Hit(ctx context.Context, boardID uuid.UUID) (int64, error) {
	n, err := vc.rdb.Incr(ctx, viewKey(boardID)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr: %w", err)
	}
	return n, nil
}

func (vc *viewCounter) Flush(ctx context.Context, boardID uuid.UUID, n int64) error {
	if n <= 0 {
		return nil
	}
	if err := vc.rdb.DecrBy(ctx, viewKey(boardID), n).Err(); err != nil {
		return fmt.Errorf("redis decrby: %w", err)
	}
	return nil
}

func (vc *viewCounter) Close() error {
	return vc.rdb.Close()
}
