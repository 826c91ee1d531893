// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cardtable/uno/internal/uno"
)

// DefaultQueueName is the Redis list (queue) name for game action logs.
const DefaultQueueName = "uno_actions"

// ActionRecord is one applied game action as pushed onto the history
// queue. Consumers (replay tooling, audits) read the queue; live game
// state is never stored here.
type ActionRecord struct {
	RoomID     string `json:"room_id"`
	ActionType string `json:"action_type"`
	Action     any    `json:"action"`
	Phase      string `json:"phase"`
	Winner     string `json:"winner,omitempty"`
	RecordedAt int64  `json:"recorded_at"`
}

// History publishes applied actions to a Redis list. A nil *History is a
// no-op, so the queue stays optional.
type History struct {
	rdb   *redis.Client
	queue string
}

// ConnectHistory initializes the history publisher from environment
// variables:
//   - REDIS_ADDR (required to enable; empty disables the queue)
//   - REDIS_DB (optional, default 0)
//   - HISTORY_QUEUE_NAME (optional, default "uno_actions")
func ConnectHistory(ctx context.Context) (*History, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   getEnvInt("REDIS_DB", 0),
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return &History{rdb: rdb, queue: getEnv("HISTORY_QUEUE_NAME", DefaultQueueName)}, nil
}

// PublishAction serializes the action into a record and pushes it onto
// the queue. Does not block beyond a quick network send.
func (h *History) PublishAction(ctx context.Context, roomID string, action uno.Action, state uno.GameState) error {
	if h == nil {
		return nil
	}
	record := ActionRecord{
		RoomID:     roomID,
		ActionType: action.ActionType(),
		Action:     action,
		Phase:      string(state.Phase),
		Winner:     state.Winner,
		RecordedAt: time.Now().Unix(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal ActionRecord: %w", err)
	}
	if err := h.rdb.RPush(ctx, h.queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list %q: %w", h.queue, err)
	}
	return nil
}

// Close releases the underlying client.
func (h *History) Close() error {
	if h == nil {
		return nil
	}
	return h.rdb.Close()
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
