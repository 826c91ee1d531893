// internal/database/results.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardtable/uno/internal/uno"
)

// Results archives finished games. Only the outcome is persisted; live
// game state never leaves process memory. A nil *Results is a no-op.
type Results struct {
	pool *pgxpool.Pool
}

// NewResults wraps a pool; pass nil to disable archiving.
func NewResults(pool *pgxpool.Pool) *Results {
	if pool == nil {
		return nil
	}
	return &Results{pool: pool}
}

// EnsureSchema creates the game_results table if it does not exist.
func (r *Results) EnsureSchema(ctx context.Context) error {
	if r == nil {
		return nil
	}
	q := `
		CREATE TABLE IF NOT EXISTS game_results (
			id BIGSERIAL PRIMARY KEY,
			room_id TEXT NOT NULL,
			winner_id TEXT NOT NULL,
			winner_name TEXT NOT NULL,
			player_count INT NOT NULL,
			finished_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := r.pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure game_results schema: %w", err)
	}
	return nil
}

// RecordResult inserts one finished game's outcome.
func (r *Results) RecordResult(ctx context.Context, roomID string, state uno.GameState) error {
	if r == nil {
		return nil
	}
	winnerName := ""
	if i := state.FindPlayer(state.Winner); i >= 0 {
		winnerName = state.Players[i].Name
	}
	q := `
		INSERT INTO game_results (room_id, winner_id, winner_name, player_count, finished_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, q, roomID, state.Winner, winnerName, len(state.Players), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert game result: %w", err)
	}
	return nil
}
