// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/cardtable/uno/internal/cache"
	"github.com/cardtable/uno/internal/database"
	"github.com/cardtable/uno/internal/handlers"
	"github.com/cardtable/uno/internal/metrics"
	"github.com/cardtable/uno/internal/middleware"
	"github.com/cardtable/uno/internal/room"
	"github.com/cardtable/uno/internal/uno"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	ctx := context.Background()

	// Both sinks are optional: unset REDIS_ADDR / DATABASE_URL disables them.
	history, err := cache.ConnectHistory(ctx)
	if err != nil {
		logger.Fatalf("connect history queue: %v", err)
	}
	if history != nil {
		logger.Info("action history queue enabled")
	}

	pool, err := database.Connect(ctx)
	if err != nil {
		logger.Fatalf("connect database: %v", err)
	}
	results := database.NewResults(pool)
	if err := results.EnsureSchema(ctx); err != nil {
		logger.Fatalf("ensure schema: %v", err)
	}
	if results != nil {
		logger.Info("game results archive enabled")
	}

	m := metrics.New("uno")

	store := room.NewStore(logger)
	store.Metrics = m
	store.Configure = func(r *room.Room) {
		r.RecordActionFn = func(roomID string, action uno.Action, state uno.GameState) {
			go func() {
				if err := history.PublishAction(context.Background(), roomID, action, state); err != nil {
					logger.Warnf("publish action for room %s: %v", roomID, err)
				}
			}()
		}
		r.RecordResultFn = func(roomID string, state uno.GameState) {
			go func() {
				if err := results.RecordResult(context.Background(), roomID, state); err != nil {
					logger.Warnf("record result for room %s: %v", roomID, err)
				}
			}()
		}
	}

	mux := http.NewServeMux()

	mux.Handle("/ws", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.RoomWSHandler(logger, store, m),
	)))
	mux.Handle("/rooms", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.ListRoomsHandler(store),
	)))
	mux.Handle("/metrics", metrics.Handler())

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
