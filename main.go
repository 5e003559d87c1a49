package main

import (
	"log"
	"net/http"
	"time"

	"github.com/mzielinska/impostor-party/internal/config"
	"github.com/mzielinska/impostor-party/internal/handlers"
	"github.com/mzielinska/impostor-party/internal/server"
	"github.com/mzielinska/impostor-party/internal/store"
)

func main() {
	cfg := config.Load()

	rooms := store.NewRoomStore()
	ctx := handlers.NewContext(rooms, cfg)

	if cfg.RoomTTL > 0 {
		go sweepIdle(rooms, ctx, cfg.RoomTTL, cfg.SweepInterval)
	}

	router := server.RegisterRoutes(ctx)

	log.Printf("Server starting on %s (latency=%s poll=%s)", cfg.Addr, cfg.CommandLatency, cfg.PollInterval)
	log.Fatal(http.ListenAndServe(cfg.Addr, router))
}

// sweepIdle periodically deletes rooms untouched for longer than the TTL and
// evicts roomless gateway clients whose browser never said goodbye
func sweepIdle(rooms *store.RoomStore, ctx *handlers.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if removed := rooms.SweepIdle(ttl); removed > 0 {
			log.Printf("Swept %d idle room(s)", removed)
		}
		if evicted := ctx.SweepIdleClients(ttl); evicted > 0 {
			log.Printf("Swept %d idle client(s)", evicted)
		}
	}
}
