package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// HandleEvents streams the cookie-identified player's session events via
// Server-Sent Events. Each frame is the event name plus its JSON payload;
// reconnects resume on the same client thanks to the cookie.
func (ctx *Context) HandleEvents(w http.ResponseWriter, r *http.Request) {
	playerID := ctx.playerID(w, r)
	client := ctx.clientFor(playerID)

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}
	flusher.Flush()

	if debug {
		log.Printf("[Handlers] SSE stream opened for player %s", playerID)
	}

	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			if debug {
				log.Printf("[Handlers] SSE stream closed for player %s", playerID)
			}
			return
		case ev := <-client.Events():
			data, err := json.Marshal(ev.Data)
			if err != nil {
				log.Printf("[Handlers] SSE marshal error for player %s: %v", playerID, err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, data)
			flusher.Flush()
		}
	}
}
