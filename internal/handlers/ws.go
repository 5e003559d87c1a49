package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/mzielinska/impostor-party/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// commandFrame is one inbound WebSocket message: a named command and payload
type commandFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// HandleWS runs the WebSocket gateway: one session client per connection,
// inbound frames dispatched as commands, every subscribed event forwarded
// out as a JSON frame.
func (ctx *Context) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Handlers] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	client := session.NewClient(ctx.Store, ctx.sessionConfig())
	defer client.Close()

	log.Printf("[Handlers] websocket client connected: %s", client.ID)

	// Connection ack carries the generated identity; sent before the writer
	// pump starts so nothing else writes concurrently.
	if err := conn.WriteJSON(session.Event{
		Name: "connected",
		Data: map[string]string{"playerId": client.ID},
	}); err != nil {
		return
	}

	// Writer pump: forward session events until the reader returns.
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case ev := <-client.Events():
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("[Handlers] websocket write to %s failed: %v", client.ID, err)
					return
				}
			}
		}
	}()

	for {
		var frame commandFrame
		if err := conn.ReadJSON(&frame); err != nil {
			log.Printf("[Handlers] websocket client %s disconnected: %v", client.ID, err)
			return
		}
		if err := client.Dispatch(frame.Type, frame.Data); err != nil {
			log.Printf("[Handlers] websocket client %s: bad command %q: %v", client.ID, frame.Type, err)
		}
	}
}
