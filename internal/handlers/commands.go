package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/mzielinska/impostor-party/internal/session"
)

const playerCookie = "player_id"

// playerID reads the session cookie, minting one on first contact
func (ctx *Context) playerID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(playerCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     playerCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// HandleCommand applies one named command frame for the cookie-identified
// player. Synchronous validation failures come back as 400; everything else
// lands on the player's event stream after the command latency.
func (ctx *Context) HandleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var frame struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&frame); err != nil {
		http.Error(w, "Invalid command frame", http.StatusBadRequest)
		return
	}

	playerID := ctx.playerID(w, r)
	client := ctx.clientFor(playerID)

	if debug {
		log.Printf("[Handlers] command %s from player %s", frame.Type, playerID)
	}

	if err := client.Dispatch(frame.Type, frame.Data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if frame.Type == session.CmdLeaveRoom {
		ctx.dropClient(playerID)
	}

	w.WriteHeader(http.StatusAccepted)
}
