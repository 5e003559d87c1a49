package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"
)

// HandleHealthz reports liveness
func (ctx *Context) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleRoomInfo is a lightweight probe for a room code, used by clients to
// validate an invite before joining.
func (ctx *Context) HandleRoomInfo(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	room, exists := ctx.Store.Get(code)
	if !exists {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	room.RLock()
	info := map[string]any{
		"code":       room.Code,
		"players":    len(room.Players),
		"maxPlayers": room.Settings.MaxPlayers,
		"inGame":     room.Game != nil,
	}
	room.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}

// HandleRoomQR renders an invite link QR code for a room as a PNG
func (ctx *Context) HandleRoomQR(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if !ctx.Store.Exists(code) {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	link := ctx.Config.BaseURL + "/?room=" + code
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		log.Printf("[Handlers] QR encode failed for room %s: %v", code, err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
