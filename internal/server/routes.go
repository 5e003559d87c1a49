package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mzielinska/impostor-party/internal/handlers"
)

// RegisterRoutes builds the HTTP router for all gateways
func RegisterRoutes(ctx *handlers.Context) http.Handler {
	r := mux.NewRouter()

	r.Use(corsMiddleware)

	r.HandleFunc("/healthz", ctx.HandleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{code}", ctx.HandleRoomInfo).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{code}/qr", ctx.HandleRoomQR).Methods(http.MethodGet)

	r.HandleFunc("/commands", ctx.HandleCommand).Methods(http.MethodPost)
	r.HandleFunc("/events", ctx.HandleEvents).Methods(http.MethodGet)

	r.HandleFunc("/ws", ctx.HandleWS)

	return r
}

// corsMiddleware allows browser clients from any origin
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")

		// Websocket upgrades skip further CORS handling
		if strings.ToLower(r.Header.Get("Upgrade")) == "websocket" {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
