package handlers

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/mzielinska/impostor-party/internal/config"
	"github.com/mzielinska/impostor-party/internal/session"
	"github.com/mzielinska/impostor-party/internal/store"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// gatewayClient pairs an HTTP-gateway session client with its last use, so
// clients whose browser vanished without a leave command can be evicted
type gatewayClient struct {
	client  *session.Client
	touched time.Time
}

// Context holds shared application dependencies
type Context struct {
	Store  *store.RoomStore
	Config *config.Config

	mu      sync.Mutex
	clients map[string]*gatewayClient // playerID -> client, for the HTTP gateway
}

// NewContext wires the handler dependencies
func NewContext(s *store.RoomStore, cfg *config.Config) *Context {
	return &Context{
		Store:   s,
		Config:  cfg,
		clients: make(map[string]*gatewayClient),
	}
}

func (ctx *Context) sessionConfig() session.Config {
	return session.Config{
		CommandLatency: ctx.Config.CommandLatency,
		PollInterval:   ctx.Config.PollInterval,
	}
}

// clientFor returns the HTTP-gateway client for a player ID, creating one on
// first use so a browser can reconnect its event stream.
func (ctx *Context) clientFor(playerID string) *session.Client {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if entry, ok := ctx.clients[playerID]; ok {
		entry.touched = time.Now()
		return entry.client
	}
	c := session.NewClientWithID(playerID, ctx.Store, ctx.sessionConfig())
	ctx.clients[playerID] = &gatewayClient{client: c, touched: time.Now()}
	return c
}

// dropClient removes and closes a gateway client
func (ctx *Context) dropClient(playerID string) {
	ctx.mu.Lock()
	entry, ok := ctx.clients[playerID]
	delete(ctx.clients, playerID)
	ctx.mu.Unlock()
	if ok {
		entry.client.Close()
	}
}

// SweepIdleClients closes and removes gateway clients that are not in a room
// and have not issued a request for longer than maxAge. Clients still in a
// room are left to the room TTL sweep, which closes their rooms first.
func (ctx *Context) SweepIdleClients(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	ctx.mu.Lock()
	var stale []*session.Client
	for playerID, entry := range ctx.clients {
		if entry.client.RoomCode() == "" && entry.touched.Before(cutoff) {
			delete(ctx.clients, playerID)
			stale = append(stale, entry.client)
		}
	}
	ctx.mu.Unlock()

	for _, c := range stale {
		c.Close()
		log.Printf("[Handlers] swept idle gateway client %s", c.ID)
	}
	return len(stale)
}
