package session

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mzielinska/impostor-party/internal/game"
	"github.com/mzielinska/impostor-party/internal/models"
	"github.com/mzielinska/impostor-party/internal/store"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Config tunes one client's timing: how long a command takes to apply and
// how often the poll loop re-reads the room.
type Config struct {
	CommandLatency time.Duration
	PollInterval   time.Duration
}

// DefaultConfig uses the standard production timing
func DefaultConfig() Config {
	return Config{
		CommandLatency: 100 * time.Millisecond,
		PollInterval:   500 * time.Millisecond,
	}
}

// Event is a named update delivered to the subscriber
type Event struct {
	Name string `json:"type"`
	Data any    `json:"data"`
}

// Event payloads, serialized as-is by the SSE and websocket gateways
type (
	RoomCreatedData struct {
		RoomCode string `json:"roomCode"`
	}
	RoomJoinedData struct {
		Players []models.Player `json:"players"`
	}
	JoinErrorData struct {
		Error string `json:"error"`
	}
	PlayersData struct {
		Players []models.Player `json:"players"`
	}
	GameStateData struct {
		GameState *models.GameStateView `json:"gameState"`
	}
	CommandErrorData struct {
		Command string `json:"command"`
		Error   string `json:"error"`
	}
)

// Client is the per-connection facade: a generated identity plus a polling
// subscription onto the room store. Commands are applied after a fixed
// simulated latency; their effects reach every subscriber (including this
// one) through the periodic poll tick.
type Client struct {
	ID    string
	store *store.RoomStore
	cfg   Config
	cache NicknameCache // optional

	events chan Event

	mu       sync.Mutex
	roomCode string
	stopPoll chan struct{}
	closed   bool
}

// NewClient creates a client with a fresh connection-scoped identity
func NewClient(s *store.RoomStore, cfg Config) *Client {
	return NewClientWithID(uuid.New().String(), s, cfg)
}

// NewClientWithID creates a client bound to an existing identity, used by
// gateways that keep the identity in a cookie across requests.
func NewClientWithID(id string, s *store.RoomStore, cfg Config) *Client {
	return &Client{
		ID:     id,
		store:  s,
		cfg:    cfg,
		events: make(chan Event, game.SSEBufferSize),
	}
}

// WithNicknameCache attaches a cache that receives every nickname change
func (c *Client) WithNicknameCache(cache NicknameCache) *Client {
	c.cache = cache
	return c
}

// Events returns the channel the client's updates are delivered on
func (c *Client) Events() <-chan Event {
	return c.events
}

// RoomCode returns the code of the room the client is currently in
func (c *Client) RoomCode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomCode
}

// deliver pushes an event without blocking. The poll loop re-sends full
// state every tick, so a drop on a full buffer heals on the next tick.
func (c *Client) deliver(name string, data any) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}
	select {
	case c.events <- Event{Name: name, Data: data}:
	default:
		if debug {
			log.Printf("[Session] client %s: dropped event %s (slow consumer)", c.ID, name)
		}
	}
}

// after schedules fn behind the simulated command latency
func (c *Client) after(fn func()) {
	time.AfterFunc(c.cfg.CommandLatency, fn)
}

func (c *Client) rememberNickname(nickname string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Store(nickname); err != nil {
		log.Printf("[Session] client %s: nickname cache write failed: %v", c.ID, err)
	}
}

// CreateRoom validates the input synchronously, then creates the room after
// the command latency and delivers roomCreated.
func (c *Client) CreateRoom(nickname string, settings models.GameSettings) error {
	if !game.ValidNickname(nickname) {
		return store.ErrInvalidNickname
	}
	normalized, err := game.NormalizeSettings(settings)
	if err != nil {
		return err
	}

	c.after(func() {
		room, err := c.store.CreateRoom(c.ID, nickname, normalized)
		if err != nil {
			c.deliver(EventJoinError, JoinErrorData{Error: err.Error()})
			return
		}
		c.rememberNickname(nickname)
		c.setRoom(room.Code)
		c.deliver(EventRoomCreated, RoomCreatedData{RoomCode: room.Code})
	})
	return nil
}

// JoinRoom validates the nickname synchronously; lookup failures are
// reported on the joinError event after the command latency.
func (c *Client) JoinRoom(code, nickname string) error {
	if !game.ValidNickname(nickname) {
		return store.ErrInvalidNickname
	}

	c.after(func() {
		players, err := c.store.JoinRoom(code, c.ID, nickname)
		if err != nil {
			c.deliver(EventJoinError, JoinErrorData{Error: err.Error()})
			return
		}
		c.rememberNickname(nickname)
		c.setRoom(code)
		c.deliver(EventRoomJoined, RoomJoinedData{Players: players})
	})
	return nil
}

// StartGame asks the phase machine to begin round one
func (c *Client) StartGame() {
	c.mutate(CmdStartGame, func(room *models.Room) error {
		return game.Start(room, c.ID)
	})
}

// SubmitHint submits this player's hint for the current turn
func (c *Client) SubmitHint(text string) {
	c.mutate(CmdSubmitHint, func(room *models.Room) error {
		return game.SubmitHint(room, c.ID, text)
	})
}

// OpenVoting moves the room into the voting phase (host action)
func (c *Client) OpenVoting() {
	c.mutate(CmdRoundAction, func(room *models.Room) error {
		return game.OpenVoting(room, c.ID)
	})
}

// SubmitVote casts this player's vote for a nickname
func (c *Client) SubmitVote(nickname string) {
	c.mutate(CmdSubmitVote, func(room *models.Room) error {
		return game.SubmitVote(room, c.ID, nickname)
	})
}

// NextRound starts another round with a fresh assignment (host action)
func (c *Client) NextRound() {
	c.mutate(CmdNextRound, func(room *models.Room) error {
		return game.NextRound(room, c.ID)
	})
}

// ReturnToLobby clears the finished game (host action)
func (c *Client) ReturnToLobby() {
	c.mutate(CmdRoundAction, func(room *models.Room) error {
		return game.ReturnToLobby(room, c.ID)
	})
}

// LeaveRoom removes the player from their room and stops the poll loop
func (c *Client) LeaveRoom() {
	c.mu.Lock()
	code := c.roomCode
	c.roomCode = ""
	c.mu.Unlock()

	c.stopPolling()
	if code == "" {
		return
	}
	c.after(func() {
		c.store.LeaveRoom(code, c.ID)
	})
}

// Close tears the client down: leave immediately and stop delivering events
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	code := c.roomCode
	c.roomCode = ""
	c.mu.Unlock()

	c.stopPolling()
	if code != "" {
		c.store.LeaveRoom(code, c.ID)
	}
}

// mutate runs a phase-machine mutation behind the command latency. A room
// that vanished in the meantime is a tolerated race (silent no-op); real
// rejections come back on the commandError event.
func (c *Client) mutate(command string, fn func(room *models.Room) error) {
	c.mu.Lock()
	code := c.roomCode
	c.mu.Unlock()
	if code == "" {
		c.deliver(EventCommandError, CommandErrorData{Command: command, Error: "not in a room"})
		return
	}

	c.after(func() {
		if err := c.store.MutateGameState(code, fn); err != nil {
			c.deliver(EventCommandError, CommandErrorData{Command: command, Error: err.Error()})
		}
	})
}

// Dispatch decodes a named command frame from a gateway and applies it.
// Unknown names and malformed payloads are reported, never fatal.
func (c *Client) Dispatch(name string, payload json.RawMessage) error {
	switch name {
	case CmdCreateRoom:
		var p struct {
			Nickname string              `json:"nickname"`
			Settings models.GameSettings `json:"settings"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return err
		}
		return c.CreateRoom(p.Nickname, p.Settings)

	case CmdJoinRoom:
		var p struct {
			RoomCode string `json:"roomCode"`
			Nickname string `json:"nickname"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return err
		}
		return c.JoinRoom(p.RoomCode, p.Nickname)

	case CmdStartGame:
		c.StartGame()

	case CmdSubmitHint:
		var p struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return err
		}
		c.SubmitHint(p.Text)

	case CmdRoundAction:
		var p struct {
			Phase models.Phase `json:"phase"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return err
		}
		switch p.Phase {
		case models.PhaseVoting:
			c.OpenVoting()
		case models.PhaseLobby:
			c.ReturnToLobby()
		default:
			return fmt.Errorf("unsupported round action %q", p.Phase)
		}

	case CmdSubmitVote:
		var p struct {
			Nickname string `json:"nickname"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return err
		}
		c.SubmitVote(p.Nickname)

	case CmdNextRound:
		c.NextRound()

	case CmdLeaveRoom:
		c.LeaveRoom()

	default:
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}
