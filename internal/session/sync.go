package session

import (
	"log"
	"time"

	"github.com/mzielinska/impostor-party/internal/game"
)

// setRoom records membership and starts this client's poll loop
func (c *Client) setRoom(code string) {
	c.mu.Lock()
	c.roomCode = code
	alreadyPolling := c.stopPoll != nil
	var stop chan struct{}
	if !alreadyPolling {
		stop = make(chan struct{})
		c.stopPoll = stop
	}
	c.mu.Unlock()

	if !alreadyPolling {
		go c.poll(stop)
	}
}

func (c *Client) stopPolling() {
	c.mu.Lock()
	if c.stopPoll != nil {
		close(c.stopPoll)
		c.stopPoll = nil
	}
	c.mu.Unlock()
}

// poll is the sync channel: every tick it re-reads the room and re-delivers
// membership and game state. Subscribers converge on the store's state
// within one poll interval of any mutation.
func (c *Client) poll(stop chan struct{}) {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !c.tick() {
				return
			}
		}
	}
}

// tick delivers one snapshot; returns false once the room is gone
func (c *Client) tick() bool {
	c.mu.Lock()
	code := c.roomCode
	c.mu.Unlock()
	if code == "" {
		return false
	}

	room, exists := c.store.Get(code)
	if !exists {
		log.Printf("[Session] client %s: room %s closed", c.ID, code)
		c.mu.Lock()
		c.roomCode = ""
		c.stopPoll = nil
		c.mu.Unlock()
		c.deliver(EventRoomClosed, nil)
		return false
	}

	room.RLock()
	players := room.PlayerSnapshot()
	view := game.ViewFor(room, c.ID)
	room.RUnlock()

	c.deliver(EventPlayersUpdate, PlayersData{Players: players})
	if view != nil {
		c.deliver(EventGameStateUpdate, GameStateData{GameState: view})
	}
	return true
}
