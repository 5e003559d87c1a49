package models

import (
	"sync"
	"time"
)

// GameSettings are the host-adjustable parameters of a room
type GameSettings struct {
	MinPlayers    int      `json:"minPlayers"`
	MaxPlayers    int      `json:"maxPlayers"`
	ImpostorCount int      `json:"impostorCount"`
	CustomWords   []string `json:"customWords"`
}

// HasCustomWord reports whether word is already in the custom pool
func (s *GameSettings) HasCustomWord(word string) bool {
	for _, w := range s.CustomWords {
		if w == word {
			return true
		}
	}
	return false
}

// Room is a game session identified by a unique code. Players keeps join
// order; HostID always names one of them while the room exists.
type Room struct {
	Code     string
	Players  []*Player
	Settings GameSettings
	HostID   string
	Game     *GameState // nil until started
	Touched  time.Time

	mu sync.RWMutex
}

// Lock acquires the room's write lock
func (r *Room) Lock() {
	r.mu.Lock()
}

// Unlock releases the room's write lock
func (r *Room) Unlock() {
	r.mu.Unlock()
}

// RLock acquires the room's read lock
func (r *Room) RLock() {
	r.mu.RLock()
}

// RUnlock releases the room's read lock
func (r *Room) RUnlock() {
	r.mu.RUnlock()
}

// PlayerByID returns the player and their index, or nil and -1 (lock held by caller)
func (r *Room) PlayerByID(id string) (*Player, int) {
	for i, p := range r.Players {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// HasNickname reports whether any player uses the exact nickname (case-sensitive)
func (r *Room) HasNickname(nickname string) bool {
	for _, p := range r.Players {
		if p.Nickname == nickname {
			return true
		}
	}
	return false
}

// PlayerSnapshot returns a copy of the player list safe to hand to clients
func (r *Room) PlayerSnapshot() []Player {
	players := make([]Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = *p
	}
	return players
}
