package store

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/mzielinska/impostor-party/internal/game"
	"github.com/mzielinska/impostor-party/internal/models"
)

// RoomStore manages room storage for the whole process. All mutation of a
// room happens under that room's lock; the store lock only guards the map.
type RoomStore struct {
	rooms map[string]*models.Room
	mu    sync.RWMutex
}

// NewRoomStore creates a new room store
func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*models.Room),
	}
}

// Get retrieves a room by code (case-insensitive)
func (s *RoomStore) Get(code string) (*models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, exists := s.rooms[strings.ToUpper(code)]
	return room, exists
}

// Exists checks if a room code is in use
func (s *RoomStore) Exists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.rooms[strings.ToUpper(code)]
	return exists
}

// Delete removes a room
func (s *RoomStore) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, strings.ToUpper(code))
}

// Len returns the number of live rooms
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// CreateRoom creates a room with the caller as host and returns it.
// The caller supplies its own connection-scoped player ID.
func (s *RoomStore) CreateRoom(playerID, nickname string, settings models.GameSettings) (*models.Room, error) {
	if !game.ValidNickname(nickname) {
		return nil, ErrInvalidNickname
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var code string
	for {
		code = game.GenerateRoomCode()
		if _, taken := s.rooms[code]; !taken {
			break
		}
	}

	room := &models.Room{
		Code:     code,
		Players:  []*models.Player{{ID: playerID, Nickname: nickname, IsHost: true}},
		Settings: settings,
		HostID:   playerID,
		Touched:  time.Now(),
	}
	s.rooms[code] = room

	log.Printf("[RoomStore] created room %s host=%s", code, playerID)
	return room, nil
}

// JoinRoom appends a non-host player and returns the updated player list
func (s *RoomStore) JoinRoom(code, playerID, nickname string) ([]models.Player, error) {
	if !game.ValidNickname(nickname) {
		return nil, ErrInvalidNickname
	}

	room, exists := s.Get(code)
	if !exists {
		return nil, ErrRoomNotFound
	}

	room.Lock()
	defer room.Unlock()

	if len(room.Players) >= room.Settings.MaxPlayers {
		return nil, ErrRoomFull
	}
	if room.HasNickname(nickname) {
		return nil, ErrNicknameTaken
	}

	room.Players = append(room.Players, &models.Player{ID: playerID, Nickname: nickname})
	room.Touched = time.Now()

	log.Printf("[RoomStore] player %s joined room %s (%d players)", playerID, room.Code, len(room.Players))
	return room.PlayerSnapshot(), nil
}

// LeaveRoom removes the player. The room is deleted when it becomes empty;
// otherwise, if the host left, the player now at index 0 becomes host.
func (s *RoomStore) LeaveRoom(code, playerID string) {
	room, exists := s.Get(code)
	if !exists {
		return
	}

	room.Lock()
	_, idx := room.PlayerByID(playerID)
	if idx < 0 {
		room.Unlock()
		return
	}

	wasHost := room.HostID == playerID
	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)
	room.Touched = time.Now()
	empty := len(room.Players) == 0

	// a mid-round leave can strand the turn index past the shrunken list,
	// which would lock every remaining player out of the hints phase
	if !empty && room.Game != nil && room.Game.CurrentTurn >= len(room.Players) {
		room.Game.CurrentTurn = 0
	}

	if !empty && wasHost {
		room.HostID = room.Players[0].ID
		room.Players[0].IsHost = true
		log.Printf("[RoomStore] host left room %s, new host=%s", room.Code, room.HostID)
	}
	room.Unlock()

	if empty {
		s.Delete(room.Code)
		log.Printf("[RoomStore] room %s is empty, deleted", room.Code)
		return
	}

	log.Printf("[RoomStore] player %s left room %s (%d players)", playerID, room.Code, len(room.Players))
}

// MutateGameState applies fn to the room under its lock. A missing room is
// a tolerated race and the call is a silent no-op.
func (s *RoomStore) MutateGameState(code string, fn func(room *models.Room) error) error {
	room, exists := s.Get(code)
	if !exists {
		return nil
	}

	room.Lock()
	defer room.Unlock()
	room.Touched = time.Now()
	return fn(room)
}

// SweepIdle deletes rooms untouched for longer than maxAge and returns how
// many were removed.
func (s *RoomStore) SweepIdle(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for code, room := range s.rooms {
		room.RLock()
		idle := room.Touched.Before(cutoff)
		room.RUnlock()
		if idle {
			delete(s.rooms, code)
			removed++
			log.Printf("[RoomStore] swept idle room %s", code)
		}
	}
	return removed
}
