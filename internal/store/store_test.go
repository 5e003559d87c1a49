package store

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzielinska/impostor-party/internal/models"
)

var roomCodeRe = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{6}$`)

func testSettings() models.GameSettings {
	return models.GameSettings{MinPlayers: 3, MaxPlayers: 5, ImpostorCount: 1}
}

func TestCreateRoom(t *testing.T) {
	s := NewRoomStore()

	room, err := s.CreateRoom("host-1", "Ann", testSettings())
	require.NoError(t, err)

	assert.Regexp(t, roomCodeRe, room.Code)
	assert.Equal(t, "host-1", room.HostID)
	require.Len(t, room.Players, 1)
	assert.Equal(t, "Ann", room.Players[0].Nickname)
	assert.True(t, room.Players[0].IsHost)
	assert.Nil(t, room.Game)
	assert.Equal(t, 1, s.Len())
}

func TestCreateRoomRejectsBadNickname(t *testing.T) {
	s := NewRoomStore()
	_, err := s.CreateRoom("p1", "x", testSettings())
	assert.ErrorIs(t, err, ErrInvalidNickname)
	assert.Equal(t, 0, s.Len())
}

func TestCreateRoomUniqueCodes(t *testing.T) {
	s := NewRoomStore()
	codes := make(map[string]bool)
	for i := 0; i < 50; i++ {
		room, err := s.CreateRoom("p", "Ann", testSettings())
		require.NoError(t, err)
		assert.False(t, codes[room.Code], "duplicate live code on iteration %d", i)
		codes[room.Code] = true
	}
}

func TestJoinRoom(t *testing.T) {
	s := NewRoomStore()
	room, err := s.CreateRoom("host-1", "Ann", testSettings())
	require.NoError(t, err)

	players, err := s.JoinRoom(room.Code, "p2", "Ben")
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Ben", players[1].Nickname)
	assert.False(t, players[1].IsHost)
}

func TestJoinRoomCaseInsensitiveCode(t *testing.T) {
	s := NewRoomStore()
	room, err := s.CreateRoom("host-1", "Ann", testSettings())
	require.NoError(t, err)

	_, err = s.JoinRoom(strings.ToLower(room.Code), "p2", "Ben")
	require.NoError(t, err)
}

func TestJoinRoomNotFound(t *testing.T) {
	s := NewRoomStore()
	_, err := s.JoinRoom("ZZZZZZ", "p1", "Ann")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestJoinRoomNicknameTaken(t *testing.T) {
	s := NewRoomStore()
	room, err := s.CreateRoom("host-1", "Ann", testSettings())
	require.NoError(t, err)

	_, err = s.JoinRoom(room.Code, "p2", "Ann")
	assert.ErrorIs(t, err, ErrNicknameTaken)

	got, _ := s.Get(room.Code)
	assert.Len(t, got.Players, 1)
}

func TestJoinRoomFull(t *testing.T) {
	s := NewRoomStore()
	settings := testSettings()
	settings.MaxPlayers = 3
	room, err := s.CreateRoom("p1", "Ann", settings)
	require.NoError(t, err)

	_, err = s.JoinRoom(room.Code, "p2", "Ben")
	require.NoError(t, err)
	_, err = s.JoinRoom(room.Code, "p3", "Cam")
	require.NoError(t, err)

	_, err = s.JoinRoom(room.Code, "p4", "Dee")
	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestLeaveRoomHostHandoff(t *testing.T) {
	s := NewRoomStore()
	room, err := s.CreateRoom("p1", "Ann", testSettings())
	require.NoError(t, err)
	_, err = s.JoinRoom(room.Code, "p2", "Ben")
	require.NoError(t, err)
	_, err = s.JoinRoom(room.Code, "p3", "Cam")
	require.NoError(t, err)

	s.LeaveRoom(room.Code, "p1")

	got, exists := s.Get(room.Code)
	require.True(t, exists)
	// the earliest joiner still present inherits the host role
	assert.Equal(t, "p2", got.HostID)
	assert.True(t, got.Players[0].IsHost)
	assert.Len(t, got.Players, 2)
}

func TestLeaveRoomNonHostKeepsHost(t *testing.T) {
	s := NewRoomStore()
	room, err := s.CreateRoom("p1", "Ann", testSettings())
	require.NoError(t, err)
	_, err = s.JoinRoom(room.Code, "p2", "Ben")
	require.NoError(t, err)

	s.LeaveRoom(room.Code, "p2")

	got, exists := s.Get(room.Code)
	require.True(t, exists)
	assert.Equal(t, "p1", got.HostID)
	assert.Len(t, got.Players, 1)
}

func TestLeaveRoomDeletesEmptyRoom(t *testing.T) {
	s := NewRoomStore()
	room, err := s.CreateRoom("p1", "Ann", testSettings())
	require.NoError(t, err)

	s.LeaveRoom(room.Code, "p1")

	assert.False(t, s.Exists(room.Code))
	assert.Equal(t, 0, s.Len())
}

func TestLeaveRoomClampsTurnIndex(t *testing.T) {
	s := NewRoomStore()
	room, err := s.CreateRoom("p1", "Ann", testSettings())
	require.NoError(t, err)
	_, err = s.JoinRoom(room.Code, "p2", "Ben")
	require.NoError(t, err)
	_, err = s.JoinRoom(room.Code, "p3", "Cam")
	require.NoError(t, err)

	room.Lock()
	room.Game = &models.GameState{
		Phase:       models.PhaseHints,
		CurrentTurn: 2,
		Votes:       map[string]string{},
	}
	room.Unlock()

	// the player whose turn it was leaves; the turn must wrap, not strand
	s.LeaveRoom(room.Code, "p3")

	got, exists := s.Get(room.Code)
	require.True(t, exists)
	assert.Equal(t, 0, got.Game.CurrentTurn)
}

func TestLeaveRoomUnknownPlayerIsNoop(t *testing.T) {
	s := NewRoomStore()
	room, err := s.CreateRoom("p1", "Ann", testSettings())
	require.NoError(t, err)

	s.LeaveRoom(room.Code, "ghost")
	s.LeaveRoom("ZZZZZZ", "p1")

	got, exists := s.Get(room.Code)
	require.True(t, exists)
	assert.Len(t, got.Players, 1)
}

func TestMutateGameStateMissingRoom(t *testing.T) {
	s := NewRoomStore()
	called := false
	err := s.MutateGameState("ZZZZZZ", func(room *models.Room) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestMutateGameStateTouchesRoom(t *testing.T) {
	s := NewRoomStore()
	room, err := s.CreateRoom("p1", "Ann", testSettings())
	require.NoError(t, err)

	before := room.Touched
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, s.MutateGameState(room.Code, func(room *models.Room) error {
		return nil
	}))
	assert.True(t, room.Touched.After(before))
}

func TestSweepIdle(t *testing.T) {
	s := NewRoomStore()
	stale, err := s.CreateRoom("p1", "Ann", testSettings())
	require.NoError(t, err)
	fresh, err := s.CreateRoom("p2", "Ben", testSettings())
	require.NoError(t, err)

	stale.Lock()
	stale.Touched = time.Now().Add(-time.Hour)
	stale.Unlock()

	removed := s.SweepIdle(30 * time.Minute)

	assert.Equal(t, 1, removed)
	assert.False(t, s.Exists(stale.Code))
	assert.True(t, s.Exists(fresh.Code))
}
