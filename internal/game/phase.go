package game

import (
	"log"

	"github.com/mzielinska/impostor-party/internal/models"
)

// Round-trip handlers for the phase machine. Every function expects the
// room's write lock to be held by the caller (the store runs them through
// MutateGameState) and mutates the room's game state in place.

// Start begins the first round. Host only; requires the configured minimum
// of players and a non-empty word pool.
func Start(room *models.Room, playerID string) error {
	if room.HostID != playerID {
		return ErrNotHost
	}
	if room.Game != nil && room.Game.Phase != models.PhaseLobby {
		return ErrWrongPhase
	}
	if len(room.Players) < room.Settings.MinPlayers {
		return ErrNotEnoughPlayers
	}

	state, err := NewRound(len(room.Players), room.Settings, 1)
	if err != nil {
		return err
	}
	room.Game = state

	log.Printf("[Game] room %s started round 1, word=%q, %d impostor(s), first turn=%d",
		room.Code, state.Word, len(state.ImpostorIndices), state.CurrentTurn)
	return nil
}

// SubmitHint appends a hint for the player at the current turn and advances
// the turn round-robin. The round ends once every player has given a hint.
// A hint from any other player is rejected without effect.
func SubmitHint(room *models.Room, playerID, text string) error {
	g := room.Game
	if g == nil {
		return ErrNoGame
	}
	// The first hint of a round arrives while the shared phase is still
	// reveal; acknowledging the role card is client-local.
	if g.Phase != models.PhaseReveal && g.Phase != models.PhaseHints {
		return ErrWrongPhase
	}

	player, idx := room.PlayerByID(playerID)
	if player == nil {
		return ErrNotInRoom
	}
	if idx != g.CurrentTurn {
		return ErrNotYourTurn
	}

	g.Hints = append(g.Hints, models.Hint{PlayerID: player.ID, Nickname: player.Nickname, Text: text})
	g.CurrentTurn = (g.CurrentTurn + 1) % len(room.Players)

	if len(g.Hints) == len(room.Players) {
		g.Phase = models.PhaseRoundEnd
	} else {
		g.Phase = models.PhaseHints
	}
	return nil
}

// OpenVoting moves from roundEnd to voting with an empty ballot. Host only.
func OpenVoting(room *models.Room, playerID string) error {
	g := room.Game
	if g == nil {
		return ErrNoGame
	}
	if room.HostID != playerID {
		return ErrNotHost
	}
	// roundEnd only; the voting->voting table entry covers vote merging and
	// must not let a repeated host action wipe a ballot in progress
	if g.Phase != models.PhaseRoundEnd {
		return ErrWrongPhase
	}

	g.Phase = models.PhaseVoting
	g.Votes = make(map[string]string)
	g.VoteOrder = nil
	return nil
}

// SubmitVote merges a vote and auto-advances to results once every current
// player has voted. No host action is involved in that transition.
func SubmitVote(room *models.Room, playerID, nickname string) error {
	g := room.Game
	if g == nil {
		return ErrNoGame
	}
	if g.Phase != models.PhaseVoting {
		return ErrWrongPhase
	}
	if player, _ := room.PlayerByID(playerID); player == nil {
		return ErrNotInRoom
	}

	g.RecordVote(playerID, nickname)

	if len(g.Votes) == len(room.Players) {
		g.Phase = models.PhaseResults
		log.Printf("[Game] room %s: all %d votes in, moving to results", room.Code, len(g.Votes))
	}
	return nil
}

// NextRound starts another hint round with a fresh assignment. Host only.
func NextRound(room *models.Room, playerID string) error {
	g := room.Game
	if g == nil {
		return ErrNoGame
	}
	if room.HostID != playerID {
		return ErrNotHost
	}
	if !g.Phase.CanTransitionTo(models.PhaseReveal) {
		return ErrWrongPhase
	}

	state, err := NewRound(len(room.Players), room.Settings, g.Round+1)
	if err != nil {
		return err
	}
	room.Game = state

	log.Printf("[Game] room %s started round %d, word=%q", room.Code, state.Round, state.Word)
	return nil
}

// ReturnToLobby clears the game state after results. Host only.
func ReturnToLobby(room *models.Room, playerID string) error {
	g := room.Game
	if g == nil {
		return ErrNoGame
	}
	if room.HostID != playerID {
		return ErrNotHost
	}
	if !g.Phase.CanTransitionTo(models.PhaseLobby) {
		return ErrWrongPhase
	}

	room.Game = nil
	return nil
}
