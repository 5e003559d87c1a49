package game

import "errors"

var (
	// ErrNotHost is returned when a non-host issues a host-only action
	ErrNotHost = errors.New("only the host can do that")

	// ErrNotYourTurn is returned when a hint comes from a player out of turn
	ErrNotYourTurn = errors.New("not your turn")

	// ErrWrongPhase is returned when an action does not fit the current phase
	ErrWrongPhase = errors.New("action not allowed in current phase")

	// ErrNotEnoughPlayers is returned when starting below the configured minimum
	ErrNotEnoughPlayers = errors.New("not enough players to start")

	// ErrEmptyWordPool is returned when no words are available for a round
	ErrEmptyWordPool = errors.New("word pool is empty")

	// ErrNoGame is returned when a round action arrives before the game started
	ErrNoGame = errors.New("no game in progress")

	// ErrNotInRoom is returned when the acting player is not a room member
	ErrNotInRoom = errors.New("player is not in this room")

	// ErrInvalidCustomWord is returned for custom words outside the 3-20 char range
	ErrInvalidCustomWord = errors.New("custom word must be 3-20 characters")
)
