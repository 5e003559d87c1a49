package game

import (
	"math/rand"

	"github.com/mzielinska/impostor-party/internal/models"
)

// WordPool builds the round's candidate pool: the built-in list plus the
// room's custom words.
func WordPool(settings models.GameSettings) []string {
	pool := make([]string, 0, len(DefaultWords)+len(settings.CustomWords))
	pool = append(pool, DefaultWords...)
	pool = append(pool, settings.CustomWords...)
	return pool
}

// EffectiveImpostorCount clamps the requested count so at least one
// non-impostor always exists.
func EffectiveImpostorCount(requested, playerCount int) int {
	if requested > playerCount-1 {
		return playerCount - 1
	}
	return requested
}

// NewRound draws a secret word, an impostor index set and a starting turn,
// and returns a fresh reveal-phase game state for the given round number.
func NewRound(playerCount int, settings models.GameSettings, round int) (*models.GameState, error) {
	pool := WordPool(settings)
	if len(pool) == 0 {
		return nil, ErrEmptyWordPool
	}

	word := pool[rand.Intn(len(pool))]

	// Uniform sample without replacement; terminates because k < playerCount.
	k := EffectiveImpostorCount(settings.ImpostorCount, playerCount)
	impostors := make(map[int]bool, k)
	for len(impostors) < k {
		impostors[rand.Intn(playerCount)] = true
	}

	return &models.GameState{
		Phase:           models.PhaseReveal,
		Word:            word,
		CurrentTurn:     rand.Intn(playerCount),
		Hints:           []models.Hint{},
		Votes:           make(map[string]string),
		Round:           round,
		ImpostorIndices: impostors,
	}, nil
}
