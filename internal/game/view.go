package game

import "github.com/mzielinska/impostor-party/internal/models"

// ViewFor projects the room's game state for one viewer. Impostors get an
// empty word until the results phase, which reveals the secret to everyone
// alongside the vote tally. The impostor index set itself never leaves the
// server. Caller must hold at least the room's read lock; returns nil when
// no game is in progress.
func ViewFor(room *models.Room, playerID string) *models.GameStateView {
	g := room.Game
	if g == nil {
		return nil
	}

	_, idx := room.PlayerByID(playerID)
	isImpostor := idx >= 0 && g.IsImpostorIndex(idx)

	word := g.Word
	if isImpostor && g.Phase != models.PhaseResults {
		word = ""
	}

	hints := make([]models.Hint, len(g.Hints))
	copy(hints, g.Hints)

	votes := make(map[string]string, len(g.Votes))
	for k, v := range g.Votes {
		votes[k] = v
	}

	var results *models.TallyResult
	if g.Phase == models.PhaseResults {
		results = Tally(g, room.PlayerSnapshot())
	}

	return &models.GameStateView{
		Phase:       g.Phase,
		Word:        word,
		IsImpostor:  isImpostor,
		CurrentTurn: g.CurrentTurn,
		Hints:       hints,
		Votes:       votes,
		Round:       g.Round,
		Results:     results,
	}
}
