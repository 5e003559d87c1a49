package game

import "github.com/mzielinska/impostor-party/internal/models"

// Tally counts votes per nickname. Every player appears in Counts even with
// zero votes. The outcome is the most voted nickname; when counts are equal
// the tied nickname encountered first in ballot submission order wins, so
// the result is deterministic for a given ballot.
func Tally(g *models.GameState, players []models.Player) *models.TallyResult {
	counts := make(map[string]int, len(players))
	for _, p := range players {
		counts[p.Nickname] = 0
	}
	for _, nickname := range g.Votes {
		counts[nickname]++
	}

	maxVotes := 0
	tiedAtMax := 0
	for _, c := range counts {
		if c > maxVotes {
			maxVotes = c
		}
	}
	for _, c := range counts {
		if c == maxVotes {
			tiedAtMax++
		}
	}

	result := &models.TallyResult{
		Counts:       counts,
		OutcomeVotes: maxVotes,
		IsTie:        tiedAtMax > 1,
	}

	// Walk the ballot in submission order so map iteration order never
	// decides a tie.
	for _, voterID := range g.VoteOrder {
		if nickname := g.Votes[voterID]; counts[nickname] == maxVotes {
			result.Outcome = nickname
			break
		}
	}

	return result
}
