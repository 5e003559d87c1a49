package models

// Hint is a single clue submitted during the hints phase
type Hint struct {
	PlayerID string `json:"playerId"`
	Nickname string `json:"nickname"`
	Text     string `json:"text"`
}

// GameState holds the authoritative state of the running round.
// Per-viewer fields (the viewer's word and impostor flag) are never stored
// here; they are derived at the read boundary from ImpostorIndices.
type GameState struct {
	Phase           Phase
	Word            string
	CurrentTurn     int
	Hints           []Hint
	Votes           map[string]string // playerID -> voted nickname
	VoteOrder       []string          // playerIDs in submission order, for tie-breaking
	Round           int
	ImpostorIndices map[int]bool
}

// IsImpostorIndex reports whether the player at the given index is an impostor
func (g *GameState) IsImpostorIndex(idx int) bool {
	return g.ImpostorIndices[idx]
}

// RecordVote merges a vote, keeping the submission order of first votes.
// A repeat vote from the same player overwrites the choice but keeps the
// original position in the order.
func (g *GameState) RecordVote(playerID, nickname string) {
	if _, voted := g.Votes[playerID]; !voted {
		g.VoteOrder = append(g.VoteOrder, playerID)
	}
	g.Votes[playerID] = nickname
}

// TallyResult is the outcome of vote counting, shown in the results phase
type TallyResult struct {
	Counts       map[string]int `json:"counts"` // nickname -> received votes, zero-filled
	Outcome      string         `json:"outcome"`
	OutcomeVotes int            `json:"outcomeVotes"`
	IsTie        bool           `json:"isTie"`
}

// GameStateView is the per-viewer projection of GameState delivered to clients
type GameStateView struct {
	Phase       Phase             `json:"phase"`
	Word        string            `json:"word"`
	IsImpostor  bool              `json:"isImpostor"`
	CurrentTurn int               `json:"currentTurn"`
	Hints       []Hint            `json:"hints"`
	Votes       map[string]string `json:"votes"`
	Round       int               `json:"round"`
	Results     *TallyResult      `json:"results,omitempty"` // set in the results phase
}
