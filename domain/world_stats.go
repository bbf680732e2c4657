package domain

// WorldStats aggregates the summaries of every generated world.
type WorldStats struct {
	Worlds        int64 `json:"worlds"`         // Number of generated worlds.
	Pits          int64 `json:"pits"`           // Total pits placed.
	EligibleCells int64 `json:"eligible_cells"` // Total cells a pit could have been placed on.
	MonsterOnPit  int64 `json:"monster_on_pit"` // Worlds where a pit shares the monster cell.
}

// PitRate returns the observed fraction of eligible cells that became pits.
func (s WorldStats) PitRate() float64 {
	if s.EligibleCells == 0 {
		return 0
	}
	return float64(s.Pits) / float64(s.EligibleCells)
}
