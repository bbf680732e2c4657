package world

// Cell represents a single cell of a world grid.
// Every attribute is independent; a cell may hold a pit and the monster at once.
type Cell struct {
	HasMonster     bool `json:"hasMonster"`     // HasMonster marks the cell holding the monster.
	HasScent       bool `json:"hasScent"`       // HasScent marks cells orthogonally adjacent to the monster.
	HasBreeze      bool `json:"hasBreeze"`      // HasBreeze marks cells orthogonally adjacent to a pit.
	HasPit         bool `json:"hasPit"`         // HasPit marks a pit.
	HasGold        bool `json:"hasGold"`        // HasGold marks the cell holding the gold.
	HasPlayerStart bool `json:"hasPlayerStart"` // HasPlayerStart marks the player start block.
}

// symbol returns the single character used by Grid.String for the cell.
// Entities take precedence over hazard signals.
func (c Cell) symbol() byte {
	switch {
	case c.HasMonster:
		return 'M'
	case c.HasPit:
		return 'P'
	case c.HasGold:
		return 'G'
	case c.HasScent && c.HasBreeze:
		return '*'
	case c.HasScent:
		return 'S'
	case c.HasBreeze:
		return 'B'
	case c.HasPlayerStart:
		return '@'
	}
	return '.'
}
