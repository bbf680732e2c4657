// Package worldapi exposes world generation over HTTP.
package worldapi

import (
	"github.com/beka-birhanu/wumpus-api/world"
	"github.com/google/uuid"
)

// WorldResponse is a generated world in row-major order.
type WorldResponse struct {
	ID   uuid.UUID      `json:"id"`
	Side int            `json:"side"`
	Grid [][]world.Cell `json:"grid"`
}

// StatsResponse reports generation statistics.
type StatsResponse struct {
	Worlds        int64   `json:"worlds"`
	Pits          int64   `json:"pits"`
	EligibleCells int64   `json:"eligible_cells"`
	MonsterOnPit  int64   `json:"monster_on_pit"`
	PitRate       float64 `json:"pit_rate"`
}

// LegacyCell is the cell shape read by the original web client.
// Guerreiro is the player's current position, which the client tracks
// itself, so it is always sent unset.
type LegacyCell struct {
	Wumpus    bool `json:"wumpus"`
	Cheiro    bool `json:"cheiro"`
	Brisa     bool `json:"brisa"`
	Poco      bool `json:"poco"`
	Ouro      bool `json:"ouro"`
	Guerreiro bool `json:"guerreiro"`
}

// LegacyWorldResponse is the world shape read by the original web client.
type LegacyWorldResponse struct {
	Malha [][]LegacyCell `json:"malha"`
}

func newWorldResponse(grid *world.Grid) *WorldResponse {
	return &WorldResponse{
		ID:   uuid.New(),
		Side: grid.Side(),
		Grid: grid.Rows(),
	}
}

func newLegacyWorldResponse(grid *world.Grid) *LegacyWorldResponse {
	rows := grid.Rows()
	malha := make([][]LegacyCell, len(rows))
	for r, row := range rows {
		malha[r] = make([]LegacyCell, len(row))
		for c, cell := range row {
			malha[r][c] = LegacyCell{
				Wumpus:    cell.HasMonster,
				Cheiro:    cell.HasScent,
				Brisa:     cell.HasBreeze,
				Poco:      cell.HasPit,
				Ouro:      cell.HasGold,
			}
		}
	}
	return &LegacyWorldResponse{Malha: malha}
}
