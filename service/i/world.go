package i

import (
	"context"

	dmn "github.com/beka-birhanu/wumpus-api/domain"
	"github.com/beka-birhanu/wumpus-api/world"
)

// WorldGenerator generates worlds and reports generation statistics.
type WorldGenerator interface {
	// Generate builds a side × side world with the player start block at the top-left corner.
	Generate(ctx context.Context, side int) (*world.Grid, error)

	// DefaultSide returns the side used when the caller does not choose one.
	DefaultSide() int

	// Stats returns the statistics aggregated over every generated world.
	Stats(ctx context.Context) (*dmn.WorldStats, error)

	// ResetStats clears the aggregated statistics.
	ResetStats(ctx context.Context) error
}

// WorldStatsStore accumulates world summaries.
type WorldStatsStore interface {
	Record(ctx context.Context, summary world.Summary) error
	Snapshot(ctx context.Context) (*dmn.WorldStats, error)
	Reset(ctx context.Context) error
}
