package service

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/wumpus-api/domain"
	"github.com/beka-birhanu/wumpus-api/service/i"
	"github.com/beka-birhanu/wumpus-api/world"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// WorldOptions configures a WorldService.
type WorldOptions struct {
	// DefaultSide is used when the caller does not pick a side.
	DefaultSide int

	// Factory builds the worlds. Nil means the default factory.
	Factory *world.Factory
}

// WorldService generates worlds and keeps generation statistics.
type WorldService struct {
	factory     *world.Factory
	defaultSide int
	stats       i.WorldStatsStore
	tracer      trace.Tracer
	logger      i.Logger
}

// NewWorldService creates a WorldService recording into stats.
func NewWorldService(stats i.WorldStatsStore, tracer trace.Tracer, logger i.Logger, opts *WorldOptions) (*WorldService, error) {
	if stats == nil || tracer == nil || logger == nil {
		return nil, errors.New("world service needs a stats store, a tracer and a logger")
	}
	if opts == nil {
		opts = &WorldOptions{}
	}
	if opts.DefaultSide <= 0 {
		opts.DefaultSide = world.DefaultSide
	}
	if opts.Factory == nil {
		opts.Factory, _ = world.NewFactory(nil)
	}

	return &WorldService{
		factory:     opts.Factory,
		defaultSide: opts.DefaultSide,
		stats:       stats,
		tracer:      tracer,
		logger:      logger,
	}, nil
}

// DefaultSide returns the side used when the caller does not pick one.
func (ws *WorldService) DefaultSide() int {
	return ws.defaultSide
}

// Generate builds a side × side world with the start block at the top-left
// corner. A failure to record statistics does not fail the generation.
func (ws *WorldService) Generate(ctx context.Context, side int) (*world.Grid, error) {
	ctx, span := ws.tracer.Start(ctx, "world.generate")
	defer span.End()
	span.SetAttributes(attribute.Int("world.side", side))

	grid, err := ws.factory.Generate(side, world.StartBlock(side))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, world.ErrInvalidConfig) {
			ws.logger.Warning(fmt.Sprintf("Rejected world configuration: side=%d: %s", side, err))
		} else {
			ws.logger.Error(fmt.Sprintf("World generation failed: side=%d: %s", side, err))
		}
		return nil, err
	}

	summary := grid.Summary()
	span.SetAttributes(
		attribute.Int("world.pits", summary.Pits),
		attribute.Bool("world.monster_on_pit", summary.MonsterOnPit),
	)

	if err := ws.stats.Record(ctx, summary); err != nil {
		ws.logger.Warning(fmt.Sprintf("Recording world stats: %s", err))
	}

	ws.logger.Info(fmt.Sprintf("World generated: side=%d pits=%d", side, summary.Pits))
	return grid, nil
}

// Stats returns the statistics aggregated over every generated world.
func (ws *WorldService) Stats(ctx context.Context) (*dmn.WorldStats, error) {
	stats, err := ws.stats.Snapshot(ctx)
	if err != nil {
		ws.logger.Error(fmt.Sprintf("Reading world stats: %s", err))
		return nil, err
	}
	return stats, nil
}

// ResetStats clears the aggregated statistics.
func (ws *WorldService) ResetStats(ctx context.Context) error {
	if err := ws.stats.Reset(ctx); err != nil {
		ws.logger.Error(fmt.Sprintf("Resetting world stats: %s", err))
		return err
	}
	ws.logger.Info("World stats reset")
	return nil
}
