package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/wumpus-api/world"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestWorldService(t *testing.T, stats *memoryStats, logger *recordingLogger) *WorldService {
	t.Helper()
	factory, err := world.NewFactory(&world.Options{Rand: rand.New(rand.NewSource(99))})
	assert.NoError(t, err)

	ws, err := NewWorldService(stats, noop.NewTracerProvider().Tracer("test"), logger, &WorldOptions{Factory: factory})
	assert.NoError(t, err)
	return ws
}

func TestWorldServiceGenerate(t *testing.T) {
	stats := &memoryStats{}
	logger := &recordingLogger{}
	ws := newTestWorldService(t, stats, logger)
	ctx := context.Background()

	var pits int
	for n := 0; n < 20; n++ {
		grid, err := ws.Generate(ctx, 4)
		assert.NoError(t, err)
		assert.Equal(t, 4, grid.Side())
		pits += grid.Summary().Pits
	}

	snapshot, err := ws.Stats(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, 20, snapshot.Worlds)
	assert.EqualValues(t, 20*12, snapshot.EligibleCells)
	assert.EqualValues(t, pits, snapshot.Pits)
	assert.Len(t, logger.infos, 20)

	assert.NoError(t, ws.ResetStats(ctx))
	snapshot, err = ws.Stats(ctx)
	assert.NoError(t, err)
	assert.Zero(t, snapshot.Worlds)
}

func TestWorldServiceRejectsInvalidSide(t *testing.T) {
	stats := &memoryStats{}
	logger := &recordingLogger{}
	ws := newTestWorldService(t, stats, logger)

	_, err := ws.Generate(context.Background(), 1)
	assert.ErrorIs(t, err, world.ErrInvalidConfig)
	assert.Len(t, logger.warnings, 1)
	assert.Zero(t, stats.stats.Worlds)
}

func TestWorldServiceSurvivesStatsFailure(t *testing.T) {
	stats := &memoryStats{recordErr: errors.New("redis down")}
	logger := &recordingLogger{}
	ws := newTestWorldService(t, stats, logger)

	grid, err := ws.Generate(context.Background(), 4)
	assert.NoError(t, err)
	assert.NotNil(t, grid)
	assert.Len(t, logger.warnings, 1)
}

func TestNewWorldServiceDefaults(t *testing.T) {
	ws, err := NewWorldService(&memoryStats{}, noop.NewTracerProvider().Tracer("test"), &recordingLogger{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, world.DefaultSide, ws.DefaultSide())

	_, err = NewWorldService(nil, noop.NewTracerProvider().Tracer("test"), &recordingLogger{}, nil)
	assert.Error(t, err)
}
