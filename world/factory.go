/*
Package world generates static hazard-avoidance worlds.

A world is a square grid holding one monster, any number of pits, one piece of
gold and a 2×2 player start block. Cells orthogonally adjacent to the monster
carry a scent, cells orthogonally adjacent to a pit carry a breeze.

Placement works on linear positions only; Grid.Rows reshapes into rows and
columns at the serialization boundary.
*/
package world

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// DefaultSide is the side length of the reference world.
	DefaultSide = 4
	// DefaultPitProbability is the chance of any eligible cell holding a pit.
	DefaultPitProbability = 0.2
	// DefaultMaxAttempts bounds every rejection-sampling loop.
	DefaultMaxAttempts = 1000

	// MinSide and MaxSide bound the side length accepted by Generate.
	MinSide = 3
	MaxSide = 32

	// minFreeCells leaves room for the monster and the gold.
	minFreeCells = 2
)

var (
	ErrInvalidConfig = errors.New("invalid world configuration")

	ErrInvalidSide           = fmt.Errorf("%w: side must be between %d and %d", ErrInvalidConfig, MinSide, MaxSide)
	ErrStartOutOfBounds      = fmt.Errorf("%w: start position out of bounds", ErrInvalidConfig)
	ErrExclusionCoversGrid   = fmt.Errorf("%w: start positions leave no room for the monster and the gold", ErrInvalidConfig)
	ErrInvalidPitProbability = fmt.Errorf("%w: pit probability must be in [0, 1)", ErrInvalidConfig)

	ErrGridSaturated      = errors.New("no free cell left for the gold")
	ErrPlacementExhausted = errors.New("placement attempts exhausted")
)

// Rand is the source of randomness used by a Factory.
// *rand.Rand satisfies it but is not safe for concurrent use.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// globalRand draws from the goroutine-safe top-level math/rand source.
type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Options configures a Factory. Zero fields fall back to their defaults.
type Options struct {
	// PitProbability is the per-cell pit chance. Nil means DefaultPitProbability.
	PitProbability *float64

	// MaxAttempts bounds the draws of a single rejection-sampling placement.
	MaxAttempts int

	// Rand overrides the random source, e.g. with a seeded *rand.Rand in tests.
	Rand Rand
}

// Factory builds fully populated worlds.
type Factory struct {
	pitProbability float64
	maxAttempts    int
	rng            Rand
}

// NewFactory creates a Factory from opts, which may be nil.
func NewFactory(opts *Options) (*Factory, error) {
	f := &Factory{
		pitProbability: DefaultPitProbability,
		maxAttempts:    DefaultMaxAttempts,
		rng:            globalRand{},
	}
	if opts == nil {
		return f, nil
	}

	if opts.PitProbability != nil {
		if *opts.PitProbability < 0 || *opts.PitProbability >= 1 {
			return nil, ErrInvalidPitProbability
		}
		f.pitProbability = *opts.PitProbability
	}
	if opts.MaxAttempts > 0 {
		f.maxAttempts = opts.MaxAttempts
	}
	if opts.Rand != nil {
		f.rng = opts.Rand
	}
	return f, nil
}

// ValidSide reports whether Generate accepts side.
func ValidSide(side int) bool {
	return side >= MinSide && side <= MaxSide
}

// GenerateWorld generates a side × side world with the default factory and
// the player start block at the top-left corner.
func GenerateWorld(side int) (*Grid, error) {
	f, _ := NewFactory(nil)
	return f.Generate(side, StartBlock(side))
}

// Generate builds a side × side world. No entity is placed on excludedStart,
// and those cells are marked as player start.
func (f *Factory) Generate(side int, excludedStart []Position) (*Grid, error) {
	if !ValidSide(side) {
		return nil, ErrInvalidSide
	}
	for _, p := range excludedStart {
		if !p.InBound(side) {
			return nil, ErrStartOutOfBounds
		}
	}
	start := NewExclusion(excludedStart...)
	if side*side-len(start) < minFreeCells {
		return nil, ErrExclusionCoversGrid
	}

	g := newGrid(side)

	monster, err := f.placeMonster(g, start)
	if err != nil {
		return nil, err
	}

	pits := f.placePits(g, start)

	if _, err := f.placeGold(g, start.With(monster).With(pits...)); err != nil {
		return nil, err
	}

	g.markStart(excludedStart)
	return g, nil
}

// placeMonster puts the monster on a random position outside excluded and
// spreads its scent.
func (f *Factory) placeMonster(g *Grid, excluded Exclusion) (Position, error) {
	pos, err := f.randomFreePosition(g, excluded)
	if err != nil {
		return 0, fmt.Errorf("placing monster: %w", err)
	}
	g.putMonster(pos)
	return pos, nil
}

// placePits flips a coin for every position outside excluded and returns the
// positions that became pits. The monster cell is not excluded.
func (f *Factory) placePits(g *Grid, excluded Exclusion) []Position {
	var pits []Position
	for i := 0; i < g.Len(); i++ {
		pos := Position(i)
		if excluded.Contains(pos) {
			continue
		}
		if f.rng.Float64() < f.pitProbability {
			g.putPit(pos)
			pits = append(pits, pos)
		}
	}
	return pits
}

// placeGold puts the gold on a random position outside excluded.
func (f *Factory) placeGold(g *Grid, excluded Exclusion) (Position, error) {
	if len(excluded) >= g.Len() {
		return 0, ErrGridSaturated
	}
	pos, err := f.randomFreePosition(g, excluded)
	if err != nil {
		return 0, fmt.Errorf("placing gold: %w", err)
	}
	g.putGold(pos)
	return pos, nil
}

// randomFreePosition draws uniform positions until one is not excluded.
func (f *Factory) randomFreePosition(g *Grid, excluded Exclusion) (Position, error) {
	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		pos := Position(f.rng.Intn(g.Len()))
		if !excluded.Contains(pos) {
			return pos, nil
		}
	}
	return 0, ErrPlacementExhausted
}
