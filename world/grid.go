package world

import "strings"

// Grid is a generated side × side world. Cells are stored by linear position
// and are never mutated once the grid leaves the factory.
type Grid struct {
	side  int
	cells []Cell
}

// Summary condenses a grid into the figures tracked by generation statistics.
type Summary struct {
	Side          int  // Side length of the grid.
	EligibleCells int  // Cells a pit could be placed on (non start cells).
	Pits          int  // Number of pits placed.
	MonsterOnPit  bool // Whether a pit was placed under the monster.
}

func newGrid(side int) *Grid {
	return &Grid{
		side:  side,
		cells: make([]Cell, side*side),
	}
}

// Side returns the side length of the grid.
func (g *Grid) Side() int {
	return g.side
}

// Len returns the number of cells of the grid.
func (g *Grid) Len() int {
	return len(g.cells)
}

// At returns a copy of the cell at pos.
func (g *Grid) At(pos Position) Cell {
	return g.cells[pos]
}

// NeighborsOf returns the orthogonal neighbors of pos inside the grid.
func (g *Grid) NeighborsOf(pos Position) []Position {
	return NeighborsOf(g.side, pos)
}

// Rows reshapes the grid into a freshly allocated row-major matrix.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.side)
	for r := range rows {
		rows[r] = make([]Cell, g.side)
		copy(rows[r], g.cells[r*g.side:(r+1)*g.side])
	}
	return rows
}

// Find returns every position whose cell satisfies match.
func (g *Grid) Find(match func(Cell) bool) []Position {
	var found []Position
	for i, c := range g.cells {
		if match(c) {
			found = append(found, Position(i))
		}
	}
	return found
}

// Summary reports the statistics of the grid.
func (g *Grid) Summary() Summary {
	s := Summary{Side: g.side}
	for _, c := range g.cells {
		if !c.HasPlayerStart {
			s.EligibleCells++
		}
		if c.HasPit {
			s.Pits++
			if c.HasMonster {
				s.MonsterOnPit = true
			}
		}
	}
	return s
}

// String renders the grid as ASCII art, one character per cell.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString("+" + strings.Repeat("---+", g.side) + "\n")
	for r := 0; r < g.side; r++ {
		b.WriteString("|")
		for c := 0; c < g.side; c++ {
			b.WriteString(" ")
			b.WriteByte(g.cells[PositionAt(g.side, r, c)].symbol())
			b.WriteString(" |")
		}
		b.WriteString("\n+" + strings.Repeat("---+", g.side) + "\n")
	}
	return b.String()
}

func (g *Grid) putMonster(pos Position) {
	g.cells[pos].HasMonster = true
	for _, n := range g.NeighborsOf(pos) {
		g.cells[n].HasScent = true
	}
}

func (g *Grid) putPit(pos Position) {
	g.cells[pos].HasPit = true
	for _, n := range g.NeighborsOf(pos) {
		g.cells[n].HasBreeze = true
	}
}

func (g *Grid) putGold(pos Position) {
	g.cells[pos].HasGold = true
}

func (g *Grid) markStart(positions []Position) {
	for _, p := range positions {
		g.cells[p].HasPlayerStart = true
	}
}
