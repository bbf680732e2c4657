package world

// Position is the linear, row-major index of a cell in a side × side grid.
type Position int

// PositionAt converts a (row, col) pair into a linear position.
func PositionAt(side, row, col int) Position {
	return Position(row*side + col)
}

// Row returns the row index of the position.
func (p Position) Row(side int) int {
	return int(p) / side
}

// Col returns the column index of the position.
func (p Position) Col(side int) int {
	return int(p) % side
}

// InBound reports whether the position addresses a cell of a side × side grid.
func (p Position) InBound(side int) bool {
	return p >= 0 && int(p) < side*side
}

// NeighborsOf returns the orthogonal neighbors of pos that lie inside
// a side × side grid, in left, right, up, down order.
func NeighborsOf(side int, pos Position) []Position {
	neighbors := make([]Position, 0, 4)
	if pos.Col(side) != 0 {
		neighbors = append(neighbors, pos-1)
	}
	if pos.Col(side) != side-1 {
		neighbors = append(neighbors, pos+1)
	}
	if int(pos)-side >= 0 {
		neighbors = append(neighbors, pos-Position(side))
	}
	if int(pos)+side < side*side {
		neighbors = append(neighbors, pos+Position(side))
	}
	return neighbors
}

// StartBlock returns the 2×2 player start block at the top-left corner.
func StartBlock(side int) []Position {
	return []Position{0, 1, Position(side), Position(side + 1)}
}

// Exclusion is a set of positions no entity may be drawn on.
// Placement phases never mutate the set they receive.
type Exclusion map[Position]struct{}

// NewExclusion builds a set from the given positions.
func NewExclusion(positions ...Position) Exclusion {
	e := make(Exclusion, len(positions))
	for _, p := range positions {
		e[p] = struct{}{}
	}
	return e
}

// Contains reports whether p is excluded.
func (e Exclusion) Contains(p Position) bool {
	_, excluded := e[p]
	return excluded
}

// With returns a copy of the set extended with positions.
func (e Exclusion) With(positions ...Position) Exclusion {
	out := make(Exclusion, len(e)+len(positions))
	for p := range e {
		out[p] = struct{}{}
	}
	for _, p := range positions {
		out[p] = struct{}{}
	}
	return out
}
