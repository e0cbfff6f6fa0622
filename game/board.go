package game

import (
	"fmt"
	"strings"
)

// Owner identifies which player, if any, owns a board cell.
type Owner int

const (
	// None marks an unowned cell. This is the zero value.
	None Owner = iota
	// PlayerX marks a cell owned by player X.
	PlayerX
	// PlayerO marks a cell owned by player O.
	PlayerO
)

func (o Owner) String() string {
	switch o {
	case None:
		return " "
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "?"
	}
}

// Position is a board coordinate denoted by row and column, zero based.
// Positions are plain values: they carry no bounds of their own, so any
// pair of integers is a valid Position. Whether it falls on a given
// board is answered by Board.Contains.
type Position struct {
	Row    int
	Column int
}

// Size holds the number of rows and columns of a board.
type Size struct {
	Rows    int
	Columns int
}

// Cell pairs a position with the owner currently occupying it.
type Cell struct {
	Position Position
	Owner    Owner
}

// Board is a dense rows x columns grid of cell owners.
//
// The board itself knows nothing about the rules of the game: it only
// stores ownership and answers bounds queries. The Game state machine
// is the sole writer during play.
type Board struct {
	size  Size
	cells []Owner
}

// NewBoard returns a board of the given size with every cell unowned.
// It panics if either dimension is less than one.
func NewBoard(size Size) *Board {
	if size.Rows < 1 || size.Columns < 1 {
		panic(fmt.Sprintf("board size must be at least 1x1, got %dx%d", size.Rows, size.Columns))
	}
	return &Board{
		size:  size,
		cells: make([]Owner, size.Rows*size.Columns),
	}
}

// Size returns the dimensions of the board.
func (b *Board) Size() Size {
	return b.size
}

// Contains reports whether the position falls inside the board.
// Negative coordinates are always outside.
func (b *Board) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < b.size.Rows &&
		p.Column >= 0 && p.Column < b.size.Columns
}

// Get returns the owner of the cell at p. The second return value is
// false when p is outside the board; callers scanning sequences probe
// positions past the edge on purpose, so this is not an error.
func (b *Board) Get(p Position) (Owner, bool) {
	if !b.Contains(p) {
		return None, false
	}
	return b.cells[b.index(p)], true
}

// Set assigns the owner of the cell at p, returning false without
// touching the board when p is outside it.
func (b *Board) Set(p Position, owner Owner) bool {
	if !b.Contains(p) {
		return false
	}
	b.cells[b.index(p)] = owner
	return true
}

// Cells returns every cell of the board in row-major order. The slice
// is a fresh snapshot each call.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, len(b.cells))
	for row := 0; row < b.size.Rows; row++ {
		for column := 0; column < b.size.Columns; column++ {
			p := Position{Row: row, Column: column}
			cells = append(cells, Cell{Position: p, Owner: b.cells[b.index(p)]})
		}
	}
	return cells
}

// Clone returns a deep copy of the board. The search engine clones
// boards to explore hypothetical futures without disturbing the real
// game.
func (b *Board) Clone() *Board {
	cells := make([]Owner, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// String renders the board as a text grid, e.g.
//
//	+---+---+---+
//	| X | O |   |
//	+---+---+---+
//	|   | X |   |
//	+---+---+---+
//	|   |   | O |
//	+---+---+---+
func (b *Board) String() string {
	var sb strings.Builder
	divider := strings.Repeat("+---", b.size.Columns) + "+\n"
	for row := 0; row < b.size.Rows; row++ {
		sb.WriteString(divider)
		for column := 0; column < b.size.Columns; column++ {
			owner := b.cells[b.index(Position{Row: row, Column: column})]
			fmt.Fprintf(&sb, "| %s ", owner)
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(divider)
	return sb.String()
}

func (b *Board) index(p Position) int {
	return p.Row*b.size.Columns + p.Column
}
