package game

import (
	"fmt"
	"sort"
)

// Game is the tic-tac-toe state machine. It owns the board, tracks
// whose turn it is or the terminal outcome, validates and applies
// moves, and alternates which player starts across successive rounds.
type Game struct {
	board *Board
	state State
	// nextStart is the status the next round begins in. It is always
	// one of the two move statuses; StartNextGame flips it each round
	// so X and O alternate who moves first.
	nextStart Status
}

// NewGame returns a fresh 3x3 game with player X to move. Player O
// starts the following round.
func NewGame() *Game {
	return &Game{
		board:     NewBoard(Size{Rows: 3, Columns: 3}),
		state:     State{Status: PlayerXMove},
		nextStart: PlayerOMove,
	}
}

// Board returns the game's board. Callers must treat it as read only;
// all mutation goes through DoMove.
func (g *Game) Board() *Board {
	return g.board
}

// State returns a copy of the current game state.
func (g *Game) State() State {
	return g.state.clone()
}

// FreePositions returns the unowned positions in board iteration order.
// The slice is freshly built on each call and is empty whenever the
// game is over.
func (g *Game) FreePositions() []Position {
	if g.state.IsGameOver() {
		return nil
	}
	var free []Position
	for _, cell := range g.board.Cells() {
		if cell.Owner == None {
			free = append(free, cell.Position)
		}
	}
	return free
}

// CanMove reports whether DoMove at p would succeed: the game is not
// over, p is on the board, and the cell is unowned.
func (g *Game) CanMove(p Position) bool {
	if g.state.IsGameOver() {
		return false
	}
	owner, ok := g.board.Get(p)
	return ok && owner == None
}

// DoMove marks p for whichever player's turn it is and returns the
// resulting state. It fails with ErrGameOver, *InvalidPositionError or
// *PositionOwnedError; on failure the board and state are unchanged.
func (g *Game) DoMove(p Position) (State, error) {
	if g.state.IsGameOver() {
		return State{}, ErrGameOver
	}
	owner, ok := g.board.Get(p)
	if !ok {
		return State{}, &InvalidPositionError{Position: p}
	}
	if owner != None {
		return State{}, &PositionOwnedError{Position: p, Owner: owner}
	}

	g.board.Set(p, mover(g.state.Status))
	g.state = nextState(g.board, g.state.Status)
	return g.State(), nil
}

// StartNextGame discards the board for a fresh one and starts the next
// round. Whoever did not start the previous round moves first.
func (g *Game) StartNextGame() State {
	g.board = NewBoard(g.board.Size())
	g.state = State{Status: g.nextStart}
	g.nextStart = otherMove(g.nextStart)
	return g.State()
}

// Clone returns a deep copy of the game so callers can simulate moves
// without disturbing the original.
func (g *Game) Clone() *Game {
	return &Game{
		board:     g.board.Clone(),
		state:     g.state.clone(),
		nextStart: g.nextStart,
	}
}

// mover returns the owner that marks cells for the given move status.
func mover(s Status) Owner {
	switch s {
	case PlayerXMove:
		return PlayerX
	case PlayerOMove:
		return PlayerO
	default:
		panic(fmt.Sprintf("cannot determine the mover from status %s: the game is over; this is a bug in the tictactoe library", s))
	}
}

// otherMove returns the move status of the opposite player.
func otherMove(s Status) Status {
	switch s {
	case PlayerXMove:
		return PlayerOMove
	case PlayerOMove:
		return PlayerXMove
	default:
		panic(fmt.Sprintf("cannot determine the next turn from status %s: the game is over; this is a bug in the tictactoe library", s))
	}
}

// nextState recomputes the game state after a successful move by the
// player whose turn it was.
func nextState(b *Board, current Status) State {
	if winner, positions := winningPositions(b); winner != None {
		status := PlayerXWin
		if winner == PlayerO {
			status = PlayerOWin
		}
		return State{Status: status, WinPositions: positions}
	}
	for _, cell := range b.Cells() {
		if cell.Owner == None {
			return State{Status: otherMove(current)}
		}
	}
	return State{Status: CatsGame}
}

// line is a maximal same-direction sequence of cells, described by its
// first position and the step between neighbors.
type line struct {
	start Position
	step  Position
}

// victoryLines enumerates every row, every column, and both diagonals
// of a board of the given size.
func victoryLines(size Size) []line {
	lines := make([]line, 0, size.Rows+size.Columns+2)
	for row := 0; row < size.Rows; row++ {
		lines = append(lines, line{start: Position{Row: row}, step: Position{Column: 1}})
	}
	for column := 0; column < size.Columns; column++ {
		lines = append(lines, line{start: Position{Column: column}, step: Position{Row: 1}})
	}
	lines = append(lines,
		line{start: Position{}, step: Position{Row: 1, Column: 1}},
		line{start: Position{Column: size.Columns - 1}, step: Position{Row: 1, Column: -1}},
	)
	return lines
}

// winningPositions scans every victory line and returns the winning
// owner together with the union of all positions belonging to a
// winning line. One move can complete several lines at once, so the
// union can be larger than a single line. None is returned when no
// line is complete.
func winningPositions(b *Board) (Owner, []Position) {
	winner := None
	set := make(map[Position]struct{})
	for _, l := range victoryLines(b.Size()) {
		owner, positions := scanLine(b, l)
		if owner == None {
			continue
		}
		winner = owner
		for _, p := range positions {
			set[p] = struct{}{}
		}
	}
	if winner == None {
		return None, nil
	}

	union := make([]Position, 0, len(set))
	for p := range set {
		union = append(union, p)
	}
	sort.Slice(union, func(i, j int) bool {
		if union[i].Row != union[j].Row {
			return union[i].Row < union[j].Row
		}
		return union[i].Column < union[j].Column
	})
	return winner, union
}

// scanLine walks a line from its start until it steps off the board.
// The line wins only if every cell on it shares one non-None owner;
// stepping outside the board simply ends the walk.
func scanLine(b *Board, l line) (Owner, []Position) {
	owner := None
	var positions []Position
	for p := l.start; ; p = (Position{Row: p.Row + l.step.Row, Column: p.Column + l.step.Column}) {
		cell, ok := b.Get(p)
		if !ok {
			break
		}
		if cell == None {
			return None, nil
		}
		if owner == None {
			owner = cell
		} else if cell != owner {
			return None, nil
		}
		positions = append(positions, p)
	}
	return owner, positions
}
