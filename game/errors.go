package game

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned by DoMove when the game has already reached a
// terminal state.
var ErrGameOver = errors.New("game is over: no more moves are allowed")

// PositionOwnedError is returned by DoMove when the target cell is
// already marked. It carries the offending position and its current
// owner so callers can produce a precise diagnostic.
type PositionOwnedError struct {
	Position Position
	Owner    Owner
}

func (e *PositionOwnedError) Error() string {
	return fmt.Sprintf("position (%d,%d) is already owned by player %s",
		e.Position.Row, e.Position.Column, e.Owner)
}

// InvalidPositionError is returned by DoMove when the target position
// falls outside the board.
type InvalidPositionError struct {
	Position Position
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("position (%d,%d) is outside the board",
		e.Position.Row, e.Position.Column)
}
