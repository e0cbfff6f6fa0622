package game

// Status indicates whose turn it is, or how the game ended.
type Status int

const (
	// PlayerXMove means it is player X's turn to mark a free cell.
	PlayerXMove Status = iota
	// PlayerOMove means it is player O's turn to mark a free cell.
	PlayerOMove
	// PlayerXWin means player X has won the game.
	PlayerXWin
	// PlayerOWin means player O has won the game.
	PlayerOWin
	// CatsGame means the board filled up with no winner.
	CatsGame
)

func (s Status) String() string {
	switch s {
	case PlayerXMove:
		return "PlayerXMove"
	case PlayerOMove:
		return "PlayerOMove"
	case PlayerXWin:
		return "PlayerXWin"
	case PlayerOWin:
		return "PlayerOWin"
	case CatsGame:
		return "CatsGame"
	default:
		return "Unknown"
	}
}

// IsGameOver reports whether the status is one of the terminal ones:
// either player won or the game ended in a cat's game.
func (s Status) IsGameOver() bool {
	switch s {
	case PlayerXWin, PlayerOWin, CatsGame:
		return true
	default:
		return false
	}
}

// State is the full game state: the status plus, for the win statuses,
// the positions that completed the win. A single move can finish more
// than one line at once, so WinPositions may hold more than a board
// side's worth of positions. It is empty for non-win statuses.
type State struct {
	Status       Status
	WinPositions []Position
}

// IsGameOver reports whether the game has reached a terminal state.
func (s State) IsGameOver() bool {
	return s.Status.IsGameOver()
}

// clone returns a copy whose WinPositions slice is independent.
func (s State) clone() State {
	if len(s.WinPositions) == 0 {
		return State{Status: s.Status}
	}
	positions := make([]Position, len(s.WinPositions))
	copy(positions, s.WinPositions)
	return State{Status: s.Status, WinPositions: positions}
}
