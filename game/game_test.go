package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// playMoves marks the given positions in order, alternating players
// starting with whoever the game says is up. It fails the test if any
// move is rejected.
func playMoves(t *testing.T, g *Game, positions ...Position) {
	t.Helper()
	for _, p := range positions {
		_, err := g.DoMove(p)
		require.NoError(t, err, "Move at %+v should be legal\n%s", p, g.Board())
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	require.Equal(t, Size{Rows: 3, Columns: 3}, g.Board().Size(), "Game should use a 3x3 board")
	require.Equal(t, PlayerXMove, g.State().Status, "Player X should move first")
	require.Len(t, g.FreePositions(), 9, "Every cell should start free")
}

func TestGameDoMove(t *testing.T) {
	t.Run("moving alternates players", func(t *testing.T) {
		g := NewGame()

		state, err := g.DoMove(Position{Row: 0, Column: 0})
		require.NoError(t, err)
		require.Equal(t, PlayerOMove, state.Status, "After X moves it should be O's turn")

		state, err = g.DoMove(Position{Row: 1, Column: 1})
		require.NoError(t, err)
		require.Equal(t, PlayerXMove, state.Status, "After O moves it should be X's turn")

		owner, _ := g.Board().Get(Position{Row: 0, Column: 0})
		require.Equal(t, PlayerX, owner, "X's mark should be on the board")
		owner, _ = g.Board().Get(Position{Row: 1, Column: 1})
		require.Equal(t, PlayerO, owner, "O's mark should be on the board")
	})

	t.Run("moving onto an owned position", func(t *testing.T) {
		g := NewGame()
		playMoves(t, g, Position{Row: 0, Column: 0})
		before := g.Board().Cells()

		_, err := g.DoMove(Position{Row: 0, Column: 0})

		var ownedErr *PositionOwnedError
		require.ErrorAs(t, err, &ownedErr, "Moving onto an owned cell should fail")
		require.Equal(t, Position{Row: 0, Column: 0}, ownedErr.Position)
		require.Equal(t, PlayerX, ownedErr.Owner, "Error should carry the current owner")
		require.Equal(t, before, g.Board().Cells(), "Failed move should not touch the board")
		require.Equal(t, PlayerOMove, g.State().Status, "Failed move should not change the state")
	})

	t.Run("moving outside the board", func(t *testing.T) {
		g := NewGame()

		_, err := g.DoMove(Position{Row: 3, Column: -1})

		var invalidErr *InvalidPositionError
		require.ErrorAs(t, err, &invalidErr, "Moving outside the board should fail")
		require.Equal(t, Position{Row: 3, Column: -1}, invalidErr.Position)
		require.Equal(t, PlayerXMove, g.State().Status, "Failed move should not change the state")
	})

	t.Run("moving after the game is over", func(t *testing.T) {
		g := NewGame()
		// X takes the top row.
		playMoves(t, g,
			Position{Row: 0, Column: 0}, // X
			Position{Row: 1, Column: 0}, // O
			Position{Row: 0, Column: 1}, // X
			Position{Row: 1, Column: 1}, // O
			Position{Row: 0, Column: 2}, // X wins
		)
		require.True(t, g.State().IsGameOver())

		_, err := g.DoMove(Position{Row: 2, Column: 2})

		require.ErrorIs(t, err, ErrGameOver, "Moving after the game is over should fail")
	})
}

func TestGameWinDetection(t *testing.T) {
	t.Run("completing a row", func(t *testing.T) {
		g := NewGame()
		playMoves(t, g,
			Position{Row: 0, Column: 0}, // X
			Position{Row: 1, Column: 0}, // O
			Position{Row: 0, Column: 1}, // X
			Position{Row: 1, Column: 1}, // O
			Position{Row: 0, Column: 2}, // X completes the top row
		)

		state := g.State()
		require.Equal(t, PlayerXWin, state.Status, "X should win\n%s", g.Board())
		require.ElementsMatch(t, []Position{
			{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2},
		}, state.WinPositions, "Winning set should be the completed row")
	})

	t.Run("completing a column", func(t *testing.T) {
		g := NewGame()
		playMoves(t, g,
			Position{Row: 0, Column: 1}, // X
			Position{Row: 0, Column: 0}, // O
			Position{Row: 2, Column: 2}, // X
			Position{Row: 1, Column: 0}, // O
			Position{Row: 1, Column: 2}, // X
			Position{Row: 2, Column: 0}, // O completes the left column
		)

		state := g.State()
		require.Equal(t, PlayerOWin, state.Status, "O should win\n%s", g.Board())
		require.ElementsMatch(t, []Position{
			{Row: 0, Column: 0}, {Row: 1, Column: 0}, {Row: 2, Column: 0},
		}, state.WinPositions, "Winning set should be the completed column")
	})

	t.Run("completing a diagonal", func(t *testing.T) {
		g := NewGame()
		playMoves(t, g,
			Position{Row: 0, Column: 0}, // X
			Position{Row: 0, Column: 1}, // O
			Position{Row: 1, Column: 1}, // X
			Position{Row: 0, Column: 2}, // O
			Position{Row: 2, Column: 2}, // X completes the diagonal
		)

		state := g.State()
		require.Equal(t, PlayerXWin, state.Status, "X should win\n%s", g.Board())
		require.ElementsMatch(t, []Position{
			{Row: 0, Column: 0}, {Row: 1, Column: 1}, {Row: 2, Column: 2},
		}, state.WinPositions, "Winning set should be the completed diagonal")
	})

	t.Run("completing a row and a diagonal with one move", func(t *testing.T) {
		g := NewGame()
		// X builds towards (0,2), which finishes both the top row and
		// the anti-diagonal at once.
		playMoves(t, g,
			Position{Row: 0, Column: 0}, // X
			Position{Row: 1, Column: 0}, // O
			Position{Row: 0, Column: 1}, // X
			Position{Row: 1, Column: 2}, // O
			Position{Row: 1, Column: 1}, // X
			Position{Row: 2, Column: 1}, // O
			Position{Row: 2, Column: 0}, // X
			Position{Row: 2, Column: 2}, // O
			Position{Row: 0, Column: 2}, // X completes two lines
		)

		state := g.State()
		require.Equal(t, PlayerXWin, state.Status, "X should win\n%s", g.Board())
		require.ElementsMatch(t, []Position{
			{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2},
			{Row: 1, Column: 1}, {Row: 2, Column: 0},
		}, state.WinPositions, "Winning set should union both completed lines")
	})

	t.Run("filling the board with no winner", func(t *testing.T) {
		g := NewGame()
		// The classic cat's game sequence.
		playMoves(t, g,
			Position{Row: 0, Column: 0},
			Position{Row: 0, Column: 1},
			Position{Row: 0, Column: 2},
			Position{Row: 1, Column: 1},
			Position{Row: 1, Column: 0},
			Position{Row: 1, Column: 2},
			Position{Row: 2, Column: 1},
			Position{Row: 2, Column: 0},
			Position{Row: 2, Column: 2},
		)

		state := g.State()
		require.Equal(t, CatsGame, state.Status, "Full board with no line should be a cat's game\n%s", g.Board())
		require.Empty(t, state.WinPositions)
		require.Empty(t, g.FreePositions(), "A finished game should have no free positions")
	})
}

func TestGameCanMoveAgreesWithDoMove(t *testing.T) {
	// Play random games and verify at every step that CanMove predicts
	// exactly whether DoMove succeeds, for every cell on and around the
	// board.
	rng := rand.New(rand.NewSource(7))
	probes := make([]Position, 0, 25)
	for row := -1; row < 4; row++ {
		for column := -1; column < 4; column++ {
			probes = append(probes, Position{Row: row, Column: column})
		}
	}

	g := NewGame()
	for round := 0; round < 20; round++ {
		for {
			for _, p := range probes {
				_, err := g.Clone().DoMove(p)
				require.Equal(t, g.CanMove(p), err == nil,
					"CanMove(%+v) should agree with DoMove\n%s", p, g.Board())
			}

			free := g.FreePositions()
			if len(free) == 0 {
				break
			}
			playMoves(t, g, free[rng.Intn(len(free))])
		}
		g.StartNextGame()
	}
}

func TestGameStateIsSingular(t *testing.T) {
	// After any successful move exactly one of {in progress, one player
	// won, cat's game} holds.
	rng := rand.New(rand.NewSource(11))

	g := NewGame()
	for round := 0; round < 50; round++ {
		for {
			free := g.FreePositions()
			if len(free) == 0 {
				break
			}
			state, err := g.DoMove(free[rng.Intn(len(free))])
			require.NoError(t, err)

			switch state.Status {
			case PlayerXMove, PlayerOMove, CatsGame:
				require.Empty(t, state.WinPositions,
					"Only win states should carry winning positions")
			case PlayerXWin, PlayerOWin:
				require.GreaterOrEqual(t, len(state.WinPositions), 3,
					"A win needs at least a full line\n%s", g.Board())
			default:
				t.Fatalf("unexpected status %v", state.Status)
			}
		}
		g.StartNextGame()
	}
}

func TestGameStartNextGame(t *testing.T) {
	t.Run("starting players alternate across rounds", func(t *testing.T) {
		g := NewGame()
		require.Equal(t, PlayerXMove, g.State().Status)

		state := g.StartNextGame()
		require.Equal(t, PlayerOMove, state.Status, "O should start the second round")
		require.False(t, state.IsGameOver(), "A new round should never start in a terminal state")

		state = g.StartNextGame()
		require.Equal(t, PlayerXMove, state.Status, "X should start the third round")
		require.False(t, state.IsGameOver())
	})

	t.Run("starting the next round resets the board", func(t *testing.T) {
		g := NewGame()
		playMoves(t, g, Position{Row: 0, Column: 0}, Position{Row: 1, Column: 1})

		g.StartNextGame()

		require.Len(t, g.FreePositions(), 9, "A new round should start with an empty board")
	})

	t.Run("alternation holds even after a finished game", func(t *testing.T) {
		g := NewGame()
		playMoves(t, g,
			Position{Row: 0, Column: 0}, // X
			Position{Row: 1, Column: 0}, // O
			Position{Row: 0, Column: 1}, // X
			Position{Row: 1, Column: 1}, // O
			Position{Row: 0, Column: 2}, // X wins
		)

		state := g.StartNextGame()

		require.Equal(t, PlayerOMove, state.Status, "O should start the round after X started the first")
	})
}

func TestGameClone(t *testing.T) {
	g := NewGame()
	playMoves(t, g, Position{Row: 0, Column: 0})

	clone := g.Clone()
	playMoves(t, clone, Position{Row: 1, Column: 1})

	require.Equal(t, PlayerOMove, g.State().Status, "Moving on the clone should not advance the original")
	owner, _ := g.Board().Get(Position{Row: 1, Column: 1})
	require.Equal(t, None, owner, "The clone's move should not mark the original board")
}
