package ai

import (
	"fmt"

	"tictactoe/game"
)

// Outcome classifies the result of a game from the opponent's
// perspective after playing a candidate position.
type Outcome int

const (
	// Win means the opponent wins the game.
	Win Outcome = iota
	// Loss means the opponent loses the game.
	Loss
	// CatsGame means the game ends in a draw.
	CatsGame
	// Unknown means the opponent declined to evaluate the branch, so
	// the result is not known to it. Unknown ranks above Loss and
	// below CatsGame: the opponent would rather gamble on an
	// unexplored branch than walk into a known loss, but prefers a
	// guaranteed draw over a gamble.
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	case CatsGame:
		return "CatsGame"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// player is the mark the opponent plays as.
type player int

const (
	playerX player = iota
	playerO
)

// playerFromState determines which player the opponent is playing as
// from whose turn it is. It panics if the game is over, which can only
// happen through a bug in this package.
func playerFromState(state game.State) player {
	switch state.Status {
	case game.PlayerXMove:
		return playerX
	case game.PlayerOMove:
		return playerO
	default:
		panic(fmt.Sprintf("cannot determine the AI player from status %s: the game is over; this is a bug in the tictactoe library", state.Status))
	}
}

// outcomeFromState maps a terminal game state to an outcome from the
// given player's perspective. It panics if the game is not over.
func outcomeFromState(state game.State, asPlayer player) Outcome {
	switch state.Status {
	case game.CatsGame:
		return CatsGame
	case game.PlayerXWin:
		if asPlayer == playerX {
			return Win
		}
		return Loss
	case game.PlayerOWin:
		if asPlayer == playerO {
			return Win
		}
		return Loss
	default:
		panic(fmt.Sprintf("cannot determine the AI outcome from status %s: the game is not over; this is a bug in the tictactoe library", state.Status))
	}
}

// worstOutcome returns the worst outcome in the set, ordered Loss,
// CatsGame, Win. Unknown is returned when the set is empty or holds
// only Unknown: nothing concrete was learned about the branch.
func worstOutcome(outcomes map[Outcome]struct{}) Outcome {
	for _, outcome := range []Outcome{Loss, CatsGame, Win} {
		if _, ok := outcomes[outcome]; ok {
			return outcome
		}
	}
	return Unknown
}
