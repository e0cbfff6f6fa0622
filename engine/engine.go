// Package engine drives complete games between two move providers on
// top of the game state machine. It is presentation-free glue: demos,
// benchmarks and the difficulty calibration experiments all run their
// matches through it.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"tictactoe/ai"
	"tictactoe/game"
)

// Agent provides moves for one side of a match. FindMove must return
// ok=false only when the game is already over.
type Agent interface {
	FindMove(g *game.Game) (game.Position, bool)
}

// OpponentAgent adapts an ai.Opponent to the Agent interface.
type OpponentAgent struct {
	Opponent *ai.Opponent
}

func (a OpponentAgent) FindMove(g *game.Game) (game.Position, bool) {
	return a.Opponent.GetMove(g)
}

// Scores tallies the results of a series of games.
type Scores struct {
	XWins     int
	OWins     int
	CatsGames int
}

// TotalGames returns the number of games the scores cover.
func (s Scores) TotalGames() int {
	return s.XWins + s.OWins + s.CatsGames
}

// Engine runs games between an X agent and an O agent. The agents keep
// their marks for the whole series; the game itself alternates which
// mark moves first each round.
type Engine struct {
	game   *game.Game
	agentX Agent
	agentO Agent
}

// NewLocalEngine returns an engine for a fresh game between the two
// agents.
func NewLocalEngine(agentX, agentO Agent) *Engine {
	if agentX == nil || agentO == nil {
		panic("both agents are required")
	}
	return &Engine{
		game:   game.NewGame(),
		agentX: agentX,
		agentO: agentO,
	}
}

// Game exposes the engine's game, e.g. for inspecting the board after
// a run. Callers must not submit moves to it directly.
func (e *Engine) Game() *game.Game {
	return e.game
}

// Run plays the current game to completion and returns the final
// state.
func (e *Engine) Run() game.State {
	for {
		state := e.game.State()
		switch state.Status {
		case game.PlayerXMove:
			e.play(e.agentX)
		case game.PlayerOMove:
			e.play(e.agentO)
		default:
			return state
		}
	}
}

// RunSeries plays the given number of games, starting the next round
// after each so the agents alternate who moves first, and returns the
// tallied scores. The engine is left ready for another round.
func (e *Engine) RunSeries(games int) Scores {
	var scores Scores
	for i := 0; i < games; i++ {
		state := e.Run()
		switch state.Status {
		case game.PlayerXWin:
			scores.XWins++
		case game.PlayerOWin:
			scores.OWins++
		case game.CatsGame:
			scores.CatsGames++
		}
		log.Debug().
			Int("game", i+1).
			Int("of", games).
			Stringer("result", state.Status).
			Msg("game finished")
		e.game.StartNextGame()
	}
	return scores
}

// StartNextGame begins the next round, alternating which mark moves
// first, and returns its starting state.
func (e *Engine) StartNextGame() game.State {
	return e.game.StartNextGame()
}

// MovesPlayed counts the marks currently on the board.
func (e *Engine) MovesPlayed() int {
	moves := 0
	for _, cell := range e.game.Board().Cells() {
		if cell.Owner != game.None {
			moves++
		}
	}
	return moves
}

func (e *Engine) play(agent Agent) {
	mark := e.game.State().Status
	position, ok := agent.FindMove(e.game)
	if !ok {
		panic("agent returned no move for a game that is not over")
	}
	state, err := e.game.DoMove(position)
	if err != nil {
		panic(fmt.Sprintf("agent for %s chose an illegal move (%d,%d): %v",
			mark, position.Row, position.Column, err))
	}
	log.Trace().
		Stringer("turn", mark).
		Int("row", position.Row).
		Int("column", position.Column).
		Stringer("state", state.Status).
		Msg("move played")
}
