// Package ai provides the computer controlled opponent: an exhaustive,
// difficulty-modulated game tree search over the game state machine.
// It can drive single player games or power a hint system.
package ai

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/exp/rand"

	"tictactoe/game"
)

// maxSearchDepth guards against runaway recursion. A 3x3 board is at
// most 9 plies deep, so hitting this cap means a bug, not a big board.
const maxSearchDepth = 16

// Opponent evaluates games and picks moves for one side. Its strength
// is set by the Difficulty policy; randomness for tie breaking and for
// probabilistic pruning comes from an injectable source so tests can
// make it deterministic.
type Opponent struct {
	difficulty Difficulty
	rng        *rand.Rand
}

// Option configures an Opponent.
type Option func(*Opponent)

// WithRand injects the random source used for tie breaking and for the
// probabilistic difficulty policies. Pass a seeded source to make the
// opponent reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *Opponent) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// NewOpponent returns an opponent playing at the given difficulty.
func NewOpponent(difficulty Difficulty, options ...Option) *Opponent {
	o := &Opponent{
		difficulty: difficulty,
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// Difficulty returns the policy the opponent was built with.
func (o *Opponent) Difficulty() Difficulty {
	return o.difficulty
}

// GetMove returns the position the opponent wishes to mark. The second
// return value is false iff the game is already over. The opponent
// never returns a position that is not free.
func (o *Opponent) GetMove(g *game.Game) (game.Position, bool) {
	return BestPosition(o.EvaluateGame(g), o.rng)
}

// EvaluateGame maps every free position to its outcome for the
// opponent. An empty map is returned when the game is over, as then
// there is no way to tell which player the opponent would be.
//
// Beyond move selection this is useful for hint systems and for tuning
// difficulty settings, since it exposes how the opponent saw the game.
func (o *Opponent) EvaluateGame(g *game.Game) map[game.Position]Outcome {
	outcomes := make(map[game.Position]Outcome)
	if g.State().IsGameOver() {
		return outcomes
	}

	asPlayer := playerFromState(g.State())
	for _, position := range g.FreePositions() {
		outcomes[position] = o.evaluatePosition(g, position, asPlayer, 0)
	}
	return outcomes
}

// evaluatePosition determines what the outcome of the game would be if
// the mover marked the given position, by recursively simulating every
// reply down to terminal states. The opponent assumes the other player
// plays perfectly, so the worst outcome found among the replies is the
// value of the node.
func (o *Opponent) evaluatePosition(g *game.Game, position game.Position, asPlayer player, depth int) Outcome {
	if !g.CanMove(position) {
		panic(fmt.Sprintf("cannot evaluate position (%d,%d): the game is over or the position is not free; this is a bug in the tictactoe library",
			position.Row, position.Column))
	}
	if depth > maxSearchDepth {
		panic(fmt.Sprintf("search exceeded depth %d on a board that allows at most %d plies; this is a bug in the tictactoe library",
			maxSearchDepth, len(g.Board().Cells())))
	}

	// Per the difficulty policy the opponent may not consider this
	// node at all, leaving the branch unknown to it.
	if !o.difficulty.evaluateNode(depth, o.rng) {
		return Unknown
	}

	// An untouched board needs no search: tic-tac-toe is a draw under
	// perfect play, so every opening move's worst case is a cat's game.
	if len(g.FreePositions()) == len(g.Board().Cells()) {
		return CatsGame
	}

	// Try the move on a clone so the real game is left untouched. The
	// game takes care of switching whose turn it is.
	next := g.Clone()
	state, err := next.DoMove(position)
	if err != nil {
		panic(fmt.Sprintf("move at (%d,%d) failed after CanMove allowed it: %v; this is a bug in the tictactoe library",
			position.Row, position.Column, err))
	}
	if state.IsGameOver() {
		return outcomeFromState(state, asPlayer)
	}

	outcomes := make(map[Outcome]struct{})
	for _, reply := range next.FreePositions() {
		outcome := o.evaluatePosition(next, reply, asPlayer, depth+1)
		if outcome == Loss {
			// Nothing can rank below a loss, so the remaining
			// siblings cannot change this node's value.
			return Loss
		}
		outcomes[outcome] = struct{}{}
	}
	return worstOutcome(outcomes)
}

// BestPosition picks the position with the best outcome, ranking
// Win > CatsGame > Unknown > Loss. A cat's game beats Unknown because
// the opponent would rather force a draw than risk a loss on a branch
// it never examined. Ties are broken uniformly at random using rng
// (a time-seeded source is used when rng is nil). The second return
// value is false when the mapping is empty.
func BestPosition(outcomes map[game.Position]Outcome, rng *rand.Rand) (game.Position, bool) {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	byOutcome := make(map[Outcome][]game.Position)
	for position, outcome := range outcomes {
		byOutcome[outcome] = append(byOutcome[outcome], position)
	}

	for _, outcome := range []Outcome{Win, CatsGame, Unknown, Loss} {
		candidates := byOutcome[outcome]
		if len(candidates) == 0 {
			continue
		}
		// Map iteration order is unspecified; sort before sampling so
		// a seeded rng yields a reproducible choice.
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].Row != candidates[j].Row {
				return candidates[i].Row < candidates[j].Row
			}
			return candidates[i].Column < candidates[j].Column
		})
		return candidates[rng.Intn(len(candidates))], true
	}
	return game.Position{}, false
}
