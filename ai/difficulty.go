package ai

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Difficulty decides, per search depth, whether the opponent evaluates
// a node of the game tree or skips it and reports Unknown. Skipping is
// how weaker difficulties fail to see deep threats: the policy trades
// search completeness for fallibility.
//
// Depth starts at zero at the opponent's own candidate moves and grows
// by one per ply.
type Difficulty struct {
	name     string
	evaluate func(depth int, rng *rand.Rand) bool
}

var (
	// None never evaluates anything: the opponent picks a uniformly
	// random free position.
	None = Difficulty{
		name:     "None",
		evaluate: func(int, *rand.Rand) bool { return false },
	}

	// Easy only ever looks at its own immediate moves, and even then
	// only half the time.
	Easy = Difficulty{
		name: "Easy",
		evaluate: func(depth int, rng *rand.Rand) bool {
			return depth == 0 && rng.Float64() < 0.5
		},
	}

	// Medium usually sees its own moves and most replies.
	Medium = Difficulty{
		name: "Medium",
		evaluate: func(depth int, rng *rand.Rand) bool {
			if depth == 0 {
				return rng.Float64() < 0.9
			}
			return rng.Float64() < 0.75
		},
	}

	// Hard always sees two plies ahead and almost everything beyond.
	Hard = Difficulty{
		name: "Hard",
		evaluate: func(depth int, rng *rand.Rand) bool {
			if depth <= 1 {
				return true
			}
			return rng.Float64() < 0.97
		},
	}

	// Unbeatable evaluates every node: a full minimax that cannot lose.
	Unbeatable = Difficulty{
		name:     "Unbeatable",
		evaluate: func(int, *rand.Rand) bool { return true },
	}
)

// Custom builds a difficulty from a caller-supplied policy. The policy
// is invoked with the same depth-starts-at-zero contract as the
// presets. It is not guaranteed to run for every node: the opponent
// answers some positions without searching at all.
func Custom(shouldEvaluate func(depth int) bool) Difficulty {
	return Difficulty{
		name: "Custom",
		evaluate: func(depth int, _ *rand.Rand) bool {
			return shouldEvaluate(depth)
		},
	}
}

// MistakeProbability builds a depth-independent difficulty that skips
// any node with probability p. Zero plays a perfect game; one always
// picks a random position. Values outside [0, 1] are clamped.
func MistakeProbability(p float64) Difficulty {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return Difficulty{
		name: fmt.Sprintf("Mistake(%.2f)", p),
		evaluate: func(_ int, rng *rand.Rand) bool {
			return rng.Float64() >= p
		},
	}
}

func (d Difficulty) String() string {
	return d.name
}

// evaluateNode reports whether a node at the given depth should be
// evaluated further.
func (d Difficulty) evaluateNode(depth int, rng *rand.Rand) bool {
	return d.evaluate(depth, rng)
}
