// Package experiments runs batch battles between opponents of
// different difficulties to calibrate how human-beatable each preset
// is. Results are written as CSV for offline analysis.
package experiments

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tictactoe/ai"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

const (
	// GamesPerMatchup balances run time against the statistical noise
	// of the probabilistic difficulties.
	GamesPerMatchup = 100

	// OutputRoot is where experiment CSVs land, one timestamped
	// directory per run.
	OutputRoot = "experiments"
)

// matchup pairs the difficulty playing X against the one playing O.
type matchup struct {
	id int
	x  ai.Difficulty
	o  ai.Difficulty
}

// RunDifficultyExperiment battles the graded difficulties against the
// two reference opponents: the random one (they should increasingly
// win) and the unbeatable one (they should increasingly draw). The
// engine alternates who moves first, so neither side gets the opening
// advantage for a whole matchup.
func RunDifficultyExperiment() error {
	graded := []ai.Difficulty{ai.Easy, ai.Medium, ai.Hard}

	matchups := make([]matchup, 0, 2*len(graded))
	for _, difficulty := range graded {
		matchups = append(matchups, matchup{id: len(matchups) + 1, x: difficulty, o: ai.None})
	}
	for _, difficulty := range graded {
		matchups = append(matchups, matchup{id: len(matchups) + 1, x: difficulty, o: ai.Unbeatable})
	}

	return runExperiment("difficulty_calibration", matchups)
}

func runExperiment(name string, matchups []matchup) error {
	log.Info().Msgf("starting %s experiment...", name)

	var gameRecords []metrics.GameRecord
	for mi, m := range matchups {
		log.Info().Msgf("starting matchup %d of %d: %s vs %s...",
			mi+1, len(matchups), m.x, m.o)

		gameRecords = append(gameRecords, runMatchup(m)...)

		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchups))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(OutputRoot, name)
	if err != nil {
		return err
	}

	configs := make([]metrics.MatchupConfig, len(matchups))
	for i, m := range matchups {
		configs[i] = metrics.MatchupConfig{
			ID:          m.id,
			DifficultyX: m.x.String(),
			DifficultyO: m.o.String(),
		}
	}
	if err := writer.WriteMatchups(configs); err != nil {
		return err
	}
	log.Info().Msg("stored matchup configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored %d game records in %s", len(gameRecords), writer.BaseDir())

	return nil
}

// runMatchup plays a full series of games between the matchup's two
// difficulties and records each result.
func runMatchup(m matchup) []metrics.GameRecord {
	e := engine.NewLocalEngine(
		engine.OpponentAgent{Opponent: ai.NewOpponent(m.x)},
		engine.OpponentAgent{Opponent: ai.NewOpponent(m.o)},
	)

	records := make([]metrics.GameRecord, 0, GamesPerMatchup)
	for i := 0; i < GamesPerMatchup; i++ {
		startingPlayer := markOf(e.Game().State().Status)
		start := time.Now()

		state := e.Run()

		records = append(records, metrics.GameRecord{
			ID:             uuid.NewString(),
			Matchup:        m.id,
			StartingPlayer: startingPlayer,
			Result:         state.Status.String(),
			Moves:          e.MovesPlayed(),
			StartTime:      start,
			Duration:       time.Since(start),
		})
		e.StartNextGame()
	}
	return records
}

func markOf(s game.Status) string {
	if s == game.PlayerOMove {
		return "O"
	}
	return "X"
}
