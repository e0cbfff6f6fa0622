// Package metrics holds the record types and CSV output for the
// difficulty calibration experiments.
package metrics

import "time"

// MatchupConfig describes one pairing of difficulties. X and O keep
// their difficulty for the whole matchup while the game alternates who
// moves first.
type MatchupConfig struct {
	ID          int
	DifficultyX string
	DifficultyO string
}

// GameRecord captures the result of a single game within a matchup.
type GameRecord struct {
	ID             string // uuid
	Matchup        int    // MatchupConfig.ID
	StartingPlayer string
	Result         string
	Moves          int
	StartTime      time.Time
	Duration       time.Duration
}
