package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment output as CSV files under a per-run
// directory named by the current timestamp.
type Writer struct {
	baseDir string
}

// NewWriter creates the output directory root/name/<timestamp> and
// returns a writer targeting it.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory the writer stores files in.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WriteMatchups stores the matchup configurations.
func (w *Writer) WriteMatchups(matchups []MatchupConfig) error {
	path := filepath.Join(w.baseDir, "matchups.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matchups file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "difficulty_x", "difficulty_o"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write matchups header: %w", err)
	}

	for _, matchup := range matchups {
		row := []string{
			strconv.Itoa(matchup.ID),
			matchup.DifficultyX,
			matchup.DifficultyO,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write matchup row: %w", err)
		}
	}

	return nil
}

// WriteGameRecords stores one row per played game.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "matchup", "starting_player", "result", "moves", "start_time", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			strconv.Itoa(record.Matchup),
			record.StartingPlayer,
			record.Result,
			strconv.Itoa(record.Moves),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}
