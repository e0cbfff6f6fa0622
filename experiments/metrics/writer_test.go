package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestNewWriter(t *testing.T) {
	root := t.TempDir()

	writer, err := NewWriter(root, "calibration")

	require.NoError(t, err)
	info, err := os.Stat(writer.BaseDir())
	require.NoError(t, err, "Writer should create its output directory")
	require.True(t, info.IsDir())
	require.Equal(t, filepath.Join(root, "calibration"), filepath.Dir(writer.BaseDir()),
		"Runs should nest under root/name")
}

func TestWriteMatchups(t *testing.T) {
	writer, err := NewWriter(t.TempDir(), "calibration")
	require.NoError(t, err)

	err = writer.WriteMatchups([]MatchupConfig{
		{ID: 1, DifficultyX: "Easy", DifficultyO: "None"},
		{ID: 2, DifficultyX: "Hard", DifficultyO: "Unbeatable"},
	})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(writer.BaseDir(), "matchups.csv"))
	require.Equal(t, [][]string{
		{"id", "difficulty_x", "difficulty_o"},
		{"1", "Easy", "None"},
		{"2", "Hard", "Unbeatable"},
	}, rows)
}

func TestWriteGameRecords(t *testing.T) {
	writer, err := NewWriter(t.TempDir(), "calibration")
	require.NoError(t, err)

	start := time.Date(2021, 5, 4, 12, 0, 0, 0, time.UTC)
	record := GameRecord{
		ID:             uuid.NewString(),
		Matchup:        1,
		StartingPlayer: "X",
		Result:         "CatsGame",
		Moves:          9,
		StartTime:      start,
		Duration:       125 * time.Millisecond,
	}

	err = writer.WriteGameRecords([]GameRecord{record})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(writer.BaseDir(), "game_records.csv"))
	require.Len(t, rows, 2, "Header plus one record")
	require.Equal(t,
		[]string{"id", "matchup", "starting_player", "result", "moves", "start_time", "duration"},
		rows[0])
	require.Equal(t,
		[]string{record.ID, "1", "X", "CatsGame", "9", "2021-05-04T12:00:00Z", "125ms"},
		rows[1])
}
