package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorelic/internal/store"
)

func TestScanCommand_RecordsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scan.db")

	out, err := executeCommand(t, "scan", "testdata/colored_triplet.yaml",
		"--db", dbPath, "--min", "800", "--max", "1600", "--steps", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Scan points: 3 (0 failed)")

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	runs, err := db.ReadRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, 800.0, runs[0].Mass)
	assert.Equal(t, 1200.0, runs[1].Mass)
	assert.Equal(t, 1600.0, runs[2].Mass)
	for _, run := range runs {
		assert.Equal(t, "colored-triplet-scalar", run.Model)
		assert.Equal(t, "~X3", run.Candidate)
		assert.Greater(t, run.Result.OmegaH2, 0.0)
		assert.Len(t, run.Result.Channels, 7)
	}

	// The abundance grows with the candidate mass across the scanned range.
	assert.Less(t, runs[0].Result.OmegaH2, runs[2].Result.OmegaH2)
}

func TestScanCommand_FlagValidation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scan.db")

	tests := []struct {
		name string
		args []string
	}{
		{"too few steps", []string{"--min", "800", "--max", "1600", "--steps", "1"}},
		{"min not positive", []string{"--min", "0", "--max", "1600", "--steps", "3"}},
		{"max below min", []string{"--min", "1600", "--max", "800", "--steps", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"scan", "testdata/colored_triplet.yaml", "--db", dbPath}, tt.args...)
			_, err := executeCommand(t, args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestScanCommand_MissingModel(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scan.db")

	_, err := executeCommand(t, "scan", "no/such/file.yaml",
		"--db", dbPath, "--min", "800", "--max", "1600", "--steps", "3")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
