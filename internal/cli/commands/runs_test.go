package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lpforge/lpforge/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedRunHistory points LPFORGE_STATE_PATH at a temp database and
// records the given runs in it.
func seedRunHistory(t *testing.T, runs ...*state.Run) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	t.Setenv("LPFORGE_STATE_PATH", path)

	store := state.NewSQLiteStore()
	require.NoError(t, store.Open(path))
	require.NoError(t, store.Migrate())
	defer func() { require.NoError(t, store.Close()) }()

	for _, r := range runs {
		require.NoError(t, store.CreateRun(r))
		if r.Status != state.RunStatusRunning {
			require.NoError(t, store.CompleteRun(r.ID, r.Status, r.Objective, r.SolveTime, r.Error))
		}
	}
}

func TestRunsCommand_Empty(t *testing.T) {
	seedRunHistory(t)

	out, err := execCommand(t, NewRunsCommand(), "--limit", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "No runs recorded.")
}

func TestRunsCommand_ListsRuns(t *testing.T) {
	id := uuid.NewString()
	seedRunHistory(t, &state.Run{
		ID:          id,
		InputFile:   "diet.json",
		Status:      state.RunStatusSuccess,
		Constraints: 3,
		Variables:   5,
		NonZeros:    12,
		MIP:         true,
		Objective:   42.5,
		SolveTime:   125 * time.Millisecond,
		StartedAt:   time.Now().UTC(),
	})

	out, err := execCommand(t, NewRunsCommand())
	require.NoError(t, err)

	assert.Contains(t, out, id[:8])
	assert.Contains(t, out, "diet.json")
	assert.Contains(t, out, "success")
	assert.Contains(t, out, "3x5 (MIP)")
	assert.Contains(t, out, "42.5")
	assert.Contains(t, out, "(1 runs)")
}

func TestRunsCommand_JSONOutput(t *testing.T) {
	t.Setenv("LPFORGE_OUTPUT", "json")
	seedRunHistory(t, &state.Run{
		ID:        uuid.NewString(),
		InputFile: "plan.json",
		Status:    state.RunStatusFailed,
		Error:     "solver status: Infeasible",
		StartedAt: time.Now().UTC(),
	})

	out, err := execCommand(t, NewRunsCommand())
	require.NoError(t, err)

	assert.Contains(t, out, `"input_file": "plan.json"`)
	assert.Contains(t, out, `"status": "failed"`)
	assert.Contains(t, out, `"error": "solver status: Infeasible"`)
}

func TestSizeCell(t *testing.T) {
	assert.Equal(t, "4x7", sizeCell(runRow{Constraints: 4, Variables: 7}))
	assert.Equal(t, "2x2 (MIP)", sizeCell(runRow{Constraints: 2, Variables: 2, MIP: true}))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0a1b2c3d", shortID("0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9"))
	assert.Equal(t, "short", shortID("short"))
}
