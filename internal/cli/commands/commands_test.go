// Package commands_test provides tests for CLI command creation.
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleProblemJSON is a 2x2 LP with relational-free lower bounds.
const sampleProblemJSON = `{
	"csr_constraint_matrix": {
		"offsets": [0, 2, 4],
		"indices": [0, 1, 0, 1],
		"values": [3.0, 4.0, 2.7, 10.1]
	},
	"constraint_bounds": {
		"upper_bounds": [5.4, 4.9],
		"lower_bounds": ["ninf", "ninf"]
	},
	"objective_data": {
		"coefficients": [0.2, 0.1]
	},
	"variable_bounds": {
		"upper_bounds": ["inf", "inf"],
		"lower_bounds": [0.0, 0.0]
	}
}`

// writeSampleProblem writes the sample problem to a temp file and
// returns its path.
func writeSampleProblem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleProblemJSON), 0644))
	return path
}

// writeTempFile writes content to name in a temp dir and returns the path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execCommand runs a command with args and returns its combined output.
func execCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNewSolveCommand(t *testing.T) {
	cmd := NewSolveCommand()

	assert.Equal(t, "solve <file.json>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist (output is a global flag on root, not local)
	flags := []string{"mps", "no-history"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestSolveCommandRequiresArg(t *testing.T) {
	cmd := NewSolveCommand()
	_, err := execCommand(t, cmd)
	assert.Error(t, err, "solve without an input file should fail")
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check <file.json>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("dense"), "flag \"dense\" should exist")
}

func TestNewExportCommand(t *testing.T) {
	cmd := NewExportCommand()

	assert.Equal(t, "export <file.json>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("out"), "flag \"out\" should exist")
}

func TestNewRunsCommand(t *testing.T) {
	cmd := NewRunsCommand()

	assert.Equal(t, "runs", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("limit"), "flag \"limit\" should exist")
}
