package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_DefaultPath(t *testing.T) {
	path := writeSampleProblem(t)

	out, err := execCommand(t, NewExportCommand(), path)
	require.NoError(t, err)

	mpsPath := strings.TrimSuffix(path, ".json") + ".mps"
	assert.Contains(t, out, mpsPath)

	data, err := os.ReadFile(mpsPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "NAME          SAMPLE")
	assert.Contains(t, content, "ROWS")
	assert.Contains(t, content, "COLUMNS")
	assert.Contains(t, content, "ENDATA")
}

func TestExportCommand_ExplicitOut(t *testing.T) {
	path := writeSampleProblem(t)
	outPath := filepath.Join(t.TempDir(), "model.mps")

	_, err := execCommand(t, NewExportCommand(), path, "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ENDATA")
}

func TestExportCommand_Stdout(t *testing.T) {
	path := writeSampleProblem(t)

	out, err := execCommand(t, NewExportCommand(), path, "--out", "-")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "NAME"), "MPS output should start with NAME, got: %q", out[:min(40, len(out))])
	assert.Contains(t, out, "ENDATA")
}

func TestProblemName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"problem.json", "PROBLEM"},
		{"/tmp/dir/diet_model.json", "DIET_MODEL"},
		{"noext", "NOEXT"},
		{".json", "PROBLEM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, problemName(tt.path), "problemName(%q)", tt.path)
	}
}
