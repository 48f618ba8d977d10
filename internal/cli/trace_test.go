package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_RequiresDatabase(t *testing.T) {
	_, _, err := executeCommand(t, "trace")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "a database is required")
}

func TestTrace_EmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trace.db")

	stdout, _, err := executeCommand(t, "trace", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No sessions stored.\n", stdout)
}

func TestTrace_UnknownSession(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trace.db")

	_, _, err := executeCommand(t, "trace", "--db", db, "--session", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "no such session")
}

func TestTrace_JSONList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trace.db")

	stdout, _, err := executeCommand(t, "trace", "--db", db, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":[]}`, stdout)
}
