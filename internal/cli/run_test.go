package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/libcore/internal/trace"
)

const (
	initLine     = "platform-unix: initialized\n"
	runningLine  = "core: running\n"
	shutdownMsg  = "core: shutting down\n"
	shutdownLine = "platform-unix: shutdown\n"
)

func TestRun_DefaultLifecycle(t *testing.T) {
	stdout, _, err := executeCommand(t, "run")
	require.NoError(t, err)
	assert.Equal(t, initLine+runningLine+shutdownMsg+shutdownLine, stdout)
}

func TestRun_RunBeforeInitIsSilent(t *testing.T) {
	stdout, _, err := executeCommand(t, "run", "run")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRun_RunAfterShutdownIsSilent(t *testing.T) {
	stdout, _, err := executeCommand(t, "run", "init", "run", "shutdown", "run")
	require.NoError(t, err)
	assert.Equal(t, initLine+runningLine+shutdownMsg+shutdownLine, stdout)
}

func TestRun_InitShutdown(t *testing.T) {
	stdout, _, err := executeCommand(t, "run", "init", "shutdown")
	require.NoError(t, err)
	assert.Equal(t, initLine+shutdownMsg+shutdownLine, stdout)
}

func TestRun_StubBackendIsSilent(t *testing.T) {
	stdout, _, err := executeCommand(t, "run", "--backend", "stub", "run", "init", "run", "shutdown")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRun_BackendFromEnv(t *testing.T) {
	t.Setenv("LIBCORE_BACKEND", "stub")

	stdout, _, err := executeCommand(t, "run")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRun_UnknownOperation(t *testing.T) {
	_, _, err := executeCommand(t, "run", "init", "reboot")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `unknown operation "reboot"`)
}

func TestRun_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "run", "--format", "json", "init", "run")
	require.NoError(t, err)

	var resp struct {
		Status string    `json:"status"`
		Data   RunResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Len(t, resp.Data.SessionID, 36)
	assert.Equal(t, "unix", resp.Data.Backend)
	assert.Equal(t, initLine+runningLine, resp.Data.Output)
	assert.True(t, resp.Data.Initialized)
	assert.False(t, resp.Data.Stored)
	assert.Equal(t, []trace.Event{
		{Seq: 1, Op: trace.OpInit},
		{Seq: 2, Op: trace.OpPrint, Message: runningLine},
	}, resp.Data.Events)
}

func TestRun_StoreAndTrace(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trace.db")

	stdout, _, err := executeCommand(t, "run", "--db", db, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data RunResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.True(t, resp.Data.Stored)
	id := resp.Data.SessionID

	stdout, _, err = executeCommand(t, "trace", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, id)
	assert.Contains(t, stdout, "4 events")

	stdout, _, err = executeCommand(t, "trace", "--db", db, "--session", id)
	require.NoError(t, err)
	assert.Equal(t,
		"Session "+id+" (backend unix)\n"+
			"  [1] init\n"+
			"  [2] print \"core: running\\n\"\n"+
			"  [3] print \"core: shutting down\\n\"\n"+
			"  [4] shutdown\n",
		stdout)
}
