package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "libcore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("backend", DefaultBackend, "")
	fs.String("db", "", "")
	fs.String("format", DefaultFormat, "")
	fs.BoolP("verbose", "v", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "unix", cfg.Backend)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "", cfg.Database)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "", cfg.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "backend: stub\ndatabase: /tmp/x.db\nverbose: true\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "stub", cfg.Backend)
	assert.Equal(t, "/tmp/x.db", cfg.Database)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "text", cfg.Format, "unset keys keep defaults")
	assert.Equal(t, path, cfg.File)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "backend: stub\n")
	t.Setenv("LIBCORE_BACKEND", "unix")
	t.Setenv("LIBCORE_FORMAT", "json")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "unix", cfg.Backend)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_ChangedFlagsOverrideEnv(t *testing.T) {
	t.Setenv("LIBCORE_BACKEND", "unix")
	t.Setenv("LIBCORE_FORMAT", "json")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--backend", "stub", "--db", "trace.db"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, "stub", cfg.Backend)
	assert.Equal(t, "trace.db", cfg.Database, "--db maps to database")
	assert.Equal(t, "json", cfg.Format, "unchanged flag does not override env")
}

func TestValidate(t *testing.T) {
	cfg := &Config{Backend: "plan9", Format: "text"}
	assert.ErrorContains(t, cfg.Validate(), `invalid backend "plan9"`)

	cfg = &Config{Backend: "stub", Format: "xml"}
	assert.ErrorContains(t, cfg.Validate(), `invalid format "xml"`)
}
