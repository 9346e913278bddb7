package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibetools/gmforge/internal/errs"
)

// clearEnvVar unsets EnvVar for the test and restores it afterwards.
func clearEnvVar(t *testing.T) {
	t.Helper()
	t.Setenv(EnvVar, "")
	require.NoError(t, os.Unsetenv(EnvVar))
}

func TestResolve_PerCallWins(t *testing.T) {
	got, err := Resolve("/games/Platformer", "/games/Default", "")
	require.NoError(t, err)
	assert.Equal(t, "/games/Platformer", got)
}

func TestResolve_PerCallEqualToCwdIsIgnored(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := Resolve(wd, "/games/Default", "")
	require.NoError(t, err)
	assert.Equal(t, "/games/Default", got)
}

func TestResolve_ConfiguredFallback(t *testing.T) {
	got, err := Resolve("", "/games/Default", "")
	require.NoError(t, err)
	assert.Equal(t, "/games/Default", got)
}

func TestResolve_EnvFileFallback(t *testing.T) {
	clearEnvVar(t)
	envFile := filepath.Join(t.TempDir(), EnvFileName)
	require.NoError(t, os.WriteFile(envFile, []byte(EnvVar+"=/games/FromFile\n"), 0o644))

	got, err := Resolve("", "", envFile)
	require.NoError(t, err)
	assert.Equal(t, "/games/FromFile", got)
}

func TestResolve_ProcessEnvBeatsFile(t *testing.T) {
	t.Setenv(EnvVar, "/games/FromEnv")
	envFile := filepath.Join(t.TempDir(), EnvFileName)
	require.NoError(t, os.WriteFile(envFile, []byte(EnvVar+"=/games/FromFile\n"), 0o644))

	got, err := Resolve("", "", envFile)
	require.NoError(t, err)
	assert.Equal(t, "/games/FromEnv", got)
}

func TestResolve_NotConfigured(t *testing.T) {
	clearEnvVar(t)

	_, err := Resolve("", "", filepath.Join(t.TempDir(), EnvFileName))
	require.Error(t, err)
	assert.Equal(t, errs.Validation, errs.KindOf(err))
	assert.Equal(t,
		"Project path not configured. Set GMS2_PROJECT_PATH in config.env or pass --project-path argument.",
		err.Error())
}
