package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibetools/gmforge/internal/config"
)

func stashFlags(t *testing.T) {
	t.Helper()
	oldProject, oldEnv := projectPath, envFile
	t.Cleanup(func() { projectPath, envFile = oldProject, oldEnv })
}

func TestResolveProject_ExplicitArgWins(t *testing.T) {
	stashFlags(t)
	projectPath = "/somewhere/else"

	got, err := resolveProject([]string{"/games/dungeon"})
	require.NoError(t, err)
	assert.Equal(t, "/games/dungeon", got)
}

func TestResolveProject_FlagFallback(t *testing.T) {
	stashFlags(t)
	projectPath = "/games/dungeon"
	envFile = filepath.Join(t.TempDir(), "config.env")

	got, err := resolveProject(nil)
	require.NoError(t, err)
	assert.Equal(t, "/games/dungeon", got)
}

func TestResolveProject_UnconfiguredFails(t *testing.T) {
	stashFlags(t)
	projectPath = ""
	envFile = filepath.Join(t.TempDir(), "config.env")
	t.Setenv(config.EnvVar, "")
	require.NoError(t, os.Unsetenv(config.EnvVar))

	_, err := resolveProject(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Project path not configured")
}
