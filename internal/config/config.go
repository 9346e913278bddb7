// Package config resolves which project directory the tools operate on.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/vibetools/gmforge/internal/errs"
)

// EnvVar names the environment variable holding the default project path.
const EnvVar = "GMS2_PROJECT_PATH"

// EnvFileName is the conventional env file looked up when nothing else is
// configured.
const EnvFileName = "config.env"

// Resolve picks the project root for one call, in priority order: the
// per-call path, the default configured at startup, then EnvVar from the
// process environment after loading envFile. A per-call path naming the
// process working directory is treated as unset, because MCP clients
// substitute their own cwd when the user left the argument empty.
func Resolve(perCall, configured, envFile string) (string, error) {
	if perCall != "" && !isProcessCwd(perCall) {
		return perCall, nil
	}
	if configured != "" {
		return configured, nil
	}
	if envFile != "" {
		// Variables already set in the process win; a missing file is fine.
		_ = godotenv.Load(envFile)
	}
	if p := os.Getenv(EnvVar); p != "" {
		return p, nil
	}
	return "", errs.New(errs.Validation,
		"Project path not configured. Set GMS2_PROJECT_PATH in config.env or pass --project-path argument.")
}

func isProcessCwd(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	wd, err := os.Getwd()
	if err != nil {
		return false
	}
	return abs == wd
}
