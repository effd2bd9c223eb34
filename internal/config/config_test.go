package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedVars = []string{
	"SKILLMATCH_DB", "SKILLMATCH_LOG_LEVEL", "SKILLMATCH_PASSWORD_HASH",
	"SKILLMATCH_EVALUATION_TIMEOUT", "SKILLMATCH_LLM_PROVIDER",
	"SKILLMATCH_LLM_TIMEOUT", "SKILLMATCH_LLM_MAX_ATTEMPTS",
	"SKILLMATCH_GEMINI_API_KEY", "SKILLMATCH_GEMINI_MODEL",
	"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	"XDG_DATA_HOME",
}

// unsetAll clears the variables Load reads and restores them afterwards.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range managedVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// chdirTemp runs the test in an empty directory so no stray .env is read.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	unsetAll(t)
	dir := chdirTemp(t)
	t.Setenv("XDG_DATA_HOME", dir)

	cfg, err := Load(Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "plain", cfg.PasswordHash)
	assert.Equal(t, 30*time.Second, cfg.EvaluationTimeout)
	assert.Equal(t, filepath.Join(dir, "skillmatch", "skillmatch.db"), cfg.DBPath)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 1, cfg.LLM.Retry.MaxAttempts)
}

func TestLoadFromEnv(t *testing.T) {
	unsetAll(t)
	dir := chdirTemp(t)
	db := filepath.Join(dir, "data", "sm.db")
	t.Setenv("SKILLMATCH_DB", db)
	t.Setenv("SKILLMATCH_LOG_LEVEL", "debug")
	t.Setenv("SKILLMATCH_PASSWORD_HASH", "bcrypt")
	t.Setenv("SKILLMATCH_EVALUATION_TIMEOUT", "10s")
	t.Setenv("SKILLMATCH_LLM_PROVIDER", "mock")

	cfg, err := Load(Overrides{})
	require.NoError(t, err)

	assert.Equal(t, db, cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "bcrypt", cfg.PasswordHash)
	assert.Equal(t, 10*time.Second, cfg.EvaluationTimeout)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestLoadOverridesWin(t *testing.T) {
	unsetAll(t)
	dir := chdirTemp(t)
	t.Setenv("SKILLMATCH_DB", filepath.Join(dir, "env.db"))

	flagDB := filepath.Join(dir, "flag.db")
	cfg, err := Load(Overrides{DBPath: flagDB})
	require.NoError(t, err)
	assert.Equal(t, flagDB, cfg.DBPath)
}

func TestLoadEnvFile(t *testing.T) {
	unsetAll(t)
	dir := chdirTemp(t)
	content := "SKILLMATCH_DB=" + filepath.Join(dir, "dotenv.db") + "\n" +
		"SKILLMATCH_LOG_LEVEL=warn\n" +
		"GEMINI_API_KEY=from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultEnvFile), []byte(content), 0o600))

	// Process environment beats the file.
	t.Setenv("SKILLMATCH_LOG_LEVEL", "error")

	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dotenv.db"), cfg.DBPath)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "from-file", cfg.LLM.Gemini.APIKey)
}

func TestLoadMissingNamedEnvFile(t *testing.T) {
	unsetAll(t)
	dir := chdirTemp(t)

	_, err := Load(Overrides{EnvFile: filepath.Join(dir, "nope.env")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"hash scheme", "SKILLMATCH_PASSWORD_HASH", "md5"},
		{"log level", "SKILLMATCH_LOG_LEVEL", "loud"},
		{"timeout", "SKILLMATCH_EVALUATION_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetAll(t)
			dir := chdirTemp(t)
			t.Setenv("SKILLMATCH_DB", filepath.Join(dir, "x.db"))
			t.Setenv(tt.key, tt.val)

			_, err := Load(Overrides{})
			assert.Error(t, err)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}
