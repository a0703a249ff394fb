package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STEPS_TEST_ADDRESS=:9090\nSTEPS_TEST_PORT=42\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("STEPS_TEST_ADDRESS")
		os.Unsetenv("STEPS_TEST_PORT")
	})

	cfg := load(path)
	assert.Equal(t, ":9090", cfg.GetString("STEPS_TEST_ADDRESS"))
	assert.Equal(t, 42, cfg.GetIntOr("STEPS_TEST_PORT", 1))
	assert.Equal(t, "fallback", cfg.GetStringOr("STEPS_TEST_MISSING", "fallback"))
	assert.Equal(t, 7, cfg.GetIntOr("STEPS_TEST_MISSING", 7))
}

func TestEnvironmentWinsOverDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STEPS_TEST_USER=from_file\n"), 0o600))
	t.Setenv("STEPS_TEST_USER", "from_env")

	cfg := load(path)
	assert.Equal(t, "from_env", cfg.GetString("STEPS_TEST_USER"))
}

func TestMissingDotenvIsIgnored(t *testing.T) {
	cfg := load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NotNil(t, cfg)
}
