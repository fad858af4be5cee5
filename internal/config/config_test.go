package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("PRIVILEGED_USER_ID", "admin")
	t.Setenv("WEBHOOK_USER_ID", "webhook")
	t.Setenv("STATS_CHANNEL_ID", "channel")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "admin", cfg.Discord.PrivilegedUserID)
	require.Equal(t, 32, cfg.Stats.GameIDLength)
	require.Equal(t, 100, cfg.Stats.HistoryWindow)
	require.Equal(t, BackendFile, cfg.Storage.Backend)
	require.Equal(t, "./data", cfg.Storage.Dir)
	require.Equal(t, 5*time.Second, cfg.Storage.Timeout)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DISCORD_TOKEN", "")
	_, err := Load("")
	require.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	setRequired(t)
	// godotenv does not override variables that are already set
	t.Setenv("GAME_ID_LENGTH", "16")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GAME_ID_LENGTH=8\nHISTORY_WINDOW=50\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("HISTORY_WINDOW") })

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.Stats.GameIDLength)
	require.Equal(t, 50, cfg.Stats.HistoryWindow)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	setRequired(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}

func TestValidate(t *testing.T) {
	setRequired(t)

	cases := map[string]string{
		"GAME_ID_LENGTH":  "0",
		"HISTORY_WINDOW":  "101",
		"STORAGE_BACKEND": "sqlite",
		"STORAGE_TIMEOUT": "0s",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load("")
			require.Error(t, err)
		})
	}
}
