package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.API, cfg.API)
	assert.Equal(t, want.Run, cfg.Run)
	assert.Equal(t, "users.txt", cfg.Accounts.Path)
	assert.Equal(t, "proxy.txt", cfg.Proxies.Path)
	assert.Empty(t, cfg.Source)
}

func TestWriteFileThenLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)
	cfg := Default()
	cfg.API.MaxRetries = 5
	cfg.Run.WaitInterval = 45 * time.Minute
	cfg.Run.Schedule = "@every 1h"
	cfg.Log.File = "animix.log"
	cfg.Log.Color = false

	require.NoError(t, WriteFile(path, cfg, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(configFileMode), info.Mode().Perm())

	loaded, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Source)
	loaded.Source = ""
	assert.Equal(t, cfg, loaded)
}

func TestWriteFileRefusesOverwriteWithoutForce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))

	err := WriteFile(path, Default(), false)
	require.ErrorIs(t, err, ErrConfigExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	require.NoError(t, WriteFile(path, Default(), true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://pro-api.animix.tech")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ANIMIX_RUN_CLAN_ID", "42")
	t.Setenv("ANIMIX_API_TIMEOUT", "5s")

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, WriteFile(path, Default(), false))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Run.ClanID)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("[api]\nbase_url = \"ftp://example.com\"\n"), 0o600))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "missing base url", mutate: func(c *Config) { c.API.BaseURL = "" }, wantErr: "api base url is required"},
		{name: "base url without host", mutate: func(c *Config) { c.API.BaseURL = "https://" }, wantErr: "host is required"},
		{name: "zero timeout", mutate: func(c *Config) { c.API.Timeout = 0 }, wantErr: KeyAPITimeout},
		{name: "negative retries", mutate: func(c *Config) { c.API.MaxRetries = -1 }, wantErr: KeyAPIMaxRetries},
		{name: "empty accounts path", mutate: func(c *Config) { c.Accounts.Path = " " }, wantErr: KeyAccountsPath},
		{name: "no wait and no schedule", mutate: func(c *Config) { c.Run.WaitInterval = 0 }, wantErr: KeyRunWait},
		{
			name:   "schedule replaces wait interval",
			mutate: func(c *Config) { c.Run.WaitInterval = 0; c.Run.Schedule = "@every 10m" },
		},
		{name: "bad schedule", mutate: func(c *Config) { c.Run.Schedule = "every now and then" }, wantErr: KeyRunSchedule},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: KeyLogLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
