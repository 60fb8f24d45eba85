package config

import (
	"fmt"
	"time"
)

const currentSchemaVersion = 1

// fileSchema is the on-disk shape; durations are kept as Go duration strings.
type fileSchema struct {
	Version  int            `toml:"version"`
	API      apiSchema      `toml:"api"`
	Accounts accountsSchema `toml:"accounts"`
	Proxies  proxiesSchema  `toml:"proxies"`
	Run      runSchema      `toml:"run"`
	Log      logSchema      `toml:"log"`
}

type apiSchema struct {
	BaseURL    string `toml:"base_url"`
	Timeout    string `toml:"timeout"`
	MaxRetries int    `toml:"max_retries"`
	Backoff    string `toml:"backoff"`
}

type accountsSchema struct {
	Path string `toml:"path"`
}

type proxiesSchema struct {
	Path string `toml:"path"`
}

type runSchema struct {
	WaitInterval string `toml:"wait_interval"`
	Schedule     string `toml:"schedule"`
	ClanID       int64  `toml:"clan_id"`
	Pacing       string `toml:"pacing"`
	QuestPacing  string `toml:"quest_pacing"`
}

type logSchema struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
	Color bool   `toml:"color"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		API: apiSchema{
			BaseURL:    cfg.API.BaseURL,
			Timeout:    formatDuration(cfg.API.Timeout),
			MaxRetries: cfg.API.MaxRetries,
			Backoff:    formatDuration(cfg.API.Backoff),
		},
		Accounts: accountsSchema{Path: cfg.Accounts.Path},
		Proxies:  proxiesSchema{Path: cfg.Proxies.Path},
		Run: runSchema{
			WaitInterval: formatDuration(cfg.Run.WaitInterval),
			Schedule:     cfg.Run.Schedule,
			ClanID:       cfg.Run.ClanID,
			Pacing:       formatDuration(cfg.Run.Pacing),
			QuestPacing:  formatDuration(cfg.Run.QuestPacing),
		},
		Log: logSchema{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
			Color: cfg.Log.Color,
		},
	}
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}

	return d.String()
}
