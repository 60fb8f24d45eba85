package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/animix-bot/internal/logging"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "ANIMIX"

	DefaultFileName = "config.toml"
)

const (
	KeyAPIBaseURL     = "api.base_url"
	KeyAPITimeout     = "api.timeout"
	KeyAPIMaxRetries  = "api.max_retries"
	KeyAPIBackoff     = "api.backoff"
	KeyAccountsPath   = "accounts.path"
	KeyProxiesPath    = "proxies.path"
	KeyRunWait        = "run.wait_interval"
	KeyRunSchedule    = "run.schedule"
	KeyRunClanID      = "run.clan_id"
	KeyRunPacing      = "run.pacing"
	KeyRunQuestPacing = "run.quest_pacing"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
	KeyLogColor       = "log.color"
)

type Config struct {
	API      APIConfig
	Accounts AccountsConfig
	Proxies  ProxiesConfig
	Run      RunConfig
	Log      LogConfig

	// Source is the config file that was read, empty when running on defaults.
	Source string
}

type APIConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

type AccountsConfig struct {
	Path string
}

type ProxiesConfig struct {
	Path string
}

type RunConfig struct {
	WaitInterval time.Duration
	// Schedule is a cron spec; when set it replaces WaitInterval.
	Schedule    string
	ClanID      int64
	Pacing      time.Duration
	QuestPacing time.Duration
}

type LogConfig struct {
	Level string
	File  string
	Color bool
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:    "https://pro-api.animix.tech",
			Timeout:    20 * time.Second,
			MaxRetries: 3,
			Backoff:    time.Second,
		},
		Accounts: AccountsConfig{Path: "users.txt"},
		Proxies:  ProxiesConfig{Path: "proxy.txt"},
		Run: RunConfig{
			WaitInterval: 30 * time.Minute,
			ClanID:       219,
			Pacing:       time.Second,
			QuestPacing:  2 * time.Second,
		},
		Log: LogConfig{Level: "info", Color: true},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyAPIBaseURL, d.API.BaseURL)
	v.SetDefault(KeyAPITimeout, d.API.Timeout)
	v.SetDefault(KeyAPIMaxRetries, d.API.MaxRetries)
	v.SetDefault(KeyAPIBackoff, d.API.Backoff)
	v.SetDefault(KeyAccountsPath, d.Accounts.Path)
	v.SetDefault(KeyProxiesPath, d.Proxies.Path)
	v.SetDefault(KeyRunWait, d.Run.WaitInterval)
	v.SetDefault(KeyRunSchedule, d.Run.Schedule)
	v.SetDefault(KeyRunClanID, d.Run.ClanID)
	v.SetDefault(KeyRunPacing, d.Run.Pacing)
	v.SetDefault(KeyRunQuestPacing, d.Run.QuestPacing)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFile, d.Log.File)
	v.SetDefault(KeyLogColor, d.Log.Color)
}

// Load reads configuration from explicitPath, or from config.toml in the
// working directory or $HOME/.config/animix. A missing config file is only an
// error when the path was given explicitly. ANIMIX_* variables override file values.
func Load(v *viper.Viper, explicitPath string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "animix"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		API: APIConfig{
			BaseURL:    strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
			Timeout:    v.GetDuration(KeyAPITimeout),
			MaxRetries: v.GetInt(KeyAPIMaxRetries),
			Backoff:    v.GetDuration(KeyAPIBackoff),
		},
		Accounts: AccountsConfig{Path: v.GetString(KeyAccountsPath)},
		Proxies:  ProxiesConfig{Path: v.GetString(KeyProxiesPath)},
		Run: RunConfig{
			WaitInterval: v.GetDuration(KeyRunWait),
			Schedule:     strings.TrimSpace(v.GetString(KeyRunSchedule)),
			ClanID:       v.GetInt64(KeyRunClanID),
			Pacing:       v.GetDuration(KeyRunPacing),
			QuestPacing:  v.GetDuration(KeyRunQuestPacing),
		},
		Log: LogConfig{
			Level: v.GetString(KeyLogLevel),
			File:  v.GetString(KeyLogFile),
			Color: v.GetBool(KeyLogColor),
		},
		Source: v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validateBaseURL(c.API.BaseURL); err != nil {
		return err
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyAPITimeout)
	}
	if c.API.MaxRetries < 0 {
		return fmt.Errorf("%s must not be negative", KeyAPIMaxRetries)
	}
	if c.API.Backoff < 0 {
		return fmt.Errorf("%s must not be negative", KeyAPIBackoff)
	}
	if strings.TrimSpace(c.Accounts.Path) == "" {
		return fmt.Errorf("%s is required", KeyAccountsPath)
	}
	if c.Run.Schedule == "" && c.Run.WaitInterval <= 0 {
		return fmt.Errorf("%s must be positive", KeyRunWait)
	}
	if c.Run.Schedule != "" {
		if _, err := cron.ParseStandard(c.Run.Schedule); err != nil {
			return fmt.Errorf("%s: %w", KeyRunSchedule, err)
		}
	}
	if c.Run.Pacing < 0 || c.Run.QuestPacing < 0 {
		return errors.New("run pacing must not be negative")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	return nil
}

func validateBaseURL(baseURL string) error {
	if baseURL == "" {
		return errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("api base url host is required")
	}

	return nil
}
