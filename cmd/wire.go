package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bnema/animix-bot/internal/adapters/animix"
	statusadapter "github.com/bnema/animix-bot/internal/adapters/render/status"
	"github.com/bnema/animix-bot/internal/adapters/source/file"
	"github.com/bnema/animix-bot/internal/application"
	"github.com/bnema/animix-bot/internal/config"
	"github.com/bnema/animix-bot/internal/logging"
	"github.com/bnema/animix-bot/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	cfg            config.Config
	logger         *logging.Logger
	metrics        *logging.Metrics
	clock          ports.Clock
	tokens         file.TokenSource
	proxies        file.ProxySource
	loop           *application.Loop
	statusService  *application.StatusService
	statusRenderer func([]application.Status) (string, error)
	closers        []io.Closer
}

// appLoader builds the app for a command once its flags are parsed.
type appLoader func(cmd *cobra.Command) (*app, error)

func wireApp(configPath string, stdout io.Writer, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(viper.New(), configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	clock := ports.SystemClock{}
	logger := logging.NewLogger("animix", level).
		AddOutput(stderr, cfg.Log.Color && isTerminal(stderr))

	a := &app{
		cfg:            cfg,
		logger:         logger,
		metrics:        logging.NewMetrics(clock.Now()),
		clock:          clock,
		statusRenderer: statusadapter.Render,
	}

	if cfg.Log.File != "" {
		logFile, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logger.AddOutput(logFile, false)
		a.closers = append(a.closers, logFile)
	}

	client, err := animix.NewClient(animix.Options{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		MaxRetries: cfg.API.MaxRetries,
		Backoff:    cfg.API.Backoff,
		Clock:      clock,
		Logger:     logger.With("api"),
		Metrics:    a.metrics,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	a.tokens = file.TokenSource{Path: cfg.Accounts.Path}
	a.proxies = file.ProxySource{Path: cfg.Proxies.Path, Random: ports.SystemRandom{}}

	runner := application.NewRunner(client, logger.With("runner"), a.metrics, clock, ports.SystemRandom{}, application.RunnerOptions{
		ClanID:      cfg.Run.ClanID,
		Pacing:      cfg.Run.Pacing,
		QuestPacing: cfg.Run.QuestPacing,
	})
	a.loop = application.NewLoop(application.LoopOptions{
		Tokens:  a.tokens,
		Proxies: a.proxies,
		Runner:  runner,
		Logger:  logger.With("loop"),
		Metrics: a.metrics,
		Clock:   clock,
		Out:     stdout,
	})
	a.statusService = application.NewStatusService(client, a.tokens, a.proxies)

	return a, nil
}

func (a *app) Close() {
	for _, closer := range a.closers {
		_ = closer.Close()
	}
	a.closers = nil
}

func (a *app) now() time.Time {
	return a.clock.Now()
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
