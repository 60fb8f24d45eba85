package application

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/bnema/animix-bot/internal/domain"
	"github.com/bnema/animix-bot/internal/logging"
	"github.com/bnema/animix-bot/internal/ports"
	"github.com/google/uuid"
)

// AccountRunner is satisfied by *Runner.
type AccountRunner interface {
	RunAccount(ctx context.Context, session domain.Session) error
}

// Loop runs one pass over every account, strictly in sequence.
type Loop struct {
	tokens  ports.TokenSource
	proxies ports.ProxySource
	runner  AccountRunner
	logger  *logging.Logger
	metrics *logging.Metrics
	clock   ports.Clock
	// out receives the metrics table after each pass; nil logs a single line instead.
	out io.Writer
}

type LoopOptions struct {
	Tokens  ports.TokenSource
	Proxies ports.ProxySource
	Runner  AccountRunner
	Logger  *logging.Logger
	Metrics *logging.Metrics
	Clock   ports.Clock
	Out     io.Writer
}

func NewLoop(opts LoopOptions) *Loop {
	loop := &Loop{
		tokens:  opts.Tokens,
		proxies: opts.Proxies,
		runner:  opts.Runner,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		clock:   opts.Clock,
		out:     opts.Out,
	}
	if loop.logger == nil {
		loop.logger = logging.Discard()
	}
	if loop.clock == nil {
		loop.clock = ports.SystemClock{}
	}
	if loop.metrics == nil {
		loop.metrics = logging.NewMetrics(loop.clock.Now())
	}

	return loop
}

type PassResult struct {
	ID       string
	Accounts int
	Failed   int
}

// RunPass processes every account once. Failures, including panics, are
// logged as critical and counted; only cancellation is returned.
func (l *Loop) RunPass(ctx context.Context) (PassResult, error) {
	result := PassResult{ID: uuid.NewString()}
	defer func() {
		if ctx.Err() == nil {
			l.finishPass()
		}
	}()

	accounts, err := l.tokens.Accounts(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		l.critical(fmt.Errorf("load accounts: %w", err))
		return result, nil
	}
	if len(accounts) == 0 {
		l.logger.Warn("no accounts to run")
		return result, nil
	}
	l.logger.Info("starting pass", "pass", result.ID, "accounts", len(accounts))

	for _, account := range accounts {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Accounts++

		if err := l.runAccount(ctx, account); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.Failed++
			l.critical(fmt.Errorf("account #%d: %w", account.Index, err))
		}
	}

	l.logger.Info("pass finished", "pass", result.ID, "accounts", result.Accounts, "failed", result.Failed)
	return result, nil
}

func (l *Loop) runAccount(ctx context.Context, account domain.Account) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			l.logger.Debug("panic stack", "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()

	proxy := ""
	if l.proxies != nil {
		proxy, err = l.proxies.Pick(ctx)
		if err != nil {
			return fmt.Errorf("pick proxy: %w", err)
		}
	}

	l.logger.Info(fmt.Sprintf("=== Running for user #%d using proxy %s ===", account.Index, domain.ProxyHost(proxy)))
	return l.runner.RunAccount(ctx, account.Session(proxy))
}

func (l *Loop) critical(err error) {
	l.metrics.RequestsFailed.Inc()
	l.logger.Fatal("critical error", err)
}

func (l *Loop) finishPass() {
	l.metrics.Passes.Inc()
	l.ReportMetrics()
}

// ReportMetrics renders the current metrics snapshot.
func (l *Loop) ReportMetrics() {
	snapshot := l.metrics.Snapshot()
	now := l.clock.Now()
	if l.out == nil {
		l.logger.LogMetrics(snapshot, now)
		return
	}
	snapshot.Render(l.out, now)
}
