package ports

import (
	"context"

	"github.com/bnema/animix-bot/internal/domain"
)

type TokenSource interface {
	Accounts(ctx context.Context) ([]domain.Account, error)
}

type ProxySource interface {
	// Pick returns a proxy address, or "" when none are configured.
	Pick(ctx context.Context) (string, error)
}
