package application

import (
	"context"
	"fmt"

	"github.com/bnema/animix-bot/internal/domain"
	"github.com/bnema/animix-bot/internal/ports"
)

// StatusService reads account state without changing anything.
type StatusService struct {
	api     ports.GameAPI
	tokens  ports.TokenSource
	proxies ports.ProxySource
}

func NewStatusService(api ports.GameAPI, tokens ports.TokenSource, proxies ports.ProxySource) *StatusService {
	return &StatusService{api: api, tokens: tokens, proxies: proxies}
}

func (s *StatusService) GetStatus(ctx context.Context, index int) (Status, error) {
	accounts, err := s.tokens.Accounts(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("load accounts: %w", err)
	}

	for _, account := range accounts {
		if account.Index == index {
			status := s.fetch(ctx, account)
			return status, status.Err
		}
	}

	return Status{}, fmt.Errorf("account #%d: %w", index, domain.ErrAccountNotFound)
}

// GetStatusAll queries every account; per-account failures land in Status.Err.
func (s *StatusService) GetStatusAll(ctx context.Context) ([]Status, error) {
	accounts, err := s.tokens.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, domain.ErrNoAccounts
	}

	statuses := make([]Status, 0, len(accounts))
	for _, account := range accounts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		statuses = append(statuses, s.fetch(ctx, account))
	}

	return statuses, nil
}

func (s *StatusService) fetch(ctx context.Context, account domain.Account) Status {
	status := Status{Account: account}

	proxy := ""
	if s.proxies != nil {
		picked, err := s.proxies.Pick(ctx)
		if err != nil {
			status.Err = fmt.Errorf("pick proxy: %w", err)
			return status
		}
		proxy = picked
	}
	session := account.Session(proxy)

	user, err := s.api.UserInfo(ctx, session)
	if err != nil {
		status.Err = fmt.Errorf("fetch user info: %w", err)
		return status
	}
	status.User = user

	bonus, err := s.api.GachaBonus(ctx, session)
	if err != nil {
		status.Err = fmt.Errorf("fetch gacha bonus: %w", err)
		return status
	}
	status.Bonus = bonus

	pets, err := s.api.PetList(ctx, session)
	if err != nil {
		status.Err = fmt.Errorf("fetch pets: %w", err)
		return status
	}
	status.Units = len(domain.BuildPetPool(pets).All)

	missions, err := s.api.MissionList(ctx, session)
	if err != nil {
		status.Err = fmt.Errorf("fetch missions: %w", err)
		return status
	}
	status.Missions = missionCounts(missions)

	return status
}
