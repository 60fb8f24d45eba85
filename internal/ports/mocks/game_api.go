package mocks

import (
	"context"

	"github.com/bnema/animix-bot/internal/domain"
	"github.com/bnema/animix-bot/internal/ports"
	"github.com/stretchr/testify/mock"
)

type MockGameAPI struct {
	mock.Mock
}

var _ ports.GameAPI = (*MockGameAPI)(nil)

// NewMockGameAPI registers AssertExpectations as a test cleanup.
func NewMockGameAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGameAPI {
	m := &MockGameAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGameAPI) UserInfo(ctx context.Context, session domain.Session) (domain.UserInfo, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(domain.UserInfo), args.Error(1)
}

func (m *MockGameAPI) GachaBonus(ctx context.Context, session domain.Session) (domain.GachaBonus, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(domain.GachaBonus), args.Error(1)
}

func (m *MockGameAPI) ClaimGachaBonus(ctx context.Context, session domain.Session, reward domain.BonusReward) error {
	return m.Called(ctx, session, reward).Error(0)
}

func (m *MockGameAPI) HatchPet(ctx context.Context, session domain.Session) (domain.HatchResult, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(domain.HatchResult), args.Error(1)
}

func (m *MockGameAPI) PetList(ctx context.Context, session domain.Session) ([]domain.Pet, error) {
	args := m.Called(ctx, session)
	pets, _ := args.Get(0).([]domain.Pet)
	return pets, args.Error(1)
}

func (m *MockGameAPI) PetDNAList(ctx context.Context, session domain.Session) ([]domain.DNAPet, error) {
	args := m.Called(ctx, session)
	pets, _ := args.Get(0).([]domain.DNAPet)
	return pets, args.Error(1)
}

func (m *MockGameAPI) MixPets(ctx context.Context, session domain.Session, pair domain.BreedingPair) (domain.Pet, error) {
	args := m.Called(ctx, session, pair)
	return args.Get(0).(domain.Pet), args.Error(1)
}

func (m *MockGameAPI) MissionList(ctx context.Context, session domain.Session) ([]domain.Mission, error) {
	args := m.Called(ctx, session)
	missions, _ := args.Get(0).([]domain.Mission)
	return missions, args.Error(1)
}

func (m *MockGameAPI) ClaimMission(ctx context.Context, session domain.Session, id domain.MissionID) error {
	return m.Called(ctx, session, id).Error(0)
}

func (m *MockGameAPI) EnterMission(ctx context.Context, session domain.Session, assignment domain.MissionAssignment) error {
	return m.Called(ctx, session, assignment).Error(0)
}

func (m *MockGameAPI) QuestList(ctx context.Context, session domain.Session) ([]domain.Quest, error) {
	args := m.Called(ctx, session)
	quests, _ := args.Get(0).([]domain.Quest)
	return quests, args.Error(1)
}

func (m *MockGameAPI) JoinClan(ctx context.Context, session domain.Session, clanID int64) error {
	return m.Called(ctx, session, clanID).Error(0)
}

func (m *MockGameAPI) CheckQuest(ctx context.Context, session domain.Session, code string) error {
	return m.Called(ctx, session, code).Error(0)
}

func (m *MockGameAPI) AchievementList(ctx context.Context, session domain.Session) ([]domain.Achievement, error) {
	args := m.Called(ctx, session)
	achievements, _ := args.Get(0).([]domain.Achievement)
	return achievements, args.Error(1)
}

func (m *MockGameAPI) ClaimAchievement(ctx context.Context, session domain.Session, questID int64) error {
	return m.Called(ctx, session, questID).Error(0)
}

func (m *MockGameAPI) SeasonPasses(ctx context.Context, session domain.Session) ([]domain.SeasonPass, error) {
	args := m.Called(ctx, session)
	passes, _ := args.Get(0).([]domain.SeasonPass)
	return passes, args.Error(1)
}

func (m *MockGameAPI) ClaimSeasonPass(ctx context.Context, session domain.Session, seasonID int64, tier domain.RewardTier, step int) error {
	return m.Called(ctx, session, seasonID, tier, step).Error(0)
}
