package ports

import (
	"context"

	"github.com/bnema/animix-bot/internal/domain"
)

// GameAPI is the remote game backend, one method per endpoint.
type GameAPI interface {
	UserInfo(ctx context.Context, session domain.Session) (domain.UserInfo, error)

	GachaBonus(ctx context.Context, session domain.Session) (domain.GachaBonus, error)
	ClaimGachaBonus(ctx context.Context, session domain.Session, reward domain.BonusReward) error
	HatchPet(ctx context.Context, session domain.Session) (domain.HatchResult, error)

	PetList(ctx context.Context, session domain.Session) ([]domain.Pet, error)
	PetDNAList(ctx context.Context, session domain.Session) ([]domain.DNAPet, error)
	MixPets(ctx context.Context, session domain.Session, pair domain.BreedingPair) (domain.Pet, error)

	MissionList(ctx context.Context, session domain.Session) ([]domain.Mission, error)
	ClaimMission(ctx context.Context, session domain.Session, id domain.MissionID) error
	EnterMission(ctx context.Context, session domain.Session, assignment domain.MissionAssignment) error

	QuestList(ctx context.Context, session domain.Session) ([]domain.Quest, error)
	JoinClan(ctx context.Context, session domain.Session, clanID int64) error
	CheckQuest(ctx context.Context, session domain.Session, code string) error

	AchievementList(ctx context.Context, session domain.Session) ([]domain.Achievement, error)
	ClaimAchievement(ctx context.Context, session domain.Session, questID int64) error

	SeasonPasses(ctx context.Context, session domain.Session) ([]domain.SeasonPass, error)
	ClaimSeasonPass(ctx context.Context, session domain.Session, seasonID int64, tier domain.RewardTier, step int) error
}
