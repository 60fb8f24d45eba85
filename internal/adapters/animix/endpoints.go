package animix

import (
	"context"
	"errors"

	"github.com/bnema/animix-bot/internal/domain"
)

const (
	pathUserInfo         = "/public/user/info"
	pathGachaBonus       = "/public/pet/dna/gacha/bonus"
	pathGachaBonusClaim  = "/public/pet/dna/gacha/bonus/claim"
	pathGacha            = "/public/pet/dna/gacha"
	pathPetList          = "/public/pet/list"
	pathPetDNAList       = "/public/pet/dna/list"
	pathPetMix           = "/public/pet/mix"
	pathMissionList      = "/public/mission/list"
	pathMissionClaim     = "/public/mission/claim"
	pathMissionEnter     = "/public/mission/enter"
	pathQuestList        = "/public/quest/list"
	pathQuestCheck       = "/public/quest/check"
	pathClanJoin         = "/public/clan/join"
	pathAchievementList  = "/public/achievement/list"
	pathAchievementClaim = "/public/achievement/claim"
	pathSeasonPassList   = "/public/season-pass/list"
	pathSeasonPassClaim  = "/public/season-pass/claim"
)

func (c *Client) UserInfo(ctx context.Context, session domain.Session) (domain.UserInfo, error) {
	var payload userInfoWire
	if err := c.get(ctx, session, pathUserInfo, &payload); err != nil {
		return domain.UserInfo{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) GachaBonus(ctx context.Context, session domain.Session) (domain.GachaBonus, error) {
	var payload gachaBonusWire
	if err := c.get(ctx, session, pathGachaBonus, &payload); err != nil {
		return domain.GachaBonus{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) ClaimGachaBonus(ctx context.Context, session domain.Session, reward domain.BonusReward) error {
	if reward != domain.BonusRewardGodPower && reward != domain.BonusRewardDNA {
		return errors.New("unknown gacha bonus reward")
	}

	return c.post(ctx, session, pathGachaBonusClaim, map[string]int{"reward_no": int(reward)}, nil)
}

func (c *Client) HatchPet(ctx context.Context, session domain.Session) (domain.HatchResult, error) {
	var payload hatchWire
	if err := c.post(ctx, session, pathGacha, map[string]int{"amount": 1}, &payload); err != nil {
		return domain.HatchResult{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) PetList(ctx context.Context, session domain.Session) ([]domain.Pet, error) {
	var payload []petWire
	if err := c.get(ctx, session, pathPetList, &payload); err != nil {
		return nil, err
	}

	pets := make([]domain.Pet, 0, len(payload))
	for _, item := range payload {
		pets = append(pets, item.toDomain())
	}

	return pets, nil
}

func (c *Client) PetDNAList(ctx context.Context, session domain.Session) ([]domain.DNAPet, error) {
	var payload []dnaWire
	if err := c.get(ctx, session, pathPetDNAList, &payload); err != nil {
		return nil, err
	}

	pets := make([]domain.DNAPet, 0, len(payload))
	for _, item := range payload {
		pets = append(pets, item.toDomain())
	}

	return pets, nil
}

func (c *Client) MixPets(ctx context.Context, session domain.Session, pair domain.BreedingPair) (domain.Pet, error) {
	request := mixRequestWire{DadID: petIDParam(pair.Dad), MomID: petIDParam(pair.Mom)}

	var payload mixWire
	if err := c.post(ctx, session, pathPetMix, request, &payload); err != nil {
		return domain.Pet{}, err
	}

	return payload.Pet.toDomain(), nil
}

func (c *Client) MissionList(ctx context.Context, session domain.Session) ([]domain.Mission, error) {
	var payload []missionWire
	if err := c.get(ctx, session, pathMissionList, &payload); err != nil {
		return nil, err
	}

	missions := make([]domain.Mission, 0, len(payload))
	for _, item := range payload {
		missions = append(missions, item.toDomain())
	}

	return missions, nil
}

func (c *Client) ClaimMission(ctx context.Context, session domain.Session, id domain.MissionID) error {
	return c.post(ctx, session, pathMissionClaim, map[string]int64{"mission_id": int64(id)}, nil)
}

func (c *Client) EnterMission(ctx context.Context, session domain.Session, assignment domain.MissionAssignment) error {
	return c.post(ctx, session, pathMissionEnter, enterMissionFromDomain(assignment), nil)
}

func (c *Client) QuestList(ctx context.Context, session domain.Session) ([]domain.Quest, error) {
	var payload questListWire
	if err := c.get(ctx, session, pathQuestList, &payload); err != nil {
		return nil, err
	}

	quests := make([]domain.Quest, 0, len(payload.Quests))
	for _, item := range payload.Quests {
		quests = append(quests, domain.Quest{Code: item.QuestCode, Done: item.Status})
	}

	return quests, nil
}

func (c *Client) JoinClan(ctx context.Context, session domain.Session, clanID int64) error {
	return c.post(ctx, session, pathClanJoin, map[string]int64{"clan_id": clanID}, nil)
}

func (c *Client) CheckQuest(ctx context.Context, session domain.Session, code string) error {
	return c.post(ctx, session, pathQuestCheck, map[string]string{"quest_code": code}, nil)
}

func (c *Client) AchievementList(ctx context.Context, session domain.Session) ([]domain.Achievement, error) {
	var payload achievementGroupsWire
	if err := c.get(ctx, session, pathAchievementList, &payload); err != nil {
		return nil, err
	}

	return achievementsFromWire(payload), nil
}

func (c *Client) ClaimAchievement(ctx context.Context, session domain.Session, questID int64) error {
	return c.post(ctx, session, pathAchievementClaim, map[string]int64{"quest_id": questID}, nil)
}

func (c *Client) SeasonPasses(ctx context.Context, session domain.Session) ([]domain.SeasonPass, error) {
	var payload []seasonPassWire
	if err := c.get(ctx, session, pathSeasonPassList, &payload); err != nil {
		return nil, err
	}

	passes := make([]domain.SeasonPass, 0, len(payload))
	for _, item := range payload {
		passes = append(passes, item.toDomain())
	}

	return passes, nil
}

func (c *Client) ClaimSeasonPass(ctx context.Context, session domain.Session, seasonID int64, tier domain.RewardTier, step int) error {
	request := seasonClaimWire{SeasonID: seasonID, Type: string(tier), Step: step}
	return c.post(ctx, session, pathSeasonPassClaim, request, nil)
}
