package domain

type RewardTier string

const RewardTierFree RewardTier = "free"

type SeasonReward struct {
	Step    int
	Name    string
	Amount  int
	Claimed bool
}

type SeasonPass struct {
	ID          int64
	Title       string
	CurrentStep int
	FreeRewards []SeasonReward
}

func (p SeasonPass) ClaimableRewards() []SeasonReward {
	var rewards []SeasonReward
	for _, reward := range p.FreeRewards {
		if reward.Step > p.CurrentStep || reward.Claimed {
			continue
		}
		rewards = append(rewards, reward)
	}

	return rewards
}
