package domain

type BonusReward int

const (
	BonusRewardGodPower BonusReward = 1
	BonusRewardDNA      BonusReward = 2
)

func (r BonusReward) String() string {
	switch r {
	case BonusRewardGodPower:
		return "god power"
	case BonusRewardDNA:
		return "DNA"
	default:
		return "unknown"
	}
}

type GachaBonus struct {
	CurrentStep     int
	GodPowerStep    int
	GodPowerClaimed bool
	DNAStep         int
	DNAClaimed      bool
}

// Claimable picks at most one reward, god power first. A zero threshold
// means the server did not report that reward.
func (b GachaBonus) Claimable() (BonusReward, bool) {
	if b.GodPowerStep > 0 && b.CurrentStep >= b.GodPowerStep && !b.GodPowerClaimed {
		return BonusRewardGodPower, true
	}
	if b.DNAStep > 0 && b.CurrentStep >= b.DNAStep && !b.DNAClaimed {
		return BonusRewardDNA, true
	}

	return 0, false
}
