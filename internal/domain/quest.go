package domain

type Quest struct {
	Code string
	Done bool
}

func PendingQuestCodes(quests []Quest) []string {
	var codes []string
	for _, quest := range quests {
		if quest.Done || quest.Code == "" {
			continue
		}
		codes = append(codes, quest.Code)
	}

	return codes
}

type Achievement struct {
	QuestID   int64
	Completed bool
	Claimed   bool
}

func ClaimableAchievements(achievements []Achievement) []int64 {
	var ids []int64
	for _, achievement := range achievements {
		if achievement.Completed && !achievement.Claimed {
			ids = append(ids, achievement.QuestID)
		}
	}

	return ids
}
