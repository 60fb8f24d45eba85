package application

import (
	"github.com/bnema/animix-bot/internal/domain"
)

type StatusMissions struct {
	Open      int
	Active    int
	Completed int
}

type Status struct {
	Account domain.Account
	User    domain.UserInfo
	Bonus   domain.GachaBonus
	// Units counts pet units, stacks expanded.
	Units    int
	Missions StatusMissions
	// Err is set when the account could not be queried.
	Err error
}

func missionCounts(missions []domain.Mission) StatusMissions {
	var counts StatusMissions
	for _, mission := range missions {
		switch {
		case mission.CanCompleted:
			counts.Completed++
		case mission.Active():
			counts.Active++
		default:
			counts.Open++
		}
	}

	return counts
}
