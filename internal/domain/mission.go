package domain

type MissionID int64

// MissionSlot is one of the three pet slots of a mission. An empty Class
// means the slot declares no requirement.
type MissionSlot struct {
	Class   PetClass
	MinStar Star
}

func (s MissionSlot) Required() bool {
	return s.Class != ""
}

type Mission struct {
	ID           MissionID
	Slots        [3]MissionSlot
	PetJoined    []PetID
	CanCompleted bool
}

// Active reports whether pets are already committed to the mission.
func (m Mission) Active() bool {
	return len(m.PetJoined) > 0
}

// MissionAssignment is a proposed join. An empty PetID leaves the slot unfilled.
type MissionAssignment struct {
	MissionID MissionID
	Pets      [3]PetID
}

func (a MissionAssignment) PetIDs() []PetID {
	return nonEmpty(a.Pets[:])
}

// UsedPetIDs lists every unit already committed to an active mission.
func UsedPetIDs(missions []Mission) []PetID {
	var used []PetID
	for _, mission := range missions {
		used = append(used, mission.PetJoined...)
	}

	return used
}

func CompletedMissionIDs(missions []Mission) []MissionID {
	var ids []MissionID
	for _, mission := range missions {
		if mission.CanCompleted {
			ids = append(ids, mission.ID)
		}
	}

	return ids
}

// MatchMission scans missions from the last one backwards and returns the
// first open mission whose required slots can all be filled from available.
// Each slot takes the first candidate from pool that is still available and
// not already placed in an earlier slot of the same mission.
func MatchMission(missions []Mission, available []PetID, pool PetPool) (MissionAssignment, bool) {
	if len(available) == 0 {
		return MissionAssignment{}, false
	}

	units := make(map[PetID]int, len(available))
	for _, id := range available {
		units[id]++
	}

	for i := len(missions) - 1; i >= 0; i-- {
		mission := missions[i]
		if mission.Active() {
			continue
		}

		if assignment, ok := fillMission(mission, units, pool); ok {
			return assignment, true
		}
	}

	return MissionAssignment{}, false
}

func fillMission(mission Mission, units map[PetID]int, pool PetPool) (MissionAssignment, bool) {
	assignment := MissionAssignment{MissionID: mission.ID}
	assigned := make(map[PetID]struct{}, len(mission.Slots))
	required := 0

	for i, slot := range mission.Slots {
		if !slot.Required() {
			continue
		}
		required++

		pet, ok := firstCandidate(pool.Candidates(slot.Class, slot.MinStar), units, assigned)
		if !ok {
			return MissionAssignment{}, false
		}
		assignment.Pets[i] = pet
		assigned[pet] = struct{}{}
	}

	if required == 0 {
		return MissionAssignment{}, false
	}

	return assignment, true
}

func firstCandidate(candidates []PetID, units map[PetID]int, assigned map[PetID]struct{}) (PetID, bool) {
	for _, id := range candidates {
		if units[id] <= 0 {
			continue
		}
		if _, taken := assigned[id]; taken {
			continue
		}
		return id, true
	}

	return "", false
}
