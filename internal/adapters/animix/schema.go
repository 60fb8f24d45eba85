package animix

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/animix-bot/internal/domain"
)

// flexInt accepts JSON numbers, numeric strings, and null.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*f = 0
		return nil
	}

	raw := string(trimmed)
	if trimmed[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("parse quoted number: %w", err)
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*f = 0
			return nil
		}
	}

	if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*f = flexInt(value)
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", raw, err)
	}
	*f = flexInt(int64(value))
	return nil
}

// flexID keeps a pet id exactly as the server sent it: strings as-is,
// numbers as their literal text. null decodes to the empty id.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*f = ""
		return nil
	}

	if trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return fmt.Errorf("parse pet id: %w", err)
		}
		*f = flexID(strings.TrimSpace(value))
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("parse pet id %s: %w", trimmed, err)
	}
	*f = flexID(number.String())
	return nil
}

// petIDParam sends an id back as a JSON number when it is one, else as a string.
type petIDParam domain.PetID

func (p petIDParam) MarshalJSON() ([]byte, error) {
	if isJSONNumber(string(p)) {
		return []byte(p), nil
	}

	return json.Marshal(string(p))
}

func isJSONNumber(raw string) bool {
	if raw == "" {
		return false
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}

	return json.Valid([]byte(raw))
}

type userInfoWire struct {
	TelegramUsername string  `json:"telegram_username"`
	Token            flexInt `json:"token"`
	GodPower         flexInt `json:"god_power"`
}

func (w userInfoWire) toDomain() domain.UserInfo {
	return domain.UserInfo{
		Username:     w.TelegramUsername,
		TokenBalance: int64(w.Token),
		GodPower:     int(w.GodPower),
	}
}

type petWire struct {
	PetID  flexID  `json:"pet_id"`
	Name   string  `json:"name"`
	Class  string  `json:"class"`
	Star   flexInt `json:"star"`
	Amount flexInt `json:"amount"`
}

func (w petWire) toDomain() domain.Pet {
	return domain.Pet{
		ID:     domain.PetID(w.PetID),
		Name:   w.Name,
		Class:  domain.PetClass(w.Class),
		Star:   domain.Star(w.Star),
		Amount: int(w.Amount),
	}
}

type dnaWire struct {
	ItemID flexID  `json:"item_id"`
	Name   string  `json:"name"`
	Class  string  `json:"class"`
	Star   flexInt `json:"star"`
	Amount flexInt `json:"amount"`
	CanMom bool    `json:"can_mom"`
}

func (w dnaWire) toDomain() domain.DNAPet {
	return domain.DNAPet{
		ID:     domain.PetID(w.ItemID),
		Name:   w.Name,
		Class:  domain.PetClass(w.Class),
		Star:   domain.Star(w.Star),
		Amount: int(w.Amount),
		CanMom: w.CanMom,
	}
}

type hatchWire struct {
	DNA      []petWire `json:"dna"`
	GodPower flexInt   `json:"god_power"`
}

func (w hatchWire) toDomain() domain.HatchResult {
	result := domain.HatchResult{GodPower: int(w.GodPower)}
	if len(w.DNA) > 0 {
		result.Pet = w.DNA[0].toDomain()
	}

	return result
}

type mixRequestWire struct {
	DadID petIDParam `json:"dad_id"`
	MomID petIDParam `json:"mom_id"`
}

type mixWire struct {
	Pet petWire `json:"pet"`
}

type petJoinedWire struct {
	PetID flexID `json:"pet_id"`
}

type missionWire struct {
	MissionID    flexInt         `json:"mission_id"`
	Pet1Class    *string         `json:"pet_1_class"`
	Pet1Star     flexInt         `json:"pet_1_star"`
	Pet2Class    *string         `json:"pet_2_class"`
	Pet2Star     flexInt         `json:"pet_2_star"`
	Pet3Class    *string         `json:"pet_3_class"`
	Pet3Star     flexInt         `json:"pet_3_star"`
	PetJoined    []petJoinedWire `json:"pet_joined"`
	CanCompleted bool            `json:"can_completed"`
}

func (w missionWire) toDomain() domain.Mission {
	mission := domain.Mission{
		ID: domain.MissionID(w.MissionID),
		Slots: [3]domain.MissionSlot{
			slotFromWire(w.Pet1Class, w.Pet1Star),
			slotFromWire(w.Pet2Class, w.Pet2Star),
			slotFromWire(w.Pet3Class, w.Pet3Star),
		},
		CanCompleted: w.CanCompleted,
	}
	for _, joined := range w.PetJoined {
		mission.PetJoined = append(mission.PetJoined, domain.PetID(joined.PetID))
	}

	return mission
}

func slotFromWire(class *string, star flexInt) domain.MissionSlot {
	if class == nil || strings.TrimSpace(*class) == "" {
		return domain.MissionSlot{}
	}

	return domain.MissionSlot{Class: domain.PetClass(*class), MinStar: domain.Star(star)}
}

type enterMissionWire struct {
	MissionID int64       `json:"mission_id"`
	Pet1ID    *petIDParam `json:"pet_1_id"`
	Pet2ID    *petIDParam `json:"pet_2_id"`
	Pet3ID    *petIDParam `json:"pet_3_id"`
}

func enterMissionFromDomain(assignment domain.MissionAssignment) enterMissionWire {
	slot := func(id domain.PetID) *petIDParam {
		if id == "" {
			return nil
		}
		value := petIDParam(id)
		return &value
	}

	return enterMissionWire{
		MissionID: int64(assignment.MissionID),
		Pet1ID:    slot(assignment.Pets[0]),
		Pet2ID:    slot(assignment.Pets[1]),
		Pet3ID:    slot(assignment.Pets[2]),
	}
}

type questListWire struct {
	Quests []questWire `json:"quests"`
}

type questWire struct {
	QuestCode string `json:"quest_code"`
	Status    bool   `json:"status"`
}

type achievementGroupWire struct {
	Achievements []achievementWire `json:"achievements"`
}

type achievementWire struct {
	QuestID flexInt `json:"quest_id"`
	Status  bool    `json:"status"`
	Claimed bool    `json:"claimed"`
}

// achievementGroupsWire keeps the achievement groups in the order the server
// listed them; the group keys carry no meaning.
type achievementGroupsWire []achievementGroupWire

func (g *achievementGroupsWire) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read achievement groups: %w", err)
	}
	if tok == nil {
		*g = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("achievement groups: expected object, got %v", tok)
	}

	var groups achievementGroupsWire
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return fmt.Errorf("read achievement group key: %w", err)
		}

		var group achievementGroupWire
		if err := dec.Decode(&group); err != nil {
			return fmt.Errorf("decode achievement group: %w", err)
		}
		groups = append(groups, group)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read achievement groups end: %w", err)
	}

	*g = groups
	return nil
}

func achievementsFromWire(groups achievementGroupsWire) []domain.Achievement {
	var achievements []domain.Achievement
	for _, group := range groups {
		for _, item := range group.Achievements {
			achievements = append(achievements, domain.Achievement{
				QuestID:   int64(item.QuestID),
				Completed: item.Status,
				Claimed:   item.Claimed,
			})
		}
	}

	return achievements
}

type seasonPassWire struct {
	SeasonID    flexInt            `json:"season_id"`
	Title       string             `json:"title"`
	CurrentStep flexInt            `json:"current_step"`
	FreeRewards []seasonRewardWire `json:"free_rewards"`
}

type seasonRewardWire struct {
	Step      flexInt `json:"step"`
	Name      string  `json:"name"`
	Amount    flexInt `json:"amount"`
	IsClaimed bool    `json:"is_claimed"`
}

func (w seasonPassWire) toDomain() domain.SeasonPass {
	pass := domain.SeasonPass{
		ID:          int64(w.SeasonID),
		Title:       w.Title,
		CurrentStep: int(w.CurrentStep),
	}
	for _, reward := range w.FreeRewards {
		pass.FreeRewards = append(pass.FreeRewards, domain.SeasonReward{
			Step:    int(reward.Step),
			Name:    reward.Name,
			Amount:  int(reward.Amount),
			Claimed: reward.IsClaimed,
		})
	}

	return pass
}

type seasonClaimWire struct {
	SeasonID int64  `json:"season_id"`
	Type     string `json:"type"`
	Step     int    `json:"step"`
}

type gachaBonusWire struct {
	CurrentStep       flexInt `json:"current_step"`
	IsClaimedGodPower bool    `json:"is_claimed_god_power"`
	IsClaimedDNA      bool    `json:"is_claimed_dna"`
	StepBonusGodPower flexInt `json:"step_bonus_god_power"`
	StepBonusDNA      flexInt `json:"step_bonus_dna"`
}

func (w gachaBonusWire) toDomain() domain.GachaBonus {
	return domain.GachaBonus{
		CurrentStep:     int(w.CurrentStep),
		GodPowerStep:    int(w.StepBonusGodPower),
		GodPowerClaimed: w.IsClaimedGodPower,
		DNAStep:         int(w.StepBonusDNA),
		DNAClaimed:      w.IsClaimedDNA,
	}
}

var (
	_ json.Unmarshaler = (*flexInt)(nil)
	_ json.Unmarshaler = (*flexID)(nil)
	_ json.Unmarshaler = (*achievementGroupsWire)(nil)
	_ json.Marshaler   = petIDParam("")
)
