package domain

type UserInfo struct {
	Username     string
	TokenBalance int64
	GodPower     int
}

// HatchResult is what the server reports after a gacha draw.
type HatchResult struct {
	Pet      Pet
	GodPower int
}
