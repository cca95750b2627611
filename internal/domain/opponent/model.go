package opponent

// UnknownName is used when an opponent id has no team record.
const UnknownName = "Unknown"

// Opponent is a team a player has faced, derived from game logs.
type Opponent struct {
	ID   int64
	Name string
}
