package team

// Team is a club a player can face, keyed by its numeric source id.
type Team struct {
	ID   int64
	Name string
}
