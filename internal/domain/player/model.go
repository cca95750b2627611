package player

// Player is an athlete selectable in the chart front end.
type Player struct {
	ID       int64
	FullName string
}
