package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the defined states
func (s GameState) Valid() bool {
	return s == StateMenu || s == StatePlaying
}
