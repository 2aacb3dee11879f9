package models

// PlayerState represents the current state of a player in a game
type PlayerState string

const (
	// PlayerStateWaiting indicates a player is waiting for their turn
	PlayerStateWaiting PlayerState = "waiting"

	// PlayerStateActive indicates a player is currently taking their turn
	PlayerStateActive PlayerState = "active"

	// PlayerStateLost indicates a player has lost all their dice and is out of
	// the game. The state is terminal.
	PlayerStateLost PlayerState = "lost"

	// PlayerStateWon indicates a player has won the game. The state is terminal.
	PlayerStateWon PlayerState = "won"
)

// Terminal reports whether the state permits no further transitions
func (s PlayerState) Terminal() bool {
	return s == PlayerStateLost || s == PlayerStateWon
}

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusRunning indicates a game is in progress
	GameStatusRunning GameStatus = "running"

	// GameStatusOver indicates a game has ended
	GameStatusOver GameStatus = "over"
)
