package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilRoller        GameError = "dice roller cannot be nil"
	ErrNotEnoughPlayers GameError = "at least two players are required"
	ErrDuplicateName    GameError = "player names must be unique"
	ErrInvalidDiceCount GameError = "starting dice count must be greater than 0"
)
