package game

import (
	"time"

	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/models"
)

// Config holds configuration for the game service
type Config struct {
	// PlayerNames lists the participants in seating order. Names must be
	// unique and at least two are required.
	PlayerNames []string

	// StartingDice is the number of dice each player begins with
	StartingDice int

	// DiceSides is the number of faces on every die (default 6)
	DiceSides int

	// Service dependencies
	Roller        dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartRoundInput contains parameters for starting a round
type StartRoundInput struct{}

// StartRoundOutput contains the result of starting a round
type StartRoundOutput struct {
	// RoundNumber is the number of the round that just started
	RoundNumber int

	// ActivePlayerName is the player who acts first this round
	ActivePlayerName string
}

// PlaceBidInput contains parameters for submitting a bid
type PlaceBidInput struct {
	// PlayerName identifies the bidding player, who must be active
	PlayerName string

	// Quantity is the number of dice claimed
	Quantity int

	// FaceValue is the face value claimed
	FaceValue int
}

// PlaceBidOutput contains the result of submitting a bid
type PlaceBidOutput struct {
	// Bid is the installed standing bid
	Bid *models.Bid

	// NextPlayerName is the player whose turn it now is
	NextPlayerName string
}

// ChallengeInput contains parameters for challenging the standing bid
type ChallengeInput struct {
	// PlayerName identifies the challenger, who must be active
	PlayerName string
}

// ChallengeOutput contains the result of a resolved challenge
type ChallengeOutput struct {
	// LoserName is the player who lost the challenge and forfeited a die
	LoserName string

	// LoserEliminated indicates the loser forfeited their last die
	LoserEliminated bool

	// GameOver indicates whether the challenge left a single survivor
	GameOver bool

	// WinnerName is the surviving player's name when GameOver is true
	WinnerName string

	// RoundNumber is the current round number after resolution; when the
	// game continues this is the freshly started round
	RoundNumber int
}

// CheckDiceInput contains parameters for a player checking their own dice
type CheckDiceInput struct {
	// PlayerName identifies the player, who must be active
	PlayerName string
}

// CheckDiceOutput contains the values the player has rolled this round
type CheckDiceOutput struct {
	// Rolls holds the player's rolled face values in roll order
	Rolls []int
}

// GetActivePlayerInput contains parameters for querying the active player
type GetActivePlayerInput struct{}

// GetActivePlayerOutput identifies the player entitled to act
type GetActivePlayerOutput struct {
	// PlayerName is the active player's name
	PlayerName string

	// DiceCount is the number of dice left in the active player's hand
	DiceCount int
}

// GetGameInfoInput contains parameters for querying the game snapshot
type GetGameInfoInput struct{}

// GetGameInfoOutput is a read-only snapshot of the game
type GetGameInfoOutput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Status is the coarse game state
	Status models.GameStatus

	// RoundNumber is the current round number, 0 before the first round
	RoundNumber int

	// CurrentBid is the standing bid, or nil if none has been placed
	CurrentBid *models.Bid

	// TotalDiceCount is the bid quantity ceiling, fixed at game start
	TotalDiceCount int

	// WinnerName is set once the game is over
	WinnerName string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game state last changed
	UpdatedAt time.Time
}
