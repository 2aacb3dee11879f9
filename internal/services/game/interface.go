package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/liarsdice/internal/services/game Service

// Service defines the interface for liar's dice game operations. One Service
// instance owns one game from creation to a single winner.
type Service interface {
	// StartRound begins the next round: every surviving player rerolls their
	// hand and the player under the rotation pointer becomes active
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// PlaceBid submits a bid on behalf of the active player
	PlaceBid(ctx context.Context, input *PlaceBidInput) (*PlaceBidOutput, error)

	// Challenge resolves the standing bid against the revealed dice and ends
	// the round, penalizing the loser
	Challenge(ctx context.Context, input *ChallengeInput) (*ChallengeOutput, error)

	// CheckDice returns the active player's own rolled values without side
	// effects
	CheckDice(ctx context.Context, input *CheckDiceInput) (*CheckDiceOutput, error)

	// GetActivePlayer returns the player whose turn it is
	GetActivePlayer(ctx context.Context, input *GetActivePlayerInput) (*GetActivePlayerOutput, error)

	// GetGameInfo returns a snapshot of the game: round number, standing bid,
	// status, and the winner once the game is over
	GetGameInfo(ctx context.Context, input *GetGameInfoInput) (*GetGameInfoOutput, error)
}
