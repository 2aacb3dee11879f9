package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRoundStartMessage returns an announcement for the start of a round
	GetRoundStartMessage(ctx context.Context, input *GetRoundStartMessageInput) (*GetRoundStartMessageOutput, error)

	// GetBidPlacedMessage returns an announcement for an accepted bid
	GetBidPlacedMessage(ctx context.Context, input *GetBidPlacedMessageInput) (*GetBidPlacedMessageOutput, error)

	// GetChallengeResultMessage returns an announcement for a resolved challenge
	GetChallengeResultMessage(ctx context.Context, input *GetChallengeResultMessageInput) (*GetChallengeResultMessageOutput, error)

	// GetGameWonMessage returns an announcement for the end of the game
	GetGameWonMessage(ctx context.Context, input *GetGameWonMessageInput) (*GetGameWonMessageOutput, error)
}
