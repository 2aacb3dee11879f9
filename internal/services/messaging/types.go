package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a plain, factual tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneDramatic plays up the tension of a reveal
	ToneDramatic MessageTone = "dramatic"
)

// Config holds configuration for the messaging service
type Config struct {
	// Optional seed for deterministic message selection in tests
	Seed int64
}

// GetRoundStartMessageInput contains parameters for a round start announcement
type GetRoundStartMessageInput struct {
	// RoundNumber is the round that just started
	RoundNumber int

	// ActivePlayerName is the player who acts first
	ActivePlayerName string
}

// GetRoundStartMessageOutput contains the selected announcement
type GetRoundStartMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetBidPlacedMessageInput contains parameters for a bid announcement
type GetBidPlacedMessageInput struct {
	// PlayerName is the bidding player
	PlayerName string

	// Quantity and FaceValue describe the accepted bid
	Quantity  int
	FaceValue int
}

// GetBidPlacedMessageOutput contains the selected announcement
type GetBidPlacedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetChallengeResultMessageInput contains parameters for a challenge announcement
type GetChallengeResultMessageInput struct {
	// ChallengerName is the player who forced the reveal
	ChallengerName string

	// LoserName is the player who lost the challenge and a die
	LoserName string

	// Eliminated indicates the loser is out of the game
	Eliminated bool
}

// GetChallengeResultMessageOutput contains the selected announcement
type GetChallengeResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameWonMessageInput contains parameters for the end-of-game announcement
type GetGameWonMessageInput struct {
	// WinnerName is the last player holding dice
	WinnerName string
}

// GetGameWonMessageOutput contains the selected announcement
type GetGameWonMessageOutput struct {
	Message string
	Tone    MessageTone
}
