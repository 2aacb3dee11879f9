package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetRoundStartMessage returns an announcement for the start of a round
func (s *service) GetRoundStartMessage(ctx context.Context, input *GetRoundStartMessageInput) (*GetRoundStartMessageOutput, error) {
	messages := []string{
		fmt.Sprintf("Round %d! Cups down, %s opens the bidding.", input.RoundNumber, input.ActivePlayerName),
		fmt.Sprintf("The dice rattle for round %d. %s goes first.", input.RoundNumber, input.ActivePlayerName),
		fmt.Sprintf("Round %d begins. All eyes on %s.", input.RoundNumber, input.ActivePlayerName),
	}

	return &GetRoundStartMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
		Tone:    ToneNeutral,
	}, nil
}

// GetBidPlacedMessage returns an announcement for an accepted bid
func (s *service) GetBidPlacedMessage(ctx context.Context, input *GetBidPlacedMessageInput) (*GetBidPlacedMessageOutput, error) {
	messages := []string{
		fmt.Sprintf("%s claims at least %d dice showing %d. Bold.", input.PlayerName, input.Quantity, input.FaceValue),
		fmt.Sprintf("%s raises the stakes: %d dice showing %d.", input.PlayerName, input.Quantity, input.FaceValue),
		fmt.Sprintf("A confident %s bids %d of face %d. Truth or bluff?", input.PlayerName, input.Quantity, input.FaceValue),
	}

	return &GetBidPlacedMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
		Tone:    ToneFunny,
	}, nil
}

// GetChallengeResultMessage returns an announcement for a resolved challenge
func (s *service) GetChallengeResultMessage(ctx context.Context, input *GetChallengeResultMessageInput) (*GetChallengeResultMessageOutput, error) {
	var messages []string

	if input.Eliminated {
		messages = []string{
			fmt.Sprintf("%s called it, and %s is out of dice. Out of the game!", input.ChallengerName, input.LoserName),
			fmt.Sprintf("The reveal is brutal: %s loses their last die and leaves the table.", input.LoserName),
			fmt.Sprintf("%s has rolled their final roll. Eliminated!", input.LoserName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s forces the reveal, and %s pays a die for it.", input.ChallengerName, input.LoserName),
			fmt.Sprintf("The dice don't lie: %s loses a die.", input.LoserName),
			fmt.Sprintf("One die slides away from %s. The game goes on.", input.LoserName),
		}
	}

	return &GetChallengeResultMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
		Tone:    ToneDramatic,
	}, nil
}

// GetGameWonMessage returns an announcement for the end of the game
func (s *service) GetGameWonMessage(ctx context.Context, input *GetGameWonMessageInput) (*GetGameWonMessageOutput, error) {
	messages := []string{
		fmt.Sprintf("Game over! %s is the last one holding dice.", input.WinnerName),
		fmt.Sprintf("All hail %s, champion of the table!", input.WinnerName),
		fmt.Sprintf("%s bluffed, called, and outlasted everyone. Winner!", input.WinnerName),
	}

	return &GetGameWonMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
		Tone:    ToneFunny,
	}, nil
}
