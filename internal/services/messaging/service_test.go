package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRoundStartMessage(t *testing.T) {
	svc, err := New(&Config{Seed: 1})
	require.NoError(t, err)

	output, err := svc.GetRoundStartMessage(context.Background(), &GetRoundStartMessageInput{
		RoundNumber:      2,
		ActivePlayerName: "Alice",
	})
	require.NoError(t, err)

	assert.Contains(t, output.Message, "2")
	assert.Contains(t, output.Message, "Alice")
	assert.Equal(t, ToneNeutral, output.Tone)
}

func TestGetBidPlacedMessage(t *testing.T) {
	svc, err := New(&Config{Seed: 1})
	require.NoError(t, err)

	output, err := svc.GetBidPlacedMessage(context.Background(), &GetBidPlacedMessageInput{
		PlayerName: "Bob",
		Quantity:   3,
		FaceValue:  4,
	})
	require.NoError(t, err)

	assert.Contains(t, output.Message, "Bob")
	assert.Contains(t, output.Message, "3")
	assert.Contains(t, output.Message, "4")
}

func TestGetChallengeResultMessage(t *testing.T) {
	svc, err := New(&Config{Seed: 1})
	require.NoError(t, err)

	output, err := svc.GetChallengeResultMessage(context.Background(), &GetChallengeResultMessageInput{
		ChallengerName: "Alice",
		LoserName:      "Bob",
	})
	require.NoError(t, err)
	assert.Contains(t, output.Message, "Bob")

	eliminated, err := svc.GetChallengeResultMessage(context.Background(), &GetChallengeResultMessageInput{
		ChallengerName: "Alice",
		LoserName:      "Bob",
		Eliminated:     true,
	})
	require.NoError(t, err)
	assert.Contains(t, eliminated.Message, "Bob")
}

func TestGetGameWonMessage(t *testing.T) {
	svc, err := New(&Config{Seed: 1})
	require.NoError(t, err)

	output, err := svc.GetGameWonMessage(context.Background(), &GetGameWonMessageInput{
		WinnerName: "Carol",
	})
	require.NoError(t, err)
	assert.Contains(t, output.Message, "Carol")
}

func TestSameSeedSameSelection(t *testing.T) {
	first, err := New(&Config{Seed: 42})
	require.NoError(t, err)
	second, err := New(&Config{Seed: 42})
	require.NoError(t, err)

	input := &GetGameWonMessageInput{WinnerName: "Carol"}
	a, err := first.GetGameWonMessage(context.Background(), input)
	require.NoError(t, err)
	b, err := second.GetGameWonMessage(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, a.Message, b.Message)
}
