package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/liarsdice/internal/dice"
	diceMocks "github.com/KirkDiggler/liarsdice/internal/dice/mocks"
	"github.com/KirkDiggler/liarsdice/internal/gameerr"
)

func TestNewPlayer(t *testing.T) {
	player, err := NewPlayer("Alice", 3, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	assert.Equal(t, "Alice", player.Name())
	assert.Equal(t, PlayerStateWaiting, player.State())
	assert.Equal(t, 3, player.DiceCount())
	assert.Equal(t, 6, player.FaceCount())
	assert.Empty(t, player.LastRoll())
}

func TestNewPlayer_Validation(t *testing.T) {
	roller := dice.New(&dice.Config{Seed: 1})

	tests := []struct {
		name      string
		player    string
		diceCount int
		diceFaces int
	}{
		{name: "empty name", player: "", diceCount: 3, diceFaces: 6},
		{name: "zero dice", player: "Alice", diceCount: 0, diceFaces: 6},
		{name: "one-faced dice", player: "Alice", diceCount: 3, diceFaces: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, err := NewPlayer(tt.player, tt.diceCount, tt.diceFaces, roller)
			assert.Nil(t, player)
			assert.ErrorIs(t, err, gameerr.ErrInvalidArgument)
		})
	}
}

func TestPlayer_RollHandAppends(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRoller := diceMocks.NewMockRoller(ctrl)

	gomock.InOrder(
		mockRoller.EXPECT().Roll(6).Return(4),
		mockRoller.EXPECT().Roll(6).Return(2),
		mockRoller.EXPECT().Roll(6).Return(5),
	)

	player, err := NewPlayer("Alice", 3, 6, mockRoller)
	require.NoError(t, err)

	first, err := player.RollHand(2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, first)

	// A second roll within the same round accumulates onto the record.
	second, err := player.RollHand(1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 5}, second)
	assert.Equal(t, []int{4, 2, 5}, player.LastRoll())
}

func TestPlayer_RollHand_InvalidCount(t *testing.T) {
	player, err := NewPlayer("Alice", 3, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	for _, count := range []int{0, -1, 4} {
		rolls, err := player.RollHand(count)
		assert.Nil(t, rolls, "count=%d", count)
		assert.ErrorIs(t, err, gameerr.ErrInvalidArgument, "count=%d", count)
	}
}

func TestPlayer_LoseDie(t *testing.T) {
	player, err := NewPlayer("Alice", 2, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	player.LoseDie()
	assert.Equal(t, 1, player.DiceCount())
	assert.Equal(t, PlayerStateWaiting, player.State())

	player.LoseDie()
	assert.Equal(t, 0, player.DiceCount())
	assert.Equal(t, PlayerStateLost, player.State())
}

func TestPlayer_LostIsTerminal(t *testing.T) {
	player, err := NewPlayer("Alice", 1, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	player.LoseDie()
	require.Equal(t, PlayerStateLost, player.State())

	for _, state := range []PlayerState{PlayerStateWaiting, PlayerStateActive, PlayerStateWon} {
		err := player.SetState(state)
		assert.ErrorIs(t, err, gameerr.ErrInvalidState, "state=%s", state)
		assert.Equal(t, PlayerStateLost, player.State())
	}
}

func TestPlayer_WonIsTerminal(t *testing.T) {
	player, err := NewPlayer("Alice", 1, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	require.NoError(t, player.SetState(PlayerStateWon))
	assert.ErrorIs(t, player.SetState(PlayerStateWaiting), gameerr.ErrInvalidState)
}

func TestPlayer_IsActive(t *testing.T) {
	player, err := NewPlayer("Alice", 3, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	assert.False(t, player.IsActive())
	require.NoError(t, player.SetState(PlayerStateActive))
	assert.True(t, player.IsActive())
}

func TestPlayer_ResetRoll(t *testing.T) {
	player, err := NewPlayer("Alice", 3, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	_, err = player.RollHand(3)
	require.NoError(t, err)
	require.NotEmpty(t, player.LastRoll())

	require.NoError(t, player.ResetRoll())
	assert.Empty(t, player.LastRoll())
}

func TestPlayer_ResetRoll_AfterLosing(t *testing.T) {
	player, err := NewPlayer("Alice", 1, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	player.LoseDie()
	assert.ErrorIs(t, player.ResetRoll(), gameerr.ErrInvalidState)
}

func TestPlayer_Eliminate(t *testing.T) {
	player, err := NewPlayer("Alice", 2, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	_, err = player.RollHand(2)
	require.NoError(t, err)

	player.Eliminate()
	assert.Equal(t, PlayerStateLost, player.State())
	assert.Empty(t, player.LastRoll())

	// Idempotent on an already lost player.
	player.Eliminate()
	assert.Equal(t, PlayerStateLost, player.State())
}

func TestPlayer_LastRollIsACopy(t *testing.T) {
	player, err := NewPlayer("Alice", 3, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	_, err = player.RollHand(3)
	require.NoError(t, err)

	roll := player.LastRoll()
	roll[0] = 99
	assert.NotEqual(t, 99, player.LastRoll()[0])
}

func TestPlayer_String(t *testing.T) {
	player, err := NewPlayer("Alice", 3, 6, dice.New(&dice.Config{Seed: 1}))
	require.NoError(t, err)

	assert.Equal(t, "Player(Alice, 3 dice)", fmt.Sprint(player))
}
