package models

import (
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/gameerr"
)

// Player represents a participant in a game. A player holds a hand of dice
// that shrinks over the game and a record of the values rolled in the current
// round.
type Player struct {
	name     string
	state    PlayerState
	hand     []*dice.Die
	lastRoll []int
}

// NewPlayer creates a player with the given starting hand. Every die in the
// hand shares the same face count.
func NewPlayer(name string, diceCount, diceFaces int, roller dice.Roller) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: player name cannot be empty", gameerr.ErrInvalidArgument)
	}
	if diceCount < 1 {
		return nil, fmt.Errorf("%w: dice count must be greater than 0", gameerr.ErrInvalidArgument)
	}

	hand := make([]*dice.Die, 0, diceCount)
	for i := 0; i < diceCount; i++ {
		die, err := dice.NewDie(diceFaces, roller)
		if err != nil {
			return nil, err
		}
		hand = append(hand, die)
	}

	return &Player{
		name:  name,
		state: PlayerStateWaiting,
		hand:  hand,
	}, nil
}

// Name returns the player's name, unique within a game
func (p *Player) Name() string {
	return p.name
}

// State returns the player's current state
func (p *Player) State() PlayerState {
	return p.state
}

// RollHand rolls count dice from the current hand and appends the results to
// the roll record. The record accumulates across calls until ResetRoll, so a
// round may be rolled incrementally.
func (p *Player) RollHand(count int) ([]int, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: number of dice to roll must be greater than 0", gameerr.ErrInvalidArgument)
	}
	if count > len(p.hand) {
		return nil, fmt.Errorf("%w: cannot roll %d dice with a hand of %d", gameerr.ErrInvalidArgument, count, len(p.hand))
	}

	for i := 0; i < count; i++ {
		p.lastRoll = append(p.lastRoll, p.hand[i].Roll())
	}
	return p.LastRoll(), nil
}

// LoseDie removes one die from the hand. Losing the last die puts the player
// in the terminal LOST state.
func (p *Player) LoseDie() {
	if len(p.hand) == 0 {
		return
	}
	p.hand = p.hand[:len(p.hand)-1]
	if len(p.hand) == 0 {
		p.state = PlayerStateLost
	}
}

// SetState transitions the player to a new state. Terminal states (LOST, WON)
// cannot be left.
func (p *Player) SetState(state PlayerState) error {
	if p.state.Terminal() {
		return fmt.Errorf("%w: player %s cannot leave state %s", gameerr.ErrInvalidState, p.name, p.state)
	}
	p.state = state
	return nil
}

// IsActive reports whether it is currently this player's turn
func (p *Player) IsActive() bool {
	return p.state == PlayerStateActive
}

// ResetRoll clears the roll record for the next round
func (p *Player) ResetRoll() error {
	if p.state == PlayerStateLost {
		return fmt.Errorf("%w: player %s cannot roll dice after losing", gameerr.ErrInvalidState, p.name)
	}
	p.lastRoll = nil
	return nil
}

// Eliminate puts the player in the terminal LOST state and discards their roll
// record, so their dice no longer count toward any reveal. Eliminating an
// already lost player is a no-op.
func (p *Player) Eliminate() {
	p.state = PlayerStateLost
	p.lastRoll = nil
}

// FaceCount returns the number of faces on the player's dice. All dice in a
// hand share a face count. A player with no dice left has a face count of 0.
func (p *Player) FaceCount() int {
	if len(p.hand) == 0 {
		return 0
	}
	return p.hand[0].Faces()
}

// DiceCount returns the number of dice left in the player's hand
func (p *Player) DiceCount() int {
	return len(p.hand)
}

// LastRoll returns a copy of the values rolled so far this round
func (p *Player) LastRoll() []int {
	roll := make([]int, len(p.lastRoll))
	copy(roll, p.lastRoll)
	return roll
}

// String returns a representation like "Player(Alice, 3 dice)"
func (p *Player) String() string {
	return fmt.Sprintf("Player(%s, %d dice)", p.name, len(p.hand))
}
