// Package round implements the state machine for a single round of liar's
// dice: bid sequencing, turn rotation, challenge resolution, penalties, and
// the reset into the next round.
package round

import (
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/gameerr"
	"github.com/KirkDiggler/liarsdice/internal/models"
)

// Handler manages the flow of one round at a time. The player list is shared
// with the owning game service; the handler mutates player state directly.
type Handler struct {
	players            []*models.Player
	roundNumber        int
	currentPlayerIndex int
	currentBid         *models.Bid

	// totalDiceCount is the number of dice on the table when the handler was
	// built. It is not recomputed as dice are lost, so the bid quantity
	// ceiling stays at its starting value for the whole game.
	totalDiceCount int
}

// New creates a round handler over the shared player list
func New(players []*models.Player) (*Handler, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: at least one player is required", gameerr.ErrInvalidArgument)
	}

	total := 0
	for _, player := range players {
		total += player.DiceCount()
	}

	return &Handler{
		players:        players,
		totalDiceCount: total,
	}, nil
}

// StartRound begins the next round: every player with dice left rerolls their
// full hand, the standing bid is cleared, and the player under the rotation
// pointer becomes active. The pointer persists across rounds, so the first
// actor of a new round is whoever was about to act next; if that seat was
// just eliminated the pointer moves on to the next surviving player.
func (h *Handler) StartRound() error {
	h.roundNumber++

	for _, player := range h.players {
		if player.DiceCount() == 0 {
			continue
		}
		if _, err := player.RollHand(player.DiceCount()); err != nil {
			return err
		}
	}

	h.currentBid = nil

	for i := 0; i < len(h.players); i++ {
		idx := (h.currentPlayerIndex + i) % len(h.players)
		if h.players[idx].State() == models.PlayerStateWaiting {
			h.currentPlayerIndex = idx
			return h.players[idx].SetState(models.PlayerStateActive)
		}
	}
	return fmt.Errorf("%w: no waiting player to activate", gameerr.ErrInvalidState)
}

// MakeBid processes a bid from the named player. The bid must stay within the
// table bounds, the player must be active, and the bid must outrank the
// standing one (the first bid of a round always does). On success the bid is
// installed and the turn passes to the next player.
func (h *Handler) MakeBid(playerName string, quantity, faceValue int) error {
	player, err := h.playerByName(playerName)
	if err != nil {
		return err
	}

	if faceValue < 1 {
		return fmt.Errorf("%w: bid value must be greater than 0", gameerr.ErrInvalidArgument)
	}
	if faceValue > player.FaceCount() {
		return fmt.Errorf("%w: bid value must be at most %d", gameerr.ErrInvalidArgument, player.FaceCount())
	}
	if quantity > h.totalDiceCount {
		return fmt.Errorf("%w: bid quantity must be at most the %d dice in play", gameerr.ErrInvalidArgument, h.totalDiceCount)
	}
	if !player.IsActive() {
		return fmt.Errorf("%w: player %s is not active", gameerr.ErrInvalidState, playerName)
	}

	newBid, err := models.NewBid(quantity, faceValue, player)
	if err != nil {
		return err
	}
	if !newBid.HigherThan(h.currentBid) {
		return fmt.Errorf("%w: bid must be higher than the previous one", gameerr.ErrInvalidArgument)
	}

	h.currentBid = newBid
	return h.NextPlayer()
}

// NextPlayer passes the turn: the current actor goes back to waiting and the
// next waiting player in rotation order becomes active. Players in any other
// state, eliminated ones in particular, are skipped. The caller must ensure
// at least one waiting player remains or the scan will not terminate.
func (h *Handler) NextPlayer() error {
	if err := h.players[h.currentPlayerIndex].SetState(models.PlayerStateWaiting); err != nil {
		return err
	}

	for {
		h.currentPlayerIndex = (h.currentPlayerIndex + 1) % len(h.players)
		if h.players[h.currentPlayerIndex].State() == models.PlayerStateWaiting {
			break
		}
	}
	return h.players[h.currentPlayerIndex].SetState(models.PlayerStateActive)
}

// ChallengeAndEndRound resolves a challenge from the named player against the
// standing bid and ends the round. If fewer dice show the bid's face value
// than the bid claims, the bidder loses; otherwise the challenger does. The
// loser forfeits one die, every roll record is cleared, and either the next
// round starts or the game is left with a single survivor. Returns the
// loser's name.
func (h *Handler) ChallengeAndEndRound(playerName string) (string, error) {
	if h.currentBid == nil {
		return "", fmt.Errorf("%w: no bid to challenge", gameerr.ErrInvalidArgument)
	}

	challenger, err := h.playerByName(playerName)
	if err != nil {
		return "", err
	}
	if !challenger.IsActive() {
		return "", fmt.Errorf("%w: player %s is not active", gameerr.ErrInvalidArgument, playerName)
	}

	bidder, err := h.playerByName(h.currentBid.AuthorName())
	if err != nil {
		return "", err
	}

	actual, err := h.CountDiceValue(h.currentBid.FaceValue())
	if err != nil {
		return "", err
	}

	loser := resolveChallenge(bidder, challenger, h.currentBid.Quantity(), actual)
	h.ApplyPenalty(loser)
	if err := h.resetPlayersAfterRound(); err != nil {
		return "", err
	}

	if h.CheckIfStartNextRound() {
		if err := h.StartRound(); err != nil {
			return "", err
		}
	}
	return loser.Name(), nil
}

// resolveChallenge picks the loser: the bidder when the actual count falls
// short of the claimed quantity, the challenger otherwise.
func resolveChallenge(bidder, challenger *models.Player, claimed, actual int) *models.Player {
	if actual < claimed {
		return bidder
	}
	return challenger
}

// CountDiceValue returns how many dice across all roll records show the given
// face value.
func (h *Handler) CountDiceValue(value int) (int, error) {
	maxValue := h.players[h.currentPlayerIndex].FaceCount()
	if value < 1 || value > maxValue {
		return 0, fmt.Errorf("%w: value must be between 1 and %d", gameerr.ErrInvalidArgument, maxValue)
	}

	count := 0
	for _, player := range h.players {
		for _, roll := range player.LastRoll() {
			if roll == value {
				count++
			}
		}
	}
	return count, nil
}

// ApplyPenalty takes one die from the player, eliminating them if it was
// their last.
func (h *Handler) ApplyPenalty(player *models.Player) {
	player.LoseDie()
	if player.DiceCount() == 0 {
		player.Eliminate()
	}
}

// resetPlayersAfterRound clears every roll record and demotes survivors back
// to waiting. Empty hands are eliminated here as a safety net.
func (h *Handler) resetPlayersAfterRound() error {
	for _, player := range h.players {
		if player.DiceCount() == 0 {
			player.Eliminate()
			continue
		}
		if err := player.ResetRoll(); err != nil {
			return err
		}
		if err := player.SetState(models.PlayerStateWaiting); err != nil {
			return err
		}
	}
	return nil
}

// CheckIfStartNextRound reports whether more than one player is still in the
// game.
func (h *Handler) CheckIfStartNextRound() bool {
	remaining := 0
	for _, player := range h.players {
		if player.State() != models.PlayerStateLost {
			remaining++
		}
	}
	return remaining > 1
}

// EndGameInfo returns the name of the sole remaining player. A game with no
// survivors is an invariant violation, not a normal outcome.
func (h *Handler) EndGameInfo() (string, error) {
	for _, player := range h.players {
		if player.State() != models.PlayerStateLost {
			return player.Name(), nil
		}
	}
	return "", fmt.Errorf("%w: no winner", gameerr.ErrNotFound)
}

// ActivePlayer returns the player whose turn it is
func (h *Handler) ActivePlayer() (*models.Player, error) {
	for _, player := range h.players {
		if player.IsActive() {
			return player, nil
		}
	}
	return nil, fmt.Errorf("%w: no active player", gameerr.ErrNotFound)
}

// RoundNumber returns the current round number, starting at 1 once the first
// round has begun.
func (h *Handler) RoundNumber() int {
	return h.roundNumber
}

// CurrentBid returns the standing bid, or nil before any bid has been placed
// this round.
func (h *Handler) CurrentBid() *models.Bid {
	return h.currentBid
}

// TotalDiceCount returns the bid quantity ceiling, fixed at construction time
func (h *Handler) TotalDiceCount() int {
	return h.totalDiceCount
}

func (h *Handler) playerByName(name string) (*models.Player, error) {
	for _, player := range h.players {
		if player.Name() == name {
			return player, nil
		}
	}
	return nil, fmt.Errorf("%w: player %s", gameerr.ErrNotFound, name)
}
