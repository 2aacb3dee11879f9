package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/gameerr"
	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/round"
)

// service implements the Service interface
type service struct {
	config  *Config
	clock   clock.Clock
	game    *models.Game
	players []*models.Player
	round   *round.Handler

	// winnerName is set once the game transitions to over
	winnerName string
}

// New creates a new game service, building one player per configured name and
// the round handler over the shared player list
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if len(cfg.PlayerNames) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if cfg.StartingDice < 1 {
		return nil, ErrInvalidDiceCount
	}

	diceSides := cfg.DiceSides
	if diceSides == 0 {
		diceSides = 6
	}

	gameClock := cfg.Clock
	if gameClock == nil {
		gameClock = &clock.DefaultClock{}
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	seen := make(map[string]struct{}, len(cfg.PlayerNames))
	players := make([]*models.Player, 0, len(cfg.PlayerNames))
	for _, name := range cfg.PlayerNames {
		if _, ok := seen[name]; ok {
			return nil, ErrDuplicateName
		}
		seen[name] = struct{}{}

		player, err := models.NewPlayer(name, cfg.StartingDice, diceSides, cfg.Roller)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	roundHandler, err := round.New(players)
	if err != nil {
		return nil, err
	}

	now := gameClock.Now()
	return &service{
		config: cfg,
		clock:  gameClock,
		game: &models.Game{
			ID:          uuidGenerator.NewUUID(),
			Status:      models.GameStatusRunning,
			PlayerNames: cfg.PlayerNames,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		players: players,
		round:   roundHandler,
	}, nil
}

// StartRound begins the next round
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if err := s.requireRunning(); err != nil {
		return nil, err
	}

	if err := s.round.StartRound(); err != nil {
		return nil, err
	}
	s.game.UpdatedAt = s.clock.Now()

	active, err := s.round.ActivePlayer()
	if err != nil {
		return nil, err
	}

	return &StartRoundOutput{
		RoundNumber:      s.round.RoundNumber(),
		ActivePlayerName: active.Name(),
	}, nil
}

// PlaceBid submits a bid on behalf of the active player
func (s *service) PlaceBid(ctx context.Context, input *PlaceBidInput) (*PlaceBidOutput, error) {
	if err := s.requireRunning(); err != nil {
		return nil, err
	}
	if _, err := s.requireActive(input.PlayerName); err != nil {
		return nil, err
	}

	if err := s.round.MakeBid(input.PlayerName, input.Quantity, input.FaceValue); err != nil {
		return nil, err
	}
	s.game.UpdatedAt = s.clock.Now()

	next, err := s.round.ActivePlayer()
	if err != nil {
		return nil, err
	}

	return &PlaceBidOutput{
		Bid:            s.round.CurrentBid(),
		NextPlayerName: next.Name(),
	}, nil
}

// Challenge resolves the standing bid and ends the round. When the challenge
// leaves a single survivor the service marks them as the winner and flips the
// game to over.
func (s *service) Challenge(ctx context.Context, input *ChallengeInput) (*ChallengeOutput, error) {
	if err := s.requireRunning(); err != nil {
		return nil, err
	}
	if _, err := s.requireActive(input.PlayerName); err != nil {
		return nil, err
	}

	loserName, err := s.round.ChallengeAndEndRound(input.PlayerName)
	if err != nil {
		return nil, err
	}
	s.game.UpdatedAt = s.clock.Now()

	loser, err := s.playerByName(loserName)
	if err != nil {
		return nil, err
	}

	output := &ChallengeOutput{
		LoserName:       loserName,
		LoserEliminated: loser.DiceCount() == 0,
		RoundNumber:     s.round.RoundNumber(),
	}

	if !s.round.CheckIfStartNextRound() {
		winnerName, err := s.round.EndGameInfo()
		if err != nil {
			return nil, err
		}

		winner, err := s.playerByName(winnerName)
		if err != nil {
			return nil, err
		}
		if err := winner.SetState(models.PlayerStateWon); err != nil {
			return nil, err
		}

		s.game.Status = models.GameStatusOver
		s.winnerName = winnerName
		output.GameOver = true
		output.WinnerName = winnerName
	}

	return output, nil
}

// CheckDice returns the active player's own rolled values
func (s *service) CheckDice(ctx context.Context, input *CheckDiceInput) (*CheckDiceOutput, error) {
	if err := s.requireRunning(); err != nil {
		return nil, err
	}

	player, err := s.requireActive(input.PlayerName)
	if err != nil {
		return nil, err
	}

	return &CheckDiceOutput{
		Rolls: player.LastRoll(),
	}, nil
}

// GetActivePlayer returns the player whose turn it is
func (s *service) GetActivePlayer(ctx context.Context, input *GetActivePlayerInput) (*GetActivePlayerOutput, error) {
	active, err := s.round.ActivePlayer()
	if err != nil {
		return nil, err
	}

	return &GetActivePlayerOutput{
		PlayerName: active.Name(),
		DiceCount:  active.DiceCount(),
	}, nil
}

// GetGameInfo returns a read-only snapshot of the game
func (s *service) GetGameInfo(ctx context.Context, input *GetGameInfoInput) (*GetGameInfoOutput, error) {
	return &GetGameInfoOutput{
		GameID:         s.game.ID,
		Status:         s.game.Status,
		RoundNumber:    s.round.RoundNumber(),
		CurrentBid:     s.round.CurrentBid(),
		TotalDiceCount: s.round.TotalDiceCount(),
		WinnerName:     s.winnerName,
		CreatedAt:      s.game.CreatedAt,
		UpdatedAt:      s.game.UpdatedAt,
	}, nil
}

// requireRunning rejects turn actions once the game is over
func (s *service) requireRunning() error {
	if s.game.Status != models.GameStatusRunning {
		return fmt.Errorf("%w: game is over", gameerr.ErrInvalidState)
	}
	return nil
}

// requireActive resolves a player by name and rejects actors who are not the
// active player
func (s *service) requireActive(name string) (*models.Player, error) {
	player, err := s.playerByName(name)
	if err != nil {
		return nil, err
	}
	if !player.IsActive() {
		return nil, fmt.Errorf("%w: player %s is not active", gameerr.ErrInvalidState, name)
	}
	return player, nil
}

func (s *service) playerByName(name string) (*models.Player, error) {
	for _, player := range s.players {
		if player.Name() == name {
			return player, nil
		}
	}
	return nil, fmt.Errorf("%w: player %s", gameerr.ErrNotFound, name)
}
