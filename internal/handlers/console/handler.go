// Package console drives a game of liar's dice over a line-oriented terminal.
// It owns prompting and rendering; all rule decisions stay in the game service,
// which receives parsed, already-typed inputs.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/liarsdice/internal/gameerr"
	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
)

// Player actions accepted at the prompt
const (
	ActionBid       = "bid"
	ActionChallenge = "challenge"
	ActionCheck     = "check"
)

// Config holds the configuration for the console handler
type Config struct {
	// GameService runs the rules engine
	GameService game.Service

	// Messenger produces the announcement lines
	Messenger messaging.Service

	// Input is the player-facing input stream, normally stdin
	Input io.Reader

	// Output is the player-facing output stream, normally stdout
	Output io.Writer
}

// Handler runs the interactive game loop
type Handler struct {
	gameService game.Service
	messenger   messaging.Service
	scanner     *bufio.Scanner
	out         io.Writer

	// lastPlayerName tracks turn changes so the screen is cleared before a
	// different player looks at it
	lastPlayerName string
}

// New creates a new console handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}
	if cfg.Input == nil || cfg.Output == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	return &Handler{
		gameService: cfg.GameService,
		messenger:   cfg.Messenger,
		scanner:     bufio.NewScanner(cfg.Input),
		out:         cfg.Output,
	}, nil
}

// Run plays the game to completion: it starts the first round, then prompts
// the active player for an action each turn until one winner remains.
// Rule violations are printed and the turn is re-prompted; engine invariant
// failures abort the loop.
func (h *Handler) Run(ctx context.Context) error {
	startOutput, err := h.gameService.StartRound(ctx, &game.StartRoundInput{})
	if err != nil {
		return err
	}
	if err := h.announceRoundStart(ctx, startOutput.RoundNumber, startOutput.ActivePlayerName); err != nil {
		return err
	}

	for {
		info, err := h.gameService.GetGameInfo(ctx, &game.GetGameInfoInput{})
		if err != nil {
			return err
		}
		if info.Status == models.GameStatusOver {
			return nil
		}

		active, err := h.gameService.GetActivePlayer(ctx, &game.GetActivePlayerInput{})
		if err != nil {
			return err
		}

		if h.lastPlayerName != active.PlayerName {
			h.clearScreen()
			h.lastPlayerName = active.PlayerName
		}

		h.renderTurnHeader(info, active)

		action, ok := h.promptLine(fmt.Sprintf("%s's turn. (Bid/Challenge/Check): ", active.PlayerName))
		if !ok {
			return errors.New("input stream closed before the game ended")
		}

		switch strings.ToLower(strings.TrimSpace(action)) {
		case ActionBid:
			err = h.handleBid(ctx, active.PlayerName)
		case ActionChallenge:
			err = h.handleChallenge(ctx, active.PlayerName)
		case ActionCheck:
			err = h.handleCheck(ctx, active.PlayerName)
		default:
			h.printfln("Unknown action. Choose Bid, Challenge, or Check.")
			continue
		}

		if err != nil {
			// Rule violations get printed and the same player is prompted
			// again. Anything else is a defect and stops the game.
			if errors.Is(err, gameerr.ErrInvalidArgument) || errors.Is(err, gameerr.ErrInvalidState) {
				h.printfln("%s", errorStyle.Render(err.Error()))
				continue
			}
			return err
		}
	}
}

// handleBid prompts for the bid parameters and submits the bid
func (h *Handler) handleBid(ctx context.Context, playerName string) error {
	quantity, err := h.promptInt("How many dice do you want to bid? ")
	if err != nil {
		return err
	}
	faceValue, err := h.promptInt("What is the value of the dice? ")
	if err != nil {
		return err
	}

	output, err := h.gameService.PlaceBid(ctx, &game.PlaceBidInput{
		PlayerName: playerName,
		Quantity:   quantity,
		FaceValue:  faceValue,
	})
	if err != nil {
		return err
	}

	message, err := h.messenger.GetBidPlacedMessage(ctx, &messaging.GetBidPlacedMessageInput{
		PlayerName: playerName,
		Quantity:   output.Bid.Quantity(),
		FaceValue:  output.Bid.FaceValue(),
	})
	if err != nil {
		return err
	}
	h.printfln("%s", message.Message)
	return nil
}

// handleChallenge submits a challenge and announces the outcome, including
// the winner when the challenge ends the game
func (h *Handler) handleChallenge(ctx context.Context, playerName string) error {
	output, err := h.gameService.Challenge(ctx, &game.ChallengeInput{PlayerName: playerName})
	if err != nil {
		return err
	}

	result, err := h.messenger.GetChallengeResultMessage(ctx, &messaging.GetChallengeResultMessageInput{
		ChallengerName: playerName,
		LoserName:      output.LoserName,
		Eliminated:     output.LoserEliminated,
	})
	if err != nil {
		return err
	}
	h.printfln("%s", result.Message)

	if output.GameOver {
		won, err := h.messenger.GetGameWonMessage(ctx, &messaging.GetGameWonMessageInput{
			WinnerName: output.WinnerName,
		})
		if err != nil {
			return err
		}
		h.printfln("")
		h.printfln("%s", winStyle.Render(won.Message))
		return nil
	}

	return h.announceRoundStart(ctx, output.RoundNumber, "")
}

// handleCheck shows the active player their own dice
func (h *Handler) handleCheck(ctx context.Context, playerName string) error {
	output, err := h.gameService.CheckDice(ctx, &game.CheckDiceInput{PlayerName: playerName})
	if err != nil {
		return err
	}
	h.printfln("Your dice: %s", renderRolls(output.Rolls))
	return nil
}

// announceRoundStart prints the round banner. The active player name may be
// empty, in which case it is looked up.
func (h *Handler) announceRoundStart(ctx context.Context, roundNumber int, activePlayerName string) error {
	if activePlayerName == "" {
		active, err := h.gameService.GetActivePlayer(ctx, &game.GetActivePlayerInput{})
		if err != nil {
			return err
		}
		activePlayerName = active.PlayerName
	}

	message, err := h.messenger.GetRoundStartMessage(ctx, &messaging.GetRoundStartMessageInput{
		RoundNumber:      roundNumber,
		ActivePlayerName: activePlayerName,
	})
	if err != nil {
		return err
	}
	h.printfln("%s", message.Message)
	return nil
}

// promptLine prints a prompt and reads one line. The second return value is
// false when the input stream is exhausted.
func (h *Handler) promptLine(prompt string) (string, bool) {
	fmt.Fprint(h.out, prompt)
	if !h.scanner.Scan() {
		return "", false
	}
	return h.scanner.Text(), true
}

// promptInt prompts until it reads a line, then parses it as an integer
func (h *Handler) promptInt(prompt string) (int, error) {
	line, ok := h.promptLine(prompt)
	if !ok {
		return 0, errors.New("input stream closed before the game ended")
	}

	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", gameerr.ErrInvalidArgument, strings.TrimSpace(line))
	}
	return value, nil
}

func (h *Handler) printfln(format string, args ...any) {
	fmt.Fprintf(h.out, format+"\n", args...)
}

// clearScreen pushes the previous player's dice off the terminal before the
// next player looks at it
func (h *Handler) clearScreen() {
	fmt.Fprint(h.out, strings.Repeat("\n", screenClearLines))
}
