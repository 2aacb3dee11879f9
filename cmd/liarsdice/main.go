package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/handlers/console"
	gameService "github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
)

// CLI defines the command line flags
type CLI struct {
	Players []string `short:"p" help:"Player names in seating order" default:"Alice,Bob"`
	Dice    int      `short:"d" help:"Number of dice each player starts with" default:"5"`
	Sides   int      `short:"s" help:"Number of faces on every die" default:"6"`
	Seed    int64    `help:"Seed for dice rolls, 0 means random" default:"0"`
	Verbose bool     `short:"v" help:"Enable debug logging"`
}

func main() {
	// A .env file can override the defaults without flags
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("Failed to load .env file", "error", err)
	}

	var cli CLI
	kongCtx := kong.Parse(&cli,
		kong.Name("liarsdice"),
		kong.Description("Play a game of liar's dice at the terminal."),
	)

	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	seed := cli.Seed
	if seed == 0 {
		if env := os.Getenv("LIARSDICE_SEED"); env != "" {
			parsed, err := strconv.ParseInt(env, 10, 64)
			if err != nil {
				log.Fatal("Invalid LIARSDICE_SEED", "value", env)
			}
			seed = parsed
		}
	}

	fmt.Println(console.TitleStyle.Render(" Liar's Dice "))
	fmt.Println()

	if err := run(&cli, seed); err != nil {
		log.Fatal("Game ended with an error", "error", err)
	}

	kongCtx.Exit(0)
}

func run(cli *CLI, seed int64) error {
	roller := dice.New(&dice.Config{
		Seed: seed,
	})

	messenger, err := messaging.New(&messaging.Config{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	svc, err := gameService.New(&gameService.Config{
		PlayerNames:  cli.Players,
		StartingDice: cli.Dice,
		DiceSides:    cli.Sides,
		Roller:       roller,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	log.Debug("Game created", "players", cli.Players, "dice", cli.Dice, "sides", cli.Sides)

	handler, err := console.New(&console.Config{
		GameService: svc,
		Messenger:   messenger,
		Input:       os.Stdin,
		Output:      os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("failed to create console handler: %w", err)
	}

	return handler.Run(context.Background())
}
