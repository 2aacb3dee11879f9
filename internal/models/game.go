package models

import (
	"time"
)

// Game holds the top-level metadata for one game of liar's dice
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current state of the game
	Status GameStatus

	// PlayerNames lists the participants in seating order
	PlayerNames []string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game state last changed
	UpdatedAt time.Time
}
