package dice

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/liarsdice/internal/gameerr"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/liarsdice/internal/dice Roller

// Roller is the randomness source behind every die in the game
type Roller interface {
	// Roll returns a uniformly distributed value in [1, sides]
	Roll(sides int) int
}

// Config for the random roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomRoller implements Roller using math/rand
type RandomRoller struct {
	random *rand.Rand
}

// New creates a new random roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// Die represents a single die with a configurable number of faces.
// A die holds no state between rolls beyond its face count.
type Die struct {
	faces  int
	roller Roller
}

// NewDie creates a die with the given face count. The face count must be at
// least 2 and the roller must not be nil.
func NewDie(faces int, roller Roller) (*Die, error) {
	if faces <= 1 {
		return nil, fmt.Errorf("%w: number of faces must be greater than 1", gameerr.ErrInvalidArgument)
	}
	if roller == nil {
		return nil, fmt.Errorf("%w: roller cannot be nil", gameerr.ErrInvalidArgument)
	}

	return &Die{
		faces:  faces,
		roller: roller,
	}, nil
}

// Faces returns the number of faces on the die
func (d *Die) Faces() int {
	return d.faces
}

// Roll returns a value in [1, faces]
func (d *Die) Roll() int {
	return d.roller.Roll(d.faces)
}

// RollMany rolls the die n times and returns the results in order
func (d *Die) RollMany(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of rolls must be greater than 0", gameerr.ErrInvalidArgument)
	}

	rolls := make([]int, 0, n)
	for i := 0; i < n; i++ {
		rolls = append(rolls, d.Roll())
	}
	return rolls, nil
}

// SetFaces reconfigures the face count for future rolls
func (d *Die) SetFaces(faces int) error {
	if faces <= 1 {
		return fmt.Errorf("%w: number of faces must be greater than 1", gameerr.ErrInvalidArgument)
	}
	d.faces = faces
	return nil
}

// String returns a representation like "Die(6 faces)"
func (d *Die) String() string {
	return fmt.Sprintf("Die(%d faces)", d.faces)
}
