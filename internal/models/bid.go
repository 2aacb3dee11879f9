package models

import (
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/gameerr"
)

// Bid represents a claim that at least Quantity dice showing FaceValue exist
// across all hands in play. A bid is immutable once constructed.
type Bid struct {
	quantity  int
	faceValue int

	// authorName identifies the player who made the bid, for penalty and
	// resolution logic
	authorName string
}

// NewBid creates a bid authored by the given player. Quantity and face value
// must both be at least 1, and the author must currently be active.
func NewBid(quantity, faceValue int, author *Player) (*Bid, error) {
	if author == nil {
		return nil, fmt.Errorf("%w: bid author cannot be nil", gameerr.ErrInvalidArgument)
	}
	if quantity < 1 || faceValue < 1 {
		return nil, fmt.Errorf("%w: quantity and face value must be greater than 0", gameerr.ErrInvalidArgument)
	}
	if !author.IsActive() {
		return nil, fmt.Errorf("%w: player %s is not active", gameerr.ErrInvalidState, author.Name())
	}

	return &Bid{
		quantity:   quantity,
		faceValue:  faceValue,
		authorName: author.Name(),
	}, nil
}

// Quantity returns the number of dice claimed
func (b *Bid) Quantity() int {
	return b.quantity
}

// FaceValue returns the face value claimed
func (b *Bid) FaceValue() int {
	return b.faceValue
}

// AuthorName returns the name of the player who made the bid
func (b *Bid) AuthorName() string {
	return b.authorName
}

// HigherThan reports whether this bid outranks other. A bid outranks another
// when it claims a higher quantity or a higher face value; the two conditions
// are independent, so a bid with lower quantity but higher face value still
// outranks. Any bid outranks the absence of a bid (nil).
func (b *Bid) HigherThan(other *Bid) bool {
	if other == nil {
		return true
	}
	return b.quantity > other.quantity || b.faceValue > other.faceValue
}

// LowerThan reports whether this bid is outranked by other, using the same
// independent quantity/face-value rule as HigherThan. No bid is lower than
// the absence of a bid.
func (b *Bid) LowerThan(other *Bid) bool {
	if other == nil {
		return false
	}
	return b.quantity < other.quantity || b.faceValue < other.faceValue
}

// Equal reports whether two bids have the same quantity, face value, and author
func (b *Bid) Equal(other *Bid) bool {
	if other == nil {
		return false
	}
	return b.quantity == other.quantity &&
		b.faceValue == other.faceValue &&
		b.authorName == other.authorName
}

// String returns a representation like "Bid(2, 3, Alice)"
func (b *Bid) String() string {
	return fmt.Sprintf("Bid(%d, %d, %s)", b.quantity, b.faceValue, b.authorName)
}
