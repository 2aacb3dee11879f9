// Package gameerr defines the error taxonomy shared by the game engine packages.
//
// Every rule violation surfaced by the engine wraps one of these sentinels, so
// callers can classify failures with errors.Is without depending on message text.
package gameerr

import "errors"

var (
	// ErrInvalidArgument indicates a malformed or out-of-range input, such as a
	// non-positive count or a bid outside the table bounds.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState indicates an action attempted by an actor whose state does
	// not permit it, such as a bid from a non-active player.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound indicates a lookup that produced nothing, such as an unknown
	// player name. When raised for an engine invariant (no active player) it
	// signals a programming defect rather than bad input.
	ErrNotFound = errors.New("not found")
)
