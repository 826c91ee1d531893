// internal/uno/errors.go
package uno

import "errors"

// Engine errors. Every engine operation returns the unchanged prior state
// alongside one of these; none is fatal to the process. Callers must
// check the error before trusting the returned state.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrTargetNotFound = errors.New("target player not found")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrCardNotInHand  = errors.New("card not in hand")
	ErrIllegalPlay    = errors.New("card cannot be played")
	ErrColorRequired  = errors.New("must choose a color for wild card")
	ErrAlreadyCalled  = errors.New("already called UNO")
	ErrGameFinished   = errors.New("game is finished")
)
