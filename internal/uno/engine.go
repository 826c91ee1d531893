// internal/uno/engine.go
package uno

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine applies player actions to game states. It is a pure state
// machine: every operation takes a state and returns a new one, leaving
// the input untouched, so the caller can serialize, broadcast, or discard
// either freely. The engine owns no per-game state beyond its random
// source; create one Engine per room and serialize calls to it there.
type Engine struct {
	Config Config
	rng    *rand.Rand
}

// NewEngine returns an engine with the default config and a time-seeded
// random source.
func NewEngine() *Engine {
	return NewEngineWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithRand returns an engine using the given random source.
// Inject a fixed-seed source for deterministic shuffles in tests.
func NewEngineWithRand(rng *rand.Rand) *Engine {
	return &Engine{Config: DefaultConfig, rng: rng}
}

// InitializeGame builds and shuffles a fresh deck, deals each player
// their opening hand in seat order, and seeds the discard pile with the
// first plain numbered card. The caller is responsible for enforcing the
// minimum player count before starting.
func (e *Engine) InitializeGame(players []Player) GameState {
	deck := ShuffleDeck(NewDeck(), e.rng)

	seated := make([]Player, len(players))
	for i, p := range players {
		hand, rest := DealCards(deck, e.Config.InitialHandSize)
		deck = rest
		p.Hand = hand
		seated[i] = p
	}

	start, deck := StartingCard(deck, e.rng)

	return GameState{
		Phase:              PhasePlaying,
		Players:            seated,
		CurrentPlayerIndex: 0,
		Direction:          Clockwise,
		DrawPile:           deck,
		DiscardPile:        []Card{start},
		CurrentColor:       start.Color,
		PendingDrawCount:   0,
		CalledUno:          []string{},
	}
}

// Apply dispatches one action to its handler. Unknown action variants are
// an error so a new action kind can never be silently dropped.
func (e *Engine) Apply(state GameState, action Action) (GameState, error) {
	switch a := action.(type) {
	case PlayCardAction:
		return e.PlayCard(state, a)
	case DrawCardAction:
		return e.DrawCard(state, a.PlayerID)
	case CallUnoAction:
		return e.CallUno(state, a.PlayerID)
	case ChallengeUnoAction:
		next, _, err := e.ChallengeUno(state, a.ChallengerID, a.TargetPlayerID)
		return next, err
	default:
		return state, fmt.Errorf("unhandled action type %T", action)
	}
}

// PlayCard plays one card from the acting player's hand onto the discard
// pile, applying the card's effect and advancing the turn. A wild card
// must arrive with a chosen color; the instance pushed onto the discard
// pile carries that color while the card's conserved identity (its id)
// is unchanged.
func (e *Engine) PlayCard(state GameState, action PlayCardAction) (GameState, error) {
	if state.Phase == PhaseFinished {
		return state, ErrGameFinished
	}
	idx := state.FindPlayer(action.PlayerID)
	if idx < 0 {
		return state, ErrPlayerNotFound
	}
	if !IsPlayerTurn(state, action.PlayerID) {
		return state, ErrNotYourTurn
	}
	card, ok := FindCardInHand(state.Players[idx].Hand, action.Card.ID)
	if !ok {
		return state, ErrCardNotInHand
	}
	if !CanPlayCard(card, state.TopCard(), state.CurrentColor) {
		return state, ErrIllegalPlay
	}

	played := card
	newColor := card.Color
	if card.IsWild() {
		if action.ChosenColor == "" || action.ChosenColor == ColorNone {
			return state, ErrColorRequired
		}
		played.Color = action.ChosenColor
		newColor = action.ChosenColor
	}

	next := state.Clone()

	hand := next.Players[idx].Hand
	for i, c := range hand {
		if c.ID == card.ID {
			next.Players[idx].Hand = append(hand[:i], hand[i+1:]...)
			break
		}
	}

	next.DiscardPile = append(next.DiscardPile, played)
	next.CurrentColor = newColor
	next.LastAction = action

	if len(next.Players[idx].Hand) == 0 {
		next.Winner = action.PlayerID
		next.Phase = PhaseFinished
	}

	// Card effects still apply on a winning move; the finished-phase guard
	// above keeps them from ever being observed by a later action.
	switch card.Type {
	case TypeReverse:
		if next.Direction == Clockwise {
			next.Direction = Counterclockwise
		} else {
			next.Direction = Clockwise
		}
	case TypeSkip:
		// Skip the immediate next player: advance twice, no generic advance.
		return advanceTurn(advanceTurn(next)), nil
	case TypeDraw2:
		next.PendingDrawCount += 2
	case TypeWildDraw4:
		next.PendingDrawCount += 4
	}

	return advanceTurn(next), nil
}

// DrawCard draws one card for the acting player, or the whole pending
// stack when draw2/wild_draw4 cards have accumulated. When the draw pile
// runs short, the discard pile minus its top card is shuffled back in.
// After a voluntary single draw that yields a playable card the turn
// stays with the player; in every other case it advances.
func (e *Engine) DrawCard(state GameState, playerID string) (GameState, error) {
	if state.Phase == PhaseFinished {
		return state, ErrGameFinished
	}
	idx := state.FindPlayer(playerID)
	if idx < 0 {
		return state, ErrPlayerNotFound
	}
	if !IsPlayerTurn(state, playerID) {
		return state, ErrNotYourTurn
	}

	forced := state.PendingDrawCount > 0
	drawCount := 1
	if forced {
		drawCount = state.PendingDrawCount
	}

	next := state.Clone()

	if len(next.DrawPile) < drawCount {
		top := next.DiscardPile[len(next.DiscardPile)-1]
		recycled := next.DiscardPile[:len(next.DiscardPile)-1]
		next.DrawPile = ShuffleDeck(append(next.DrawPile, recycled...), e.rng)
		next.DiscardPile = []Card{top}
	}

	// If even the recycled pile cannot cover the draw (everything is in
	// hands), the draw is shorted to what exists rather than inventing
	// cards.
	dealt, remaining := DealCards(next.DrawPile, drawCount)
	next.DrawPile = remaining
	next.Players[idx].Hand = append(next.Players[idx].Hand, dealt...)
	next.PendingDrawCount = 0

	keepTurn := !forced && drawCount == 1 &&
		HasPlayableCard(next.Players[idx].Hand, next.TopCard(), next.CurrentColor)
	if !keepTurn {
		next = advanceTurn(next)
	}
	return next, nil
}

// CallUno records the player's UNO call. The call is accepted at any
// time regardless of hand size or turn; CanCallUno expresses the
// conventional call point but is deliberately not enforced here.
func (e *Engine) CallUno(state GameState, playerID string) (GameState, error) {
	if state.Phase == PhaseFinished {
		return state, ErrGameFinished
	}
	if state.FindPlayer(playerID) < 0 {
		return state, ErrPlayerNotFound
	}
	for _, id := range state.CalledUno {
		if id == playerID {
			return state, ErrAlreadyCalled
		}
	}
	next := state.Clone()
	next.CalledUno = append(next.CalledUno, playerID)
	return next, nil
}

// ChallengeUno penalizes the target with UnoPenalty cards if they are
// down to one card without having called UNO; otherwise the state is
// returned untouched with penalized=false. Any connection may challenge:
// neither the challenger's identity nor the turn is checked.
func (e *Engine) ChallengeUno(state GameState, challengerID, targetPlayerID string) (GameState, bool, error) {
	if state.Phase == PhaseFinished {
		return state, false, ErrGameFinished
	}
	ti := state.FindPlayer(targetPlayerID)
	if ti < 0 {
		return state, false, ErrTargetNotFound
	}

	target := state.Players[ti]
	if !ShouldHaveCalledUno(target.Hand, state.CalledUno, targetPlayerID) {
		return state, false, nil
	}

	next := state.Clone()
	dealt, remaining := DealCards(next.DrawPile, e.Config.UnoPenalty)
	next.DrawPile = remaining
	next.Players[ti].Hand = append(next.Players[ti].Hand, dealt...)
	return next, true, nil
}
