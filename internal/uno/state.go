// internal/uno/state.go
package uno

// Phase is the lifecycle stage of a game. Transitions are one-way:
// waiting -> playing -> finished.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// Direction is the order in which turns move around the table.
type Direction string

const (
	Clockwise        Direction = "clockwise"
	Counterclockwise Direction = "counterclockwise"
)

// Player is one seat at the table. ID is the stable identifier matching
// the connection; the hand is populated at game start.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Hand      []Card `json:"hand"`
	Connected bool   `json:"isConnected"`
}

// GameState is the complete authoritative state of one game. It is a
// value: every engine operation returns a fresh state rather than
// mutating its input, so a room can snapshot, broadcast, and replace it
// wholesale without locking inside the engine.
type GameState struct {
	Phase              Phase     `json:"phase"`
	Players            []Player  `json:"players"`
	CurrentPlayerIndex int       `json:"currentPlayerIndex"`
	Direction          Direction `json:"direction"`
	DrawPile           []Card    `json:"drawPile"`
	DiscardPile        []Card    `json:"discardPile"`
	CurrentColor       Color     `json:"currentColor"`
	PendingDrawCount   int       `json:"pendingDrawCount"`
	LastAction         Action    `json:"lastAction"`
	Winner             string    `json:"winner,omitempty"`
	CalledUno          []string  `json:"calledUno"`
}

// TopCard returns the top of the discard pile. The discard pile is never
// empty once a game has started.
func (s GameState) TopCard() Card {
	return s.DiscardPile[len(s.DiscardPile)-1]
}

// FindPlayer returns the seat index of playerID, or -1.
func (s GameState) FindPlayer(playerID string) int {
	for i, p := range s.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// Clone deep-copies the state so the caller can modify the copy without
// aliasing any slice of the original.
func (s GameState) Clone() GameState {
	next := s
	next.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		hand := make([]Card, len(p.Hand))
		copy(hand, p.Hand)
		p.Hand = hand
		next.Players[i] = p
	}
	next.DrawPile = make([]Card, len(s.DrawPile))
	copy(next.DrawPile, s.DrawPile)
	next.DiscardPile = make([]Card, len(s.DiscardPile))
	copy(next.DiscardPile, s.DiscardPile)
	next.CalledUno = make([]string, len(s.CalledUno))
	copy(next.CalledUno, s.CalledUno)
	return next
}

// NextPlayerIndex steps one seat from current in the given direction.
func NextPlayerIndex(current, playerCount int, direction Direction) int {
	if direction == Clockwise {
		return (current + 1) % playerCount
	}
	return (current - 1 + playerCount) % playerCount
}

// advanceTurn moves the current seat one step in the active direction.
func advanceTurn(s GameState) GameState {
	s.CurrentPlayerIndex = NextPlayerIndex(s.CurrentPlayerIndex, len(s.Players), s.Direction)
	return s
}
