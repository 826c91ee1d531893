// internal/room/room.go
package room

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cardtable/uno/internal/metrics"
	"github.com/cardtable/uno/internal/uno"
)

// Conn is a single client's presence in a room. The handler layer pumps
// OutChan to the websocket; the room never touches the socket itself.
type Conn struct {
	PlayerID string
	OutChan  chan ServerMessage
	Cancel   func()
}

// Send pushes a message onto the connection's OutChan non-blockingly.
// A full or abandoned channel drops the message rather than stalling the
// room's critical section.
func (c *Conn) Send(msg ServerMessage) {
	select {
	case c.OutChan <- msg:
	default:
		logrus.WithFields(logrus.Fields{
			"player": c.PlayerID,
			"type":   msg.Type,
		}).Warn("out channel full, dropping message")
	}
}

// SendError delivers an error message to this connection only.
func (c *Conn) SendError(msg string) {
	c.Send(ServerMessage{Type: MsgError, Message: msg})
}

// Seat is one player's slot at the table. The seat survives disconnects;
// rejoining with the same name resumes the same seat and player id.
type Seat struct {
	PlayerID  string
	Name      string
	Connected bool
}

// Room holds the single authoritative GameState shared by its clients.
// Every action runs read-apply-store-broadcast under the room mutex, so
// concurrent actions from two players are applied one at a time in
// arrival order. The engine itself is pure; all serialization lives here.
type Room struct {
	ID string

	mu     sync.Mutex
	engine *uno.Engine
	state  *uno.GameState
	seats  []*Seat
	conns  map[string]*Conn // playerID -> live connection

	log     *logrus.Entry
	Metrics *metrics.Metrics

	// Optional sinks, wired at startup and nil-safe. RecordActionFn is
	// called after each applied action, RecordResultFn once on game over.
	RecordActionFn func(roomID string, action uno.Action, state uno.GameState)
	RecordResultFn func(roomID string, state uno.GameState)

	// OnEmpty is invoked when the last connection leaves, typically to
	// delete the room from its store.
	OnEmpty func(roomID string)
}

// New creates an empty room.
func New(id string, logger *logrus.Logger) *Room {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Room{
		ID:     id,
		engine: uno.NewEngine(),
		conns:  make(map[string]*Conn),
		log:    logger.WithField("room", id),
	}
}

// Join seats a player, or resumes their seat when the name is already
// known. The returned Conn is registered for broadcasts; if a game is in
// progress the current state is sent to it immediately.
func (r *Room) Join(playerName string) (*Conn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var seat *Seat
	for _, s := range r.seats {
		if s.Name == playerName {
			seat = s
			break
		}
	}

	if seat == nil {
		if r.state != nil {
			return nil, fmt.Errorf("game already started in room %s", r.ID)
		}
		if len(r.seats) >= r.engine.Config.MaxPlayers {
			return nil, fmt.Errorf("room %s is full", r.ID)
		}
		seat = &Seat{PlayerID: uuid.NewString(), Name: playerName}
		r.seats = append(r.seats, seat)
	}
	seat.Connected = true

	conn := &Conn{
		PlayerID: seat.PlayerID,
		OutChan:  make(chan ServerMessage, 32),
	}
	r.conns[seat.PlayerID] = conn

	if r.state != nil {
		r.setConnected(seat.PlayerID, true)
		conn.Send(ServerMessage{Type: MsgGameState, State: r.state})
	}

	player := uno.Player{ID: seat.PlayerID, Name: seat.Name, Connected: true}
	r.broadcast(ServerMessage{Type: MsgPlayerJoined, Player: &player})

	r.log.WithField("player", playerName).Info("player joined")
	return conn, nil
}

// Leave marks the seat disconnected and unregisters the connection. The
// seat itself is kept so the same name can resume it. When nobody is left
// connected the OnEmpty hook fires.
func (r *Room) Leave(playerID string) {
	r.mu.Lock()

	conn, ok := r.conns[playerID]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.conns, playerID)
	if conn.Cancel != nil {
		conn.Cancel()
	}

	for _, s := range r.seats {
		if s.PlayerID == playerID {
			s.Connected = false
			break
		}
	}
	r.setConnected(playerID, false)

	r.broadcast(ServerMessage{Type: MsgPlayerLeft, PlayerID: playerID})
	empty := len(r.conns) == 0
	r.log.WithField("player", playerID).Info("player left")
	r.mu.Unlock()

	if empty && r.OnEmpty != nil {
		r.OnEmpty(r.ID)
	}
}

// Start deals a new game for the currently seated players and broadcasts
// the opening state. It fails if too few players are seated or a game is
// already running.
func (r *Room) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != nil {
		return fmt.Errorf("game already started in room %s", r.ID)
	}
	if len(r.seats) < r.engine.Config.MinPlayers {
		return fmt.Errorf("need at least %d players to start", r.engine.Config.MinPlayers)
	}

	players := make([]uno.Player, len(r.seats))
	for i, s := range r.seats {
		players[i] = uno.Player{ID: s.PlayerID, Name: s.Name, Connected: s.Connected}
	}

	state := r.engine.InitializeGame(players)
	r.state = &state

	r.broadcast(ServerMessage{Type: MsgGameStarted, State: r.state})
	r.log.WithField("players", len(players)).Info("game started")
	return nil
}

// HandleAction applies one engine action to the room's state. On engine
// rejection the error goes only to the acting connection and the state is
// left as it was; on success the new state replaces the old one wholesale
// and is fanned out to everyone.
func (r *Room) HandleAction(actorID string, action uno.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn := r.conns[actorID]
	if r.state == nil {
		if conn != nil {
			conn.SendError("game not started")
		}
		return
	}

	next, err := r.engine.Apply(*r.state, action)
	if err != nil {
		if conn != nil {
			conn.SendError(err.Error())
		}
		r.Metrics.IncActionRejected()
		r.log.WithFields(logrus.Fields{
			"actor":  actorID,
			"action": action.ActionType(),
		}).WithError(err).Debug("action rejected")
		return
	}

	r.state = &next
	r.Metrics.IncActionApplied(action.ActionType())
	if r.RecordActionFn != nil {
		r.RecordActionFn(r.ID, action, next)
	}

	if next.Winner != "" {
		winnerName := ""
		if i := next.FindPlayer(next.Winner); i >= 0 {
			winnerName = next.Players[i].Name
		}
		r.broadcast(ServerMessage{Type: MsgGameOver, WinnerID: next.Winner, WinnerName: winnerName})
		if r.RecordResultFn != nil {
			r.RecordResultFn(r.ID, next)
		}
		r.log.WithField("winner", winnerName).Info("game over")
		return
	}

	r.broadcast(ServerMessage{Type: MsgGameState, State: r.state})
}

// State returns a snapshot of the current state, or nil before start.
func (r *Room) State() *uno.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Seats returns the current seat list.
func (r *Room) Seats() []Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	seats := make([]Seat, len(r.seats))
	for i, s := range r.seats {
		seats[i] = *s
	}
	return seats
}

// setConnected mirrors a seat's connection flag into the live game state,
// if one exists. The state is replaced, not mutated, since already
// broadcast snapshots may still be marshaling. Caller holds the room
// mutex.
func (r *Room) setConnected(playerID string, connected bool) {
	if r.state == nil {
		return
	}
	next := r.state.Clone()
	for i := range next.Players {
		if next.Players[i].ID == playerID {
			next.Players[i].Connected = connected
			break
		}
	}
	r.state = &next
}

// broadcast fans a message out to every live connection. Caller holds the
// room mutex.
func (r *Room) broadcast(msg ServerMessage) {
	for _, c := range r.conns {
		c.Send(msg)
	}
}
