// internal/room/messages.go
package room

import (
	"github.com/cardtable/uno/internal/uno"
)

// Server message types sent to clients.
const (
	MsgGameState    = "game_state"
	MsgGameStarted  = "game_started"
	MsgPlayerJoined = "player_joined"
	MsgPlayerLeft   = "player_left"
	MsgGameOver     = "game_over"
	MsgError        = "error"
)

// ServerMessage is one outbound relay message. Fields are populated per
// Type and omitted otherwise.
type ServerMessage struct {
	Type       string         `json:"type"`
	State      *uno.GameState `json:"state,omitempty"`
	Player     *uno.Player    `json:"player,omitempty"`
	PlayerID   string         `json:"playerId,omitempty"`
	WinnerID   string         `json:"winnerId,omitempty"`
	WinnerName string         `json:"winnerName,omitempty"`
	Message    string         `json:"message,omitempty"`
}
