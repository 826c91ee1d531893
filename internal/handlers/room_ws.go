// internal/handlers/room_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/cardtable/uno/internal/metrics"
	"github.com/cardtable/uno/internal/middleware"
	"github.com/cardtable/uno/internal/room"
	"github.com/cardtable/uno/internal/uno"
)

// RoomWSHandler upgrades the HTTP connection to WebSocket and runs the
// relay protocol: the client joins a room by name, then sends game
// actions; the room fans resulting states back out. One connection can
// occupy one room at a time.
func RoomWSHandler(logger *logrus.Logger, store *room.Store, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"uno"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler exited")

		if c.Subprotocol() != "uno" {
			logger.Warnf("Client connected with invalid subprotocol: %s", c.Subprotocol())
			c.Close(websocket.StatusPolicyViolation, "client must use the 'uno' subprotocol")
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)
		m.IncConnectedClients()
		defer m.DecConnectedClients()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		s := &clientSession{logger: logger, store: store, ws: c}
		readErr := s.readMessages(ctx)
		s.leaveRoom()
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, readErr)
	}
}

// clientSession is the per-connection handler state: the websocket plus
// the room and seat the client currently occupies, if any.
type clientSession struct {
	logger *logrus.Logger
	store  *room.Store
	ws     *websocket.Conn

	room *room.Room
	conn *room.Conn
}

// readMessages is the connection's read loop. It exits on closure,
// context cancellation, or read error.
func (s *clientSession) readMessages(ctx context.Context) error {
	for {
		msgType, data, err := s.ws.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return nil
			}
			return err
		}
		if msgType != websocket.MessageText {
			s.logger.Warnf("Received non-text message type %d, ignoring", msgType)
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Warnf("Invalid JSON received: %v", err)
			s.sendError(ctx, "invalid JSON format")
			continue
		}

		switch msg.Type {
		case MsgJoinGame:
			s.handleJoin(ctx, msg)
		case MsgStartGame:
			s.handleStart(ctx)
		case MsgGameAction:
			s.handleAction(ctx, msg)
		case MsgLeaveGame:
			s.leaveRoom()
		default:
			s.sendError(ctx, fmt.Sprintf("unknown message type %q", msg.Type))
		}
	}
}

func (s *clientSession) handleJoin(ctx context.Context, msg ClientMessage) {
	if s.conn != nil {
		s.sendError(ctx, "already in a room")
		return
	}
	if msg.RoomID == "" || msg.PlayerName == "" {
		s.sendError(ctx, "join_game requires roomId and playerName")
		return
	}

	rm := s.store.GetOrCreate(msg.RoomID)
	conn, err := rm.Join(msg.PlayerName)
	if err != nil {
		s.sendError(ctx, err.Error())
		return
	}

	writeCtx, cancel := context.WithCancel(ctx)
	conn.Cancel = cancel
	go s.writeMessages(writeCtx, conn.OutChan)

	s.room = rm
	s.conn = conn
}

func (s *clientSession) handleStart(ctx context.Context) {
	if s.room == nil {
		s.sendError(ctx, "join a room first")
		return
	}
	if err := s.room.Start(); err != nil {
		s.sendError(ctx, err.Error())
	}
}

func (s *clientSession) handleAction(ctx context.Context, msg ClientMessage) {
	if s.room == nil || s.conn == nil {
		s.sendError(ctx, "join a room first")
		return
	}
	if len(msg.Action) == 0 {
		s.sendError(ctx, "game_action requires an action")
		return
	}
	action, err := uno.DecodeAction(msg.Action)
	if err != nil {
		s.sendError(ctx, err.Error())
		return
	}
	s.room.HandleAction(s.conn.PlayerID, action)
}

// leaveRoom detaches the session from its room, if any. Safe to call
// repeatedly; also invoked on socket teardown.
func (s *clientSession) leaveRoom() {
	if s.room == nil || s.conn == nil {
		return
	}
	s.room.Leave(s.conn.PlayerID)
	s.room = nil
	s.conn = nil
}

// writeMessages pumps the room's out channel onto the websocket until
// the connection's context is cancelled.
func (s *clientSession) writeMessages(ctx context.Context, out <-chan room.ServerMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-out:
			data, err := json.Marshal(msg)
			if err != nil {
				s.logger.Errorf("Failed to marshal %s message: %v", msg.Type, err)
				continue
			}
			writeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err = s.ws.Write(writeCtx, websocket.MessageText, data)
			cancel()
			if err != nil {
				s.logger.Warnf("Failed to write %s message: %v", msg.Type, err)
				return
			}
		}
	}
}

// sendError delivers a protocol-level error straight to this socket.
// Engine rejections take the room path instead and never land here.
func (s *clientSession) sendError(ctx context.Context, message string) {
	data, err := json.Marshal(room.ServerMessage{Type: room.MsgError, Message: message})
	if err != nil {
		s.logger.Errorf("Failed to marshal error message: %v", err)
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.ws.Write(writeCtx, websocket.MessageText, data); err != nil {
		s.logger.Warnf("Failed to write error message: %v", err)
	}
}
