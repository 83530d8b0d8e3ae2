package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
	"github.com/rocketscienceinc/tictactoe-classic/transport/dto"
)

type outbound struct {
	action  string
	payload ResponsePayload
}

// client is one WebSocket connection. All writes go through writeLoop.
type client struct {
	ctx    context.Context
	conn   *websocket.Conn
	logger *slog.Logger
	out    chan outbound

	mu          sync.Mutex
	sessionID   string
	unsubscribe func()
}

func newClient(ctx context.Context, conn *websocket.Conn, logger *slog.Logger) *client {
	return &client{
		ctx:    ctx,
		conn:   conn,
		logger: logger.With("component", "websocket-client"),
		out:    make(chan outbound, clientSendBuffer),
	}
}

func (that *client) send(message outbound) {
	select {
	case that.out <- message:
	case <-that.ctx.Done():
	}
}

func (that *client) sendSession(action string, session *entity.Session) {
	view := dto.NewSession(session)
	that.send(outbound{action: action, payload: ResponsePayload{Session: &view}})
}

func (that *client) SessionID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.sessionID
}

// attach makes the connection follow id. Updates are pushed as game:update.
func (that *client) attach(id string, updates <-chan entity.Session, unsubscribe func()) {
	that.mu.Lock()
	previous := that.unsubscribe
	that.sessionID = id
	that.unsubscribe = unsubscribe
	that.mu.Unlock()

	if previous != nil {
		previous()
	}

	go func() {
		for session := range updates {
			that.sendSession(actionGameUpdate, &session)
		}
	}()
}

func (that *client) detach() {
	that.mu.Lock()
	unsubscribe := that.unsubscribe
	that.unsubscribe = nil
	that.sessionID = ""
	that.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// writeLoop - writes queued messages and keeps the connection alive with pings.
// A game:update equal to the last session sent is skipped.
func (that *client) writeLoop() {
	log := that.logger.With("method", "writeLoop")

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	var last *dto.Session

	for {
		select {
		case <-that.ctx.Done():
			deadline := time.Now().Add(writeWait)
			_ = that.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			return

		case message := <-that.out:
			if message.payload.Session != nil {
				if message.action == actionGameUpdate && last != nil && reflect.DeepEqual(*last, *message.payload.Session) {
					continue
				}
				last = message.payload.Session
			}

			if err := that.write(message); err != nil {
				log.Debug("failed to write message", "error", err)
				that.conn.Close()
				return
			}

		case <-ticker.C:
			if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug("failed to write ping", "error", err)
				that.conn.Close()
				return
			}
		}
	}
}

func (that *client) write(message outbound) error {
	payload, err := json.Marshal(message.payload)
	if err != nil {
		return err
	}

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return that.conn.WriteJSON(Message{Action: message.action, Payload: payload})
}
