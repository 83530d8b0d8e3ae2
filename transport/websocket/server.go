package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
	"github.com/rocketscienceinc/tictactoe-classic/internal/usecase"
)

const (
	maxMessageBytes  = 1 << 12
	pongWait         = 60 * time.Second
	pingInterval     = 30 * time.Second
	writeWait        = 10 * time.Second
	shutdownTimeout  = 5 * time.Second
	clientSendBuffer = 16
)

type uSession interface {
	CreateSession(ctx context.Context, opts usecase.CreateOptions) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)

	MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
	ResetScores(ctx context.Context, id string) (*entity.Session, error)
	SwitchPlayers(ctx context.Context, id string) (*entity.Session, error)
	SetMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error)
	RenamePlayer(ctx context.Context, id string, slot int, name string) (*entity.Session, error)

	Subscribe(ctx context.Context, id string) (<-chan entity.Session, func(), error)
}

type handlerFunc func(ctx context.Context, client *client, payload Payload) (*entity.Session, error)

type Server struct {
	logger   *slog.Logger
	uSession uSession

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uSession uSession) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		uSession: uSession,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionSessionNew] = server.handleNewSession
	server.handlers[actionSessionConnect] = server.handleConnect
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameRestart] = server.handleGameRestart
	server.handlers[actionScoresReset] = server.handleScoresReset
	server.handlers[actionPlayersSwitch] = server.handlePlayersSwitch
	server.handlers[actionModeSet] = server.handleModeSet
	server.handlers[actionPlayerRename] = server.handlePlayerRename

	return server
}

// Handler - returns the HTTP handler serving /ws.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket and serves it until it closes.
func (that *Server) upgradeToWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	connCtx, cancel := context.WithCancel(ctx)
	client := newClient(connCtx, conn, that.logger)

	defer func() {
		cancel()
		client.detach()
		conn.Close()
	}()

	go client.writeLoop()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(connCtx, client); err != nil {
		log.Debug("connection closed", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, client *client) error {
	log := that.logger.With("method", "handleMessages")

	client.conn.SetReadLimit(maxMessageBytes)
	if err := client.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return fmt.Errorf("failed to set read deadline: %w", err)
	}

	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(raw, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			that.sendErrorResponse(client, actionError, "malformed message")
			continue
		}

		that.processMessage(ctx, client, &message)
	}
}

func (that *Server) processMessage(ctx context.Context, client *client, message *Message) {
	log := that.logger.With("method", "processMessage", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action")
		that.sendErrorResponse(client, message.Action, "unknown action")
		return
	}

	var payload Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Warn("failed to unmarshal payload", "error", err)
			that.sendErrorResponse(client, message.Action, "malformed payload")
			return
		}
	}

	session, err := handler(ctx, client, payload)
	if err != nil {
		log.Debug("action failed", "error", err)
		that.sendErrorResponse(client, message.Action, err.Error())
		return
	}

	client.sendSession(message.Action, session)
}

func (that *Server) sendErrorResponse(client *client, action, errorMsg string) {
	client.send(outbound{action: action, payload: ResponsePayload{Error: errorMsg}})
}
