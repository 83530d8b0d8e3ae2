package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-classic/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
	"github.com/rocketscienceinc/tictactoe-classic/internal/usecase"
)

var errNoSession = errors.New("no session: send session:new or session:connect first")

func (that *Server) handleNewSession(ctx context.Context, client *client, payload Payload) (*entity.Session, error) {
	session, err := that.uSession.CreateSession(ctx, usecase.CreateOptions{
		Mode:    payload.Mode,
		Player1: payload.Player1,
		Player2: payload.Player2,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err = that.follow(ctx, client, session.ID); err != nil {
		return nil, err
	}

	return session, nil
}

func (that *Server) handleConnect(ctx context.Context, client *client, payload Payload) (*entity.Session, error) {
	if payload.SessionID == "" {
		return nil, apperror.ErrSessionNotFound
	}

	if err := that.follow(ctx, client, payload.SessionID); err != nil {
		return nil, err
	}

	session, err := that.uSession.GetSession(ctx, payload.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *Server) handleGameTurn(ctx context.Context, client *client, payload Payload) (*entity.Session, error) {
	id, err := sessionOf(client)
	if err != nil {
		return nil, err
	}

	if payload.Cell == nil {
		return nil, apperror.ErrInvalidCell
	}

	return that.uSession.MakeTurn(ctx, id, *payload.Cell)
}

func (that *Server) handleGameRestart(ctx context.Context, client *client, _ Payload) (*entity.Session, error) {
	id, err := sessionOf(client)
	if err != nil {
		return nil, err
	}

	return that.uSession.Restart(ctx, id)
}

func (that *Server) handleScoresReset(ctx context.Context, client *client, _ Payload) (*entity.Session, error) {
	id, err := sessionOf(client)
	if err != nil {
		return nil, err
	}

	return that.uSession.ResetScores(ctx, id)
}

func (that *Server) handlePlayersSwitch(ctx context.Context, client *client, _ Payload) (*entity.Session, error) {
	id, err := sessionOf(client)
	if err != nil {
		return nil, err
	}

	return that.uSession.SwitchPlayers(ctx, id)
}

func (that *Server) handleModeSet(ctx context.Context, client *client, payload Payload) (*entity.Session, error) {
	id, err := sessionOf(client)
	if err != nil {
		return nil, err
	}

	return that.uSession.SetMode(ctx, id, payload.Mode)
}

func (that *Server) handlePlayerRename(ctx context.Context, client *client, payload Payload) (*entity.Session, error) {
	id, err := sessionOf(client)
	if err != nil {
		return nil, err
	}

	if payload.Slot == nil {
		return nil, apperror.ErrInvalidSlot
	}

	return that.uSession.RenamePlayer(ctx, id, *payload.Slot, payload.Name)
}

// follow subscribes the connection to the session's updates.
func (that *Server) follow(ctx context.Context, client *client, id string) error {
	if client.SessionID() == id {
		return nil
	}

	updates, unsubscribe, err := that.uSession.Subscribe(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	client.attach(id, updates, unsubscribe)

	return nil
}

func sessionOf(client *client) (string, error) {
	id := client.SessionID()
	if id == "" {
		return "", errNoSession
	}

	return id, nil
}
