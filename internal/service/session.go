package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
	"github.com/rocketscienceinc/tictactoe-classic/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-classic/internal/tictactoe"
)

type SessionService interface {
	CreateSession(ctx context.Context, mode entity.Mode, player1, player2 string) (*entity.Session, error)
	GetSessionByID(ctx context.Context, id string) (*entity.Session, error)
	UpdateSession(ctx context.Context, session *entity.Session) error
	DeleteSession(ctx context.Context, id string) error
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type sessionService struct {
	sessionRepo sessionRepo
	now         func() time.Time
}

func NewSessionService(sessionRepo sessionRepo) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

func (that *sessionService) CreateSession(ctx context.Context, mode entity.Mode, player1, player2 string) (*entity.Session, error) {
	session := entity.NewSession(pkg.GenerateSessionID(), mode, player1, player2)
	session.Game = tictactoe.NewGame()
	session.UpdatedAt = that.now()

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session in storage: %w", err)
	}

	return session, nil
}

func (that *sessionService) GetSessionByID(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve session from storage: %w", err)
	}

	return session, nil
}

func (that *sessionService) UpdateSession(ctx context.Context, session *entity.Session) error {
	session.UpdatedAt = that.now()

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

func (that *sessionService) DeleteSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
