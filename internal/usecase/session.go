package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-classic/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
)

const aiTurnTimeout = 5 * time.Second

type SessionUseCase interface {
	CreateSession(ctx context.Context, opts CreateOptions) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error

	MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
	ResetScores(ctx context.Context, id string) (*entity.Session, error)
	SwitchPlayers(ctx context.Context, id string) (*entity.Session, error)
	SetMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error)
	RenamePlayer(ctx context.Context, id string, slot int, name string) (*entity.Session, error)

	Subscribe(ctx context.Context, id string) (<-chan entity.Session, func(), error)
}

type CreateOptions struct {
	Mode    entity.Mode
	Player1 string
	Player2 string
}

type sessionService interface {
	CreateSession(ctx context.Context, mode entity.Mode, player1, player2 string) (*entity.Session, error)
	GetSessionByID(ctx context.Context, id string) (*entity.Session, error)
	UpdateSession(ctx context.Context, session *entity.Session) error
	DeleteSession(ctx context.Context, id string) error
}

type gamePlayService interface {
	MakeTurn(session *entity.Session, cell int) error
	MakeAITurn(session *entity.Session) (int, error)

	Restart(session *entity.Session)
	ResetScores(session *entity.Session)
	SwitchPlayers(session *entity.Session)
	SetMode(session *entity.Session, mode entity.Mode) error
	RenamePlayer(session *entity.Session, slot int, name string) error
}

// aiTicket pins a scheduled AI move to the position it was scheduled for.
// Round changes on every restart and Moves grows within a round, so the pair names one position.
type aiTicket struct {
	round int
	moves int
}

type sessionUseCase struct {
	logger *slog.Logger

	sessionService  sessionService
	gamePlayService gamePlayService

	scheduler Scheduler
	moveDelay time.Duration

	locks  *keyedMutex
	broker *broker

	pendingMu sync.Mutex
	pending   map[string]aiTicket
}

func NewSessionUseCase(
	logger *slog.Logger,
	sessionService sessionService,
	gamePlayService gamePlayService,
	scheduler Scheduler,
	moveDelay time.Duration,
) SessionUseCase {
	return &sessionUseCase{
		logger: logger,

		sessionService:  sessionService,
		gamePlayService: gamePlayService,

		scheduler: scheduler,
		moveDelay: moveDelay,

		locks:   newKeyedMutex(),
		broker:  newBroker(),
		pending: make(map[string]aiTicket),
	}
}

func (that *sessionUseCase) CreateSession(ctx context.Context, opts CreateOptions) (*entity.Session, error) {
	if opts.Mode == "" {
		opts.Mode = entity.ModePvP
	}

	if !opts.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMode, opts.Mode)
	}

	player1, err := normalizeName(opts.Player1)
	if err != nil {
		return nil, err
	}

	player2, err := normalizeName(opts.Player2)
	if err != nil {
		return nil, err
	}

	session, err := that.sessionService.CreateSession(ctx, opts.Mode, player1, player2)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "sessionID", session.ID, "mode", session.Mode)

	return session, nil
}

// GetSession returns the session and makes sure a due AI move is on its way,
// which matters after a restart of the process with sessions kept in redis.
func (that *sessionUseCase) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	unlock := that.locks.Lock(id)
	defer unlock()

	session, err := that.sessionService.GetSessionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if that.scheduleAITurn(session) {
		if err = that.sessionService.UpdateSession(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to update session: %w", err)
		}
	}

	return session, nil
}

func (that *sessionUseCase) DeleteSession(ctx context.Context, id string) error {
	unlock := that.locks.Lock(id)
	defer unlock()

	if err := that.sessionService.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.pendingMu.Lock()
	delete(that.pending, id)
	that.pendingMu.Unlock()

	that.broker.CloseAll(id)

	that.logger.Info("session deleted", "sessionID", id)

	return nil
}

func (that *sessionUseCase) MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error) {
	return that.withSession(ctx, id, func(session *entity.Session) error {
		if err := that.gamePlayService.MakeTurn(session, cell); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		return nil
	})
}

func (that *sessionUseCase) Restart(ctx context.Context, id string) (*entity.Session, error) {
	return that.withSession(ctx, id, func(session *entity.Session) error {
		that.gamePlayService.Restart(session)

		return nil
	})
}

func (that *sessionUseCase) ResetScores(ctx context.Context, id string) (*entity.Session, error) {
	return that.withSession(ctx, id, func(session *entity.Session) error {
		that.gamePlayService.ResetScores(session)

		return nil
	})
}

func (that *sessionUseCase) SwitchPlayers(ctx context.Context, id string) (*entity.Session, error) {
	return that.withSession(ctx, id, func(session *entity.Session) error {
		that.gamePlayService.SwitchPlayers(session)

		return nil
	})
}

func (that *sessionUseCase) SetMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error) {
	return that.withSession(ctx, id, func(session *entity.Session) error {
		if err := that.gamePlayService.SetMode(session, mode); err != nil {
			return fmt.Errorf("failed to set mode: %w", err)
		}

		return nil
	})
}

func (that *sessionUseCase) RenamePlayer(ctx context.Context, id string, slot int, name string) (*entity.Session, error) {
	return that.withSession(ctx, id, func(session *entity.Session) error {
		if err := that.gamePlayService.RenamePlayer(session, slot, name); err != nil {
			return fmt.Errorf("failed to rename player: %w", err)
		}

		return nil
	})
}

// Subscribe streams every saved state of the session until ctx is done or unsubscribe is called.
func (that *sessionUseCase) Subscribe(ctx context.Context, id string) (<-chan entity.Session, func(), error) {
	if _, err := that.sessionService.GetSessionByID(ctx, id); err != nil {
		return nil, nil, fmt.Errorf("failed to get session: %w", err)
	}

	updates, unsubscribe := that.broker.Subscribe(ctx, id)

	return updates, unsubscribe, nil
}

// withSession runs fn on the stored session under the session lock, schedules a due AI move,
// saves the result and publishes it. Nothing is saved when fn fails.
func (that *sessionUseCase) withSession(ctx context.Context, id string, fn func(session *entity.Session) error) (*entity.Session, error) {
	unlock := that.locks.Lock(id)
	defer unlock()

	session, err := that.sessionService.GetSessionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err = fn(session); err != nil {
		return nil, err
	}

	that.scheduleAITurn(session)

	if err = that.sessionService.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	that.broker.Publish(*session)

	return session, nil
}

// scheduleAITurn arms the AI move for the current position unless one is already armed.
// It reports whether a new move was scheduled.
func (that *sessionUseCase) scheduleAITurn(session *entity.Session) bool {
	if !session.IsAITurn() {
		session.AIPending = false
		return false
	}

	session.AIPending = true
	ticket := aiTicket{round: session.Round, moves: session.Game.Moves}

	that.pendingMu.Lock()
	defer that.pendingMu.Unlock()

	if current, ok := that.pending[session.ID]; ok && current == ticket {
		return false
	}

	that.pending[session.ID] = ticket

	id := session.ID
	that.scheduler.AfterFunc(that.moveDelay, func() {
		that.playAITurn(id, ticket)
	})

	return true
}

// playAITurn is the scheduled AI move. It is dropped when the position it was armed for is gone.
func (that *sessionUseCase) playAITurn(id string, ticket aiTicket) {
	log := that.logger.With("method", "playAITurn", "sessionID", id)

	ctx, cancel := context.WithTimeout(context.Background(), aiTurnTimeout)
	defer cancel()

	unlock := that.locks.Lock(id)
	defer unlock()

	if !that.takeTicket(id, ticket) {
		log.Debug("stale ai turn dropped", "round", ticket.round, "moves", ticket.moves)
		return
	}

	session, err := that.sessionService.GetSessionByID(ctx, id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		log.Debug("session is gone before ai turn")
		return
	}

	if err != nil {
		log.Error("failed to get session", "error", err)
		return
	}

	if session.Round != ticket.round || session.Game.Moves != ticket.moves || !session.IsAITurn() {
		log.Debug("stale ai turn dropped", "round", ticket.round, "moves", ticket.moves)
		return
	}

	cell, err := that.gamePlayService.MakeAITurn(session)
	if err != nil {
		log.Error("failed to make ai turn", "error", err)
		return
	}

	that.scheduleAITurn(session)

	if err = that.sessionService.UpdateSession(ctx, session); err != nil {
		log.Error("failed to update session", "error", err)
		return
	}

	that.broker.Publish(*session)

	log.Debug("ai turn played", "cell", cell, "status", session.Game.Status)
}

func (that *sessionUseCase) takeTicket(id string, ticket aiTicket) bool {
	that.pendingMu.Lock()
	defer that.pendingMu.Unlock()

	current, ok := that.pending[id]
	if !ok || current != ticket {
		return false
	}

	delete(that.pending, id)

	return true
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > entity.MaxNameLength {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidName, name)
	}

	return name, nil
}
