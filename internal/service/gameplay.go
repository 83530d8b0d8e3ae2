package service

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-classic/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
	"github.com/rocketscienceinc/tictactoe-classic/internal/tictactoe"
)

// GamePlayService applies the rules of a session: turns, scores, restarts and seats.
// It works on a loaded session and never touches storage.
type GamePlayService interface {
	MakeTurn(session *entity.Session, cell int) error
	MakeAITurn(session *entity.Session) (int, error)

	Restart(session *entity.Session)
	ResetScores(session *entity.Session)
	SwitchPlayers(session *entity.Session)
	SetMode(session *entity.Session, mode entity.Mode) error
	RenamePlayer(session *entity.Session, slot int, name string) error
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
	difficulty float64
}

func NewGamePlayService(logger *slog.Logger, botService BotService, difficulty float64) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		botService: botService,
		difficulty: difficulty,
	}
}

// MakeTurn plays a human move. It is rejected while the AI is to move.
func (that *gamePlayService) MakeTurn(session *entity.Session, cell int) error {
	if session.IsAITurn() {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrNotYourTurn)
	}

	if err := that.applyMove(session, cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

// MakeAITurn asks the bot for a move and plays it. It returns the chosen cell.
func (that *gamePlayService) MakeAITurn(session *entity.Session) (int, error) {
	if !session.IsAITurn() {
		return 0, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrNotYourTurn)
	}

	cell, err := that.botService.SelectMove(session.Game.Board, session.AIMark(), that.difficulty)
	if err != nil {
		return 0, fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = that.applyMove(session, cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	session.AIPending = false

	that.logger.Debug("bot made turn", "sessionID", session.ID, "cell", cell, "mark", session.AIMark())

	return cell, nil
}

func (that *gamePlayService) applyMove(session *entity.Session, cell int) error {
	game, err := tictactoe.ApplyMove(session.Game, cell)
	if err != nil {
		return err
	}

	session.Game = game

	if game.Status == entity.StatusWon {
		session.CreditWin(game.Winner)
	}

	return nil
}

// Restart starts a new round. Scores are kept.
func (that *gamePlayService) Restart(session *entity.Session) {
	session.Game = tictactoe.Restart()
	session.Round++
	session.AIPending = false
}

func (that *gamePlayService) ResetScores(session *entity.Session) {
	session.ResetScores()
}

// SwitchPlayers swaps names and scores of both slots and restarts.
// With an AI the AI seat moves too, so the AI then holds X and opens the round.
func (that *gamePlayService) SwitchPlayers(session *entity.Session) {
	session.SwapPlayers()
	that.Restart(session)
}

// SetMode switches between two humans and human versus AI. Scores are reset and the round restarts.
func (that *gamePlayService) SetMode(session *entity.Session, mode entity.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}

	switch {
	case mode == entity.ModePvA && !session.IsWithAI():
		session.EnableAI()
	case mode == entity.ModePvP && session.IsWithAI():
		session.DisableAI()
	}

	session.ResetScores()
	that.Restart(session)

	return nil
}

func (that *gamePlayService) RenamePlayer(session *entity.Session, slot int, name string) error {
	if slot < 0 || slot >= len(session.Players) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidSlot, slot)
	}

	if session.IsWithAI() && slot == session.AISlot {
		return fmt.Errorf("%w: slot %d is played by the AI", apperror.ErrInvalidSlot, slot)
	}

	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > entity.MaxNameLength {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidName, name)
	}

	session.Players[slot].Name = name

	return nil
}
