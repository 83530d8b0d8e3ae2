package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-classic/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
)

// NewGame returns the initial state: empty board, X to move.
func NewGame() entity.Game {
	return StartWith(entity.MarkX)
}

// StartWith returns an empty in-progress game with first to move.
func StartWith(first entity.Mark) entity.Game {
	return entity.Game{
		Turn:   first,
		Status: entity.StatusInProgress,
	}
}

// Restart discards the given game state and returns the initial one.
func Restart() entity.Game {
	return NewGame()
}

// ApplyMove places the active mark on cell and returns the resulting state.
// An illegal move returns the game unchanged together with an error wrapping apperror.ErrIllegalMove.
func ApplyMove(game entity.Game, cell int) (entity.Game, error) {
	if err := validateMove(game, cell); err != nil {
		return game, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	next := game
	next.Board[cell] = game.Turn
	next.Moves++

	updateGameStatus(&next)

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(game entity.Game, cell int) error {
	if !game.IsInProgress() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !game.Board.IsEmptyCell(cell) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move by the active mark.
func updateGameStatus(game *entity.Game) {
	switch {
	case game.Board.HasLine(game.Turn):
		game.Status = entity.StatusWon
		game.Winner = game.Turn
	case game.Board.IsFull():
		game.Status = entity.StatusDraw
	default:
		game.Turn = game.Turn.Opponent()
	}
}

// CheckOutcome evaluates a board without knowing whose move produced it.
// Patterns are scanned in order and the first complete line decides the winner.
func CheckOutcome(board entity.Board) entity.Outcome {
	for _, pattern := range entity.WinPatterns {
		mark := board[pattern[0]]
		if mark.IsPlayable() && mark == board[pattern[1]] && mark == board[pattern[2]] {
			return entity.Outcome{Status: entity.StatusWon, Winner: mark}
		}
	}

	if board.IsFull() {
		return entity.Outcome{Status: entity.StatusDraw}
	}

	return entity.Outcome{Status: entity.StatusInProgress}
}
