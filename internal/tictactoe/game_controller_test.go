package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-classic/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.MarkEmpty
)

func TestNewGame(t *testing.T) {
	// When: create a new game
	game := NewGame()

	// Then: the game state should correspond to the expected initial state
	expectedGame := entity.Game{
		Board:  entity.Board{},
		Turn:   entity.MarkX,
		Status: entity.StatusInProgress,
	}

	require.Equal(t, expectedGame, game)
}

func TestApplyMove(t *testing.T) {
	t.Run("ApplyMove", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: player X makes a turn
		next, err := ApplyMove(game, 0)
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		expectedGame := entity.Game{
			Board:  entity.Board{x, e, e, e, e, e, e, e, e},
			Turn:   entity.MarkO,
			Status: entity.StatusInProgress,
			Moves:  1,
		}

		require.Equal(t, expectedGame, next)

		// Then: the original value is untouched
		require.Equal(t, NewGame(), game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where X holds cell 0
		game, err := ApplyMove(NewGame(), 0)
		require.NoError(t, err)

		// When: player O tries to make a move to the same square
		next, err := ApplyMove(game, 0)

		// Then: an illegal move error must be returned
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the game state remains unchanged
		require.Equal(t, game, next)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// When: an invalid cell index is passed (greater than the range)
		_, err := ApplyMove(NewGame(), 20)

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		// When: negative cell index is transmitted
		_, err := ApplyMove(NewGame(), -1)

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X has two in the top row and it is X's turn
		game := entity.Game{
			Board:  entity.Board{x, x, e, o, o, e, e, e, e},
			Turn:   entity.MarkX,
			Status: entity.StatusInProgress,
			Moves:  4,
		}

		// When: X completes the row
		next, err := ApplyMove(game, 2)
		require.NoError(t, err)

		// Then: X wins and the turn does not flip
		assert.Equal(t, entity.StatusWon, next.Status)
		assert.Equal(t, entity.MarkX, next.Winner)
		assert.Equal(t, entity.MarkX, next.Turn)
		assert.Equal(t, 5, next.Moves)
	})

	t.Run("Last cell without a line is a draw", func(t *testing.T) {
		// Given: one empty cell left and no line possible
		game := entity.Game{
			Board:  entity.Board{x, o, x, x, o, o, o, x, e},
			Turn:   entity.MarkX,
			Status: entity.StatusInProgress,
			Moves:  8,
		}

		// When: X fills it
		next, err := ApplyMove(game, 8)
		require.NoError(t, err)

		// Then: the game is drawn
		assert.Equal(t, entity.StatusDraw, next.Status)
		assert.Equal(t, entity.MarkEmpty, next.Winner)
	})

	t.Run("Win on the last cell is a win, not a draw", func(t *testing.T) {
		// Given: X can complete a diagonal with the last empty cell
		game := entity.Game{
			Board:  entity.Board{x, o, x, o, x, o, o, x, e},
			Turn:   entity.MarkX,
			Status: entity.StatusInProgress,
			Moves:  8,
		}

		// When: X plays the last cell
		next, err := ApplyMove(game, 8)
		require.NoError(t, err)

		// Then: X wins
		assert.Equal(t, entity.StatusWon, next.Status)
		assert.Equal(t, entity.MarkX, next.Winner)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won
		game := entity.Game{
			Board:  entity.Board{x, x, x, e, o, e, e, o, e},
			Status: entity.StatusWon,
			Winner: entity.MarkX,
			Turn:   entity.MarkX,
		}

		// When: a move is made after the game is over
		next, err := ApplyMove(game, 3)

		// Then: ErrGameFinished should be returned and the board is untouched
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, game, next)
	})

	t.Run("Move After Tie", func(t *testing.T) {
		// Given: a game that ended in a draw
		game := entity.Game{
			Board:  entity.Board{o, x, o, o, x, x, x, o, o},
			Status: entity.StatusDraw,
		}

		// When: player tries to make a move after a draw
		next, err := ApplyMove(game, 3)

		// Then: ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, game, next)
	})
}

func TestApplyMove_NeverChangesBoardOnIllegalMove(t *testing.T) {
	// Given: every reachable game state
	for _, game := range reachableGames() {
		for cell := 0; cell < entity.BoardSize; cell++ {
			if game.IsInProgress() && game.Board.IsEmptyCell(cell) {
				continue
			}

			// When: an occupied cell or a finished game is played
			next, err := ApplyMove(game, cell)

			// Then: the move is rejected and nothing changes
			require.ErrorIs(t, err, apperror.ErrIllegalMove)
			require.Equal(t, game, next)
		}
	}
}

func TestRestart(t *testing.T) {
	// Given: a finished game
	game := entity.Game{
		Board:  entity.Board{x, x, x, o, o, e, e, e, e},
		Status: entity.StatusWon,
		Winner: entity.MarkX,
		Turn:   entity.MarkX,
		Moves:  5,
	}
	require.True(t, game.IsFinished())

	// When: the game is restarted
	restarted := Restart()

	// Then: the board is empty, the game in progress and X to move
	require.Equal(t, entity.Board{}, restarted.Board)
	require.Equal(t, entity.StatusInProgress, restarted.Status)
	require.Equal(t, entity.MarkX, restarted.Turn)
	require.Zero(t, restarted.Moves)
}

func TestStartWith(t *testing.T) {
	// When: a game is started with O to move
	game := StartWith(entity.MarkO)

	// Then: O moves first on an empty board
	assert.Equal(t, entity.MarkO, game.Turn)
	assert.Equal(t, entity.StatusInProgress, game.Status)
	assert.Equal(t, entity.Board{}, game.Board)
}

func TestCheckOutcome(t *testing.T) {
	t.Run("Winner X", func(t *testing.T) {
		// Given: a game where player X has a winning combination
		board := entity.Board{x, o, e, x, o, e, x, e, e}

		// When: check the game status
		outcome := CheckOutcome(board)

		// Then: player X should be declared the winner
		require.Equal(t, entity.Outcome{Status: entity.StatusWon, Winner: entity.MarkX}, outcome)
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		// Given: a game where there is no winner yet
		board := entity.Board{x, o, x, e, o, e, x, e, e}

		// When: check the game status
		outcome := CheckOutcome(board)

		// Then: the game should continue
		require.Equal(t, entity.Outcome{Status: entity.StatusInProgress}, outcome)
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		board := entity.Board{o, x, o, o, x, x, x, o, x}

		// When: check the game status
		outcome := CheckOutcome(board)

		// Then: the game should be declared a tie
		assert.Equal(t, entity.Outcome{Status: entity.StatusDraw}, outcome)
	})
}

func TestCheckOutcome_AllBoards(t *testing.T) {
	var board entity.Board
	marks := [3]entity.Mark{e, x, o}

	// Given: every assignment of marks to the 9 cells
	for code := 0; code < 19683; code++ {
		rest := code
		for i := range board {
			board[i] = marks[rest%3]
			rest /= 3
		}

		xLine, oLine := hasLine(board, x), hasLine(board, o)
		if xLine && oLine {
			continue
		}

		// When: the outcome is evaluated
		outcome := CheckOutcome(board)

		// Then: Won(m) iff a pattern is entirely m, Draw iff full without a line
		switch {
		case xLine:
			require.Equal(t, entity.Outcome{Status: entity.StatusWon, Winner: x}, outcome, "board %v", board)
		case oLine:
			require.Equal(t, entity.Outcome{Status: entity.StatusWon, Winner: o}, outcome, "board %v", board)
		case board.IsFull():
			require.Equal(t, entity.Outcome{Status: entity.StatusDraw}, outcome, "board %v", board)
		default:
			require.Equal(t, entity.Outcome{Status: entity.StatusInProgress}, outcome, "board %v", board)
		}
	}
}

func hasLine(board entity.Board, mark entity.Mark) bool {
	for _, pattern := range entity.WinPatterns {
		line := true
		for _, cell := range pattern {
			if board[cell] != mark {
				line = false
			}
		}
		if line {
			return true
		}
	}

	return false
}

// reachableGames walks the full game tree from the initial state.
func reachableGames() []entity.Game {
	seen := make(map[entity.Game]struct{})
	games := make([]entity.Game, 0, 6000)

	var walk func(game entity.Game)
	walk = func(game entity.Game) {
		if _, ok := seen[game]; ok {
			return
		}
		seen[game] = struct{}{}
		games = append(games, game)

		if !game.IsInProgress() {
			return
		}

		for _, cell := range game.Board.EmptyCells() {
			next, err := ApplyMove(game, cell)
			if err != nil {
				panic(err)
			}
			walk(next)
		}
	}

	walk(NewGame())

	return games
}
