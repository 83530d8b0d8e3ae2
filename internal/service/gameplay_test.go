package service

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-classic/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
	"github.com/rocketscienceinc/tictactoe-classic/internal/tictactoe"
)

func newTestGamePlay() GamePlayService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bot := NewBotService(rand.New(rand.NewSource(1))) //nolint: gosec // deterministic tests

	return NewGamePlayService(logger, bot, 1.0)
}

func newTestSession(mode entity.Mode) *entity.Session {
	session := entity.NewSession("s1", mode, "Ann", "Bob")
	session.Game = tictactoe.NewGame()

	return session
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	t.Run("Successful turn flips the turn", func(t *testing.T) {
		// Given: a new PvP session
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvP)

		// When: X plays the centre
		err := gamePlay.MakeTurn(session, 4)

		// Then: the board holds X and O is to move
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, session.Game.Board[4])
		assert.Equal(t, entity.MarkO, session.Game.Turn)
		assert.Equal(t, 1, session.CurrentPlayer())
		assert.Equal(t, "Bob", session.TurnName())
	})

	t.Run("Win credits the winner slot", func(t *testing.T) {
		// Given: X about to complete the top row
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvP)
		for _, cell := range []int{0, 3, 1, 4} {
			require.NoError(t, gamePlay.MakeTurn(session, cell))
		}

		// When: X completes the row
		err := gamePlay.MakeTurn(session, 2)

		// Then: the game is won and slot 0 scores
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWon, session.Game.Status)
		assert.Equal(t, 1, session.Players[0].Score)
		assert.Equal(t, 0, session.Players[1].Score)
		assert.Equal(t, -1, session.CurrentPlayer())
	})

	t.Run("Occupied cell is an illegal move", func(t *testing.T) {
		// Given: X holds the centre
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvP)
		require.NoError(t, gamePlay.MakeTurn(session, 4))
		before := *session

		// When: O plays the centre
		err := gamePlay.MakeTurn(session, 4)

		// Then: the move is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *session)
	})

	t.Run("Human cannot move for the AI", func(t *testing.T) {
		// Given: a PvA session where it is the AI's turn
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvA)
		require.NoError(t, gamePlay.MakeTurn(session, 4))

		// When: the human tries to move again
		err := gamePlay.MakeTurn(session, 0)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.MarkEmpty, session.Game.Board[0])
	})
}

func TestGamePlayService_MakeAITurn(t *testing.T) {
	t.Run("AI answers the human move", func(t *testing.T) {
		// Given: a PvA session after X took a corner
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvA)
		require.NoError(t, gamePlay.MakeTurn(session, 0))
		session.AIPending = true

		// When: the AI moves
		cell, err := gamePlay.MakeAITurn(session)

		// Then: O is placed, X is to move and the pending flag is cleared
		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, session.Game.Board[cell])
		assert.Equal(t, entity.MarkX, session.Game.Turn)
		assert.False(t, session.AIPending)
	})

	t.Run("AI win credits the AI slot", func(t *testing.T) {
		// Given: O can win at once
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvA)
		session.Game = entity.Game{
			Board:  entity.Board{x, x, e, o, o, e, x, e, e},
			Turn:   entity.MarkO,
			Status: entity.StatusInProgress,
			Moves:  5,
		}

		// When: the AI moves
		cell, err := gamePlay.MakeAITurn(session)

		// Then: it wins and the AI slot scores
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
		assert.Equal(t, entity.StatusWon, session.Game.Status)
		assert.Equal(t, 1, session.Players[1].Score)
	})

	t.Run("AI cannot move on the human's turn", func(t *testing.T) {
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvA)

		_, err := gamePlay.MakeAITurn(session)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("No AI in PvP", func(t *testing.T) {
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvP)
		require.NoError(t, gamePlay.MakeTurn(session, 0))

		_, err := gamePlay.MakeAITurn(session)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})
}

func TestGamePlayService_Restart(t *testing.T) {
	// Given: a finished game with scores
	gamePlay := newTestGamePlay()
	session := newTestSession(entity.ModePvP)
	session.Game = entity.Game{Board: entity.Board{x, x, x, o, o, e, e, e, e}, Status: entity.StatusWon, Winner: entity.MarkX, Turn: entity.MarkX}
	session.Players[0].Score = 3
	session.AIPending = true

	// When: the round is restarted
	gamePlay.Restart(session)

	// Then: the board is reset, X moves, scores stay
	assert.Equal(t, tictactoe.NewGame(), session.Game)
	assert.Equal(t, 1, session.Round)
	assert.Equal(t, 3, session.Players[0].Score)
	assert.False(t, session.AIPending)
}

func TestGamePlayService_ResetScores(t *testing.T) {
	// Given: a session with scores and a move on the board
	gamePlay := newTestGamePlay()
	session := newTestSession(entity.ModePvP)
	session.Players[0].Score, session.Players[1].Score = 2, 5
	require.NoError(t, gamePlay.MakeTurn(session, 4))

	// When: scores are reset
	gamePlay.ResetScores(session)

	// Then: both scores are zero and the board is untouched
	assert.Zero(t, session.Players[0].Score)
	assert.Zero(t, session.Players[1].Score)
	assert.Equal(t, entity.MarkX, session.Game.Board[4])
}

func TestGamePlayService_SwitchPlayers(t *testing.T) {
	t.Run("Names and scores swap together", func(t *testing.T) {
		// Given: a PvP session with scores
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvP)
		session.Players[0].Score, session.Players[1].Score = 2, 5
		require.NoError(t, gamePlay.MakeTurn(session, 4))

		// When: players are switched
		gamePlay.SwitchPlayers(session)

		// Then: name and score moved as a pair, marks stay with slots
		assert.Equal(t, entity.Player{Name: "Bob", Mark: entity.MarkX, Score: 5}, session.Players[0])
		assert.Equal(t, entity.Player{Name: "Ann", Mark: entity.MarkO, Score: 2}, session.Players[1])
		assert.Equal(t, tictactoe.NewGame(), session.Game)
	})

	t.Run("AI takes X and opens", func(t *testing.T) {
		// Given: a PvA session
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvA)
		session.Players[1].Score = 1

		// When: players are switched
		gamePlay.SwitchPlayers(session)

		// Then: the AI sits in slot 0 with its score and is to move
		assert.Equal(t, 0, session.AISlot)
		assert.Equal(t, entity.Player{Name: entity.AIName, Mark: entity.MarkX, Score: 1}, session.Players[0])
		assert.Equal(t, "Ann", session.Players[1].Name)
		assert.True(t, session.IsAITurn())

		// Then: the AI can play its opening move
		_, err := gamePlay.MakeAITurn(session)
		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, session.Game.Turn)
	})
}

func TestGamePlayService_SetMode(t *testing.T) {
	t.Run("Entering PvA seats the AI and resets", func(t *testing.T) {
		// Given: a PvP session with scores
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvP)
		session.Players[0].Score = 4
		require.NoError(t, gamePlay.MakeTurn(session, 4))

		// When: the mode is switched to PvA
		err := gamePlay.SetMode(session, entity.ModePvA)

		// Then: slot 1 is the AI, scores are zero and the board is new
		require.NoError(t, err)
		assert.Equal(t, entity.ModePvA, session.Mode)
		assert.Equal(t, entity.AIName, session.Players[1].Name)
		assert.Zero(t, session.Players[0].Score)
		assert.Equal(t, tictactoe.NewGame(), session.Game)
	})

	t.Run("Leaving PvA restores the human name", func(t *testing.T) {
		// Given: a PvA session that replaced "Bob"
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvP)
		require.NoError(t, gamePlay.SetMode(session, entity.ModePvA))

		// When: the mode is switched back
		err := gamePlay.SetMode(session, entity.ModePvP)

		// Then: Bob is back and there is no AI seat
		require.NoError(t, err)
		assert.Equal(t, "Bob", session.Players[1].Name)
		assert.Equal(t, entity.NoAISlot, session.AISlot)
		assert.False(t, session.IsWithAI())
	})

	t.Run("Leaving PvA after a switch restores slot 0", func(t *testing.T) {
		// Given: the AI moved to slot 0 after a switch
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvA)
		gamePlay.SwitchPlayers(session)

		// When: the mode is switched to PvP
		require.NoError(t, gamePlay.SetMode(session, entity.ModePvP))

		// Then: both slots carry human names
		assert.Equal(t, "Bob", session.Players[0].Name)
		assert.Equal(t, "Ann", session.Players[1].Name)
	})

	t.Run("Unknown mode is rejected", func(t *testing.T) {
		gamePlay := newTestGamePlay()
		session := newTestSession(entity.ModePvP)

		err := gamePlay.SetMode(session, "solo")

		require.ErrorIs(t, err, apperror.ErrInvalidMode)
	})
}

func TestGamePlayService_RenamePlayer(t *testing.T) {
	gamePlay := newTestGamePlay()

	t.Run("Renames a human slot", func(t *testing.T) {
		session := newTestSession(entity.ModePvP)

		err := gamePlay.RenamePlayer(session, 1, "  Carol ")

		require.NoError(t, err)
		assert.Equal(t, "Carol", session.Players[1].Name)
	})

	t.Run("AI slot cannot be renamed", func(t *testing.T) {
		session := newTestSession(entity.ModePvA)

		err := gamePlay.RenamePlayer(session, 1, "Carol")

		require.ErrorIs(t, err, apperror.ErrInvalidSlot)
	})

	t.Run("Rejects bad slots and names", func(t *testing.T) {
		session := newTestSession(entity.ModePvP)

		require.ErrorIs(t, gamePlay.RenamePlayer(session, 2, "Carol"), apperror.ErrInvalidSlot)
		require.ErrorIs(t, gamePlay.RenamePlayer(session, 0, "   "), apperror.ErrInvalidName)
		require.ErrorIs(t, gamePlay.RenamePlayer(session, 0, "a name that is far too long to fit the label"), apperror.ErrInvalidName)
	})
}
