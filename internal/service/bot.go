package service

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-classic/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
)

const (
	winScore    = 10
	randomScore = 10
)

// Randomizer is the source of uniform values in [0, 1) used by the search.
type Randomizer interface {
	Float64() float64
}

type BotService interface {
	SelectMove(board entity.Board, mark entity.Mark, difficulty float64) (int, error)
}

type globalRand struct{}

func (globalRand) Float64() float64 {
	return rand.Float64() //nolint: gosec // it's ok
}

type botService struct {
	rnd Randomizer
}

// NewBotService returns a minimax move selector. A nil rnd uses math/rand.
func NewBotService(rnd Randomizer) BotService {
	if rnd == nil {
		rnd = globalRand{}
	}

	return &botService{
		rnd: rnd,
	}
}

// SelectMove returns the empty cell with the best minimax value for mark.
// Ties keep the lowest index. With probability 1-difficulty per node the search
// substitutes a random score, so lower difficulty plays weaker.
func (that *botService) SelectMove(board entity.Board, mark entity.Mark, difficulty float64) (int, error) {
	if !mark.IsPlayable() {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if difficulty < 0 || difficulty > 1 || math.IsNaN(difficulty) {
		return 0, fmt.Errorf("%w: %v", apperror.ErrInvalidDifficulty, difficulty)
	}

	cells := board.EmptyCells()
	if len(cells) == 0 {
		return 0, fmt.Errorf("%w: board is full", apperror.ErrInvalidSelector)
	}

	bestCell := cells[0]
	bestScore := math.Inf(-1)

	for _, cell := range cells {
		next := board
		next[cell] = mark

		score := that.minimax(next, mark, 0, false, difficulty)
		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, nil
}

func (that *botService) minimax(board entity.Board, self entity.Mark, depth int, maximizing bool, difficulty float64) float64 {
	switch {
	case board.HasLine(self):
		return float64(winScore - depth)
	case board.HasLine(self.Opponent()):
		return float64(depth - winScore)
	case board.IsFull():
		return 0
	}

	if that.rnd.Float64() > difficulty {
		return (that.rnd.Float64()*2 - 1) * randomScore
	}

	mark := self
	bestScore := math.Inf(-1)
	if !maximizing {
		mark = self.Opponent()
		bestScore = math.Inf(1)
	}

	for i := range board {
		if board[i] != entity.MarkEmpty {
			continue
		}

		next := board
		next[i] = mark

		score := that.minimax(next, self, depth+1, !maximizing, difficulty)
		if maximizing {
			bestScore = math.Max(bestScore, score)
		} else {
			bestScore = math.Min(bestScore, score)
		}
	}

	return bestScore
}
