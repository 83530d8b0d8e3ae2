// Package arena plays the move selector against itself to compare difficulties.
package arena

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
	"github.com/rocketscienceinc/tictactoe-classic/internal/tictactoe"
)

type botService interface {
	SelectMove(board entity.Board, mark entity.Mark, difficulty float64) (int, error)
}

// Contender is one side of a match.
type Contender struct {
	Name       string
	Difficulty float64
}

type Options struct {
	Games int
	// Alternate swaps seats every game so both contenders open equally often.
	Alternate bool
}

type Result struct {
	Games int
	Wins  [2]int
	Draws int
	// Opened counts games each contender played as X.
	Opened [2]int
}

// Play runs the match. Contender 0 opens the first game.
func Play(bot botService, contenders [2]Contender, opts Options) (Result, error) {
	result := Result{Games: opts.Games}

	for i := 0; i < opts.Games; i++ {
		first := 0
		if opts.Alternate && i%2 == 1 {
			first = 1
		}

		winner, err := playGame(bot, contenders, first)
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}

		result.Opened[first]++

		if winner < 0 {
			result.Draws++
		} else {
			result.Wins[winner]++
		}
	}

	return result, nil
}

// playGame returns the index of the winning contender, or -1 on a draw.
func playGame(bot botService, contenders [2]Contender, first int) (int, error) {
	game := tictactoe.NewGame()
	seat := map[entity.Mark]int{
		entity.MarkX: first,
		entity.MarkO: 1 - first,
	}

	for game.IsInProgress() {
		contender := contenders[seat[game.Turn]]

		cell, err := bot.SelectMove(game.Board, game.Turn, contender.Difficulty)
		if err != nil {
			return 0, fmt.Errorf("%s failed to select move: %w", contender.Name, err)
		}

		if game, err = tictactoe.ApplyMove(game, cell); err != nil {
			return 0, fmt.Errorf("%s made an illegal move: %w", contender.Name, err)
		}
	}

	if game.Status == entity.StatusDraw {
		return -1, nil
	}

	return seat[game.Winner], nil
}
