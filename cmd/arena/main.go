// Command arena plays the move selector against itself at two difficulties and prints the score.
//
//	go run ./cmd/arena -games 200 -a 0.9 -b 1.0
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-classic/internal/arena"
	"github.com/rocketscienceinc/tictactoe-classic/internal/service"
)

func main() {
	var (
		games       = flag.Int("games", 100, "number of games to play")
		difficultyA = flag.Float64("a", 0.9, "difficulty of contender A")
		difficultyB = flag.Float64("b", 1.0, "difficulty of contender B")
		alternate   = flag.Bool("alternate", true, "swap seats every game")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	output := termenv.NewOutput(os.Stdout)

	contenders := [2]arena.Contender{
		{Name: fmt.Sprintf("A(%.2f)", *difficultyA), Difficulty: *difficultyA},
		{Name: fmt.Sprintf("B(%.2f)", *difficultyB), Difficulty: *difficultyB},
	}

	bot := service.NewBotService(rand.New(rand.NewSource(*seed))) //nolint: gosec // reproducible matches

	started := time.Now()
	result, err := arena.Play(bot, contenders, arena.Options{Games: *games, Alternate: *alternate})
	if err != nil {
		fmt.Fprintln(os.Stderr, output.String("arena failed: "+err.Error()).Foreground(output.Color("1")))
		os.Exit(1)
	}

	printSummary(output, contenders, result, time.Since(started), *seed)
}

func printSummary(output *termenv.Output, contenders [2]arena.Contender, result arena.Result, elapsed time.Duration, seed int64) {
	green := output.Color("2")
	red := output.Color("1")
	yellow := output.Color("3")

	fmt.Println(output.String("Summary").Bold())
	fmt.Printf("\tGames: %d (seed %d, %s)\n", result.Games, seed, elapsed.Round(time.Millisecond))

	for i, contender := range contenders {
		color := red
		if result.Wins[i] >= result.Wins[1-i] {
			color = green
		}

		line := fmt.Sprintf("%-10s wins: %5d  %6.2f%%  opened: %d",
			contender.Name, result.Wins[i], percent(result.Wins[i], result.Games), result.Opened[i])
		fmt.Println("\t" + output.String(line).Foreground(color).String())
	}

	draws := fmt.Sprintf("%-10s       %5d  %6.2f%%", "draws", result.Draws, percent(result.Draws, result.Games))
	fmt.Println("\t" + output.String(draws).Foreground(yellow).String())
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) * 100 / float64(total)
}
