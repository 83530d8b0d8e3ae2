package entity

type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

const BoardSize = 9

// WinPatterns holds the 8 winning lines: 3 rows, 3 columns and 2 diagonals.
var WinPatterns = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other mark. The empty mark has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

func (that Mark) IsPlayable() bool {
	return that == MarkX || that == MarkO
}

// Board is a 3x3 grid stored row by row: index = row*3 + col.
type Board [BoardSize]Mark

func CellIndex(row, col int) int {
	return row*3 + col
}

func (that Board) IsEmptyCell(index int) bool {
	return that[index] == MarkEmpty
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == MarkEmpty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == MarkEmpty {
			return false
		}
	}

	return true
}

// HasLine reports whether some win pattern is entirely occupied by mark.
func (that Board) HasLine(mark Mark) bool {
	return that.WinningLine(mark) != nil
}

// WinningLine returns the first win pattern entirely occupied by mark, or nil.
func (that Board) WinningLine(mark Mark) []int {
	if !mark.IsPlayable() {
		return nil
	}

	for _, pattern := range WinPatterns {
		if that[pattern[0]] == mark && that[pattern[1]] == mark && that[pattern[2]] == mark {
			return pattern[:]
		}
	}

	return nil
}

// Outcome is the result of evaluating a board: in progress, won by Winner, or a draw.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

// Game is the state of a single game. It is passed and returned by value.
type Game struct {
	Board  Board  `json:"board"`
	Turn   Mark   `json:"turn"`
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
	Moves  int    `json:"moves"`
}

func (that Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that Game) Outcome() Outcome {
	return Outcome{Status: that.Status, Winner: that.Winner}
}
