package entity

import "time"

type Mode string

const (
	ModePvP Mode = "pvp"
	ModePvA Mode = "pva"
)

const (
	DefaultPlayer1Name = "Player 1"
	DefaultPlayer2Name = "Player 2"
	AIName             = "AI"

	// MaxNameLength caps player names, counted in runes.
	MaxNameLength = 32

	// NoAISlot marks a session without an AI seat.
	NoAISlot = -1
)

func (that Mode) IsValid() bool {
	return that == ModePvP || that == ModePvA
}

// SlotMarks binds each player slot to its mark. Slot 0 always plays X.
var SlotMarks = [2]Mark{MarkX, MarkO}

type Player struct {
	Name  string `json:"name"`
	Mark  Mark   `json:"mark"`
	Score int    `json:"score"`
}

// Session is one client's game together with the players, their scores and the mode.
type Session struct {
	ID        string    `json:"id"`
	Mode      Mode      `json:"mode"`
	Players   [2]Player `json:"players"`
	AISlot    int       `json:"ai_slot"`
	Game      Game      `json:"game"`
	Round     int       `json:"round"`
	AIPending bool      `json:"ai_pending"`
	SavedName string    `json:"saved_name,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(id string, mode Mode, player1, player2 string) *Session {
	if player1 == "" {
		player1 = DefaultPlayer1Name
	}

	if player2 == "" {
		player2 = DefaultPlayer2Name
	}

	session := &Session{
		ID:   id,
		Mode: ModePvP,
		Players: [2]Player{
			{Name: player1, Mark: SlotMarks[0]},
			{Name: player2, Mark: SlotMarks[1]},
		},
		AISlot: NoAISlot,
	}

	if mode == ModePvA {
		session.EnableAI()
	}

	return session
}

func (that *Session) IsWithAI() bool {
	return that.Mode == ModePvA && that.AISlot != NoAISlot
}

// EnableAI seats the AI in slot 1, remembering the human name it replaces.
func (that *Session) EnableAI() {
	that.Mode = ModePvA
	that.AISlot = 1
	that.SavedName = that.Players[1].Name
	that.Players[1].Name = AIName
}

// DisableAI restores the name the AI seat replaced.
func (that *Session) DisableAI() {
	if that.AISlot != NoAISlot {
		name := that.SavedName
		if name == "" {
			name = DefaultPlayer2Name
		}
		that.Players[that.AISlot].Name = name
	}

	that.Mode = ModePvP
	that.AISlot = NoAISlot
	that.SavedName = ""
}

// SlotOf returns the slot that plays mark, or -1.
func (that *Session) SlotOf(mark Mark) int {
	for i, player := range that.Players {
		if player.Mark == mark {
			return i
		}
	}

	return -1
}

// CurrentPlayer returns the slot whose mark is to move, or -1 when the game is over.
func (that *Session) CurrentPlayer() int {
	if !that.Game.IsInProgress() {
		return -1
	}

	return that.SlotOf(that.Game.Turn)
}

func (that *Session) AIMark() Mark {
	if !that.IsWithAI() {
		return MarkEmpty
	}

	return that.Players[that.AISlot].Mark
}

func (that *Session) IsAITurn() bool {
	return that.IsWithAI() && that.Game.IsInProgress() && that.Game.Turn == that.AIMark()
}

// SwapPlayers exchanges names and scores of both slots in one step. Marks stay with slots.
func (that *Session) SwapPlayers() {
	that.Players[0].Name, that.Players[1].Name = that.Players[1].Name, that.Players[0].Name
	that.Players[0].Score, that.Players[1].Score = that.Players[1].Score, that.Players[0].Score

	if that.AISlot != NoAISlot {
		that.AISlot = 1 - that.AISlot
	}
}

func (that *Session) ResetScores() {
	that.Players[0].Score = 0
	that.Players[1].Score = 0
}

// CreditWin adds a point to the slot that plays the winning mark.
func (that *Session) CreditWin(winner Mark) {
	if slot := that.SlotOf(winner); slot >= 0 {
		that.Players[slot].Score++
	}
}

// TurnName is the turn indicator text source: the name of the player to move.
func (that *Session) TurnName() string {
	slot := that.CurrentPlayer()
	if slot < 0 {
		return ""
	}

	return that.Players[slot].Name
}
