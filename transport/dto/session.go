package dto

import "github.com/rocketscienceinc/tictactoe-classic/internal/entity"

// Session is the wire view of a session shared by the REST and WebSocket transports.
type Session struct {
	ID            string         `json:"id"`
	Mode          entity.Mode    `json:"mode"`
	Players       [2]Player      `json:"players"`
	Board         [9]entity.Mark `json:"board"`
	Status        entity.Status  `json:"status"`
	Winner        entity.Mark    `json:"winner,omitempty"`
	Turn          entity.Mark    `json:"turn,omitempty"`
	CurrentPlayer int            `json:"current_player"`
	TurnName      string         `json:"turn_name,omitempty"`
	AIPending     bool           `json:"ai_pending"`
	Round         int            `json:"round"`
	WinningLine   []int          `json:"winning_line,omitempty"`
}

type Player struct {
	Name  string      `json:"name"`
	Mark  entity.Mark `json:"mark"`
	Score int         `json:"score"`
	IsAI  bool        `json:"is_ai"`
}

type Error struct {
	Error string `json:"error"`
}

func NewSession(session *entity.Session) Session {
	view := Session{
		ID:            session.ID,
		Mode:          session.Mode,
		Board:         session.Game.Board,
		Status:        session.Game.Status,
		Winner:        session.Game.Winner,
		CurrentPlayer: session.CurrentPlayer(),
		TurnName:      session.TurnName(),
		AIPending:     session.AIPending,
		Round:         session.Round,
	}

	if session.Game.IsInProgress() {
		view.Turn = session.Game.Turn
	}

	for i, player := range session.Players {
		view.Players[i] = Player{
			Name:  player.Name,
			Mark:  player.Mark,
			Score: player.Score,
			IsAI:  session.IsWithAI() && i == session.AISlot,
		}
	}

	if session.Game.Status == entity.StatusWon {
		view.WinningLine = session.Game.Board.WinningLine(session.Game.Winner)
	}

	return view
}
