package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
	"github.com/rocketscienceinc/tictactoe-classic/transport/dto"
)

const (
	actionSessionNew     = "session:new"
	actionSessionConnect = "session:connect"
	actionGameTurn       = "game:turn"
	actionGameRestart    = "game:restart"
	actionScoresReset    = "scores:reset"
	actionPlayersSwitch  = "players:switch"
	actionModeSet        = "mode:set"
	actionPlayerRename   = "player:rename"
	actionGameUpdate     = "game:update"
	actionError          = "error"
)

type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	SessionID string      `json:"session_id,omitempty"`
	Mode      entity.Mode `json:"mode,omitempty"`
	Player1   string      `json:"player1,omitempty"`
	Player2   string      `json:"player2,omitempty"`
	Cell      *int        `json:"cell,omitempty"`
	Slot      *int        `json:"slot,omitempty"`
	Name      string      `json:"name,omitempty"`
}

type ResponsePayload struct {
	Session *dto.Session `json:"session,omitempty"`
	Error   string       `json:"error,omitempty"`
}
