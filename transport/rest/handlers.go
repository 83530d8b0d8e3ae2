package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-classic/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
	"github.com/rocketscienceinc/tictactoe-classic/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-classic/transport/dto"
)

const maxBodyBytes = 1 << 12

var errMalformedBody = errors.New("malformed request body")

type createSessionRequest struct {
	Mode    entity.Mode `json:"mode"`
	Player1 string      `json:"player1"`
	Player2 string      `json:"player2"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type modeRequest struct {
	Mode entity.Mode `json:"mode"`
}

type renameRequest struct {
	Name string `json:"name"`
}

func (that *Server) ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	session, err := that.uSession.CreateSession(r.Context(), usecase.CreateOptions{
		Mode:    req.Mode,
		Player1: req.Player1,
		Player2: req.Player2,
	})
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, dto.NewSession(session))
}

func (that *Server) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.uSession.GetSession(r.Context(), chi.URLParam(r, "id"))
	that.respond(w, r, session, err)
}

func (that *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := that.uSession.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	if req.Cell == nil {
		that.writeError(w, r, apperror.ErrInvalidCell)
		return
	}

	session, err := that.uSession.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	that.respond(w, r, session, err)
}

func (that *Server) restart(w http.ResponseWriter, r *http.Request) {
	session, err := that.uSession.Restart(r.Context(), chi.URLParam(r, "id"))
	that.respond(w, r, session, err)
}

func (that *Server) resetScores(w http.ResponseWriter, r *http.Request) {
	session, err := that.uSession.ResetScores(r.Context(), chi.URLParam(r, "id"))
	that.respond(w, r, session, err)
}

func (that *Server) switchPlayers(w http.ResponseWriter, r *http.Request) {
	session, err := that.uSession.SwitchPlayers(r.Context(), chi.URLParam(r, "id"))
	that.respond(w, r, session, err)
}

func (that *Server) setMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	session, err := that.uSession.SetMode(r.Context(), chi.URLParam(r, "id"), req.Mode)
	that.respond(w, r, session, err)
}

func (that *Server) renamePlayer(w http.ResponseWriter, r *http.Request) {
	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil {
		that.writeError(w, r, apperror.ErrInvalidSlot)
		return
	}

	var req renameRequest
	if err = decodeBody(w, r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	session, err := that.uSession.RenamePlayer(r.Context(), chi.URLParam(r, "id"), slot, req.Name)
	that.respond(w, r, session, err)
}

func (that *Server) respond(w http.ResponseWriter, r *http.Request, session *entity.Session, err error) {
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, dto.NewSession(session))
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	that.writeJSON(w, status, dto.Error{Error: err.Error()})
}

// statusOf maps domain errors to HTTP status codes. Rejected moves leave state untouched and map to 409.
func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrCellOccupied):
		return http.StatusConflict
	case errors.Is(err, errMalformedBody),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMode),
		errors.Is(err, apperror.ErrInvalidSlot),
		errors.Is(err, apperror.ErrInvalidName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(errMalformedBody, err)
	}

	return nil
}
