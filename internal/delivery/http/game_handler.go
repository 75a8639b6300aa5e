package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/delivery/dto"
	apperrors "glory-to-rome-backend/internal/errors"
	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/logger"
	"glory-to-rome-backend/internal/repository"
)

// GameHandler serves the REST surface over the game repository
type GameHandler struct {
	repo   repository.GameRepository
	logger *zap.Logger
}

// NewGameHandler creates a game handler
func NewGameHandler(repo repository.GameRepository) *GameHandler {
	return &GameHandler{repo: repo, logger: logger.Get()}
}

type createGameRequest struct {
	Players          []string `json:"players"`
	Seed             *int64   `json:"seed,omitempty"`
	VictoryInfluence int      `json:"victoryInfluence,omitempty"`
	PoolDrainEnds    bool     `json:"poolDrainEnds,omitempty"`
}

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// CreateGame handles POST /games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BadRequest", "invalid JSON body")
		return
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	}
	settings := game.GameSettings{
		PlayerNames:      req.Players,
		Seed:             seed,
		VictoryInfluence: req.VictoryInfluence,
		PoolDrainEnds:    req.PoolDrainEnds,
	}

	entry, err := h.repo.Create(r.Context(), settings)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewGameView(entry.ID, entry.Game, -1))
}

// GetGame handles GET /games/{gameId}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameId"]

	entry, err := h.repo.Get(r.Context(), gameID)
	if err != nil {
		writeNotFound(w, err)
		return
	}

	viewer := -1
	if v := r.URL.Query().Get("viewer"); v != "" {
		if idx, err := strconv.Atoi(v); err == nil {
			viewer = idx
		}
	}

	entry.Mu.Lock()
	view := dto.NewGameView(entry.ID, entry.Game, viewer)
	entry.Mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

// ListGames handles GET /games
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"games": h.repo.List(r.Context())})
}

// SubmitAction handles POST /games/{gameId}/actions
func (h *GameHandler) SubmitAction(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameId"]

	entry, err := h.repo.Get(r.Context(), gameID)
	if err != nil {
		writeNotFound(w, err)
		return
	}

	var a action.GameAction
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}

	entry.Mu.Lock()
	err = entry.Game.Handle(a)
	var view dto.GameView
	if err == nil {
		view = dto.NewGameView(entry.ID, entry.Game, -1)
	}
	entry.Mu.Unlock()

	if err != nil {
		writeError(w, http.StatusConflict, game.ErrorKind(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func writeNotFound(w http.ResponseWriter, err error) {
	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, "NotFound", err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Kind: kind, Message: message})
}
