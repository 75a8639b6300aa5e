package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"glory-to-rome-backend/internal/repository"
)

// SetupRouter creates and configures the versioned REST router
func SetupRouter(repo repository.GameRepository) *mux.Router {
	gameHandler := NewGameHandler(repo)

	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	gameRoutes := api.PathPrefix("/games").Subrouter()
	gameRoutes.HandleFunc("", gameHandler.CreateGame).Methods(http.MethodPost)
	gameRoutes.HandleFunc("", gameHandler.ListGames).Methods(http.MethodGet)
	gameRoutes.HandleFunc("/{gameId}", gameHandler.GetGame).Methods(http.MethodGet)
	gameRoutes.HandleFunc("/{gameId}/actions", gameHandler.SubmitAction).Methods(http.MethodPost)

	return router
}
