package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "glory-to-rome-backend/internal/errors"
	"glory-to-rome-backend/internal/events"
	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/logger"
)

// Entry pairs a rules-engine instance with its hosting metadata. The
// engine itself is single-threaded; Entry.Mu serializes Handle calls
// from concurrent transports.
type Entry struct {
	ID   string
	Game *game.Game
	Bus  *events.EventBusImpl
	Mu   sync.Mutex
}

// GameRepository manages live game instances
type GameRepository interface {
	// Create builds a new game from settings
	Create(ctx context.Context, settings game.GameSettings) (*Entry, error)

	// Get returns a game by ID
	Get(ctx context.Context, gameID string) (*Entry, error)

	// List returns all game IDs
	List(ctx context.Context) []string

	// Delete removes a game
	Delete(ctx context.Context, gameID string) error
}

// GameRepositoryImpl implements GameRepository in memory
type GameRepositoryImpl struct {
	games       map[string]*Entry
	mutex       sync.RWMutex
	broadcaster events.BroadcastFunc
	logger      *zap.Logger
}

// NewGameRepository creates an in-memory game repository. The
// broadcaster, when non-nil, is wired into every game's event bus.
func NewGameRepository(broadcaster events.BroadcastFunc) *GameRepositoryImpl {
	return &GameRepositoryImpl{
		games:       make(map[string]*Entry),
		broadcaster: broadcaster,
		logger:      logger.Get(),
	}
}

// Create builds and registers a new game
func (r *GameRepositoryImpl) Create(ctx context.Context, settings game.GameSettings) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gameID := uuid.New().String()
	bus := events.NewEventBus(gameID, r.broadcaster)

	g, err := game.NewGame(settings, game.WithEventBus(bus),
		game.WithLogger(logger.WithGameContext(gameID, -1)))
	if err != nil {
		return nil, err
	}

	entry := &Entry{ID: gameID, Game: g, Bus: bus}

	r.mutex.Lock()
	r.games[gameID] = entry
	r.mutex.Unlock()

	r.logger.Info("game created",
		zap.String("game_id", gameID),
		zap.Int("players", len(settings.PlayerNames)))

	events.Publish(bus, events.GameCreatedEvent{
		GameID:  gameID,
		Players: len(settings.PlayerNames),
	})
	return entry, nil
}

// Get returns a game by ID
func (r *GameRepositoryImpl) Get(ctx context.Context, gameID string) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entry, ok := r.games[gameID]
	if !ok {
		return nil, &apperrors.NotFoundError{Resource: "game", ID: gameID}
	}
	return entry, nil
}

// List returns all registered game IDs
func (r *GameRepositoryImpl) List(ctx context.Context) []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ids := make([]string, 0, len(r.games))
	for id := range r.games {
		ids = append(ids, id)
	}
	return ids
}

// Delete removes a game
func (r *GameRepositoryImpl) Delete(ctx context.Context, gameID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.games[gameID]; !ok {
		return &apperrors.NotFoundError{Resource: "game", ID: gameID}
	}
	delete(r.games, gameID)
	return nil
}
