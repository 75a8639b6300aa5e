package events

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"glory-to-rome-backend/internal/logger"
)

// SubscriptionID represents a unique subscription identifier
type SubscriptionID string

// EventHandler is a type-safe event handler function
type EventHandler[T any] func(event T)

// subscription wraps a handler with its type information
type subscription struct {
	id          SubscriptionID
	eventType   string
	handlerFunc func(event any)
}

// BroadcastFunc is called after every published event so a delivery
// layer can push fresh state to connected clients
type BroadcastFunc func(gameID string)

// EventBusImpl is a synchronous in-process event bus. Handlers run on
// the publishing goroutine, in subscription order; the rules engine is
// single-threaded, so ordering is deterministic.
type EventBusImpl struct {
	subscriptions map[SubscriptionID]*subscription
	order         []SubscriptionID
	nextID        uint64
	mutex         sync.RWMutex
	logger        *zap.Logger
	gameID        string
	broadcaster   BroadcastFunc
}

// NewEventBus creates an event bus for one game. The broadcaster is
// optional; nil disables automatic broadcasting.
func NewEventBus(gameID string, broadcaster BroadcastFunc) *EventBusImpl {
	return &EventBusImpl{
		subscriptions: make(map[SubscriptionID]*subscription),
		nextID:        1,
		logger:        logger.Get(),
		gameID:        gameID,
		broadcaster:   broadcaster,
	}
}

// Subscribe registers a type-safe event handler
func Subscribe[T any](eb *EventBusImpl, handler EventHandler[T]) SubscriptionID {
	eb.mutex.Lock()
	defer eb.mutex.Unlock()

	id := SubscriptionID(fmt.Sprintf("sub-%d", eb.nextID))
	eb.nextID++

	var zero T
	eventType := fmt.Sprintf("%T", zero)

	eb.subscriptions[id] = &subscription{
		id:        id,
		eventType: eventType,
		handlerFunc: func(event any) {
			if typed, ok := event.(T); ok {
				handler(typed)
			}
		},
	}
	eb.order = append(eb.order, id)

	eb.logger.Debug("event handler subscribed",
		zap.String("subscription_id", string(id)),
		zap.String("event_type", eventType))
	return id
}

// Publish delivers an event to every matching subscriber, then invokes
// the broadcaster if one is configured
func Publish[T any](eb *EventBusImpl, event T) {
	eb.mutex.RLock()
	defer eb.mutex.RUnlock()

	eventType := fmt.Sprintf("%T", event)
	delivered := 0
	for _, id := range eb.order {
		sub, ok := eb.subscriptions[id]
		if !ok || sub.eventType != eventType {
			continue
		}
		sub.handlerFunc(event)
		delivered++
	}

	eb.logger.Debug("event published",
		zap.String("event_type", eventType),
		zap.String("game_id", eb.gameID),
		zap.Int("subscribers", delivered))

	if eb.broadcaster != nil {
		eb.broadcaster(eb.gameID)
	}
}

// Unsubscribe removes a subscription by ID
func (eb *EventBusImpl) Unsubscribe(id SubscriptionID) {
	eb.mutex.Lock()
	defer eb.mutex.Unlock()

	delete(eb.subscriptions, id)
	for i, other := range eb.order {
		if other == id {
			eb.order = append(eb.order[:i], eb.order[i+1:]...)
			break
		}
	}
}

// Clear removes all subscriptions
func (eb *EventBusImpl) Clear() {
	eb.mutex.Lock()
	defer eb.mutex.Unlock()
	eb.subscriptions = make(map[SubscriptionID]*subscription)
	eb.order = nil
	eb.nextID = 1
}
