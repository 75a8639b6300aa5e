package game

import (
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/events"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/deck"
	"glory-to-rome-backend/internal/game/player"
	"glory-to-rome-backend/internal/game/zone"
	"glory-to-rome-backend/internal/logger"
)

// Game is the top-level orchestrator: it owns the authoritative
// GameState and accepts player-submitted actions through Handle. The
// engine is single-threaded and synchronous; a transport layer must
// serialize concurrent calls externally.
type Game struct {
	state    *GameState
	history  []action.GameAction
	eventBus *events.EventBusImpl
	log      *zap.Logger
}

// Option configures a Game at construction
type Option func(*Game)

// WithEventBus attaches a bus; the game publishes ActionAppliedEvent
// and GameEndedEvent after successful Handle calls
func WithEventBus(bus *events.EventBusImpl) Option {
	return func(g *Game) { g.eventBus = bus }
}

// WithLogger overrides the default global logger
func WithLogger(log *zap.Logger) Option {
	return func(g *Game) { g.log = log }
}

// NewGame creates and deals a new game from settings
func NewGame(settings GameSettings, opts ...Option) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	s := &GameState{
		settings:    settings,
		library:     zone.Of(deck.Shuffled(settings.Seed)...),
		jackPile:    zone.Of(deck.Jacks(InitialJackCount)...),
		pool:        zone.New(),
		foundations: make(map[card.Material]int),
		turn:        1,
	}
	for _, name := range settings.PlayerNames {
		s.players = append(s.players, player.New(name))
	}
	for _, m := range card.Materials() {
		s.foundations[m] = len(s.players)
	}
	for i := 0; i < InitialPoolCount; i++ {
		if id, ok := s.library.Pop(); ok {
			s.pool.Add(id)
		}
	}
	s.pushBack(Expected{Kind: action.ThinkerOrLead, Player: s.leader})

	g := &Game{state: s, log: logger.Get()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// State returns the live game state for read-only inspection. Mutation
// happens only through Handle.
func (g *Game) State() *GameState { return g.state }

// Snapshot returns a structurally copied GameState, safe to hold across
// subsequent Handle calls
func (g *Game) Snapshot() *GameState { return g.state.Copy() }

// History returns the accepted actions in application order
func (g *Game) History() []action.GameAction {
	out := make([]action.GameAction, len(g.history))
	copy(out, g.history)
	return out
}

// ExpectedAction returns the kind that satisfies the front frame
func (g *Game) ExpectedAction() action.Kind {
	front, ok := g.state.Peek()
	if !ok {
		return ""
	}
	return front.Kind
}

// ExpectedPlayer returns the player index owing the next action
func (g *Game) ExpectedPlayer() int {
	front, ok := g.state.Peek()
	if !ok {
		return -1
	}
	return front.Player
}

// Handle validates and applies one action. On any error the game state
// is bit-identical to its pre-call value: the action runs first on a
// structural copy, and only an action the copy accepts is applied to the
// live state, so references obtained through State() stay current.
func (g *Game) Handle(a action.GameAction) error {
	if g.state.gameOver {
		return &GameOverError{}
	}

	front, ok := g.state.Peek()
	if !ok {
		return &GameOverError{}
	}
	if !g.matches(front, a) {
		return &UnexpectedActionError{
			Got: string(a.Kind), GotActor: a.Player,
			Want: string(front.Kind), Actor: front.Player,
		}
	}

	working := g.state.Copy()
	if err := working.dispatch(a); err != nil {
		g.log.Info("action rejected",
			zap.String("kind", string(a.Kind)),
			zap.Int("player", a.Player),
			zap.String("error_kind", ErrorKind(err)),
			zap.Error(err))
		return err
	}

	// Dispatch is deterministic, so the live state accepts the action as
	// the copy did; should it not, the copy's result is kept instead.
	if err := g.state.dispatch(a); err != nil {
		g.state = working
	}
	g.history = append(g.history, a)
	g.log.Debug("action applied",
		zap.String("kind", string(a.Kind)),
		zap.Int("player", a.Player),
		zap.Int("turn", g.state.turn))

	if g.eventBus != nil {
		events.Publish(g.eventBus, events.ActionAppliedEvent{
			Kind:   string(a.Kind),
			Player: a.Player,
			Turn:   g.state.turn,
		})
		if g.state.gameOver {
			events.Publish(g.eventBus, events.GameEndedEvent{
				Winners: g.state.Winners(),
				Scores:  g.state.Scores(),
			})
		}
	}
	return nil
}

// matches gates an incoming action against the front frame. SKIPTHINKER
// is accepted in place of THINKERTYPE when the pending Thinker is
// optional (Academy's end-of-turn Thinker).
func (g *Game) matches(front Expected, a action.GameAction) bool {
	if a.Player != front.Player {
		return false
	}
	if a.Kind == front.Kind {
		return true
	}
	return a.Kind == action.SkipThinker &&
		front.Kind == action.ThinkerType && front.Opt
}

// dispatch routes a matched action to its handler. The receiver is the
// working copy; any returned error discards it wholesale.
func (s *GameState) dispatch(a action.GameAction) error {
	frame := s.popFront()

	var err error
	switch a.Kind {
	case action.ThinkerOrLead:
		err = s.handleThinkerOrLead(a)
	case action.ThinkerType:
		err = s.handleThinkerType(a, frame.Opt)
	case action.SkipThinker:
		err = s.handleSkipThinker(a)
	case action.UseLatrine:
		err = s.handleUseLatrine(a)
	case action.UseVomitorium:
		err = s.handleUseVomitorium(a)
	case action.UseFountain:
		err = s.handleUseFountain(a)
	case action.UseSewer:
		err = s.handleUseSewer(a)
	case action.LeadRole:
		err = s.handleLeadRole(a)
	case action.FollowRole:
		err = s.handleFollowRole(a)
	case action.Laborer:
		err = s.handleLaborer(a)
	case action.Craftsman:
		err = s.handleCraftsman(a)
	case action.Architect:
		err = s.handleArchitect(a)
	case action.Stairway:
		err = s.handleStairway(a)
	case action.Merchant:
		err = s.handleMerchant(a)
	case action.Legionary:
		err = s.handleLegionary(a, frame.N)
	case action.GiveCards:
		err = s.handleGiveCards(a)
	case action.PatronFromPool:
		err = s.handlePatronFromPool(a)
	case action.PatronFromHand:
		err = s.handlePatronFromHand(a)
	case action.PatronFromDeck:
		err = s.handlePatronFromDeck(a)
	default:
		err = payloadErrf("unhandled action kind %s", a.Kind)
	}
	if err != nil {
		return err
	}

	s.afterAction()
	return nil
}

// afterAction runs once per accepted action: schedules end-of-turn
// frames when the role actions drain, and performs cleanup and leader
// advance when the turn is fully resolved.
func (s *GameState) afterAction() {
	if s.gameOver {
		return
	}
	if len(s.expected) > 0 {
		return
	}
	if !s.endOfTurnScheduled {
		s.endOfTurnScheduled = true
		s.scheduleEndOfTurn()
		if len(s.expected) > 0 {
			return
		}
	}
	s.cleanupAndAdvance()
}
