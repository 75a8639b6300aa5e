package game

import (
	"fmt"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/player"
	"glory-to-rome-backend/internal/game/zone"
)

// Expected is one frame of the expected-action stack: which kind from
// which player satisfies it next. N carries frame-specific arithmetic
// (the demand width of a Legionary frame).
type Expected struct {
	Kind   action.Kind `json:"kind"`
	Player int         `json:"player"`
	N      int         `json:"n,omitempty"`
	Opt    bool        `json:"opt,omitempty"`
}

// GameState is the authoritative global state. The expected-action
// queue is the sole source of truth for whose move it is; frames are
// consumed from the front, nested responses (GIVECARDS, a follower's
// Thinker) are inserted at the front, and scheduled work (role actions,
// end-of-turn frames) is appended at the back.
type GameState struct {
	settings GameSettings

	players []*player.Player

	library  *zone.Zone
	jackPile *zone.Zone
	pool     *zone.Zone

	foundations map[card.Material]int

	leader  int
	roleLed card.Role
	turn    int

	expected []Expected

	// Legionary demand in flight
	demander     int
	pendingGives int

	// Lead/follow bookkeeping
	pendingFollows int
	followers      []int // players who followed (clockwise order)

	// End-of-turn frames scheduled once per turn
	endOfTurnScheduled bool

	gameOver bool
	winners  []int
	scores   []int
}

// ==================== Accessors ====================

// Players returns the ordered player list
func (s *GameState) Players() []*player.Player { return s.players }

// NumPlayers returns the player count
func (s *GameState) NumPlayers() int { return len(s.players) }

// Library returns the draw pile
func (s *GameState) Library() *zone.Zone { return s.library }

// JackPile returns the jack pile
func (s *GameState) JackPile() *zone.Zone { return s.jackPile }

// Pool returns the shared pool
func (s *GameState) Pool() *zone.Zone { return s.pool }

// Foundations returns the remaining foundation count per material
func (s *GameState) Foundations() map[card.Material]int {
	out := make(map[card.Material]int, len(s.foundations))
	for m, n := range s.foundations {
		out[m] = n
	}
	return out
}

// FoundationCount returns the remaining pile size for one material
func (s *GameState) FoundationCount(m card.Material) int {
	return s.foundations[m]
}

// Leader returns the index of the current turn's leader
func (s *GameState) Leader() int { return s.leader }

// RoleLed returns the role led this turn, or "" before a lead
func (s *GameState) RoleLed() card.Role { return s.roleLed }

// Turn returns the 1-based turn counter
func (s *GameState) Turn() int { return s.turn }

// IsOver reports whether the game has ended
func (s *GameState) IsOver() bool { return s.gameOver }

// Winners returns the indices of the winning players (post-game)
func (s *GameState) Winners() []int {
	out := make([]int, len(s.winners))
	copy(out, s.winners)
	return out
}

// Scores returns each player's final score (post-game)
func (s *GameState) Scores() []int {
	out := make([]int, len(s.scores))
	copy(out, s.scores)
	return out
}

// ==================== Expected-action queue ====================

// ExpectedFrames returns a copy of the pending frames, front first
func (s *GameState) ExpectedFrames() []Expected {
	out := make([]Expected, len(s.expected))
	copy(out, s.expected)
	return out
}

// Peek returns the front frame. The queue is never empty while the game
// is ongoing.
func (s *GameState) Peek() (Expected, bool) {
	if len(s.expected) == 0 {
		return Expected{}, false
	}
	return s.expected[0], true
}

func (s *GameState) pushFront(frames ...Expected) {
	s.expected = append(frames, s.expected...)
}

func (s *GameState) pushBack(frames ...Expected) {
	s.expected = append(s.expected, frames...)
}

func (s *GameState) popFront() Expected {
	front := s.expected[0]
	s.expected = s.expected[1:]
	return front
}

// ==================== Helpers ====================

func (s *GameState) playerAt(idx int) (*player.Player, error) {
	if idx < 0 || idx >= len(s.players) {
		return nil, fmt.Errorf("player index %d out of range", idx)
	}
	return s.players[idx], nil
}

// clockwiseFrom returns all player indices after start, wrapping, in
// seating order and excluding start itself
func (s *GameState) clockwiseFrom(start int) []int {
	n := len(s.players)
	out := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, (start+i)%n)
	}
	return out
}

// ==================== Copy ====================

// Copy returns a structurally independent copy of the whole state
func (s *GameState) Copy() *GameState {
	c := &GameState{
		settings:           s.settings,
		library:            s.library.Copy(),
		jackPile:           s.jackPile.Copy(),
		pool:               s.pool.Copy(),
		foundations:        make(map[card.Material]int, len(s.foundations)),
		leader:             s.leader,
		roleLed:            s.roleLed,
		turn:               s.turn,
		demander:           s.demander,
		pendingGives:       s.pendingGives,
		pendingFollows:     s.pendingFollows,
		endOfTurnScheduled: s.endOfTurnScheduled,
		gameOver:           s.gameOver,
	}
	c.players = make([]*player.Player, len(s.players))
	for i, p := range s.players {
		c.players[i] = p.Copy()
	}
	for m, n := range s.foundations {
		c.foundations[m] = n
	}
	c.expected = append([]Expected{}, s.expected...)
	c.followers = append([]int{}, s.followers...)
	c.winners = append([]int{}, s.winners...)
	c.scores = append([]int{}, s.scores...)
	return c
}

// CardCensus counts every card identity across all zones. The invariant
// checked by tests: the census equals the initial deck plus jacks, with
// no duplicates and no missing cards.
func (s *GameState) CardCensus() map[card.ID]int {
	census := make(map[card.ID]int)
	count := func(z *zone.Zone) {
		for _, id := range z.Cards() {
			census[id]++
		}
	}
	count(s.library)
	count(s.jackPile)
	count(s.pool)
	for _, p := range s.players {
		count(p.Hand())
		count(p.Stockpile())
		count(p.Vault())
		count(p.Clientele())
		count(p.Camp())
		count(p.Revealed())
		for _, b := range p.Buildings() {
			census[b.Foundation()]++
			count(b.Materials())
		}
	}
	return census
}
