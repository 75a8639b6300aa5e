package game

import (
	"encoding/json"
	"fmt"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
)

// PersistVersion tags the persisted document layout
const PersistVersion = 1

// PersistedBuilding is the serialized form of one building
type PersistedBuilding struct {
	Foundation card.ID   `json:"foundation"`
	Site       string    `json:"site"`
	Materials  []card.ID `json:"materials"`
	Complete   bool      `json:"complete"`
	Shared     bool      `json:"shared,omitempty"`
}

// PersistedPlayer is the serialized form of one player
type PersistedPlayer struct {
	Name      string              `json:"name"`
	Hand      []card.ID           `json:"hand"`
	Stockpile []card.ID           `json:"stockpile"`
	Vault     []card.ID           `json:"vault"`
	Clientele []card.ID           `json:"clientele"`
	Camp      []card.ID           `json:"camp"`
	Revealed  []card.ID           `json:"revealed"`
	Influence []string            `json:"influence"`
	Buildings []PersistedBuilding `json:"buildings"`

	NCampActions       int  `json:"nCampActions,omitempty"`
	PerformedCraftsman bool `json:"performedCraftsman,omitempty"`
}

// PersistedState is the single JSON document for a game. Replaying the
// history against a fresh game with the same seed reproduces the zone
// fields byte for byte; they are persisted anyway so the document is
// inspectable without an engine.
type PersistedState struct {
	Version     int               `json:"version"`
	Seed        int64             `json:"seed"`
	Settings    GameSettings      `json:"settings"`
	Players     []PersistedPlayer `json:"players"`
	Library     []card.ID         `json:"library"`
	Jacks       int               `json:"jacks"`
	Pool        []card.ID         `json:"pool"`
	Foundations map[string]int    `json:"foundations"`
	Expected    []Expected        `json:"expected"`

	Leader  int    `json:"leader"`
	RoleLed string `json:"roleLed,omitempty"`
	Turn    int    `json:"turn"`

	Demander           int   `json:"demander,omitempty"`
	PendingGives       int   `json:"pendingGives,omitempty"`
	PendingFollows     int   `json:"pendingFollows,omitempty"`
	Followers          []int `json:"followers,omitempty"`
	EndOfTurnScheduled bool  `json:"endOfTurnScheduled,omitempty"`

	GameOver bool  `json:"gameOver,omitempty"`
	Winners  []int `json:"winners,omitempty"`
	Scores   []int `json:"scores,omitempty"`

	History []action.GameAction `json:"history"`
}

// Persist converts the state (without history) to its document form
func (s *GameState) Persist() PersistedState {
	doc := PersistedState{
		Version:            PersistVersion,
		Seed:               s.settings.Seed,
		Settings:           s.settings,
		Library:            s.library.Cards(),
		Jacks:              s.jackPile.Len(),
		Pool:               s.pool.Cards(),
		Foundations:        map[string]int{},
		Expected:           s.ExpectedFrames(),
		Leader:             s.leader,
		RoleLed:            string(s.roleLed),
		Turn:               s.turn,
		Demander:           s.demander,
		PendingGives:       s.pendingGives,
		PendingFollows:     s.pendingFollows,
		Followers:          append([]int{}, s.followers...),
		EndOfTurnScheduled: s.endOfTurnScheduled,
		GameOver:           s.gameOver,
		Winners:            append([]int{}, s.winners...),
		Scores:             append([]int{}, s.scores...),
	}
	for m, n := range s.foundations {
		doc.Foundations[string(m)] = n
	}
	for _, p := range s.players {
		pp := PersistedPlayer{
			Name:               p.Name(),
			Hand:               p.Hand().Cards(),
			Stockpile:          p.Stockpile().Cards(),
			Vault:              p.Vault().Cards(),
			Clientele:          p.Clientele().Cards(),
			Camp:               p.Camp().Cards(),
			Revealed:           p.Revealed().Cards(),
			NCampActions:       p.NCampActions(),
			PerformedCraftsman: p.PerformedCraftsman(),
		}
		for _, m := range p.InfluenceSites() {
			pp.Influence = append(pp.Influence, string(m))
		}
		for _, b := range p.Buildings() {
			pp.Buildings = append(pp.Buildings, PersistedBuilding{
				Foundation: b.Foundation(),
				Site:       string(b.Site()),
				Materials:  b.Materials().Cards(),
				Complete:   b.IsComplete(),
				Shared:     b.IsShared(),
			})
		}
		doc.Players = append(doc.Players, pp)
	}
	return doc
}

// Save serializes the game, including its action history
func (g *Game) Save() ([]byte, error) {
	doc := g.state.Persist()
	doc.History = g.History()
	return json.MarshalIndent(doc, "", "  ")
}

// Load reconstructs a game by replaying the persisted history against a
// fresh game built from the persisted settings. The zone fields of the
// document are authoritative only as a cross-check.
func Load(data []byte, opts ...Option) (*Game, error) {
	var doc PersistedState
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Version != PersistVersion {
		return nil, fmt.Errorf("unsupported persisted version %d", doc.Version)
	}
	return Replay(doc.Settings, doc.History, opts...)
}

// Replay applies a history to a fresh game. It stops at the first
// rejected action.
func Replay(settings GameSettings, history []action.GameAction, opts ...Option) (*Game, error) {
	g, err := NewGame(settings, opts...)
	if err != nil {
		return nil, err
	}
	for i, a := range history {
		if err := g.Handle(a); err != nil {
			return nil, fmt.Errorf("replay rejected action %d (%s): %w", i, a.Kind, err)
		}
	}
	return g, nil
}

// Fingerprint returns a canonical byte form of the state, used by tests
// to assert that rejected actions leave the state bit-identical
func (s *GameState) Fingerprint() ([]byte, error) {
	return json.Marshal(s.Persist())
}
