package dto

import (
	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/card"
)

// PlayerView is one player's state as seen by a viewer. Hidden zones
// (another player's hand and vault) collapse to counts; the rules core
// itself never conceals anything, view projection happens here.
type PlayerView struct {
	Name      string         `json:"name"`
	Hand      []string       `json:"hand,omitempty"`
	HandCount int            `json:"handCount"`
	JackCount int            `json:"jackCount"`
	Stockpile []string       `json:"stockpile"`
	Vault     []string       `json:"vault,omitempty"`
	VaultSize int            `json:"vaultSize"`
	Clientele []string       `json:"clientele"`
	Camp      []string       `json:"camp"`
	Revealed  []string       `json:"revealed"`
	Influence int            `json:"influence"`
	Buildings []BuildingView `json:"buildings"`
}

// BuildingView is the serialized form of one building
type BuildingView struct {
	Foundation string   `json:"foundation"`
	Site       string   `json:"site"`
	Materials  []string `json:"materials"`
	Complete   bool     `json:"complete"`
	Shared     bool     `json:"shared,omitempty"`
}

// GameView is the full client-facing projection of a game
type GameView struct {
	GameID         string         `json:"gameId"`
	Turn           int            `json:"turn"`
	Leader         int            `json:"leader"`
	RoleLed        string         `json:"roleLed,omitempty"`
	LibrarySize    int            `json:"librarySize"`
	JackPileSize   int            `json:"jackPileSize"`
	Pool           []string       `json:"pool"`
	Foundations    map[string]int `json:"foundations"`
	Players        []PlayerView   `json:"players"`
	ExpectedAction string         `json:"expectedAction"`
	ExpectedPlayer int            `json:"expectedPlayer"`
	GameOver       bool           `json:"gameOver"`
	Winners        []int          `json:"winners,omitempty"`
	Scores         []int          `json:"scores,omitempty"`
}

// NewGameView projects a snapshot for one viewer. A negative viewer
// index produces the omniscient view (CLI, replay debugging).
func NewGameView(gameID string, g *game.Game, viewer int) GameView {
	s := g.Snapshot()
	view := GameView{
		GameID:         gameID,
		Turn:           s.Turn(),
		Leader:         s.Leader(),
		RoleLed:        string(s.RoleLed()),
		LibrarySize:    s.Library().Len(),
		JackPileSize:   s.JackPile().Len(),
		Pool:           cardNames(s.Pool().Cards()),
		Foundations:    map[string]int{},
		ExpectedAction: string(g.ExpectedAction()),
		ExpectedPlayer: g.ExpectedPlayer(),
		GameOver:       s.IsOver(),
		Winners:        s.Winners(),
		Scores:         s.Scores(),
	}
	for m, n := range s.Foundations() {
		view.Foundations[string(m)] = n
	}
	for idx, p := range s.Players() {
		omniscient := viewer < 0 || viewer == idx
		pv := PlayerView{
			Name:      p.Name(),
			HandCount: p.Hand().Len(),
			JackCount: p.Hand().CountByName(card.JackName),
			Stockpile: cardNames(p.Stockpile().Cards()),
			VaultSize: p.Vault().Len(),
			Clientele: cardNames(p.Clientele().Cards()),
			Camp:      cardNames(p.Camp().Cards()),
			Revealed:  cardNames(p.Revealed().Cards()),
			Influence: p.Influence(),
		}
		if omniscient {
			pv.Hand = cardNames(p.Hand().Cards())
			pv.Vault = cardNames(p.Vault().Cards())
		}
		for _, b := range p.Buildings() {
			pv.Buildings = append(pv.Buildings, BuildingView{
				Foundation: b.Foundation().String(),
				Site:       string(b.Site()),
				Materials:  cardNames(b.Materials().Cards()),
				Complete:   b.IsComplete(),
				Shared:     b.IsShared(),
			})
		}
		view.Players = append(view.Players, pv)
	}
	return view
}

func cardNames(ids []card.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
