package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/building"
	"glory-to-rome-backend/internal/game/card"
)

// c parses a card identity, panicking on typos in test data
func c(s string) card.ID {
	id, err := card.Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

func cs(specs ...string) []card.ID {
	out := make([]card.ID, len(specs))
	for i, s := range specs {
		out[i] = c(s)
	}
	return out
}

// newTwoPlayer creates a fresh two-player game with a fixed seed
func newTwoPlayer(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.DefaultSettings(2, 42))
	require.NoError(t, err)
	return g
}

func newNPlayer(n int) (*game.Game, error) {
	return game.NewGame(game.DefaultSettings(n, 42))
}

// completed returns a completed building for power setup. Materials are
// left empty; power predicates only consult the completion flag.
func completed(name string) *building.Building {
	info, ok := card.Lookup(name)
	if !ok {
		panic("unknown building " + name)
	}
	b := building.New(card.ID{Name: name, Index: 0}, info.Material)
	b.ForceComplete()
	return b
}

// twoPlayerLead drives a fresh game to the point where player 0 has led
// the given role with a Jack and player 1 has resolved its follow by
// thinking. The next expected action is the role action for player 0.
// Clientele and completed buildings are installed before the lead so
// they contribute to action scheduling.
func twoPlayerLead(t *testing.T, role card.Role, clientele [2][]string, buildings [2][]string) *game.Game {
	t.Helper()
	g := newTwoPlayer(t)
	players := g.State().Players()

	for idx, names := range clientele {
		cards := make([]card.ID, len(names))
		for i, name := range names {
			cards[i] = card.ID{Name: name, Index: 10 + i}
		}
		players[idx].Clientele().SetContent(cards)
	}
	for idx, names := range buildings {
		for _, name := range names {
			players[idx].AddBuilding(completed(name))
		}
	}

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	require.NoError(t, g.State().JackPile().Remove(c("Jack#5")))
	players[0].Hand().SetContent(cs("Jack#5"))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, role, 1, c("Jack#5"))))
	require.NoError(t, g.Handle(action.New(action.FollowRole, 1, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 1, false)))
	return g
}

// leadWithSettings drives a custom-settings two-player game to the
// point where player 0 has led the role with a Jack and player 1 has
// thought
func leadWithSettings(t *testing.T, settings game.GameSettings, role card.Role) *game.Game {
	t.Helper()
	g, err := game.NewGame(settings)
	require.NoError(t, err)

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	g.State().Players()[0].Hand().SetContent(cs("Jack#5"))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, role, 1, c("Jack#5"))))
	require.NoError(t, g.Handle(action.New(action.FollowRole, 1, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 1, false)))
	return g
}

// assertRejected submits an action that must be rejected, asserts the
// error kind, and verifies the state is bit-identical afterwards
func assertRejected(t *testing.T, g *game.Game, a action.GameAction, wantKind string) {
	t.Helper()
	before, err := g.State().Fingerprint()
	require.NoError(t, err)

	handleErr := g.Handle(a)
	require.Error(t, handleErr)
	assert.Equal(t, wantKind, game.ErrorKind(handleErr))

	after, err := g.State().Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "rejected action mutated state")
}
