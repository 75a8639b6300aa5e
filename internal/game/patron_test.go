package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
)

func TestPatronHiresFromPool(t *testing.T) {
	g := twoPlayerLead(t, card.RolePatron, [2][]string{}, [2][]string{})
	p1 := g.State().Players()[0]
	g.State().Pool().SetContent(cs("Latrine#0"))

	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0, c("Latrine#0"))))

	assert.True(t, p1.Clientele().Contains(c("Latrine#0")))
	assert.Equal(t, 0, g.State().Pool().Len())
}

func TestPatronSkip(t *testing.T) {
	g := twoPlayerLead(t, card.RolePatron, [2][]string{}, [2][]string{})

	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0, nil)))
	assert.Equal(t, action.ThinkerOrLead, g.ExpectedAction())
}

func TestPatronRejectsOverClienteleLimit(t *testing.T) {
	g := twoPlayerLead(t, card.RolePatron, [2][]string{}, [2][]string{})
	p1 := g.State().Players()[0]
	// Limit is 2 at zero influence
	p1.Clientele().SetContent(cs("Dock#0", "Market#0"))
	g.State().Pool().SetContent(cs("Latrine#0"))

	assertRejected(t, g, action.New(action.PatronFromPool, 0, c("Latrine#0")), "RuleViolation")
}

func TestInsulaRaisesClienteleLimit(t *testing.T) {
	g := twoPlayerLead(t, card.RolePatron, [2][]string{}, [2][]string{{"Insula"}, {}})
	p1 := g.State().Players()[0]
	p1.Clientele().SetContent(cs("Dock#0", "Market#0"))
	g.State().Pool().SetContent(cs("Latrine#0"))

	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0, c("Latrine#0"))))
	assert.Equal(t, 3, p1.Clientele().Len())
}

func TestBarHiresFromHand(t *testing.T) {
	g := twoPlayerLead(t, card.RolePatron, [2][]string{}, [2][]string{{"Bar"}, {}})
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Latrine#0"))

	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0, nil)))
	assert.Equal(t, action.PatronFromHand, g.ExpectedAction())

	require.NoError(t, g.Handle(action.New(action.PatronFromHand, 0, c("Latrine#0"))))
	assert.True(t, p1.Clientele().Contains(c("Latrine#0")))
}

func TestAqueductHiresFromDeck(t *testing.T) {
	g := twoPlayerLead(t, card.RolePatron, [2][]string{}, [2][]string{{"Aqueduct"}, {}})
	p1 := g.State().Players()[0]
	libraryBefore := g.State().Library().Len()

	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0, nil)))
	assert.Equal(t, action.PatronFromDeck, g.ExpectedAction())

	require.NoError(t, g.Handle(action.New(action.PatronFromDeck, 0, true)))
	assert.Equal(t, 1, p1.Clientele().Len())
	assert.Equal(t, libraryBefore-1, g.State().Library().Len())
}

func TestBathClientActsImmediately(t *testing.T) {
	g := twoPlayerLead(t, card.RolePatron, [2][]string{}, [2][]string{{"Bath"}, {}})
	// A Rubble client is a Laborer: hiring it queues a Laborer action
	g.State().Pool().SetContent(cs("Latrine#0", "Insula#0"))

	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0, c("Latrine#0"))))
	assert.Equal(t, action.Laborer, g.ExpectedAction())
	assert.Equal(t, 0, g.ExpectedPlayer())

	require.NoError(t, g.Handle(action.New(action.Laborer, 0, c("Insula#0"), nil)))
	assert.True(t, g.State().Players()[0].Stockpile().Contains(c("Insula#0")))
}

func TestPatronRejectsJackFromHand(t *testing.T) {
	g := twoPlayerLead(t, card.RolePatron, [2][]string{}, [2][]string{{"Bar"}, {}})
	g.State().Players()[0].Hand().SetContent(cs("Jack#0"))

	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0, nil)))
	assertRejected(t, g, action.New(action.PatronFromHand, 0, c("Jack#0")), "RuleViolation")
}
