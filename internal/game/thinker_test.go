package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
)

func TestNewGameExpectsThinkerOrLead(t *testing.T) {
	g := newTwoPlayer(t)

	assert.Equal(t, action.ThinkerOrLead, g.ExpectedAction())
	assert.Equal(t, 0, g.ExpectedPlayer())
}

func TestNewGameDealsCommonPiles(t *testing.T) {
	g := newTwoPlayer(t)
	s := g.State()

	assert.Equal(t, card.DeckSize()-5, s.Library().Len())
	assert.Equal(t, 5, s.Pool().Len())
	assert.Equal(t, 6, s.JackPile().Len())
	for _, m := range card.Materials() {
		assert.Equal(t, 2, s.FoundationCount(m), "material %s", m)
	}
}

func TestChoosingThinkerExpectsThinkerType(t *testing.T) {
	g := newTwoPlayer(t)

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	assert.Equal(t, action.ThinkerType, g.ExpectedAction())
	assert.Equal(t, 0, g.ExpectedPlayer())
}

func TestChoosingLeadExpectsLeadRole(t *testing.T) {
	g := newTwoPlayer(t)

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	assert.Equal(t, action.LeadRole, g.ExpectedAction())
}

func TestThinkerForFiveFromEmptyHand(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, false)))

	assert.Equal(t, 5, p1.Hand().Len())
	assert.Equal(t, action.ThinkerOrLead, g.ExpectedAction())
	assert.Equal(t, 1, g.ExpectedPlayer())
}

func TestThinkerForOneAtHandLimit(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Latrine#0", "Latrine#1", "Latrine#2", "Insula#0", "Insula#1"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, false)))

	assert.Equal(t, 6, p1.Hand().Len())
	assert.Equal(t, 0, p1.Hand().CountByName(card.JackName))
}

func TestThinkerRefillsPartialHand(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Latrine#0"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, false)))

	assert.Equal(t, 5, p1.Hand().Len())
}

func TestThinkerForJack(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, true)))

	assert.Equal(t, 1, p1.Hand().Len())
	assert.Equal(t, 1, p1.Hand().CountByName(card.JackName))
	assert.Equal(t, 5, g.State().JackPile().Len())
}

func TestThinkerForJackWithFullHand(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Latrine#0", "Latrine#1", "Latrine#2", "Insula#0", "Insula#1"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, true)))

	assert.Equal(t, 6, p1.Hand().Len())
	assert.Equal(t, 1, p1.Hand().CountByName(card.JackName))
}

func TestThinkerForJackFromEmptyPileRejected(t *testing.T) {
	g := newTwoPlayer(t)
	g.State().JackPile().SetContent(nil)

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	assertRejected(t, g, action.New(action.ThinkerType, 0, true), "EmptySource")
}

func TestThinkerManyTimesAlternating(t *testing.T) {
	g := newTwoPlayer(t)

	for i := 0; i < 10; i++ {
		for p := 0; p < 2; p++ {
			require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, p, true)))
			require.NoError(t, g.Handle(action.New(action.ThinkerType, p, false)))
		}
	}

	// First thinker fills to five, each later one draws exactly one
	assert.Equal(t, 14, g.State().Players()[0].Hand().Len())
	assert.Equal(t, 14, g.State().Players()[1].Hand().Len())
}

func TestJackPileDrains(t *testing.T) {
	g := newTwoPlayer(t)

	for i := 0; i < 3; i++ {
		for p := 0; p < 2; p++ {
			require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, p, true)))
			require.NoError(t, g.Handle(action.New(action.ThinkerType, p, true)))
		}
	}

	assert.Equal(t, 0, g.State().JackPile().Len())
	assert.Equal(t, 3, g.State().Players()[0].Hand().Len())
	assert.Equal(t, 3, g.State().Players()[1].Hand().Len())
}

func TestOutOfTurnSubmissionRejected(t *testing.T) {
	g := newTwoPlayer(t)

	assertRejected(t, g, action.New(action.ThinkerOrLead, 1, true), "UnexpectedAction")
	assertRejected(t, g, action.New(action.Laborer, 0, nil, nil), "UnexpectedAction")
	assertRejected(t, g, action.New(action.SkipThinker, 0), "UnexpectedAction")
}

func TestLatrineDiscardBeforeThinker(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.AddBuilding(completed("Latrine"))
	p1.Hand().SetContent(cs("Insula#0"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	assert.Equal(t, action.UseLatrine, g.ExpectedAction())

	require.NoError(t, g.Handle(action.New(action.UseLatrine, 0, c("Insula#0"))))
	assert.True(t, g.State().Pool().Contains(c("Insula#0")))

	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, false)))
	assert.Equal(t, 5, p1.Hand().Len())
}

func TestVomitoriumDiscardsWholeHand(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.AddBuilding(completed("Vomitorium"))
	p1.Hand().SetContent(cs("Insula#0", "Latrine#0"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	assert.Equal(t, action.UseVomitorium, g.ExpectedAction())

	require.NoError(t, g.Handle(action.New(action.UseVomitorium, 0, true)))
	assert.Equal(t, 0, p1.Hand().Len())

	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, false)))
	assert.Equal(t, 5, p1.Hand().Len())
}
