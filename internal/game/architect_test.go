package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
)

func TestArchitectAddsFromStockpile(t *testing.T) {
	// Concrete client (Bridge) grants a second Architect action
	g := twoPlayerLead(t, card.RoleArchitect, [2][]string{{"Bridge"}, {}}, [2][]string{})
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Latrine#0"))
	p1.Stockpile().SetContent(cs("Road#0"))

	require.NoError(t, g.Handle(action.New(action.Architect, 0, c("Latrine#0"), nil, card.MaterialRubble)))
	require.NoError(t, g.Handle(action.New(action.Architect, 0, c("Latrine#0"), c("Road#0"), nil)))

	b := p1.Buildings()[0]
	assert.True(t, b.IsComplete())
	assert.Equal(t, 0, p1.Stockpile().Len())
	assert.Equal(t, 1, p1.Influence())
}

func TestArchitectRejectsHandMaterial(t *testing.T) {
	g := twoPlayerLead(t, card.RoleArchitect, [2][]string{{"Bridge"}, {}}, [2][]string{})
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Latrine#0", "Road#0"))

	require.NoError(t, g.Handle(action.New(action.Architect, 0, c("Latrine#0"), nil, card.MaterialRubble)))
	// The material must come from the stockpile, not the hand
	assertRejected(t, g, action.New(action.Architect, 0, c("Latrine#0"), c("Road#0"), nil), "IllegalPayload")
}

func TestArchwayTakesMaterialFromPool(t *testing.T) {
	g := twoPlayerLead(t, card.RoleArchitect, [2][]string{{"Bridge"}, {}}, [2][]string{{"Archway"}, {}})
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Latrine#0"))
	g.State().Pool().SetContent(cs("Road#0"))

	require.NoError(t, g.Handle(action.New(action.Architect, 0, c("Latrine#0"), nil, card.MaterialRubble)))
	require.NoError(t, g.Handle(action.New(action.Architect, 0, c("Latrine#0"), c("Road#0"), nil, true)))

	assert.True(t, p1.Buildings()[0].IsComplete())
	assert.Equal(t, 0, g.State().Pool().Len())
}

func TestArchwayRequiredForPoolMaterial(t *testing.T) {
	g := twoPlayerLead(t, card.RoleArchitect, [2][]string{{"Bridge"}, {}}, [2][]string{})
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Latrine#0"))
	g.State().Pool().SetContent(cs("Road#0"))

	require.NoError(t, g.Handle(action.New(action.Architect, 0, c("Latrine#0"), nil, card.MaterialRubble)))
	assertRejected(t, g, action.New(action.Architect, 0, c("Latrine#0"), c("Road#0"), nil, true), "RuleViolation")
}

func TestVillaCompletesWithSingleMaterial(t *testing.T) {
	g := twoPlayerLead(t, card.RoleArchitect, [2][]string{{"Bridge"}, {}}, [2][]string{})
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Villa#0"))
	p1.Stockpile().SetContent(cs("Garden#0"))

	require.NoError(t, g.Handle(action.New(action.Architect, 0, c("Villa#0"), nil, card.MaterialStone)))
	require.NoError(t, g.Handle(action.New(action.Architect, 0, c("Villa#0"), c("Garden#0"), nil)))

	b, ok := p1.FindBuilding(c("Villa#0"))
	require.True(t, ok)
	assert.True(t, b.IsComplete())
	assert.Equal(t, 1, b.Materials().Len())
}

func TestStairwaySharesOpponentBuildingPower(t *testing.T) {
	g := twoPlayerLead(t, card.RoleArchitect, [2][]string{}, [2][]string{{"Stairway"}, {"Palisade"}})
	p1 := g.State().Players()[0]
	p1.Stockpile().SetContent(cs("Dock#0"))

	// The Architect camp action passes, then the Stairway option fires
	require.NoError(t, g.Handle(action.New(action.Architect, 0, nil, nil, nil)))
	assert.Equal(t, action.Stairway, g.ExpectedAction())

	require.NoError(t, g.Handle(action.New(action.Stairway, 0, 1, c("Palisade#0"), c("Dock#0"))))

	p2 := g.State().Players()[1]
	b, ok := p2.FindBuilding(c("Palisade#0"))
	require.True(t, ok)
	assert.True(t, b.IsShared())
	assert.True(t, b.Materials().Contains(c("Dock#0")))
	assert.Equal(t, 0, p1.Stockpile().Len())
}

func TestStairwaySkip(t *testing.T) {
	g := twoPlayerLead(t, card.RoleArchitect, [2][]string{}, [2][]string{{"Stairway"}, {}})

	require.NoError(t, g.Handle(action.New(action.Architect, 0, nil, nil, nil)))
	require.NoError(t, g.Handle(action.New(action.Stairway, 0, nil)))
	assert.Equal(t, action.ThinkerOrLead, g.ExpectedAction())
}
