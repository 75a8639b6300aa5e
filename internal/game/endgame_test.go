package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
)

func TestEmptyLibraryEndsGame(t *testing.T) {
	g := newTwoPlayer(t)
	// Leave four cards: the opening Thinker drains the library
	lib := g.State().Library().Cards()
	g.State().Library().SetContent(lib[:4])

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, false)))

	assert.True(t, g.State().IsOver())
	assert.Equal(t, 4, g.State().Players()[0].Hand().Len(), "truncated draw keeps what the library offered")
	assertRejected(t, g, action.New(action.ThinkerOrLead, 1, true), "GameOver")
}

func TestEmptyLibraryScoresAndPicksWinner(t *testing.T) {
	g := newTwoPlayer(t)
	p1, p2 := g.State().Players()[0], g.State().Players()[1]

	p1.ClaimSite(card.MaterialMarble) // 3 influence
	p2.ClaimSite(card.MaterialWood)   // 1 influence
	p2.Vault().SetContent(cs("Dock#0")) // 1 point + Wood majority bonus

	g.State().Library().SetContent(nil)
	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, false)))

	require.True(t, g.State().IsOver())
	scores := g.State().Scores()
	assert.Equal(t, 3, scores[0])
	assert.Equal(t, 5, scores[1]) // 1 influence + 1 vault + 3 majority
	assert.Equal(t, []int{1}, g.State().Winners())
}

func TestStatueAndWallBonuses(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.AddBuilding(completed("Statue"))
	p1.AddBuilding(completed("Wall"))
	p1.Stockpile().SetContent(cs("Road#0", "Road#1", "Insula#0", "Insula#1", "Bar#0"))

	g.State().Library().SetContent(nil)
	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, false)))

	// Statue +3, Wall: five stockpile cards give +2
	assert.Equal(t, 5, g.State().Scores()[0])
}

func TestForumWinsOutright(t *testing.T) {
	g := newTwoPlayer(t)
	p1, p2 := g.State().Players()[0], g.State().Players()[1]

	p2.ClaimSite(card.MaterialMarble)
	p2.ClaimSite(card.MaterialMarble) // p2 leads on points

	p1.AddBuilding(completed("Forum"))
	// One client of each role
	p1.Clientele().SetContent(cs("Latrine#0", "Dock#0", "Bridge#0", "Sewer#0", "Atrium#0", "Temple#0"))

	g.State().Library().SetContent(nil)
	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 0, false)))

	assert.Equal(t, []int{0}, g.State().Winners())
}

func TestCatacombCompletionEndsGame(t *testing.T) {
	// Two Wood clients give three Craftsman actions: lay the Catacomb,
	// then complete it with one Marble through the Scriptorium
	g := twoPlayerLead(t, card.RoleCraftsman, [2][]string{{"Dock", "Market"}, {}}, [2][]string{})
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Catacomb#0", "Sewer#0", "Villa#0"))
	// Stone threshold is 3; use the Scriptorium shortcut instead
	p1.AddBuilding(completed("Scriptorium"))
	p1.Hand().SetContent(cs("Catacomb#0", "Statue#0"))

	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, c("Catacomb#0"), nil, card.MaterialStone)))
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, c("Catacomb#0"), c("Statue#0"), nil)))

	assert.True(t, g.State().IsOver())
}

func TestVictoryInfluenceThresholdEndsGame(t *testing.T) {
	settings := game.DefaultSettings(2, 42)
	settings.VictoryInfluence = 1
	g, err := game.NewGame(settings)
	require.NoError(t, err)

	// A Wood client grants the second Craftsman action needed to lay
	// and complete a Rubble building
	g.State().Players()[0].Clientele().SetContent([]card.ID{{Name: "Dock", Index: 10}})

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	g.State().Players()[0].Hand().SetContent(cs("Jack#5", "Latrine#0", "Road#0"))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleCraftsman, 1, c("Jack#5"))))
	require.NoError(t, g.Handle(action.New(action.FollowRole, 1, true)))
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 1, false)))

	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, c("Latrine#0"), nil, card.MaterialRubble)))
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, c("Latrine#0"), c("Road#0"), nil)))

	assert.True(t, g.State().IsOver())
}
