package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
)

func TestLeadRoleWithOrdersCard(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Latrine#0"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleLaborer, 1, c("Latrine#0"))))

	assert.Equal(t, card.RoleLaborer, g.State().RoleLed())
	assert.Equal(t, 1, p1.NCampActions())
	assert.True(t, p1.Camp().Contains(c("Latrine#0")))
	assert.False(t, p1.Hand().Contains(c("Latrine#0")))
	assert.Equal(t, action.FollowRole, g.ExpectedAction())
	assert.Equal(t, 1, g.ExpectedPlayer())
}

func TestLeadRoleWithJack(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Jack#0"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleLaborer, 1, c("Jack#0"))))

	assert.Equal(t, card.RoleLaborer, g.State().RoleLed())
	assert.True(t, p1.Camp().Contains(c("Jack#0")))
	assert.Equal(t, action.FollowRole, g.ExpectedAction())
}

func TestLeadByPetition(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Road#0", "Road#1", "Road#2"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleCraftsman, 1,
		c("Road#0"), c("Road#1"), c("Road#2"))))

	assert.Equal(t, card.RoleCraftsman, g.State().RoleLed())
	assert.Equal(t, 3, p1.Camp().Len())
	assert.Equal(t, 0, p1.Hand().Len())
	assert.Equal(t, action.FollowRole, g.ExpectedAction())
}

func TestLeadPetitionOfTwoRequiresCircus(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Road#0", "Road#1"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	assertRejected(t, g, action.New(action.LeadRole, 0, card.RoleCraftsman, 1,
		c("Road#0"), c("Road#1")), "RuleViolation")

	p1.AddBuilding(completed("Circus"))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleCraftsman, 1,
		c("Road#0"), c("Road#1"))))
	assert.Equal(t, card.RoleCraftsman, g.State().RoleLed())
}

func TestLeadRejectsCardNotInHand(t *testing.T) {
	g := newTwoPlayer(t)

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	assertRejected(t, g, action.New(action.LeadRole, 0, card.RoleLaborer, 1, c("Latrine#0")), "IllegalPayload")
}

func TestLeadRejectsWrongRoleCard(t *testing.T) {
	g := newTwoPlayer(t)
	g.State().Players()[0].Hand().SetContent(cs("Atrium#0"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	assertRejected(t, g, action.New(action.LeadRole, 0, card.RoleLaborer, 1, c("Atrium#0")), "RuleViolation")
}

func TestLeadMultipleActionsRequiresPalace(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.Hand().SetContent(cs("Latrine#0", "Latrine#1"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	assertRejected(t, g, action.New(action.LeadRole, 0, card.RoleLaborer, 2,
		c("Latrine#0"), c("Latrine#1")), "RuleViolation")

	p1.AddBuilding(completed("Palace"))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleLaborer, 2,
		c("Latrine#0"), c("Latrine#1"))))
	assert.Equal(t, 2, p1.NCampActions())
}

func TestLeadRejectsInflatedActionCount(t *testing.T) {
	g := newTwoPlayer(t)
	p1 := g.State().Players()[0]
	p1.AddBuilding(completed("Palace"))
	p1.Hand().SetContent(cs("Latrine#0"))

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	assertRejected(t, g, action.New(action.LeadRole, 0, card.RoleLaborer, 2, c("Latrine#0")), "RuleViolation")
}

func TestFollowWithMatchingCard(t *testing.T) {
	g := newTwoPlayer(t)
	p2 := g.State().Players()[1]

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	g.State().Players()[0].Hand().SetContent(cs("Jack#0"))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleLaborer, 1, c("Jack#0"))))

	p2.Hand().SetContent(cs("Latrine#0"))
	require.NoError(t, g.Handle(action.New(action.FollowRole, 1, false, 1, c("Latrine#0"))))

	assert.Equal(t, action.Laborer, g.ExpectedAction())
	assert.Equal(t, 0, g.ExpectedPlayer())
	assert.True(t, p2.Camp().Contains(c("Latrine#0")))
	assert.Equal(t, 1, p2.NCampActions())
}

func TestFollowByThinking(t *testing.T) {
	g := newTwoPlayer(t)

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	g.State().Players()[0].Hand().SetContent(cs("Jack#0"))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleLaborer, 1, c("Jack#0"))))

	require.NoError(t, g.Handle(action.New(action.FollowRole, 1, true)))

	assert.Equal(t, action.ThinkerType, g.ExpectedAction())
	assert.Equal(t, 1, g.ExpectedPlayer())
	assert.Equal(t, 0, g.State().Players()[1].NCampActions())
}

func TestFollowByPetitionOfDifferentRole(t *testing.T) {
	g := newTwoPlayer(t)
	p2 := g.State().Players()[1]

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	g.State().Players()[0].Hand().SetContent(cs("Jack#0"))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleLaborer, 1, c("Jack#0"))))

	// Three Brick cards petition to follow Laborer
	p2.Hand().SetContent(cs("Atrium#0", "School#0", "School#1"))
	require.NoError(t, g.Handle(action.New(action.FollowRole, 1, false, 1,
		c("Atrium#0"), c("School#0"), c("School#1"))))

	assert.Equal(t, action.Laborer, g.ExpectedAction())
	assert.Equal(t, 3, p2.Camp().Len())
	assert.Equal(t, 0, p2.Hand().Len())
}

func TestFollowRejectsWrongRole(t *testing.T) {
	g := newTwoPlayer(t)
	p2 := g.State().Players()[1]

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	g.State().Players()[0].Hand().SetContent(cs("Jack#0"))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleLaborer, 1, c("Jack#0"))))

	p2.Hand().SetContent(cs("Atrium#0"))
	assertRejected(t, g, action.New(action.FollowRole, 1, false, 1, c("Atrium#0")), "RuleViolation")
}

func TestFollowRejectsShortPetition(t *testing.T) {
	g := newTwoPlayer(t)
	p2 := g.State().Players()[1]

	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, false)))
	g.State().Players()[0].Hand().SetContent(cs("Jack#0"))
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, card.RoleLaborer, 1, c("Jack#0"))))

	p2.Hand().SetContent(cs("Latrine#0", "Road#0", "Insula#0"))
	assertRejected(t, g, action.New(action.FollowRole, 1, false, 1,
		c("Latrine#0"), c("Insula#0")), "RuleViolation")
}

func TestTurnAdvancesAfterRoleActions(t *testing.T) {
	g := twoPlayerLead(t, card.RoleLaborer, [2][]string{}, [2][]string{})

	assert.Equal(t, action.Laborer, g.ExpectedAction())
	require.NoError(t, g.Handle(action.New(action.Laborer, 0, nil, nil)))

	s := g.State()
	assert.Equal(t, action.ThinkerOrLead, g.ExpectedAction())
	assert.Equal(t, 1, g.ExpectedPlayer())
	assert.Equal(t, 1, s.Leader())
	assert.Equal(t, 2, s.Turn())
	assert.Equal(t, card.Role(""), s.RoleLed())
	assert.Equal(t, 0, s.Players()[0].Camp().Len())
	// The led Jack returns to the jack pile at cleanup
	assert.True(t, s.JackPile().Contains(c("Jack#5")))
}

func TestClienteleGrantBonusActions(t *testing.T) {
	// A Rubble client matches a Laborer lead: the leader gets two
	// Laborer actions
	g := twoPlayerLead(t, card.RoleLaborer, [2][]string{{"Latrine"}, {}}, [2][]string{})

	assert.Equal(t, action.Laborer, g.ExpectedAction())
	require.NoError(t, g.Handle(action.New(action.Laborer, 0, nil, nil)))
	assert.Equal(t, action.Laborer, g.ExpectedAction())
	require.NoError(t, g.Handle(action.New(action.Laborer, 0, nil, nil)))

	assert.Equal(t, action.ThinkerOrLead, g.ExpectedAction())
}

func TestTurnOrderCyclesThroughAllPlayers(t *testing.T) {
	g, err := newNPlayer(3)
	require.NoError(t, err)

	for turn := 0; turn < 6; turn++ {
		leader := g.ExpectedPlayer()
		assert.Equal(t, turn%3, leader)
		require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, leader, true)))
		require.NoError(t, g.Handle(action.New(action.ThinkerType, leader, false)))
	}
}
