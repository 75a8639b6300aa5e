package game

import (
	"glory-to-rome-backend/internal/game/action"
)

// handleArchitect resolves one Architect action. Payload:
// (foundationOrBuilding, material or null, site or null, fromPool).
//
// Like the Craftsman, but the added material comes from the stockpile —
// or from the pool with a completed Archway. Foundation laying is still
// from hand. A Villa under construction is completed by a single
// Architect material.
func (s *GameState) handleArchitect(a action.GameAction) error {
	target, err := a.OptionalCard(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	material, err := a.OptionalCard(1)
	if err != nil {
		return payloadErrf("%v", err)
	}

	if target == nil {
		return nil // pass
	}
	p := s.players[a.Player]

	if material == nil {
		site, err := s.sitePayload(a, 2)
		if err != nil {
			return err
		}
		return s.layFoundation(a.Player, *target, site)
	}

	source := p.Stockpile()
	fromPool := false
	if len(a.Args) > 3 {
		fromPool, err = a.Bool(3)
		if err != nil {
			return payloadErrf("%v", err)
		}
	}
	if fromPool {
		if !s.hasPower(a.Player, "Archway") {
			return ruleErrf("taking materials from the pool requires a completed Archway")
		}
		source = s.pool
	}
	if !source.Contains(*material) {
		return payloadErrf("card %s is not in the material source", *material)
	}

	if err := s.addToBuilding(a.Player, *target, *material, source); err != nil {
		return err
	}

	// Villa: a single Architect material completes it
	if b, ok := p.FindBuilding(*target); ok && !b.IsComplete() &&
		b.FoundationName() == "Villa" && b.Materials().Len() >= 1 {
		b.ForceComplete()
		s.onCompleted(a.Player, b)
	}
	return nil
}

// handleStairway resolves the Stairway's post-Architect option: add a
// material from the stockpile to an opponent's completed building,
// making its power available to all players. Payload:
// (targetPlayer or null to skip, foundation, material).
func (s *GameState) handleStairway(a action.GameAction) error {
	if len(a.Args) == 0 || a.Args[0] == nil {
		return nil // skip
	}
	targetIdx, err := a.Int(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	if targetIdx == a.Player {
		return ruleErrf("the Stairway targets an opponent's building")
	}
	target, err := s.playerAt(targetIdx)
	if err != nil {
		return payloadErrf("%v", err)
	}
	foundation, err := a.Card(1)
	if err != nil {
		return payloadErrf("%v", err)
	}
	material, err := a.Card(2)
	if err != nil {
		return payloadErrf("%v", err)
	}

	b, ok := target.FindBuilding(foundation)
	if !ok {
		return payloadErrf("player %d has no building with foundation %s", targetIdx, foundation)
	}
	if !b.IsComplete() {
		return ruleErrf("the Stairway only extends completed buildings")
	}

	p := s.players[a.Player]
	if !p.Stockpile().Contains(material) {
		return payloadErrf("card %s is not in the stockpile", material)
	}
	if !b.Accepts(material.Material(), s.allowances(a.Player)) {
		return ruleErrf("material %s does not match the %s site", material.Material(), b.Site())
	}

	if err := p.Stockpile().Remove(material); err != nil {
		return payloadErrf("%v", err)
	}
	b.Materials().Add(material)
	b.MarkShared()
	return nil
}
