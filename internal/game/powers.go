package game

import (
	"glory-to-rome-backend/internal/game/building"
	"glory-to-rome-backend/internal/game/card"
)

// Building powers are evaluated as predicates at decision points rather
// than as special cases spread through the handlers. A power is live
// when the owner completed the building, when the owner's completed
// Gate animates an incomplete Marble building, or when a Stairway made
// someone's completed copy shared with all players.

// hasPower reports whether a player benefits from the named building's
// passive power
func (s *GameState) hasPower(idx int, name string) bool {
	p := s.players[idx]
	for _, b := range p.Buildings() {
		if b.FoundationName() != name {
			continue
		}
		if b.IsComplete() {
			return true
		}
		if b.Site() == card.MaterialMarble && p.HasCompleted("Gate") {
			return true
		}
	}
	for qIdx, q := range s.players {
		if qIdx == idx {
			continue
		}
		for _, b := range q.Buildings() {
			if b.FoundationName() == name && b.IsComplete() && b.IsShared() {
				return true
			}
		}
	}
	return false
}

// allowances returns the site-material relaxations a player enjoys when
// placing materials
func (s *GameState) allowances(idx int) building.Allowances {
	return building.Allowances{
		AnyOnStone:     s.hasPower(idx, "Road"),
		RubbleAnywhere: s.hasPower(idx, "Tower"),
		MarbleComplete: s.hasPower(idx, "Scriptorium"),
	}
}

// handLimit is 5, raised by the Shrine (+2), Tribunal (+2) and
// Temple (+4)
func (s *GameState) handLimit(idx int) int {
	limit := BaseHandLimit
	if s.hasPower(idx, "Shrine") {
		limit += 2
	}
	if s.hasPower(idx, "Tribunal") {
		limit += 2
	}
	if s.hasPower(idx, "Temple") {
		limit += 4
	}
	return limit
}

// vaultLimit is 2 plus influence, raised by the Market (+2)
func (s *GameState) vaultLimit(idx int) int {
	limit := BaseVaultLimit + s.players[idx].Influence()
	if s.hasPower(idx, "Market") {
		limit += 2
	}
	return limit
}

// clienteleLimit is 2 plus influence, raised by the Insula (+2) and
// doubled by the Aqueduct
func (s *GameState) clienteleLimit(idx int) int {
	limit := BaseClienteleLim + s.players[idx].Influence()
	if s.hasPower(idx, "Insula") {
		limit += 2
	}
	if s.hasPower(idx, "Aqueduct") {
		limit *= 2
	}
	return limit
}

// canTakeClientele reports whether one more client fits under the limit
func (s *GameState) canTakeClientele(idx int) bool {
	return s.players[idx].Clientele().Len() < s.clienteleLimit(idx)
}

// givesLegionaryImmunity reports whether a target is immune to a
// demander's Legionary. A Wall always protects; a Palisade protects
// unless the demander's completed Bridge pierces it.
func (s *GameState) givesLegionaryImmunity(target, demander int) bool {
	if s.hasPower(target, "Wall") {
		return true
	}
	if s.hasPower(target, "Palisade") && !s.hasPower(demander, "Bridge") {
		return true
	}
	return false
}
