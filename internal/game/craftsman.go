package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/building"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

// handleCraftsman resolves one Craftsman action. Payload:
// (foundationOrBuilding, material or null, site or null).
//
//   - lay a foundation: (card from hand, null, site material)
//   - add a material:   (foundation of an own building, card from hand, null)
//   - pass:             (null, null, null)
func (s *GameState) handleCraftsman(a action.GameAction) error {
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
		if err := s.layFoundation(a.Player, *target, site); err != nil {
			return err
		}
		p.MarkCraftsman()
		return nil
	}

	if !p.Hand().Contains(*material) {
		return payloadErrf("card %s is not in hand", *material)
	}
	if err := s.addToBuilding(a.Player, *target, *material, p.Hand()); err != nil {
		return err
	}
	p.MarkCraftsman()
	return nil
}

// handleUseFountain offers the Fountain's deck draw before a Craftsman
// action. Payload: (use).
func (s *GameState) handleUseFountain(a action.GameAction) error {
	use, err := a.Bool(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	if !use {
		return nil
	}
	id, ok := s.library.Pop()
	if !ok {
		return &EmptySourceError{Source: "library"}
	}
	s.players[a.Player].Hand().Add(id)
	if s.library.Len() == 0 {
		s.endGame()
	}
	return nil
}

// sitePayload reads and validates a site material argument
func (s *GameState) sitePayload(a action.GameAction, slot int) (card.Material, error) {
	name, err := a.String(slot)
	if err != nil {
		return "", payloadErrf("laying a foundation names a site material")
	}
	site := card.Material(name)
	if !card.ValidMaterial(site) {
		return "", payloadErrf("unknown site material %q", name)
	}
	return site, nil
}

// layFoundation moves a hand card onto a new site, decrementing the
// foundation pile. The site must match the card's material; the Statue
// may be laid on any site.
func (s *GameState) layFoundation(idx int, id card.ID, site card.Material) error {
	p := s.players[idx]
	if !p.Hand().Contains(id) {
		return payloadErrf("card %s is not in hand", id)
	}
	if id.IsJack() {
		return ruleErrf("a Jack cannot be laid as a foundation")
	}
	if p.HasBuilding(id.Name) {
		return ruleErrf("an incomplete or completed %s is already in the camp", id.Name)
	}
	if id.Material() != site && id.Name != "Statue" {
		return ruleErrf("%s is a %s building; it cannot be laid on a %s site", id.Name, id.Material(), site)
	}
	if s.foundations[site] <= 0 {
		return &EmptySourceError{Source: string(site) + " foundations"}
	}

	if err := p.Hand().Remove(id); err != nil {
		return payloadErrf("%v", err)
	}
	s.foundations[site]--
	p.AddBuilding(building.New(id, site))
	return nil
}

// addToBuilding places a material card from the given source zone onto
// one of the player's in-progress buildings and resolves completion
func (s *GameState) addToBuilding(idx int, foundation card.ID, material card.ID, source *zone.Zone) error {
	p := s.players[idx]
	b, ok := p.FindBuilding(foundation)
	if !ok {
		return payloadErrf("no building with foundation %s", foundation)
	}
	if material.IsJack() {
		return ruleErrf("a Jack cannot be used as a material")
	}

	allow := s.allowances(idx)
	if err := b.AddMaterial(material, allow); err != nil {
		return ruleErrf("%v", err)
	}
	if err := source.Remove(material); err != nil {
		return payloadErrf("%v", err)
	}

	// Scriptorium: one Marble material completes any building
	if allow.MarbleComplete && material.Material() == card.MaterialMarble {
		b.ForceComplete()
	}
	if b.ReadyToComplete() {
		_ = b.Complete()
	}
	if b.IsComplete() {
		s.onCompleted(idx, b)
	}
	return nil
}

// onCompleted claims the site as influence and checks the completion
// triggers: the Catacomb ends the game immediately, and reaching the
// victory influence threshold ends it at the completion boundary.
func (s *GameState) onCompleted(idx int, b *building.Building) {
	p := s.players[idx]
	p.ClaimSite(b.Site())

	if b.FoundationName() == "Catacomb" {
		s.endGame()
		return
	}
	if t := s.settings.VictoryInfluence; t > 0 && p.Influence() >= t {
		s.endGame()
	}
}
