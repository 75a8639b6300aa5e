package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/player"
)

// handleLegionary resolves a Legionary demand. Payload: (cards...), the
// hand cards revealed as demands. The frame width caps the count at the
// number of Legionary actions earned this turn.
//
// On reveal: matching pool cards move to the demander's stockpile, one
// per revealed card, then every opponent clockwise from the demander
// owes a GIVECARDS response. Immunity never skips the response frame;
// it only lets an empty payload satisfy it.
func (s *GameState) handleLegionary(a action.GameAction, width int) error {
	demands, err := a.Cards(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	if len(demands) == 0 {
		return nil // pass; a player may hold no demandable cards
	}
	if len(demands) > width {
		return ruleErrf("demanding %d cards exceeds the %d Legionary actions earned", len(demands), width)
	}
	p := s.players[a.Player]

	seen := map[card.ID]bool{}
	for _, id := range demands {
		if id.IsJack() {
			return ruleErrf("a Jack cannot be revealed as a demand")
		}
		if seen[id] {
			return payloadErrf("card %s named twice", id)
		}
		seen[id] = true
		if !p.Hand().Contains(id) {
			return payloadErrf("card %s is not in hand", id)
		}
	}

	for _, id := range demands {
		if err := player.MoveCard(id, p.Hand(), p.Revealed()); err != nil {
			return payloadErrf("%v", err)
		}
	}

	// Automatic pool take, one card per revealed demand
	for _, id := range demands {
		if match, ok := s.pool.FirstByMaterial(id.Material()); ok {
			if err := player.MoveCard(match, s.pool, p.Stockpile()); err != nil {
				return payloadErrf("%v", err)
			}
		}
	}

	s.demander = a.Player
	opponents := s.clockwiseFrom(a.Player)
	s.pendingGives = len(opponents)
	frames := make([]Expected, len(opponents))
	for i, idx := range opponents {
		frames[i] = Expected{Kind: action.GiveCards, Player: idx}
	}
	s.pushFront(frames...)
	return nil
}

// handleGiveCards resolves one opponent's surrender. Payload: (cards...)
// from the target's hand.
//
// A non-immune target must give, per demanded material, as many
// matching hand cards as the demand width allows and the hand holds. An
// immune target (Wall; Palisade unless pierced by the demander's
// Bridge) may give an empty payload, or surrender voluntarily. Against
// a non-immune target, the demander's Bridge also takes one matching
// stockpile card and a Coliseum takes one matching client into the
// vault.
func (s *GameState) handleGiveCards(a action.GameAction) error {
	given, err := a.Cards(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	target := s.players[a.Player]
	demanderP := s.players[s.demander]

	demanded := s.demandedMaterials()
	immune := s.givesLegionaryImmunity(a.Player, s.demander)

	seen := map[card.ID]bool{}
	givenByMat := map[card.Material]int{}
	for _, id := range given {
		if seen[id] {
			return payloadErrf("card %s named twice", id)
		}
		seen[id] = true
		if !target.Hand().Contains(id) {
			return payloadErrf("card %s is not in hand", id)
		}
		if id.IsJack() {
			return ruleErrf("a Jack cannot be surrendered")
		}
		givenByMat[id.Material()]++
	}
	for m, n := range givenByMat {
		if n > demanded[m] {
			return ruleErrf("%d %s cards surrendered but only %d demanded", n, m, demanded[m])
		}
	}
	if !immune {
		for m, width := range demanded {
			have := s.handCountByMaterial(target, m)
			required := width
			if have < required {
				required = have
			}
			if givenByMat[m] < required {
				return ruleErrf("demand for %s requires %d matching cards from hand", m, required)
			}
		}
	}

	for _, id := range given {
		if err := player.MoveCard(id, target.Hand(), demanderP.Stockpile()); err != nil {
			return payloadErrf("%v", err)
		}
	}

	if !immune {
		// Bridge: one matching stockpile card
		if s.hasPower(s.demander, "Bridge") {
			if id, ok := s.firstMatching(target.Stockpile().Cards(), demanded); ok {
				if err := player.MoveCard(id, target.Stockpile(), demanderP.Stockpile()); err != nil {
					return payloadErrf("%v", err)
				}
			}
		}
		// Coliseum: one matching client into the vault
		if s.hasPower(s.demander, "Coliseum") {
			if id, ok := s.firstMatching(target.Clientele().Cards(), demanded); ok {
				if err := player.MoveCard(id, target.Clientele(), demanderP.Vault()); err != nil {
					return payloadErrf("%v", err)
				}
			}
		}
	}

	s.pendingGives--
	if s.pendingGives == 0 {
		// The demand is over: revealed cards re-merge into the hand
		for _, id := range demanderP.Revealed().Cards() {
			if err := player.MoveCard(id, demanderP.Revealed(), demanderP.Hand()); err != nil {
				return payloadErrf("%v", err)
			}
		}
		s.demander = 0
	}
	return nil
}

// demandedMaterials returns the demand multiset from the demander's
// revealed cards
func (s *GameState) demandedMaterials() map[card.Material]int {
	demanded := map[card.Material]int{}
	for _, id := range s.players[s.demander].Revealed().Cards() {
		demanded[id.Material()]++
	}
	return demanded
}

func (s *GameState) handCountByMaterial(p *player.Player, m card.Material) int {
	count := 0
	for _, id := range p.Hand().Cards() {
		if id.Material() == m {
			count++
		}
	}
	return count
}

// firstMatching returns the first card whose material appears in the
// demand. The deterministic zone-order tie-break keeps replays stable.
func (s *GameState) firstMatching(cards []card.ID, demanded map[card.Material]int) (card.ID, bool) {
	for _, id := range cards {
		if demanded[id.Material()] > 0 {
			return id, true
		}
	}
	return card.ID{}, false
}
