package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/player"
	"glory-to-rome-backend/internal/game/zone"
)

// handlePatronFromPool resolves one Patron action's pool hire. Payload:
// (pool card or null to skip). The Bar and Aqueduct options queue after
// the pool hire, each once per Patron action.
func (s *GameState) handlePatronFromPool(a action.GameAction) error {
	id, err := a.OptionalCard(0)
	if err != nil {
		return payloadErrf("%v", err)
	}

	if id != nil {
		if !s.pool.Contains(*id) {
			return payloadErrf("card %s is not in the pool", *id)
		}
		if err := s.hireClient(a.Player, *id, s.pool); err != nil {
			return err
		}
	}

	extras := []Expected{}
	if s.hasPower(a.Player, "Bar") {
		extras = append(extras, Expected{Kind: action.PatronFromHand, Player: a.Player})
	}
	if s.hasPower(a.Player, "Aqueduct") {
		extras = append(extras, Expected{Kind: action.PatronFromDeck, Player: a.Player})
	}
	s.pushFront(extras...)
	return nil
}

// handlePatronFromHand resolves the Bar's hand hire. Payload:
// (hand card or null to skip).
func (s *GameState) handlePatronFromHand(a action.GameAction) error {
	id, err := a.OptionalCard(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	if id == nil {
		return nil
	}
	p := s.players[a.Player]
	if !p.Hand().Contains(*id) {
		return payloadErrf("card %s is not in hand", *id)
	}
	if id.IsJack() {
		return ruleErrf("a Jack cannot be hired as a client")
	}
	return s.hireClient(a.Player, *id, p.Hand())
}

// handlePatronFromDeck resolves the Aqueduct's sight-unseen deck hire.
// Payload: (take).
func (s *GameState) handlePatronFromDeck(a action.GameAction) error {
	take, err := a.Bool(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	if !take {
		return nil
	}
	if !s.canTakeClientele(a.Player) {
		return ruleErrf("clientele limit of %d reached", s.clienteleLimit(a.Player))
	}
	id, ok := s.library.Pop()
	if !ok {
		return &EmptySourceError{Source: "library"}
	}
	s.players[a.Player].Clientele().Add(id)
	s.afterHire(a.Player, id)
	if s.library.Len() == 0 {
		s.endGame()
	}
	return nil
}

// hireClient moves a card into the clientele under the limit check
func (s *GameState) hireClient(idx int, id card.ID, source *zone.Zone) error {
	if !s.canTakeClientele(idx) {
		return ruleErrf("clientele limit of %d reached", s.clienteleLimit(idx))
	}
	if err := player.MoveCard(id, source, s.players[idx].Clientele()); err != nil {
		return payloadErrf("%v", err)
	}
	s.afterHire(idx, id)
	return nil
}

// afterHire triggers the Bath: a newly hired client immediately
// performs its role action once (twice with the Circus Maximus)
func (s *GameState) afterHire(idx int, id card.ID) {
	if s.gameOver || !s.hasPower(idx, "Bath") {
		return
	}
	role := id.Role()
	if role == "" {
		return
	}
	n := 1
	if s.hasPower(idx, "Circus Maximus") {
		n = 2
	}
	frames := []Expected{}
	switch role {
	case card.RoleLegionary:
		frames = append(frames, Expected{Kind: action.Legionary, Player: idx, N: n})
	case card.RoleCraftsman:
		for i := 0; i < n; i++ {
			frames = append(frames, Expected{Kind: action.Craftsman, Player: idx})
		}
	case card.RoleLaborer:
		for i := 0; i < n; i++ {
			frames = append(frames, Expected{Kind: action.Laborer, Player: idx})
		}
	case card.RoleArchitect:
		for i := 0; i < n; i++ {
			frames = append(frames, Expected{Kind: action.Architect, Player: idx})
		}
	case card.RoleMerchant:
		for i := 0; i < n; i++ {
			frames = append(frames, Expected{Kind: action.Merchant, Player: idx})
		}
	case card.RolePatron:
		for i := 0; i < n; i++ {
			frames = append(frames, Expected{Kind: action.PatronFromPool, Player: idx})
		}
	}
	s.pushFront(frames...)
}
