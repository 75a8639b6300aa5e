package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/player"
)

// handleMerchant resolves one Merchant action. Payload:
// (stockpile card or null, hand card or null, fromDeck).
//
// The hand card requires a completed Basilica; the sight-unseen deck
// draw requires a completed Atrium. The vault limit gates the total.
func (s *GameState) handleMerchant(a action.GameAction) error {
	fromStockpile, err := a.OptionalCard(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	fromHand, err := a.OptionalCard(1)
	if err != nil {
		return payloadErrf("%v", err)
	}
	fromDeck := false
	if len(a.Args) > 2 {
		fromDeck, err = a.Bool(2)
		if err != nil {
			return payloadErrf("%v", err)
		}
	}
	p := s.players[a.Player]

	additions := 0
	if fromStockpile != nil {
		if !p.Stockpile().Contains(*fromStockpile) {
			return payloadErrf("card %s is not in the stockpile", *fromStockpile)
		}
		additions++
	}
	if fromHand != nil {
		if !s.hasPower(a.Player, "Basilica") {
			return ruleErrf("moving a hand card to the vault requires a completed Basilica")
		}
		if !p.Hand().Contains(*fromHand) {
			return payloadErrf("card %s is not in hand", *fromHand)
		}
		if fromHand.IsJack() {
			return ruleErrf("a Jack cannot be moved to the vault")
		}
		additions++
	}
	if fromDeck {
		if !s.hasPower(a.Player, "Atrium") {
			return ruleErrf("taking a card from the deck requires a completed Atrium")
		}
		if s.library.Len() == 0 {
			return &EmptySourceError{Source: "library"}
		}
		additions++
	}

	if p.Vault().Len()+additions > s.vaultLimit(a.Player) {
		return ruleErrf("vault limit of %d would be exceeded", s.vaultLimit(a.Player))
	}

	if fromStockpile != nil {
		if err := player.MoveCard(*fromStockpile, p.Stockpile(), p.Vault()); err != nil {
			return payloadErrf("%v", err)
		}
	}
	if fromHand != nil {
		if err := player.MoveCard(*fromHand, p.Hand(), p.Vault()); err != nil {
			return payloadErrf("%v", err)
		}
	}
	if fromDeck {
		id, _ := s.library.Pop()
		p.Vault().Add(id)
		if s.library.Len() == 0 {
			s.endGame()
		}
	}
	return nil
}
