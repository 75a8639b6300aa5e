package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/player"
)

// handleLaborer resolves one Laborer action. Payload:
// (pool card or null, hand card or null).
//
// The pool card moves to the stockpile; the hand card requires a
// completed Dock. Naming neither passes the action.
func (s *GameState) handleLaborer(a action.GameAction) error {
	fromPool, err := a.OptionalCard(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	fromHand, err := a.OptionalCard(1)
	if err != nil {
		return payloadErrf("%v", err)
	}
	p := s.players[a.Player]

	if fromPool != nil {
		if !s.pool.Contains(*fromPool) {
			return payloadErrf("card %s is not in the pool", *fromPool)
		}
	}
	if fromHand != nil {
		if !s.hasPower(a.Player, "Dock") {
			return ruleErrf("taking a card from hand requires a completed Dock")
		}
		if !p.Hand().Contains(*fromHand) {
			return payloadErrf("card %s is not in hand", *fromHand)
		}
		if fromHand.IsJack() {
			return ruleErrf("a Jack cannot be taken into the stockpile")
		}
	}

	if fromPool != nil {
		if err := player.MoveCard(*fromPool, s.pool, p.Stockpile()); err != nil {
			return payloadErrf("%v", err)
		}
	}
	if fromHand != nil {
		if err := player.MoveCard(*fromHand, p.Hand(), p.Stockpile()); err != nil {
			return payloadErrf("%v", err)
		}
	}

	// Pool-drain variant: an empty pool at the end of a Laborer action
	// ends the game
	if s.settings.PoolDrainEnds && s.pool.Len() == 0 {
		s.endGame()
	}
	return nil
}
