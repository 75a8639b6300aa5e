package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/player"
)

// handleThinkerType resolves a Thinker. Payload: (forJack).
//
// For a Jack: draw one from the jack pile, failing if it is empty. For
// cards: refill the hand up to the hand limit, or draw exactly one when
// already at or above it. An empty library truncates the refill silently
// and ends the game.
func (s *GameState) handleThinkerType(a action.GameAction, optional bool) error {
	forJack, err := a.Bool(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	p := s.players[a.Player]

	if forJack {
		jack, ok := s.jackPile.Pop()
		if !ok {
			return &EmptySourceError{Source: "jack pile"}
		}
		p.Hand().Add(jack)
		if !optional {
			s.afterThinker(a.Player)
		}
		return nil
	}

	toDraw := s.handLimit(a.Player) - p.Hand().Len()
	if toDraw < 1 {
		toDraw = 1
	}
	for i := 0; i < toDraw; i++ {
		id, ok := s.library.Pop()
		if !ok {
			break
		}
		p.Hand().Add(id)
	}
	if s.library.Len() == 0 {
		s.endGame()
		return nil
	}
	if !optional {
		s.afterThinker(a.Player)
	}
	return nil
}

// afterThinker grants the School's influence-scaled extra Thinkers once
// per resolved mandatory Thinker. The extras are optional frames and do
// not grant further extras themselves.
func (s *GameState) afterThinker(idx int) {
	if !s.hasPower(idx, "School") {
		return
	}
	p := s.players[idx]
	extras := make([]Expected, 0, p.Influence())
	for i := 0; i < p.Influence(); i++ {
		extras = append(extras, Expected{Kind: action.ThinkerType, Player: idx, Opt: true})
	}
	s.pushFront(extras...)
}

// handleSkipThinker declines an optional Thinker frame. The dispatch
// gate only admits it when the front frame was optional.
func (s *GameState) handleSkipThinker(a action.GameAction) error {
	return nil
}

// handleUseLatrine resolves the Latrine's pre-Thinker discard.
// Payload: (card or null to decline).
func (s *GameState) handleUseLatrine(a action.GameAction) error {
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
		return ruleErrf("the Latrine discards orders cards, not Jacks")
	}
	return player.MoveCard(*id, p.Hand(), s.pool)
}

// handleUseVomitorium resolves the Vomitorium's pre-Thinker discard of
// the whole hand. Payload: (discard).
func (s *GameState) handleUseVomitorium(a action.GameAction) error {
	discard, err := a.Bool(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	if !discard {
		return nil
	}
	p := s.players[a.Player]
	for _, id := range p.Hand().Cards() {
		dest := s.pool
		if id.IsJack() {
			dest = s.jackPile
		}
		if err := player.MoveCard(id, p.Hand(), dest); err != nil {
			return payloadErrf("%v", err)
		}
	}
	return nil
}

// handleUseSewer keeps orders cards from camp in the stockpile at turn
// cleanup. Payload: (cards...); an empty payload keeps nothing.
func (s *GameState) handleUseSewer(a action.GameAction) error {
	cards, err := a.Cards(0)
	if err != nil {
		return payloadErrf("%v", err)
	}
	p := s.players[a.Player]
	for _, id := range cards {
		if id.IsJack() {
			return ruleErrf("the Sewer keeps only orders cards, not Jacks")
		}
		if !p.Camp().Contains(id) {
			return payloadErrf("card %s is not in camp", id)
		}
	}
	for _, id := range cards {
		if err := player.MoveCard(id, p.Camp(), p.Stockpile()); err != nil {
			return payloadErrf("%v", err)
		}
	}
	return nil
}
