package game

import (
	"glory-to-rome-backend/internal/game/card"
)

// endGame freezes the game: scores are computed, winners identified,
// and the expected-action queue cleared so every further submission is
// rejected with GameOver.
func (s *GameState) endGame() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.expected = nil

	s.scores = make([]int, s.NumPlayers())
	for idx := range s.players {
		s.scores[idx] = s.scorePlayer(idx)
	}

	// Forum: one client of each role wins outright
	forum := []int{}
	for idx := range s.players {
		if s.hasPower(idx, "Forum") && s.hasClientOfEachRole(idx) {
			forum = append(forum, idx)
		}
	}
	if len(forum) > 0 {
		s.winners = forum
		return
	}

	best := -1
	for _, score := range s.scores {
		if score > best {
			best = score
		}
	}
	for idx, score := range s.scores {
		if score == best {
			s.winners = append(s.winners, idx)
		}
	}
}

// scorePlayer computes influence plus vault card values, the merchant
// bonus (+3 per material with the unique largest vault count), the
// Statue bonus and the Wall's stockpile bonus.
func (s *GameState) scorePlayer(idx int) int {
	p := s.players[idx]
	score := p.Influence()

	for _, id := range p.Vault().Cards() {
		score += id.Value()
	}
	for _, m := range card.Materials() {
		if s.merchantBonusHolder(m) == idx {
			score += 3
		}
	}
	if p.HasCompleted("Statue") {
		score += 3
	}
	if s.hasPower(idx, "Wall") {
		score += p.Stockpile().Len() / 2
	}
	return score
}

// merchantBonusHolder returns the player with the unique largest vault
// count of a material, or -1 when nobody holds it or the lead is tied
func (s *GameState) merchantBonusHolder(m card.Material) int {
	best, holder, tied := 0, -1, false
	for idx, p := range s.players {
		count := 0
		for _, id := range p.Vault().Cards() {
			if id.Material() == m {
				count++
			}
		}
		switch {
		case count > best:
			best, holder, tied = count, idx, false
		case count == best && count > 0:
			tied = true
		}
	}
	if best == 0 || tied {
		return -1
	}
	return holder
}

// hasClientOfEachRole reports whether a player's clientele covers all
// six roles
func (s *GameState) hasClientOfEachRole(idx int) bool {
	covered := map[card.Role]bool{}
	for _, id := range s.players[idx].Clientele().Cards() {
		covered[id.Role()] = true
	}
	for _, r := range card.Roles() {
		if !covered[r] {
			return false
		}
	}
	return true
}
