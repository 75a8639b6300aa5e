package deck

import (
	"math/rand"

	"glory-to-rome-backend/internal/game/card"
)

// Shuffled returns the full order deck shuffled deterministically from
// the seed. Replaying a game with the same seed reproduces the same
// library order byte for byte.
func Shuffled(seed int64) []card.ID {
	cards := card.FullDeck()
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// Jacks returns n Jack cards with stable instance indices
func Jacks(n int) []card.ID {
	jacks := make([]card.ID, n)
	for i := range jacks {
		jacks[i] = card.ID{Name: card.JackName, Index: i}
	}
	return jacks
}
