package zone

import (
	"fmt"

	"glory-to-rome-backend/internal/game/card"
)

// Zone is an ordered multiset of card identities. Iteration order equals
// insertion order and removal preserves the order of the remaining
// elements. There is no deduplication; two copies of the same name are
// distinguished by their instance index.
type Zone struct {
	cards []card.ID
}

// New creates an empty zone
func New() *Zone {
	return &Zone{cards: []card.ID{}}
}

// Of creates a zone holding the given cards in order
func Of(cards ...card.ID) *Zone {
	z := New()
	z.AddMany(cards)
	return z
}

// Add appends a card to the zone
func (z *Zone) Add(id card.ID) {
	z.cards = append(z.cards, id)
}

// AddMany appends cards in order
func (z *Zone) AddMany(ids []card.ID) {
	z.cards = append(z.cards, ids...)
}

// Remove removes the first occurrence of the exact identity.
// It fails if the card is absent.
func (z *Zone) Remove(id card.ID) error {
	for i, c := range z.cards {
		if c == id {
			z.cards = append(z.cards[:i], z.cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("card %s not in zone", id)
}

// Contains reports whether the exact identity is present
func (z *Zone) Contains(id card.ID) bool {
	for _, c := range z.cards {
		if c == id {
			return true
		}
	}
	return false
}

// CountByName returns the number of cards sharing a catalog name
func (z *Zone) CountByName(name string) int {
	count := 0
	for _, c := range z.cards {
		if c.Name == name {
			count++
		}
	}
	return count
}

// Len returns the number of cards in the zone
func (z *Zone) Len() int {
	return len(z.cards)
}

// Cards returns a copy of the zone contents in insertion order
func (z *Zone) Cards() []card.ID {
	out := make([]card.ID, len(z.cards))
	copy(out, z.cards)
	return out
}

// First returns the first card without removing it
func (z *Zone) First() (card.ID, bool) {
	if len(z.cards) == 0 {
		return card.ID{}, false
	}
	return z.cards[0], true
}

// Pop removes and returns the first card
func (z *Zone) Pop() (card.ID, bool) {
	if len(z.cards) == 0 {
		return card.ID{}, false
	}
	first := z.cards[0]
	z.cards = z.cards[1:]
	return first, true
}

// FirstByMaterial returns the first card of the given material
func (z *Zone) FirstByMaterial(m card.Material) (card.ID, bool) {
	for _, c := range z.cards {
		if c.Material() == m {
			return c, true
		}
	}
	return card.ID{}, false
}

// SetContent replaces the zone contents. Test helper; gameplay code
// moves cards one at a time so conservation stays checkable.
func (z *Zone) SetContent(cards []card.ID) {
	z.cards = make([]card.ID, len(cards))
	copy(z.cards, cards)
}

// Copy returns a structurally independent copy of the zone
func (z *Zone) Copy() *Zone {
	return Of(z.cards...)
}
