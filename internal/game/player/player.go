package player

import (
	"fmt"

	"glory-to-rome-backend/internal/game/building"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

// Player holds the piles and items controlled by one participant: hand,
// stockpile, vault, clientele, camp, the revealed sub-zone used during a
// legionary demand, claimed influence sites, and buildings. It also
// carries the per-turn counters the turn machinery needs.
type Player struct {
	name string

	hand      *zone.Zone
	stockpile *zone.Zone
	vault     *zone.Zone
	clientele *zone.Zone
	camp      *zone.Zone
	revealed  *zone.Zone

	influence []card.Material
	buildings []*building.Building

	// Per-turn state, reset at turn cleanup
	nCampActions       int
	performedCraftsman bool
}

// New creates a player with empty zones
func New(name string) *Player {
	return &Player{
		name:      name,
		hand:      zone.New(),
		stockpile: zone.New(),
		vault:     zone.New(),
		clientele: zone.New(),
		camp:      zone.New(),
		revealed:  zone.New(),
		influence: []card.Material{},
		buildings: []*building.Building{},
	}
}

// Name returns the player's display name
func (p *Player) Name() string { return p.name }

// ==================== Zones ====================

func (p *Player) Hand() *zone.Zone      { return p.hand }
func (p *Player) Stockpile() *zone.Zone { return p.stockpile }
func (p *Player) Vault() *zone.Zone     { return p.vault }
func (p *Player) Clientele() *zone.Zone { return p.clientele }
func (p *Player) Camp() *zone.Zone      { return p.camp }
func (p *Player) Revealed() *zone.Zone  { return p.revealed }

// ==================== Influence ====================

// ClaimSite records a claimed site tile of the given material
func (p *Player) ClaimSite(m card.Material) {
	p.influence = append(p.influence, m)
}

// InfluenceSites returns the claimed site materials in claim order
func (p *Player) InfluenceSites() []card.Material {
	out := make([]card.Material, len(p.influence))
	copy(out, p.influence)
	return out
}

// Influence returns the player's influence points: the summed values of
// claimed sites
func (p *Player) Influence() int {
	total := 0
	for _, m := range p.influence {
		total += card.Value(m)
	}
	return total
}

// ==================== Buildings ====================

// Buildings returns the player's buildings in foundation order
func (p *Player) Buildings() []*building.Building {
	return p.buildings
}

// AddBuilding appends a newly laid foundation
func (p *Player) AddBuilding(b *building.Building) {
	p.buildings = append(p.buildings, b)
}

// RemoveBuilding detaches a building. Fails if absent.
func (p *Player) RemoveBuilding(b *building.Building) error {
	for i, owned := range p.buildings {
		if owned == b {
			p.buildings = append(p.buildings[:i], p.buildings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("player %s does not own building %s", p.name, b.Foundation())
}

// FindBuilding returns the building whose foundation matches the card
func (p *Player) FindBuilding(foundation card.ID) (*building.Building, bool) {
	for _, b := range p.buildings {
		if b.Foundation() == foundation {
			return b, true
		}
	}
	return nil, false
}

// HasCompleted reports whether the player owns a completed building with
// the given foundation name. Power evaluation that must also consider
// Gate and Stairway-shared buildings lives in the rules core.
func (p *Player) HasCompleted(name string) bool {
	for _, b := range p.buildings {
		if b.FoundationName() == name && b.IsComplete() {
			return true
		}
	}
	return false
}

// HasBuilding reports whether the player owns any building (complete or
// not) with the given foundation name
func (p *Player) HasBuilding(name string) bool {
	for _, b := range p.buildings {
		if b.FoundationName() == name {
			return true
		}
	}
	return false
}

// ==================== Per-turn counters ====================

// NCampActions returns the number of camp actions earned this turn
func (p *Player) NCampActions() int { return p.nCampActions }

// SetNCampActions records the camp actions earned by a lead or follow
func (p *Player) SetNCampActions(n int) { p.nCampActions = n }

// PerformedCraftsman reports whether a Craftsman action resolved this
// turn, which unlocks the Academy's end-of-turn Thinker
func (p *Player) PerformedCraftsman() bool { return p.performedCraftsman }

// MarkCraftsman records a resolved Craftsman action
func (p *Player) MarkCraftsman() { p.performedCraftsman = true }

// ResetTurn clears per-turn counters at cleanup
func (p *Player) ResetTurn() {
	p.nCampActions = 0
	p.performedCraftsman = false
}

// MoveCard removes a card from one zone and adds it to another as a
// single paired operation
func MoveCard(id card.ID, from, to *zone.Zone) error {
	if err := from.Remove(id); err != nil {
		return err
	}
	to.Add(id)
	return nil
}

// Copy returns a structurally independent copy of the player
func (p *Player) Copy() *Player {
	c := New(p.name)
	c.hand = p.hand.Copy()
	c.stockpile = p.stockpile.Copy()
	c.vault = p.vault.Copy()
	c.clientele = p.clientele.Copy()
	c.camp = p.camp.Copy()
	c.revealed = p.revealed.Copy()
	c.influence = append([]card.Material{}, p.influence...)
	c.buildings = make([]*building.Building, len(p.buildings))
	for i, b := range p.buildings {
		c.buildings[i] = b.Copy()
	}
	c.nCampActions = p.nCampActions
	c.performedCraftsman = p.performedCraftsman
	return c
}
