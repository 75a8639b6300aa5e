package building

import (
	"fmt"

	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

// Allowances carries the site-material relaxations granted by completed
// buildings of the owner. The rules core computes these at each decision
// point; the Building itself only knows its own site.
type Allowances struct {
	AnyOnStone     bool // Road: any material may be added to Stone buildings
	RubbleAnywhere bool // Tower: Rubble may be added to any building
	MarbleComplete bool // Scriptorium: one Marble material completes any building
}

// Building is one player's construct: a foundation card on a site of a
// fixed material, the materials placed so far, and the completion state.
// Materials are append-only until completion.
type Building struct {
	foundation card.ID
	site       card.Material
	materials  *zone.Zone
	complete   bool
	shared     bool // set when a Stairway added a material to a completed building
}

// New lays a foundation card onto a site of the given material
func New(foundation card.ID, site card.Material) *Building {
	return &Building{
		foundation: foundation,
		site:       site,
		materials:  zone.New(),
	}
}

// Foundation returns the foundation card
func (b *Building) Foundation() card.ID {
	return b.foundation
}

// FoundationName returns the catalog name of the foundation card
func (b *Building) FoundationName() string {
	return b.foundation.Name
}

// Site returns the site material
func (b *Building) Site() card.Material {
	return b.site
}

// Materials returns the placed material cards in placement order
func (b *Building) Materials() *zone.Zone {
	return b.materials
}

// IsComplete reports whether the building has been completed
func (b *Building) IsComplete() bool {
	return b.complete
}

// IsShared reports whether a Stairway made this building's power
// available to all players
func (b *Building) IsShared() bool {
	return b.shared
}

// MarkShared records a Stairway addition
func (b *Building) MarkShared() {
	b.shared = true
}

// Threshold returns the number of materials required for completion:
// the value of the site material
func (b *Building) Threshold() int {
	return card.Value(b.site)
}

// Accepts reports whether a material card may be placed, given the
// owner's allowances. It does not consider the completion threshold.
func (b *Building) Accepts(m card.Material, allow Allowances) bool {
	if m == b.site {
		return true
	}
	if allow.AnyOnStone && b.site == card.MaterialStone {
		return true
	}
	if allow.RubbleAnywhere && m == card.MaterialRubble {
		return true
	}
	if allow.MarbleComplete && m == card.MaterialMarble {
		return true
	}
	return false
}

// AddMaterial places a material card. It fails if the building is
// complete, already at its threshold, or the card's material is not
// accepted by the site under the given allowances.
func (b *Building) AddMaterial(id card.ID, allow Allowances) error {
	if b.complete {
		return fmt.Errorf("building %s is already complete", b.foundation)
	}
	if b.materials.Len() >= b.Threshold() {
		return fmt.Errorf("building %s already has %d materials", b.foundation, b.materials.Len())
	}
	if !b.Accepts(id.Material(), allow) {
		return fmt.Errorf("material %s does not match %s site", id.Material(), b.site)
	}
	b.materials.Add(id)
	return nil
}

// ReadyToComplete reports whether the threshold has been met
func (b *Building) ReadyToComplete() bool {
	return b.materials.Len() >= b.Threshold()
}

// Complete marks the building complete. Idempotent; fails if the
// threshold has not been met.
func (b *Building) Complete() error {
	if b.complete {
		return nil
	}
	if !b.ReadyToComplete() {
		return fmt.Errorf("building %s has %d of %d materials", b.foundation, b.materials.Len(), b.Threshold())
	}
	b.complete = true
	return nil
}

// ForceComplete marks the building complete regardless of threshold.
// Used for the Scriptorium (a Marble material completes any building)
// and the Villa (a single Architect material completes it).
func (b *Building) ForceComplete() {
	b.complete = true
}

// Copy returns a structurally independent copy
func (b *Building) Copy() *Building {
	c := &Building{
		foundation: b.foundation,
		site:       b.site,
		materials:  b.materials.Copy(),
		complete:   b.complete,
		shared:     b.shared,
	}
	return c
}
