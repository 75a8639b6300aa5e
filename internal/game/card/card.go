package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Material represents one of the six building materials
type Material string

const (
	MaterialRubble   Material = "Rubble"
	MaterialWood     Material = "Wood"
	MaterialConcrete Material = "Concrete"
	MaterialBrick    Material = "Brick"
	MaterialStone    Material = "Stone"
	MaterialMarble   Material = "Marble"
)

// Role represents one of the six roles a player can lead or follow
type Role string

const (
	RoleLaborer   Role = "Laborer"
	RoleCraftsman Role = "Craftsman"
	RoleArchitect Role = "Architect"
	RoleMerchant  Role = "Merchant"
	RoleLegionary Role = "Legionary"
	RolePatron    Role = "Patron"
)

// JackName is the name of the wild role-leader card. Jacks have no
// material and no role of their own.
const JackName = "Jack"

// Materials lists all materials in catalog order
func Materials() []Material {
	return []Material{
		MaterialRubble,
		MaterialWood,
		MaterialConcrete,
		MaterialBrick,
		MaterialStone,
		MaterialMarble,
	}
}

// Roles lists all roles in catalog order
func Roles() []Role {
	return []Role{
		RoleLaborer,
		RoleCraftsman,
		RoleArchitect,
		RoleMerchant,
		RoleLegionary,
		RolePatron,
	}
}

// RoleFor returns the role bound to a material. The bijection is fixed
// at the color level: Rubble/Laborer, Wood/Craftsman, Concrete/Architect,
// Brick/Legionary, Stone/Merchant, Marble/Patron.
func RoleFor(m Material) Role {
	switch m {
	case MaterialRubble:
		return RoleLaborer
	case MaterialWood:
		return RoleCraftsman
	case MaterialConcrete:
		return RoleArchitect
	case MaterialBrick:
		return RoleLegionary
	case MaterialStone:
		return RoleMerchant
	case MaterialMarble:
		return RolePatron
	}
	return ""
}

// MaterialFor returns the material bound to a role (inverse of RoleFor)
func MaterialFor(r Role) Material {
	switch r {
	case RoleLaborer:
		return MaterialRubble
	case RoleCraftsman:
		return MaterialWood
	case RoleArchitect:
		return MaterialConcrete
	case RoleLegionary:
		return MaterialBrick
	case RoleMerchant:
		return MaterialStone
	case RolePatron:
		return MaterialMarble
	}
	return ""
}

// Value returns the point value and completion threshold of a material
func Value(m Material) int {
	switch m {
	case MaterialRubble, MaterialWood:
		return 1
	case MaterialConcrete, MaterialBrick:
		return 2
	case MaterialStone, MaterialMarble:
		return 3
	}
	return 0
}

// ValidMaterial reports whether m names a known material
func ValidMaterial(m Material) bool {
	return RoleFor(m) != ""
}

// ValidRole reports whether r names a known role
func ValidRole(r Role) bool {
	return MaterialFor(r) != ""
}

// ID is the stable identity of one physical card in a game: the catalog
// name plus a per-game deck-instance index. Cards are compared by ID,
// never by name alone, because two cards sharing a name must remain
// distinguishable when traced across zones.
type ID struct {
	Name  string
	Index int
}

// String renders the wire form "Name#N"
func (id ID) String() string {
	return fmt.Sprintf("%s#%d", id.Name, id.Index)
}

// IsJack reports whether the card is the wild role-leader
func (id ID) IsJack() bool {
	return id.Name == JackName
}

// Material returns the card's material, or "" for a Jack
func (id ID) Material() Material {
	info, ok := Lookup(id.Name)
	if !ok {
		return ""
	}
	return info.Material
}

// Role returns the card's role, or "" for a Jack
func (id ID) Role() Role {
	return RoleFor(id.Material())
}

// Value returns the card's point value, 0 for a Jack
func (id ID) Value() int {
	return Value(id.Material())
}

// MarshalText implements encoding.TextMarshaler so IDs serialize as
// "Name#N" strings in JSON documents and map keys
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Parse parses the wire form "Name#N" into an ID
func Parse(s string) (ID, error) {
	sep := strings.LastIndex(s, "#")
	if sep <= 0 || sep == len(s)-1 {
		return ID{}, fmt.Errorf("malformed card identity %q", s)
	}
	index, err := strconv.Atoi(s[sep+1:])
	if err != nil || index < 0 {
		return ID{}, fmt.Errorf("malformed card index in %q", s)
	}
	name := s[:sep]
	if _, ok := Lookup(name); !ok && name != JackName {
		return ID{}, fmt.Errorf("unknown card name %q", name)
	}
	return ID{Name: name, Index: index}, nil
}
