package card

import "sort"

// Info is the static catalog entry for an order card: name, material,
// copies in the deck, and the building rule text shown to clients.
// Role and value are derived from the material.
type Info struct {
	Name     string
	Material Material
	Copies   int
	Text     string
}

// catalog holds every order card in the game. Jacks live in their own
// pile and are not listed here.
var catalog = map[string]Info{
	"Academy":        {"Academy", MaterialBrick, 3, "You may perform one Thinker action at the end of a turn in which you performed a Craftsman action."},
	"Amphitheatre":   {"Amphitheatre", MaterialConcrete, 3, "You may perform one Craftsman action for each of your influence points."},
	"Aqueduct":       {"Aqueduct", MaterialConcrete, 3, "When performing Patron, you may also take a client from the deck. Your clientele limit is doubled."},
	"Archway":        {"Archway", MaterialBrick, 3, "When performing Architect, you may take materials from the pool."},
	"Atrium":         {"Atrium", MaterialBrick, 3, "When performing Merchant, you may take a card from the deck without looking at it."},
	"Bar":            {"Bar", MaterialRubble, 3, "When performing Patron, you may also take a client from your hand."},
	"Basilica":       {"Basilica", MaterialMarble, 3, "When performing Merchant, you may also move a card from your hand into your vault."},
	"Bath":           {"Bath", MaterialBrick, 3, "When you hire a client, it immediately performs its role action once."},
	"Bridge":         {"Bridge", MaterialConcrete, 3, "When demanding with Legionary, you may also take materials from opponents' stockpiles. Your Legionary ignores the Palisade."},
	"Catacomb":       {"Catacomb", MaterialStone, 3, "The game ends immediately when this building is completed."},
	"Circus":         {"Circus", MaterialWood, 3, "You may lead or follow by petition with two cards of the same role."},
	"Circus Maximus": {"Circus Maximus", MaterialStone, 3, "Each of your clients performs its action twice."},
	"Coliseum":       {"Coliseum", MaterialStone, 3, "When demanding with Legionary, you may also take opponents' clients into your vault."},
	"Dock":           {"Dock", MaterialWood, 3, "When performing Laborer, you may also take a card from your hand into your stockpile."},
	"Forum":          {"Forum", MaterialMarble, 3, "If you have one client of each role, you win."},
	"Foundry":        {"Foundry", MaterialBrick, 3, "You may perform one Laborer action for each of your influence points."},
	"Fountain":       {"Fountain", MaterialMarble, 3, "When performing Craftsman, you may first draw the top card of the deck into your hand."},
	"Garden":         {"Garden", MaterialStone, 3, "You may perform one Patron action for each of your influence points."},
	"Gate":           {"Gate", MaterialBrick, 3, "Your incomplete Marble buildings provide their passive powers."},
	"Insula":         {"Insula", MaterialRubble, 3, "Your clientele limit is increased by two."},
	"Latrine":        {"Latrine", MaterialRubble, 3, "Before performing a Thinker action, you may discard one card from your hand to the pool."},
	"Ludus Magna":    {"Ludus Magna", MaterialMarble, 3, "Your Merchant clients count as clients of the role led."},
	"Market":         {"Market", MaterialWood, 3, "Your vault limit is increased by two."},
	"Palace":         {"Palace", MaterialMarble, 3, "You may play multiple cards of the same role when leading or following, for additional camp actions."},
	"Palisade":       {"Palisade", MaterialWood, 3, "You are immune to opponents' Legionary demands."},
	"Prison":         {"Prison", MaterialStone, 3, "You may exchange three influence for an opponent's completed building."},
	"Road":           {"Road", MaterialRubble, 3, "Any material may be added to your Stone buildings."},
	"School":         {"School", MaterialBrick, 3, "You may perform one Thinker action for each of your influence points."},
	"Scriptorium":    {"Scriptorium", MaterialStone, 3, "You may use one Marble material to complete any building."},
	"Senate":         {"Senate", MaterialBrick, 3, "You may take opponents' played Jacks into your hand at the end of their turn."},
	"Sewer":          {"Sewer", MaterialStone, 3, "At the end of your turn, you may place orders cards from your camp into your stockpile."},
	"Shrine":         {"Shrine", MaterialBrick, 3, "Your hand limit is increased by two."},
	"Stairway":       {"Stairway", MaterialMarble, 3, "When performing Architect, you may add a material to an opponent's completed building, making its power available to all players."},
	"Statue":         {"Statue", MaterialMarble, 3, "Worth three bonus points. The Statue may be built on any site."},
	"Storeroom":      {"Storeroom", MaterialConcrete, 3, "All of your clients count as Laborers."},
	"Temple":         {"Temple", MaterialMarble, 3, "Your hand limit is increased by four."},
	"Theater":        {"Theater", MaterialWood, 3, "You may perform one Craftsman action for each of your influence points."},
	"Tower":          {"Tower", MaterialConcrete, 3, "Rubble may be added to any of your buildings. You may lay foundations onto out-of-town sites at no extra cost."},
	"Tribunal":       {"Tribunal", MaterialWood, 3, "Your hand limit is increased by two."},
	"Villa":          {"Villa", MaterialStone, 3, "When performing Architect, you may complete the Villa with a single material."},
	"Vomitorium":     {"Vomitorium", MaterialConcrete, 3, "Before performing a Thinker action, you may discard your entire hand to the pool."},
	"Wall":           {"Wall", MaterialConcrete, 3, "You are immune to opponents' Legionary demands, even against a Bridge. Worth one point per two materials in your stockpile."},
}

// Lookup returns the catalog entry for an order card name
func Lookup(name string) (Info, bool) {
	info, ok := catalog[name]
	return info, ok
}

// Names returns all order card names in deterministic (sorted) order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamesByMaterial returns the order card names of one material, sorted
func NamesByMaterial(m Material) []string {
	names := make([]string, 0)
	for name, info := range catalog {
		if info.Material == m {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// DeckSize returns the number of order cards in a full deck
func DeckSize() int {
	total := 0
	for _, info := range catalog {
		total += info.Copies
	}
	return total
}

// FullDeck returns one ID per physical order card, in deterministic
// order (sorted by name, then instance index). Shuffling is the deck
// package's job.
func FullDeck() []ID {
	deck := make([]ID, 0, DeckSize())
	for _, name := range Names() {
		info := catalog[name]
		for i := 0; i < info.Copies; i++ {
			deck = append(deck, ID{Name: name, Index: i})
		}
	}
	return deck
}
