package action

import (
	"encoding/json"
	"fmt"

	"glory-to-rome-backend/internal/game/card"
)

// Kind identifies the type of a game action
type Kind string

const (
	ThinkerOrLead  Kind = "THINKERORLEAD"
	ThinkerType    Kind = "THINKERTYPE"
	SkipThinker    Kind = "SKIPTHINKER"
	UseLatrine     Kind = "USELATRINE"
	UseVomitorium  Kind = "USEVOMITORIUM"
	UseFountain    Kind = "USEFOUNTAIN"
	UseSewer       Kind = "USESEWER"
	LeadRole       Kind = "LEADROLE"
	FollowRole     Kind = "FOLLOWROLE"
	Laborer        Kind = "LABORER"
	Craftsman      Kind = "CRAFTSMAN"
	Architect      Kind = "ARCHITECT"
	Stairway       Kind = "STAIRWAY"
	Merchant       Kind = "MERCHANT"
	Legionary      Kind = "LEGIONARY"
	GiveCards      Kind = "GIVECARDS"
	PatronFromPool Kind = "PATRONFROMPOOL"
	PatronFromHand Kind = "PATRONFROMHAND"
	PatronFromDeck Kind = "PATRONFROMDECK"
)

// Valid reports whether k names a known action kind
func (k Kind) Valid() bool {
	switch k {
	case ThinkerOrLead, ThinkerType, SkipThinker, UseLatrine, UseVomitorium,
		UseFountain, UseSewer, LeadRole, FollowRole, Laborer, Craftsman,
		Architect, Stairway, Merchant, Legionary, GiveCards,
		PatronFromPool, PatronFromHand, PatronFromDeck:
		return true
	}
	return false
}

// GameAction is the tagged wire structure submitted by players. Args is
// a kind-specific positional payload: booleans and integers are native
// JSON scalars, card identities are "Name#N" strings, and an explicit
// null marks an omitted optional slot.
type GameAction struct {
	Kind   Kind
	Player int
	Args   []any
}

// New builds an action from Go values. Card IDs may be passed directly;
// they are stored in their wire form.
func New(kind Kind, playerIdx int, args ...any) GameAction {
	wire := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case card.ID:
			wire[i] = v.String()
		case *card.ID:
			if v == nil {
				wire[i] = nil
			} else {
				wire[i] = v.String()
			}
		case card.Role:
			wire[i] = string(v)
		case card.Material:
			wire[i] = string(v)
		case int:
			wire[i] = float64(v)
		default:
			wire[i] = a
		}
	}
	return GameAction{Kind: kind, Player: playerIdx, Args: wire}
}

type wireAction struct {
	Kind   string `json:"kind"`
	Player int    `json:"player"`
	Args   []any  `json:"args"`
}

// MarshalJSON encodes the action as {kind, player, args}
func (a GameAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireAction{Kind: string(a.Kind), Player: a.Player, Args: a.Args})
}

// UnmarshalJSON decodes {kind, player, args}
func (a *GameAction) UnmarshalJSON(data []byte) error {
	var w wireAction
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if !Kind(w.Kind).Valid() {
		return fmt.Errorf("unknown action kind %q", w.Kind)
	}
	if w.Player < 0 {
		return fmt.Errorf("negative player index %d", w.Player)
	}
	a.Kind = Kind(w.Kind)
	a.Player = w.Player
	a.Args = w.Args
	return nil
}

// ==================== Typed payload access ====================
//
// Handlers pull their payload out of Args positionally. Every accessor
// rejects missing or mistyped slots so malformed payloads surface as
// payload errors before any state is touched.

// Bool returns the boolean at slot i
func (a GameAction) Bool(i int) (bool, error) {
	if i >= len(a.Args) {
		return false, fmt.Errorf("%s: missing argument %d", a.Kind, i)
	}
	b, ok := a.Args[i].(bool)
	if !ok {
		return false, fmt.Errorf("%s: argument %d is not a boolean", a.Kind, i)
	}
	return b, nil
}

// Int returns the integer at slot i
func (a GameAction) Int(i int) (int, error) {
	if i >= len(a.Args) {
		return 0, fmt.Errorf("%s: missing argument %d", a.Kind, i)
	}
	switch v := a.Args[i].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, fmt.Errorf("%s: argument %d is not an integer", a.Kind, i)
}

// String returns the string at slot i
func (a GameAction) String(i int) (string, error) {
	if i >= len(a.Args) {
		return "", fmt.Errorf("%s: missing argument %d", a.Kind, i)
	}
	s, ok := a.Args[i].(string)
	if !ok {
		return "", fmt.Errorf("%s: argument %d is not a string", a.Kind, i)
	}
	return s, nil
}

// Card returns the card identity at slot i
func (a GameAction) Card(i int) (card.ID, error) {
	s, err := a.String(i)
	if err != nil {
		return card.ID{}, err
	}
	return card.Parse(s)
}

// OptionalCard returns the card identity at slot i, or nil when the slot
// is an explicit null or absent
func (a GameAction) OptionalCard(i int) (*card.ID, error) {
	if i >= len(a.Args) || a.Args[i] == nil {
		return nil, nil
	}
	id, err := a.Card(i)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Cards returns every argument from slot i onward as card identities
func (a GameAction) Cards(i int) ([]card.ID, error) {
	if i > len(a.Args) {
		return nil, nil
	}
	out := make([]card.ID, 0, len(a.Args)-i)
	for j := i; j < len(a.Args); j++ {
		id, err := a.Card(j)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
