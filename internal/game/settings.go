package game

import "fmt"

// Game size limits
const (
	MinPlayers = 2
	MaxPlayers = 5
)

// Setup constants
const (
	InitialPoolCount = 5
	InitialJackCount = 6
	BaseHandLimit    = 5
	BaseVaultLimit   = 2
	BaseClienteleLim = 2
)

// GameSettings configures a new game. The seed drives the library
// shuffle and is the only source of randomness in the engine, so a
// persisted (seed, history) pair replays byte for byte.
type GameSettings struct {
	PlayerNames []string `json:"playerNames"`
	Seed        int64    `json:"seed"`

	// VictoryInfluence ends the game when a player's influence reaches
	// the threshold. Zero disables the trigger.
	VictoryInfluence int `json:"victoryInfluence,omitempty"`

	// PoolDrainEnds enables the variant where an empty pool at the end
	// of a Laborer action ends the game.
	PoolDrainEnds bool `json:"poolDrainEnds,omitempty"`
}

// DefaultSettings returns settings for a seeded n-player game with
// generated player names
func DefaultSettings(nPlayers int, seed int64) GameSettings {
	names := make([]string, nPlayers)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	return GameSettings{PlayerNames: names, Seed: seed}
}

// Validate checks the settings before game construction
func (s GameSettings) Validate() error {
	n := len(s.PlayerNames)
	if n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("player count %d out of range %d-%d", n, MinPlayers, MaxPlayers)
	}
	for i, name := range s.PlayerNames {
		if name == "" {
			return fmt.Errorf("player %d has an empty name", i)
		}
	}
	if s.VictoryInfluence < 0 {
		return fmt.Errorf("negative victory influence threshold %d", s.VictoryInfluence)
	}
	return nil
}
