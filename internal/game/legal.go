package game

import "glory-to-rome-backend/internal/game/action"

// LegalActions returns a best-effort hint of the action kinds a player
// could submit now. It is not exhaustive over payloads; UIs use it to
// enable controls.
func (g *Game) LegalActions(playerIdx int) []action.Kind {
	front, ok := g.state.Peek()
	if !ok || front.Player != playerIdx {
		return nil
	}
	kinds := []action.Kind{front.Kind}
	if front.Kind == action.ThinkerType && front.Opt {
		kinds = append(kinds, action.SkipThinker)
	}
	return kinds
}
