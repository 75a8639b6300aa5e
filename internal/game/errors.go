package game

import "fmt"

// Error kinds carried on the wire when an action is rejected. Every
// rejection leaves the game state bit-identical to its pre-call value.

// UnexpectedActionError reports a kind or actor mismatch with the top of
// the expected-action stack
type UnexpectedActionError struct {
	Got      string
	GotActor int
	Want     string
	Actor    int
}

func (e *UnexpectedActionError) Error() string {
	return fmt.Sprintf("expected %s from player %d, got %s from player %d",
		e.Want, e.Actor, e.Got, e.GotActor)
}

// Kind returns the wire error code
func (e *UnexpectedActionError) Kind() string { return "UnexpectedAction" }

// IllegalPayloadError reports a payload referencing cards outside the
// expected zone or naming the wrong quantity
type IllegalPayloadError struct {
	Message string
}

func (e *IllegalPayloadError) Error() string { return e.Message }

// Kind returns the wire error code
func (e *IllegalPayloadError) Kind() string { return "IllegalPayload" }

// RuleViolationError reports a well-formed payload that violates a game
// rule (vault over limit, material mismatch, illegal petition, ...)
type RuleViolationError struct {
	Message string
}

func (e *RuleViolationError) Error() string { return e.Message }

// Kind returns the wire error code
func (e *RuleViolationError) Kind() string { return "RuleViolation" }

// EmptySourceError reports a draw from an empty pile where the rule
// requires one
type EmptySourceError struct {
	Source string
}

func (e *EmptySourceError) Error() string {
	return fmt.Sprintf("cannot draw from empty %s", e.Source)
}

// Kind returns the wire error code
func (e *EmptySourceError) Kind() string { return "EmptySource" }

// GameOverError reports an action submitted after the end of the game
type GameOverError struct{}

func (e *GameOverError) Error() string { return "game is over" }

// Kind returns the wire error code
func (e *GameOverError) Kind() string { return "GameOver" }

// ErrorKind maps a rejection to its wire code, or "Internal" for
// anything that is not a typed rules error
func ErrorKind(err error) string {
	if k, ok := err.(interface{ Kind() string }); ok {
		return k.Kind()
	}
	return "Internal"
}

func payloadErrf(format string, args ...any) error {
	return &IllegalPayloadError{Message: fmt.Sprintf(format, args...)}
}

func ruleErrf(format string, args ...any) error {
	return &RuleViolationError{Message: fmt.Sprintf(format, args...)}
}
