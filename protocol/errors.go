package protocol

import "fmt"

// ErrorKind names the wire-format field a decode failure belongs to.
type ErrorKind string

const (
	MalformedGame     ErrorKind = "malformed game"
	MissingTurn       ErrorKind = "missing turn"
	MissingTotalTurns ErrorKind = "missing total turns"
	MissingPlayerNum  ErrorKind = "missing player num"
	InvalidNumber     ErrorKind = "invalid number"
	MalformedBot      ErrorKind = "malformed bot"
	UnknownTeam       ErrorKind = "unknown team"
	InvalidPosition   ErrorKind = "invalid position"
	InvalidHealth     ErrorKind = "invalid health"
	MalformedAction   ErrorKind = "malformed action"
	UnknownAction     ErrorKind = "unknown action"
	UnknownDirection  ErrorKind = "unknown direction"
)

// DecodeError reports the first field that failed to decode and the
// offending substring from the input. Nested decodes (bot inside board
// inside game) abort on the first failure; errors are never aggregated.
//
// Encoding has no error cases: any value held in memory already satisfies
// the wire invariants, and a missing action defaults to Defend.
type DecodeError struct {
	Kind  ErrorKind
	Token string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Token)
}
