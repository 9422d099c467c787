package protocol

import "strings"

// ActionKind discriminates the Action variants.
type ActionKind uint8

// Defend is the zero value so that a zero Action is the safe default.
const (
	Defend ActionKind = iota
	Attack
	Move
	SelfDestruct
)

// Action is the per-turn directive for one friendly bot. Dir is meaningful
// only for Attack and Move.
type Action struct {
	Kind ActionKind
	Dir  Direction
}

// DefaultAction is what a friendly bot encodes as when the strategy never
// assigned it anything.
func DefaultAction() Action {
	return Action{Kind: Defend}
}

// ParseAction decodes an action token: "D", "S", "A-<dir>" or "M-<dir>".
// A recognised tag with the wrong number of "-" segments is a
// MalformedAction; an unrecognised tag is an UnknownAction.
func ParseAction(token string) (Action, error) {
	parts := strings.Split(token, "-")
	switch parts[0] {
	case "D", "S":
		if len(parts) != 1 {
			return Action{}, &DecodeError{Kind: MalformedAction, Token: token}
		}
		if parts[0] == "S" {
			return Action{Kind: SelfDestruct}, nil
		}
		return Action{Kind: Defend}, nil
	case "A", "M":
		if len(parts) != 2 {
			return Action{}, &DecodeError{Kind: MalformedAction, Token: token}
		}
		dir, err := ParseDirection(parts[1])
		if err != nil {
			return Action{}, err
		}
		kind := Attack
		if parts[0] == "M" {
			kind = Move
		}
		return Action{Kind: kind, Dir: dir}, nil
	}
	return Action{}, &DecodeError{Kind: UnknownAction, Token: token}
}

// String returns the wire form of the action.
func (a Action) String() string {
	switch a.Kind {
	case Attack:
		return "A-" + a.Dir.String()
	case Move:
		return "M-" + a.Dir.String()
	case SelfDestruct:
		return "S"
	}
	return "D"
}
