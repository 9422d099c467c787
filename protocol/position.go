package protocol

import (
	"strconv"
	"strings"
)

// Position is an (x, y) arena coordinate. Board dimensions are never
// transmitted, so no upper bound exists or is enforced.
type Position struct {
	X int
	Y int
}

// ParsePosition decodes an "x:y" token. Both parts must be non-negative
// integers; anything else is an InvalidPosition carrying the whole token.
func ParsePosition(token string) (Position, error) {
	xs, ys, ok := strings.Cut(token, ":")
	if !ok {
		return Position{}, &DecodeError{Kind: InvalidPosition, Token: token}
	}
	x, errX := strconv.ParseUint(xs, 10, strconv.IntSize-1)
	y, errY := strconv.ParseUint(ys, 10, strconv.IntSize-1)
	if errX != nil || errY != nil {
		return Position{}, &DecodeError{Kind: InvalidPosition, Token: token}
	}
	return Position{X: int(x), Y: int(y)}, nil
}

// String returns the "x:y" wire form. Parse then String is the identity for
// every well-formed token.
func (p Position) String() string {
	return strconv.Itoa(p.X) + ":" + strconv.Itoa(p.Y)
}
