package protocol

// Direction aims the directional actions (Attack, Move).
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ParseDirection decodes a direction token. The compass letters from the
// game rules (N/E/S/W) are accepted as synonyms for U/R/D/L everywhere a
// direction is read from the wire.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case "U", "N":
		return Up, nil
	case "D", "S":
		return Down, nil
	case "L", "W":
		return Left, nil
	case "R", "E":
		return Right, nil
	}
	return 0, &DecodeError{Kind: UnknownDirection, Token: token}
}

// String returns the canonical wire letter. Compass synonyms are accepted on
// decode but never emitted.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "?"
}

// Offset returns the grid delta for one step in d. The arena origin is
// bottom-left, so Up increases y and Right increases x.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}
