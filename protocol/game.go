// Package protocol implements the engine wire format for the robot arena:
// one delimited line per turn decoded into a Game, and the response line
// encoded from the friendly bots' chosen actions.
//
// The two formats are intentionally asymmetric. Decode consumes
// engine-to-player data (team, position, health for every bot); encode
// produces player-to-engine data (position and action, friendly bots only).
// Every decode is a pure single pass over its input; nothing persists
// between lines.
package protocol

import (
	"strconv"
	"strings"
)

// Game is one decoded engine line: the board, the turn counters, our player
// number, and the opaque user payload.
//
// UserData is carried byte-for-byte in both directions with no escaping. A
// payload containing '#' therefore corrupts the outer grammar of the
// encoded line; that hazard is part of the engine contract, not ours to
// fix. On decode the damage is bounded because only the first three '#'
// segments are read.
type Game struct {
	Board      Board
	Turn       uint32
	TotalTurns uint32
	PlayerNum  uint8
	UserData   string
}

// ParseGame decodes one full engine line:
//
//	<turn>,<total_turns>,<player_num>#<bot>[,<bot>...]#<user_data>
//
// Segments after the third '#' are silently discarded, matching the
// engine's observed behaviour. Extra comma tokens after the player number
// are likewise ignored.
func ParseGame(line string) (*Game, error) {
	segs := strings.SplitN(line, "#", 4)
	if len(segs) < 3 {
		return nil, &DecodeError{Kind: MalformedGame, Token: line}
	}
	gameData, mapState, userData := segs[0], segs[1], segs[2]

	fields := strings.Split(gameData, ",")
	turn, err := metaField(fields, 0, 32, MissingTurn, gameData)
	if err != nil {
		return nil, err
	}
	total, err := metaField(fields, 1, 32, MissingTotalTurns, gameData)
	if err != nil {
		return nil, err
	}
	player, err := metaField(fields, 2, 8, MissingPlayerNum, gameData)
	if err != nil {
		return nil, err
	}

	board, err := ParseBoard(mapState)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:      board,
		Turn:       uint32(turn),
		TotalTurns: uint32(total),
		PlayerNum:  uint8(player),
		UserData:   userData,
	}, nil
}

// metaField reads field i of the turn metadata as an unsigned integer of
// the given bit size. A field that is absent entirely yields the
// field-specific missing kind; a present but non-numeric field is an
// InvalidNumber.
func metaField(fields []string, i, bits int, missing ErrorKind, segment string) (uint64, error) {
	if i >= len(fields) {
		return 0, &DecodeError{Kind: missing, Token: segment}
	}
	n, err := strconv.ParseUint(fields[i], 10, bits)
	if err != nil {
		return 0, &DecodeError{Kind: InvalidNumber, Token: fields[i]}
	}
	return n, nil
}

// Encode renders the response line: the friendly-only board projection and
// the user payload. Turn counters and player number are never echoed back.
func (g *Game) Encode() string {
	return g.Board.Encode() + "#" + g.UserData
}
