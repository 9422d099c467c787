package protocol

import (
	"strconv"
	"strings"
)

// Team is the ownership side of a bot.
type Team uint8

const (
	Friendly Team = iota
	Enemy
)

func (t Team) String() string {
	if t == Friendly {
		return "F"
	}
	return "E"
}

// Bot is one robot on the arena. Action is always nil straight after decode:
// the engine never sends actions, the strategy assigns them before encode.
// Health 0 is structurally valid; the engine may still list a dead bot.
type Bot struct {
	Team     Team
	Position Position
	Health   uint8
	Action   *Action
}

// ParseBot decodes a "team-x:y-health" token, e.g. "F-12:6-100".
// Position and health errors carry their own sub-token; a wrong number of
// "-" segments is a MalformedBot carrying the whole token.
func ParseBot(token string) (Bot, error) {
	parts := strings.Split(token, "-")
	if len(parts) != 3 {
		return Bot{}, &DecodeError{Kind: MalformedBot, Token: token}
	}

	var team Team
	switch parts[0] {
	case "F":
		team = Friendly
	case "E":
		team = Enemy
	default:
		return Bot{}, &DecodeError{Kind: UnknownTeam, Token: parts[0]}
	}

	pos, err := ParsePosition(parts[1])
	if err != nil {
		return Bot{}, err
	}

	health, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return Bot{}, &DecodeError{Kind: InvalidHealth, Token: parts[2]}
	}

	return Bot{Team: team, Position: pos, Health: uint8(health)}, nil
}
