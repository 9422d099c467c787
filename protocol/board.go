package protocol

import "strings"

// Board is the full set of bots for one turn, in exactly the order the
// engine sent them. Duplicate positions are not rejected.
type Board []Bot

// ParseBoard decodes a comma-separated list of bot tokens. The first bad
// token aborts the whole board and its error is surfaced; there is no
// partial result.
func ParseBoard(text string) (Board, error) {
	tokens := strings.Split(text, ",")
	board := make(Board, 0, len(tokens))
	for _, tok := range tokens {
		bot, err := ParseBot(tok)
		if err != nil {
			return nil, err
		}
		board = append(board, bot)
	}
	return board, nil
}

// Friendly returns the bots owned by this client, preserving board order.
func (b Board) Friendly() []Bot {
	var out []Bot
	for _, bot := range b {
		if bot.Team == Friendly {
			out = append(out, bot)
		}
	}
	return out
}

// Encode renders the player-to-engine projection of the board: friendly
// bots only, in original order, each as "x:y-action". A nil action encodes
// as Defend. With no friendly bots the result is empty.
//
// The output deliberately omits team and health, so it is not valid
// ParseBoard input; encode is not the inverse of decode.
func (b Board) Encode() string {
	var sb strings.Builder
	for _, bot := range b {
		if bot.Team != Friendly {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(bot.Position.String())
		sb.WriteByte('-')
		if bot.Action != nil {
			sb.WriteString(bot.Action.String())
		} else {
			sb.WriteString(DefaultAction().String())
		}
	}
	return sb.String()
}
