package protocol

import "testing"

func TestParseGame(t *testing.T) {
	game, err := ParseGame("3,100,2#F-12:6-100,E-9:12-90#123")
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	if game.Turn != 3 || game.TotalTurns != 100 {
		t.Fatalf("turn=%d/%d want=3/100", game.Turn, game.TotalTurns)
	}
	if game.PlayerNum != 2 {
		t.Fatalf("player=%d want=2", game.PlayerNum)
	}
	if game.UserData != "123" {
		t.Fatalf("user_data=%q want=%q", game.UserData, "123")
	}
	if len(game.Board) != 2 {
		t.Fatalf("board len=%d want=2", len(game.Board))
	}
	f, e := game.Board[0], game.Board[1]
	if f.Team != Friendly || f.Position != (Position{X: 12, Y: 6}) || f.Health != 100 || f.Action != nil {
		t.Fatalf("board[0]=%+v want Friendly@12:6 health=100 action unset", f)
	}
	if e.Team != Enemy || e.Position != (Position{X: 9, Y: 12}) || e.Health != 90 || e.Action != nil {
		t.Fatalf("board[1]=%+v want Enemy@9:12 health=90 action unset", e)
	}
}

func TestParseGame_TooFewSegments(t *testing.T) {
	for _, line := range []string{"", "3,100,2", "3,100,2#F-1:1-1"} {
		_, err := ParseGame(line)
		wantDecodeErr(t, err, MalformedGame, line)
	}
}

func TestParseGame_ExtraSegmentsDiscarded(t *testing.T) {
	game, err := ParseGame("1,2,3#F-1:1-1#data#extra")
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	if game.UserData != "data" {
		t.Fatalf("user_data=%q want=%q (fourth segment must be dropped)", game.UserData, "data")
	}

	// Even several extras collapse to the third segment only.
	game, err = ParseGame("1,2,3#F-1:1-1#data#x#y#z")
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	if game.UserData != "data" {
		t.Fatalf("user_data=%q want=%q", game.UserData, "data")
	}
}

func TestParseGame_MissingMetaFields(t *testing.T) {
	cases := []struct {
		line string
		kind ErrorKind
		tok  string
	}{
		{"3#F-1:1-1#u", MissingTotalTurns, "3"},
		{"3,100#F-1:1-1#u", MissingPlayerNum, "3,100"},
	}
	for _, c := range cases {
		_, err := ParseGame(c.line)
		wantDecodeErr(t, err, c.kind, c.tok)
	}
}

func TestParseGame_InvalidMetaNumbers(t *testing.T) {
	_, err := ParseGame("x,100,2#F-1:1-1#u")
	wantDecodeErr(t, err, InvalidNumber, "x")

	_, err = ParseGame("3,y,2#F-1:1-1#u")
	wantDecodeErr(t, err, InvalidNumber, "y")

	// Player number is a small unsigned integer.
	_, err = ParseGame("3,100,300#F-1:1-1#u")
	wantDecodeErr(t, err, InvalidNumber, "300")

	// An empty first segment is a present-but-empty token, not a missing one.
	_, err = ParseGame("#F-1:1-1#u")
	wantDecodeErr(t, err, InvalidNumber, "")
}

func TestParseGame_ExtraMetaTokensIgnored(t *testing.T) {
	game, err := ParseGame("3,100,2,999#F-1:1-1#u")
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	if game.Turn != 3 || game.TotalTurns != 100 || game.PlayerNum != 2 {
		t.Fatalf("meta=%d/%d player=%d want 3/100 player 2", game.Turn, game.TotalTurns, game.PlayerNum)
	}
}

func TestParseGame_BoardErrorPropagates(t *testing.T) {
	_, err := ParseGame("3,100,2#F-12:6-xx#u")
	wantDecodeErr(t, err, InvalidHealth, "xx")
}

func TestParseGame_UserDataVerbatim(t *testing.T) {
	// Commas and dashes in the payload pass through untouched.
	game, err := ParseGame("1,2,3#F-1:1-1#a,b-c:d")
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	if game.UserData != "a,b-c:d" {
		t.Fatalf("user_data=%q want=%q", game.UserData, "a,b-c:d")
	}
}

func TestGameEncode(t *testing.T) {
	attack := Action{Kind: Attack, Dir: Up}
	game := &Game{
		Board: Board{
			{Team: Friendly, Position: Position{X: 12, Y: 6}, Health: 100, Action: &attack},
			{Team: Enemy, Position: Position{X: 10, Y: 12}, Health: 90},
			{Team: Friendly, Position: Position{X: 9, Y: 12}, Health: 90},
		},
		Turn:       3,
		TotalTurns: 100,
		PlayerNum:  2,
		UserData:   "42",
	}
	if got, want := game.Encode(), "12:6-A-U,9:12-D#42"; got != want {
		t.Fatalf("Encode()=%q want=%q", got, want)
	}
}

// Decode then encode projects the line down to the friendly subset with
// defaulted actions; it never reproduces the input line.
func TestGame_DecodeEncodeProjection(t *testing.T) {
	line := "3,100,2#F-12:6-100,F-13:12-20,E-9:5-100,E-9:12-90#123"
	game, err := ParseGame(line)
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	got := game.Encode()
	want := "12:6-D,13:12-D#123"
	if got != want {
		t.Fatalf("Encode()=%q want=%q", got, want)
	}
	if got == line {
		t.Fatalf("encode must not reproduce the input line")
	}
}
