package protocol

import "testing"

func TestParsePosition(t *testing.T) {
	pos, err := ParsePosition("13:12")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}
	if pos != (Position{X: 13, Y: 12}) {
		t.Fatalf("pos=%+v want={13 12}", pos)
	}
}

func TestPosition_ParseStringIdentity(t *testing.T) {
	for _, tok := range []string{"0:0", "12:6", "13:12", "1000000:42"} {
		pos, err := ParsePosition(tok)
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", tok, err)
		}
		if pos.String() != tok {
			t.Fatalf("ParsePosition(%q).String()=%q", tok, pos.String())
		}
	}
}

func TestParsePosition_Invalid(t *testing.T) {
	for _, tok := range []string{"12", "a:b", "-1:5", "5:-1", ":", "12:", ":6", "12:6:7", ""} {
		_, err := ParsePosition(tok)
		wantDecodeErr(t, err, InvalidPosition, tok)
	}
}
