package protocol

import "testing"

func TestParseDirection_SynonymGroups(t *testing.T) {
	groups := map[Direction][]string{
		Up:    {"U", "N"},
		Down:  {"D", "S"},
		Left:  {"L", "W"},
		Right: {"R", "E"},
	}
	for want, tokens := range groups {
		for _, tok := range tokens {
			got, err := ParseDirection(tok)
			if err != nil {
				t.Fatalf("ParseDirection(%q): %v", tok, err)
			}
			if got != want {
				t.Fatalf("ParseDirection(%q)=%v want=%v", tok, got, want)
			}
		}
	}
}

func TestParseDirection_Unknown(t *testing.T) {
	for _, tok := range []string{"X", "u", "", "UP"} {
		_, err := ParseDirection(tok)
		wantDecodeErr(t, err, UnknownDirection, tok)
	}
}

func TestDirectionString_AlwaysCanonical(t *testing.T) {
	// Whatever letter came in, the canonical one goes out.
	want := map[string]string{
		"N": "U", "U": "U",
		"S": "D", "D": "D",
		"W": "L", "L": "L",
		"E": "R", "R": "R",
	}
	for tok, canonical := range want {
		d, err := ParseDirection(tok)
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", tok, err)
		}
		if d.String() != canonical {
			t.Fatalf("ParseDirection(%q).String()=%q want=%q", tok, d.String(), canonical)
		}
	}
}

func TestDirectionOffset(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, 1},
		{Down, 0, -1},
		{Left, -1, 0},
		{Right, 1, 0},
	}
	for _, c := range cases {
		dx, dy := c.dir.Offset()
		if dx != c.dx || dy != c.dy {
			t.Fatalf("%v.Offset()=(%d,%d) want=(%d,%d)", c.dir, dx, dy, c.dx, c.dy)
		}
	}
}
