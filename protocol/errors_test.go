package protocol

import (
	"errors"
	"testing"
)

// wantDecodeErr asserts err is a DecodeError with the given kind and token.
func wantDecodeErr(t *testing.T, err error, kind ErrorKind, token string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %T: %v", err, err)
	}
	if derr.Kind != kind {
		t.Fatalf("kind=%q want=%q (err: %v)", derr.Kind, kind, err)
	}
	if derr.Token != token {
		t.Fatalf("token=%q want=%q", derr.Token, token)
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Kind: InvalidHealth, Token: "xx"}
	if got, want := err.Error(), `invalid health: "xx"`; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}
}
