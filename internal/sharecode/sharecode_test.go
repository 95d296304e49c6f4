package sharecode

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c, err := New("test-salt")
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range []int64{1, 42, 987654321} {
		code, err := c.Encode(id)
		if err != nil {
			t.Fatal(err)
		}
		if len(code) < 8 {
			t.Fatalf("code %q shorter than the minimum length", code)
		}

		got, err := c.Decode(code)
		if err != nil {
			t.Fatal(err)
		}
		if got != id {
			t.Fatalf("round trip: got %d, want %d", got, id)
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	c, err := New("test-salt")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Decode("!!not-a-code!!"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("got %v, want ErrInvalidCode", err)
	}
}

func TestSaltChangesCodes(t *testing.T) {
	a, _ := New("salt-a")
	b, _ := New("salt-b")

	code, err := a.Encode(7)
	if err != nil {
		t.Fatal(err)
	}
	if got, err := b.Decode(code); err == nil && got == 7 {
		t.Fatal("code decoded under a different salt")
	}
}
