package stego_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode"

	"cryptolab/internal/codec/stego"
	"cryptolab/internal/domain"
)

func roundTrip(t *testing.T, payload []byte, cover string) {
	t.Helper()
	c := stego.Codec{}

	out, err := c.Hide(payload, cover)
	if err != nil {
		t.Fatalf("Hide: %v", err)
	}
	got, err := c.Extract(out)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %q, want %q", got, payload)
	}
}

func TestRoundTrip_DefaultCover(t *testing.T) {
	roundTrip(t, []byte("Hi"), "")
}

func TestRoundTrip_Unicode(t *testing.T) {
	roundTrip(t, []byte("héllo wörld — 密码"), "")
}

func TestRoundTrip_Binary(t *testing.T) {
	roundTrip(t, []byte{0x00, 0xFF, 0x10, 0x80, 0x7F}, "")
}

func TestRoundTrip_EmptyPayload(t *testing.T) {
	roundTrip(t, []byte{}, "")
}

func TestRoundTrip_CustomCoverWithRepetition(t *testing.T) {
	// Two substitutable words force heavy repetition for any real payload.
	roundTrip(t, []byte("a somewhat longer secret message"), "good big")
}

func TestHide_CoverWithoutSubstitutableWordsFallsBack(t *testing.T) {
	c := stego.Codec{}

	out, err := c.Hide([]byte("Hi"), "zzz qqq xxx nothing matches")
	if err != nil {
		t.Fatalf("Hide: %v", err)
	}
	got, err := c.Extract(out)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if string(got) != "Hi" {
		t.Fatalf("got %q, want %q", got, "Hi")
	}
}

func TestHide_PreservesShape(t *testing.T) {
	c := stego.Codec{}

	out, err := c.Hide([]byte("x"), "Good ideas make work easy, fast and simple. Big teams help. New tools start here. We know and want and use and give and find and think and help and work hard.")
	if err != nil {
		t.Fatalf("Hide: %v", err)
	}
	first := strings.Fields(out)[0]
	if !unicode.IsUpper([]rune(first)[0]) {
		t.Fatalf("capitalization lost: first word %q", first)
	}
	// "easy," carried a trailing comma; whichever synonym replaced it
	// must keep one.
	withComma := 0
	for _, w := range strings.Fields(out) {
		if strings.HasSuffix(w, ",") {
			withComma++
		}
	}
	if withComma == 0 {
		t.Fatal("trailing punctuation lost")
	}
}

func TestExtract_InsufficientData(t *testing.T) {
	c := stego.Codec{}

	_, err := c.Extract("good big fast")
	if !errors.Is(err, domain.ErrInsufficientData) {
		t.Fatalf("got %v, want ErrInsufficientData", err)
	}
}

func TestExtract_HeaderExceedsAvailableBits(t *testing.T) {
	c := stego.Codec{}

	// "fine" is index 3 in its group, so 16 of them decode to an all-ones
	// header with zero payload bits behind it.
	_, err := c.Extract(strings.Repeat("fine ", 16))
	if !errors.Is(err, domain.ErrCorruptFrame) {
		t.Fatalf("got %v, want ErrCorruptFrame", err)
	}
}

func TestExtract_MisalignedBitLengthIsCorrupt(t *testing.T) {
	c := stego.Codec{}

	// Sixteen header words declaring 2 payload bits: fifteen index-0 words,
	// then "wish" (index 2 of its group) for the low bits, then one payload
	// word. Genuine frames carry whole base64 bytes, so a bit count that is
	// not a multiple of 8 can only come from a disturbed header. This is
	// exactly what a same-group word swap inside the header produces.
	text := "good bad big small fast easy hard new old start end make find think know wish good"
	_, err := c.Extract(text)
	if !errors.Is(err, domain.ErrCorruptFrame) {
		t.Fatalf("got %v, want ErrCorruptFrame", err)
	}
}

func TestExtract_NoHiddenDataInPlainProse(t *testing.T) {
	c := stego.Codec{}

	// Plain prose can still contain synonym-table words; extraction must
	// fail cleanly rather than fabricate a payload.
	_, err := c.Extract("The weather is nice today and the coffee tastes fine here.")
	if err == nil {
		t.Fatal("expected an error for text without a hidden frame")
	}
	if !errors.Is(err, domain.ErrInsufficientData) && !errors.Is(err, domain.ErrCorruptFrame) {
		t.Fatalf("got %v, want ErrInsufficientData or ErrCorruptFrame", err)
	}
}

func TestHide_LargePayload(t *testing.T) {
	roundTrip(t, bytes.Repeat([]byte("covert"), 512), "")
}
