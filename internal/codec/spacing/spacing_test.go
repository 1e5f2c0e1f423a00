package spacing_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"cryptolab/internal/codec/spacing"
	"cryptolab/internal/domain"
)

func roundTrip(t *testing.T, payload []byte, cover string) {
	t.Helper()
	c := spacing.Codec{}

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

func TestRoundTrip_Binary(t *testing.T) {
	roundTrip(t, []byte{0x00, 0xFF, 0x10, 0x80}, "")
}

func TestRoundTrip_EmptyPayload(t *testing.T) {
	roundTrip(t, []byte{}, "")
}

func TestRoundTrip_ShortCoverRepeats(t *testing.T) {
	roundTrip(t, []byte("a longer secret that needs many gaps"), "only four words here")
}

func TestHide_WordsUnchanged(t *testing.T) {
	c := spacing.Codec{}

	out, err := c.Hide([]byte("x"), "")
	if err != nil {
		t.Fatalf("Hide: %v", err)
	}
	want := strings.Fields(spacing.DefaultCoverText)
	got := strings.Fields(out)
	if len(got) < len(want) {
		t.Fatalf("got %d words, want at least %d", len(got), len(want))
	}
	for i, w := range got[:len(want)] {
		if w != want[i] {
			t.Fatalf("word %d changed: got %q, want %q", i, w, want[i])
		}
	}
}

func TestHide_SingleWordCoverFails(t *testing.T) {
	c := spacing.Codec{}

	_, err := c.Hide([]byte("x"), "lonely")
	if !errors.Is(err, domain.ErrInsufficientCapacity) {
		t.Fatalf("got %v, want ErrInsufficientCapacity", err)
	}
}

func TestExtract_InsufficientGaps(t *testing.T) {
	c := spacing.Codec{}

	_, err := c.Extract("too few words here")
	if !errors.Is(err, domain.ErrInsufficientData) {
		t.Fatalf("got %v, want ErrInsufficientData", err)
	}
}

func TestExtract_DeclaredLengthExceedsBits(t *testing.T) {
	c := spacing.Codec{}

	// 17 double-spaced gaps decode to an all-ones header followed by a
	// single payload bit, nowhere near the declared byte count.
	text := strings.Join(strings.Fields(strings.Repeat("word ", 18)), "  ")
	_, err := c.Extract(text)
	if !errors.Is(err, domain.ErrCorruptFrame) {
		t.Fatalf("got %v, want ErrCorruptFrame", err)
	}
}

func TestExtract_CollapsedSpacingLosesPayload(t *testing.T) {
	c := spacing.Codec{}

	out, err := c.Hide([]byte("fragile"), "")
	if err != nil {
		t.Fatalf("Hide: %v", err)
	}
	collapsed := strings.Join(strings.Fields(out), " ")
	got, err := c.Extract(collapsed)
	if err == nil && bytes.Equal(got, []byte("fragile")) {
		t.Fatal("payload survived whitespace normalization")
	}
}

func TestCapacity(t *testing.T) {
	c := spacing.Codec{}

	if got := c.Capacity("a b"); got != 0 {
		t.Fatalf("tiny cover capacity: got %d, want 0", got)
	}
	// 41 words give 40 gaps: 16 for the header, 24 for payload bits.
	cover := strings.TrimSpace(strings.Repeat("word ", 41))
	if got := c.Capacity(cover); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}
