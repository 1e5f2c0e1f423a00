package watermark

import (
	"fmt"
	"regexp"
	"strings"

	"cryptolab/internal/domain"
)

const (
	zeroBit rune = '​' // zero-width space
	oneBit  rune = '‌' // zero-width non-joiner
)

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)
	framePattern     = regexp.MustCompile(`WM:(.*?):WM`)
)

// Codec embeds, extracts and strips zero-width watermarks. It is
// stateless; the zero value is ready to use.
type Codec struct{}

// Embed returns text with identifier hidden in it as a run of zero-width
// characters. The run goes immediately after the first sentence boundary,
// or at the very start when the text has none. The input is not mutated.
func (Codec) Embed(text, identifier string) (string, error) {
	if text == "" || identifier == "" {
		return "", fmt.Errorf("%w: text and identifier are required", domain.ErrInvalidArgument)
	}

	frame := "WM:" + identifier + ":WM"
	var run strings.Builder
	for _, b := range []byte(frame) {
		for i := 7; i >= 0; i-- {
			if b>>uint(i)&1 == 1 {
				run.WriteRune(oneBit)
			} else {
				run.WriteRune(zeroBit)
			}
		}
	}

	if loc := sentenceBoundary.FindStringIndex(text); loc != nil {
		return text[:loc[1]] + run.String() + text[loc[1]:], nil
	}
	return run.String() + text, nil
}

// Extract recovers the identifier embedded in text. It collects every
// zero-width marker in the whole text, in order, decodes them 8 bits per
// byte and matches the WM frame. It returns domain.ErrNoWatermark when no
// markers are present and domain.ErrCorruptFrame when the decoded bits do
// not form a valid frame.
func (Codec) Extract(text string) (string, error) {
	var bits []byte
	for _, r := range text {
		switch r {
		case zeroBit:
			bits = append(bits, 0)
		case oneBit:
			bits = append(bits, 1)
		}
	}
	if len(bits) == 0 {
		return "", domain.ErrNoWatermark
	}

	decoded := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for _, bit := range bits[i : i+8] {
			b = b<<1 | bit
		}
		decoded = append(decoded, b)
	}

	m := framePattern.FindSubmatch(decoded)
	if m == nil {
		return "", fmt.Errorf("%w: watermark frame invalid (decoded %q)", domain.ErrCorruptFrame, decoded)
	}
	return string(m[1]), nil
}

// Strip removes every zero-width marker from text. It is a no-op when
// none are present.
func (Codec) Strip(text string) string {
	return strings.Map(func(r rune) rune {
		if r == zeroBit || r == oneBit {
			return -1
		}
		return r
	}, text)
}

// Compile-time assertion that Codec implements domain.Watermarker.
var _ domain.Watermarker = Codec{}
